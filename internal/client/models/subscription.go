package models

import (
	"fmt"
	"strings"
)

type SubscriptionType string

const (
	SubscriptionFree  SubscriptionType = "FREE"
	SubscriptionPro   SubscriptionType = "PRO"
	SubscriptionFleet SubscriptionType = "FLEET"
)

type SubscriptionPlan struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Plans is the catalogue shown to users; prices are monthly, in RON.
var Plans = []SubscriptionPlan{
	{ID: string(SubscriptionFree), Name: "Free", Price: 0},
	{ID: string(SubscriptionPro), Name: "PRO", Price: 29},
	{ID: string(SubscriptionFleet), Name: "FLEET", Price: 99},
}

// FindPlan looks a plan up by ID, case-insensitively.
func FindPlan(id string) (SubscriptionPlan, error) {
	for _, p := range Plans {
		if strings.EqualFold(p.ID, id) {
			return p, nil
		}
	}
	return SubscriptionPlan{}, fmt.Errorf("%w: unknown plan %q", ErrValidation, id)
}

type CheckoutRequest struct {
	PlanID string `json:"planId"`
}

// CheckoutSession points at the payment page for a plan upgrade.
type CheckoutSession struct {
	URL string `json:"url"`
}
