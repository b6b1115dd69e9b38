package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/carlog/internal/client/client"
	"github.com/dmitrijs2005/carlog/internal/client/models"
)

type SubscriptionService interface {
	Plans() []models.SubscriptionPlan
	CreateCheckoutSession(ctx context.Context, planID string) (string, error)
}

type subscriptionService struct {
	client client.Client
}

func NewSubscriptionService(c client.Client) SubscriptionService {
	return &subscriptionService{client: c}
}

func (s *subscriptionService) Plans() []models.SubscriptionPlan {
	return append([]models.SubscriptionPlan(nil), models.Plans...)
}

// CreateCheckoutSession returns the payment page URL for a paid plan.
func (s *subscriptionService) CreateCheckoutSession(ctx context.Context, planID string) (string, error) {

	plan, err := models.FindPlan(planID)
	if err != nil {
		return "", err
	}
	if plan.Price == 0 {
		return "", fmt.Errorf("%w: plan %s is free", models.ErrValidation, plan.ID)
	}

	sess, err := call[models.CheckoutSession](ctx, s.client, http.MethodPost,
		"/subscription/create-checkout-session", models.CheckoutRequest{PlanID: plan.ID})
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return sess.URL, nil
}
