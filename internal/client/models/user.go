package models

import "time"

type User struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	Name      string            `json:"name,omitempty"`
	GoogleID  string            `json:"googleId,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	Cars      []Car             `json:"cars,omitempty"`
	PlanID    string            `json:"planId,omitempty"`
	Plan      *SubscriptionPlan `json:"plan,omitempty"`
}

// UserUpdate carries the fields to change; nil fields are left as they are.
type UserUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
