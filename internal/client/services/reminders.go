package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/carlog/internal/client/client"
	"github.com/dmitrijs2005/carlog/internal/client/models"
)

type ReminderService interface {
	List(ctx context.Context, carID string) ([]models.Reminder, error)
	Create(ctx context.Context, carID string, in models.ReminderInput) (*models.Reminder, error)
	Update(ctx context.Context, id string, upd models.ReminderUpdate) (*models.Reminder, error)
	Delete(ctx context.Context, id string) error
}

type reminderService struct {
	client client.Client
}

func NewReminderService(c client.Client) ReminderService {
	return &reminderService{client: c}
}

func (s *reminderService) List(ctx context.Context, carID string) ([]models.Reminder, error) {

	path, err := resourcePath("/reminders", carID)
	if err != nil {
		return nil, err
	}
	list, err := call[[]models.Reminder](ctx, s.client, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("get reminders: %w", err)
	}
	return list, nil
}

// Create fills RepeatDays from the reminder type when it is zero.
func (s *reminderService) Create(ctx context.Context, carID string, in models.ReminderInput) (*models.Reminder, error) {

	path, err := resourcePath("/reminders", carID)
	if err != nil {
		return nil, err
	}
	in = in.WithDefaults()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	r, err := call[models.Reminder](ctx, s.client, http.MethodPost, path, in)
	if err != nil {
		return nil, fmt.Errorf("add reminder: %w", err)
	}
	return &r, nil
}

func (s *reminderService) Update(ctx context.Context, id string, upd models.ReminderUpdate) (*models.Reminder, error) {

	path, err := resourcePath("/reminders", id)
	if err != nil {
		return nil, err
	}
	r, err := call[models.Reminder](ctx, s.client, http.MethodPut, path, upd)
	if err != nil {
		return nil, fmt.Errorf("update reminder: %w", err)
	}
	return &r, nil
}

func (s *reminderService) Delete(ctx context.Context, id string) error {

	path, err := resourcePath("/reminders", id)
	if err != nil {
		return err
	}
	if err := s.client.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	return nil
}
