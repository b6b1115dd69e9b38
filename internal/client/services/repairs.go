package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/carlog/internal/client/client"
	"github.com/dmitrijs2005/carlog/internal/client/models"
)

type RepairService interface {
	List(ctx context.Context, carID string) ([]models.RepairLog, error)
	Create(ctx context.Context, carID string, in models.RepairLogInput) (*models.RepairLog, error)
	Delete(ctx context.Context, id string) error
}

type repairService struct {
	client client.Client
}

func NewRepairService(c client.Client) RepairService {
	return &repairService{client: c}
}

func (s *repairService) List(ctx context.Context, carID string) ([]models.RepairLog, error) {

	path, err := resourcePath("/repair", carID)
	if err != nil {
		return nil, err
	}
	logs, err := call[[]models.RepairLog](ctx, s.client, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("get repairs: %w", err)
	}
	return logs, nil
}

func (s *repairService) Create(ctx context.Context, carID string, in models.RepairLogInput) (*models.RepairLog, error) {

	path, err := resourcePath("/repair", carID)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	r, err := call[models.RepairLog](ctx, s.client, http.MethodPost, path, in)
	if err != nil {
		return nil, fmt.Errorf("add repair: %w", err)
	}
	return &r, nil
}

func (s *repairService) Delete(ctx context.Context, id string) error {

	path, err := resourcePath("/repair", id)
	if err != nil {
		return err
	}
	if err := s.client.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("delete repair: %w", err)
	}
	return nil
}
