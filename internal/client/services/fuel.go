package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/carlog/internal/client/client"
	"github.com/dmitrijs2005/carlog/internal/client/models"
)

type FuelService interface {
	List(ctx context.Context, carID string) ([]models.FuelLog, error)
	Create(ctx context.Context, carID string, in models.FuelLogInput) (*models.FuelLog, error)
	Delete(ctx context.Context, id string) error
}

type fuelService struct {
	client client.Client
}

func NewFuelService(c client.Client) FuelService {
	return &fuelService{client: c}
}

func (s *fuelService) List(ctx context.Context, carID string) ([]models.FuelLog, error) {

	path, err := resourcePath("/fuel", carID)
	if err != nil {
		return nil, err
	}
	logs, err := call[[]models.FuelLog](ctx, s.client, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("get fuel logs: %w", err)
	}
	return logs, nil
}

func (s *fuelService) Create(ctx context.Context, carID string, in models.FuelLogInput) (*models.FuelLog, error) {

	path, err := resourcePath("/fuel", carID)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.FuelType == "" {
		in.FuelType = models.DefaultFuelType
	}

	log, err := call[models.FuelLog](ctx, s.client, http.MethodPost, path, in)
	if err != nil {
		return nil, fmt.Errorf("add fuel log: %w", err)
	}
	return &log, nil
}

func (s *fuelService) Delete(ctx context.Context, id string) error {

	path, err := resourcePath("/fuel", id)
	if err != nil {
		return err
	}
	if err := s.client.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("delete fuel log: %w", err)
	}
	return nil
}
