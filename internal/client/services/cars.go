package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/carlog/internal/client/client"
	"github.com/dmitrijs2005/carlog/internal/client/models"
)

type CarService interface {
	List(ctx context.Context) ([]models.Car, error)
	Create(ctx context.Context, in models.CarInput) (*models.Car, error)
	Update(ctx context.Context, id string, in models.CarInput) (*models.Car, error)
	Delete(ctx context.Context, id string) error
}

type carService struct {
	client client.Client
}

func NewCarService(c client.Client) CarService {
	return &carService{client: c}
}

func (s *carService) List(ctx context.Context) ([]models.Car, error) {
	cars, err := call[[]models.Car](ctx, s.client, http.MethodGet, "/cars", nil)
	if err != nil {
		return nil, fmt.Errorf("get cars: %w", err)
	}
	return cars, nil
}

func (s *carService) Create(ctx context.Context, in models.CarInput) (*models.Car, error) {

	if err := in.Validate(); err != nil {
		return nil, err
	}

	car, err := call[models.Car](ctx, s.client, http.MethodPost, "/cars", in)
	if err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}
	return &car, nil
}

func (s *carService) Update(ctx context.Context, id string, in models.CarInput) (*models.Car, error) {

	path, err := resourcePath("/cars", id)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	car, err := call[models.Car](ctx, s.client, http.MethodPut, path, in)
	if err != nil {
		return nil, fmt.Errorf("update car: %w", err)
	}
	return &car, nil
}

func (s *carService) Delete(ctx context.Context, id string) error {

	path, err := resourcePath("/cars", id)
	if err != nil {
		return err
	}
	if err := s.client.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("delete car: %w", err)
	}
	return nil
}
