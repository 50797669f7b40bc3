package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/commercekit/commerce-api/internal/core/domain"
	"github.com/commercekit/commerce-api/internal/core/ports"
)

// ProductService manages the catalog. The public API addresses products by
// name, so every mutation resolves the name to an id first.
type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) Create(ctx context.Context, name, description string, price float64) (*domain.Product, error) {
	created, err := s.repo.Create(ctx, &domain.Product{
		Name:        name,
		Description: description,
		Price:       price,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *ProductService) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Update(ctx context.Context, name, newName, newDescription string, newPrice float64) (*domain.Product, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	// Zero-valued fields mean "keep the current value".
	if newName == "" {
		newName = existing.Name
	}
	if newDescription == "" {
		newDescription = existing.Description
	}
	if newPrice == 0 {
		newPrice = existing.Price
	}
	return s.repo.Update(ctx, existing.ID, newName, newDescription, newPrice)
}

func (s *ProductService) DeleteByName(ctx context.Context, name string) (*domain.Product, error) {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	deleted, err := s.repo.Delete(ctx, existing.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("product_id", deleted.ID).Str("name", deleted.Name).Msg("product deleted")
	return deleted, nil
}
