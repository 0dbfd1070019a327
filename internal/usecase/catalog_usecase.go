package usecase

import (
	"context"

	"shopmate/internal/domain/entity"
	"shopmate/internal/domain/service"
)

// RatingInput defines a product rating submission.
type RatingInput struct {
	Stars   int `validate:"required,min=1,max=5"`
	Comment string
}

// CatalogUsecase is the shopper's read surface over the product catalog.
type CatalogUsecase interface {
	// Browse lists products, optionally filtered by category or search term.
	Browse(ctx context.Context, query service.ProductQuery) ([]*entity.Product, error)

	// Detail returns one product.
	Detail(ctx context.Context, productID string) (*entity.Product, error)

	// Ratings returns a product's ratings.
	Ratings(ctx context.Context, productID string) ([]*entity.Rating, error)

	// Rate submits the caller's one immutable rating for a product.
	Rate(ctx context.Context, productID string, input RatingInput) (*entity.Rating, error)
}
