package service

import (
	"context"

	"shopmate/internal/domain/entity"
)

// ProductQuery narrows a catalog listing. Zero values mean no filter.
type ProductQuery struct {
	Category string
	Search   string
}

// CatalogGateway covers the read-mostly product surface.
type CatalogGateway interface {
	// ListProducts returns the catalog, optionally filtered.
	ListProducts(ctx context.Context, query ProductQuery) ([]*entity.Product, error)

	// GetProduct returns one product by id.
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)

	// ListRatings returns a product's ratings.
	ListRatings(ctx context.Context, productID string) ([]*entity.Rating, error)

	// SubmitRating files the caller's one immutable rating for a product.
	// A second submission is a business rejection surfaced verbatim.
	SubmitRating(ctx context.Context, productID string, stars int, comment string) (*entity.Rating, error)
}
