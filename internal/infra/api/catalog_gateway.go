package api

import (
	"context"
	"net/url"

	"shopmate/internal/domain/entity"
	"shopmate/internal/domain/service"
)

type catalogGateway struct {
	client *Client
}

// NewCatalogGateway is the constructor for the catalog gateway.
func NewCatalogGateway(client *Client) service.CatalogGateway {
	return &catalogGateway{client: client}
}

// ListProducts returns the catalog, optionally filtered.
func (g *catalogGateway) ListProducts(ctx context.Context, query service.ProductQuery) ([]*entity.Product, error) {
	values := url.Values{}
	if query.Category != "" {
		values.Set("category", query.Category)
	}
	if query.Search != "" {
		values.Set("search", query.Search)
	}

	var products []*entity.Product
	if err := g.client.get(ctx, "/api/products", values, &products, false); err != nil {
		return nil, err
	}

	return products, nil
}

// GetProduct returns one product by id.
func (g *catalogGateway) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	var product entity.Product
	if err := g.client.get(ctx, "/api/products/"+productID, nil, &product, false); err != nil {
		return nil, err
	}

	return &product, nil
}

// ListRatings returns a product's ratings.
func (g *catalogGateway) ListRatings(ctx context.Context, productID string) ([]*entity.Rating, error) {
	var ratings []*entity.Rating
	if err := g.client.get(ctx, "/api/products/"+productID+"/ratings", nil, &ratings, false); err != nil {
		return nil, err
	}

	return ratings, nil
}

type ratingRequest struct {
	Stars   int    `json:"stars"`
	Comment string `json:"comment,omitempty"`
}

// SubmitRating files the caller's one immutable rating. A duplicate is a
// backend rejection surfaced verbatim.
func (g *catalogGateway) SubmitRating(ctx context.Context, productID string, stars int, comment string) (*entity.Rating, error) {
	var rating entity.Rating
	if err := g.client.post(ctx, "/api/products/"+productID+"/ratings", ratingRequest{Stars: stars, Comment: comment}, &rating, true); err != nil {
		return nil, err
	}

	return &rating, nil
}
