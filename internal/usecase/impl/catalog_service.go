package impl

import (
	"context"
	"log/slog"

	"shopmate/internal/domain/entity"
	apperrors "shopmate/internal/domain/errors"
	"shopmate/internal/domain/service"
	"shopmate/internal/usecase"
	"shopmate/internal/validator"

	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	gateway  service.CatalogGateway
	session  usecase.SessionUsecase
	validate *validator.Validator
	logger   *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	gateway service.CatalogGateway,
	session usecase.SessionUsecase,
	validate *validator.Validator,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		gateway:  gateway,
		session:  session,
		validate: validate,
		logger:   logger,
	}
}

// Browse lists products, optionally filtered.
func (srv *catalogService) Browse(ctx context.Context, query service.ProductQuery) ([]*entity.Product, error) {
	products, err := srv.gateway.ListProducts(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// Detail returns one product.
func (srv *catalogService) Detail(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := srv.gateway.GetProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// Ratings returns a product's ratings.
func (srv *catalogService) Ratings(ctx context.Context, productID string) ([]*entity.Rating, error) {
	ratings, err := srv.gateway.ListRatings(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	return ratings, nil
}

// Rate submits the caller's one immutable rating. A repeat submission is a
// backend rejection surfaced verbatim.
func (srv *catalogService) Rate(ctx context.Context, productID string, input usecase.RatingInput) (*entity.Rating, error) {
	if !srv.session.Current().Authenticated() {
		return nil, apperrors.ErrUnauthorized
	}

	if err := srv.validate.Struct(input); err != nil {
		return nil, err
	}

	rating, err := srv.gateway.SubmitRating(ctx, productID, input.Stars, input.Comment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit rating")
	}

	return rating, nil
}
