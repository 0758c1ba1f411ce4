package repository

import (
	"context"

	"github.com/google/uuid"

	"greenmarket-backend/internal/domains/product/model"
)

// =====================================================
// PRODUCT REPOSITORY INTERFACE
// =====================================================

type ProductRepository interface {
	// Create creates a new product listing
	Create(ctx context.Context, product *model.Product) error

	// GetByID gets product by ID
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetBySlug gets product by slug
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)

	// Exists checks product presence without loading the row
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// List lists products with filters and pagination
	List(ctx context.Context, req model.ListProductsRequest) ([]*model.Product, int, error)

	// Update updates product fields
	Update(ctx context.Context, product *model.Product) error

	// UpdateSustainabilityScore overwrites the certified score.
	// Called by the verification workflow on approval; no other caller
	// may touch this field.
	UpdateSustainabilityScore(ctx context.Context, id uuid.UUID, score int) error

	// SlugExists checks slug uniqueness
	SlugExists(ctx context.Context, slug string) (bool, error)
}
