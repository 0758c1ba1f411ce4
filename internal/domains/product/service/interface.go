package service

import (
	"context"

	"github.com/google/uuid"

	"greenmarket-backend/internal/domains/product/model"
)

// =====================================================
// PRODUCT SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// CreateProduct lists a new product for a seller
	CreateProduct(ctx context.Context, sellerID uuid.UUID, req model.CreateProductRequest) (*model.ProductResponse, error)

	// GetProduct gets a product by ID
	GetProduct(ctx context.Context, id uuid.UUID) (*model.ProductResponse, error)

	// GetProductBySlug gets a product by slug
	GetProductBySlug(ctx context.Context, slug string) (*model.ProductResponse, error)

	// ListProducts lists the catalog with filters and pagination
	ListProducts(ctx context.Context, req model.ListProductsRequest) (*model.ListProductsResponse, error)

	// UpdateProduct updates a seller's own listing
	UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, req model.UpdateProductRequest) (*model.ProductResponse, error)

	// Exists checks product presence. Consumed by the verification
	// workflow as its product lookup.
	Exists(ctx context.Context, productID uuid.UUID) (bool, error)

	// UpdateSustainabilityScore overwrites the certified score on a
	// product. Consumed by the verification workflow on approval.
	UpdateSustainabilityScore(ctx context.Context, productID uuid.UUID, score int) error
}
