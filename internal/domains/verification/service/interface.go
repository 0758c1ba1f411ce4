package service

import (
	"context"

	"github.com/google/uuid"

	"greenmarket-backend/internal/domains/verification/model"
)

// =====================================================
// VERIFICATION SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// Submit opens a new verification cycle for a product (seller facing)
	Submit(ctx context.Context, req model.SubmitVerificationRequest) (*model.VerificationResponse, error)

	// Review renders an approve/reject decision on an open verification
	// (admin facing). On approval the certified score is propagated onto
	// the product.
	Review(ctx context.Context, verificationID uuid.UUID, req model.ReviewVerificationRequest, reviewerID uuid.UUID) (*model.VerificationResponse, error)

	// ListPending lists verifications awaiting review
	ListPending(ctx context.Context) (*model.ListVerificationsResponse, error)

	// ListByProduct lists the full verification history of a product
	ListByProduct(ctx context.Context, productID uuid.UUID) (*model.ListVerificationsResponse, error)

	// GetStatistics returns verification counts per status
	GetStatistics(ctx context.Context) (*model.StatusCounts, error)
}

// =====================================================
// COLLABORATOR GATEWAYS
// =====================================================
// The workflow engine only needs existence checks and a single-field
// write on the product; the catalog and user domains own everything else.

// ProductGateway resolves products and propagates approved scores
type ProductGateway interface {
	// Exists reports whether the product is present in the catalog
	Exists(ctx context.Context, productID uuid.UUID) (bool, error)

	// UpdateSustainabilityScore overwrites the product's certified score
	UpdateSustainabilityScore(ctx context.Context, productID uuid.UUID, score int) error
}

// UserGateway resolves reviewer accounts
type UserGateway interface {
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
}
