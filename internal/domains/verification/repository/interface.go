package repository

import (
	"context"

	"github.com/google/uuid"

	"greenmarket-backend/internal/domains/verification/model"
)

// =====================================================
// VERIFICATION REPOSITORY INTERFACE
// =====================================================

type VerificationRepository interface {
	// Create persists a new verification. The write runs in a transaction
	// that re-checks "no open verification for this product" and returns
	// model.ErrDuplicate when one exists.
	Create(ctx context.Context, verification *model.Verification) error

	// GetByID gets verification by ID
	GetByID(ctx context.Context, id uuid.UUID) (*model.Verification, error)

	// GetLatestByProduct gets the most recent verification for a product,
	// ordered by submission date descending
	GetLatestByProduct(ctx context.Context, productID uuid.UUID) (*model.Verification, error)

	// UpdateDecision writes the review outcome fields of a verification
	UpdateDecision(ctx context.Context, verification *model.Verification) error

	// ListPending lists all verifications awaiting review
	ListPending(ctx context.Context) ([]*model.Verification, error)

	// ListByProduct lists every verification cycle for a product (audit history)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*model.Verification, error)

	// CountByStatus counts verifications per status (admin dashboard)
	CountByStatus(ctx context.Context) (*model.StatusCounts, error)
}
