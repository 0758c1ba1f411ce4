package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"greenmarket-backend/internal/domains/verification/model"
	"greenmarket-backend/internal/domains/verification/repository"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================
// The engine is stateless between calls: every operation is a pure
// function of its inputs plus store state, with no shared mutable state
// beyond the injected handles.

type verificationService struct {
	verificationRepo repository.VerificationRepository
	products         ProductGateway
	users            UserGateway
}

func NewVerificationService(
	verificationRepo repository.VerificationRepository,
	products ProductGateway,
	users UserGateway,
) ServiceInterface {
	return &verificationService{
		verificationRepo: verificationRepo,
		products:         products,
		users:            users,
	}
}

// =====================================================
// SUBMIT
// =====================================================

func (s *verificationService) Submit(
	ctx context.Context,
	req model.SubmitVerificationRequest,
) (*model.VerificationResponse, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Resolve product
	exists, err := s.products.Exists(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product: %w", err)
	}
	if !exists {
		return nil, model.NewProductNotFoundError(req.ProductID)
	}

	// Step 3: Duplicate check - a product may have at most one open
	// verification. Terminal cycles do not block resubmission.
	latest, err := s.verificationRepo.GetLatestByProduct(ctx, req.ProductID)
	if err != nil && !errors.Is(err, model.ErrVerificationNotFound) {
		return nil, fmt.Errorf("failed to check existing verification: %w", err)
	}
	if latest != nil && latest.IsOpen() {
		return nil, model.NewDuplicateError(req.ProductID)
	}

	// Step 4: Create the new cycle
	verification := &model.Verification{
		ID:             uuid.New(),
		ProductID:      req.ProductID,
		Status:         model.StatusPending,
		SubmissionDate: time.Now(),
	}

	// The repository re-runs the open-verification check inside its
	// transaction, so a concurrent submission surfaces as ErrDuplicate
	// here rather than a second open row.
	if err := s.verificationRepo.Create(ctx, verification); err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			return nil, model.NewDuplicateError(req.ProductID)
		}
		return nil, fmt.Errorf("failed to create verification: %w", err)
	}

	// Step 5: Build response
	return model.NewVerificationResponse(verification), nil
}

// =====================================================
// REVIEW
// =====================================================

func (s *verificationService) Review(
	ctx context.Context,
	verificationID uuid.UUID,
	req model.ReviewVerificationRequest,
	reviewerID uuid.UUID,
) (*model.VerificationResponse, error) {
	// Preconditions run in a fixed order and fail fast; nothing is
	// mutated until all of them pass.

	// Step 1: Verification must exist
	verification, err := s.verificationRepo.GetByID(ctx, verificationID)
	if err != nil {
		if errors.Is(err, model.ErrVerificationNotFound) {
			return nil, model.NewVerificationNotFoundError()
		}
		return nil, fmt.Errorf("failed to get verification: %w", err)
	}

	// Step 2: Terminal verifications are immutable
	if !verification.IsOpen() {
		return nil, model.NewInvalidStatusError(verification.Status)
	}

	// Step 3: Reviewer must exist
	exists, err := s.users.Exists(ctx, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve reviewer: %w", err)
	}
	if !exists {
		return nil, model.NewReviewerNotFoundError(reviewerID)
	}

	// Step 4: Decision payload must be consistent with the outcome
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 5: Apply the decision
	now := time.Now()
	switch req.Status {
	case model.StatusApproved:
		verification.Approve(reviewerID, *req.SustainabilityScore, req.ReviewerNotes, now)
	case model.StatusRejected:
		verification.Reject(reviewerID, *req.RejectionReason, req.ReviewerNotes, now)
	}

	// Step 6: Persist the outcome
	if err := s.verificationRepo.UpdateDecision(ctx, verification); err != nil {
		if errors.Is(err, model.ErrInvalidStatus) {
			// A concurrent reviewer resolved it between our read and write
			return nil, model.NewInvalidStatusError(verification.Status)
		}
		return nil, fmt.Errorf("failed to update verification: %w", err)
	}

	// Step 7: Propagate the approved score onto the product.
	// The verification row is already durably APPROVED at this point;
	// a propagation failure leaves the product score stale, which is
	// logged and surfaced but does not roll back the decision.
	if verification.Status == model.StatusApproved {
		if err := s.products.UpdateSustainabilityScore(ctx, verification.ProductID, *verification.SustainabilityScore); err != nil {
			log.Error().
				Err(err).
				Str("verification_id", verification.ID.String()).
				Str("product_id", verification.ProductID.String()).
				Int("score", *verification.SustainabilityScore).
				Msg("Verification approved but score propagation failed")
		}
	}

	// Step 8: Build response
	return model.NewVerificationResponse(verification), nil
}

// =====================================================
// LIST PENDING
// =====================================================

func (s *verificationService) ListPending(ctx context.Context) (*model.ListVerificationsResponse, error) {
	verifications, err := s.verificationRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending verifications: %w", err)
	}

	return buildListResponse(verifications), nil
}

// =====================================================
// LIST BY PRODUCT
// =====================================================

func (s *verificationService) ListByProduct(
	ctx context.Context,
	productID uuid.UUID,
) (*model.ListVerificationsResponse, error) {
	verifications, err := s.verificationRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list verifications: %w", err)
	}

	return buildListResponse(verifications), nil
}

// =====================================================
// STATISTICS
// =====================================================

func (s *verificationService) GetStatistics(ctx context.Context) (*model.StatusCounts, error) {
	counts, err := s.verificationRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}

	return counts, nil
}

// =====================================================
// HELPERS
// =====================================================

func buildListResponse(verifications []*model.Verification) *model.ListVerificationsResponse {
	responses := make([]model.VerificationResponse, 0, len(verifications))
	for _, v := range verifications {
		responses = append(responses, *model.NewVerificationResponse(v))
	}

	return &model.ListVerificationsResponse{
		Verifications: responses,
		Total:         len(responses),
	}
}
