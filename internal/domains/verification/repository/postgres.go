package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"greenmarket-backend/internal/domains/verification/model"
	"greenmarket-backend/pkg/database"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresVerificationRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresVerificationRepository(pool *pgxpool.Pool) VerificationRepository {
	return &postgresVerificationRepository{pool: pool}
}

const verificationColumns = `
	id, product_id, status, submission_date,
	verification_date, reviewer_id, reviewer_notes,
	sustainability_score, rejection_reason
`

// uniqueOpenVerificationConstraint backs the "one open verification per
// product" invariant at the store layer:
//
//	CREATE UNIQUE INDEX uq_verifications_open_product
//	ON verifications (product_id)
//	WHERE status IN ('PENDING', 'IN_REVIEW');
const uniqueOpenVerificationConstraint = "uq_verifications_open_product"

// =====================================================
// CREATE
// =====================================================

func (r *postgresVerificationRepository) Create(ctx context.Context, verification *model.Verification) error {
	// Transaction scope: the open-verification check and the insert must
	// see the same state, so two concurrent submissions for one product
	// cannot both pass the check. The partial unique index is the backstop.
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		lockQuery := `
			SELECT id FROM verifications
			WHERE product_id = $1 AND status IN ('PENDING', 'IN_REVIEW')
			FOR UPDATE
		`

		var openID uuid.UUID
		err := tx.QueryRow(ctx, lockQuery, verification.ProductID).Scan(&openID)
		if err == nil {
			return model.ErrDuplicate
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to check open verification: %w", err)
		}

		insertQuery := `
			INSERT INTO verifications (
				id, product_id, status, submission_date
			) VALUES ($1, $2, $3, $4)
		`

		_, err = tx.Exec(ctx, insertQuery,
			verification.ID,
			verification.ProductID,
			verification.Status,
			verification.SubmissionDate,
		)

		if err != nil {
			// Unique constraint violation: a concurrent submission won the race
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return model.ErrDuplicate
			}
			return fmt.Errorf("failed to create verification: %w", err)
		}

		return nil
	})
}

// =====================================================
// GET BY ID
// =====================================================

func (r *postgresVerificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Verification, error) {
	query := `
		SELECT ` + verificationColumns + `
		FROM verifications
		WHERE id = $1
	`

	verification := &model.Verification{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&verification.ID,
		&verification.ProductID,
		&verification.Status,
		&verification.SubmissionDate,
		&verification.VerificationDate,
		&verification.ReviewerID,
		&verification.ReviewerNotes,
		&verification.SustainabilityScore,
		&verification.RejectionReason,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrVerificationNotFound
		}
		return nil, fmt.Errorf("failed to get verification: %w", err)
	}

	return verification, nil
}

// =====================================================
// GET LATEST BY PRODUCT
// =====================================================

func (r *postgresVerificationRepository) GetLatestByProduct(ctx context.Context, productID uuid.UUID) (*model.Verification, error) {
	query := `
		SELECT ` + verificationColumns + `
		FROM verifications
		WHERE product_id = $1
		ORDER BY submission_date DESC
		LIMIT 1
	`

	verification := &model.Verification{}
	err := r.pool.QueryRow(ctx, query, productID).Scan(
		&verification.ID,
		&verification.ProductID,
		&verification.Status,
		&verification.SubmissionDate,
		&verification.VerificationDate,
		&verification.ReviewerID,
		&verification.ReviewerNotes,
		&verification.SustainabilityScore,
		&verification.RejectionReason,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrVerificationNotFound
		}
		return nil, fmt.Errorf("failed to get latest verification: %w", err)
	}

	return verification, nil
}

// =====================================================
// UPDATE DECISION
// =====================================================

func (r *postgresVerificationRepository) UpdateDecision(ctx context.Context, verification *model.Verification) error {
	// Guarded on status so a concurrent reviewer cannot overwrite a
	// decision that already landed
	query := `
		UPDATE verifications
		SET
			status = $2,
			verification_date = $3,
			reviewer_id = $4,
			reviewer_notes = $5,
			sustainability_score = $6,
			rejection_reason = $7
		WHERE id = $1 AND status IN ('PENDING', 'IN_REVIEW')
	`

	result, err := r.pool.Exec(ctx, query,
		verification.ID,
		verification.Status,
		verification.VerificationDate,
		verification.ReviewerID,
		verification.ReviewerNotes,
		verification.SustainabilityScore,
		verification.RejectionReason,
	)

	if err != nil {
		return fmt.Errorf("failed to update verification: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrInvalidStatus
	}

	return nil
}

// =====================================================
// LIST PENDING
// =====================================================

func (r *postgresVerificationRepository) ListPending(ctx context.Context) ([]*model.Verification, error) {
	// Oldest submissions first: the order a review queue is worked in
	query := `
		SELECT ` + verificationColumns + `
		FROM verifications
		WHERE status = 'PENDING'
		ORDER BY submission_date ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending verifications: %w", err)
	}
	defer rows.Close()

	return scanVerifications(rows)
}

// =====================================================
// LIST BY PRODUCT
// =====================================================

func (r *postgresVerificationRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*model.Verification, error) {
	query := `
		SELECT ` + verificationColumns + `
		FROM verifications
		WHERE product_id = $1
		ORDER BY submission_date DESC
	`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list verifications: %w", err)
	}
	defer rows.Close()

	return scanVerifications(rows)
}

// =====================================================
// STATUS COUNTS
// =====================================================

func (r *postgresVerificationRepository) CountByStatus(ctx context.Context) (*model.StatusCounts, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'PENDING'),
			COUNT(*) FILTER (WHERE status = 'IN_REVIEW'),
			COUNT(*) FILTER (WHERE status = 'APPROVED'),
			COUNT(*) FILTER (WHERE status = 'REJECTED')
		FROM verifications
	`

	counts := &model.StatusCounts{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&counts.Pending,
		&counts.InReview,
		&counts.Approved,
		&counts.Rejected,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to count verifications: %w", err)
	}

	return counts, nil
}

// =====================================================
// HELPERS
// =====================================================

func scanVerifications(rows pgx.Rows) ([]*model.Verification, error) {
	var verifications []*model.Verification
	for rows.Next() {
		verification := &model.Verification{}
		err := rows.Scan(
			&verification.ID,
			&verification.ProductID,
			&verification.Status,
			&verification.SubmissionDate,
			&verification.VerificationDate,
			&verification.ReviewerID,
			&verification.ReviewerNotes,
			&verification.SustainabilityScore,
			&verification.RejectionReason,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan verification: %w", err)
		}
		verifications = append(verifications, verification)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read verifications: %w", err)
	}

	return verifications, nil
}
