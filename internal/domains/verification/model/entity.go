package model

import (
	"time"

	"github.com/google/uuid"
)

// Verification represents one review cycle for one product: from seller
// submission through an approve/reject decision by an admin reviewer.
// Rows are never deleted; terminal verifications form the audit trail.
type Verification struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`

	Status         VerificationStatus `json:"status"`
	SubmissionDate time.Time          `json:"submission_date"`

	// Decision fields - absent while the verification is open
	VerificationDate    *time.Time `json:"verification_date"`
	ReviewerID          *uuid.UUID `json:"reviewer_id"`
	ReviewerNotes       *string    `json:"reviewer_notes"`
	SustainabilityScore *int       `json:"sustainability_score"`
	RejectionReason     *string    `json:"rejection_reason"`
}

// IsOpen checks if the verification is still awaiting a decision
func (v *Verification) IsOpen() bool {
	return v.Status.IsOpen()
}

// IsTerminal checks if the verification has been resolved
func (v *Verification) IsTerminal() bool {
	return v.Status.IsTerminal()
}

// Approve records an approval decision with the certified score.
// Caller must have checked IsOpen() first; terminal rows are immutable.
func (v *Verification) Approve(reviewerID uuid.UUID, score int, notes *string, decidedAt time.Time) {
	v.Status = StatusApproved
	v.VerificationDate = &decidedAt
	v.ReviewerID = &reviewerID
	v.ReviewerNotes = notes
	v.SustainabilityScore = &score
	v.RejectionReason = nil
}

// Reject records a rejection decision with the mandatory reason.
func (v *Verification) Reject(reviewerID uuid.UUID, reason string, notes *string, decidedAt time.Time) {
	v.Status = StatusRejected
	v.VerificationDate = &decidedAt
	v.ReviewerID = &reviewerID
	v.ReviewerNotes = notes
	v.RejectionReason = &reason
	v.SustainabilityScore = nil
}
