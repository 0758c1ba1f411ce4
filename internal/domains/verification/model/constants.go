package model

const (
	// Sustainability score bounds (assigned on approval)
	MinSustainabilityScore = 0
	MaxSustainabilityScore = 100

	// Free-text field limits
	MaxReviewerNotesLength   = 500
	MaxRejectionReasonLength = 500
)

// VerificationStatus represents the state of a verification cycle
type VerificationStatus string

const (
	StatusPending VerificationStatus = "PENDING"
	// StatusInReview is a reserved intermediate status. The review
	// operation accepts it as reviewable, but no operation currently
	// transitions a verification into it.
	StatusInReview VerificationStatus = "IN_REVIEW"
	StatusApproved VerificationStatus = "APPROVED"
	StatusRejected VerificationStatus = "REJECTED"
)

func (s VerificationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsOpen reports whether the verification is still awaiting a decision
func (s VerificationStatus) IsOpen() bool {
	return s == StatusPending || s == StatusInReview
}

// IsTerminal reports whether the verification is resolved and immutable
func (s VerificationStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func (s VerificationStatus) String() string {
	return string(s)
}
