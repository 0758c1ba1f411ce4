package model

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitVerificationRequest_Validate(t *testing.T) {
	valid := SubmitVerificationRequest{ProductID: uuid.New()}
	assert.NoError(t, valid.Validate())

	missing := SubmitVerificationRequest{}
	assert.Error(t, missing.Validate())
}

func TestReviewVerificationRequest_Validate(t *testing.T) {
	score := 50
	reason := "documentation incomplete"
	longText := strings.Repeat("x", 501)

	tests := []struct {
		name    string
		req     ReviewVerificationRequest
		wantErr string // substring of the error message, empty means valid
	}{
		{
			name: "valid approval",
			req: ReviewVerificationRequest{
				Status:              StatusApproved,
				SustainabilityScore: &score,
			},
		},
		{
			name: "valid rejection",
			req: ReviewVerificationRequest{
				Status:          StatusRejected,
				RejectionReason: &reason,
			},
		},
		{
			name:    "status must be a decision",
			req:     ReviewVerificationRequest{Status: StatusPending},
			wantErr: "status",
		},
		{
			name:    "unknown status",
			req:     ReviewVerificationRequest{Status: VerificationStatus("MAYBE")},
			wantErr: "status",
		},
		{
			name:    "approval without score",
			req:     ReviewVerificationRequest{Status: StatusApproved},
			wantErr: "sustainabilityScore",
		},
		{
			name: "rejection without reason",
			req: ReviewVerificationRequest{
				Status: StatusRejected,
			},
			wantErr: "rejectionReason",
		},
		{
			name: "rejection reason too long",
			req: ReviewVerificationRequest{
				Status:          StatusRejected,
				RejectionReason: &longText,
			},
			wantErr: "rejectionReason",
		},
		{
			name: "notes too long",
			req: ReviewVerificationRequest{
				Status:              StatusApproved,
				SustainabilityScore: &score,
				ReviewerNotes:       &longText,
			},
			wantErr: "reviewerNotes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var verr *VerificationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, ErrCodeInvalidReviewData, verr.Code)
			assert.Contains(t, verr.Message, tt.wantErr)
		})
	}
}

func TestReviewVerificationRequest_FirstViolationWins(t *testing.T) {
	// Both the score and the notes are invalid; the score check runs first
	badScore := 150
	longNotes := strings.Repeat("n", 501)

	err := ReviewVerificationRequest{
		Status:              StatusApproved,
		SustainabilityScore: &badScore,
		ReviewerNotes:       &longNotes,
	}.Validate()

	require.Error(t, err)
	var verr *VerificationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "sustainabilityScore")
}
