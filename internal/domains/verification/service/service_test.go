package service

import (
	"context"
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"greenmarket-backend/internal/domains/verification/model"
)

// MockVerificationRepository is a mock implementation of the VerificationRepository interface
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) Create(ctx context.Context, verification *model.Verification) error {
	args := m.Called(ctx, verification)
	return args.Error(0)
}

func (m *MockVerificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Verification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Verification), args.Error(1)
}

func (m *MockVerificationRepository) GetLatestByProduct(ctx context.Context, productID uuid.UUID) (*model.Verification, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Verification), args.Error(1)
}

func (m *MockVerificationRepository) UpdateDecision(ctx context.Context, verification *model.Verification) error {
	args := m.Called(ctx, verification)
	return args.Error(0)
}

func (m *MockVerificationRepository) ListPending(ctx context.Context) ([]*model.Verification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Verification), args.Error(1)
}

func (m *MockVerificationRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*model.Verification, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Verification), args.Error(1)
}

func (m *MockVerificationRepository) CountByStatus(ctx context.Context) (*model.StatusCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StatusCounts), args.Error(1)
}

// MockProductGateway is a mock implementation of the ProductGateway interface
type MockProductGateway struct {
	mock.Mock
}

func (m *MockProductGateway) Exists(ctx context.Context, productID uuid.UUID) (bool, error) {
	args := m.Called(ctx, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductGateway) UpdateSustainabilityScore(ctx context.Context, productID uuid.UUID, score int) error {
	args := m.Called(ctx, productID, score)
	return args.Error(0)
}

// MockUserGateway is a mock implementation of the UserGateway interface
type MockUserGateway struct {
	mock.Mock
}

func (m *MockUserGateway) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func newTestService() (ServiceInterface, *MockVerificationRepository, *MockProductGateway, *MockUserGateway) {
	repo := new(MockVerificationRepository)
	products := new(MockProductGateway)
	users := new(MockUserGateway)
	return NewVerificationService(repo, products, users), repo, products, users
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func openVerification(productID uuid.UUID) *model.Verification {
	return &model.Verification{
		ID:             uuid.New(),
		ProductID:      productID,
		Status:         model.StatusPending,
		SubmissionDate: time.Now().Add(-time.Hour),
	}
}

func approvedVerification(productID uuid.UUID) *model.Verification {
	v := openVerification(productID)
	reviewerID := uuid.New()
	v.Approve(reviewerID, 80, nil, time.Now())
	return v
}

// =====================================================
// SUBMIT
// =====================================================

func TestSubmit_CreatesPendingVerification(t *testing.T) {
	svc, repo, products, _ := newTestService()
	ctx := context.Background()
	productID := uuid.New()

	products.On("Exists", ctx, productID).Return(true, nil)
	repo.On("GetLatestByProduct", ctx, productID).Return(nil, model.ErrVerificationNotFound)
	repo.On("Create", ctx, mock.AnythingOfType("*model.Verification")).Return(nil)

	resp, err := svc.Submit(ctx, model.SubmitVerificationRequest{ProductID: productID})

	require.NoError(t, err)
	assert.Equal(t, productID, resp.ProductID)
	assert.Equal(t, model.StatusPending, resp.Status)
	assert.Nil(t, resp.ReviewerID)
	assert.Nil(t, resp.SustainabilityScore)
	assert.False(t, resp.SubmissionDate.IsZero())
	repo.AssertExpectations(t)
}

func TestSubmit_MissingProductID(t *testing.T) {
	svc, repo, products, _ := newTestService()
	ctx := context.Background()

	// The zero UUID is what a request body without product_id binds to
	_, err := svc.Submit(ctx, model.SubmitVerificationRequest{})

	require.Error(t, err)
	var validationErrs validation.Errors
	assert.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, err.Error(), "product_id is required")
	products.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_UnknownProduct(t *testing.T) {
	svc, repo, products, _ := newTestService()
	ctx := context.Background()
	productID := uuid.New()

	products.On("Exists", ctx, productID).Return(false, nil)

	_, err := svc.Submit(ctx, model.SubmitVerificationRequest{ProductID: productID})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrProductNotFound)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_OpenVerificationBlocksResubmission(t *testing.T) {
	svc, repo, products, _ := newTestService()
	ctx := context.Background()
	productID := uuid.New()

	products.On("Exists", ctx, productID).Return(true, nil)
	repo.On("GetLatestByProduct", ctx, productID).Return(openVerification(productID), nil)

	_, err := svc.Submit(ctx, model.SubmitVerificationRequest{ProductID: productID})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrDuplicate)

	var verr *model.VerificationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, model.ErrCodeDuplicate, verr.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_TerminalCycleAllowsResubmission(t *testing.T) {
	svc, repo, products, _ := newTestService()
	ctx := context.Background()
	productID := uuid.New()

	// A rejected product may be resubmitted after fixing its claims
	rejected := openVerification(productID)
	rejected.Reject(uuid.New(), "missing certificates", nil, time.Now())

	products.On("Exists", ctx, productID).Return(true, nil)
	repo.On("GetLatestByProduct", ctx, productID).Return(rejected, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*model.Verification")).Return(nil)

	resp, err := svc.Submit(ctx, model.SubmitVerificationRequest{ProductID: productID})

	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, resp.Status)
}

func TestSubmit_ConcurrentSubmissionSurfacesAsDuplicate(t *testing.T) {
	svc, repo, products, _ := newTestService()
	ctx := context.Background()
	productID := uuid.New()

	// The pre-check saw no open row, but the transactional re-check in
	// the repository lost the race.
	products.On("Exists", ctx, productID).Return(true, nil)
	repo.On("GetLatestByProduct", ctx, productID).Return(nil, model.ErrVerificationNotFound)
	repo.On("Create", ctx, mock.AnythingOfType("*model.Verification")).Return(model.ErrDuplicate)

	_, err := svc.Submit(ctx, model.SubmitVerificationRequest{ProductID: productID})

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrDuplicate)
}

// =====================================================
// REVIEW: APPROVE
// =====================================================

func TestReview_ApproveSetsScoreAndPropagates(t *testing.T) {
	svc, repo, products, users := newTestService()
	ctx := context.Background()
	productID := uuid.New()
	reviewerID := uuid.New()

	verification := openVerification(productID)

	repo.On("GetByID", ctx, verification.ID).Return(verification, nil)
	users.On("Exists", ctx, reviewerID).Return(true, nil)
	repo.On("UpdateDecision", ctx, verification).Return(nil)
	products.On("UpdateSustainabilityScore", ctx, productID, 85).Return(nil)

	resp, err := svc.Review(ctx, verification.ID, model.ReviewVerificationRequest{
		Status:              model.StatusApproved,
		SustainabilityScore: intPtr(85),
		ReviewerNotes:       strPtr("supply chain documents check out"),
	}, reviewerID)

	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, resp.Status)
	require.NotNil(t, resp.SustainabilityScore)
	assert.Equal(t, 85, *resp.SustainabilityScore)
	require.NotNil(t, resp.ReviewerID)
	assert.Equal(t, reviewerID, *resp.ReviewerID)
	assert.NotNil(t, resp.VerificationDate)
	assert.Nil(t, resp.RejectionReason)
	products.AssertExpectations(t)
}

func TestReview_ApproveWithoutScore(t *testing.T) {
	svc, repo, _, users := newTestService()
	ctx := context.Background()
	reviewerID := uuid.New()

	verification := openVerification(uuid.New())

	repo.On("GetByID", ctx, verification.ID).Return(verification, nil)
	users.On("Exists", ctx, reviewerID).Return(true, nil)

	_, err := svc.Review(ctx, verification.ID, model.ReviewVerificationRequest{
		Status: model.StatusApproved,
	}, reviewerID)

	require.Error(t, err)
	var verr *model.VerificationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, model.ErrCodeInvalidReviewData, verr.Code)
	assert.Contains(t, verr.Message, "sustainabilityScore")
	repo.AssertNotCalled(t, "UpdateDecision", mock.Anything, mock.Anything)
}

func TestReview_ScoreOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		score int
	}{
		{"below minimum", -1},
		{"above maximum", 101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, users := newTestService()
			ctx := context.Background()
			reviewerID := uuid.New()

			verification := openVerification(uuid.New())

			repo.On("GetByID", ctx, verification.ID).Return(verification, nil)
			users.On("Exists", ctx, reviewerID).Return(true, nil)

			_, err := svc.Review(ctx, verification.ID, model.ReviewVerificationRequest{
				Status:              model.StatusApproved,
				SustainabilityScore: intPtr(tt.score),
			}, reviewerID)

			require.Error(t, err)
			var verr *model.VerificationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, model.ErrCodeInvalidReviewData, verr.Code)
		})
	}
}

func TestReview_BoundaryScoresAccepted(t *testing.T) {
	for _, score := range []int{0, 100} {
		svc, repo, products, users := newTestService()
		ctx := context.Background()
		reviewerID := uuid.New()

		verification := openVerification(uuid.New())

		repo.On("GetByID", ctx, verification.ID).Return(verification, nil)
		users.On("Exists", ctx, reviewerID).Return(true, nil)
		repo.On("UpdateDecision", ctx, verification).Return(nil)
		products.On("UpdateSustainabilityScore", ctx, verification.ProductID, score).Return(nil)

		resp, err := svc.Review(ctx, verification.ID, model.ReviewVerificationRequest{
			Status:              model.StatusApproved,
			SustainabilityScore: intPtr(score),
		}, reviewerID)

		require.NoError(t, err)
		assert.Equal(t, score, *resp.SustainabilityScore)
	}
}

func TestReview_PropagationFailureDoesNotRollBackApproval(t *testing.T) {
	svc, repo, products, users := newTestService()
	ctx := context.Background()
	reviewerID := uuid.New()

	verification := openVerification(uuid.New())

	repo.On("GetByID", ctx, verification.ID).Return(verification, nil)
	users.On("Exists", ctx, reviewerID).Return(true, nil)
	repo.On("UpdateDecision", ctx, verification).Return(nil)
	products.On("UpdateSustainabilityScore", ctx, verification.ProductID, 70).
		Return(errors.New("catalog unavailable"))

	resp, err := svc.Review(ctx, verification.ID, model.ReviewVerificationRequest{
		Status:              model.StatusApproved,
		SustainabilityScore: intPtr(70),
	}, reviewerID)

	// The decision is already durable; a stale product score is not an error
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, resp.Status)
}

// =====================================================
// REVIEW: REJECT
// =====================================================

func TestReview_RejectRequiresReason(t *testing.T) {
	svc, repo, _, users := newTestService()
	ctx := context.Background()
	reviewerID := uuid.New()

	verification := openVerification(uuid.New())

	repo.On("GetByID", ctx, verification.ID).Return(verification, nil)
	users.On("Exists", ctx, reviewerID).Return(true, nil)

	for _, reason := range []*string{nil, strPtr(""), strPtr("   ")} {
		_, err := svc.Review(ctx, verification.ID, model.ReviewVerificationRequest{
			Status:          model.StatusRejected,
			RejectionReason: reason,
		}, reviewerID)

		require.Error(t, err)
		var verr *model.VerificationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, model.ErrCodeInvalidReviewData, verr.Code)
		assert.Contains(t, verr.Message, "rejectionReason")
	}

	repo.AssertNotCalled(t, "UpdateDecision", mock.Anything, mock.Anything)
}

func TestReview_RejectRecordsReasonWithoutScore(t *testing.T) {
	svc, repo, products, users := newTestService()
	ctx := context.Background()
	reviewerID := uuid.New()

	verification := openVerification(uuid.New())

	repo.On("GetByID", ctx, verification.ID).Return(verification, nil)
	users.On("Exists", ctx, reviewerID).Return(true, nil)
	repo.On("UpdateDecision", ctx, verification).Return(nil)

	resp, err := svc.Review(ctx, verification.ID, model.ReviewVerificationRequest{
		Status:          model.StatusRejected,
		RejectionReason: strPtr("certificates expired in 2024"),
	}, reviewerID)

	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "certificates expired in 2024", *resp.RejectionReason)
	assert.Nil(t, resp.SustainabilityScore)
	products.AssertNotCalled(t, "UpdateSustainabilityScore", mock.Anything, mock.Anything, mock.Anything)
}

// =====================================================
// REVIEW: PRECONDITIONS
// =====================================================

func TestReview_UnknownVerification(t *testing.T) {
	svc, repo, _, users := newTestService()
	ctx := context.Background()
	verificationID := uuid.New()

	repo.On("GetByID", ctx, verificationID).Return(nil, model.ErrVerificationNotFound)

	// The payload is also invalid; existence must be checked first
	_, err := svc.Review(ctx, verificationID, model.ReviewVerificationRequest{
		Status: model.StatusApproved,
	}, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrVerificationNotFound)
	users.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestReview_TerminalVerificationIsImmutable(t *testing.T) {
	svc, repo, _, users := newTestService()
	ctx := context.Background()

	verification := approvedVerification(uuid.New())
	repo.On("GetByID", ctx, verification.ID).Return(verification, nil)

	// Even a fully valid decision payload must be refused
	_, err := svc.Review(ctx, verification.ID, model.ReviewVerificationRequest{
		Status:          model.StatusRejected,
		RejectionReason: strPtr("changed my mind"),
	}, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
	assert.Equal(t, model.StatusApproved, verification.Status)
	users.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "UpdateDecision", mock.Anything, mock.Anything)
}

func TestReview_UnknownReviewer(t *testing.T) {
	svc, repo, _, users := newTestService()
	ctx := context.Background()
	reviewerID := uuid.New()

	verification := openVerification(uuid.New())

	repo.On("GetByID", ctx, verification.ID).Return(verification, nil)
	users.On("Exists", ctx, reviewerID).Return(false, nil)

	_, err := svc.Review(ctx, verification.ID, model.ReviewVerificationRequest{
		Status:              model.StatusApproved,
		SustainabilityScore: intPtr(90),
	}, reviewerID)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrReviewerNotFound)
	repo.AssertNotCalled(t, "UpdateDecision", mock.Anything, mock.Anything)
}

func TestReview_ConcurrentResolutionDetectedOnWrite(t *testing.T) {
	svc, repo, _, users := newTestService()
	ctx := context.Background()
	reviewerID := uuid.New()

	verification := openVerification(uuid.New())

	repo.On("GetByID", ctx, verification.ID).Return(verification, nil)
	users.On("Exists", ctx, reviewerID).Return(true, nil)
	// Another reviewer resolved the row between our read and write
	repo.On("UpdateDecision", ctx, verification).Return(model.ErrInvalidStatus)

	_, err := svc.Review(ctx, verification.ID, model.ReviewVerificationRequest{
		Status:              model.StatusApproved,
		SustainabilityScore: intPtr(50),
	}, reviewerID)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
}

// =====================================================
// LISTINGS AND STATISTICS
// =====================================================

func TestListPending(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	first := openVerification(uuid.New())
	second := openVerification(uuid.New())
	repo.On("ListPending", ctx).Return([]*model.Verification{first, second}, nil)

	resp, err := svc.ListPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Verifications, 2)
}

func TestListPending_Empty(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	repo.On("ListPending", ctx).Return([]*model.Verification{}, nil)

	resp, err := svc.ListPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.Verifications)
}

func TestListByProduct_ReturnsFullHistory(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()
	productID := uuid.New()

	rejected := openVerification(productID)
	rejected.Reject(uuid.New(), "missing documents", nil, time.Now().Add(-24*time.Hour))
	current := openVerification(productID)

	repo.On("ListByProduct", ctx, productID).Return([]*model.Verification{current, rejected}, nil)

	resp, err := svc.ListByProduct(ctx, productID)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, model.StatusPending, resp.Verifications[0].Status)
	assert.Equal(t, model.StatusRejected, resp.Verifications[1].Status)
}

func TestGetStatistics(t *testing.T) {
	svc, repo, _, _ := newTestService()
	ctx := context.Background()

	repo.On("CountByStatus", ctx).Return(&model.StatusCounts{
		Pending:  3,
		Approved: 10,
		Rejected: 2,
	}, nil)

	counts, err := svc.GetStatistics(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, counts.Pending)
	assert.Equal(t, 10, counts.Approved)
	assert.Equal(t, 2, counts.Rejected)
	assert.Equal(t, 0, counts.InReview)
}
