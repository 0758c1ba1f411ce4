package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"greenmarket-backend/internal/domains/verification/model"
	"greenmarket-backend/internal/domains/verification/service"
)

// =====================================================
// VERIFICATION HANDLER
// =====================================================

type VerificationHandler struct {
	verificationService service.ServiceInterface
}

func NewVerificationHandler(verificationService service.ServiceInterface) *VerificationHandler {
	return &VerificationHandler{
		verificationService: verificationService,
	}
}

// getUserID extracts user ID from JWT claims set by the auth middleware
func getUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

// =====================================================
// SELLER ENDPOINTS
// =====================================================

// SubmitForVerification opens a new verification cycle for a product
// POST /api/v1/verifications
func (h *VerificationHandler) SubmitForVerification(c *gin.Context) {
	// Step 1: Bind request body
	var req model.SubmitVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	// Step 2: Call service
	response, err := h.verificationService.Submit(c.Request.Context(), req)
	if err != nil {
		statusCode, errCode := mapVerificationError(err)
		respondError(c, statusCode, errCode, err.Error())
		return
	}

	// Step 3: Return success
	respondSuccess(c, http.StatusCreated, response)
}

// GetProductVerifications lists the verification history of a product
// GET /api/v1/products/:product_id/verifications
func (h *VerificationHandler) GetProductVerifications(c *gin.Context) {
	// Step 1: Parse product ID
	productIDStr := c.Param("product_id")
	productID, err := uuid.Parse(productIDStr)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID")
		return
	}

	// Step 2: Call service
	response, err := h.verificationService.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		statusCode, errCode := mapVerificationError(err)
		respondError(c, statusCode, errCode, err.Error())
		return
	}

	// Step 3: Return success
	respondSuccess(c, http.StatusOK, response)
}

// =====================================================
// ADMIN ENDPOINTS
// =====================================================

// ReviewVerification renders a decision on an open verification
// PUT /api/v1/admin/verifications/:id/review
func (h *VerificationHandler) ReviewVerification(c *gin.Context) {
	// Step 1: Get reviewer ID from JWT (role enforced by middleware)
	reviewerID, ok := getUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "AUTH_ERROR", "Unauthorized")
		return
	}

	// Step 2: Parse verification ID
	verificationIDStr := c.Param("id")
	verificationID, err := uuid.Parse(verificationIDStr)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid verification ID")
		return
	}

	// Step 3: Bind decision payload
	var req model.ReviewVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	// Step 4: Call service (payload validation happens there, after the
	// existence and status preconditions)
	response, err := h.verificationService.Review(c.Request.Context(), verificationID, req, reviewerID)
	if err != nil {
		statusCode, errCode := mapVerificationError(err)
		respondError(c, statusCode, errCode, err.Error())
		return
	}

	// Step 5: Return success
	respondSuccess(c, http.StatusOK, response)
}

// ListPendingVerifications lists the review queue
// GET /api/v1/admin/verifications/pending
func (h *VerificationHandler) ListPendingVerifications(c *gin.Context) {
	response, err := h.verificationService.ListPending(c.Request.Context())
	if err != nil {
		statusCode, errCode := mapVerificationError(err)
		respondError(c, statusCode, errCode, err.Error())
		return
	}

	respondSuccess(c, http.StatusOK, response)
}

// GetStatistics returns verification counts per status
// GET /api/v1/admin/verifications/stats
func (h *VerificationHandler) GetStatistics(c *gin.Context) {
	statistics, err := h.verificationService.GetStatistics(c.Request.Context())
	if err != nil {
		statusCode, errCode := mapVerificationError(err)
		respondError(c, statusCode, errCode, err.Error())
		return
	}

	respondSuccess(c, http.StatusOK, statistics)
}

// =====================================================
// RESPONSE HELPERS
// =====================================================

// respondSuccess sends success response
func respondSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondError sends error response
func respondError(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// mapVerificationError maps verification errors to HTTP status codes
func mapVerificationError(err error) (int, string) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest, "VALIDATION_ERROR"
	}

	if verErr, ok := err.(*model.VerificationError); ok {
		switch verErr.Code {
		case model.ErrCodeVerificationNotFound, model.ErrCodeProductNotFound, model.ErrCodeReviewerNotFound:
			return http.StatusNotFound, verErr.Code
		case model.ErrCodeDuplicate:
			return http.StatusConflict, verErr.Code
		case model.ErrCodeInvalidStatus, model.ErrCodeInvalidReviewData:
			return http.StatusBadRequest, verErr.Code
		default:
			return http.StatusInternalServerError, "INTERNAL_ERROR"
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}
