package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"greenmarket-backend/internal/domains/product/model"
	"greenmarket-backend/internal/domains/product/service"
	"greenmarket-backend/internal/shared/response"
)

// =====================================================
// PRODUCT HANDLER
// =====================================================

type ProductHandler struct {
	productService service.ServiceInterface
}

func NewProductHandler(productService service.ServiceInterface) *ProductHandler {
	return &ProductHandler{
		productService: productService,
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
// PUBLIC ENDPOINTS
// =====================================================

// ListProducts lists the catalog
// GET /api/v1/products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var req model.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.productService.ListProducts(c.Request.Context(), req)
	if err != nil {
		statusCode, errCode := mapProductError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// GetProduct gets product by ID
// GET /api/v1/products/:product_id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	resp, err := h.productService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		statusCode, errCode := mapProductError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// GetProductBySlug gets product by slug
// GET /api/v1/products/slug/:slug
func (h *ProductHandler) GetProductBySlug(c *gin.Context) {
	resp, err := h.productService.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		statusCode, errCode := mapProductError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// =====================================================
// SELLER ENDPOINTS
// =====================================================

// CreateProduct lists a new product
// POST /api/v1/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	// Step 1: Get seller ID from JWT
	sellerID, ok := getUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	// Step 2: Bind request body
	var req model.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 3: Call service
	resp, err := h.productService.CreateProduct(c.Request.Context(), sellerID, req)
	if err != nil {
		statusCode, errCode := mapProductError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	// Step 4: Return success
	response.Success(c, http.StatusCreated, resp)
}

// UpdateProduct updates a seller's own listing
// PUT /api/v1/products/:product_id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	sellerID, ok := getUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req model.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.productService.UpdateProduct(c.Request.Context(), sellerID, productID, req)
	if err != nil {
		statusCode, errCode := mapProductError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// =====================================================
// ERROR MAPPING
// =====================================================

// mapProductError maps product errors to HTTP status codes
func mapProductError(err error) (int, string) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest, "VALIDATION_ERROR"
	}

	if prodErr, ok := err.(*model.ProductError); ok {
		switch prodErr.Code {
		case model.ErrCodeProductNotFound:
			return http.StatusNotFound, prodErr.Code
		case model.ErrCodeSlugTaken:
			return http.StatusConflict, prodErr.Code
		case model.ErrCodeNotOwner:
			return http.StatusForbidden, prodErr.Code
		case model.ErrCodeInvalidScore:
			return http.StatusBadRequest, prodErr.Code
		default:
			return http.StatusInternalServerError, "INTERNAL_ERROR"
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}
