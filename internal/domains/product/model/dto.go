package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateProductRequest seller request to list a product
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Images      []string        `json:"images"`
}

func (r CreateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 200).Error("name must be 2-200 characters"),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Price,
			validation.By(validatePrice),
		),
		validation.Field(&r.Images,
			validation.Length(0, 10).Error("maximum 10 images allowed"),
		),
	)
}

// UpdateProductRequest seller request to update a listing
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Images      []string         `json:"images"`
	Status      *ProductStatus   `json:"status"`
}

func (r UpdateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("name must not be blank"),
			validation.Length(2, 200).Error("name must be 2-200 characters"),
		),
		validation.Field(&r.Category,
			validation.NilOrNotEmpty.Error("category must not be blank"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Price,
			validation.By(validateOptionalPrice),
		),
		validation.Field(&r.Status,
			validation.By(validateOptionalStatus),
		),
		validation.Field(&r.Images,
			validation.Length(0, 10).Error("maximum 10 images allowed"),
		),
	)
}

func validatePrice(value interface{}) error {
	price, ok := value.(decimal.Decimal)
	if !ok || price.IsNegative() || price.IsZero() {
		return validation.NewError("validation_price", "price must be greater than zero")
	}
	return nil
}

func validateOptionalPrice(value interface{}) error {
	price, ok := value.(*decimal.Decimal)
	if !ok || price == nil {
		return nil
	}
	return validatePrice(*price)
}

func validateOptionalStatus(value interface{}) error {
	status, ok := value.(*ProductStatus)
	if !ok || status == nil {
		return nil
	}
	if !status.IsValid() {
		return validation.NewError("validation_status", "status must be active or inactive")
	}
	return nil
}

// ListProductsRequest query parameters for catalog listing
type ListProductsRequest struct {
	Category      *string `form:"category"`
	SellerID      *string `form:"seller_id"`
	CertifiedOnly bool    `form:"certified_only"`
	Page          int     `form:"page"`
	Limit         int     `form:"limit"`
}

func (r *ListProductsRequest) Validate() error {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}
	return nil
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// ProductResponse read view of a product
type ProductResponse struct {
	ID                  uuid.UUID       `json:"id"`
	SellerID            uuid.UUID       `json:"seller_id"`
	Name                string          `json:"name"`
	Slug                string          `json:"slug"`
	Description         *string         `json:"description"`
	Price               decimal.Decimal `json:"price"`
	Category            string          `json:"category"`
	Images              []string        `json:"images"`
	SustainabilityScore *int            `json:"sustainability_score"`
	Status              ProductStatus   `json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// NewProductResponse builds the read view from an entity
func NewProductResponse(p *Product) *ProductResponse {
	return &ProductResponse{
		ID:                  p.ID,
		SellerID:            p.SellerID,
		Name:                p.Name,
		Slug:                p.Slug,
		Description:         p.Description,
		Price:               p.Price,
		Category:            p.Category,
		Images:              p.Images,
		SustainabilityScore: p.SustainabilityScore,
		Status:              p.Status,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// PaginationMeta pagination metadata
type PaginationMeta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// ListProductsResponse response for catalog listings
type ListProductsResponse struct {
	Products   []ProductResponse `json:"products"`
	Pagination PaginationMeta    `json:"pagination"`
}
