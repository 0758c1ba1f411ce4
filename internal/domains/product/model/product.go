package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the catalog visibility of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive:
		return true
	}
	return false
}

// Product represents a seller listing in the catalog.
// SustainabilityScore is owned by the verification workflow: it is the
// one field that subsystem may write, set when a verification is approved.
type Product struct {
	ID       uuid.UUID `json:"id"`
	SellerID uuid.UUID `json:"seller_id"`

	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`

	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`

	Images pq.StringArray `json:"images"`

	SustainabilityScore *int          `json:"sustainability_score"`
	Status              ProductStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsCertified checks if the product carries an approved sustainability score
func (p *Product) IsCertified() bool {
	return p.SustainabilityScore != nil
}
