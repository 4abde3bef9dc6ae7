package domain

import (
	"github.com/shopspring/decimal"
)

// Product represents a catalog row joined with its reference display names.
// Description and Size are optional and read back as empty strings; Image
// stays nil until a photo is attached to the product.
type Product struct {
	ID               int             `json:"id" db:"id"`
	Article          string          `json:"article" db:"article"`
	Name             string          `json:"product_name" db:"product_name"`
	CategoryID       int             `json:"category_id" db:"category_id"`
	ManufacturerID   int             `json:"manufacturer_id" db:"manufacturer_id"`
	VendorID         int             `json:"vendor_id" db:"vendor_id"`
	CategoryName     string          `json:"category_name" db:"category_name"`
	ManufacturerName string          `json:"manufacturer_name" db:"manufacturer_name"`
	VendorName       string          `json:"vendor_name" db:"vendor_name"`
	Description      string          `json:"description" db:"description"`
	Size             string          `json:"size" db:"size"`
	Price            decimal.Decimal `json:"price" db:"price"`
	Quantity         int             `json:"quantity" db:"quantity"`
	Discount         int             `json:"discount" db:"discount"`
	Image            *string         `json:"image" db:"image"`
}
