// Package entity contains the core business objects of the storefront.
package entity

import "github.com/shopspring/decimal"

// Product is a catalogue item as the storefront sees it.
// The backend is the system of record; this is a read-only snapshot.
type Product struct {
	ID              int64           `json:"id"`              // Backend product identifier.
	Name            string          `json:"name"`            // Display name.
	Slug            string          `json:"slug,omitempty"`  // URL slug.
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`           // Unit price, tax included, in the store currency.
	Unit            string          `json:"unit,omitempty"`  // Selling unit, e.g. "kg", "colis".
	ImageURL        string          `json:"imageUrl,omitempty"`
	EstablishmentID int64           `json:"establishmentId,omitempty"` // Seller establishment.
	Available       bool            `json:"available"`
}

// ProductQuery filters the product listing.
type ProductQuery struct {
	Search          string
	CategoryID      int64
	EstablishmentID int64
	Page            int
	Limit           int
}
