package entity

import "github.com/shopspring/decimal"

// ShippingMethod is one option of a shipping quote.
type ShippingMethod struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Carrier       string          `json:"carrier,omitempty"`
	Cost          decimal.Decimal `json:"cost"`
	EstimatedDays int             `json:"estimatedDays"`
}

// ShippingQuoteRequest asks the backend for the shipping options of a delivery.
type ShippingQuoteRequest struct {
	AddressID int64
	Items     []OrderLine
}
