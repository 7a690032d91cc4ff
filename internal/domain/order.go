package domain

import "time"

// Order is a read-only record from this service's perspective; line items are
// written by the storefront checkout and displayed as-is.
type Order struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name"`
	Email         string                   `json:"email"`
	StreetAddress string                   `json:"streetAddress"`
	City          string                   `json:"city"`
	PostalCode    string                   `json:"postalCode"`
	Country       string                   `json:"country"`
	LineItems     []map[string]interface{} `json:"line_items"`
	CreatedAt     time.Time                `json:"createdAt"`
}
