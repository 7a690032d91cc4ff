package domain

import "time"

type Product struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Price       float64           `json:"price"`
	Images      []string          `json:"images"`
	CategoryID  string            `json:"categoryId,omitempty"`
	Category    *Category         `json:"category,omitempty"`
	Properties  map[string]string `json:"properties"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}
