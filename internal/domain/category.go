package domain

import "time"

// AttributeSchema declares a named field that products in a category (and its
// descendants) may carry. A non-empty Values list makes the attribute
// enumerated; otherwise it is free-form per Type.
type AttributeSchema struct {
	Name   string   `json:"name"`
	Values []string `json:"values,omitempty"`
	Type   string   `json:"type,omitempty"`
}

const (
	AttributeTypeText   = "text"
	AttributeTypeNumber = "number"
)

type Category struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	ParentID   string            `json:"parentId,omitempty"`
	Parent     *Category         `json:"parent,omitempty"`
	Properties []AttributeSchema `json:"properties"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}
