package structs

import "github.com/google/uuid"

// CreateProductRequest is the admin product creation payload. Slug may be
// omitted; it is then derived from the name.
type CreateProductRequest struct {
	Name        string     `json:"name"`
	Slug        string     `json:"slug,omitempty"`
	Description string     `json:"description"`
	Price       uint64     `json:"price"`
	Stock       int        `json:"stock"`
	CategoryId  *uuid.UUID `json:"category_id"`
	ImageUrl    string     `json:"image_url,omitempty"`
}

// UpdateProductRequest carries a partial field set. Nil pointers mean "leave
// unchanged"; unknown JSON fields are dropped by the decoder, not rejected.
type UpdateProductRequest struct {
	Name        *string    `json:"name,omitempty"`
	Slug        *string    `json:"slug,omitempty"`
	Description *string    `json:"description,omitempty"`
	Price       *uint64    `json:"price,omitempty"`
	Stock       *int       `json:"stock,omitempty"`
	CategoryId  *uuid.UUID `json:"category_id,omitempty"`
	ImageUrl    *string    `json:"image_url,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
}
