package tables

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	tableName   struct{}   `bun:"table:products,alias:p"`
	Id          uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name        string     `bun:"name,notnull" json:"name"`
	Slug        string     `bun:"slug,notnull,unique" json:"slug"`
	Description string     `bun:"description,notnull" json:"description"`
	Price       uint64     `bun:"price,notnull" json:"price"` // stored in cents
	Stock       int        `bun:"stock,notnull,default:0" json:"stock"`
	CategoryId  *uuid.UUID `bun:"category_id,type:uuid" json:"category_id,omitempty"` // nullable for uncategorized products
	ImageUrl    string     `bun:"image_url" json:"image_url,omitempty"`
	IsActive    bool       `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt   time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	// Joined from categories on reads, never written.
	CategoryName string `bun:"category_name,scanonly" json:"category_name,omitempty"`
}
