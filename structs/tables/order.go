package tables

import (
	"time"

	"github.com/google/uuid"
)

// Order is immutable once committed; there is no status field to mutate.
type Order struct {
	tableName     struct{}  `bun:"table:orders,alias:o"`
	Id            uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderNumber   string    `bun:"order_number,notnull,unique" json:"order_number"`
	CustomerEmail string    `bun:"customer_email,notnull" json:"customer_email"`
	CustomerName  string    `bun:"customer_name" json:"customer_name,omitempty"`
	CustomerPhone string    `bun:"customer_phone" json:"customer_phone,omitempty"`
	TotalAmount   uint64    `bun:"total_amount,notnull" json:"total_amount"` // cents, as submitted by the client
	CreatedAt     time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}

// OrderItem rows are created in the same transaction as their Order and are
// never updated afterwards. Price is the unit price snapshot at order time.
type OrderItem struct {
	tableName struct{}  `bun:"table:order_items,alias:oi"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderId   uuid.UUID `bun:"order_id,notnull,type:uuid" json:"order_id"`
	ProductId uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id"`
	Quantity  int       `bun:"quantity,notnull" json:"quantity"`
	Price     uint64    `bun:"price,notnull" json:"price"`
}

// OrderWithItems is the admin listing shape: the order plus a readable
// item summary built from the joined products.
type OrderWithItems struct {
	Order
	Items string `bun:"items,scanonly" json:"items"`
}
