package tables

import "github.com/google/uuid"

type Category struct {
	tableName struct{}  `bun:"table:categories,alias:c"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Slug      string    `bun:"slug,notnull,unique" json:"slug"`
}
