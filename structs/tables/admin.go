package tables

import (
	"time"

	"github.com/google/uuid"
)

// Admin rows are seeded out of band; there is no self-service signup path.
type Admin struct {
	tableName    struct{}  `bun:"table:admins,alias:a"`
	Id           uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Username     string    `bun:"username,notnull,unique" json:"username"`
	PasswordHash string    `bun:"password_hash,notnull" json:"-"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}
