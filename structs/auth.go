package structs

import (
	"time"

	"github.com/google/uuid"
)

type AdminClaims struct {
	Sub      uuid.UUID `json:"sub"`
	Username string    `json:"username"`
	Iat      time.Time `json:"iat"`
	Exp      time.Time `json:"exp"`
	Jti      uuid.UUID `json:"jti"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AdminIdentity struct {
	Id       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}
