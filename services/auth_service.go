package services

import (
	"context"
	"time"

	"tienda_server/database"
	"tienda_server/lib"
	"tienda_server/structs"
	"tienda_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

type AuthService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	db     *database.DB
}

func NewAuthService(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *AuthService {
	return &AuthService{
		logger: logger,
		cfg:    cfg,
		db:     db,
	}
}

// Login verifies admin credentials and returns a signed session token. An
// unknown username and a wrong password both return ErrInvalidCredentials so
// the response cannot be used to probe which usernames exist.
func (as *AuthService) Login(ctx context.Context, req *structs.LoginRequest) (string, *structs.AdminIdentity, error) {
	admin, err := database.Query[tables.Admin](as.db).
		Where("username", req.Username).
		First(ctx)
	if err != nil {
		as.logger.Error("Database error during login", gecho.Field("error", err))
		return "", nil, lib.MapPgError(err)
	}
	if admin == nil {
		return "", nil, lib.ErrInvalidCredentials
	}

	ok, err := lib.VerifyPassword(req.Password, admin.PasswordHash)
	if err != nil {
		as.logger.Error("Password verification error", gecho.Field("error", err), gecho.Field("username", req.Username))
		return "", nil, err
	}
	if !ok {
		return "", nil, lib.ErrInvalidCredentials
	}

	identity := &structs.AdminIdentity{Id: admin.Id, Username: admin.Username}

	token, err := lib.GenerateAdminToken(identity, as.cfg.Auth.TokenSecret, as.cfg.Auth.TokenExpiry)
	if err != nil {
		as.logger.Error("Failed to sign session token", gecho.Field("error", err))
		return "", nil, err
	}

	as.logger.Info("Admin logged in", gecho.Field("username", admin.Username))
	return token, identity, nil
}

// TokenExpiry exposes the configured session lifetime for cookie expiry.
func (as *AuthService) TokenExpiry() time.Duration {
	return as.cfg.Auth.TokenExpiry
}
