package lib

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"tienda_server/structs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const AdminCookieName = "admin_token"

// GenerateAdminToken signs a session token embedding the admin identity,
// valid for the configured expiry window.
func GenerateAdminToken(admin *structs.AdminIdentity, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      admin.Id.String(),
		"username": admin.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(expiry).Unix(),
		"jti":      uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAdminToken parses and validates a session token string and returns the
// claims. Signature and expiry failures both surface as ErrInvalidToken.
func ParseAdminToken(tokenStr, secret string) (*structs.AdminClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	subStr, ok := claims["sub"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid sub claim: %w", ErrInvalidToken)
	}
	sub, err := uuid.Parse(subStr)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID in sub claim: %w", ErrInvalidToken)
	}

	username, ok := claims["username"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid username claim: %w", ErrInvalidToken)
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid iat claim: %w", ErrInvalidToken)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid exp claim: %w", ErrInvalidToken)
	}

	jtiStr, ok := claims["jti"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid jti claim: %w", ErrInvalidToken)
	}
	jti, err := uuid.Parse(jtiStr)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID in jti claim: %w", ErrInvalidToken)
	}

	return &structs.AdminClaims{
		Sub:      sub,
		Username: username,
		Iat:      time.Unix(int64(iat), 0),
		Exp:      time.Unix(int64(exp), 0),
		Jti:      jti,
	}, nil
}

// ExtractAdminToken reads the session token from the admin cookie or, failing
// that, a bearer Authorization header. Returns ErrMissingToken when neither
// is present so callers can distinguish "no token" from "bad token".
func ExtractAdminToken(r *http.Request) (string, error) {
	if cookieVal, err := GetCookieValue(AdminCookieName, r); err == nil && cookieVal != "" {
		return cookieVal, nil
	}

	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
			return token, nil
		}
	}

	return "", ErrMissingToken
}

// ExtractAdminClaims combines token extraction and validation for
// admin-gated requests.
func ExtractAdminClaims(r *http.Request, secret string) (*structs.AdminClaims, error) {
	tokenStr, err := ExtractAdminToken(r)
	if err != nil {
		return nil, err
	}
	return ParseAdminToken(tokenStr, secret)
}
