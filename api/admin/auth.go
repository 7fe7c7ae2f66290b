package admin

import (
	"errors"
	"net/http"
	"time"

	"tienda_server/api/middleware"
	"tienda_server/lib"
	"tienda_server/structs"

	"github.com/MonkyMars/gecho"
)

// Login handles POST /admin/login. The session token travels both as an
// HttpOnly cookie and in the response body for non-browser clients.
func (arm *AdminRoutesManager) Login(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.LoginRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.Send(),
		)
		return
	}

	if body.Username == "" || body.Password == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("Username and password are required"),
			gecho.Send(),
		)
		return
	}

	token, identity, err := arm.authService.Login(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrInvalidCredentials) {
			gecho.Unauthorized(w,
				gecho.WithMessage("Invalid credentials"),
				gecho.Send(),
			)
			return
		}

		arm.logger.Error("Login failed", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Login failed"),
			gecho.Send(),
		)
		return
	}

	expiry := time.Now().Add(arm.authService.TokenExpiry())
	lib.SetCookie(lib.AdminCookieName, token, expiry, w)

	gecho.Success(w,
		gecho.WithMessage("Logged in"),
		gecho.WithData(map[string]any{
			"token": token,
			"admin": identity,
		}),
		gecho.Send(),
	)
}

// Logout handles POST /admin/logout. Sessions are stateless; logout just
// clears the cookie.
func (arm *AdminRoutesManager) Logout(w http.ResponseWriter, r *http.Request) {
	lib.ClearCookie(lib.AdminCookieName, w)

	gecho.Success(w,
		gecho.WithMessage("Logged out"),
		gecho.Send(),
	)
}

// Verify handles GET /admin/verify: it echoes the identity from the already
// validated session so the frontend can restore login state.
func (arm *AdminRoutesManager) Verify(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w,
			gecho.WithMessage("Access denied: missing session token"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"admin": structs.AdminIdentity{Id: claims.Sub, Username: claims.Username},
		}),
		gecho.Send(),
	)
}
