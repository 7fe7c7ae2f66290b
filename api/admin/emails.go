package admin

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// ListEmails handles GET /admin/emails: all captured newsletter addresses.
func (arm *AdminRoutesManager) ListEmails(w http.ResponseWriter, r *http.Request) {
	emails, err := arm.newsletterService.ListEmails(r.Context())
	if err != nil {
		arm.logger.Error("Failed to list newsletter emails", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to list newsletter emails"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"emails": emails,
		}),
		gecho.Send(),
	)
}
