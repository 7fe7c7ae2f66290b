package newsletter

import (
	"net/http"

	"tienda_server/lib"
	"tienda_server/services"
	"tienda_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type NewsletterRoutesManager struct {
	logger            *gecho.Logger
	newsletterService *services.NewsletterService
}

func NewNewsletterRoutesManager(
	logger *gecho.Logger,
	newsletterService *services.NewsletterService,
) *NewsletterRoutesManager {
	return &NewsletterRoutesManager{
		logger:            logger,
		newsletterService: newsletterService,
	}
}

func (nrm *NewsletterRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/newsletter/subscribe", nrm.Subscribe)
}

// Subscribe handles POST /newsletter/subscribe. Duplicate subscriptions are
// reported as success.
func (nrm *NewsletterRoutesManager) Subscribe(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.SubscribeRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.Send(),
		)
		return
	}

	if !lib.ValidEmail(body.Email) {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid email address"),
			gecho.Send(),
		)
		return
	}

	if err := nrm.newsletterService.Subscribe(r.Context(), body); err != nil {
		nrm.logger.Error("Failed to subscribe email", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to subscribe"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Subscribed"),
		gecho.Send(),
	)
}
