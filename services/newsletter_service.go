package services

import (
	"context"
	"fmt"
	"time"

	"tienda_server/database"
	"tienda_server/lib"
	"tienda_server/structs"
	"tienda_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

type NewsletterService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewNewsletterService(logger *gecho.Logger, db *database.DB) *NewsletterService {
	return &NewsletterService{
		logger: logger,
		db:     db,
	}
}

// Subscribe records a newsletter signup. Subscribing an address that is
// already on the list is a silent success.
func (ns *NewsletterService) Subscribe(ctx context.Context, req *structs.SubscribeRequest) error {
	if !lib.ValidEmail(req.Email) {
		return fmt.Errorf("email is not a valid email address")
	}

	subscription := &tables.NewsletterEmail{
		Email:        req.Email,
		Source:       tables.NewsletterSourceNewsletter,
		SubscribedAt: time.Now(),
	}

	err := database.WithRetry(ctx, func() error {
		_, err := ns.db.NewInsert().
			Model(subscription).
			On("CONFLICT (email) DO NOTHING").
			Exec(ctx)
		return err
	})
	if err != nil {
		ns.logger.Error("Failed to record newsletter subscription", gecho.Field("error", err))
		return lib.MapPgError(err)
	}

	ns.logger.Info("Newsletter subscription recorded", gecho.Field("email", req.Email))
	return nil
}

// ListEmails is the admin listing: every captured address, newest first.
func (ns *NewsletterService) ListEmails(ctx context.Context) ([]tables.NewsletterEmail, error) {
	emails, err := database.Query[tables.NewsletterEmail](ns.db).
		OrderBy("ne.subscribed_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return emails, nil
}
