package tables

import "time"

type NewsletterSource string

const (
	NewsletterSourceCheckout   NewsletterSource = "checkout"
	NewsletterSourceNewsletter NewsletterSource = "newsletter"
)

// NewsletterEmail is written insert-or-ignore: the first subscription wins
// and keeps its source, later duplicates are silent no-ops.
type NewsletterEmail struct {
	tableName    struct{}         `bun:"table:newsletter_emails,alias:ne"`
	Email        string           `bun:"email,pk" json:"email"`
	Source       NewsletterSource `bun:"source,notnull" json:"source"`
	SubscribedAt time.Time        `bun:"subscribed_at,notnull,default:now()" json:"subscribed_at"`
}
