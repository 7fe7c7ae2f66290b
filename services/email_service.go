package services

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"tienda_server/structs"
	"tienda_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	emailClient     *resend.Client
	emailClientOnce sync.Once
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.ApiKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	emailClientOnce.Do(func() {
		emailClient = resend.NewClient(apiKey)
	})
	return emailClient
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendOrderConfirmation renders and sends the order confirmation email.
// Product names come from the passed lookup; items whose product is missing
// fall back to the product id so the email still goes out.
func (es *EmailService) SendOrderConfirmation(order *tables.Order, items []tables.OrderItem, productNames map[string]string) error {
	subject := fmt.Sprintf("Order confirmation - %s", order.OrderNumber)
	body := renderOrderConfirmation(order, items, productNames, es.cfg.Email.SupportEmail)

	return es.SendEmail([]string{order.CustomerEmail}, subject, body)
}

func renderOrderConfirmation(order *tables.Order, items []tables.OrderItem, productNames map[string]string, supportEmail string) string {
	var sb strings.Builder

	sb.WriteString("<h2>Thank you for your order!</h2>")
	if order.CustomerName != "" {
		sb.WriteString(fmt.Sprintf("<p>Hi %s,</p>", html.EscapeString(order.CustomerName)))
	}
	sb.WriteString(fmt.Sprintf("<p>Your order <strong>%s</strong> has been received.</p>", order.OrderNumber))

	sb.WriteString("<table border=\"0\" cellpadding=\"6\"><tr><th align=\"left\">Product</th><th align=\"right\">Qty</th><th align=\"right\">Price</th></tr>")
	for _, item := range items {
		name := productNames[item.ProductId.String()]
		if name == "" {
			name = item.ProductId.String()
		}
		sb.WriteString(fmt.Sprintf(
			"<tr><td>%s</td><td align=\"right\">%d</td><td align=\"right\">%s</td></tr>",
			html.EscapeString(name), item.Quantity, FormatPrice(item.Price*uint64(item.Quantity)),
		))
	}
	sb.WriteString("</table>")

	sb.WriteString(fmt.Sprintf("<p><strong>Total: %s</strong></p>", FormatPrice(order.TotalAmount)))
	if supportEmail != "" {
		sb.WriteString(fmt.Sprintf("<p>Questions? Reach us at %s.</p>", supportEmail))
	}

	return sb.String()
}

// FormatPrice renders an amount in cents as a EUR string, e.g. "€12.50".
func FormatPrice(cents uint64) string {
	return fmt.Sprintf("€%d.%02d", cents/100, cents%100)
}
