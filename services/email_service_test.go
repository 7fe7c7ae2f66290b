package services

import (
	"testing"

	"tienda_server/structs/tables"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "€0.00", FormatPrice(0))
	assert.Equal(t, "€0.05", FormatPrice(5))
	assert.Equal(t, "€12.50", FormatPrice(1250))
	assert.Equal(t, "€1234.00", FormatPrice(123400))
}

func TestRenderOrderConfirmation(t *testing.T) {
	productId := uuid.New()
	order := &tables.Order{
		OrderNumber:   "ORD-1700000000000-AB12",
		CustomerEmail: "buyer@example.com",
		CustomerName:  "Ana",
		TotalAmount:   3000,
	}
	items := []tables.OrderItem{
		{ProductId: productId, Quantity: 2, Price: 1500},
	}
	names := map[string]string{productId.String(): "Ceramic Mug"}

	html := renderOrderConfirmation(order, items, names, "support@example.com")

	assert.Contains(t, html, "ORD-1700000000000-AB12")
	assert.Contains(t, html, "Ana")
	assert.Contains(t, html, "Ceramic Mug")
	assert.Contains(t, html, "€30.00")
	assert.Contains(t, html, "support@example.com")
}

func TestRenderOrderConfirmationEscapesUserStrings(t *testing.T) {
	productId := uuid.New()
	order := &tables.Order{
		OrderNumber:  "ORD-1-XXXX",
		CustomerName: `<script>alert("x")</script>`,
		TotalAmount:  100,
	}
	items := []tables.OrderItem{{ProductId: productId, Quantity: 1, Price: 100}}
	names := map[string]string{productId.String(): `<img src=x onerror=alert(1)>`}

	html := renderOrderConfirmation(order, items, names, "")

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<img")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "&lt;img")
}

func TestRenderOrderConfirmationMissingProductFallsBackToId(t *testing.T) {
	productId := uuid.New()
	order := &tables.Order{OrderNumber: "ORD-1-XXXX", TotalAmount: 100}
	items := []tables.OrderItem{{ProductId: productId, Quantity: 1, Price: 100}}

	html := renderOrderConfirmation(order, items, map[string]string{}, "")

	assert.Contains(t, html, productId.String())
}
