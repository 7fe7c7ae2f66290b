package services

import (
	"testing"

	"tienda_server/structs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validOrderRequest() *structs.OrderRequest {
	return &structs.OrderRequest{
		CustomerEmail: "buyer@example.com",
		Items: []structs.OrderItemRequest{
			{Id: uuid.New(), Quantity: 2, Price: 1500},
			{Id: uuid.New(), Quantity: 1, Price: 500},
		},
		TotalAmount: 3500,
	}
}

func TestValidateOrderRequestAccepts(t *testing.T) {
	assert.NoError(t, ValidateOrderRequest(validOrderRequest()))
}

func TestValidateOrderRequestRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*structs.OrderRequest)
	}{
		{"invalid email", func(r *structs.OrderRequest) { r.CustomerEmail = "not-an-email" }},
		{"empty email", func(r *structs.OrderRequest) { r.CustomerEmail = "" }},
		{"no items", func(r *structs.OrderRequest) { r.Items = nil }},
		{"zero quantity", func(r *structs.OrderRequest) { r.Items[0].Quantity = 0 }},
		{"negative quantity", func(r *structs.OrderRequest) { r.Items[1].Quantity = -1 }},
		{"zero price", func(r *structs.OrderRequest) { r.Items[0].Price = 0 }},
		{"nil product id", func(r *structs.OrderRequest) { r.Items[0].Id = uuid.Nil }},
		{"zero total", func(r *structs.OrderRequest) { r.TotalAmount = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validOrderRequest()
			tt.mutate(req)
			assert.Error(t, ValidateOrderRequest(req))
		})
	}
}

func TestItemsTotal(t *testing.T) {
	items := []structs.OrderItemRequest{
		{Id: uuid.New(), Quantity: 3, Price: 250},
		{Id: uuid.New(), Quantity: 1, Price: 1000},
	}

	assert.Equal(t, uint64(1750), itemsTotal(items))
	assert.Equal(t, uint64(0), itemsTotal(nil))
}
