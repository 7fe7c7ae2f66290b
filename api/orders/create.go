package orders

import (
	"net/http"

	"tienda_server/lib"
	"tienda_server/services"
	"tienda_server/structs"

	"github.com/MonkyMars/gecho"
)

// CreateOrder handles POST /orders, the public checkout endpoint.
func (orm *OrderRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.OrderRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.Send(),
		)
		return
	}

	if err := services.ValidateOrderRequest(body); err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid order"),
			gecho.WithData(map[string]string{"error": err.Error()}),
			gecho.Send(),
		)
		return
	}

	order, err := orm.orderService.CreateOrder(r.Context(), body)
	if err != nil {
		orm.logger.Error("Failed to create order", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to create order"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order created"),
		gecho.WithData(structs.OrderResponse{
			OrderId:     order.Id,
			OrderNumber: order.OrderNumber,
		}),
		gecho.Send(),
	)
}
