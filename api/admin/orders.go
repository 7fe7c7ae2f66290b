package admin

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// ListOrders handles GET /admin/orders: every order, newest first, with an
// aggregated item summary per row.
func (arm *AdminRoutesManager) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := arm.orderService.GetOrders(r.Context())
	if err != nil {
		arm.logger.Error("Failed to list orders", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to list orders"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"orders": orders,
		}),
		gecho.Send(),
	)
}
