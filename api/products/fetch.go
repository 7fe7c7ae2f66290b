package products

import (
	"net/http"

	"tienda_server/handling"
	"tienda_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// FetchProducts handles GET /products with filtering, sorting, and pagination
func (prm *ProductRoutesManager) FetchProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		prm.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid query parameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	result, err := prm.productService.GetProducts(ctx, opts)
	if err != nil {
		prm.logger.Error("Failed to fetch products", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to fetch products"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": result.Rows,
			"total":    result.Total,
			"limit":    opts.Limit,
			"offset":   opts.Offset,
		}),
		gecho.Send(),
	)
}

// FetchProduct handles GET /products/{slugOrId} for a single active product
func (prm *ProductRoutesManager) FetchProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slugOrId := chi.URLParam(r, "slugOrId")
	if slugOrId == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("Product identifier is required"),
			gecho.Send(),
		)
		return
	}

	product, err := prm.productService.GetProductBySlugOrId(ctx, slugOrId)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w,
				gecho.WithMessage("Product not found"),
				gecho.Send(),
			)
			return
		}

		prm.logger.Error("Failed to fetch product", gecho.Field("slug_or_id", slugOrId), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to fetch product"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product": product,
		}),
		gecho.Send(),
	)
}
