package admin

import (
	"errors"
	"net/http"

	"tienda_server/lib"
	"tienda_server/services"
	"tienda_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListProducts handles GET /admin/products: every product, active or not.
func (arm *AdminRoutesManager) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := arm.productService.ListAllProducts(r.Context())
	if err != nil {
		arm.logger.Error("Failed to list products", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to list products"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": products,
		}),
		gecho.Send(),
	)
}

// CreateProduct handles POST /admin/products.
func (arm *AdminRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreateProductRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.Send(),
		)
		return
	}

	if body.Name == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("Product name is required"),
			gecho.Send(),
		)
		return
	}
	if body.Price == 0 {
		gecho.BadRequest(w,
			gecho.WithMessage("Product price must be positive"),
			gecho.Send(),
		)
		return
	}

	product, err := arm.productService.CreateProduct(r.Context(), body)
	if err != nil {
		if lib.IsUniqueViolation(err) {
			gecho.BadRequest(w,
				gecho.WithMessage("A product with this slug already exists"),
				gecho.Send(),
			)
			return
		}

		arm.logger.Error("Failed to create product", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to create product"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product created"),
		gecho.WithData(map[string]any{
			"product": product,
		}),
		gecho.Send(),
	)
}

// UpdateProduct handles PUT and PATCH /admin/products/{id}; both apply the
// same partial update semantics.
func (arm *AdminRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid product id"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateProductRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.Send(),
		)
		return
	}

	if err := arm.productService.UpdateProduct(r.Context(), id, body); err != nil {
		switch {
		case errors.Is(err, services.ErrNoUpdatableFields):
			gecho.BadRequest(w,
				gecho.WithMessage("No valid fields provided for update"),
				gecho.Send(),
			)
		case lib.IsNotFound(err):
			gecho.NotFound(w,
				gecho.WithMessage("Product not found"),
				gecho.Send(),
			)
		case lib.IsUniqueViolation(err):
			gecho.BadRequest(w,
				gecho.WithMessage("A product with this slug already exists"),
				gecho.Send(),
			)
		default:
			arm.logger.Error("Failed to update product", gecho.Field("product_id", id), gecho.Field("error", err))
			gecho.InternalServerError(w,
				gecho.WithMessage("Failed to update product"),
				gecho.Send(),
			)
		}
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product updated"),
		gecho.Send(),
	)
}

// DeleteProduct handles DELETE /admin/products/{id}: a soft delete, the row
// only loses its is_active flag.
func (arm *AdminRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid product id"),
			gecho.Send(),
		)
		return
	}

	if err := arm.productService.SoftDeleteProduct(r.Context(), id); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w,
				gecho.WithMessage("Product not found"),
				gecho.Send(),
			)
			return
		}

		arm.logger.Error("Failed to delete product", gecho.Field("product_id", id), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to delete product"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product deleted"),
		gecho.Send(),
	)
}
