package categories

import (
	"net/http"

	"tienda_server/lib"
	"tienda_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CategoryRoutesManager struct {
	logger          *gecho.Logger
	categoryService *services.CategoryService
}

func NewCategoryRoutesManager(
	logger *gecho.Logger,
	categoryService *services.CategoryService,
) *CategoryRoutesManager {
	return &CategoryRoutesManager{
		logger:          logger,
		categoryService: categoryService,
	}
}

func (crm *CategoryRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/categories", crm.FetchCategories)
	r.Get("/categories/{id}", crm.FetchCategory)
}

// FetchCategories handles GET /categories
func (crm *CategoryRoutesManager) FetchCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := crm.categoryService.GetCategories(r.Context())
	if err != nil {
		crm.logger.Error("Failed to fetch categories", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to fetch categories"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"categories": categories,
		}),
		gecho.Send(),
	)
}

// FetchCategory handles GET /categories/{id}
func (crm *CategoryRoutesManager) FetchCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid category id"),
			gecho.Send(),
		)
		return
	}

	category, err := crm.categoryService.GetCategoryById(r.Context(), id)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w,
				gecho.WithMessage("Category not found"),
				gecho.Send(),
			)
			return
		}

		crm.logger.Error("Failed to fetch category", gecho.Field("category_id", id), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to fetch category"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"category": category,
		}),
		gecho.Send(),
	)
}
