package api

import (
	"tienda_server/api/admin"
	"tienda_server/api/categories"
	"tienda_server/api/health"
	"tienda_server/api/middleware"
	"tienda_server/api/newsletter"
	"tienda_server/api/orders"
	"tienda_server/api/products"
	"tienda_server/database"
	"tienda_server/services"
	"tienda_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	productRoutes    *products.ProductRoutesManager
	categoryRoutes   *categories.CategoryRoutesManager
	orderRoutes      *orders.OrderRoutesManager
	newsletterRoutes *newsletter.NewsletterRoutesManager
	adminRoutes      *admin.AdminRoutesManager
	healthRoutes     *health.HealthRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	db *database.DB,
	cfg *structs.Config,
	mw *middleware.Middleware,
	sm *services.ServiceManager,
) *routerManager {
	return &routerManager{
		productRoutes:    products.NewProductRoutesManager(logger, sm.ProductService),
		categoryRoutes:   categories.NewCategoryRoutesManager(logger, sm.CategoryService),
		orderRoutes:      orders.NewOrderRoutesManager(logger, sm.OrderService),
		newsletterRoutes: newsletter.NewNewsletterRoutesManager(logger, sm.NewsletterService),
		adminRoutes: admin.NewAdminRoutesManager(
			logger,
			sm.AuthService,
			sm.ProductService,
			sm.OrderService,
			sm.NewsletterService,
			mw,
		),
		healthRoutes: health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.categoryRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.newsletterRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
