package admin

import (
	"tienda_server/api/middleware"
	"tienda_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AdminRoutesManager struct {
	logger            *gecho.Logger
	authService       *services.AuthService
	productService    *services.ProductService
	orderService      *services.OrderService
	newsletterService *services.NewsletterService
	mw                *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	authService *services.AuthService,
	productService *services.ProductService,
	orderService *services.OrderService,
	newsletterService *services.NewsletterService,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:            logger,
		authService:       authService,
		productService:    productService,
		orderService:      orderService,
		newsletterService: newsletterService,
		mw:                mw,
	}
}

func (arm *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(arm.mw.LoginRateLimit())
			r.Post("/login", arm.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(arm.mw.AdminAuthMiddleware)

			r.Post("/logout", arm.Logout)
			r.Get("/verify", arm.Verify)

			r.Get("/products", arm.ListProducts)
			r.Post("/products", arm.CreateProduct)
			r.Put("/products/{id}", arm.UpdateProduct)
			r.Patch("/products/{id}", arm.UpdateProduct)
			r.Delete("/products/{id}", arm.DeleteProduct)

			r.Get("/orders", arm.ListOrders)
			r.Get("/emails", arm.ListEmails)
		})
	})
}
