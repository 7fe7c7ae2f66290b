package services

import (
	"tienda_server/database"
	"tienda_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService       *AuthService
	CacheService      *CacheService
	CategoryService   *CategoryService
	EmailService      *EmailService
	HealthService     *HealthService
	NewsletterService *NewsletterService
	OrderService      *OrderService
	ProductService    *ProductService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	authService := NewAuthService(logger, cfg, db)
	cacheService := NewCacheService(logger, cfg)
	categoryService := NewCategoryService(logger, db)
	emailService := NewEmailService(logger, cfg)
	healthService := NewHealthService(logger, db, cacheService)
	newsletterService := NewNewsletterService(logger, db)
	productService := NewProductService(logger, db, cacheService)
	orderService := NewOrderService(logger, cfg, db, productService, emailService)

	return &ServiceManager{
		AuthService:       authService,
		CacheService:      cacheService,
		CategoryService:   categoryService,
		EmailService:      emailService,
		HealthService:     healthService,
		NewsletterService: newsletterService,
		OrderService:      orderService,
		ProductService:    productService,
	}
}
