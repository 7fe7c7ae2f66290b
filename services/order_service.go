package services

import (
	"context"
	"fmt"
	"time"

	"tienda_server/database"
	"tienda_server/lib"
	"tienda_server/structs"
	"tienda_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type OrderService struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	db             *database.DB
	productService *ProductService
	emailService   *EmailService
}

func NewOrderService(
	logger *gecho.Logger,
	cfg *structs.Config,
	db *database.DB,
	productService *ProductService,
	emailService *EmailService,
) *OrderService {
	return &OrderService{
		logger:         logger,
		cfg:            cfg,
		db:             db,
		productService: productService,
		emailService:   emailService,
	}
}

// ValidateOrderRequest checks a checkout payload before any database work.
// It returns a human-readable message for the first failed rule.
func ValidateOrderRequest(req *structs.OrderRequest) error {
	if !lib.ValidEmail(req.CustomerEmail) {
		return fmt.Errorf("customer_email is not a valid email address")
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("order must contain at least one item")
	}
	for i, item := range req.Items {
		if item.Id == uuid.Nil {
			return fmt.Errorf("items[%d]: product id is required", i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("items[%d]: quantity must be positive", i)
		}
		if item.Price == 0 {
			return fmt.Errorf("items[%d]: price must be positive", i)
		}
	}
	if req.TotalAmount == 0 {
		return fmt.Errorf("total_amount must be positive")
	}
	return nil
}

// CreateOrder writes the order, its items, and the checkout newsletter
// subscription in one transaction. The confirmation email is dispatched only
// after the commit succeeds; an email failure never fails the order.
func (os *OrderService) CreateOrder(ctx context.Context, req *structs.OrderRequest) (order *tables.Order, err error) {
	if err := ValidateOrderRequest(req); err != nil {
		return nil, err
	}

	if sum := itemsTotal(req.Items); sum != req.TotalAmount {
		os.logger.Warn("Order total does not match item sum",
			gecho.Field("submitted_total", req.TotalAmount),
			gecho.Field("item_sum", sum),
			gecho.Field("customer_email", req.CustomerEmail),
		)
	}

	orderNumber, err := lib.GenerateOrderNumber()
	if err != nil {
		return nil, err
	}

	order = &tables.Order{
		Id:            uuid.New(),
		OrderNumber:   orderNumber,
		CustomerEmail: req.CustomerEmail,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		TotalAmount:   req.TotalAmount,
		CreatedAt:     time.Now(),
	}

	items := make([]tables.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, tables.OrderItem{
			Id:        uuid.New(),
			OrderId:   order.Id,
			ProductId: item.Id,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	subscription := &tables.NewsletterEmail{
		Email:        req.CustomerEmail,
		Source:       tables.NewsletterSourceCheckout,
		SubscribedAt: time.Now(),
	}

	err = os.db.Transaction(ctx, func(tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(order).Exec(ctx); err != nil {
			os.logger.Error("Failed to insert order", gecho.Field("error", err), gecho.Field("order_number", orderNumber))
			return lib.MapPgError(err)
		}
		if _, err := tx.NewInsert().Model(&items).Exec(ctx); err != nil {
			os.logger.Error("Failed to insert order items", gecho.Field("error", err), gecho.Field("order_number", orderNumber))
			return lib.MapPgError(err)
		}
		if _, err := tx.NewInsert().Model(subscription).On("CONFLICT (email) DO NOTHING").Exec(ctx); err != nil {
			os.logger.Error("Failed to record checkout subscription", gecho.Field("error", err), gecho.Field("order_number", orderNumber))
			return lib.MapPgError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	os.logger.Info("Order created",
		gecho.Field("order_id", order.Id),
		gecho.Field("order_number", order.OrderNumber),
		gecho.Field("items", len(items)),
	)

	go os.sendConfirmationEmail(order, items)

	return order, nil
}

func itemsTotal(items []structs.OrderItemRequest) uint64 {
	var sum uint64
	for _, item := range items {
		sum += item.Price * uint64(item.Quantity)
	}
	return sum
}

// sendConfirmationEmail runs after the order commit on its own goroutine
// with its own timeout; the order response never waits on it.
func (os *OrderService) sendConfirmationEmail(order *tables.Order, items []tables.OrderItem) {
	defer func() {
		if p := recover(); p != nil {
			os.logger.Error(fmt.Sprintf("Panic while sending order confirmation: %v", p),
				gecho.Field("order_number", order.OrderNumber))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductId)
	}

	productNames := make(map[string]string, len(ids))
	products, err := os.productService.GetProductsByIds(ctx, ids)
	if err != nil {
		os.logger.Warn("Failed to resolve product names for confirmation email",
			gecho.Field("error", err), gecho.Field("order_number", order.OrderNumber))
	} else {
		for _, p := range products {
			productNames[p.Id.String()] = p.Name
		}
	}

	if err := os.emailService.SendOrderConfirmation(order, items, productNames); err != nil {
		os.logger.Warn("Order confirmation email failed",
			gecho.Field("error", err), gecho.Field("order_number", order.OrderNumber))
		return
	}

	os.logger.Info("Order confirmation email sent", gecho.Field("order_number", order.OrderNumber))
}

// GetOrders is the admin listing: every order, newest first, with a readable
// item summary aggregated from the joined products.
func (os *OrderService) GetOrders(ctx context.Context) ([]tables.OrderWithItems, error) {
	const query = `
		SELECT o.*,
			COALESCE(
				string_agg(COALESCE(p.name, oi.product_id::text) || ' x' || oi.quantity, ', ' ORDER BY oi.id),
				''
			) AS items
		FROM orders AS o
		LEFT JOIN order_items AS oi ON oi.order_id = o.id
		LEFT JOIN products AS p ON p.id = oi.product_id
		GROUP BY o.id
		ORDER BY o.created_at DESC
	`

	orders, err := database.RawQuery[tables.OrderWithItems](os.db, ctx, query)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return orders, nil
}
