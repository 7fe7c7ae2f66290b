package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"tienda_server/database"
	"tienda_server/lib"
	"tienda_server/structs"
	"tienda_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// ErrNoUpdatableFields is returned when a partial update carries no field
// from the allow-list.
var ErrNoUpdatableFields = fmt.Errorf("no valid fields provided for update")

const categoryJoin = "LEFT JOIN categories AS c ON c.id = p.category_id"

type ProductService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewProductService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *ProductService {
	return &ProductService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// ProductListOptions contains filtering, sorting, and pagination options for
// catalog queries. Zero values mean "not filtered".
type ProductListOptions struct {
	Search    string  `json:"search,omitempty"`     // case-insensitive substring over name and description
	Category  string  `json:"category,omitempty"`   // exact category slug
	MinPrice  *uint64 `json:"min_price,omitempty"`  // inclusive, cents
	MaxPrice  *uint64 `json:"max_price,omitempty"`  // inclusive, cents
	SortBy    string  `json:"sort_by,omitempty"`
	SortOrder string  `json:"sort_order,omitempty"`
	Limit     int     `json:"limit,omitempty"`
	Offset    int     `json:"offset,omitempty"`
}

// ProductListResult is the catalog listing response: the page of rows plus
// the total count under the same filter predicate.
type ProductListResult struct {
	Total int              `json:"total"`
	Rows  []tables.Product `json:"rows"`
}

var validSortFields = []string{"name", "price", "created_at", "updated_at"}

const (
	defaultSortField = "created_at"
	defaultLimit     = 20
	maxLimit         = 100
)

// Normalize clamps the options into their valid domain. Sort parameters are
// checked against a fixed whitelist; anything else silently falls back to the
// defaults rather than erroring, matching the public listing contract.
func (opts *ProductListOptions) Normalize() {
	if !slices.Contains(validSortFields, opts.SortBy) {
		opts.SortBy = defaultSortField
	}

	switch strings.ToUpper(opts.SortOrder) {
	case "ASC":
		opts.SortOrder = string(database.ASC)
	default:
		opts.SortOrder = string(database.DESC)
	}

	if opts.Limit <= 0 {
		opts.Limit = defaultLimit
	}
	if opts.Limit > maxLimit {
		opts.Limit = maxLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
}

// filterKey produces a stable cache key for the normalized option set.
func (opts *ProductListOptions) filterKey() string {
	minPrice, maxPrice := "", ""
	if opts.MinPrice != nil {
		minPrice = fmt.Sprintf("%d", *opts.MinPrice)
	}
	if opts.MaxPrice != nil {
		maxPrice = fmt.Sprintf("%d", *opts.MaxPrice)
	}
	return fmt.Sprintf("%s:%s:%s:%s:%s:%s:%d:%d",
		opts.Search, opts.Category, minPrice, maxPrice,
		opts.SortBy, opts.SortOrder, opts.Limit, opts.Offset)
}

// buildCatalogQuery translates the options into a query over active
// products. Both the count and the data query are produced by this one
// function so the WHERE clauses are construction-identical and pagination
// totals stay consistent with the returned rows.
func (ps *ProductService) buildCatalogQuery(opts *ProductListOptions) *database.QueryBuilder[tables.Product] {
	q := database.Query[tables.Product](ps.db).
		Join(categoryJoin).
		Where("p.is_active", true)

	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		q = q.WhereOrGroup(
			database.Or("p.name", "ILIKE", pattern),
			database.Or("p.description", "ILIKE", pattern),
		)
	}
	if opts.Category != "" {
		q = q.Where("c.slug", opts.Category)
	}
	if opts.MinPrice != nil {
		q = q.WhereOp("p.price", ">=", *opts.MinPrice)
	}
	if opts.MaxPrice != nil {
		q = q.WhereOp("p.price", "<=", *opts.MaxPrice)
	}

	return q
}

// GetProducts returns the filtered, sorted, paginated catalog page together
// with the total match count. Inactive products are never included.
func (ps *ProductService) GetProducts(ctx context.Context, opts *ProductListOptions) (*ProductListResult, error) {
	start := time.Now()
	opts.Normalize()

	filterKey := opts.filterKey()
	if cached, err := ps.cacheService.GetProductList(filterKey); err == nil && cached != nil {
		return cached, nil
	}

	total, err := ps.buildCatalogQuery(opts).Count(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	rows, err := ps.buildCatalogQuery(opts).
		ColumnExpr("p.*").
		ColumnExpr("c.name AS category_name").
		OrderBy("p."+opts.SortBy, database.OrderDirection(opts.SortOrder)).
		Limit(opts.Limit).
		Offset(opts.Offset).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	result := &ProductListResult{Total: total, Rows: rows}

	if err := ps.cacheService.SetProductList(filterKey, result); err != nil {
		ps.logger.Warn("Failed to cache product list", gecho.Field("error", err))
	}

	ps.logger.Debug("Catalog query executed",
		gecho.Field("total", total),
		gecho.Field("returned", len(rows)),
		gecho.Field("elapsed_ms", time.Since(start).Milliseconds()),
	)

	return result, nil
}

// GetProductBySlugOrId looks up a single active product by its slug or, when
// the path segment parses as a UUID, by id. Inactive products are reported
// as not found.
func (ps *ProductService) GetProductBySlugOrId(ctx context.Context, slugOrId string) (*tables.Product, error) {
	if cached, err := ps.cacheService.GetProduct(slugOrId); err == nil && cached != nil {
		return cached, nil
	}

	q := database.Query[tables.Product](ps.db).
		ColumnExpr("p.*").
		ColumnExpr("c.name AS category_name").
		Join(categoryJoin).
		Where("p.is_active", true)

	if id, err := uuid.Parse(slugOrId); err == nil {
		q = q.Where("p.id", id)
	} else {
		q = q.Where("p.slug", slugOrId)
	}

	product, err := q.First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}

	if err := ps.cacheService.SetProduct(slugOrId, product); err != nil {
		ps.logger.Warn("Failed to cache product", gecho.Field("error", err), gecho.Field("slug_or_id", slugOrId))
	}

	return product, nil
}

// GetProductsByIds fetches products by id regardless of active flag; used
// for order confirmation rendering where historical products must resolve.
func (ps *ProductService) GetProductsByIds(ctx context.Context, ids []uuid.UUID) ([]tables.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	products, err := database.Query[tables.Product](ps.db).
		WhereIn("p.id", ids).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return products, nil
}

// ListAllProducts is the admin listing: every product, active or not, newest
// first, with the category name joined.
func (ps *ProductService) ListAllProducts(ctx context.Context) ([]tables.Product, error) {
	products, err := database.Query[tables.Product](ps.db).
		ColumnExpr("p.*").
		ColumnExpr("c.name AS category_name").
		Join(categoryJoin).
		OrderBy("p.created_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return products, nil
}

// CreateProduct inserts a new product. The slug defaults to one derived from
// the name; a duplicate slug surfaces as lib.ErrConflict.
func (ps *ProductService) CreateProduct(ctx context.Context, req *structs.CreateProductRequest) (*tables.Product, error) {
	slug := req.Slug
	if slug == "" {
		slug = lib.Slugify(req.Name)
	}

	product := &tables.Product{
		Id:          uuid.New(),
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryId:  req.CategoryId,
		ImageUrl:    req.ImageUrl,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	created, err := database.Create(ps.db, ctx, product)
	if err != nil {
		mappedErr := lib.MapPgError(err)
		if lib.IsUniqueViolation(mappedErr) {
			ps.logger.Warn("Product creation failed - slug already in use", gecho.Field("slug", slug))
		} else {
			ps.logger.Error("Database error during product creation", gecho.Field("error", mappedErr))
		}
		return nil, mappedErr
	}

	if err := ps.cacheService.InvalidateProductCaches(); err != nil {
		ps.logger.Warn("Failed to invalidate product caches", gecho.Field("error", err))
	}

	ps.logger.Info("Product created", gecho.Field("product_id", created.Id), gecho.Field("slug", created.Slug))
	return created, nil
}

// BuildUpdateMap translates a partial update request into column assignments.
// Only allow-listed fields are considered; an empty result means the request
// carried nothing updatable.
func BuildUpdateMap(req *structs.UpdateProductRequest) map[string]any {
	updates := make(map[string]any)

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.CategoryId != nil {
		updates["category_id"] = *req.CategoryId
	}
	if req.ImageUrl != nil {
		updates["image_url"] = *req.ImageUrl
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	return updates
}

// UpdateProduct applies a partial update to a product. Requests with no
// allow-listed field are rejected with ErrNoUpdatableFields.
func (ps *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req *structs.UpdateProductRequest) error {
	updates := BuildUpdateMap(req)
	if len(updates) == 0 {
		return ErrNoUpdatableFields
	}
	updates["updated_at"] = time.Now()

	rows, err := database.Query[tables.Product](ps.db).
		Where("id", id).
		Update(ctx, updates)
	if err != nil {
		return lib.MapPgError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	if err := ps.cacheService.InvalidateProductCaches(); err != nil {
		ps.logger.Warn("Failed to invalidate product caches", gecho.Field("error", err))
	}

	ps.logger.Info("Product updated", gecho.Field("product_id", id), gecho.Field("fields", len(updates)-1))
	return nil
}

// SoftDeleteProduct flips is_active off. The row is never removed; order
// history keeps referencing it. Repeating the call on an already-inactive
// product is a clean no-op.
func (ps *ProductService) SoftDeleteProduct(ctx context.Context, id uuid.UUID) error {
	rows, err := database.Query[tables.Product](ps.db).
		Where("id", id).
		Update(ctx, map[string]any{
			"is_active":  false,
			"updated_at": time.Now(),
		})
	if err != nil {
		return lib.MapPgError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	if err := ps.cacheService.InvalidateProductCaches(); err != nil {
		ps.logger.Warn("Failed to invalidate product caches", gecho.Field("error", err))
	}

	ps.logger.Info("Product soft deleted", gecho.Field("product_id", id))
	return nil
}
