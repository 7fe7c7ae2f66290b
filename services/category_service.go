package services

import (
	"context"

	"tienda_server/database"
	"tienda_server/lib"
	"tienda_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type CategoryService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewCategoryService(logger *gecho.Logger, db *database.DB) *CategoryService {
	return &CategoryService{
		logger: logger,
		db:     db,
	}
}

// GetCategories returns all categories ordered by name.
func (cs *CategoryService) GetCategories(ctx context.Context) ([]tables.Category, error) {
	categories, err := database.Query[tables.Category](cs.db).
		OrderBy("c.name", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return categories, nil
}

func (cs *CategoryService) GetCategoryById(ctx context.Context, id uuid.UUID) (*tables.Category, error) {
	category, err := database.FindByID[tables.Category](cs.db, ctx, id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if category == nil {
		return nil, lib.ErrNotFound
	}
	return category, nil
}
