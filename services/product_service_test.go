package services

import (
	"testing"

	"tienda_server/structs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProductListOptionsNormalizeDefaults(t *testing.T) {
	opts := &ProductListOptions{}
	opts.Normalize()

	assert.Equal(t, "created_at", opts.SortBy)
	assert.Equal(t, "DESC", opts.SortOrder)
	assert.Equal(t, 20, opts.Limit)
	assert.Equal(t, 0, opts.Offset)
}

func TestProductListOptionsNormalizeSortWhitelist(t *testing.T) {
	tests := []struct {
		name     string
		sortBy   string
		expected string
	}{
		{"name allowed", "name", "name"},
		{"price allowed", "price", "price"},
		{"created_at allowed", "created_at", "created_at"},
		{"updated_at allowed", "updated_at", "updated_at"},
		{"unknown column falls back", "stock", "created_at"},
		{"injection attempt falls back", "price; DROP TABLE products", "created_at"},
		{"empty falls back", "", "created_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &ProductListOptions{SortBy: tt.sortBy}
			opts.Normalize()
			assert.Equal(t, tt.expected, opts.SortBy)
		})
	}
}

func TestProductListOptionsNormalizeSortOrder(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ASC", "ASC"},
		{"asc", "ASC"},
		{"DESC", "DESC"},
		{"desc", "DESC"},
		{"sideways", "DESC"},
		{"", "DESC"},
	}

	for _, tt := range tests {
		opts := &ProductListOptions{SortOrder: tt.input}
		opts.Normalize()
		assert.Equal(t, tt.expected, opts.SortOrder, "input %q", tt.input)
	}
}

func TestProductListOptionsNormalizeLimits(t *testing.T) {
	tests := []struct {
		name           string
		limit, offset  int
		wantLimit      int
		wantOffset     int
	}{
		{"zero limit gets default", 0, 0, 20, 0},
		{"negative limit gets default", -5, 0, 20, 0},
		{"limit above cap is clamped", 500, 0, 100, 0},
		{"limit at cap stays", 100, 0, 100, 0},
		{"negative offset reset", 10, -3, 10, 0},
		{"valid values untouched", 50, 40, 50, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &ProductListOptions{Limit: tt.limit, Offset: tt.offset}
			opts.Normalize()
			assert.Equal(t, tt.wantLimit, opts.Limit)
			assert.Equal(t, tt.wantOffset, opts.Offset)
		})
	}
}

func TestFilterKeyDistinguishesOptionSets(t *testing.T) {
	a := &ProductListOptions{Search: "mug", Limit: 20}
	b := &ProductListOptions{Search: "mug", Limit: 40}
	c := &ProductListOptions{Search: "mug", Limit: 20}
	a.Normalize()
	b.Normalize()
	c.Normalize()

	assert.NotEqual(t, a.filterKey(), b.filterKey())
	assert.Equal(t, a.filterKey(), c.filterKey())
}

func TestBuildUpdateMapAllowList(t *testing.T) {
	name := "New Name"
	price := uint64(1999)
	active := false

	updates := BuildUpdateMap(&structs.UpdateProductRequest{
		Name:     &name,
		Price:    &price,
		IsActive: &active,
	})

	assert.Equal(t, map[string]any{
		"name":      "New Name",
		"price":     uint64(1999),
		"is_active": false,
	}, updates)
}

func TestBuildUpdateMapEmptyRequest(t *testing.T) {
	updates := BuildUpdateMap(&structs.UpdateProductRequest{})
	assert.Empty(t, updates)
}

func TestBuildUpdateMapNullableCategory(t *testing.T) {
	categoryId := uuid.New()
	updates := BuildUpdateMap(&structs.UpdateProductRequest{CategoryId: &categoryId})

	assert.Len(t, updates, 1)
	assert.Equal(t, categoryId, updates["category_id"])
}
