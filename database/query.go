package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// WhereClause represents a WHERE condition
type WhereClause struct {
	Column   string
	Operator string
	Value    any
}

// WhereGroup represents an OR-connected group of conditions, wrapped in
// parentheses and ANDed with the rest of the query.
type WhereGroup struct {
	Conditions []*WhereClause
}

// OrderDirection represents sort direction
type OrderDirection string

const (
	ASC  OrderDirection = "ASC"
	DESC OrderDirection = "DESC"
)

type orderClause struct {
	column    string
	direction OrderDirection
}

type joinClause struct {
	expr string
	args []any
}

// QueryBuilder provides a fluent, type-safe API for building database
// queries. Column and operator arguments are internal constants, never user
// input; user-supplied values always travel as bind parameters.
type QueryBuilder[T any] struct {
	db *DB

	selectCols []string
	joins      []*joinClause
	wheres     []*WhereClause
	orGroups   []*WhereGroup
	orders     []*orderClause
	limitVal   *int
	offsetVal  *int
}

// Query creates a new QueryBuilder instance
func Query[T any](db *DB) *QueryBuilder[T] {
	return &QueryBuilder[T]{db: db}
}

// ColumnExpr adds an expression to the select list. When none are given the
// model's columns are selected.
func (q *QueryBuilder[T]) ColumnExpr(expr string) *QueryBuilder[T] {
	q.selectCols = append(q.selectCols, expr)
	return q
}

// Join appends a raw join expression, e.g. "LEFT JOIN categories AS c ON ...".
func (q *QueryBuilder[T]) Join(expr string, args ...any) *QueryBuilder[T] {
	q.joins = append(q.joins, &joinClause{expr: expr, args: args})
	return q
}

// Where adds a simple WHERE condition (column = value)
func (q *QueryBuilder[T]) Where(column string, value any) *QueryBuilder[T] {
	return q.WhereOp(column, "=", value)
}

// WhereOp adds a WHERE condition with a custom operator
func (q *QueryBuilder[T]) WhereOp(column, operator string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{Column: column, Operator: operator, Value: value})
	return q
}

// WhereIn adds a WHERE IN condition
func (q *QueryBuilder[T]) WhereIn(column string, values any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, &WhereClause{Column: column, Operator: "IN", Value: values})
	return q
}

// WhereOrGroup adds a parenthesized group of OR-connected conditions.
func (q *QueryBuilder[T]) WhereOrGroup(conditions ...*WhereClause) *QueryBuilder[T] {
	q.orGroups = append(q.orGroups, &WhereGroup{Conditions: conditions})
	return q
}

// Or builds a single condition for use inside WhereOrGroup.
func Or(column, operator string, value any) *WhereClause {
	return &WhereClause{Column: column, Operator: operator, Value: value}
}

// OrderBy adds an ORDER BY clause
func (q *QueryBuilder[T]) OrderBy(column string, direction OrderDirection) *QueryBuilder[T] {
	q.orders = append(q.orders, &orderClause{column: column, direction: direction})
	return q
}

// Limit sets the LIMIT clause
func (q *QueryBuilder[T]) Limit(limit int) *QueryBuilder[T] {
	q.limitVal = &limit
	return q
}

// Offset sets the OFFSET clause
func (q *QueryBuilder[T]) Offset(offset int) *QueryBuilder[T] {
	q.offsetVal = &offset
	return q
}

// buildSelect materializes the accumulated clauses into a bun SelectQuery.
// The count and data paths share this single construction so pagination
// totals always match the filtered rows.
func (q *QueryBuilder[T]) buildSelect() *bun.SelectQuery {
	query := q.db.NewSelect().Model((*T)(nil))

	for _, col := range q.selectCols {
		query = query.ColumnExpr(col)
	}
	for _, j := range q.joins {
		query = query.Join(j.expr, j.args...)
	}
	for _, w := range q.wheres {
		if w.Operator == "IN" {
			query = query.Where(fmt.Sprintf("%s IN (?)", w.Column), bun.In(w.Value))
			continue
		}
		query = query.Where(fmt.Sprintf("%s %s ?", w.Column, w.Operator), w.Value)
	}
	for _, g := range q.orGroups {
		group := g
		query = query.WhereGroup(" AND ", func(sq *bun.SelectQuery) *bun.SelectQuery {
			for _, c := range group.Conditions {
				sq = sq.WhereOr(fmt.Sprintf("%s %s ?", c.Column, c.Operator), c.Value)
			}
			return sq
		})
	}
	for _, o := range q.orders {
		query = query.Order(fmt.Sprintf("%s %s", o.column, o.direction))
	}
	if q.limitVal != nil {
		query = query.Limit(*q.limitVal)
	}
	if q.offsetVal != nil {
		query = query.Offset(*q.offsetVal)
	}

	return query
}

// All executes the query and returns all matching records with automatic retry
func (q *QueryBuilder[T]) All(ctx context.Context) ([]T, error) {
	start := time.Now()
	var data []T

	err := WithRetry(ctx, func() error {
		data = nil // Reset on retry
		return q.buildSelect().Scan(ctx, &data)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute select query: %w (took %v)", err, time.Since(start))
	}

	return data, nil
}

// First executes the query and returns the first matching record with
// automatic retry. Returns nil without error when no row matches.
func (q *QueryBuilder[T]) First(ctx context.Context) (*T, error) {
	start := time.Now()
	var data T

	err := WithRetry(ctx, func() error {
		return q.buildSelect().Limit(1).Scan(ctx, &data)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to execute first query: %w (took %v)", err, time.Since(start))
	}

	return &data, nil
}

// Count executes the query and returns the count of matching records under
// the same filter predicate, ignoring ordering and pagination.
func (q *QueryBuilder[T]) Count(ctx context.Context) (int, error) {
	start := time.Now()
	var count int

	err := WithRetry(ctx, func() error {
		var err error
		count, err = q.buildSelect().Count(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w (took %v)", err, time.Since(start))
	}

	return count, nil
}

// Insert inserts a new record and returns it with automatic retry
func (q *QueryBuilder[T]) Insert(ctx context.Context, data *T) (*T, error) {
	start := time.Now()

	err := WithRetry(ctx, func() error {
		_, err := q.db.NewInsert().Model(data).Returning("*").Exec(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute insert query: %w (took %v)", err, time.Since(start))
	}

	return data, nil
}

// Update applies the given column/value set to records matching the query
// and returns the number of rows affected.
func (q *QueryBuilder[T]) Update(ctx context.Context, data map[string]any) (int, error) {
	start := time.Now()
	var rowsAffected int64

	err := WithRetry(ctx, func() error {
		query := q.db.NewUpdate().Model((*T)(nil))

		for key, value := range data {
			query = query.Set("? = ?", bun.Ident(key), value)
		}
		for _, w := range q.wheres {
			query = query.Where(fmt.Sprintf("%s %s ?", w.Column, w.Operator), w.Value)
		}

		res, err := query.Exec(ctx)
		if err != nil {
			return err
		}
		rowsAffected, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to execute update query: %w (took %v)", err, time.Since(start))
	}

	return int(rowsAffected), nil
}
