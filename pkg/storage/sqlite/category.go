package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/vodz/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/vodz/pkg/storage/sqlite/schema/gen/table"
)

// UpsertCategory inserts a category or renames the existing one with the same provider key
func (s *SQLite) UpsertCategory(ctx context.Context, category model.Category) (int64, error) {
	if category.UpdatedAt.IsZero() {
		category.UpdatedAt = time.Now().UTC()
	}

	stmt := table.Category.
		INSERT(table.Category.CategoryKey, table.Category.Name, table.Category.UpdatedAt).
		MODEL(category).
		ON_CONFLICT(table.Category.CategoryKey).
		DO_UPDATE(sqlite.SET(
			table.Category.Name.SET(table.Category.EXCLUDED.Name),
			table.Category.UpdatedAt.SET(table.Category.EXCLUDED.UpdatedAt),
		)).
		RETURNING(table.Category.ID)

	var dest model.Category
	err := stmt.QueryContext(ctx, s.db, &dest)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert category %s: %w", category.CategoryKey, err)
	}

	return int64(dest.ID), nil
}

// ListCategories lists categories ordered by name
func (s *SQLite) ListCategories(ctx context.Context) ([]*model.Category, error) {
	categories := make([]*model.Category, 0)

	stmt := table.Category.
		SELECT(table.Category.AllColumns).
		FROM(table.Category).
		ORDER_BY(table.Category.Name.ASC(), table.Category.ID.ASC())

	err := stmt.QueryContext(ctx, s.db, &categories)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}
