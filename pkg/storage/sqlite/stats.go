package sqlite

import (
	"context"
	"fmt"

	"github.com/kasuboski/vodz/pkg/storage"
)

// GetCatalogStats counts titles by how they were resolved and by category
func (s *SQLite) GetCatalogStats(ctx context.Context) (*storage.CatalogStats, error) {
	stats := &storage.CatalogStats{
		ByResolution: map[storage.ResolutionState]int{
			storage.ResolutionMatched:    0,
			storage.ResolutionAmbiguous:  0,
			storage.ResolutionUnresolved: 0,
		},
		ByCategory: make([]storage.CategoryCount, 0),
	}

	// raw SQL since the CASE aggregate does not map onto a generated model
	rows, err := s.db.QueryContext(ctx, `
		SELECT CASE
		         WHEN title.ambiguous THEN 'ambiguous'
		         WHEN title_metadata.title_id IS NOT NULL THEN 'matched'
		         ELSE 'unresolved'
		       END AS state,
		       COUNT(title.id) AS count
		FROM title
		LEFT JOIN title_metadata ON (title_metadata.title_id = title.id)
		GROUP BY state
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count titles by resolution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var state string
		var count int
		if err := rows.Scan(&state, &count); err != nil {
			return nil, err
		}
		stats.ByResolution[storage.ResolutionState(state)] = count
		stats.Titles += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	categoryRows, err := s.db.QueryContext(ctx, `
		SELECT title.category_key,
		       COALESCE(category.name, '') AS name,
		       COUNT(title.id) AS count
		FROM title
		LEFT JOIN category ON (category.category_key = title.category_key)
		GROUP BY title.category_key, category.name
		ORDER BY count DESC, title.category_key
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count titles by category: %w", err)
	}
	defer categoryRows.Close()

	for categoryRows.Next() {
		var c storage.CategoryCount
		if err := categoryRows.Scan(&c.CategoryKey, &c.Name, &c.Count); err != nil {
			return nil, err
		}
		stats.ByCategory = append(stats.ByCategory, c)
	}

	return stats, categoryRows.Err()
}
