package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/vodz/pkg/match"
	"github.com/kasuboski/vodz/pkg/storage"
	"github.com/kasuboski/vodz/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/vodz/pkg/storage/sqlite/schema/gen/table"
)

// UpsertTitle inserts a title keyed by stream id or overwrites its provider fields
func (s *SQLite) UpsertTitle(ctx context.Context, title model.Title) (int64, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, err
	}

	var existing model.Title
	err = table.Title.
		SELECT(table.Title.ID).
		FROM(table.Title).
		WHERE(table.Title.StreamID.EQ(sqlite.Int64(title.StreamID))).
		LIMIT(1).
		QueryContext(ctx, tx, &existing)
	inserted := errors.Is(err, qrm.ErrNoRows)
	if err != nil && !inserted {
		tx.Rollback()
		return 0, false, fmt.Errorf("failed to look up title %d: %w", title.StreamID, err)
	}

	now := time.Now().UTC()
	title.CreatedAt = now
	title.UpdatedAt = now

	stmt := table.Title.
		INSERT(
			table.Title.StreamID,
			table.Title.Name,
			table.Title.NameNormalized,
			table.Title.CategoryKey,
			table.Title.Icon,
			table.Title.AddedAt,
			table.Title.ContainerExtension,
			table.Title.CreatedAt,
			table.Title.UpdatedAt,
		).
		MODEL(title).
		ON_CONFLICT(table.Title.StreamID).
		DO_UPDATE(sqlite.SET(
			table.Title.Name.SET(table.Title.EXCLUDED.Name),
			table.Title.NameNormalized.SET(table.Title.EXCLUDED.NameNormalized),
			table.Title.CategoryKey.SET(table.Title.EXCLUDED.CategoryKey),
			table.Title.Icon.SET(table.Title.EXCLUDED.Icon),
			table.Title.AddedAt.SET(table.Title.EXCLUDED.AddedAt),
			table.Title.ContainerExtension.SET(table.Title.EXCLUDED.ContainerExtension),
			table.Title.UpdatedAt.SET(table.Title.EXCLUDED.UpdatedAt),
		)).
		RETURNING(table.Title.ID)

	var dest model.Title
	err = stmt.QueryContext(ctx, tx, &dest)
	if err != nil {
		tx.Rollback()
		return 0, false, fmt.Errorf("failed to upsert title %d: %w", title.StreamID, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, false, err
	}

	return int64(dest.ID), inserted, nil
}

// GetTitle gets a title by id
func (s *SQLite) GetTitle(ctx context.Context, id int64) (*model.Title, error) {
	stmt := table.Title.
		SELECT(table.Title.AllColumns).
		FROM(table.Title).
		WHERE(table.Title.ID.EQ(sqlite.Int64(id))).
		LIMIT(1)

	title := new(model.Title)
	err := stmt.QueryContext(ctx, s.db, title)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get title: %w", err)
	}

	return title, nil
}

// ListTitles lists titles matching the filter ordered by id
func (s *SQLite) ListTitles(ctx context.Context, filter storage.TitleFilter) ([]*model.Title, error) {
	titles := make([]*model.Title, 0)

	stmt := table.Title.
		SELECT(table.Title.AllColumns).
		FROM(titleSource()).
		WHERE(titleCondition(filter)).
		ORDER_BY(table.Title.ID.ASC())

	if filter.Limit > 0 {
		stmt = stmt.LIMIT(int64(filter.Limit)).OFFSET(int64(filter.Offset))
	}

	err := stmt.QueryContext(ctx, s.db, &titles)
	if err != nil {
		return nil, fmt.Errorf("failed to list titles: %w", err)
	}

	return titles, nil
}

// CountTitles counts titles matching the filter, ignoring offset and limit
func (s *SQLite) CountTitles(ctx context.Context, filter storage.TitleFilter) (int64, error) {
	stmt := table.Title.
		SELECT(sqlite.COUNT(table.Title.ID)).
		FROM(titleSource()).
		WHERE(titleCondition(filter))

	count, err := s.queryCount(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to count titles: %w", err)
	}

	return count, nil
}

// CountAmbiguousTitles counts titles waiting on a candidate choice
func (s *SQLite) CountAmbiguousTitles(ctx context.Context) (int64, error) {
	ambiguous := true
	return s.CountTitles(ctx, storage.TitleFilter{Ambiguous: &ambiguous})
}

type playlistRow struct {
	model.Title
	Genres *string `alias:"title_metadata.genres"`
}

// ListPlaylistEntries lists titles with their metadata genres for playlist export
func (s *SQLite) ListPlaylistEntries(ctx context.Context, filter storage.PlaylistFilter) ([]*storage.PlaylistEntry, error) {
	genre := strings.TrimSpace(filter.Genre)

	stmt := table.Title.
		SELECT(table.Title.AllColumns, table.TitleMetadata.Genres).
		FROM(titleSource()).
		ORDER_BY(table.Title.ID.ASC())

	if genre != "" {
		// coarse match in sql, exact genre name match below
		stmt = stmt.WHERE(table.TitleMetadata.Genres.LIKE(sqlite.String("%" + genre + "%")))
	} else if filter.Limit > 0 {
		stmt = stmt.LIMIT(int64(filter.Limit))
	}

	rows := make([]playlistRow, 0)
	err := stmt.QueryContext(ctx, s.db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlist entries: %w", err)
	}

	entries := make([]*storage.PlaylistEntry, 0, len(rows))
	for _, row := range rows {
		genres, err := decodeList[storage.Genre](derefString(row.Genres))
		if err != nil {
			return nil, fmt.Errorf("failed to decode genres for title %d: %w", row.ID, err)
		}

		if genre != "" && !hasGenre(genres, genre) {
			continue
		}

		entries = append(entries, &storage.PlaylistEntry{Title: row.Title, Genres: genres})
		if filter.Limit > 0 && len(entries) == filter.Limit {
			break
		}
	}

	return entries, nil
}

func hasGenre(genres []storage.Genre, name string) bool {
	for _, g := range genres {
		if strings.EqualFold(g.Name, name) {
			return true
		}
	}
	return false
}

func titleSource() sqlite.ReadableTable {
	return table.Title.LEFT_JOIN(table.TitleMetadata, table.TitleMetadata.TitleID.EQ(table.Title.ID))
}

func titleCondition(filter storage.TitleFilter) sqlite.BoolExpression {
	cond := sqlite.Bool(true)

	if q := strings.TrimSpace(filter.Query); q != "" {
		cond = cond.AND(table.Title.NameNormalized.LIKE(sqlite.String("%" + match.Normalize(q) + "%")))
	}

	if filter.CategoryKey != "" {
		cond = cond.AND(table.Title.CategoryKey.EQ(sqlite.String(filter.CategoryKey)))
	}

	if filter.Year != nil {
		start := time.Date(*filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
		end := time.Date(*filter.Year+1, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
		cond = cond.AND(table.Title.AddedAt.GT_EQ(sqlite.Int64(start))).
			AND(table.Title.AddedAt.LT(sqlite.Int64(end)))
	}

	if filter.MinRating != nil {
		cond = cond.AND(table.TitleMetadata.VoteAverage.GT_EQ(sqlite.Float(*filter.MinRating)))
	}

	if filter.Ambiguous != nil {
		cond = cond.AND(table.Title.Ambiguous.EQ(sqlite.Bool(*filter.Ambiguous)))
	}

	return cond
}
