package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/vodz/pkg/logger"
	"github.com/kasuboski/vodz/pkg/storage"
	"github.com/kasuboski/vodz/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/vodz/pkg/storage/sqlite/schema/gen/table"
)

// GetTitleMetadata gets the metadata chosen for a title
func (s *SQLite) GetTitleMetadata(ctx context.Context, titleID int64) (*storage.TitleMetadata, error) {
	stmt := table.TitleMetadata.
		SELECT(table.TitleMetadata.AllColumns).
		FROM(table.TitleMetadata).
		WHERE(table.TitleMetadata.TitleID.EQ(sqlite.Int64(titleID))).
		LIMIT(1)

	var row model.TitleMetadata
	err := stmt.QueryContext(ctx, s.db, &row)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get title metadata: %w", err)
	}

	return toTitleMetadata(row)
}

// GetTitleCandidates gets the candidate set kept for an ambiguous title
func (s *SQLite) GetTitleCandidates(ctx context.Context, titleID int64) ([]storage.Candidate, error) {
	stmt := table.TitleCandidate.
		SELECT(table.TitleCandidate.AllColumns).
		FROM(table.TitleCandidate).
		WHERE(table.TitleCandidate.TitleID.EQ(sqlite.Int64(titleID))).
		LIMIT(1)

	var row model.TitleCandidate
	err := stmt.QueryContext(ctx, s.db, &row)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get title candidates: %w", err)
	}

	candidates, err := decodeList[storage.Candidate](row.Candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to decode candidates for title %d: %w", titleID, err)
	}

	return candidates, nil
}

// SetResolution writes the chosen side, deletes the other side and sets the ambiguity flag in one transaction
func (s *SQLite) SetResolution(ctx context.Context, titleID int64, resolution storage.Resolution) error {
	if err := resolution.Validate(); err != nil {
		return err
	}

	log := logger.FromCtx(ctx, "title_id", titleID, "resolution", resolution.State)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	err = setResolution(ctx, tx, titleID, resolution)
	if err != nil {
		log.Debugw("failed to set resolution", "error", err)
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

func setResolution(ctx context.Context, tx *sql.Tx, titleID int64, resolution storage.Resolution) error {
	var title model.Title
	err := table.Title.
		SELECT(table.Title.ID).
		FROM(table.Title).
		WHERE(table.Title.ID.EQ(sqlite.Int64(titleID))).
		LIMIT(1).
		QueryContext(ctx, tx, &title)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("failed to get title: %w", err)
	}

	switch resolution.State {
	case storage.ResolutionMatched:
		metadata := *resolution.Metadata
		metadata.TitleID = titleID
		if err := upsertMetadata(ctx, tx, metadata); err != nil {
			return err
		}
		if err := deleteCandidates(ctx, tx, titleID); err != nil {
			return err
		}
		return setAmbiguous(ctx, tx, titleID, false)

	case storage.ResolutionAmbiguous:
		if err := upsertCandidates(ctx, tx, titleID, resolution.Candidates); err != nil {
			return err
		}
		if err := deleteMetadata(ctx, tx, titleID); err != nil {
			return err
		}
		return setAmbiguous(ctx, tx, titleID, true)

	default:
		if err := deleteCandidates(ctx, tx, titleID); err != nil {
			return err
		}
		if err := deleteMetadata(ctx, tx, titleID); err != nil {
			return err
		}
		return setAmbiguous(ctx, tx, titleID, false)
	}
}

func upsertMetadata(ctx context.Context, tx *sql.Tx, metadata storage.TitleMetadata) error {
	row, err := fromTitleMetadata(metadata)
	if err != nil {
		return err
	}

	m := table.TitleMetadata
	stmt := m.
		INSERT(m.AllColumns).
		MODEL(row).
		ON_CONFLICT(m.TitleID).
		DO_UPDATE(sqlite.SET(
			m.TmdbID.SET(m.EXCLUDED.TmdbID),
			m.Title.SET(m.EXCLUDED.Title),
			m.OriginalTitle.SET(m.EXCLUDED.OriginalTitle),
			m.OriginalLanguage.SET(m.EXCLUDED.OriginalLanguage),
			m.Overview.SET(m.EXCLUDED.Overview),
			m.PosterPath.SET(m.EXCLUDED.PosterPath),
			m.BackdropPath.SET(m.EXCLUDED.BackdropPath),
			m.ReleaseDate.SET(m.EXCLUDED.ReleaseDate),
			m.Runtime.SET(m.EXCLUDED.Runtime),
			m.VoteAverage.SET(m.EXCLUDED.VoteAverage),
			m.VoteCount.SET(m.EXCLUDED.VoteCount),
			m.Genres.SET(m.EXCLUDED.Genres),
			m.SpokenLanguages.SET(m.EXCLUDED.SpokenLanguages),
			m.ProductionCompanies.SET(m.EXCLUDED.ProductionCompanies),
			m.ProductionCountries.SET(m.EXCLUDED.ProductionCountries),
			m.Budget.SET(m.EXCLUDED.Budget),
			m.Revenue.SET(m.EXCLUDED.Revenue),
			m.Keywords.SET(m.EXCLUDED.Keywords),
			m.Homepage.SET(m.EXCLUDED.Homepage),
			m.Status.SET(m.EXCLUDED.Status),
			m.Discrepancies.SET(m.EXCLUDED.Discrepancies),
			m.EnrichedAt.SET(m.EXCLUDED.EnrichedAt),
		))

	_, err = stmt.ExecContext(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to upsert title metadata: %w", err)
	}

	return nil
}

func upsertCandidates(ctx context.Context, tx *sql.Tx, titleID int64, candidates []storage.Candidate) error {
	encoded, err := encodeList(candidates)
	if err != nil {
		return fmt.Errorf("failed to encode candidates: %w", err)
	}

	row := model.TitleCandidate{
		TitleID:    int32(titleID),
		Candidates: encoded,
		RecordedAt: time.Now().UTC(),
	}

	c := table.TitleCandidate
	stmt := c.
		INSERT(c.AllColumns).
		MODEL(row).
		ON_CONFLICT(c.TitleID).
		DO_UPDATE(sqlite.SET(
			c.Candidates.SET(c.EXCLUDED.Candidates),
			c.RecordedAt.SET(c.EXCLUDED.RecordedAt),
		))

	_, err = stmt.ExecContext(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to upsert title candidates: %w", err)
	}

	return nil
}

func deleteMetadata(ctx context.Context, tx *sql.Tx, titleID int64) error {
	_, err := table.TitleMetadata.
		DELETE().
		WHERE(table.TitleMetadata.TitleID.EQ(sqlite.Int64(titleID))).
		ExecContext(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to delete title metadata: %w", err)
	}
	return nil
}

func deleteCandidates(ctx context.Context, tx *sql.Tx, titleID int64) error {
	_, err := table.TitleCandidate.
		DELETE().
		WHERE(table.TitleCandidate.TitleID.EQ(sqlite.Int64(titleID))).
		ExecContext(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to delete title candidates: %w", err)
	}
	return nil
}

func setAmbiguous(ctx context.Context, tx *sql.Tx, titleID int64, ambiguous bool) error {
	_, err := table.Title.
		UPDATE(table.Title.Ambiguous, table.Title.UpdatedAt).
		MODEL(model.Title{Ambiguous: ambiguous, UpdatedAt: time.Now().UTC()}).
		WHERE(table.Title.ID.EQ(sqlite.Int64(titleID))).
		ExecContext(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to update title ambiguity: %w", err)
	}
	return nil
}

func fromTitleMetadata(m storage.TitleMetadata) (model.TitleMetadata, error) {
	row := model.TitleMetadata{
		TitleID:          int32(m.TitleID),
		TmdbID:           m.TmdbID,
		Title:            nullString(m.Title),
		OriginalTitle:    nullString(m.OriginalTitle),
		OriginalLanguage: nullString(m.OriginalLanguage),
		Overview:         nullString(m.Overview),
		PosterPath:       nullString(m.PosterPath),
		BackdropPath:     nullString(m.BackdropPath),
		ReleaseDate:      nullString(m.ReleaseDate),
		Runtime:          m.Runtime,
		VoteAverage:      m.VoteAverage,
		VoteCount:        m.VoteCount,
		Budget:           m.Budget,
		Revenue:          m.Revenue,
		Homepage:         nullString(m.Homepage),
		Status:           nullString(m.Status),
		EnrichedAt:       m.EnrichedAt,
	}

	if row.EnrichedAt.IsZero() {
		row.EnrichedAt = time.Now().UTC()
	}

	var err error
	if row.Genres, err = encodeList(m.Genres); err != nil {
		return row, fmt.Errorf("failed to encode genres: %w", err)
	}
	if row.SpokenLanguages, err = encodeList(m.SpokenLanguages); err != nil {
		return row, fmt.Errorf("failed to encode spoken languages: %w", err)
	}
	if row.ProductionCompanies, err = encodeList(m.ProductionCompanies); err != nil {
		return row, fmt.Errorf("failed to encode production companies: %w", err)
	}
	if row.ProductionCountries, err = encodeList(m.ProductionCountries); err != nil {
		return row, fmt.Errorf("failed to encode production countries: %w", err)
	}
	if row.Keywords, err = encodeList(m.Keywords); err != nil {
		return row, fmt.Errorf("failed to encode keywords: %w", err)
	}

	discrepancies, err := json.Marshal(m.Discrepancies)
	if err != nil {
		return row, fmt.Errorf("failed to encode discrepancies: %w", err)
	}
	row.Discrepancies = string(discrepancies)

	return row, nil
}

func toTitleMetadata(row model.TitleMetadata) (*storage.TitleMetadata, error) {
	m := &storage.TitleMetadata{
		TitleID:          int64(row.TitleID),
		TmdbID:           row.TmdbID,
		Title:            derefString(row.Title),
		OriginalTitle:    derefString(row.OriginalTitle),
		OriginalLanguage: derefString(row.OriginalLanguage),
		Overview:         derefString(row.Overview),
		PosterPath:       derefString(row.PosterPath),
		BackdropPath:     derefString(row.BackdropPath),
		ReleaseDate:      derefString(row.ReleaseDate),
		Runtime:          row.Runtime,
		VoteAverage:      row.VoteAverage,
		VoteCount:        row.VoteCount,
		Budget:           row.Budget,
		Revenue:          row.Revenue,
		Homepage:         derefString(row.Homepage),
		Status:           derefString(row.Status),
		EnrichedAt:       row.EnrichedAt,
	}

	var err error
	if m.Genres, err = decodeList[storage.Genre](row.Genres); err != nil {
		return nil, fmt.Errorf("failed to decode genres: %w", err)
	}
	if m.SpokenLanguages, err = decodeList[storage.SpokenLanguage](row.SpokenLanguages); err != nil {
		return nil, fmt.Errorf("failed to decode spoken languages: %w", err)
	}
	if m.ProductionCompanies, err = decodeList[storage.ProductionCompany](row.ProductionCompanies); err != nil {
		return nil, fmt.Errorf("failed to decode production companies: %w", err)
	}
	if m.ProductionCountries, err = decodeList[storage.ProductionCountry](row.ProductionCountries); err != nil {
		return nil, fmt.Errorf("failed to decode production countries: %w", err)
	}
	if m.Keywords, err = decodeList[storage.Keyword](row.Keywords); err != nil {
		return nil, fmt.Errorf("failed to decode keywords: %w", err)
	}

	if row.Discrepancies != "" {
		if err := json.Unmarshal([]byte(row.Discrepancies), &m.Discrepancies); err != nil {
			return nil, fmt.Errorf("failed to decode discrepancies: %w", err)
		}
	}

	return m, nil
}
