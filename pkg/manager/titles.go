package manager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/kasuboski/vodz/pkg/logger"
	"github.com/kasuboski/vodz/pkg/pagination"
	"github.com/kasuboski/vodz/pkg/playlist"
	"github.com/kasuboski/vodz/pkg/storage"
	"github.com/kasuboski/vodz/pkg/storage/sqlite/schema/gen/model"
	"go.uber.org/zap"
)

// TitleQuery filters and pages a title listing
type TitleQuery struct {
	Query       string
	CategoryKey string
	Year        *int
	MinRating   *float64
	Ambiguous   *bool
	Page        int
	PageSize    int
}

type TitleDetail struct {
	ID                 int64                  `json:"id"`
	StreamID           int64                  `json:"streamId"`
	Name               string                 `json:"name"`
	CategoryKey        string                 `json:"categoryKey"`
	Icon               *string                `json:"icon,omitempty"`
	AddedAt            int64                  `json:"addedAt"`
	ContainerExtension *string                `json:"containerExtension,omitempty"`
	Ambiguous          bool                   `json:"ambiguous"`
	UpdatedAt          time.Time              `json:"updatedAt"`
	Metadata           *storage.TitleMetadata `json:"metadata,omitempty"`
	Candidates         []storage.Candidate    `json:"candidates,omitempty"`
}

type TitlePage struct {
	Titles []TitleDetail    `json:"titles"`
	Meta   pagination.Meta `json:"meta"`
}

type Category struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SyncRun struct {
	ID            int64      `json:"id"`
	StartedAt     time.Time  `json:"startedAt"`
	FinishedAt    *time.Time `json:"finishedAt,omitempty"`
	Status        string     `json:"status"`
	Inserted      int32      `json:"inserted"`
	Updated       int32      `json:"updated"`
	Skipped       int32      `json:"skipped"`
	HighWaterMark int64      `json:"highWaterMark"`
	Error         *string    `json:"error,omitempty"`
}

// ListTitles pages through titles. Ambiguous titles carry their candidates.
func (m *CatalogManager) ListTitles(ctx context.Context, q TitleQuery) (TitlePage, error) {
	params := pagination.Params{Page: q.Page, PageSize: q.PageSize}.Normalize()
	offset, limit := params.CalculateOffsetLimit()

	filter := storage.TitleFilter{
		Query:       q.Query,
		CategoryKey: q.CategoryKey,
		Year:        q.Year,
		MinRating:   q.MinRating,
		Ambiguous:   q.Ambiguous,
	}

	total, err := m.storage.CountTitles(ctx, filter)
	if err != nil {
		return TitlePage{}, err
	}

	filter.Offset = offset
	filter.Limit = limit

	titles, err := m.storage.ListTitles(ctx, filter)
	if err != nil {
		return TitlePage{}, err
	}

	page := TitlePage{
		Titles: make([]TitleDetail, 0, len(titles)),
		Meta:   params.BuildMeta(int(total)),
	}

	for _, t := range titles {
		detail := toTitleDetail(t)
		if t.Ambiguous {
			detail.Candidates, err = m.candidates(ctx, t.ID)
			if err != nil {
				return TitlePage{}, err
			}
		}
		page.Titles = append(page.Titles, detail)
	}

	return page, nil
}

// GetTitle gets a title with its metadata when matched or its candidates when ambiguous
func (m *CatalogManager) GetTitle(ctx context.Context, id int64) (*TitleDetail, error) {
	t, err := m.storage.GetTitle(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := toTitleDetail(t)

	if t.Ambiguous {
		detail.Candidates, err = m.candidates(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		return &detail, nil
	}

	metadata, err := m.storage.GetTitleMetadata(ctx, id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case err != nil:
		return nil, err
	default:
		detail.Metadata = metadata
	}

	return &detail, nil
}

func (m *CatalogManager) ListCategories(ctx context.Context) ([]Category, error) {
	categories, err := m.storage.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, Category{
			ID:        int64(c.ID),
			Key:       c.CategoryKey,
			Name:      c.Name,
			UpdatedAt: c.UpdatedAt,
		})
	}

	return out, nil
}

// ListSyncRuns lists the most recent runs first. A limit of zero lists all of them.
func (m *CatalogManager) ListSyncRuns(ctx context.Context, limit int) ([]SyncRun, error) {
	runs, err := m.storage.ListSyncRuns(ctx, limit)
	if err != nil {
		return nil, err
	}

	out := make([]SyncRun, 0, len(runs))
	for _, r := range runs {
		out = append(out, SyncRun{
			ID:            int64(r.ID),
			StartedAt:     r.StartedAt,
			FinishedAt:    r.FinishedAt,
			Status:        r.Status,
			Inserted:      r.Inserted,
			Updated:       r.Updated,
			Skipped:       r.Skipped,
			HighWaterMark: r.HighWaterMark,
			Error:         r.Error,
		})
	}

	return out, nil
}

// WritePlaylist writes titles as an M3U playlist, optionally only those of one genre
func (m *CatalogManager) WritePlaylist(ctx context.Context, w io.Writer, genre string, limit int) error {
	if limit <= 0 {
		limit = playlist.DefaultLimit
	}

	entries, err := m.storage.ListPlaylistEntries(ctx, storage.PlaylistFilter{Genre: genre, Limit: limit})
	if err != nil {
		return fmt.Errorf("failed to list playlist entries: %w", err)
	}

	logger.FromCtx(ctx).Debugw("writing playlist", zap.String("genre", genre), zap.Int("entries", len(entries)))

	return playlist.Export(w, entries, m.xtream.StreamURL, genre)
}

func (m *CatalogManager) candidates(ctx context.Context, titleID int32) ([]storage.Candidate, error) {
	candidates, err := m.storage.GetTitleCandidates(ctx, int64(titleID))
	if errors.Is(err, storage.ErrNotFound) {
		return []storage.Candidate{}, nil
	}
	return candidates, err
}

func toTitleDetail(t *model.Title) TitleDetail {
	return TitleDetail{
		ID:                 int64(t.ID),
		StreamID:           t.StreamID,
		Name:               t.Name,
		CategoryKey:        t.CategoryKey,
		Icon:               t.Icon,
		AddedAt:            t.AddedAt,
		ContainerExtension: t.ContainerExtension,
		Ambiguous:          t.Ambiguous,
		UpdatedAt:          t.UpdatedAt,
	}
}

// Stats summarizes how much of the catalog is matched
func (m *CatalogManager) Stats(ctx context.Context) (*storage.CatalogStats, error) {
	return m.storage.GetCatalogStats(ctx)
}
