package manager

import (
	"context"
	"fmt"

	"github.com/kasuboski/vodz/pkg/logger"
	"github.com/kasuboski/vodz/pkg/match"
	"github.com/kasuboski/vodz/pkg/storage"
	"github.com/kasuboski/vodz/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/vodz/pkg/tmdb"
	"go.uber.org/zap"
)

// EnrichResult is the outcome of matching one title
type EnrichResult struct {
	TitleID       int64
	Outcome       match.Outcome
	TmdbID        int64
	Candidates    int
	Discrepancies storage.Discrepancies
}

// EnrichOne matches a title against the metadata source and stores the outcome
func (m *CatalogManager) EnrichOne(ctx context.Context, title *model.Title) (EnrichResult, error) {
	log := logger.FromCtx(ctx, zap.Int32("title_id", title.ID), zap.String("title", title.Name))
	result := EnrichResult{TitleID: int64(title.ID)}

	resolved, err := m.resolve(ctx, title)
	if err != nil {
		return result, err
	}
	result.Outcome = resolved.Outcome

	switch resolved.Outcome {
	case match.Matched:
		metadata, err := m.persistMatch(ctx, title, *resolved.Chosen)
		if err != nil {
			return result, err
		}
		result.TmdbID = metadata.TmdbID
		result.Discrepancies = metadata.Discrepancies

	case match.Ambiguous:
		result.Candidates = len(resolved.Candidates)
		log.Warnw("ambiguous match", "candidates", len(resolved.Candidates))

		err := m.storage.SetResolution(ctx, int64(title.ID), storage.Ambiguous(toStorageCandidates(resolved.Candidates)))
		if err != nil {
			return result, fmt.Errorf("failed to store candidates: %w", err)
		}

	default:
		log.Warn("no match found")

		if err := m.storage.SetResolution(ctx, int64(title.ID), storage.Unresolved()); err != nil {
			return result, fmt.Errorf("failed to clear resolution: %w", err)
		}
	}

	return result, nil
}

// EnrichAll enriches every stored title one at a time and returns how many matched.
// A title that fails is logged and skipped.
func (m *CatalogManager) EnrichAll(ctx context.Context) (int, error) {
	log := logger.FromCtx(ctx)

	titles, err := m.storage.ListTitles(ctx, storage.TitleFilter{})
	if err != nil {
		return 0, fmt.Errorf("failed to list titles: %w", err)
	}

	log.Infow("enriching titles", "count", len(titles))

	matched := 0
	for i, title := range titles {
		if err := ctx.Err(); err != nil {
			return matched, err
		}

		log.Debugw("enriching title", "index", i+1, "total", len(titles), "title", title.Name)

		result, err := m.EnrichOne(ctx, title)
		if err != nil {
			log.Errorw("failed to enrich title", zap.Int32("title_id", title.ID), zap.String("title", title.Name), zap.Error(err))
			continue
		}

		if result.Outcome == match.Matched {
			matched++
		}
	}

	log.Infow("enrichment finished", "matched", matched, "total", len(titles))
	return matched, nil
}

// ReresolveAmbiguous retries every ambiguous title and returns how many now match.
// Titles that are still ambiguous or have no match keep their candidates.
func (m *CatalogManager) ReresolveAmbiguous(ctx context.Context) (int, error) {
	log := logger.FromCtx(ctx)

	ambiguous := true
	titles, err := m.storage.ListTitles(ctx, storage.TitleFilter{Ambiguous: &ambiguous})
	if err != nil {
		return 0, fmt.Errorf("failed to list ambiguous titles: %w", err)
	}

	log.Infow("re-resolving ambiguous titles", "count", len(titles))

	resolved := 0
	for _, title := range titles {
		if err := ctx.Err(); err != nil {
			return resolved, err
		}

		titleLog := log.With(zap.Int32("title_id", title.ID), zap.String("title", title.Name))

		result, err := m.resolve(ctx, title)
		if err != nil {
			titleLog.Errorw("failed to re-resolve title", zap.Error(err))
			continue
		}

		if result.Outcome != match.Matched {
			titleLog.Debugw("title still unresolved", "outcome", result.Outcome)
			continue
		}

		if _, err := m.persistMatch(ctx, title, *result.Chosen); err != nil {
			titleLog.Errorw("failed to store match", zap.Error(err))
			continue
		}

		resolved++
	}

	log.Infow("ambiguity pass finished", "resolved", resolved, "total", len(titles))
	return resolved, nil
}

func (m *CatalogManager) resolve(ctx context.Context, title *model.Title) (match.Result, error) {
	search, err := m.tmdb.SearchMovie(ctx, title.Name)
	if err != nil {
		return match.Result{}, fmt.Errorf("failed to search metadata: %w", err)
	}

	candidates := make([]match.Candidate, 0, len(search.Results))
	for _, r := range search.Results {
		candidates = append(candidates, match.Candidate{
			ID:            r.ID,
			Title:         r.Title,
			OriginalTitle: r.OriginalTitle,
			ReleaseDate:   r.ReleaseDate,
			Overview:      r.Overview,
			PosterPath:    r.PosterPath,
			Popularity:    r.Popularity,
			Rating:        r.VoteAverage,
		})
	}

	return match.Resolve(candidates, title.Name, insertionYear(title.AddedAt)), nil
}

// persistMatch fetches the details of the chosen candidate and stores them as the title's metadata
func (m *CatalogManager) persistMatch(ctx context.Context, title *model.Title, chosen match.Candidate) (storage.TitleMetadata, error) {
	log := logger.FromCtx(ctx, zap.Int32("title_id", title.ID), zap.String("title", title.Name))

	details, err := m.tmdb.GetMovieDetails(ctx, chosen.ID)
	if err != nil {
		return storage.TitleMetadata{}, fmt.Errorf("failed to get metadata details %d: %w", chosen.ID, err)
	}

	discrepancies := findDiscrepancies(title, details)
	if !discrepancies.Empty() {
		log.Warnw("discrepancy between catalog and metadata", "discrepancies", discrepancies)
	}

	metadata := toTitleMetadata(int64(title.ID), details, discrepancies)
	metadata.EnrichedAt = m.now()

	if err := m.storage.SetResolution(ctx, int64(title.ID), storage.Matched(metadata)); err != nil {
		return storage.TitleMetadata{}, fmt.Errorf("failed to store metadata: %w", err)
	}

	return metadata, nil
}

func toStorageCandidates(candidates []match.Candidate) []storage.Candidate {
	out := make([]storage.Candidate, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, storage.Candidate{
			ID:            c.ID,
			Title:         c.Title,
			OriginalTitle: c.OriginalTitle,
			ReleaseDate:   c.ReleaseDate,
			Overview:      c.Overview,
			PosterPath:    c.PosterPath,
			Popularity:    c.Popularity,
			VoteAverage:   c.Rating,
		})
	}
	return out
}

func toTitleMetadata(titleID int64, d *tmdb.MovieDetails, discrepancies storage.Discrepancies) storage.TitleMetadata {
	m := storage.TitleMetadata{
		TitleID:          titleID,
		TmdbID:           d.ID,
		Title:            d.Title,
		OriginalTitle:    d.OriginalTitle,
		OriginalLanguage: d.OriginalLanguage,
		Overview:         d.Overview,
		PosterPath:       d.PosterPath,
		BackdropPath:     d.BackdropPath,
		ReleaseDate:      d.ReleaseDate,
		Runtime:          d.Runtime,
		VoteAverage:      d.VoteAverage,
		VoteCount:        d.VoteCount,
		Budget:           d.Budget,
		Revenue:          d.Revenue,
		Homepage:         d.Homepage,
		Status:           d.Status,
		Discrepancies:    discrepancies,
	}

	for _, g := range d.Genres {
		m.Genres = append(m.Genres, storage.Genre{ID: g.ID, Name: g.Name})
	}
	for _, l := range d.SpokenLanguages {
		m.SpokenLanguages = append(m.SpokenLanguages, storage.SpokenLanguage{ISO6391: l.ISO6391, Name: l.Name, EnglishName: l.EnglishName})
	}
	for _, c := range d.ProductionCompanies {
		m.ProductionCompanies = append(m.ProductionCompanies, storage.ProductionCompany{ID: c.ID, Name: c.Name, OriginCountry: c.OriginCountry})
	}
	for _, c := range d.ProductionCountries {
		m.ProductionCountries = append(m.ProductionCountries, storage.ProductionCountry{ISO31661: c.ISO31661, Name: c.Name})
	}
	for _, k := range d.KeywordList() {
		m.Keywords = append(m.Keywords, storage.Keyword{ID: k.ID, Name: k.Name})
	}

	return m
}
