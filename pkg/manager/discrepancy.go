package manager

import (
	"slices"
	"time"

	"github.com/kasuboski/vodz/pkg/match"
	"github.com/kasuboski/vodz/pkg/storage"
	"github.com/kasuboski/vodz/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/vodz/pkg/tmdb"
)

// insertionYear is the UTC calendar year a title was added to the provider catalog
func insertionYear(addedAt int64) *int {
	if addedAt <= 0 {
		return nil
	}
	year := time.Unix(addedAt, 0).UTC().Year()
	return &year
}

// findDiscrepancies compares the provider fields of a title with its metadata.
// The provider has no genres so the metadata genres are only reported.
func findDiscrepancies(title *model.Title, details *tmdb.MovieDetails) storage.Discrepancies {
	var d storage.Discrepancies

	if title.Name != "" && details.OriginalTitle != "" && title.Name != details.OriginalTitle {
		d.Title = &storage.TitleDiscrepancy{
			Xtream: title.Name,
			Tmdb:   details.OriginalTitle,
		}
	}

	if added := insertionYear(title.AddedAt); added != nil {
		if released, ok := match.ReleaseYear(details.ReleaseDate); ok && released != *added {
			d.Year = &storage.YearDiscrepancy{
				Xtream: *added,
				Tmdb:   released,
			}
		}
	}

	if details.Genres != nil {
		names := make([]string, 0, len(details.Genres))
		for _, g := range details.Genres {
			names = append(names, g.Name)
		}
		slices.Sort(names)
		d.Genres = &storage.GenreReport{Tmdb: names}
	}

	return d
}
