package storage

import (
	"github.com/kasuboski/vodz/pkg/storage/sqlite/schema/gen/model"
)

// TitleFilter narrows title listings. Zero values do not filter.
type TitleFilter struct {
	// Query matches a substring of the display name, case insensitive.
	Query       string
	CategoryKey string
	// Year matches the UTC calendar year of the provider insertion timestamp.
	Year      *int
	MinRating *float64
	Ambiguous *bool

	Offset int
	Limit  int
}

type PlaylistFilter struct {
	// Genre keeps only titles whose metadata lists this genre name, case insensitive.
	Genre string
	Limit int
}

// PlaylistEntry is a title with the genres of its metadata, if it has any.
type PlaylistEntry struct {
	model.Title
	Genres []Genre
}
