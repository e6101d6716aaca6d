package storage

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidResolution = errors.New("invalid resolution")

type ResolutionState string

const (
	ResolutionMatched    ResolutionState = "matched"
	ResolutionAmbiguous  ResolutionState = "ambiguous"
	ResolutionUnresolved ResolutionState = "unresolved"
)

// Resolution is the persisted outcome of matching a title against the metadata provider.
type Resolution struct {
	State      ResolutionState
	Metadata   *TitleMetadata
	Candidates []Candidate
}

// Matched stores metadata and drops any candidate set.
func Matched(metadata TitleMetadata) Resolution {
	return Resolution{State: ResolutionMatched, Metadata: &metadata}
}

// Ambiguous stores the candidate set, flags the title and drops any metadata.
func Ambiguous(candidates []Candidate) Resolution {
	return Resolution{State: ResolutionAmbiguous, Candidates: candidates}
}

// Unresolved drops both metadata and candidates and clears the flag.
func Unresolved() Resolution {
	return Resolution{State: ResolutionUnresolved}
}

func (r Resolution) Validate() error {
	switch r.State {
	case ResolutionMatched:
		if r.Metadata == nil {
			return fmt.Errorf("%w: matched without metadata", ErrInvalidResolution)
		}
	case ResolutionAmbiguous:
		if len(r.Candidates) == 0 {
			return fmt.Errorf("%w: ambiguous without candidates", ErrInvalidResolution)
		}
	case ResolutionUnresolved:
	default:
		return fmt.Errorf("%w: unknown state %q", ErrInvalidResolution, r.State)
	}
	return nil
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Keyword struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProductionCompany struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	OriginCountry string `json:"origin_country,omitempty"`
}

type ProductionCountry struct {
	ISO31661 string `json:"iso_3166_1"`
	Name     string `json:"name"`
}

type SpokenLanguage struct {
	ISO6391     string `json:"iso_639_1"`
	Name        string `json:"name"`
	EnglishName string `json:"english_name,omitempty"`
}

// TitleMetadata is the detail record of the metadata provider chosen for a title.
// Empty strings and nil pointers are stored as NULL.
type TitleMetadata struct {
	TitleID             int64               `json:"title_id"`
	TmdbID              int64               `json:"tmdb_id"`
	Title               string              `json:"title,omitempty"`
	OriginalTitle       string              `json:"original_title,omitempty"`
	OriginalLanguage    string              `json:"original_language,omitempty"`
	Overview            string              `json:"overview,omitempty"`
	PosterPath          string              `json:"poster_path,omitempty"`
	BackdropPath        string              `json:"backdrop_path,omitempty"`
	ReleaseDate         string              `json:"release_date,omitempty"`
	Runtime             *int32              `json:"runtime,omitempty"`
	VoteAverage         *float64            `json:"vote_average,omitempty"`
	VoteCount           *int32              `json:"vote_count,omitempty"`
	Genres              []Genre             `json:"genres"`
	SpokenLanguages     []SpokenLanguage    `json:"spoken_languages"`
	ProductionCompanies []ProductionCompany `json:"production_companies"`
	ProductionCountries []ProductionCountry `json:"production_countries"`
	Budget              *int64              `json:"budget,omitempty"`
	Revenue             *int64              `json:"revenue,omitempty"`
	Keywords            []Keyword           `json:"keywords"`
	Homepage            string              `json:"homepage,omitempty"`
	Status              string              `json:"status,omitempty"`
	Discrepancies       Discrepancies       `json:"discrepancies"`
	EnrichedAt          time.Time           `json:"enriched_at"`
}

// GenreNames returns the genre names in provider order.
func (m TitleMetadata) GenreNames() []string {
	names := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		names = append(names, g.Name)
	}
	return names
}

// Discrepancies records where provider catalog fields disagree with the metadata.
// Genres is informational and set whenever the metadata lists genres.
type Discrepancies struct {
	Title  *TitleDiscrepancy `json:"title,omitempty"`
	Year   *YearDiscrepancy  `json:"year,omitempty"`
	Genres *GenreReport      `json:"genres,omitempty"`
}

func (d Discrepancies) Empty() bool {
	return d.Title == nil && d.Year == nil && d.Genres == nil
}

type TitleDiscrepancy struct {
	Xtream string `json:"xtream"`
	Tmdb   string `json:"tmdb"`
}

type YearDiscrepancy struct {
	Xtream int `json:"xtream"`
	Tmdb   int `json:"tmdb"`
}

type GenreReport struct {
	Tmdb []string `json:"tmdb"`
}

// Candidate is a search result kept for an ambiguous title.
type Candidate struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	OriginalTitle string   `json:"original_title,omitempty"`
	ReleaseDate   string   `json:"release_date,omitempty"`
	Overview      string   `json:"overview,omitempty"`
	PosterPath    string   `json:"poster_path,omitempty"`
	Popularity    *float64 `json:"popularity,omitempty"`
	VoteAverage   *float64 `json:"vote_average,omitempty"`
}
