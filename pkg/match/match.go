// Package match decides which metadata search result, if any, describes a catalog title.
package match

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MinConfidentRating is the lowest rating a chosen candidate may carry and still be accepted.
const MinConfidentRating = 4.0

type Outcome string

const (
	NoMatch   Outcome = "no_match"
	Matched   Outcome = "matched"
	Ambiguous Outcome = "ambiguous"
)

// Candidate is one search result from the metadata provider.
// Rating and ReleaseDate are optional.
type Candidate struct {
	ID            int64
	Title         string
	OriginalTitle string
	ReleaseDate   string
	Overview      string
	PosterPath    string
	Popularity    *float64
	Rating        *float64
}

// Year returns the calendar year of the candidate's release date.
func (c Candidate) Year() (int, bool) {
	return ReleaseYear(c.ReleaseDate)
}

// Result is the resolver's decision. Chosen is set only for Matched.
// Candidates holds the full input list for Ambiguous.
type Result struct {
	Outcome     Outcome
	Chosen      *Candidate
	ChosenIndex int
	Candidates  []Candidate
}

// Resolve picks the candidate matching referenceTitle and referenceYear.
//
// A single candidate is chosen outright. Otherwise exact title matches win,
// then release year narrows the pool, then the highest rating wins with ties
// going to the earliest candidate. A chosen candidate with a rating below
// MinConfidentRating is rejected and the whole list is reported as ambiguous.
func Resolve(candidates []Candidate, referenceTitle string, referenceYear *int) Result {
	if len(candidates) == 0 {
		return Result{Outcome: NoMatch, ChosenIndex: -1}
	}

	idx := choose(candidates, referenceTitle, referenceYear)
	if idx >= 0 && confident(candidates[idx]) {
		chosen := candidates[idx]
		return Result{Outcome: Matched, Chosen: &chosen, ChosenIndex: idx}
	}

	all := make([]Candidate, len(candidates))
	copy(all, candidates)
	return Result{Outcome: Ambiguous, ChosenIndex: -1, Candidates: all}
}

func choose(candidates []Candidate, referenceTitle string, referenceYear *int) int {
	if len(candidates) == 1 {
		return 0
	}

	var exact []int
	for i, c := range candidates {
		if SameTitle(c.Title, referenceTitle) {
			exact = append(exact, i)
		}
	}

	if len(exact) == 1 {
		return exact[0]
	}

	pool := exact
	if len(pool) == 0 {
		pool = make([]int, len(candidates))
		for i := range candidates {
			pool[i] = i
		}
	}

	byYear := filterYear(candidates, pool, referenceYear)
	switch len(byYear) {
	case 1:
		return byYear[0]
	case 0:
		return highestRated(candidates, pool)
	default:
		return highestRated(candidates, byYear)
	}
}

func filterYear(candidates []Candidate, pool []int, referenceYear *int) []int {
	if referenceYear == nil {
		return nil
	}

	var out []int
	for _, i := range pool {
		year, ok := candidates[i].Year()
		if ok && year == *referenceYear {
			out = append(out, i)
		}
	}
	return out
}

// highestRated returns the first index in pool with the greatest rating.
// A missing rating ranks as zero.
func highestRated(candidates []Candidate, pool []int) int {
	best := -1
	bestRating := 0.0
	for _, i := range pool {
		r := rating(candidates[i])
		if best == -1 || r > bestRating {
			best = i
			bestRating = r
		}
	}
	return best
}

func rating(c Candidate) float64 {
	if c.Rating == nil {
		return 0
	}
	return *c.Rating
}

func confident(c Candidate) bool {
	return c.Rating == nil || *c.Rating >= MinConfidentRating
}

// SameTitle compares two titles ignoring surrounding whitespace and case.
func SameTitle(a, b string) bool {
	fold := cases.Fold()
	return fold.String(strings.TrimSpace(a)) == fold.String(strings.TrimSpace(b))
}

// Normalize lower cases a display name for search and storage.
func Normalize(title string) string {
	return cases.Lower(language.Und).String(title)
}

// ReleaseYear extracts the year from a date such as 2006-01-02.
// Anything not starting with four digits has no year.
func ReleaseYear(date string) (int, bool) {
	date = strings.TrimSpace(date)
	if len(date) < 4 {
		return 0, false
	}

	year, err := strconv.Atoi(date[:4])
	if err != nil || year <= 0 {
		return 0, false
	}

	if len(date) > 4 && date[4] >= '0' && date[4] <= '9' {
		return 0, false
	}

	return year, true
}
