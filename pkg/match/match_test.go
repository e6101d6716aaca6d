package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestResolve(t *testing.T) {
	t.Run("empty list is no match", func(t *testing.T) {
		res := Resolve(nil, "Foo", ptr(2020))
		assert.Equal(t, NoMatch, res.Outcome)
		assert.Nil(t, res.Chosen)
		assert.Empty(t, res.Candidates)

		res = Resolve([]Candidate{}, "Foo", nil)
		assert.Equal(t, NoMatch, res.Outcome)
	})

	t.Run("single candidate without rating", func(t *testing.T) {
		candidates := []Candidate{{ID: 1, Title: "Anything"}}
		res := Resolve(candidates, "Foo", nil)
		require.Equal(t, Matched, res.Outcome)
		assert.Equal(t, int64(1), res.Chosen.ID)
		assert.Equal(t, 0, res.ChosenIndex)
	})

	t.Run("single candidate at the gate", func(t *testing.T) {
		res := Resolve([]Candidate{{ID: 1, Title: "Foo", Rating: ptr(4.0)}}, "Foo", nil)
		assert.Equal(t, Matched, res.Outcome)
	})

	t.Run("single low rated candidate is ambiguous", func(t *testing.T) {
		candidates := []Candidate{{ID: 1, Title: "Foo", Rating: ptr(3.9)}}
		res := Resolve(candidates, "Foo", nil)
		require.Equal(t, Ambiguous, res.Outcome)
		assert.Nil(t, res.Chosen)
		assert.Equal(t, candidates, res.Candidates)
	})

	t.Run("year disambiguates exact title ties", func(t *testing.T) {
		candidates := []Candidate{
			{ID: 1, Title: "Foo", ReleaseDate: "2020-03-01", Rating: ptr(9.0)},
			{ID: 2, Title: "Foo", ReleaseDate: "2021-03-01", Rating: ptr(5.0)},
		}
		res := Resolve(candidates, "Foo", ptr(2020))
		require.Equal(t, Matched, res.Outcome)
		assert.Equal(t, int64(1), res.Chosen.ID)

		res = Resolve(candidates, "Foo", ptr(2021))
		require.Equal(t, Matched, res.Outcome)
		assert.Equal(t, int64(2), res.Chosen.ID)
	})

	t.Run("exact title beats higher rating", func(t *testing.T) {
		candidates := []Candidate{
			{ID: 1, Title: "Foo", Rating: ptr(7.0)},
			{ID: 2, Title: "Bar", Rating: ptr(9.0)},
		}
		res := Resolve(candidates, "Foo", nil)
		require.Equal(t, Matched, res.Outcome)
		assert.Equal(t, int64(1), res.Chosen.ID)
	})

	t.Run("exact title ignores case and whitespace", func(t *testing.T) {
		candidates := []Candidate{
			{ID: 1, Title: "Other", Rating: ptr(9.0)},
			{ID: 2, Title: "  the MATRIX ", Rating: ptr(6.0)},
		}
		res := Resolve(candidates, "The Matrix", nil)
		require.Equal(t, Matched, res.Outcome)
		assert.Equal(t, int64(2), res.Chosen.ID)
	})

	t.Run("highest rating fallback", func(t *testing.T) {
		candidates := []Candidate{
			{ID: 1, Title: "X", Rating: ptr(3.0)},
			{ID: 2, Title: "Y", Rating: ptr(8.0)},
		}
		res := Resolve(candidates, "Z", ptr(2020))
		require.Equal(t, Matched, res.Outcome)
		assert.Equal(t, int64(2), res.Chosen.ID)
		assert.Equal(t, 1, res.ChosenIndex)
	})

	t.Run("fallback choice below gate is ambiguous", func(t *testing.T) {
		candidates := []Candidate{
			{ID: 1, Title: "X", Rating: ptr(3.0)},
			{ID: 2, Title: "Y", Rating: ptr(2.0)},
		}
		res := Resolve(candidates, "Z", nil)
		require.Equal(t, Ambiguous, res.Outcome)
		assert.Equal(t, candidates, res.Candidates)
	})

	t.Run("year narrows non exact candidates", func(t *testing.T) {
		candidates := []Candidate{
			{ID: 1, Title: "X", ReleaseDate: "1999-01-01", Rating: ptr(9.0)},
			{ID: 2, Title: "Y", ReleaseDate: "2020-06-01", Rating: ptr(5.0)},
		}
		res := Resolve(candidates, "Z", ptr(2020))
		require.Equal(t, Matched, res.Outcome)
		assert.Equal(t, int64(2), res.Chosen.ID)
	})

	t.Run("several year matches pick highest rating", func(t *testing.T) {
		candidates := []Candidate{
			{ID: 1, Title: "Foo", ReleaseDate: "2020-01-01", Rating: ptr(5.0)},
			{ID: 2, Title: "Foo", ReleaseDate: "2020-05-01", Rating: ptr(8.0)},
			{ID: 3, Title: "Foo", ReleaseDate: "2019-01-01", Rating: ptr(9.5)},
		}
		res := Resolve(candidates, "foo", ptr(2020))
		require.Equal(t, Matched, res.Outcome)
		assert.Equal(t, int64(2), res.Chosen.ID)
	})

	t.Run("exact matches without year match pick highest rated exact", func(t *testing.T) {
		candidates := []Candidate{
			{ID: 1, Title: "Foo", ReleaseDate: "2001-01-01", Rating: ptr(6.0)},
			{ID: 2, Title: "Bar", ReleaseDate: "2020-01-01", Rating: ptr(9.9)},
			{ID: 3, Title: "Foo", ReleaseDate: "2002-01-01", Rating: ptr(7.0)},
		}
		res := Resolve(candidates, "Foo", ptr(2020))
		require.Equal(t, Matched, res.Outcome)
		assert.Equal(t, int64(3), res.Chosen.ID)
	})

	t.Run("ties go to the first candidate", func(t *testing.T) {
		candidates := []Candidate{
			{ID: 1, Title: "A", Rating: ptr(6.0)},
			{ID: 2, Title: "B", Rating: ptr(6.0)},
		}
		res := Resolve(candidates, "Z", nil)
		require.Equal(t, Matched, res.Outcome)
		assert.Equal(t, int64(1), res.Chosen.ID)
	})

	t.Run("missing rating ranks as zero but passes the gate", func(t *testing.T) {
		candidates := []Candidate{
			{ID: 1, Title: "A"},
			{ID: 2, Title: "B"},
		}
		res := Resolve(candidates, "Z", nil)
		require.Equal(t, Matched, res.Outcome)
		assert.Equal(t, int64(1), res.Chosen.ID)

		candidates = []Candidate{
			{ID: 1, Title: "A"},
			{ID: 2, Title: "B", Rating: ptr(0.5)},
		}
		res = Resolve(candidates, "Z", nil)
		require.Equal(t, Ambiguous, res.Outcome)
	})

	t.Run("unparseable release dates are skipped by year filtering", func(t *testing.T) {
		candidates := []Candidate{
			{ID: 1, Title: "Foo", ReleaseDate: "", Rating: ptr(8.0)},
			{ID: 2, Title: "Foo", ReleaseDate: "soon", Rating: ptr(7.0)},
			{ID: 3, Title: "Foo", ReleaseDate: "2020-01-01", Rating: ptr(5.0)},
		}
		res := Resolve(candidates, "Foo", ptr(2020))
		require.Equal(t, Matched, res.Outcome)
		assert.Equal(t, int64(3), res.Chosen.ID)
	})

	t.Run("ambiguous result does not alias the input", func(t *testing.T) {
		candidates := []Candidate{{ID: 1, Title: "Foo", Rating: ptr(1.0)}}
		res := Resolve(candidates, "Foo", nil)
		candidates[0].Title = "changed"
		assert.Equal(t, "Foo", res.Candidates[0].Title)
	})
}

func TestReleaseYear(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{in: "2020-01-02", want: 2020, ok: true},
		{in: "1999", want: 1999, ok: true},
		{in: " 2001-12-31 ", want: 2001, ok: true},
		{in: "", ok: false},
		{in: "20", ok: false},
		{in: "abcd-01-01", ok: false},
		{in: "20201-01-01", ok: false},
		{in: "0000-01-01", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ReleaseYear(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "the matrix", Normalize("The Matrix"))
	assert.Equal(t, "amélie", Normalize("AMÉLIE"))
}

func TestSameTitle(t *testing.T) {
	assert.True(t, SameTitle(" Foo", "foo "))
	assert.True(t, SameTitle("STRASSE", "strasse"))
	assert.False(t, SameTitle("Foo", "Foo 2"))
}
