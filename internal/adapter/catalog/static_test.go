package catalog

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dayanaadylkhanova/movie-picker/internal/entity"
)

func TestNewStatic_EmbeddedCatalogIsValid(t *testing.T) {
	t.Parallel()

	s, err := NewStatic()
	require.NoError(t, err)

	movies := s.Movies()
	require.NotEmpty(t, movies)
	require.NoError(t, Validate(movies))
	require.Equal(t, "The Shawshank Redemption", movies[0].Title)
	for _, m := range movies {
		require.False(t, m.Picked, "%q starts picked", m.Title)
	}
}

func TestMovies_ReturnsCopyWithFlagsCleared(t *testing.T) {
	t.Parallel()

	in := []entity.Movie{
		{Title: "A", Year: 2000, Rating: 8.0, Picked: true},
		{Title: "B", Year: 2010, Rating: 7.5},
	}
	s, err := NewStaticWith(in)
	require.NoError(t, err)

	got := s.Movies()
	require.Equal(t, []entity.Movie{
		{Title: "A", Year: 2000, Rating: 8.0},
		{Title: "B", Year: 2010, Rating: 7.5},
	}, got)

	// callers can't mutate the catalog through the returned slice or the input
	got[0].Title = "changed"
	in[1].Title = "changed"
	again := s.Movies()
	require.Equal(t, "A", again[0].Title)
	require.Equal(t, "B", again[1].Title)
}

func TestValidate_Table(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		list    []entity.Movie
		wantErr bool
	}{
		{"empty_catalog", nil, false},
		{"ok", []entity.Movie{{Title: "A", Rating: 0}, {Title: "B", Rating: 10}}, false},
		{"duplicate_title", []entity.Movie{{Title: "A", Rating: 8}, {Title: "A", Rating: 7}}, true},
		{"empty_title", []entity.Movie{{Title: "", Rating: 8}}, true},
		{"rating_negative", []entity.Movie{{Title: "A", Rating: -0.1}}, true},
		{"rating_too_high", []entity.Movie{{Title: "A", Rating: 10.1}}, true},
		{"rating_nan", []entity.Movie{{Title: "A", Rating: math.NaN()}}, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.list)
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidCatalog), "err = %v", err)
		})
	}
}

func TestNewStaticWith_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	_, err := NewStaticWith([]entity.Movie{{Title: "A", Rating: 1}, {Title: "A", Rating: 2}})
	require.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`[{"title":"A","year":2000,"rating":8.0},{"title":"B","year":2010,"rating":7.5}]`), 0o600))
	s, err := LoadFile(good)
	require.NoError(t, err)
	require.Len(t, s.Movies(), 2)
	require.Equal(t, 2010, s.Movies()[1].Year)

	dup := filepath.Join(dir, "dup.json")
	require.NoError(t, os.WriteFile(dup, []byte(`[{"title":"A","year":1,"rating":1},{"title":"A","year":2,"rating":2}]`), 0o600))
	_, err = LoadFile(dup)
	require.ErrorIs(t, err, ErrInvalidCatalog)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{not json`), 0o600))
	_, err = LoadFile(broken)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidCatalog)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
