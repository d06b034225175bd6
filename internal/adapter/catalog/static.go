package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/dayanaadylkhanova/movie-picker/internal/entity"
)

//go:embed movies.json
var defaultMovies []byte

// ErrInvalidCatalog is wrapped by every validation failure.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Static is an immutable, ordered movie list.
type Static struct {
	list []entity.Movie
}

// NewStatic returns the catalog shipped with the binary.
func NewStatic() (*Static, error) {
	list, err := decode(defaultMovies)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return NewStaticWith(list)
}

// NewStaticWith validates and copies list; used by tests and file loading.
func NewStaticWith(list []entity.Movie) (*Static, error) {
	if err := Validate(list); err != nil {
		return nil, err
	}
	return &Static{list: reset(list)}, nil
}

func LoadFile(path string) (*Static, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	list, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return NewStaticWith(list)
}

// Movies returns a copy of the catalog with every Picked flag cleared.
func (s *Static) Movies() []entity.Movie {
	return reset(s.list)
}

// Validate checks that titles are present and unique and ratings are on the 0-10 scale.
func Validate(list []entity.Movie) error {
	seen := make(map[string]struct{}, len(list))
	for i, m := range list {
		if m.Title == "" {
			return fmt.Errorf("%w: movie #%d has empty title", ErrInvalidCatalog, i)
		}
		if _, dup := seen[m.Title]; dup {
			return fmt.Errorf("%w: duplicate title %q", ErrInvalidCatalog, m.Title)
		}
		seen[m.Title] = struct{}{}
		if math.IsNaN(m.Rating) || m.Rating < 0 || m.Rating > 10 {
			return fmt.Errorf("%w: %q rating %.1f out of range", ErrInvalidCatalog, m.Title, m.Rating)
		}
	}
	return nil
}

func decode(raw []byte) ([]entity.Movie, error) {
	var list []entity.Movie
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return list, nil
}

func reset(list []entity.Movie) []entity.Movie {
	out := make([]entity.Movie, len(list))
	copy(out, list)
	for i := range out {
		out[i].Picked = false
	}
	return out
}
