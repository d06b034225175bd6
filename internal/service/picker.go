package service

import (
	mrand "math/rand/v2"

	"github.com/dayanaadylkhanova/movie-picker/internal/entity"
)

// Picker holds one session's pick state: the movie list with picked flags
// and the last drawn movie. It is not safe for concurrent use; each session
// owns its own instance.
type Picker struct {
	movies   []entity.Movie
	selected *entity.Movie
	r        *mrand.Rand
}

func NewPicker(catalog []entity.Movie) *Picker {
	return NewPickerWith(catalog, nil)
}

// NewPickerWith uses r for draws; nil falls back to the global source.
func NewPickerWith(catalog []entity.Movie, r *mrand.Rand) *Picker {
	movies := make([]entity.Movie, len(catalog))
	copy(movies, catalog)
	for i := range movies {
		movies[i].Picked = false
	}
	return &Picker{movies: movies, r: r}
}

// PickRandom draws uniformly among unpicked movies and marks the draw as
// picked. It reports false and changes nothing when every movie is picked.
func (p *Picker) PickRandom() bool {
	eligible := make([]int, 0, len(p.movies))
	for i, m := range p.movies {
		if !m.Picked {
			eligible = append(eligible, i)
		}
	}
	if len(eligible) == 0 {
		return false
	}

	i := eligible[p.intN(len(eligible))]
	p.movies[i].Picked = true
	snap := p.movies[i]
	p.selected = &snap
	return true
}

// Reset clears every picked flag and the selection.
func (p *Picker) Reset() {
	for i := range p.movies {
		p.movies[i].Picked = false
	}
	p.selected = nil
}

func (p *Picker) All() []entity.Movie {
	out := make([]entity.Movie, len(p.movies))
	copy(out, p.movies)
	return out
}

func (p *Picker) EligibleCount() int {
	n := 0
	for _, m := range p.movies {
		if !m.Picked {
			n++
		}
	}
	return n
}

func (p *Picker) Len() int { return len(p.movies) }

func (p *Picker) Current() (entity.Movie, bool) {
	if p.selected == nil {
		return entity.Movie{}, false
	}
	return *p.selected, true
}

func (p *Picker) intN(n int) int {
	if p.r != nil {
		return p.r.IntN(n)
	}
	return mrand.IntN(n)
}
