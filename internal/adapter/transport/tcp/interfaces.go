package tcp

import "github.com/dayanaadylkhanova/movie-picker/internal/entity"

//go:generate mockgen -source=interfaces.go -destination=./server_mock.go -package=tcp

type Picker interface {
	PickRandom() bool
	Reset()
	All() []entity.Movie
	EligibleCount() int
	Len() int
	Current() (entity.Movie, bool)
}
