package main

import (
	"bytes"
	"testing"

	"github.com/dayanaadylkhanova/movie-picker/internal/entity"
)

func TestRender(t *testing.T) {
	t.Parallel()

	no := false
	cases := []struct {
		name  string
		reply entity.Reply
		want  string
	}{
		{
			name:  "selection",
			reply: entity.Reply{Left: 1, Total: 2, Selected: &entity.Movie{Title: "Alien", Year: 1979, Rating: 8.5, Picked: true}},
			want:  "Alien (1979) • Rating: 8.5/10\n1 movies left\n",
		},
		{
			name:  "exhausted",
			reply: entity.Reply{Left: 0, Total: 1, Picked: &no},
			want:  "all movies picked, reset to start over\n0 movies left\n",
		},
		{
			name:  "whole_rating_banner",
			reply: entity.Reply{Left: 0, Total: 1, Selected: &entity.Movie{Title: "The Godfather", Year: 1972, Rating: 9.0, Picked: true}},
			want:  "The Godfather (1972) • Rating: 9/10\n0 movies left\n",
		},
		{
			name: "list",
			reply: entity.Reply{Left: 1, Total: 2, Movies: []entity.Movie{
				{Title: "A", Year: 2000, Rating: 8, Picked: true},
				{Title: "B", Year: 2010, Rating: 7.5},
			}},
			want: "[x] A (2000) ⭐ 8.0\n[ ] B (2010) ⭐ 7.5\n1 movies left\n",
		},
		{
			name:  "error",
			reply: entity.Reply{Left: 2, Total: 2, Error: "unknown command"},
			want:  "error: unknown command\n2 movies left\n",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			render(&buf, tc.reply)
			if got := buf.String(); got != tc.want {
				t.Fatalf("render() = %q; want %q", got, tc.want)
			}
		})
	}
}
