package gallery

import (
	"testing"

	"github.com/jask/photogrid/internal/photo"
)

func TestFind(t *testing.T) {
	s := New([]photo.Photo{
		{Src: "/photos/beach.jpg", Width: 1, Height: 1, Alt: "Sunset over the bay"},
		{Src: "/photos/forest-path.png", Width: 1, Height: 1},
		{Src: "https://picsum.photos/id/1019/400/300", Width: 1, Height: 1, Alt: "coastline"},
	}, false)

	tests := []struct {
		query string
		want  int
	}{
		{"sunset", 0},
		{"BEACH", 0},
		{"forest", 1},
		{"coastlne", 2},
		{"300", 2},
		{"   ", -1},
	}
	for _, tt := range tests {
		if got := s.Find(tt.query); got != tt.want {
			t.Errorf("Find(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}

func TestFindEmptyList(t *testing.T) {
	if got := New(nil, false).Find("x"); got != -1 {
		t.Fatalf("Find on empty = %d, want -1", got)
	}
}
