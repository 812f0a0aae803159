// Package gallery owns the grid's state cells and the handlers that move
// them. Every handler is synchronous and returns the next state; the caller
// keeps whichever value it wants to render.
package gallery

import "github.com/jask/photogrid/internal/photo"

// State is the photo list plus the lightbox selection.
type State struct {
	photos    []photo.Photo
	selection photo.Selection
	wrap      bool
}

// New returns a state over photos with the lightbox closed. wrap controls
// whether lightbox navigation wraps around the ends.
func New(photos []photo.Photo, wrap bool) State {
	list := make([]photo.Photo, len(photos))
	copy(list, photos)
	return State{photos: list, selection: photo.Closed(), wrap: wrap}
}

// Photos returns the current order. The slice must not be modified.
func (s State) Photos() []photo.Photo { return s.photos }

func (s State) Len() int { return len(s.photos) }

// At returns the photo at i and whether i is valid.
func (s State) At(i int) (photo.Photo, bool) {
	if i < 0 || i >= len(s.photos) {
		return photo.Photo{}, false
	}
	return s.photos[i], true
}

func (s State) Selection() photo.Selection { return s.selection }

// Current returns the photo shown in the lightbox, if it is open.
func (s State) Current() (photo.Photo, bool) {
	if !s.selection.IsOpen() {
		return photo.Photo{}, false
	}
	return s.At(s.selection.Index())
}

// Slides projects the source locators the lightbox navigates through.
func (s State) Slides() []string { return photo.Sources(s.photos) }

// DragEnd applies a completed gesture. It reports whether the order changed.
func (s State) DragEnd(e photo.DragEnd) (State, bool) {
	if !e.Moves(len(s.photos)) {
		return s, false
	}
	s.photos = photo.Reorder(s.photos, e.Active, *e.Over)
	return s, true
}

// Click opens the lightbox on index i.
func (s State) Click(i int) State {
	s.selection = s.selection.Open(i)
	return s
}

// Close closes the lightbox.
func (s State) Close() State {
	s.selection = s.selection.Close()
	return s
}

func (s State) Next() State {
	s.selection = s.selection.Next(len(s.photos), s.wrap)
	return s
}

func (s State) Prev() State {
	s.selection = s.selection.Prev(len(s.photos), s.wrap)
	return s
}

// Replace swaps in a freshly loaded list and clamps the selection to it.
func (s State) Replace(photos []photo.Photo) State {
	list := make([]photo.Photo, len(photos))
	copy(list, photos)
	s.photos = list
	s.selection = s.selection.Clamp(len(list))
	return s
}
