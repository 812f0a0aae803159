// Package photo holds the two pieces of grid state: the ordered photo list and
// the lightbox selection.
package photo

// Photo is one grid entry. Identity is positional; two photos with the same
// source are still distinct slots.
type Photo struct {
	Src    string `toml:"src" yaml:"src"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Alt    string `toml:"alt" yaml:"alt"`
}

// Aspect returns width over height, or 0 when either dimension is missing.
func (p Photo) Aspect() float64 {
	if p.Width <= 0 || p.Height <= 0 {
		return 0
	}
	return float64(p.Width) / float64(p.Height)
}

// DragEnd is a completed drag gesture. Over is nil when the gesture was
// dropped outside every slot.
type DragEnd struct {
	Active int
	Over   *int
}

// Target returns a DragEnd over index i.
func Target(active, over int) DragEnd {
	return DragEnd{Active: active, Over: &over}
}

// Moves reports whether the gesture should reorder a list of length n.
func (e DragEnd) Moves(n int) bool {
	if e.Over == nil {
		return false
	}
	return e.Active != *e.Over && inRange(e.Active, n) && inRange(*e.Over, n)
}

// Reorder returns a copy of list with the element at from relocated to to.
// The other elements keep their relative order. When from equals to or either
// index is out of range the copy is returned unchanged. list is never mutated.
func Reorder(list []Photo, from, to int) []Photo {
	out := make([]Photo, len(list))
	copy(out, list)
	if from == to || !inRange(from, len(list)) || !inRange(to, len(list)) {
		return out
	}
	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out
}

// Apply reorders list according to a completed gesture.
func Apply(list []Photo, e DragEnd) []Photo {
	if !e.Moves(len(list)) {
		out := make([]Photo, len(list))
		copy(out, list)
		return out
	}
	return Reorder(list, e.Active, *e.Over)
}

// Sources projects each photo's source locator, in order.
func Sources(list []Photo) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.Src
	}
	return out
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}
