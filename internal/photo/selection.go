package photo

// None is the selection sentinel for a closed lightbox.
const None = -1

// Selection is the lightbox's open index, or None.
type Selection struct {
	index int
}

// Closed returns a selection with nothing open. The zero Selection is open at
// index 0, so callers should start from Closed.
func Closed() Selection {
	return Selection{index: None}
}

// Open selects index i. Callers pass indices that are valid by construction.
func (s Selection) Open(i int) Selection {
	s.index = i
	return s
}

func (s Selection) Close() Selection {
	s.index = None
	return s
}

func (s Selection) IsOpen() bool {
	return s.index != None
}

func (s Selection) Index() int {
	return s.index
}

// Next advances an open selection through n slides. With wrap the last slide
// moves to the first; without it the selection stays on the last slide.
func (s Selection) Next(n int, wrap bool) Selection {
	if !s.IsOpen() || n <= 0 {
		return s
	}
	switch {
	case s.index+1 < n:
		s.index++
	case wrap:
		s.index = 0
	}
	return s
}

// Prev is the reverse of Next.
func (s Selection) Prev(n int, wrap bool) Selection {
	if !s.IsOpen() || n <= 0 {
		return s
	}
	switch {
	case s.index > 0:
		s.index--
	case wrap:
		s.index = n - 1
	}
	return s
}

// Clamp restores the selection invariant after the list length became n.
func (s Selection) Clamp(n int) Selection {
	if !s.IsOpen() {
		return s
	}
	switch {
	case n <= 0:
		s.index = None
	case s.index >= n:
		s.index = n - 1
	case s.index < 0:
		s.index = None
	}
	return s
}
