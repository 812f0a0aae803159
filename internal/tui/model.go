// Package tui is the terminal front end: a grid of photo cells that can be
// reordered by mouse drag or keyboard, and a lightbox overlay for viewing one
// photo at a time.
package tui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/photogrid/internal/config"
	"github.com/jask/photogrid/internal/gallery"
	"github.com/jask/photogrid/internal/photo"
)

const appName = "photogrid"

// Options configures a Model.
type Options struct {
	Photos []photo.Photo
	Grid   config.GridConfig
	Wrap   bool
	Keys   *KeyRegistry
	Log    zerolog.Logger
}

// drag tracks a mouse gesture between press and release.
type drag struct {
	active  int
	over    int
	hasOver bool
	moved   bool
}

type Model struct {
	state gallery.State
	keys  *KeyRegistry
	help  help.Model
	jump  textinput.Model
	log   zerolog.Logger

	cols       int
	cellWidth  int
	cellHeight int

	width  int
	height int
	top    int
	cursor int

	drag *drag

	// Keyboard move: moveFrom is the cell picked up with space.
	moving   bool
	moveFrom int

	jumping bool

	status    string
	statusErr bool
}

func New(opts Options) Model {
	keys := opts.Keys
	if keys == nil {
		keys = NewKeyRegistry()
	}
	d := config.Defaults().Grid
	cellWidth, cellHeight := opts.Grid.CellWidth, opts.Grid.CellHeight
	if cellWidth <= 0 {
		cellWidth = d.CellWidth
	}
	if cellHeight <= 0 {
		cellHeight = d.CellHeight
	}

	h := help.New()
	h.Styles.ShortKey = helpKeyStyle
	h.Styles.ShortDesc = helpDescStyle
	h.Styles.ShortSeparator = helpSepStyle
	h.Styles.FullKey = helpKeyStyle
	h.Styles.FullDesc = helpDescStyle
	h.Styles.FullSeparator = helpSepStyle

	ti := textinput.New()
	ti.Prompt = "jump: "
	ti.Placeholder = "name or description"
	ti.CharLimit = 64
	ti.Cursor.SetMode(cursor.CursorStatic)

	return Model{
		state:      gallery.New(opts.Photos, opts.Wrap),
		keys:       keys,
		help:       h,
		jump:       ti,
		log:        opts.Log,
		cols:       opts.Grid.Columns,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		moveFrom:   -1,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// State returns the current gallery state.
func (m Model) State() gallery.State { return m.state }

// Cursor returns the focused cell.
func (m Model) Cursor() int { return m.cursor }

func (m Model) layout() grid {
	return layoutGrid(m.state.Len(), m.width, m.height, m.cols, m.cellWidth, m.cellHeight, m.top)
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

// scope returns the key scope for the current mode.
func (m Model) scope() string {
	switch {
	case m.jumping:
		return scopeJump
	case m.state.Selection().IsOpen():
		return scopeLightbox
	case m.moving:
		return scopeMoving
	default:
		return scopeGrid
	}
}
