package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/photogrid/internal/catalog"
	"github.com/jask/photogrid/internal/photo"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = max(0, msg.Width-footerStyle.GetHorizontalFrameSize())
		m.jump.Width = max(10, min(40, msg.Width-20))
		m.ensureCursorVisible()
		return m, nil
	case catalog.Reload:
		return m.handleReload(msg), nil
	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleReload(msg catalog.Reload) Model {
	if msg.Err != nil {
		m.setError(fmt.Sprintf("Reload failed: %v", msg.Err))
		return m
	}
	m.state = m.state.Replace(msg.Photos)
	m.drag = nil
	m.moving = false
	m.moveFrom = -1
	m.cursor = max(0, min(m.cursor, m.state.Len()-1))
	m.ensureCursorVisible()
	m.setStatus(fmt.Sprintf("Reloaded %d photos.", m.state.Len()))
	return m
}

// ---------------------------------------------------------------------------
// Mouse: press on a cell starts a drag, release finishes it. A release on the
// pressed cell without leaving it is a click.
// ---------------------------------------------------------------------------

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if m.jumping || m.state.Selection().IsOpen() {
		return m
	}
	g := m.layout()
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.top = max(0, m.top-1)
		return m
	case msg.Button == tea.MouseButtonWheelDown:
		m.top = min(m.top+1, max(0, g.rows-g.visible))
		return m
	}

	idx, ok := g.cellAt(msg.X, msg.Y, m.state.Len())
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !ok || m.moving {
			return m
		}
		m.drag = &drag{active: idx, over: idx, hasOver: true}
		m.cursor = idx
	case tea.MouseActionMotion:
		if m.drag == nil {
			return m
		}
		m.drag.over, m.drag.hasOver = idx, ok
		if !ok || idx != m.drag.active {
			m.drag.moved = true
		}
	case tea.MouseActionRelease:
		if m.drag == nil {
			return m
		}
		d := *m.drag
		m.drag = nil
		if !d.moved && ok && idx == d.active {
			return m.open(idx)
		}
		ev := photo.DragEnd{Active: d.active}
		if ok {
			ev.Over = &idx
		}
		return m.finishDrag(ev)
	}
	return m
}

// finishDrag hands a completed gesture to the gallery.
func (m Model) finishDrag(ev photo.DragEnd) Model {
	next, changed := m.state.DragEnd(ev)
	if !changed {
		m.log.Debug().Int("active", ev.Active).Bool("dropped_outside", ev.Over == nil).Msg("drag ended without move")
		if ev.Over == nil {
			m.setStatus("Dropped outside the grid; order unchanged.")
		}
		return m
	}
	m.state = next
	m.cursor = *ev.Over
	m.ensureCursorVisible()
	m.log.Info().Int("from", ev.Active).Int("to", *ev.Over).Msg("photo moved")
	m.setStatus(fmt.Sprintf("Moved photo %d to position %d.", ev.Active+1, *ev.Over+1))
	return m
}

func (m Model) open(i int) Model {
	if _, ok := m.state.At(i); !ok {
		return m
	}
	m.cursor = i
	m.state = m.state.Click(i)
	m.log.Debug().Int("index", i).Msg("lightbox opened")
	return m
}

// ---------------------------------------------------------------------------
// Keys
// ---------------------------------------------------------------------------

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := m.scope()
	b := m.keys.Lookup(msg.String(), scope)
	if scope == scopeJump {
		return m.handleJumpKey(msg, b)
	}
	if b == nil {
		return m, nil
	}
	if b.Action == actionQuit {
		return m, tea.Quit
	}
	if b.Action == actionHelp {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch scope {
	case scopeLightbox:
		return m.handleLightboxKey(b.Action), nil
	case scopeMoving:
		return m.handleMovingKey(b.Action), nil
	default:
		return m.handleGridKey(b.Action)
	}
}

func (m Model) handleGridKey(a Action) (tea.Model, tea.Cmd) {
	if m.state.Len() == 0 {
		return m, nil
	}
	switch a {
	case actionUp, actionDown, actionLeft, actionRight:
		m.moveCursor(a)
	case actionFirst:
		m.cursor = 0
		m.ensureCursorVisible()
	case actionLast:
		m.cursor = m.state.Len() - 1
		m.ensureCursorVisible()
	case actionOpen:
		return m.open(m.cursor), nil
	case actionPick:
		m.moving = true
		m.moveFrom = m.cursor
		m.setStatus(fmt.Sprintf("Moving photo %d: arrows choose a slot, space drops.", m.cursor+1))
	case actionJump:
		m.jumping = true
		m.jump.SetValue("")
		cmd := m.jump.Focus()
		return m, cmd
	}
	return m, nil
}

func (m Model) handleMovingKey(a Action) Model {
	switch a {
	case actionUp, actionDown, actionLeft, actionRight:
		m.moveCursor(a)
	case actionDrop:
		from := m.moveFrom
		m.moving = false
		m.moveFrom = -1
		if from == m.cursor {
			m.setStatus("")
			return m
		}
		return m.finishDrag(photo.Target(from, m.cursor))
	case actionCancel:
		from := m.moveFrom
		m.moving = false
		m.moveFrom = -1
		m = m.finishDrag(photo.DragEnd{Active: from})
		m.cursor = from
		m.ensureCursorVisible()
		m.setStatus("Move cancelled.")
	}
	return m
}

func (m Model) handleLightboxKey(a Action) Model {
	switch a {
	case actionNext:
		m.state = m.state.Next()
	case actionPrev:
		m.state = m.state.Prev()
	case actionClose:
		m.cursor = m.state.Selection().Index()
		m.state = m.state.Close()
		m.ensureCursorVisible()
		m.log.Debug().Int("index", m.cursor).Msg("lightbox closed")
	}
	return m
}

func (m Model) handleJumpKey(msg tea.KeyMsg, b *Binding) (tea.Model, tea.Cmd) {
	if b != nil {
		switch b.Action {
		case actionCancel:
			m.jumping = false
			m.jump.Blur()
			return m, nil
		case actionSelect:
			m.jumping = false
			m.jump.Blur()
			q := m.jump.Value()
			if i := m.state.Find(q); i >= 0 {
				m.cursor = i
				m.ensureCursorVisible()
				m.setStatus(fmt.Sprintf("Jumped to photo %d.", i+1))
			} else {
				m.setError(fmt.Sprintf("No photo matches %q.", q))
			}
			return m, nil
		case actionQuit:
			if msg.Type == tea.KeyCtrlC {
				return m, tea.Quit
			}
		}
	}
	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

func (m *Model) moveCursor(a Action) {
	g := m.layout()
	n := m.state.Len()
	switch a {
	case actionUp:
		m.cursor = g.move(m.cursor, -1, 0, n)
	case actionDown:
		m.cursor = g.move(m.cursor, 1, 0, n)
	case actionLeft:
		m.cursor = g.move(m.cursor, 0, -1, n)
	case actionRight:
		m.cursor = g.move(m.cursor, 0, 1, n)
	}
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	if m.state.Len() == 0 {
		m.cursor = 0
		m.top = 0
		return
	}
	g := m.layout()
	m.top = g.scrollTo(m.cursor)
	m.top = m.layout().top
}
