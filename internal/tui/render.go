package tui

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/photogrid/internal/photo"
)

type cellRole int

const (
	roleNone cellRole = iota
	roleCursor
	roleDragging
	roleDropTarget
)

func (m Model) View() string {
	base := m.placeWithFooter(m.renderBody(), m.renderStatus(), m.renderFooter())
	switch {
	case m.jumping:
		return m.composeOverlay(base, jumpStyle.Render(m.jump.View()))
	case m.state.Selection().IsOpen():
		return m.composeOverlay(base, m.renderLightbox())
	}
	return base
}

func (m Model) renderBody() string {
	header := headerAppStyle.Render(appName) + "  " +
		headerInfoStyle.Render(fmt.Sprintf("%d photos", m.state.Len()))
	if m.state.Len() == 0 {
		return header + "\n\n" + cellMetaStyle.Render("No photos.")
	}
	return header + "\n\n" + m.renderGrid()
}

func (m Model) renderGrid() string {
	g := m.layout()
	n := m.state.Len()
	gap := strings.Repeat(" ", colGap)
	rows := make([]string, 0, g.visible)
	for r := g.top; r < min(g.rows, g.top+g.visible); r++ {
		cells := make([]string, 0, g.cols*2)
		for c := 0; c < g.cols; c++ {
			i := r*g.cols + c
			if i >= n {
				break
			}
			if c > 0 {
				cells = append(cells, gap)
			}
			p, _ := m.state.At(i)
			cells = append(cells, m.renderCell(p, i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// roleOf reports how cell i should be drawn in the current frame.
func (m Model) roleOf(i int) cellRole {
	if d := m.drag; d != nil && d.moved {
		switch {
		case i == d.active:
			return roleDragging
		case d.hasOver && i == d.over:
			return roleDropTarget
		}
	}
	if m.moving {
		switch {
		case i == m.moveFrom:
			return roleDragging
		case i == m.cursor:
			return roleDropTarget
		}
	}
	if i == m.cursor {
		return roleCursor
	}
	return roleNone
}

// renderCell draws one grid cell for photo p at index i.
func (m Model) renderCell(p photo.Photo, i int) string {
	w := m.cellWidth - 2
	h := m.cellHeight - 2
	role := m.roleOf(i)

	label := fmt.Sprintf("%d", i+1)
	switch role {
	case roleDragging:
		label += " moving"
	case roleDropTarget:
		label += " drop here"
	}
	lines := []string{
		cellIndexStyle.Render(truncate(label, w)),
		cellNameStyle.Render(truncate(title(p), w)),
		cellMetaStyle.Render(truncate(fmt.Sprintf("%d×%d", p.Width, p.Height), w)),
		cellAltStyle.Render(tail(p.Src, w)),
	}
	if len(lines) > h {
		lines = lines[:h]
	}
	return cellStyle.
		BorderForeground(cellBorder(role)).
		Width(w).
		Height(h).
		Render(strings.Join(lines, "\n"))
}

// renderLightbox draws the selected slide with a placeholder frame shaped
// like the photo.
func (m Model) renderLightbox() string {
	p, ok := m.state.Current()
	if !ok {
		return ""
	}
	idx := m.state.Selection().Index()
	slides := m.state.Slides()

	cw := 60
	if m.width > 0 {
		cw = max(16, min(cw, m.width-8))
	}
	fh := 3
	if a := p.Aspect(); a > 0 {
		// Terminal cells are roughly twice as tall as they are wide.
		fh = int(float64(cw)/a/2 + 0.5)
	}
	maxFrame := 20
	if m.height > 0 {
		maxFrame = m.height - 14
	}
	fh = max(3, min(fh, maxFrame))

	frame := lipgloss.Place(cw, fh, lipgloss.Center, lipgloss.Center,
		cellNameStyle.Render(truncate(title(p), cw-4)),
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(colorSurface1),
	)

	lines := []string{
		lightboxTitleStyle.Render(fmt.Sprintf("Photo %d of %d", idx+1, len(slides))),
		"",
		lightboxFrameStyle.Render(frame),
		"",
		lightboxSrcStyle.Render(truncate(slides[idx], cw)),
		cellMetaStyle.Render(fmt.Sprintf("%d × %d  %s", p.Width, p.Height, ratio(p.Width, p.Height))),
	}
	return lightboxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderStatus() string {
	text := m.status
	if text == "" {
		if g := m.layout(); g.rows > g.visible {
			text = scrollStyle.Render(fmt.Sprintf("rows %d-%d of %d", g.top+1, min(g.rows, g.top+g.visible), g.rows))
		}
	}
	style := statusBarStyle
	if m.statusErr {
		style = statusErrStyle
	}
	if m.width > 0 {
		style = style.Width(m.width).MaxHeight(1)
	}
	return style.Render(text)
}

func (m Model) renderFooter() string {
	bindings := m.footerBindings()
	var content string
	if m.help.ShowAll {
		content = m.help.FullHelpView(chunkBindings(bindings, 3))
	} else {
		content = m.help.ShortHelpView(bindings)
	}
	if m.width > 0 {
		return footerStyle.Width(m.width).Render(content)
	}
	return footerStyle.Render(content)
}

// footerBindings lists the scope's bindings followed by global ones the scope
// does not already show.
func (m Model) footerBindings() []key.Binding {
	scope := m.scope()
	out := m.keys.HelpBindings(scope)
	if scope == scopeJump {
		return out
	}
	seen := make(map[string]bool, len(out))
	for _, b := range out {
		seen[b.Help().Desc] = true
	}
	for _, b := range m.keys.HelpBindings(scopeGlobal) {
		if !seen[b.Help().Desc] {
			out = append(out, b)
		}
	}
	return out
}

func chunkBindings(bindings []key.Binding, size int) [][]key.Binding {
	var out [][]key.Binding
	for len(bindings) > size {
		out = append(out, bindings[:size])
		bindings = bindings[size:]
	}
	if len(bindings) > 0 {
		out = append(out, bindings)
	}
	return out
}

// placeWithFooter pins the status line and footer to the bottom of the
// screen.
func (m Model) placeWithFooter(body, statusLine, footer string) string {
	if m.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := max(1, m.height-chromeBottom)
	lines := splitLines(body)
	if len(lines) > contentHeight {
		lines = lines[:contentHeight]
	}
	for len(lines) < contentHeight {
		lines = append(lines, "")
	}
	// Full-width lines keep stale cells from a previous frame from showing.
	for i, line := range lines {
		lines[i] = padRight(line, m.width)
	}
	return strings.Join(lines, "\n") + "\n" + statusLine + "\n" + footer
}

func (m Model) composeOverlay(base, content string) string {
	if m.height == 0 || m.width == 0 {
		return base + "\n\n" + content
	}
	return centerOverlay(base, content, m.width, max(1, m.height-chromeBottom))
}

// title is the alt text, or the last path element of the source.
func title(p photo.Photo) string {
	if p.Alt != "" {
		return p.Alt
	}
	name := path.Base(strings.TrimRight(p.Src, "/"))
	if name == "." || name == "/" {
		return p.Src
	}
	return name
}

// tail keeps the last width cells of s, marking the cut with an ellipsis.
func tail(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return "…" + ansi.TruncateLeft(s, ansi.StringWidth(s)-width+1, "")
}

func ratio(w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	d := gcd(w, h)
	return fmt.Sprintf("%d:%d", w/d, h/d)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
