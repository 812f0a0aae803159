package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorDrag    = colorPeach
	colorDrop    = colorYellow
	colorSuccess = colorGreen
	colorError   = colorRed
	colorInfo    = colorTeal
)

var (
	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	headerInfoStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	statusErrStyle = statusBarStyle.Foreground(colorError)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	helpSepStyle  = lipgloss.NewStyle().Foreground(colorOverlay0)

	// Grid cells. Border colour carries the cell's role.
	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1)

	cellIndexStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	cellNameStyle  = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	cellMetaStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)
	cellAltStyle   = lipgloss.NewStyle().Foreground(colorOverlay1).Italic(true)

	lightboxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	lightboxTitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	lightboxFrameStyle = lipgloss.NewStyle().Foreground(colorSurface1)
	lightboxSrcStyle   = lipgloss.NewStyle().Foreground(colorInfo)

	jumpStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFocus).
			Padding(0, 1)

	scrollStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
)

// cellBorder returns the border colour for a cell in the given role.
func cellBorder(r cellRole) lipgloss.Color {
	switch r {
	case roleDragging:
		return colorDrag
	case roleDropTarget:
		return colorDrop
	case roleCursor:
		return colorFocus
	default:
		return colorSurface1
	}
}
