package styles

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")).Padding(0, 1)
	Subtitle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	Help       = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	Warning    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD93D"))
	Error      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444"))
	Success    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6BCB77"))
	ContentBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2).Width(70)
	HeaderBox  = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 1).Width(70)
	FooterBox  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(70)
	Normal     = lipgloss.NewStyle()
	Active     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4")).Bold(true)
)

var (
	TileClosed = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	TileEmpty  = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
	TileBomb   = lipgloss.NewStyle().Background(lipgloss.Color("#FF4444")).Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
)

// numberColors follows the classic palette: 1 blue, 2 green, 3 red and so on.
var numberColors = [9]lipgloss.Color{
	"",
	"#4DABF7",
	"#6BCB77",
	"#FF6B6B",
	"#9775FA",
	"#C92A2A",
	"#4ECDC4",
	"#FFFFFF",
	"#AAAAAA",
}

func TileNumber(n int) lipgloss.Style {
	if n < 1 || n >= len(numberColors) {
		return Normal
	}
	return lipgloss.NewStyle().Foreground(numberColors[n]).Bold(true)
}

func Center(s string, width, height int) string {
	vWidth := lipgloss.Width(s)
	vHeight := lipgloss.Height(s)

	if vWidth >= width {
		return s
	}

	horizontal := (width - vWidth) / 2
	if horizontal < 0 {
		horizontal = 0
	}

	if vHeight >= height {
		return lipgloss.NewStyle().Width(width).Render(s)
	}

	vertical := (height - vHeight) / 2
	if vertical < 0 {
		vertical = 0
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(vertical, 0).
		Render(lipgloss.NewStyle().PaddingLeft(horizontal).Render(s))
}
