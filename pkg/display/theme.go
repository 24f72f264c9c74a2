package display

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors and symbols for the CLI using lipgloss
type Theme struct {
	Bold   lipgloss.Style
	Cyan   lipgloss.Style
	Green  lipgloss.Style
	Yellow lipgloss.Style
	Dim    lipgloss.Style
	Red    lipgloss.Style

	Bullet  string
	BoxTree string
	BoxLast string
	BoxItem string

	IconLpar  string
	IconVG    string
	IconDisk  string
	IconTotal string
	IconHelp  string
}

func DefaultTheme() *Theme {
	t := PlainTheme()
	t.Bold = lipgloss.NewStyle().Bold(true)
	t.Cyan = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	t.Green = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	t.Yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	t.Dim = lipgloss.NewStyle().Faint(true)
	t.Red = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	t.IconLpar = "🖥️"
	t.IconVG = "🗄️"
	t.IconDisk = "💾"
	t.IconTotal = "Σ"
	t.IconHelp = "💡"
	return t
}

// PlainTheme renders text unstyled and without icons, for NO_COLOR, pipes
// and tests.
func PlainTheme() *Theme {
	return &Theme{
		Bold:   lipgloss.NewStyle(),
		Cyan:   lipgloss.NewStyle(),
		Green:  lipgloss.NewStyle(),
		Yellow: lipgloss.NewStyle(),
		Dim:    lipgloss.NewStyle(),
		Red:    lipgloss.NewStyle(),

		Bullet:  "•",
		BoxTree: "├──",
		BoxLast: "└──",
		BoxItem: "│  ",
	}
}

// NewTheme picks the styled or plain theme.
func NewTheme(color bool) *Theme {
	if color {
		return DefaultTheme()
	}
	return PlainTheme()
}

func (t *Theme) Styled(style lipgloss.Style, text string) string {
	return style.Render(text)
}

// Icon returns icon followed by a space, or nothing for an empty icon.
func (t *Theme) Icon(icon string) string {
	if icon == "" {
		return ""
	}
	return icon + " "
}
