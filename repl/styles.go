package repl

import "github.com/charmbracelet/lipgloss"

var (
	colorError  = lipgloss.Color("#EF4444")
	colorAccent = lipgloss.Color("#F59E0B")
	colorMuted  = lipgloss.Color("#6B7280")
	colorOK     = lipgloss.Color("#10B981")
)

// Styles decides how REPL output is decorated. With plain set nothing is
// rendered through lipgloss, so output is byte-for-byte predictable.
type Styles struct {
	Error  lipgloss.Style
	Token  lipgloss.Style
	Output lipgloss.Style
	Muted  lipgloss.Style

	plain bool
}

func DefaultStyles() Styles {
	return Styles{
		Error: lipgloss.NewStyle().
			Foreground(colorError),
		Token: lipgloss.NewStyle().
			Foreground(colorAccent),
		Output: lipgloss.NewStyle().
			Foreground(colorOK),
		Muted: lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true),
	}
}

func PlainStyles() Styles {
	return Styles{plain: true}
}

func (s Styles) render(style lipgloss.Style, text string) string {
	if s.plain {
		return text
	}
	return style.Render(text)
}
