package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// CLIFormatter provides CLI-specific formatting. Styling only wraps the text;
// with color disabled every method prints its text unchanged.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) styled(style lipgloss.Style, text string) {
	if c.IsColorEnabled() {
		c.Println(style.Render(text))
	} else {
		c.Println(text)
	}
}

// Line prints unstyled text. Prompts and reminders use it.
func (c *CLIFormatter) Line(text string) {
	c.Println(text)
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.styled(styleTitle, text)
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.styled(styleSuccess, text)
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.styled(styleError, text)
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.styled(styleMuted, text)
}
