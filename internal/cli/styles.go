package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/termtick/termtick/internal/theme"
)

// Color palette
var (
	primaryColor = lipgloss.Color("#8FBCBB") // Nord frost teal, the default theme's face
	accentColor  = lipgloss.Color("#88C0D0")
	mutedColor   = lipgloss.Color("#888888")
	textColor    = lipgloss.Color("#FFFFFF")
)

// Styles
var (
	// Title style - bold teal
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// Subtitle style - muted gray
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BF616A"))

	// Key-value pair styles
	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	themeNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			Width(18)
)

// PrintVersion prints version information
func PrintVersion(version string) {
	fmt.Println(TitleStyle.Render("Termtick ⏱"))
	fmt.Printf("%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
	fmt.Println()
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintThemes prints the shipped palettes, one swatch block per color in
// hand order (hour, minute, second, face), so a user can pick a theme
// without reading the source.
func PrintThemes(themes []theme.Theme) {
	fmt.Println(TitleStyle.Render("Available themes"))
	for _, th := range themes {
		var b strings.Builder
		b.WriteString("  ")
		b.WriteString(themeNameStyle.Render(th.Name))
		for _, c := range []string{th.Hour.Hex(), th.Minute.Hex(), th.Second.Hex(), th.Face.Hex()} {
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c))
			b.WriteString(swatch.Render("██"))
			b.WriteString(" ")
		}
		b.WriteString(KeyStyle.Render("hour minute second face"))
		fmt.Println(b.String())
	}
	fmt.Println()
}
