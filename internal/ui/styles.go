// Package ui provides the terminal styling and table rendering for ontoscope.
package ui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	LightForeground = lipgloss.Color("#101F38")
	LightPrimary    = lipgloss.Color("#101F38")
	LightAccent     = lipgloss.Color("#8BC34A")
	LightMuted      = lipgloss.Color("#8a94a6")

	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#8BC34A")
	DarkAccent     = lipgloss.Color("#FFC107")
	DarkMuted      = lipgloss.Color("#5c6b85")
)

// ThemeName selects a Theme.
type ThemeName string

const (
	ThemePlain ThemeName = "plain"
	ThemeLight ThemeName = "light"
	ThemeDark  ThemeName = "dark"
	ThemeAuto  ThemeName = "auto"
)

// Theme holds the current color scheme. A plain theme uses no color at all.
type Theme struct {
	Name       ThemeName
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Plain      bool
}

// PlainTheme returns a theme without any color.
func PlainTheme() Theme {
	return Theme{Name: ThemePlain, Plain: true}
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Name:       ThemeLight,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Name:       ThemeDark,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
	}
}

// DetectTheme picks light or dark from COLORFGBG ("foreground;background"),
// defaulting to light.
func DetectTheme() Theme {
	parts := strings.Split(os.Getenv("COLORFGBG"), ";")
	if len(parts) == 2 {
		if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
			// 0-6 and 8 (dark grey) are dark backgrounds
			if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
				return DarkTheme()
			}
		}
	}
	return LightTheme()
}

// ParseTheme maps a theme name to a Theme.
func ParseTheme(name string) (Theme, error) {
	switch ThemeName(strings.ToLower(strings.TrimSpace(name))) {
	case ThemePlain, "":
		return PlainTheme(), nil
	case ThemeLight:
		return LightTheme(), nil
	case ThemeDark:
		return DarkTheme(), nil
	case ThemeAuto:
		return DetectTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q (valid: plain, light, dark, auto)", name)
	}
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	Title  lipgloss.Style
	Header lipgloss.Style
	Body   lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	if theme.Plain {
		return Styles{
			Theme:  theme,
			Title:  lipgloss.NewStyle(),
			Header: lipgloss.NewStyle(),
			Body:   lipgloss.NewStyle(),
			Muted:  lipgloss.NewStyle(),
			Accent: lipgloss.NewStyle(),
		}
	}

	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Header: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Accent: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),
	}
}

// DefaultStyles returns uncolored styles.
func DefaultStyles() Styles {
	return NewStyles(PlainTheme())
}
