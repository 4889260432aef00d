// Package theme holds the dashboard color palettes. Themes are values:
// switching replaces the current theme, it never edits a palette.
package theme

import (
	"strings"

	"weatherdash.app/pkg/errors"
)

const (
	NameDark  = "dark"
	NameLight = "light"
)

// Palette is the set of colors a front end paints with
type Palette struct {
	Background string `json:"bg"`
	Card       string `json:"card"`
	Muted      string `json:"muted"`
	Primary    string `json:"primary"`
	Accent     string `json:"accent"`
	Text       string `json:"text"`
}

type Theme struct {
	Name    string  `json:"name"`
	Palette Palette `json:"palette"`
}

var (
	Dark = Theme{
		Name: NameDark,
		Palette: Palette{
			Background: "#151521",
			Card:       "#1F1F2B",
			Muted:      "#9aa0b4",
			Primary:    "#4CAF50",
			Accent:     "#2196F3",
			Text:       "#E6EEF3",
		},
	}

	Light = Theme{
		Name: NameLight,
		Palette: Palette{
			Background: "#F5F7FA",
			Card:       "#FFFFFF",
			Muted:      "#6C757D",
			Primary:    "#4CAF50",
			Accent:     "#2196F3",
			Text:       "#2B2D42",
		},
	}
)

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t.Name == NameLight {
		return Dark
	}
	return Light
}

func (t Theme) IsDark() bool {
	return t.Name != NameLight
}

// ByName resolves "dark" or "light", ignoring case and surrounding space
func ByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameDark:
		return Dark, nil
	case NameLight:
		return Light, nil
	default:
		return Theme{}, errors.NewValidationError("unknown theme: " + name)
	}
}
