package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Terminal builds the glamour renderer for the given theme. Theme "none"
// returns nil, meaning callers should print raw markdown (piping, --no-color).
func Terminal(theme string, wrap int) (*glamour.TermRenderer, error) {
	if wrap <= 0 {
		wrap = 100
	}
	switch theme {
	case "none":
		return nil, nil
	case "", "auto":
		return glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
	case "dark", "light", "notty", "dracula":
		return glamour.NewTermRenderer(
			glamour.WithStylePath(theme),
			glamour.WithWordWrap(wrap),
		)
	default:
		return nil, fmt.Errorf("unknown theme %q", theme)
	}
}
