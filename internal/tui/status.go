package tui

import (
	"fmt"

	"github.com/stefanclaw/cardkit/internal/search"
)

// StatusBar renders the top status bar.
func StatusBar(page string, v search.View, total, width int) string {
	text := fmt.Sprintf("  cardkit - %s", page)
	if v.Computed {
		text += fmt.Sprintf(" · %d/%d cards", v.Len(), total)
	}
	return statusBarStyle.Width(width).Render(text + "  ")
}
