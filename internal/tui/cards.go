package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/stefanclaw/cardkit/internal/catalog"
	"github.com/stefanclaw/cardkit/internal/search"
)

// renderCard draws one card as a bordered box width cells wide.
func renderCard(c catalog.Card, width int, md *glamour.TermRenderer) string {
	image := systemMsgStyle.Render("no image")
	if c.HasImage() {
		image = cardImageStyle.Render(c.Image)
	}

	body := strings.Join([]string{
		cardTitleStyle.Render(c.Title),
		image,
		renderMarkdown(md, c.Description),
	}, "\n")

	// Border takes one cell on each side.
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	return cardStyle.Width(inner).Render(body)
}

// renderCardList draws the cards of v, or a notice when v has no matches.
// A view that has not been computed yet renders as nothing.
func renderCardList(v search.View, width int, md *glamour.TermRenderer) string {
	if !v.Computed {
		return ""
	}
	if v.Empty() {
		return systemMsgStyle.Render(fmt.Sprintf("No cards match %q.", v.Term))
	}
	boxes := make([]string, 0, len(v.Cards))
	for _, c := range v.Cards {
		boxes = append(boxes, renderCard(c, width, md))
	}
	return strings.Join(boxes, "\n")
}

func renderMarkdown(md *glamour.TermRenderer, content string) string {
	if md == nil {
		return content
	}
	rendered, err := md.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSpace(rendered)
}

// newMarkdownRenderer builds a glamour renderer for theme, wrapping at width.
func newMarkdownRenderer(theme string, width int) *glamour.TermRenderer {
	if width < 10 {
		width = 10
	}
	style := glamour.WithAutoStyle()
	if theme != "" && theme != "auto" {
		style = glamour.WithStandardStyle(theme)
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return nil
	}
	return r
}
