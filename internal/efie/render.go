package efie

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders markdown for display in a terminal using the named
// glamour style, wrapped at width columns.
func RenderMarkdown(markdown, style string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return "", err
	}

	return strings.TrimRight(rendered, "\n") + "\n", nil
}
