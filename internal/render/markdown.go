// Package render turns markdown into terminal output.
package render

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

const fallbackWidth = 100

// Renderers are expensive to build, so one is kept per wrap width.
var (
	mu      sync.Mutex
	byWidth = map[int]*glamour.TermRenderer{}
)

// Markdown renders text as terminal markdown when enabled, falling back to
// the plain trimmed text if rendering is disabled or fails.
func Markdown(text string, width int, enabled bool) string {
	plain := strings.TrimSpace(text)
	if plain == "" || !enabled {
		return plain
	}
	out, err := renderWrapped(plain, width)
	if err != nil {
		return plain
	}
	return out
}

func renderWrapped(text string, width int) (string, error) {
	if width <= 0 {
		width = fallbackWidth
	}

	mu.Lock()
	renderer, ok := byWidth[width]
	if !ok {
		var err error
		renderer, err = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			mu.Unlock()
			return "", err
		}
		byWidth[width] = renderer
	}
	mu.Unlock()

	return renderer.Render(text)
}
