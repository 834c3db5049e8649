// Package preview shows a pixel buffer on a colour terminal.
//
// Every text cell covers two vertically adjacent pixels: the upper half
// block takes the colour of the top pixel as foreground and the bottom
// pixel as background. Transparent pixels are left blank.
package preview

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	render "github.com/cfpwastaken/wplace-hallofshame"
)

const (
	upperHalf = '▀'
	lowerHalf = '▄'
)

// cellKey identifies the styling of one text cell. Consecutive cells with
// the same key are rendered together.
type cellKey struct {
	ch     rune
	fg, bg string // "" means unset
}

// Renderer converts buffers to styled strings for one output.
type Renderer struct {
	r *lipgloss.Renderer
}

// NewRenderer returns a Renderer for the terminal connected to w.
// The colour profile is detected from w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{r: lipgloss.NewRenderer(w)}
}

// Render converts buf using a renderer for standard output.
func Render(buf *render.Buffer) string {
	return NewRenderer(os.Stdout).Render(buf)
}

// Render converts buf into lines of half-block characters, one line per
// two pixel rows.
func (p *Renderer) Render(buf *render.Buffer) string {
	lines := make([]string, 0, (buf.Height+1)/2)
	for y := 0; y < buf.Height; y += 2 {
		keys := make([]cellKey, buf.Width)
		for x := range buf.Width {
			keys[x] = keyFor(buf.At(x, y), buf.At(x, y+1))
		}
		lines = append(lines, p.renderLine(keys))
	}
	return strings.Join(lines, "\n")
}

func (p *Renderer) renderLine(keys []cellKey) string {
	var sb strings.Builder
	runStart := 0
	for x := 1; x <= len(keys); x++ {
		if x < len(keys) && keys[x] == keys[runStart] {
			continue
		}
		k := keys[runStart]
		text := strings.Repeat(string(k.ch), x-runStart)
		if k.fg == "" && k.bg == "" {
			sb.WriteString(text)
		} else {
			st := p.r.NewStyle()
			if k.fg != "" {
				st = st.Foreground(lipgloss.Color(k.fg))
			}
			if k.bg != "" {
				st = st.Background(lipgloss.Color(k.bg))
			}
			sb.WriteString(st.Render(text))
		}
		runStart = x
	}
	return sb.String()
}

func keyFor(top, bottom render.Color) cellKey {
	switch {
	case top.A == 0 && bottom.A == 0:
		return cellKey{ch: ' '}
	case bottom.A == 0:
		return cellKey{ch: upperHalf, fg: top.Hex()}
	case top.A == 0:
		return cellKey{ch: lowerHalf, fg: bottom.Hex()}
	default:
		return cellKey{ch: upperHalf, fg: top.Hex(), bg: bottom.Hex()}
	}
}
