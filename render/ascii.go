// Package render turns ratings into the ASCII chart, the animated SVG and
// the README document that embeds both.
package render

import (
	"fmt"
	"math"
	"snakerank/stats"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	BarWidth  = 20
	barFilled = "#"
	barEmpty  = "-"
	// labelGutter is the space kept between the widest name and the colon
	labelGutter = 3
)

// Bar draws a fixed-width bar whose filled part is proportional to rating.
func Bar(rating int) string {
	filled := int(math.Round(float64(rating) / stats.MaxRating * BarWidth))
	if filled < 0 {
		filled = 0
	}
	if filled > BarWidth {
		filled = BarWidth
	}
	return "[" + strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, BarWidth-filled) + "]"
}

// ASCII renders one bar line per tracked language, followed by the
// signature when one is given.
func ASCII(ratings stats.Ratings, signature string) string {
	langs := stats.Languages()

	labelWidth := 0
	for _, spec := range langs {
		if w := runewidth.StringWidth(spec.Name); w > labelWidth {
			labelWidth = w
		}
	}
	labelWidth += labelGutter

	var sb strings.Builder
	for _, spec := range langs {
		rating := ratings[spec.Name]
		fmt.Fprintf(&sb, "%s: %s %d/%d\n", runewidth.FillRight(spec.Name, labelWidth), Bar(rating), rating, stats.MaxRating)
	}
	if signature != "" {
		indent := (labelWidth + len(": ") + BarWidth + 2 - runewidth.StringWidth(signature)) / 2
		if indent < 0 {
			indent = 0
		}
		sb.WriteString("\n" + strings.Repeat(" ", indent) + signature + "\n")
	}
	return sb.String()
}
