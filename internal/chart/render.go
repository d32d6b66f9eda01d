package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// palette colors datasets and slices in order.
var palette = []lipgloss.Color{
	lipgloss.Color("#7C3AED"),
	lipgloss.Color("#10B981"),
	lipgloss.Color("#F59E0B"),
	lipgloss.Color("#EF4444"),
	lipgloss.Color("#3B82F6"),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

const blockRune = "█"

func colorAt(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(palette[i%len(palette)])
}

// barLen scales v against max into at most width cells.
func barLen(v, max float64, width int) int {
	if max <= 0 || width <= 0 {
		return 0
	}
	n := int(math.Round(v / max * float64(width)))
	if n > width {
		n = width
	}
	return n
}

func labelWidth(labels []string) int {
	w := 0
	for _, l := range labels {
		if lw := lipgloss.Width(l); lw > w {
			w = lw
		}
	}
	return w
}

// Render draws c as text at most width cells wide.
func Render(c Chart, width int) string {
	if err := c.Validate(); err != nil {
		return legendStyle.Render(err.Error())
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(c.Title))
	b.WriteString("\n")

	switch c.Kind {
	case Bar:
		renderBar(&b, c, width)
	case StackedBar:
		renderStacked(&b, c, width)
	case Pie, Doughnut:
		renderShares(&b, c, width)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderLegend(b *strings.Builder, c Chart) {
	var parts []string
	for i, ds := range c.Datasets {
		parts = append(parts, colorAt(i).Render(blockRune)+" "+ds.Label)
	}
	b.WriteString(legendStyle.Render("  "+strings.Join(parts, "   ")) + "\n")
}

func renderBar(b *strings.Builder, c Chart, width int) {
	lw := labelWidth(c.Labels)
	// label, space, bar, space, value
	barWidth := width - lw - 8
	max := c.Max()
	for i, label := range c.Labels {
		for d, ds := range c.Datasets {
			name := ""
			if d == 0 {
				name = label
			}
			n := barLen(ds.Values[i], max, barWidth)
			fmt.Fprintf(b, "%-*s %s %g\n", lw, name, colorAt(d).Render(strings.Repeat(blockRune, n)), ds.Values[i])
		}
	}
	renderLegend(b, c)
}

func renderStacked(b *strings.Builder, c Chart, width int) {
	lw := labelWidth(c.Labels)
	barWidth := width - lw - 8
	totals := c.Totals()
	var max float64
	for _, t := range totals {
		if t > max {
			max = t
		}
	}
	for i, label := range c.Labels {
		var bar strings.Builder
		var running float64
		drawn := 0
		for d, ds := range c.Datasets {
			// Scale the cumulative total so rounding never drifts past the row total.
			running += ds.Values[i]
			end := barLen(running, max, barWidth)
			if end > drawn {
				bar.WriteString(colorAt(d).Render(strings.Repeat(blockRune, end-drawn)))
				drawn = end
			}
		}
		fmt.Fprintf(b, "%-*s %s %g\n", lw, label, bar.String(), totals[i])
	}
	renderLegend(b, c)
}

func renderShares(b *strings.Builder, c Chart, width int) {
	lw := labelWidth(c.Labels)
	barWidth := width - lw - 12
	pcts := c.Percentages()
	values := c.Datasets[0].Values
	for i, label := range c.Labels {
		n := barLen(pcts[i], 100, barWidth)
		fmt.Fprintf(b, "%-*s %s %5.1f%%\n", lw, label, colorAt(i).Render(strings.Repeat(blockRune, n)), pcts[i])
	}
	if c.Kind == Doughnut {
		var total float64
		for _, v := range values {
			total += v
		}
		b.WriteString(legendStyle.Render(fmt.Sprintf("  total %g", total)) + "\n")
	}
}
