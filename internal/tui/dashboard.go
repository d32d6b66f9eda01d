package tui

import (
	"strings"

	"github.com/stefanclaw/cardkit/internal/chart"
)

// renderDashboard stacks the charts vertically, separated by a blank line.
func renderDashboard(charts []chart.Chart, width int) string {
	if len(charts) == 0 {
		return systemMsgStyle.Render("No charts configured.")
	}
	parts := make([]string, 0, len(charts))
	for _, c := range charts {
		parts = append(parts, chart.Render(c, width))
	}
	return strings.Join(parts, "\n\n")
}
