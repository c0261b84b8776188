package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

var weekdayLabels = []string{"M", "T", "W", "T", "F", "S", "S"}

// renderReputationChart draws the weekly reputation gains as a bar chart.
func renderReputationChart(scores []float64, width, height int) string {
	if len(scores) == 0 {
		return helpStyle.Render("No driving history yet")
	}
	if width < 14 {
		width = 14
	}
	if height < 3 {
		height = 3
	}

	barStyle := lipgloss.NewStyle().Foreground(ColorCyan).Background(ColorCyan)
	bestStyle := lipgloss.NewStyle().Foreground(ColorGreen).Background(ColorGreen)

	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}

	bc := barchart.New(width, height,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(max(1, (width-len(scores))/len(scores))),
		barchart.WithNoAxis(),
	)
	for i, s := range scores {
		style := barStyle
		if i == best {
			style = bestStyle
		}
		label := ""
		if i < len(weekdayLabels) {
			label = weekdayLabels[i]
		}
		bc.Push(barchart.BarData{
			Label:  label,
			Values: []barchart.BarValue{{Name: label, Value: s, Style: style}},
		})
	}
	bc.Draw()

	var total float64
	for _, s := range scores {
		total += s
	}
	footer := subtitleStyle.Render(fmt.Sprintf("+%.0f this week", total))
	return lipgloss.JoinVertical(lipgloss.Left, bc.View(), footer)
}
