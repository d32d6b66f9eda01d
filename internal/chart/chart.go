// Package chart holds the static dashboard chart data and renders it as
// terminal text.
package chart

import "fmt"

// Kind is the chart type.
type Kind string

const (
	Bar        Kind = "bar"
	Pie        Kind = "pie"
	StackedBar Kind = "stacked-bar"
	Doughnut   Kind = "doughnut"
)

// Dataset is one series of values, aligned with the chart labels.
type Dataset struct {
	Label  string
	Values []float64
}

// Chart is a static chart configuration.
type Chart struct {
	Title    string
	Kind     Kind
	Labels   []string
	Datasets []Dataset
}

// Validate checks that every dataset has one value per label and that no
// value is negative.
func (c Chart) Validate() error {
	switch c.Kind {
	case Bar, Pie, StackedBar, Doughnut:
	default:
		return fmt.Errorf("chart %q: unknown kind %q", c.Title, c.Kind)
	}
	if len(c.Datasets) == 0 {
		return fmt.Errorf("chart %q: no datasets", c.Title)
	}
	for _, ds := range c.Datasets {
		if len(ds.Values) != len(c.Labels) {
			return fmt.Errorf("chart %q: dataset %q has %d values for %d labels",
				c.Title, ds.Label, len(ds.Values), len(c.Labels))
		}
		for _, v := range ds.Values {
			if v < 0 {
				return fmt.Errorf("chart %q: dataset %q has negative value %g", c.Title, ds.Label, v)
			}
		}
	}
	return nil
}

// Totals returns the sum of all datasets at each label position.
func (c Chart) Totals() []float64 {
	totals := make([]float64, len(c.Labels))
	for _, ds := range c.Datasets {
		for i, v := range ds.Values {
			if i < len(totals) {
				totals[i] += v
			}
		}
	}
	return totals
}

// Max returns the largest single value across all datasets.
func (c Chart) Max() float64 {
	var max float64
	for _, ds := range c.Datasets {
		for _, v := range ds.Values {
			if v > max {
				max = v
			}
		}
	}
	return max
}

// Percentages returns each value of the first dataset as a share of its
// sum, in percent. Pie and doughnut charts use a single dataset.
func (c Chart) Percentages() []float64 {
	if len(c.Datasets) == 0 {
		return nil
	}
	values := c.Datasets[0].Values
	var sum float64
	for _, v := range values {
		sum += v
	}
	out := make([]float64, len(values))
	if sum == 0 {
		return out
	}
	for i, v := range values {
		out[i] = v / sum * 100
	}
	return out
}

var yearLabels = []string{"2006", "2007", "2008", "2009", "2010", "2011", "2012"}

var salesLabels = []string{"Download Sales", "In-Store Sales", "Mail Sales"}

// Defaults returns the four dashboard charts in display order.
func Defaults() []Chart {
	series := func() []Dataset {
		return []Dataset{
			{Label: "Series A", Values: []float64{65, 59, 80, 81, 56, 55, 40}},
			{Label: "Series B", Values: []float64{28, 48, 40, 19, 86, 27, 90}},
		}
	}
	sales := func() []Dataset {
		return []Dataset{{Label: "Sales", Values: []float64{300, 500, 100}}}
	}
	return []Chart{
		{Title: "Bar Chart", Kind: Bar, Labels: yearLabels, Datasets: series()},
		{Title: "Pie Chart", Kind: Pie, Labels: salesLabels, Datasets: sales()},
		{Title: "Stacked Bar Chart", Kind: StackedBar, Labels: yearLabels, Datasets: series()},
		{Title: "Doughnut Chart", Kind: Doughnut, Labels: salesLabels, Datasets: sales()},
	}
}
