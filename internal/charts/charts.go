// Package charts renders deck statistics as interactive HTML charts.
package charts

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/z33kz33k/mtgcards/internal/deck"
)

// ChartConfig holds chart rendering options.
type ChartConfig struct {
	Title    string
	Subtitle string
	Width    string
	Height   string
	Theme    string
}

// DefaultChartConfig returns default chart configuration.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:  "900px",
		Height: "500px",
		Theme:  "light",
	}
}

// RenderManaCurve writes the deck's mana curve as a bar chart.
func RenderManaCurve(d *deck.Deck, config ChartConfig, w io.Writer) error {
	if config.Title == "" {
		config.Title = "Mana Curve"
		if name := d.Name(); name != "" {
			config.Subtitle = name
		}
	}

	curve := d.ManaCurve()
	costs := make([]int, 0, len(curve))
	for cost := range curve {
		costs = append(costs, cost)
	}
	sort.Ints(costs)

	labels := make([]string, len(costs))
	values := make([]opts.BarData, len(costs))
	for i, cost := range costs {
		labels[i] = fmt.Sprintf("%d", cost)
		if cost == deck.ManaCurveCap {
			labels[i] += "+"
		}
		values[i] = opts.BarData{Value: curve[cost]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)
	bar.SetXAxis(labels).
		AddSeries("Cards", values).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// RenderManaCurveFile renders the mana curve chart to an HTML file.
func RenderManaCurveFile(d *deck.Deck, config ChartConfig, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return RenderManaCurve(d, config, f)
}
