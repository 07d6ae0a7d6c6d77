// Package charts renders static chart images for the dashboard.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"energy-dashboard/models"
)

// ErrNoData is returned when there is nothing to chart.
var ErrNoData = errors.New("charts: empty summary")

// CapacityBar renders the capacity-by-fuel bar chart as PNG bytes. The bars
// keep the descending order of the summary.
func CapacityBar(country string, summary []models.FuelCapacity) ([]byte, error) {
	if len(summary) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Capacity by Fuel (MW) — %s", country)
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Fuel"
	p.Y.Label.Text = "Capacity (MW)"

	values := make(plotter.Values, len(summary))
	labels := make([]string, len(summary))
	for i, fc := range summary {
		values[i] = fc.TotalMW
		labels[i] = fc.Fuel
	}

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return nil, fmt.Errorf("charts: bar chart: %w", err)
	}
	bars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 0.6
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight
	p.Y.Min = 0

	wt, err := p.WriterTo(8*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("charts: render: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("charts: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveCapacityBar renders the chart to a PNG file on disk.
func SaveCapacityBar(country string, summary []models.FuelCapacity, path string) error {
	data, err := CapacityBar(country, summary)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
