package imageio

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/gogpu/imgproc/image"
	"github.com/gogpu/imgproc/tone"
)

// Chart size in pixels.
const (
	chartWidth  = 1024
	chartHeight = 512
)

var channelColors = map[int][]drawing.Color{
	1: {chart.ColorBlack},
	2: {chart.ColorBlack, chart.ColorAlternateGray},
	3: {chart.ColorRed, chart.ColorGreen, chart.ColorBlue},
}

var channelNames = map[int][]string{
	1: {"gray"},
	2: {"gray", "channel 2"},
	3: {"red", "green", "blue"},
}

// WriteHistogramChart renders the histograms of the color channels of img
// as a PNG line chart.
func WriteHistogramChart(w io.Writer, img *image.Image[uint8]) error {
	hist := tone.Histogram(img)
	n := len(hist)

	xs := make([]float64, 256)
	for i := range xs {
		xs[i] = float64(i)
	}

	peak := 1
	series := make([]chart.Series, 0, n)
	for k, h := range hist {
		ys := make([]float64, 256)
		for v, count := range h {
			ys[v] = float64(count)
			peak = max(peak, count)
		}
		color := channelColors[n][k]
		series = append(series, chart.ContinuousSeries{
			Name:    channelNames[n][k],
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: color,
				FillColor:   color.WithAlpha(48),
			},
		})
	}

	graph := chart.Chart{
		Title:  "Histogram",
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			Name:  "Value",
			Range: &chart.ContinuousRange{Min: 0, Max: 255},
		},
		YAxis: chart.YAxis{
			Name:  "Pixels",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(peak)},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("%w: histogram chart: %w", ErrEncode, err)
	}
	return nil
}
