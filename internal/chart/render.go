package chart

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format selects the image encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat defaults to PNG for an empty string.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	}
	return "", fmt.Errorf("unsupported image format %q", s)
}

func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (f Format) provider() gochart.RendererProvider {
	if f == FormatSVG {
		return gochart.SVG
	}
	return gochart.PNG
}

// RenderOptions control image size and encoding. Zero values fall back to 800x450 PNG.
type RenderOptions struct {
	Format Format
	Width  int
	Height int
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.Format == "" {
		o.Format = FormatPNG
	}
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 450
	}
	return o
}

var (
	colorLine  = drawing.ColorFromHex("2563eb") // blue-600
	colorAsset = drawing.ColorFromHex("dc2626") // red-600
	colorBar   = drawing.ColorFromHex("60a5fa") // blue-400
)

// RenderSML draws the Security Market Line, with the asset marker when asset is non-nil.
func RenderSML(curve []Point, asset *Point, opts RenderOptions) ([]byte, error) {
	if len(curve) < 2 {
		return nil, fmt.Errorf("need at least 2 curve points, got %d", len(curve))
	}
	opts = opts.withDefaults()

	xs := make([]float64, len(curve))
	ys := make([]float64, len(curve))
	for i, p := range curve {
		xs[i] = p.Beta
		ys[i] = p.ExpectedReturn
	}

	series := []gochart.Series{
		gochart.ContinuousSeries{
			Name: "Security Market Line (SML)",
			Style: gochart.Style{
				StrokeColor: colorLine,
				StrokeWidth: 2,
			},
			XValues: xs,
			YValues: ys,
		},
	}
	yLo, yHi := minMax(ys)
	if asset != nil {
		series = append(series, gochart.ContinuousSeries{
			Name: "Your Asset",
			Style: gochart.Style{
				StrokeWidth: gochart.Disabled,
				DotColor:    colorAsset,
				DotWidth:    6,
			},
			XValues: []float64{asset.Beta},
			YValues: []float64{asset.ExpectedReturn},
		})
		yLo = math.Min(yLo, asset.ExpectedReturn)
		yHi = math.Max(yHi, asset.ExpectedReturn)
	}

	yAxis := gochart.YAxis{
		Name: "Expected Return (%)",
		ValueFormatter: func(v interface{}) string {
			if f, ok := v.(float64); ok {
				return fmt.Sprintf("%.1f", f)
			}
			return ""
		},
	}
	// go-chart refuses a zero-height range, which a flat SML (rf == rm) produces.
	if yHi-yLo < 1e-9 {
		yAxis.Range = &gochart.ContinuousRange{Min: yLo - 1, Max: yHi + 1}
	}

	graph := gochart.Chart{
		Title:  "Security Market Line",
		Width:  opts.Width,
		Height: opts.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: gochart.XAxis{
			Name: "Beta (β)",
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.2f", f)
				}
				return ""
			},
		},
		YAxis:  yAxis,
		Series: series,
	}
	graph.Elements = []gochart.Renderable{
		gochart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(opts.Format.provider(), &buf); err != nil {
		return nil, fmt.Errorf("sml chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderComparison draws the three comparison bars.
func RenderComparison(set ComparisonSet, opts RenderOptions) ([]byte, error) {
	if len(set) == 0 {
		return nil, fmt.Errorf("comparison set is empty")
	}
	opts = opts.withDefaults()

	bars := make([]gochart.Value, len(set))
	values := make([]float64, len(set))
	for i, e := range set {
		bars[i] = gochart.Value{
			Label: e.Label,
			Value: e.Value,
			Style: gochart.Style{
				FillColor:   colorBar,
				StrokeColor: colorBar,
			},
		}
		values[i] = e.Value
	}

	// Anchor bars at zero so the smallest one is still visible.
	lo, hi := minMax(values)
	lo = math.Min(lo, 0)
	if hi <= lo {
		hi = lo + 1
	}

	graph := gochart.BarChart{
		Title:  "Input Comparison",
		Width:  opts.Width,
		Height: opts.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40},
		},
		BarWidth: opts.Width / (2 * len(set)),
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.1f%%", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(opts.Format.provider(), &buf); err != nil {
		return nil, fmt.Errorf("comparison chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func minMax(xs []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return lo, hi
}
