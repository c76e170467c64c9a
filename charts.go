package attnbench

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Chart dimensions
const (
	panelWidth  = 5 * vg.Inch
	panelHeight = 5 * vg.Inch
	chartWidth  = 10 * vg.Inch
	chartHeight = 6 * vg.Inch
)

var (
	// memory chart curve colors, matching the break-even line's neutral gray
	standardMemColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}  // red
	flashMemColor    = color.RGBA{R: 44, G: 160, B: 44, A: 255}  // green
	referenceGray    = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// variantColors assigns one palette color per kernel variant, in canonical
// order. The same mapping is used by every artifact so a variant keeps its
// color across charts.
func variantColors() ([]color.Color, error) {
	palette, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", len(AllAttentionTypes))
	if err != nil {
		return nil, fmt.Errorf("variant palette: %w", err)
	}
	return palette.Colors(), nil
}

// newPanel creates a plot with the house style applied
func newPanel(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = 1 * vg.Millimeter
	p.Add(plotter.NewGrid())
	return p
}

// seqLenTicks builds base-2 style constant ticks, one per sequence length
func seqLenTicks(seqLens []int) []plot.Tick {
	ticks := make([]plot.Tick, len(seqLens))
	for i, s := range seqLens {
		ticks[i] = plot.Tick{Value: float64(s), Label: fmt.Sprintf("%d", s)}
	}
	return ticks
}

// useLogX puts the panel's x axis on a log scale with one tick per
// sequence length, the chart-friendly rendering of a power-of-two sweep.
func useLogX(p *plot.Plot, seqLens []int) {
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.ConstantTicks(seqLenTicks(seqLens))
}

// flattenAxes falls back to plain linear axes with default ticks. Used
// when a panel ended up with no data, where a log axis cannot autoscale.
func flattenAxes(p *plot.Plot) {
	p.X.Scale = plot.LinearScale{}
	p.Y.Scale = plot.LinearScale{}
	p.X.Tick.Marker = plot.DefaultTicks{}
	p.Y.Tick.Marker = plot.DefaultTicks{}
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
}

// seriesXYs converts a scaling series to plot points
func seriesXYs(series ScalingSeries) plotter.XYs {
	xys := make(plotter.XYs, len(series))
	for i, pt := range series {
		xys[i].X = float64(pt.SeqLen)
		xys[i].Y = pt.Value
	}
	return xys
}

// addSeries draws one variant's line+marker series onto a panel
func addSeries(p *plot.Plot, t AttentionType, series ScalingSeries, c color.Color) error {
	line, points, err := plotter.NewLinePoints(seriesXYs(series))
	if err != nil {
		return err
	}
	line.Color = c
	line.Width = vg.Points(1.5)
	points.GlyphStyle.Color = c
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Radius = vg.Points(2.5)
	p.Add(line, points)
	p.Legend.Add(t.DisplayName(), line, points)
	return nil
}

// WriteScalingChart renders the 3-panel scaling chart: latency (log-log),
// throughput (log-x) and bandwidth (log-x), one line per variant per
// panel. Variants with empty series are simply absent from a panel.
func WriteScalingChart(result ScalingResult, path string) error {
	const op = "WriteScalingChart"

	colors, err := variantColors()
	if err != nil {
		return NewWriteError(op, "palette setup failed", err)
	}

	titles := map[Metric]string{
		MetricLatency:   "Latency Scaling",
		MetricTFLOPS:    "Throughput Scaling",
		MetricBandwidth: "Memory Bandwidth",
	}

	panels := make([]*plot.Plot, 0, len(AllMetrics))
	for _, m := range AllMetrics {
		p := newPanel(titles[m], "Sequence Length", m.AxisLabel())

		var seqLens []int
		seen := make(map[int]bool)
		hasData := false
		for _, t := range AllAttentionTypes {
			for _, pt := range result[m][t] {
				if !seen[pt.SeqLen] {
					seen[pt.SeqLen] = true
					seqLens = append(seqLens, pt.SeqLen)
				}
			}
		}

		for i, t := range AllAttentionTypes {
			series := result[m][t]
			if len(series) == 0 {
				continue
			}
			hasData = true
			if err := addSeries(p, t, series, colors[i]); err != nil {
				return NewWriteError(op, fmt.Sprintf("%s series for %s", m, t), err)
			}
		}

		if hasData {
			useLogX(p, seqLens)
			if m == MetricLatency {
				p.Y.Scale = plot.LogScale{}
				p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
			}
		} else {
			flattenAxes(p)
		}
		panels = append(panels, p)
	}

	return writePanelRow(op, panels, path)
}

// writePanelRow tiles the panels into a single-row PNG
func writePanelRow(op string, panels []*plot.Plot, path string) error {
	img := vgimg.New(panelWidth*vg.Length(len(panels)), panelHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 1,
		Cols: len(panels),
		PadX:     5 * vg.Millimeter,
		PadLeft:  2 * vg.Millimeter,
		PadRight: 2 * vg.Millimeter,
	}

	canvases := plot.Align([][]*plot.Plot{panels}, tiles, dc)
	for i, p := range panels {
		p.Draw(canvases[0][i])
	}

	f, err := os.Create(path)
	if err != nil {
		return NewWriteError(op, fmt.Sprintf("cannot create %s", path), err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return NewWriteError(op, fmt.Sprintf("cannot write %s", path), err)
	}
	return nil
}

// WriteSpeedupChart renders the grouped-bar comparison of shared and
// flash speedups over naive, one bar pair per sequence length, with a
// dashed break-even line at ratio 1.
func WriteSpeedupChart(table SpeedupTable, path string) error {
	const op = "WriteSpeedupChart"

	colors, err := variantColors()
	if err != nil {
		return NewWriteError(op, "palette setup failed", err)
	}

	p := newPanel("Attention Kernel Speedup Comparison", "Sequence Length", "Speedup vs Naive")
	p.Legend.Top = true
	p.Legend.Left = false

	if len(table) == 0 {
		flattenAxes(p)
	} else {
		sharedVals := make(plotter.Values, len(table))
		flashVals := make(plotter.Values, len(table))
		labels := make([]string, len(table))
		for i, row := range table {
			sharedVals[i] = row.SharedSpeedup
			flashVals[i] = row.FlashSpeedup
			labels[i] = fmt.Sprintf("%d", row.SeqLen)
		}

		barWidth := vg.Points(16)
		barSpacing := vg.Points(3)

		sharedBars, err := plotter.NewBarChart(sharedVals, barWidth)
		if err != nil {
			return NewWriteError(op, "shared bars", err)
		}
		sharedBars.Offset = -(barWidth + barSpacing) / 2
		sharedBars.Color = colors[1]
		sharedBars.LineStyle.Width = 0

		flashBars, err := plotter.NewBarChart(flashVals, barWidth)
		if err != nil {
			return NewWriteError(op, "flash bars", err)
		}
		flashBars.Offset = (barWidth + barSpacing) / 2
		flashBars.Color = colors[2]
		flashBars.LineStyle.Width = 0

		p.Add(sharedBars, flashBars)
		p.Legend.Add(Shared.DisplayName(), sharedBars)
		p.Legend.Add(Flash.DisplayName(), flashBars)
		p.NominalX(labels...)

		// Break-even against the naive baseline
		breakEven, err := plotter.NewLine(plotter.XYs{
			{X: -0.5, Y: 1},
			{X: float64(len(table)) - 0.5, Y: 1},
		})
		if err != nil {
			return NewWriteError(op, "break-even line", err)
		}
		breakEven.Color = referenceGray
		breakEven.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(breakEven)

		p.Y.Min = 0
	}

	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return NewWriteError(op, fmt.Sprintf("cannot write %s", path), err)
	}
	return nil
}

// WriteMemoryChart renders the log-log theoretical footprint comparison,
// annotating the final point of each curve with its value in MB. Standard
// attention reuses the naive variant's framing (it is what the naive
// kernel materializes); flash keeps the flash color.
func WriteMemoryChart(proj MemoryProjection, path string) error {
	const op = "WriteMemoryChart"

	p := newPanel("Memory Scaling: Standard vs Flash Attention", "Sequence Length", "Memory (MB)")

	if len(proj.Points) == 0 {
		flattenAxes(p)
	} else {
		seqLens := make([]int, len(proj.Points))
		standard := make(plotter.XYs, len(proj.Points))
		flash := make(plotter.XYs, len(proj.Points))
		for i, pt := range proj.Points {
			seqLens[i] = pt.SeqLen
			standard[i] = plotter.XY{X: float64(pt.SeqLen), Y: pt.StandardMB}
			flash[i] = plotter.XY{X: float64(pt.SeqLen), Y: pt.FlashMB}
		}

		stdLine, stdPoints, err := plotter.NewLinePoints(standard)
		if err != nil {
			return NewWriteError(op, "standard curve", err)
		}
		stdLine.Color = standardMemColor
		stdLine.Width = vg.Points(2)
		stdPoints.GlyphStyle.Color = standardMemColor
		stdPoints.GlyphStyle.Shape = draw.CircleGlyph{}

		flashLine, flashPoints, err := plotter.NewLinePoints(flash)
		if err != nil {
			return NewWriteError(op, "flash curve", err)
		}
		flashLine.Color = flashMemColor
		flashLine.Width = vg.Points(2)
		flashPoints.GlyphStyle.Color = flashMemColor
		flashPoints.GlyphStyle.Shape = draw.BoxGlyph{}

		p.Add(stdLine, stdPoints, flashLine, flashPoints)
		p.Legend.Add("Standard Attention", stdLine, stdPoints)
		p.Legend.Add("Flash Attention", flashLine, flashPoints)

		last := proj.Points[len(proj.Points)-1]
		annotations, err := plotter.NewLabels(plotter.XYLabels{
			XYs: plotter.XYs{
				{X: float64(last.SeqLen) * 0.7, Y: last.StandardMB * 1.3},
				{X: float64(last.SeqLen) * 0.7, Y: last.FlashMB * 0.7},
			},
			Labels: []string{
				fmt.Sprintf("%.0f MB", last.StandardMB),
				fmt.Sprintf("%.0f MB", last.FlashMB),
			},
		})
		if err != nil {
			return NewWriteError(op, "annotations", err)
		}
		p.Add(annotations)

		useLogX(p, seqLens)
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return NewWriteError(op, fmt.Sprintf("cannot write %s", path), err)
	}
	return nil
}
