package chart

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/neutronperf/internal/bench"
	"github.com/san-kum/neutronperf/internal/config"
)

const (
	marginLeft   = 85.0
	marginRight  = 85.0
	marginTop    = 60.0
	marginBottom = 60.0
	markerRadius = 3.5
	tickLen      = 5.0
)

// SpeedLabel builds the Y-axis label for an implementation.
func SpeedLabel(name string) string {
	return name + " Computation Speed (Number of Neutrons / s)"
}

// RenderSVG draws the dual-axis throughput comparison: problem size on a
// log X axis, GPU throughput on the left Y axis (auto-fit unless the
// config pins it), CPU throughput on the right Y axis (fixed bound).
// Tick labels are colored to match their curve.
func RenderSVG(m *bench.Measurement, res *bench.Result, cfg *config.Config) string {
	w := float64(cfg.Width)
	h := float64(cfg.Height)

	cpuLabel := cfg.CPU.Label
	if cpuLabel == "" {
		cpuLabel = SpeedLabel(m.CPULabel)
	}
	gpuLabel := cfg.GPU.Label
	if gpuLabel == "" {
		gpuLabel = SpeedLabel(m.GPULabel)
	}

	gpuMax := cfg.GPU.Max
	if gpuMax == 0 {
		gpuMax = niceMax(res.GPUSpeed.Max())
	}
	cpuMax := cfg.CPU.Max
	if cpuMax == 0 {
		cpuMax = niceMax(res.CPUSpeed.Max())
	}

	xs := logScale{min: res.Sizes.Min(), max: res.Sizes.Max(), px0: marginLeft, px1: w - marginRight}
	gpuScale := linearScale{min: 0, max: gpuMax, px0: h - marginBottom, px1: marginTop}
	cpuScale := linearScale{min: 0, max: cpuMax, px0: h - marginBottom, px1: marginTop}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, w, h, w, h))

	// Title
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="16">%s</text>
`, w/2, marginTop/2, escape(cfg.Title)))

	// Plot frame
	sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#000000"/>
`, marginLeft, marginTop, w-marginLeft-marginRight, h-marginTop-marginBottom))

	// X axis: decade ticks with label below
	for _, tick := range logTicks(res.Sizes.Min(), res.Sizes.Max()) {
		x := xs.pos(tick)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#000000"/>
`, x, h-marginBottom, x, h-marginBottom+tickLen))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="11">%s</text>
`, x, h-marginBottom+18, formatTick(tick)))
	}
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="13">%s</text>
`, w/2, h-marginBottom/3, escape(cfg.XLabel)))

	// Left Y axis: GPU throughput, tick labels in the GPU color
	for _, tick := range linearTicks(gpuMax, 5) {
		y := gpuScale.pos(tick)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#000000"/>
`, marginLeft-tickLen, y, marginLeft, y))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="end" font-family="sans-serif" font-size="11" fill="%s">%s</text>
`, marginLeft-8, y+4, cfg.GPU.Color, formatTick(tick)))
	}
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="12" fill="%s" transform="rotate(-90 %.1f %.1f)">%s</text>
`, marginLeft/3, h/2, cfg.GPU.Color, marginLeft/3, h/2, escape(gpuLabel)))

	// Right Y axis: CPU throughput, fixed bound, tick labels in the CPU color
	for _, tick := range linearTicks(cpuMax, 5) {
		y := cpuScale.pos(tick)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#000000"/>
`, w-marginRight, y, w-marginRight+tickLen, y))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="start" font-family="sans-serif" font-size="11" fill="%s">%s</text>
`, w-marginRight+8, y+4, cfg.CPU.Color, formatTick(tick)))
	}
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="12" fill="%s" transform="rotate(90 %.1f %.1f)">%s</text>
`, w-marginRight/3, h/2, cfg.CPU.Color, w-marginRight/3, h/2, escape(cpuLabel)))

	writeSeries(&sb, res.Sizes, res.GPUSpeed, xs, gpuScale, cfg.GPU.Color)
	writeSeries(&sb, res.Sizes, res.CPUSpeed, xs, cpuScale, cfg.CPU.Color)

	sb.WriteString("</svg>\n")
	return sb.String()
}

// writeSeries emits one line-with-marker curve.
func writeSeries(sb *strings.Builder, sizes, speeds []float64, xs logScale, ys linearScale, color string) {
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
	for i := range sizes {
		x := xs.pos(sizes[i])
		y := ys.pos(speeds[i])
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")

	for i := range sizes {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, xs.pos(sizes[i]), ys.pos(speeds[i]), markerRadius, color))
	}
}

// WriteSVG renders the chart and writes it to path.
func WriteSVG(path string, m *bench.Measurement, res *bench.Result, cfg *config.Config) error {
	return os.WriteFile(path, []byte(RenderSVG(m, res, cfg)), 0644)
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
