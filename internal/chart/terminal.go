package chart

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/neutronperf/internal/bench"
)

// RenderTerminal draws both throughput curves as ASCII plots stacked
// vertically. Points are plotted by sample index; the size annotation
// under each plot notes the log-spaced X values.
func RenderTerminal(m *bench.Measurement, res *bench.Result, width, height int) string {
	var sb strings.Builder

	gpu := asciigraph.Plot(res.GPUSpeed,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(SpeedLabel(m.GPULabel)),
	)
	sb.WriteString(gpu)
	sb.WriteString("\n\n")

	cpu := asciigraph.Plot(res.CPUSpeed,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(SpeedLabel(m.CPULabel)),
	)
	sb.WriteString(cpu)
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("neutrons per point: %s to %s (%d points, log-spaced)\n",
		formatTick(res.Sizes.Min()), formatTick(res.Sizes.Max()), res.Len()))

	return sb.String()
}
