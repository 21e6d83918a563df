// Package chart renders the CPU vs GPU throughput comparison.
//
// Two renderers share the same derived data:
//
//   - [RenderSVG]: dual-Y-axis line chart with a log-scaled X axis, GPU
//     throughput on the left axis (auto-fit) and CPU throughput on the
//     right axis (fixed 0..50000 bound), tick labels colored per curve
//   - [RenderTerminal]: stacked asciigraph plots for quick inspection
//
// The fixed right-axis bound next to the auto-fit left axis is the point
// of the chart: the two implementations differ by orders of magnitude,
// and a shared scale would flatten the CPU curve into the baseline.
package chart
