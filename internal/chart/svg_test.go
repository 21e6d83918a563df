package chart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/neutronperf/internal/bench"
	"github.com/san-kum/neutronperf/internal/config"
)

func renderDefault(t *testing.T) (string, *bench.Measurement, *bench.Result) {
	t.Helper()
	m, err := bench.Get(bench.DefaultPreset)
	if err != nil {
		t.Fatalf("default preset missing: %v", err)
	}
	res, err := m.Throughput()
	if err != nil {
		t.Fatalf("throughput failed: %v", err)
	}
	return RenderSVG(m, res, config.DefaultConfig()), m, res
}

func TestRenderSVGStructure(t *testing.T) {
	svg, _, res := renderDefault(t)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, "</svg>") {
		t.Error("unterminated SVG document")
	}
	if !strings.Contains(svg, "Speed Comparison of MCViNE vs McVineGPU") {
		t.Error("missing title")
	}
	if !strings.Contains(svg, "Number of Neutrons") {
		t.Error("missing x axis label")
	}

	// One marker per point per curve
	markers := strings.Count(svg, "<circle")
	if markers != 2*res.Len() {
		t.Errorf("expected %d markers, got %d", 2*res.Len(), markers)
	}
	// One path per curve
	if paths := strings.Count(svg, "<path"); paths != 2 {
		t.Errorf("expected 2 paths, got %d", paths)
	}
}

func TestRenderSVGColors(t *testing.T) {
	svg, m, _ := renderDefault(t)

	if !strings.Contains(svg, config.DefaultGPUColor) {
		t.Error("missing GPU color")
	}
	if !strings.Contains(svg, config.DefaultCPUColor) {
		t.Error("missing CPU color")
	}
	if !strings.Contains(svg, SpeedLabel(m.GPULabel)) {
		t.Error("missing GPU axis label")
	}
	if !strings.Contains(svg, SpeedLabel(m.CPULabel)) {
		t.Error("missing CPU axis label")
	}
}

func TestRenderSVGFixedCPUBound(t *testing.T) {
	svg, _, _ := renderDefault(t)

	// The fixed 0..50000 right axis produces a 50000 tick label even
	// though the measured CPU throughput never exceeds ~21000.
	if !strings.Contains(svg, ">50000</text>") {
		t.Error("expected fixed 50000 cpu axis tick")
	}
}

func TestRenderSVGLabelOverride(t *testing.T) {
	m, _ := bench.Get(bench.DefaultPreset)
	res, _ := m.Throughput()

	cfg := config.DefaultConfig()
	cfg.CPU.Label = "reference run"

	svg := RenderSVG(m, res, cfg)
	if !strings.Contains(svg, "reference run") {
		t.Error("config label override ignored")
	}
	if strings.Contains(svg, SpeedLabel(m.CPULabel)) {
		t.Error("default label should be replaced by override")
	}
}

func TestWriteSVG(t *testing.T) {
	m, _ := bench.Get(bench.DefaultPreset)
	res, _ := m.Throughput()

	path := filepath.Join(t.TempDir(), "chart.svg")
	if err := WriteSVG(path, m, res, config.DefaultConfig()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("empty SVG file")
	}
}

func TestWriteSVGBadPath(t *testing.T) {
	m, _ := bench.Get(bench.DefaultPreset)
	res, _ := m.Throughput()

	err := WriteSVG("/nonexistent/dir/chart.svg", m, res, config.DefaultConfig())
	if err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestRenderTerminal(t *testing.T) {
	m, _ := bench.Get(bench.DefaultPreset)
	res, _ := m.Throughput()

	out := RenderTerminal(m, res, 72, 10)
	if !strings.Contains(out, SpeedLabel(m.GPULabel)) {
		t.Error("missing GPU caption")
	}
	if !strings.Contains(out, SpeedLabel(m.CPULabel)) {
		t.Error("missing CPU caption")
	}
	if !strings.Contains(out, "log-spaced") {
		t.Error("missing size annotation")
	}
}
