// Package tui displays the throughput comparison full-screen in the
// terminal. It is a viewer only: it draws the chart and quits on any of
// q, esc or ctrl+c.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/neutronperf/internal/bench"
	"github.com/san-kum/neutronperf/internal/chart"
)

type model struct {
	meas          *bench.Measurement
	res           *bench.Result
	width, height int
}

func NewModel(meas *bench.Measurement, res *bench.Result) model {
	return model{meas: meas, res: res, width: 80, height: 24}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) View() string {
	plotWidth := m.width - 14
	if plotWidth < 40 {
		plotWidth = 40
	}
	plotHeight := (m.height - 10) / 2
	if plotHeight < 5 {
		plotHeight = 5
	}

	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Speed Comparison of "+m.meas.CPULabel+" vs "+m.meas.GPULabel) + "\n\n")

	gpu := asciigraph.Plot(m.res.GPUSpeed,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
	)
	sb.WriteString(gpuStyle.Render(gpu) + "\n")
	sb.WriteString(gpuStyle.Render(chart.SpeedLabel(m.meas.GPULabel)) + "\n\n")

	cpu := asciigraph.Plot(m.res.CPUSpeed,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
	)
	sb.WriteString(cpuStyle.Render(cpu) + "\n")
	sb.WriteString(cpuStyle.Render(chart.SpeedLabel(m.meas.CPULabel)) + "\n\n")

	sb.WriteString(subtleStyle.Render(fmt.Sprintf("%d points, %s to %s neutrons (log-spaced)",
		m.res.Len(), formatSize(m.res.Sizes.Min()), formatSize(m.res.Sizes.Max()))) + "\n")
	sb.WriteString(hintStyle.Render("q to quit"))

	return sb.String()
}

func formatSize(v float64) string {
	return fmt.Sprintf("%.0e", v)
}

// Run opens the viewer and blocks until the user closes it.
func Run(meas *bench.Measurement, res *bench.Result) error {
	p := tea.NewProgram(NewModel(meas, res), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
