package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/neutronperf/internal/bench"
	"github.com/san-kum/neutronperf/internal/chart"
	"github.com/san-kum/neutronperf/internal/config"
	"github.com/san-kum/neutronperf/internal/export"
	"github.com/san-kum/neutronperf/internal/tui"
	"github.com/spf13/cobra"
)

var (
	configFile string
	output     string
	width      int
	height     int
	// Terminal plot dimensions (characters)
	plotWidth  int
	plotHeight int
)

var summaryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#74B71B"))

// main registers the neutronperf commands. With no subcommand the viewer
// opens on the default dataset, mirroring the original one-shot chart.
func main() {
	rootCmd := &cobra.Command{
		Use:   "neutronperf",
		Short: "compare CPU and GPU neutron transport throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viewChart(cmd, args)
		},
	}

	chartCmd := &cobra.Command{
		Use:   "chart [preset]",
		Short: "render the dual-axis comparison as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderChart,
	}
	chartCmd.Flags().StringVar(&configFile, "config", "", "chart style file (yaml)")
	chartCmd.Flags().StringVar(&output, "output", config.DefaultOutput, "output path")
	chartCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "image width (px)")
	chartCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "image height (px)")

	plotCmd := &cobra.Command{
		Use:   "plot [preset]",
		Short: "plot both throughput curves in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotChart,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 72, "plot width (chars)")
	plotCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height (chars)")

	viewCmd := &cobra.Command{
		Use:   "view [preset]",
		Short: "open the full-screen chart viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  viewChart,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [preset]",
		Short: "print the throughput table",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchTable,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [preset]",
		Short: "export the throughput table to CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, res, err := loadMeasurement(args)
			if err != nil {
				return err
			}
			return export.ExportCSVStdout(m, res)
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [preset]",
		Short: "export the throughput table to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, res, err := loadMeasurement(args)
			if err != nil {
				return err
			}
			return export.ExportJSONStdout(m, res)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in measurement datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range bench.List() {
				m := bench.Presets[name]
				marker := " "
				if name == bench.DefaultPreset {
					marker = "*"
				}
				fmt.Printf("%s %-14s %d points, %s vs %s\n", marker, name, len(m.Sizes), m.CPULabel, m.GPULabel)
			}
			return nil
		},
	}

	rootCmd.AddCommand(chartCmd, plotCmd, viewCmd, benchCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadMeasurement resolves the preset argument and derives throughput.
// Validation failures surface here, before any rendering starts.
func loadMeasurement(args []string) (*bench.Measurement, *bench.Result, error) {
	name := bench.DefaultPreset
	if len(args) > 0 {
		name = args[0]
	}

	m, err := bench.Get(name)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s (available: %v)", bench.ErrUnknownPreset, name, bench.List())
	}

	res, err := m.Throughput()
	if err != nil {
		return nil, nil, err
	}
	return m, res, nil
}

func renderChart(cmd *cobra.Command, args []string) error {
	m, res, err := loadMeasurement(args)
	if err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if configFile != "" {
		cfg, err = config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	// CLI flags override config values
	if cmd.Flags().Changed("output") || cfg.Output == "" {
		cfg.Output = output
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = height
	}

	if err := chart.WriteSVG(cfg.Output, m, res, cfg); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	fmt.Printf("wrote %s (%dx%d, %d points)\n", cfg.Output, cfg.Width, cfg.Height, res.Len())
	return nil
}

func plotChart(cmd *cobra.Command, args []string) error {
	m, res, err := loadMeasurement(args)
	if err != nil {
		return err
	}

	fmt.Printf("dataset: %s\n\n", m.Name)
	fmt.Print(chart.RenderTerminal(m, res, plotWidth, plotHeight))
	return nil
}

func viewChart(cmd *cobra.Command, args []string) error {
	m, res, err := loadMeasurement(args)
	if err != nil {
		return err
	}
	return tui.Run(m, res)
}

func benchTable(cmd *cobra.Command, args []string) error {
	m, res, err := loadMeasurement(args)
	if err != nil {
		return err
	}

	fmt.Printf("dataset: %s (%s vs %s)\n\n", m.Name, m.CPULabel, m.GPULabel)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NEUTRONS\tCPU_TIME\tGPU_TIME\tCPU_SPEED\tGPU_SPEED\tSPEEDUP")

	speedup := res.Speedup()
	for i := range m.Sizes {
		fmt.Fprintf(w, "%.0e\t%.3f\t%.3f\t%.1f\t%.1f\t%.1fx\n",
			m.Sizes[i], m.CPUTimes[i], m.GPUTimes[i],
			res.CPUSpeed[i], res.GPUSpeed[i], speedup[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	best := 0
	for i := range speedup {
		if speedup[i] > speedup[best] {
			best = i
		}
	}
	fmt.Println()
	fmt.Println(summaryStyle.Render(fmt.Sprintf("peak speedup: %.0fx at %.0e neutrons", speedup[best], m.Sizes[best])))
	return nil
}
