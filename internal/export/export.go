package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/neutronperf/internal/bench"
)

// ExportData is the JSON shape of a throughput table.
type ExportData struct {
	Preset   string    `json:"preset"`
	CPULabel string    `json:"cpu_label"`
	GPULabel string    `json:"gpu_label"`
	Sizes    []float64 `json:"sizes"`
	CPUTimes []float64 `json:"cpu_times"`
	GPUTimes []float64 `json:"gpu_times"`
	CPUSpeed []float64 `json:"cpu_speed"`
	GPUSpeed []float64 `json:"gpu_speed"`
}

func buildExportData(m *bench.Measurement, res *bench.Result) ExportData {
	return ExportData{
		Preset:   m.Name,
		CPULabel: m.CPULabel,
		GPULabel: m.GPULabel,
		Sizes:    m.Sizes,
		CPUTimes: m.CPUTimes,
		GPUTimes: m.GPUTimes,
		CPUSpeed: res.CPUSpeed,
		GPUSpeed: res.GPUSpeed,
	}
}

// WriteJSON writes the indented JSON throughput table to w.
func WriteJSON(w io.Writer, m *bench.Measurement, res *bench.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildExportData(m, res))
}

// ExportJSONStdout writes the JSON throughput table to stdout.
func ExportJSONStdout(m *bench.Measurement, res *bench.Result) error {
	return WriteJSON(os.Stdout, m, res)
}

// WriteCSV writes the throughput table to w, one row per problem size.
func WriteCSV(w io.Writer, m *bench.Measurement, res *bench.Result) error {
	cw := csv.NewWriter(w)

	header := []string{"size", "cpu_time", "gpu_time", "cpu_speed", "gpu_speed"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range m.Sizes {
		row := []string{
			strconv.FormatFloat(m.Sizes[i], 'g', -1, 64),
			strconv.FormatFloat(m.CPUTimes[i], 'f', 6, 64),
			strconv.FormatFloat(m.GPUTimes[i], 'f', 6, 64),
			strconv.FormatFloat(res.CPUSpeed[i], 'f', 6, 64),
			strconv.FormatFloat(res.GPUSpeed[i], 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSVStdout writes the CSV throughput table to stdout.
func ExportCSVStdout(m *bench.Measurement, res *bench.Result) error {
	return WriteCSV(os.Stdout, m, res)
}
