package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/neutronperf/internal/bench"
)

func exportFixture(t *testing.T) (*bench.Measurement, *bench.Result) {
	t.Helper()
	m, err := bench.Get(bench.DefaultPreset)
	if err != nil {
		t.Fatalf("default preset missing: %v", err)
	}
	res, err := m.Throughput()
	if err != nil {
		t.Fatalf("throughput failed: %v", err)
	}
	return m, res
}

func TestWriteCSV(t *testing.T) {
	m, res := exportFixture(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, m, res); err != nil {
		t.Fatalf("csv export failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("csv parse failed: %v", err)
	}

	if len(records) != res.Len()+1 {
		t.Errorf("expected %d rows, got %d", res.Len()+1, len(records))
	}
	if strings.Join(records[0], ",") != "size,cpu_time,gpu_time,cpu_speed,gpu_speed" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][0] != "1e+06" {
		t.Errorf("expected first size 1e+06, got %s", records[1][0])
	}
	if !strings.HasPrefix(records[1][3], "20000.") {
		t.Errorf("expected cpu speed 20000, got %s", records[1][3])
	}
}

func TestWriteJSON(t *testing.T) {
	m, res := exportFixture(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, m, res); err != nil {
		t.Fatalf("json export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("json parse failed: %v", err)
	}

	if data.Preset != m.Name {
		t.Errorf("expected preset %s, got %s", m.Name, data.Preset)
	}
	if data.CPULabel != "MCViNE" || data.GPULabel != "McVineGPU" {
		t.Errorf("unexpected labels: %s, %s", data.CPULabel, data.GPULabel)
	}
	if len(data.CPUSpeed) != res.Len() || len(data.GPUSpeed) != res.Len() {
		t.Error("speed sequences truncated")
	}
	for i := range data.CPUSpeed {
		if data.CPUSpeed[i] != res.CPUSpeed[i] {
			t.Errorf("cpu speed %d not round-tripped: %f vs %f", i, data.CPUSpeed[i], res.CPUSpeed[i])
		}
	}
}
