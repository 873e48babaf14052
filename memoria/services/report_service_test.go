package services

import (
	"bytes"
	"testing"

	"github.com/Diogouema/ProjSistemaOperacional/memoria/models"
	"gopkg.in/yaml.v2"
)

func TestBuildReport(t *testing.T) {
	sim := newTestSimulator(t, models.FIFO, map[int]int{1: 8, 2: 4})
	sim.Run(DefaultTrace(1))

	report := BuildReport(sim)

	if report.Algorithm != models.FIFO || report.Frames != 3 || report.PageSize != 4096 {
		t.Errorf("Unexpected configuration in report: %+v", report)
	}
	if report.TotalAccesses != 11 || report.PageFaults != 10 || report.Hits != 1 || report.Evictions != 7 {
		t.Errorf("Unexpected counters in report: %+v", report)
	}
	// P1-0 sale en t=5 y t=10, P1-1 en t=6 y t=11.
	if report.PerPageEvictionCounts["P1-0"] != 2 || report.PerPageEvictionCounts["P1-1"] != 2 {
		t.Errorf("Unexpected eviction counts: %v", report.PerPageEvictionCounts)
	}
	if len(report.Processes) != 2 || report.Processes[0].ResidentPages != 3 || report.Processes[1].ResidentPages != 0 {
		t.Errorf("Unexpected process report: %+v", report.Processes)
	}
}

func TestWriteReport(t *testing.T) {
	sim := newTestSimulator(t, models.LRU, map[int]int{1: 8})
	sim.Run(DefaultTrace(1))

	var buf bytes.Buffer
	if err := WriteReport(&buf, BuildReport(sim)); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	var decoded map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Report is not valid YAML: %v\n%s", err, buf.String())
	}
	if decoded["algorithm"] != "LRU" {
		t.Errorf("Expected algorithm LRU, got %v", decoded["algorithm"])
	}
	if decoded["page_faults"] != 9 {
		t.Errorf("Expected 9 page faults, got %v", decoded["page_faults"])
	}
	frames, ok := decoded["final_frames"].([]interface{})
	if !ok || len(frames) != 3 {
		t.Errorf("Expected 3 final frames, got %v", decoded["final_frames"])
	}
}
