package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Diogouema/ProjSistemaOperacional/memoria/models"
)

func TestLoadTrace(t *testing.T) {
	input := `pid,virtual_address
# secuencia de prueba
1,0
1, 4096

2,8192
`
	trace, err := LoadTrace(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expected := []models.AccessRequest{
		{PID: 1, VirtualAddress: 0},
		{PID: 1, VirtualAddress: 4096},
		{PID: 2, VirtualAddress: 8192},
	}
	got := trace.GetAll()
	if len(got) != len(expected) {
		t.Fatalf("Expected %d accesses, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Access %d: expected %+v, got %+v", i, expected[i], got[i])
		}
	}
}

func TestLoadTrace_Errors(t *testing.T) {
	inputs := []string{
		"1,0\n1,abc\n",
		"1,0,5\n",
		"1,0\nx,y\n",
		"1,4096x\n1,0\n",
		"pid,0\n1,0\n",
	}

	for _, input := range inputs {
		if _, err := LoadTrace(strings.NewReader(input)); err == nil {
			t.Errorf("Expected error for %q", input)
		}
	}
}

func TestLoadTraceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	if err := os.WriteFile(path, []byte("1,0\n1,12288\n"), 0666); err != nil {
		t.Fatalf("Failed to write trace: %v", err)
	}

	trace, err := LoadTraceFile(path)
	if err != nil || trace.Size() != 2 {
		t.Fatalf("Expected 2 accesses, got %v (%v)", trace, err)
	}

	if _, err := LoadTraceFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestDefaultTrace(t *testing.T) {
	trace := DefaultTrace(3)

	if trace.Size() != 11 {
		t.Fatalf("Expected 11 accesses, got %d", trace.Size())
	}
	last, _ := trace.Get(10)
	if last.PID != 3 || last.VirtualAddress != 16384 {
		t.Errorf("Unexpected last access %+v", last)
	}
}
