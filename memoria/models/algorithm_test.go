package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input   string
		want    Algorithm
		wantErr bool
	}{
		{"FIFO", FIFO, false},
		{"lru", LRU, false},
		{" Lru ", LRU, false},
		{"0", FIFO, false},
		{"1", LRU, false},
		{"2", FIFO, true},
		{"CLOCK", FIFO, true},
	}

	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.input)
		if got != tt.want {
			t.Errorf("ParseAlgorithm(%q) = %v, expected %v", tt.input, got, tt.want)
		}
		if tt.wantErr && !errors.Is(err, ErrUnknownAlgorithm) {
			t.Errorf("ParseAlgorithm(%q) expected ErrUnknownAlgorithm, got %v", tt.input, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("ParseAlgorithm(%q) unexpected error: %v", tt.input, err)
		}
	}
}

func TestAlgorithm_JSON(t *testing.T) {
	var cfg SimulationConfig
	if err := json.Unmarshal([]byte(`{"page_size":1024,"memory_size":4096,"algorithm":"LRU"}`), &cfg); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg.Algorithm != LRU || cfg.FrameCount() != 4 {
		t.Errorf("Expected LRU with 4 frames, got %v with %d frames", cfg.Algorithm, cfg.FrameCount())
	}

	out, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if string(out) != `{"page_size":1024,"memory_size":4096,"algorithm":"LRU"}` {
		t.Errorf("Unexpected JSON: %s", string(out))
	}

	if err := json.Unmarshal([]byte(`{"algorithm":"OPT"}`), &cfg); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Expected ErrUnknownAlgorithm, got %v", err)
	}
	if _, err := json.Marshal(Algorithm(7)); err == nil {
		t.Error("Expected error marshalling an unknown algorithm")
	}
}

func TestSimulationConfig_FrameCount(t *testing.T) {
	tests := []struct {
		cfg  SimulationConfig
		want int
	}{
		{DefaultSimulationConfig(), 3},
		{SimulationConfig{PageSize: 4096, MemorySize: 10000}, 2},
		{SimulationConfig{PageSize: 4096, MemorySize: 1000}, 0},
		{SimulationConfig{PageSize: 0, MemorySize: 1000}, 0},
	}

	for _, tt := range tests {
		if got := tt.cfg.FrameCount(); got != tt.want {
			t.Errorf("FrameCount(%+v) = %d, expected %d", tt.cfg, got, tt.want)
		}
	}
}

func TestFrameSnapshot_Label(t *testing.T) {
	if got := (FrameSnapshot{Free: true, PID: FreeFrame, Page: Unmapped}).Label(); got != "----" {
		t.Errorf("Expected ---- for free frame, got %s", got)
	}
	if got := (FrameSnapshot{Frame: 2, PID: 1, Page: 3}).Label(); got != "P1-3" {
		t.Errorf("Expected P1-3, got %s", got)
	}
}
