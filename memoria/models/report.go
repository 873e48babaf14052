package models

// Report es el resumen de una simulación que se exporta en YAML.
type Report struct {
	Algorithm             Algorithm       `yaml:"algorithm"`
	PageSize              int             `yaml:"page_size"`
	MemorySize            int             `yaml:"memory_size"`
	Frames                int             `yaml:"frames"`
	Processes             []ProcessReport `yaml:"processes"`
	TotalAccesses         int             `yaml:"total_accesses"`
	PageFaults            int             `yaml:"page_faults"`
	Hits                  int             `yaml:"hits"`
	Evictions             int             `yaml:"evictions"`
	FaultRatePercent      float64         `yaml:"fault_rate_percent"`
	PerPageEvictionCounts map[string]int  `yaml:"per_page_eviction_counts"`
	FinalFrames           []FrameSnapshot `yaml:"final_frames"`
}

type ProcessReport struct {
	PID           int `yaml:"pid"`
	Pages         int `yaml:"pages"`
	ResidentPages int `yaml:"resident_pages"`
}
