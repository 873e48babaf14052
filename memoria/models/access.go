package models

// AccessRequest es un acceso de un proceso a una dirección virtual.
type AccessRequest struct {
	PID            int `json:"pid"`
	VirtualAddress int `json:"virtual_address"`
}

// Eviction identifica la página que fue desalojada para liberar un marco.
type Eviction struct {
	PID  int `json:"pid"`
	Page int `json:"page"`
}

// AccessResult es lo que devuelve una traducción exitosa.
type AccessResult struct {
	PID             int       `json:"pid"`
	VirtualAddress  int       `json:"virtual_address"`
	PhysicalAddress int       `json:"physical_address"`
	Fault           bool      `json:"fault"`
	PageNumber      int       `json:"page_number"`
	Offset          int       `json:"offset"`
	Frame           int       `json:"frame"`
	Time            int       `json:"time"`
	Evicted         *Eviction `json:"evicted,omitempty"`
	TotalAccesses   int       `json:"total_accesses"`
	TotalFaults     int       `json:"total_faults"`
}

// AccessOutcome junta un acceso de una traza con su resultado o su error.
type AccessOutcome struct {
	Request AccessRequest
	Result  AccessResult
	Err     error
}

// FaultEvent se emite después de cada page fault, con la memoria física ya actualizada.
type FaultEvent struct {
	Result AccessResult
	Frames []FrameSnapshot
}

// Stats son los contadores de la simulación.
type Stats struct {
	Clock         int     `json:"clock"`
	TotalAccesses int     `json:"total_accesses"`
	TotalFaults   int     `json:"total_faults"`
	Hits          int     `json:"hits"`
	Evictions     int     `json:"evictions"`
	FaultRate     float64 `json:"fault_rate"`
}

// TraceOutcome es la forma en que se responde por HTTP cada acceso de una traza.
type TraceOutcome struct {
	Request AccessRequest `json:"request"`
	Result  *AccessResult `json:"result,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// NewTraceOutcome convierte un AccessOutcome para enviarlo en JSON.
func NewTraceOutcome(outcome AccessOutcome) TraceOutcome {
	if outcome.Err != nil {
		return TraceOutcome{Request: outcome.Request, Error: outcome.Err.Error()}
	}
	result := outcome.Result
	return TraceOutcome{Request: outcome.Request, Result: &result}
}
