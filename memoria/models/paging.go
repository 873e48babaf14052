package models

import "fmt"

const (
	// Unmapped es el marco de una página que no está presente en memoria.
	Unmapped = -1
	// FreeFrame es el dueño de un marco libre.
	FreeFrame = -1
)

// PageEntry es una entrada de la tabla de páginas de un proceso.
type PageEntry struct {
	Present    bool `json:"present"`
	Frame      int  `json:"frame"`
	LoadTime   int  `json:"load_time"`
	LastAccess int  `json:"last_access"`
}

// EmptyPageEntry es el estado de una página que nunca se cargó o que se reinició.
func EmptyPageEntry() PageEntry {
	return PageEntry{Present: false, Frame: Unmapped}
}

// Frame es una entrada de la tabla de marcos. Owner y Page forman el índice inverso marco -> página.
// LoadTime es el instante en que se cargó el ocupante actual; es el que usa FIFO.
type Frame struct {
	Owner    int
	Page     int
	LoadTime int
}

// EmptyFrame es un marco libre.
func EmptyFrame() Frame {
	return Frame{Owner: FreeFrame, Page: Unmapped}
}

func (f Frame) IsFree() bool {
	return f.Owner == FreeFrame
}

// Process es un proceso declarado con su tabla de páginas de tamaño fijo.
type Process struct {
	PID   int
	Pages []PageEntry
}

func NewProcess(pid int, numPages int) *Process {
	pages := make([]PageEntry, numPages)
	for i := range pages {
		pages[i] = EmptyPageEntry()
	}
	return &Process{PID: pid, Pages: pages}
}

func (p *Process) NumPages() int {
	return len(p.Pages)
}

// FrameSnapshot es la foto de un marco que se expone para visualizar la memoria física.
type FrameSnapshot struct {
	Frame    int  `json:"frame" yaml:"frame"`
	Free     bool `json:"free" yaml:"free"`
	PID      int  `json:"pid" yaml:"pid"`
	Page     int  `json:"page" yaml:"page"`
	LoadTime int  `json:"load_time" yaml:"load_time"`
}

// Label es el texto con el que se dibuja el marco: P<pid>-<página>, o ---- si está libre.
func (s FrameSnapshot) Label() string {
	if s.Free {
		return "----"
	}
	return fmt.Sprintf("P%d-%d", s.PID, s.Page)
}
