package services

import (
	"fmt"
	"log/slog"

	"github.com/Diogouema/ProjSistemaOperacional/memoria/models"
)

// ClockStart es el valor del reloj lógico después de crear o reiniciar el simulador.
const ClockStart = 1

// FaultListener recibe cada page fault junto con la foto de la memoria física.
type FaultListener func(event models.FaultEvent)

// Simulator es dueño de todo el estado de la simulación: procesos con sus tablas de páginas,
// tabla de marcos, reloj lógico y contadores.
//
// No tiene locks: quien lo use desde varias goroutines tiene que serializar las llamadas
// (ver SharedSimulator).
type Simulator struct {
	config    models.SimulationConfig
	policy    ReplacementPolicy
	frames    []models.Frame
	processes map[int]*models.Process
	pids      []int // orden de declaración

	clock          int
	totalAccesses  int
	totalFaults    int
	evictions      int
	evictionCounts map[models.Eviction]int

	listeners []FaultListener
}

// NewSimulator crea un simulador vacío (sin procesos) con la configuración dada.
func NewSimulator(cfg models.SimulationConfig) (*Simulator, error) {
	sim := &Simulator{
		processes:      make(map[int]*models.Process),
		evictionCounts: make(map[models.Eviction]int),
	}
	if err := sim.Configure(cfg); err != nil {
		return nil, err
	}
	return sim, nil
}

func validateConfig(cfg models.SimulationConfig) error {
	if cfg.PageSize <= 0 {
		return fmt.Errorf("%w: tamaño de página %d", models.ErrInvalidConfiguration, cfg.PageSize)
	}
	if cfg.MemorySize <= 0 {
		return fmt.Errorf("%w: tamaño de memoria %d", models.ErrInvalidConfiguration, cfg.MemorySize)
	}
	if cfg.FrameCount() == 0 {
		return fmt.Errorf("%w: la memoria (%d bytes) no alcanza para un marco de %d bytes",
			models.ErrInvalidConfiguration, cfg.MemorySize, cfg.PageSize)
	}
	if !cfg.Algorithm.Valid() {
		return fmt.Errorf("%w: %w: %v", models.ErrInvalidConfiguration, models.ErrUnknownAlgorithm, cfg.Algorithm)
	}
	return nil
}

// Configure aplica una nueva configuración. Si no es válida retorna ErrInvalidConfiguration y
// mantiene la anterior. Si es válida rearma la tabla de marcos con la nueva cantidad y reinicia la simulación.
func (s *Simulator) Configure(cfg models.SimulationConfig) error {
	if err := validateConfig(cfg); err != nil {
		slog.Warn("Configuración rechazada, se mantiene la anterior", "error", err)
		return err
	}

	policy, err := NewReplacementPolicy(cfg.Algorithm)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrInvalidConfiguration, err)
	}

	if frameCount := cfg.FrameCount(); frameCount != len(s.frames) {
		s.frames = make([]models.Frame, frameCount)
	}
	s.config = cfg
	s.policy = policy
	s.Reset()

	slog.Info(fmt.Sprintf("Memoria configurada - Página: %d bytes - Memoria física: %d bytes (%d marcos) - Algoritmo: %s",
		cfg.PageSize, cfg.MemorySize, len(s.frames), cfg.Algorithm))
	return nil
}

// AddProcess declara un proceso con numPages páginas virtuales, todas sin cargar.
func (s *Simulator) AddProcess(pid int, numPages int) error {
	if pid < 0 {
		return fmt.Errorf("%w: %d", models.ErrInvalidPID, pid)
	}
	if numPages <= 0 {
		return fmt.Errorf("%w: PID %d con %d páginas", models.ErrInvalidPageCount, pid, numPages)
	}
	if _, exists := s.processes[pid]; exists {
		return fmt.Errorf("%w: PID %d", models.ErrDuplicateProcess, pid)
	}

	s.processes[pid] = models.NewProcess(pid, numPages)
	s.pids = append(s.pids, pid)

	slog.Info(fmt.Sprintf("## PID: %d - Proceso Creado - Páginas: %d", pid, numPages))
	return nil
}

// Subscribe registra un listener que se llama después de cada page fault.
func (s *Simulator) Subscribe(listener FaultListener) {
	s.listeners = append(s.listeners, listener)
}

func (s *Simulator) Config() models.SimulationConfig {
	return s.config
}

func (s *Simulator) FrameCount() int {
	return len(s.frames)
}

// Clock es el valor que va a tener el próximo acceso.
func (s *Simulator) Clock() int {
	return s.clock
}

// Processes retorna los PIDs en orden de declaración.
func (s *Simulator) Processes() []int {
	pids := make([]int, len(s.pids))
	copy(pids, s.pids)
	return pids
}

// PageTable retorna una copia de la tabla de páginas del proceso.
func (s *Simulator) PageTable(pid int) ([]models.PageEntry, error) {
	process, ok := s.processes[pid]
	if !ok {
		return nil, fmt.Errorf("%w: PID %d", models.ErrUnknownProcess, pid)
	}
	pages := make([]models.PageEntry, len(process.Pages))
	copy(pages, process.Pages)
	return pages, nil
}

// Snapshot es la foto de la tabla de marcos: quién ocupa cada marco, o libre.
func (s *Simulator) Snapshot() []models.FrameSnapshot {
	snapshot := make([]models.FrameSnapshot, len(s.frames))
	for i, frame := range s.frames {
		snapshot[i] = models.FrameSnapshot{
			Frame:    i,
			Free:     frame.IsFree(),
			PID:      frame.Owner,
			Page:     frame.Page,
			LoadTime: frame.LoadTime,
		}
	}
	return snapshot
}

func (s *Simulator) Stats() models.Stats {
	stats := models.Stats{
		Clock:         s.clock,
		TotalAccesses: s.totalAccesses,
		TotalFaults:   s.totalFaults,
		Hits:          s.totalAccesses - s.totalFaults,
		Evictions:     s.evictions,
	}
	if s.totalAccesses > 0 {
		stats.FaultRate = float64(s.totalFaults) * 100.0 / float64(s.totalAccesses)
	}
	return stats
}

// EvictionCounts retorna cuántas veces fue desalojada cada página desde el último reinicio.
func (s *Simulator) EvictionCounts() map[models.Eviction]int {
	counts := make(map[models.Eviction]int, len(s.evictionCounts))
	for page, count := range s.evictionCounts {
		counts[page] = count
	}
	return counts
}

// entryOf retorna la entrada de la página que ocupa el marco, o nil si está libre.
func (s *Simulator) entryOf(frame int) *models.PageEntry {
	occupant := s.frames[frame]
	if occupant.IsFree() {
		return nil
	}
	process, ok := s.processes[occupant.Owner]
	if !ok || occupant.Page < 0 || occupant.Page >= process.NumPages() {
		return nil
	}
	return &process.Pages[occupant.Page]
}
