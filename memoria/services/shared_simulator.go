package services

import (
	"sync"

	"github.com/Diogouema/ProjSistemaOperacional/memoria/models"
	"github.com/Diogouema/ProjSistemaOperacional/utils/list"
)

// SharedSimulator serializa el acceso a un Simulator con un único mutex.
// El menú de consola y los handlers HTTP corren en goroutines distintas y usan siempre este wrapper.
type SharedSimulator struct {
	mu  sync.Mutex
	sim *Simulator
}

func NewSharedSimulator(sim *Simulator) *SharedSimulator {
	return &SharedSimulator{sim: sim}
}

// Do ejecuta fn con el lock tomado. fn no debe guardar el *Simulator.
func (s *SharedSimulator) Do(fn func(sim *Simulator)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.sim)
}

func (s *SharedSimulator) Translate(pid int, virtualAddress int) (models.AccessResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.Translate(pid, virtualAddress)
}

func (s *SharedSimulator) AddProcess(pid int, numPages int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.AddProcess(pid, numPages)
}

func (s *SharedSimulator) Configure(cfg models.SimulationConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.Configure(cfg)
}

func (s *SharedSimulator) Config() models.SimulationConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.Config()
}

func (s *SharedSimulator) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sim.Reset()
}

func (s *SharedSimulator) Snapshot() []models.FrameSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.Snapshot()
}

func (s *SharedSimulator) Stats() models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.Stats()
}

func (s *SharedSimulator) Report() models.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BuildReport(s.sim)
}

// RunTrace reinicia la memoria y corre la traza completa sin soltar el lock,
// así ningún otro acceso se intercala en la corrida.
func (s *SharedSimulator) RunTrace(trace *list.ArrayList[models.AccessRequest]) []models.AccessOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sim.Reset()
	return s.sim.Run(trace)
}
