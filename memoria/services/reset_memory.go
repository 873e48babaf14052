package services

import (
	"log/slog"

	"github.com/Diogouema/ProjSistemaOperacional/memoria/models"
)

// Reset libera todos los marcos, marca todas las páginas como no presentes, pone los contadores
// en cero y el reloj en ClockStart. Los procesos siguen declarados; sus tablas se limpian en el lugar.
// Llamarlo dos veces seguidas deja el mismo estado que llamarlo una vez.
func (s *Simulator) Reset() {
	for i := range s.frames {
		s.frames[i] = models.EmptyFrame()
	}

	for _, pid := range s.pids {
		pages := s.processes[pid].Pages
		for i := range pages {
			pages[i] = models.EmptyPageEntry()
		}
	}

	s.clock = ClockStart
	s.totalAccesses = 0
	s.totalFaults = 0
	s.evictions = 0
	clear(s.evictionCounts)

	slog.Debug("Memoria reinicializada", "marcos", len(s.frames), "procesos", len(s.pids))
}
