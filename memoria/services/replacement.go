package services

import (
	"fmt"

	"github.com/Diogouema/ProjSistemaOperacional/memoria/models"
)

// ReplacementPolicy elige el marco víctima cuando no quedan marcos libres y
// mantiene la metadata de antigüedad/uso de las páginas cargadas.
type ReplacementPolicy interface {
	Algorithm() models.Algorithm
	// SelectVictim recibe la tabla de marcos completa (sin marcos libres) y retorna el índice de la víctima.
	// entryOf devuelve la entrada de tabla de páginas que ocupa un marco.
	SelectVictim(frames []models.Frame, entryOf func(frame int) *models.PageEntry) int
	// Touch se llama en cada hit.
	Touch(entry *models.PageEntry, now int)
}

// NewReplacementPolicy construye la política del algoritmo pedido.
func NewReplacementPolicy(algorithm models.Algorithm) (ReplacementPolicy, error) {
	switch algorithm {
	case models.FIFO:
		return fifoPolicy{}, nil
	case models.LRU:
		return lruPolicy{}, nil
	default:
		return nil, fmt.Errorf("%w: %v", models.ErrUnknownAlgorithm, algorithm)
	}
}

// fifoPolicy desaloja el marco cargado hace más tiempo. El instante de carga se toma del marco,
// que es el recurso que envejece; la página sólo lo copia para reportarlo.
type fifoPolicy struct{}

func (fifoPolicy) Algorithm() models.Algorithm {
	return models.FIFO
}

func (fifoPolicy) SelectVictim(frames []models.Frame, _ func(frame int) *models.PageEntry) int {
	victim := -1
	for i, frame := range frames {
		if frame.IsFree() {
			continue
		}
		// Con < estricto, ante empate queda el marco de menor índice.
		if victim == -1 || frame.LoadTime < frames[victim].LoadTime {
			victim = i
		}
	}
	return victim
}

// En FIFO un hit no cambia nada.
func (fifoPolicy) Touch(_ *models.PageEntry, _ int) {}

// lruPolicy desaloja el marco cuya página fue referenciada hace más tiempo.
type lruPolicy struct{}

func (lruPolicy) Algorithm() models.Algorithm {
	return models.LRU
}

func (lruPolicy) SelectVictim(frames []models.Frame, entryOf func(frame int) *models.PageEntry) int {
	victim := -1
	oldest := 0
	for i := range frames {
		entry := entryOf(i)
		if entry == nil || !entry.Present {
			continue
		}
		if victim == -1 || entry.LastAccess < oldest {
			victim = i
			oldest = entry.LastAccess
		}
	}
	return victim
}

func (lruPolicy) Touch(entry *models.PageEntry, now int) {
	entry.LastAccess = now
}
