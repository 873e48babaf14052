package services

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Diogouema/ProjSistemaOperacional/memoria/models"
)

// RenderHeader imprime la configuración actual del simulador.
func RenderHeader(w io.Writer, cfg models.SimulationConfig) {
	fmt.Fprintln(w, "===== SIMULADOR DE PAGINACAO =====")
	fmt.Fprintf(w, "Tamanho da pagina: %d bytes\n", cfg.PageSize)
	fmt.Fprintf(w, "Memoria fisica: %d bytes (%d frames)\n", cfg.MemorySize, cfg.FrameCount())
	fmt.Fprintf(w, "Algoritmo: %s\n\n", cfg.Algorithm)
}

// RenderFrameTable dibuja la memoria física en el instante t:
//
//	 -------  -------  -------
//	| P1-0   | P1-1   |  ----  |
//	 -------  -------  -------
func RenderFrameTable(w io.Writer, t int, frames []models.FrameSnapshot) {
	border := strings.Repeat(" ------- ", len(frames))

	fmt.Fprintf(w, "Tempo t=%d\n", t)
	fmt.Fprintln(w, "Estado da Memoria Fisica:")
	fmt.Fprintln(w, border)

	var row strings.Builder
	for _, frame := range frames {
		if frame.Free {
			row.WriteString("|  ----  ")
			continue
		}
		fmt.Fprintf(&row, "| %-7s", frame.Label())
	}
	row.WriteString("|")

	fmt.Fprintln(w, row.String())
	fmt.Fprintln(w, border)
	fmt.Fprintln(w)
}

// RenderOutcome imprime el detalle de un acceso de la traza. frames es la foto tomada en el page fault
// (nil en los hits) y se dibuja después de la carga.
func RenderOutcome(w io.Writer, index int, outcome models.AccessOutcome, frames []models.FrameSnapshot) {
	request := outcome.Request
	result := outcome.Result

	fmt.Fprintf(w, "\n--- Acesso %d: Virtual=%d ---\n", index, request.VirtualAddress)

	if outcome.Err != nil {
		switch {
		case errors.Is(outcome.Err, models.ErrUnknownProcess):
			fmt.Fprintf(w, "Processo %d nao encontrado!\n", request.PID)
		case errors.Is(outcome.Err, models.ErrPageOutOfRange):
			fmt.Fprintf(w, "Endereco %d fora do espaco do Processo %d!\n", request.VirtualAddress, request.PID)
		default:
			fmt.Fprintf(w, "Erro: %v\n", outcome.Err)
		}
		return
	}

	if result.Fault {
		fmt.Fprintf(w, "Tempo t=%d: [PAGE FAULT] Pagina %d do Processo %d\n", result.Time, result.PageNumber, result.PID)
		if result.Evicted != nil {
			fmt.Fprintf(w, "Tempo t=%d: Substituindo Pagina %d do Processo %d no Frame %d\n",
				result.Time, result.Evicted.Page, result.Evicted.PID, result.Frame)
		}
		fmt.Fprintf(w, "Tempo t=%d: Carregando Pagina %d do Processo %d no Frame %d\n",
			result.Time, result.PageNumber, result.PID, result.Frame)
		if frames != nil {
			RenderFrameTable(w, result.Time, frames)
		}
	} else {
		fmt.Fprintf(w, "Tempo t=%d: [HIT] Pagina %d do Processo %d no Frame %d\n",
			result.Time, result.PageNumber, result.PID, result.Frame)
	}

	fmt.Fprintf(w, "Endereco Virtual: %d -> Endereco Fisico: %d\n", result.VirtualAddress, result.PhysicalAddress)
	fmt.Fprintf(w, "Detalhes: Pagina=%d, Desloc=%d, Frame=%d\n", result.PageNumber, result.Offset, result.Frame)
}

// RenderResults imprime los totales de la corrida.
func RenderResults(w io.Writer, stats models.Stats) {
	fmt.Fprintln(w, "\n===== RESULTADOS =====")
	fmt.Fprintf(w, "Total de acessos: %d\n", stats.TotalAccesses)
	fmt.Fprintf(w, "Page faults: %d\n", stats.TotalFaults)
	fmt.Fprintf(w, "Taxa de page faults: %.2f%%\n", stats.FaultRate)
}
