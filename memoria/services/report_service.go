package services

import (
	"fmt"
	"io"

	"github.com/Diogouema/ProjSistemaOperacional/memoria/models"
	"gopkg.in/yaml.v2"
)

// BuildReport arma el resumen de la simulación con el estado actual del simulador.
func BuildReport(sim *Simulator) models.Report {
	cfg := sim.Config()
	stats := sim.Stats()

	report := models.Report{
		Algorithm:             cfg.Algorithm,
		PageSize:              cfg.PageSize,
		MemorySize:            cfg.MemorySize,
		Frames:                sim.FrameCount(),
		TotalAccesses:         stats.TotalAccesses,
		PageFaults:            stats.TotalFaults,
		Hits:                  stats.Hits,
		Evictions:             stats.Evictions,
		FaultRatePercent:      stats.FaultRate,
		PerPageEvictionCounts: make(map[string]int),
		FinalFrames:           sim.Snapshot(),
	}

	for page, count := range sim.EvictionCounts() {
		report.PerPageEvictionCounts[fmt.Sprintf("P%d-%d", page.PID, page.Page)] = count
	}

	for _, pid := range sim.Processes() {
		pages, _ := sim.PageTable(pid)
		resident := 0
		for _, entry := range pages {
			if entry.Present {
				resident++
			}
		}
		report.Processes = append(report.Processes, models.ProcessReport{
			PID:           pid,
			Pages:         len(pages),
			ResidentPages: resident,
		})
	}

	return report
}

// WriteReport escribe el reporte en YAML.
func WriteReport(w io.Writer, report models.Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("error al serializar el reporte: %w", err)
	}
	_, err = w.Write(data)
	return err
}
