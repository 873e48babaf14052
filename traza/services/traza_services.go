package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	memoryModels "github.com/Diogouema/ProjSistemaOperacional/memoria/models"
	memoryServices "github.com/Diogouema/ProjSistemaOperacional/memoria/services"
	"github.com/Diogouema/ProjSistemaOperacional/traza/models"
	"github.com/Diogouema/ProjSistemaOperacional/utils/list"
	"github.com/Diogouema/ProjSistemaOperacional/utils/web/client"
)

// LoadTrace lee la traza configurada. Sin trace_path se usa la secuencia de prueba del primer proceso.
func LoadTrace(trazaConfig *models.Config) (*list.ArrayList[memoryModels.AccessRequest], error) {
	if trazaConfig.TracePath != "" {
		return memoryServices.LoadTraceFile(trazaConfig.TracePath)
	}
	pid := 1
	if len(trazaConfig.Processes) > 0 {
		pid = trazaConfig.Processes[0].PID
	}
	return memoryServices.DefaultTrace(pid), nil
}

// rejected indica si memoria respondió que el pedido no es válido (proceso o dirección).
func rejected(err error) (*client.StatusError, bool) {
	var statusErr *client.StatusError
	if !errors.As(err, &statusErr) {
		return nil, false
	}
	switch statusErr.Code {
	case http.StatusBadRequest, http.StatusNotFound, http.StatusConflict:
		return statusErr, true
	}
	return statusErr, false
}

// DeclareProcesses crea en memoria los procesos de la configuración. Si un proceso ya existe se sigue con el próximo.
func DeclareProcesses(trazaConfig *models.Config) error {
	for _, process := range trazaConfig.Processes {
		body, err := json.Marshal(process)
		if err != nil {
			return err
		}

		response, err := client.DoRequest(trazaConfig.PortMemory, trazaConfig.IpMemory, "POST", "memoria/proceso", body)
		if response != nil {
			response.Body.Close()
		}
		if statusErr, ok := rejected(err); ok && statusErr.Code == http.StatusConflict {
			slog.Warn(fmt.Sprintf("## PID: %d - El proceso ya existía en memoria", process.PID))
			continue
		}
		if err != nil {
			return fmt.Errorf("no se pudo crear el proceso %d: %w", process.PID, err)
		}
		slog.Info(fmt.Sprintf("## PID: %d - Proceso Creado - Páginas: %d", process.PID, process.Pages))
	}
	return nil
}

// ResetMemory deja la memoria sin páginas cargadas y con los contadores en cero.
func ResetMemory(trazaConfig *models.Config) error {
	response, err := client.DoRequest(trazaConfig.PortMemory, trazaConfig.IpMemory, "POST", "memoria/reset")
	if response != nil {
		response.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("no se pudo reiniciar la memoria: %w", err)
	}
	slog.Debug("Memoria reiniciada antes de la traza")
	return nil
}

// UndeclaredPIDs retorna, en orden de aparición, los PIDs de la traza que no están en la configuración.
func UndeclaredPIDs(trazaConfig *models.Config, trace *list.ArrayList[memoryModels.AccessRequest]) []int {
	declared := make(map[int]bool, len(trazaConfig.Processes))
	for _, process := range trazaConfig.Processes {
		declared[process.PID] = true
	}

	var undeclared []int
	trace.ForEach(func(request memoryModels.AccessRequest) {
		if !declared[request.PID] {
			declared[request.PID] = true
			undeclared = append(undeclared, request.PID)
		}
	})
	return undeclared
}

// Translate pide a memoria la traducción de un acceso.
func Translate(trazaConfig *models.Config, request memoryModels.AccessRequest) (memoryModels.AccessResult, error) {
	var result memoryModels.AccessResult

	body, err := json.Marshal(request)
	if err != nil {
		return result, err
	}

	response, err := client.DoRequest(trazaConfig.PortMemory, trazaConfig.IpMemory, "POST", "memoria/traducir", body)
	if err != nil {
		if response != nil {
			detail, _ := io.ReadAll(response.Body)
			response.Body.Close()
			return result, fmt.Errorf("%w: %s", err, string(detail))
		}
		return result, err
	}
	defer response.Body.Close()

	err = json.NewDecoder(response.Body).Decode(&result)
	return result, err
}

// Replay envía cada acceso de la traza a memoria, en orden. Los accesos que memoria rechaza se
// cuentan y se sigue; cualquier otro error corta la corrida.
func Replay(ctx context.Context, trazaConfig *models.Config, trace *list.ArrayList[memoryModels.AccessRequest]) (models.Summary, error) {
	var summary models.Summary

	for trace.Size() > 0 {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		request, _ := trace.Dequeue()

		result, err := Translate(trazaConfig, request)
		if _, ok := rejected(err); ok {
			summary.Rejected++
			slog.Warn(fmt.Sprintf("## PID: %d - Acceso rechazado - Dir. Virtual: %d", request.PID, request.VirtualAddress), "error", err)
			continue
		}
		if err != nil {
			return summary, err
		}

		summary.Replayed++
		slog.Info(fmt.Sprintf("## PID: %d - Acceso - Dir. Virtual: %d - Dir. Física: %d - Página: %d - Marco: %d - Page Fault: %t",
			result.PID, result.VirtualAddress, result.PhysicalAddress, result.PageNumber, result.Frame, result.Fault))
		if result.Evicted != nil {
			slog.Debug(fmt.Sprintf("## PID: %d - Página %d desalojada del marco %d", result.Evicted.PID, result.Evicted.Page, result.Frame))
		}
	}
	return summary, nil
}

// FetchStats consulta los contadores de memoria.
func FetchStats(trazaConfig *models.Config) (memoryModels.Stats, error) {
	var stats memoryModels.Stats

	response, err := client.DoRequest(trazaConfig.PortMemory, trazaConfig.IpMemory, "GET", "memoria/estadisticas")
	if response != nil {
		defer response.Body.Close()
	}
	if err != nil {
		return stats, err
	}

	err = json.NewDecoder(response.Body).Decode(&stats)
	return stats, err
}

// Run hace la corrida completa: declara los procesos, reinicia la memoria, reproduce la traza y
// trae las estadísticas, que quedan contando solo los accesos de esta corrida.
func Run(ctx context.Context, trazaConfig *models.Config) (models.Summary, error) {
	trace, err := LoadTrace(trazaConfig)
	if err != nil {
		return models.Summary{}, fmt.Errorf("no se pudo cargar la traza: %w", err)
	}

	for _, pid := range UndeclaredPIDs(trazaConfig, trace) {
		slog.Warn(fmt.Sprintf("## PID: %d - El proceso no está en la configuración, sus accesos pueden ser rechazados", pid))
	}

	if err := DeclareProcesses(trazaConfig); err != nil {
		return models.Summary{}, err
	}

	if err := ResetMemory(trazaConfig); err != nil {
		return models.Summary{}, err
	}

	summary, err := Replay(ctx, trazaConfig, trace)
	if err != nil {
		return summary, err
	}

	summary.Stats, err = FetchStats(trazaConfig)
	if err != nil {
		return summary, err
	}

	slog.Info(fmt.Sprintf("Traza finalizada - Accesos: %d - Rechazados: %d - Page faults: %d - Tasa: %.2f%%",
		summary.Replayed, summary.Rejected, summary.Stats.TotalFaults, summary.Stats.FaultRate))
	return summary, nil
}
