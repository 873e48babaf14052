package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Diogouema/ProjSistemaOperacional/memoria/models"
	"github.com/Diogouema/ProjSistemaOperacional/memoria/services"
	"github.com/Diogouema/ProjSistemaOperacional/utils/web/handlers"
	"github.com/Diogouema/ProjSistemaOperacional/utils/web/server"
)

// RegisterRoutes registra en el mux todas las rutas del módulo de memoria.
func RegisterRoutes(mux *http.ServeMux, shared *services.SharedSimulator) {
	mux.HandleFunc("GET /", handlers.HandshakeHandler("Bienvenido al simulador de paginación"))
	mux.HandleFunc("GET /memoria", handlers.HandshakeHandler("Memoria en funcionamiento 🚀"))
	mux.HandleFunc("GET /config/memoria", MemoryConfigHandler(shared))
	mux.HandleFunc("PUT /config/memoria", UpdateConfigHandler(shared))
	mux.HandleFunc("POST /memoria/proceso", CreateProcessHandler(shared))
	mux.HandleFunc("POST /memoria/traducir", TranslateHandler(shared))
	mux.HandleFunc("POST /memoria/traza", RunTraceHandler(shared))
	mux.HandleFunc("GET /memoria/marcos", FramesHandler(shared))
	mux.HandleFunc("GET /memoria/estadisticas", StatsHandler(shared))
	mux.HandleFunc("POST /memoria/reset", ResetHandler(shared))
	mux.HandleFunc("GET /memoria/reporte", ReportHandler(shared))
}

// statusOf traduce los errores del simulador a códigos HTTP.
func statusOf(err error) int {
	switch {
	case errors.Is(err, models.ErrUnknownProcess):
		return http.StatusNotFound
	case errors.Is(err, models.ErrDuplicateProcess):
		return http.StatusConflict
	case errors.Is(err, models.ErrPageOutOfRange),
		errors.Is(err, models.ErrInvalidConfiguration),
		errors.Is(err, models.ErrInvalidPageCount),
		errors.Is(err, models.ErrInvalidPID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func sendError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusOf(err))
}

func MemoryConfigHandler(shared *services.SharedSimulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		server.SendJsonResponse(w, shared.Config())
	}
}

// UpdateConfigHandler reconfigura el simulador. Reconfigurar siempre reinicia la memoria.
func UpdateConfigHandler(shared *services.SharedSimulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := shared.Config()
		if !server.DecodeJsonRequest(w, r, &cfg) {
			return
		}

		if err := shared.Configure(cfg); err != nil {
			sendError(w, err)
			return
		}
		server.SendJsonResponse(w, shared.Config())
	}
}

func CreateProcessHandler(shared *services.SharedSimulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var request models.ProcessConfig
		if !server.DecodeJsonRequest(w, r, &request) {
			return
		}

		if err := shared.AddProcess(request.PID, request.Pages); err != nil {
			slog.Warn(fmt.Sprintf("## PID: %d - No se pudo crear el proceso", request.PID), "error", err)
			sendError(w, err)
			return
		}
		server.SendJsonResponse(w, request)
	}
}

func TranslateHandler(shared *services.SharedSimulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var request models.AccessRequest
		if !server.DecodeJsonRequest(w, r, &request) {
			return
		}

		result, err := shared.Translate(request.PID, request.VirtualAddress)
		if err != nil {
			sendError(w, err)
			return
		}
		server.SendJsonResponse(w, result)
	}
}

// RunTraceHandler recibe una traza en CSV ("pid,direccion_virtual" por línea), reinicia la memoria
// y la corre completa. Responde el resultado de cada acceso en orden.
func RunTraceHandler(shared *services.SharedSimulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		trace, err := services.LoadTrace(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		outcomes := shared.RunTrace(trace)
		response := make([]models.TraceOutcome, 0, len(outcomes))
		for _, outcome := range outcomes {
			response = append(response, models.NewTraceOutcome(outcome))
		}
		slog.Info(fmt.Sprintf("Traza ejecutada - Accesos: %d", len(outcomes)))
		server.SendJsonResponse(w, response)
	}
}

func FramesHandler(shared *services.SharedSimulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		server.SendJsonResponse(w, shared.Snapshot())
	}
}

func StatsHandler(shared *services.SharedSimulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		server.SendJsonResponse(w, shared.Stats())
	}
}

func ResetHandler(shared *services.SharedSimulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		shared.Reset()
		w.WriteHeader(http.StatusOK)
	}
}

// ReportHandler responde el reporte de la simulación en YAML.
func ReportHandler(shared *services.SharedSimulator) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-yaml")
		if err := services.WriteReport(w, shared.Report()); err != nil {
			slog.Error("Error al generar el reporte", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}
