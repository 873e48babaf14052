package services

import (
	"fmt"
	"log/slog"

	"github.com/Diogouema/ProjSistemaOperacional/memoria/models"
	"github.com/Diogouema/ProjSistemaOperacional/utils/list"
)

// Translate traduce la dirección virtual de un proceso a dirección física.
//
// Si la página no está presente hay page fault: se usa el marco libre de menor índice o, si no hay,
// el que elija la política de reemplazo, desalojando a su ocupante. Cada acceso válido (hit o fault)
// consume exactamente un instante del reloj lógico.
//
// Errores: ErrUnknownProcess si el PID no fue declarado y ErrPageOutOfRange si la dirección cae
// fuera de las páginas del proceso. En ambos casos el acceso no se cuenta y el estado no cambia.
func (s *Simulator) Translate(pid int, virtualAddress int) (models.AccessResult, error) {
	process, ok := s.processes[pid]
	if !ok {
		slog.Warn(fmt.Sprintf("## PID: %d - Proceso no encontrado", pid))
		return models.AccessResult{}, fmt.Errorf("%w: PID %d", models.ErrUnknownProcess, pid)
	}

	pageSize := s.config.PageSize
	if virtualAddress < 0 || virtualAddress/pageSize >= process.NumPages() {
		slog.Warn(fmt.Sprintf("## PID: %d - Dirección fuera de rango - Dirección: %d", pid, virtualAddress))
		return models.AccessResult{}, fmt.Errorf("%w: PID %d - dirección %d - páginas %d",
			models.ErrPageOutOfRange, pid, virtualAddress, process.NumPages())
	}

	pageNumber := virtualAddress / pageSize
	offset := virtualAddress % pageSize
	entry := &process.Pages[pageNumber]

	s.totalAccesses++
	now := s.clock
	s.clock++

	result := models.AccessResult{
		PID:            pid,
		VirtualAddress: virtualAddress,
		PageNumber:     pageNumber,
		Offset:         offset,
		Time:           now,
	}

	if entry.Present {
		s.policy.Touch(entry, now)
		slog.Debug(fmt.Sprintf("## PID: %d - HIT - Página: %d - Marco: %d - t=%d", pid, pageNumber, entry.Frame, now))
	} else {
		s.totalFaults++
		result.Fault = true
		slog.Info(fmt.Sprintf("## PID: %d - Page Fault - Página: %d - t=%d", pid, pageNumber, now))
		result.Evicted = s.load(pid, pageNumber, now)
	}

	result.Frame = entry.Frame
	result.PhysicalAddress = entry.Frame*pageSize + offset
	result.TotalAccesses = s.totalAccesses
	result.TotalFaults = s.totalFaults

	slog.Debug(fmt.Sprintf("## PID: %d - Traducción - Dir. Virtual: %d -> Dir. Física: %d (Página=%d, Desplazamiento=%d, Marco=%d)",
		pid, virtualAddress, result.PhysicalAddress, pageNumber, offset, result.Frame))

	if result.Fault {
		s.notifyFault(result)
	}
	return result, nil
}

// load trae la página a un marco y retorna la página desalojada, si hubo.
func (s *Simulator) load(pid int, pageNumber int, now int) *models.Eviction {
	var evicted *models.Eviction

	frame := s.freeFrame()
	if frame == -1 {
		frame = s.policy.SelectVictim(s.frames, s.entryOf)
		evicted = s.evict(frame)
	}

	s.frames[frame] = models.Frame{Owner: pid, Page: pageNumber, LoadTime: now}

	entry := &s.processes[pid].Pages[pageNumber]
	entry.Present = true
	entry.Frame = frame
	entry.LoadTime = s.frames[frame].LoadTime
	entry.LastAccess = now

	slog.Info(fmt.Sprintf("## PID: %d - Carga - Página: %d - Marco: %d - t=%d", pid, pageNumber, frame, now))
	return evicted
}

// freeFrame retorna el marco libre de menor índice, o -1 si la memoria está llena.
func (s *Simulator) freeFrame() int {
	for i, frame := range s.frames {
		if frame.IsFree() {
			return i
		}
	}
	return -1
}

// evict saca de memoria a la página que ocupa el marco.
func (s *Simulator) evict(frame int) *models.Eviction {
	occupant := s.frames[frame]
	if entry := s.entryOf(frame); entry != nil {
		entry.Present = false
		entry.Frame = models.Unmapped
	}
	s.frames[frame] = models.EmptyFrame()

	evicted := models.Eviction{PID: occupant.Owner, Page: occupant.Page}
	s.evictions++
	s.evictionCounts[evicted]++

	slog.Info(fmt.Sprintf("## PID: %d - Desalojo - Página: %d - Marco: %d", occupant.Owner, occupant.Page, frame))
	return &evicted
}

func (s *Simulator) notifyFault(result models.AccessResult) {
	if len(s.listeners) == 0 {
		return
	}
	event := models.FaultEvent{Result: result, Frames: s.Snapshot()}
	for _, listener := range s.listeners {
		listener(event)
	}
}

// Run consume la traza en orden y traduce cada acceso. Un acceso con error no corta la corrida.
func (s *Simulator) Run(trace *list.ArrayList[models.AccessRequest]) []models.AccessOutcome {
	outcomes := make([]models.AccessOutcome, 0, trace.Size())
	for {
		request, err := trace.Dequeue()
		if err != nil {
			break
		}
		result, err := s.Translate(request.PID, request.VirtualAddress)
		outcomes = append(outcomes, models.AccessOutcome{Request: request, Result: result, Err: err})
	}
	return outcomes
}
