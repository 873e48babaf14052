package models

import (
	"os"

	memoryModels "github.com/Diogouema/ProjSistemaOperacional/memoria/models"
)

// Config es el archivo traza/configs/traza.json.
type Config struct {
	IpMemory   string                       `json:"ip_memory"`
	PortMemory int                          `json:"port_memory"`
	TracePath  string                       `json:"trace_path"`
	Processes  []memoryModels.ProcessConfig `json:"processes"`
	LogLevel   string                       `json:"log_level"`
}

var Shutdown = make(chan os.Signal, 1)

// Summary es lo que deja una corrida de la traza contra memoria.
type Summary struct {
	Replayed int
	Rejected int
	Stats    memoryModels.Stats
}
