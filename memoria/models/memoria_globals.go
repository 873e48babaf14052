package models

// Config es el archivo memoria/configs/memoria.json.
type Config struct {
	IpMemory   string          `json:"ip_memory"`
	PortMemory int             `json:"port_memory"`
	PageSize   int             `json:"page_size"`
	MemorySize int             `json:"memory_size"`
	Algorithm  Algorithm       `json:"algorithm"`
	Processes  []ProcessConfig `json:"processes"`
	TracePath  string          `json:"trace_path"`
	ReportPath string          `json:"report_path"`
	LogLevel   string          `json:"log_level"`
}

// ProcessConfig declara un proceso y la cantidad de páginas virtuales que tiene.
type ProcessConfig struct {
	PID   int `json:"pid"`
	Pages int `json:"pages"`
}

// SimulationConfig es la parte de la configuración que consume el motor de paginación.
type SimulationConfig struct {
	PageSize   int       `json:"page_size"`
	MemorySize int       `json:"memory_size"`
	Algorithm  Algorithm `json:"algorithm"`
}

// Simulation extrae la configuración del motor.
func (c Config) Simulation() SimulationConfig {
	return SimulationConfig{
		PageSize:   c.PageSize,
		MemorySize: c.MemorySize,
		Algorithm:  c.Algorithm,
	}
}

// FrameCount es la cantidad de marcos de la memoria física.
// Si el tamaño de memoria no es múltiplo del de página, el resto se descarta.
func (c SimulationConfig) FrameCount() int {
	if c.PageSize <= 0 {
		return 0
	}
	return c.MemorySize / c.PageSize
}

// DefaultSimulationConfig es la configuración con la que arranca el simulador si no se indica otra:
// páginas de 4KB, 12KB de memoria física (3 marcos) y FIFO.
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		PageSize:   4096,
		MemorySize: 12288,
		Algorithm:  FIFO,
	}
}
