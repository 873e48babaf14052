package helpers

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Diogouema/ProjSistemaOperacional/memoria/models"
	"github.com/Diogouema/ProjSistemaOperacional/memoria/services"
	"github.com/Diogouema/ProjSistemaOperacional/utils/config"
	"github.com/Diogouema/ProjSistemaOperacional/utils/log"
)

// crea un directorio en el path especificado.
func CreateDirectory(dir string) {
	err := os.MkdirAll(dir, os.ModePerm)

	if err != nil {
		slog.Error(fmt.Sprintf("Error al crear el directorio %s: %v", dir, err))
		return
	}

	slog.Debug(fmt.Sprintf("Directorio %s creado o ya existía.", dir))
}

// InitMemory carga la configuración y el logger del módulo. Si no hay procesos declarados
// usa el proceso 1 con 8 páginas.
func InitMemory(configPath string, logPath string) models.Config {
	var memoryConfig models.Config
	config.InitConfig(configPath, &memoryConfig)
	log.InitLogger(logPath, memoryConfig.LogLevel)

	slog.Debug(fmt.Sprintf("Port Memory: %d", memoryConfig.PortMemory))

	if len(memoryConfig.Processes) == 0 {
		memoryConfig.Processes = []models.ProcessConfig{DefaultProcess()}
	}
	if memoryConfig.ReportPath != "" {
		CreateDirectory(memoryConfig.ReportPath)
	}
	return memoryConfig
}

// DefaultProcess es el proceso con el que arranca el simulador si la configuración no declara ninguno.
func DefaultProcess() models.ProcessConfig {
	return models.ProcessConfig{PID: 1, Pages: 8}
}

// NewSharedSimulator arma el simulador con la configuración y declara los procesos.
func NewSharedSimulator(memoryConfig models.Config) (*services.SharedSimulator, error) {
	sim, err := services.NewSimulator(memoryConfig.Simulation())
	if err != nil {
		return nil, err
	}
	for _, process := range memoryConfig.Processes {
		if err := sim.AddProcess(process.PID, process.Pages); err != nil {
			return nil, err
		}
	}
	return services.NewSharedSimulator(sim), nil
}

func GetReportName(algorithm models.Algorithm) string {
	timestamp := time.Now().Format("20060102-150405")
	return fmt.Sprintf("%s-%s.yaml", algorithm, timestamp)
}

// SaveReport escribe el reporte en reportPath y retorna la ruta del archivo.
func SaveReport(reportPath string, report models.Report) (string, error) {
	CreateDirectory(reportPath)
	path := filepath.Join(reportPath, GetReportName(report.Algorithm))

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := services.WriteReport(file, report); err != nil {
		return "", err
	}
	slog.Info(fmt.Sprintf("Reporte guardado en %s", path))
	return path, nil
}
