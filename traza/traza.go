package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Diogouema/ProjSistemaOperacional/traza/models"
	"github.com/Diogouema/ProjSistemaOperacional/traza/services"
	"github.com/Diogouema/ProjSistemaOperacional/utils/config"
	"github.com/Diogouema/ProjSistemaOperacional/utils/log"
)

const (
	//NO borrar el comentario de ConfigPath
	ConfigPath = "traza/configs/traza.json" //"./configs/traza.json"
	LogPath    = "./logs/traza.log"         //"./traza.log"
)

// Uso: traza [archivo.csv]
func main() {
	var trazaConfig models.Config
	config.InitConfig(ConfigPath, &trazaConfig)
	log.InitLogger(LogPath, trazaConfig.LogLevel)

	if len(os.Args) > 1 {
		trazaConfig.TracePath = os.Args[1]
	}
	slog.Debug(fmt.Sprintf("Memoria: %s:%d - Traza: %s", trazaConfig.IpMemory, trazaConfig.PortMemory, trazaConfig.TracePath))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signal.Notify(models.Shutdown, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-models.Shutdown
		slog.Debug("Señal recibida, cortando la traza", "signal", sig)
		cancel()
	}()

	summary, err := services.Run(ctx, &trazaConfig)
	if err != nil {
		slog.Error(fmt.Sprintf("error reproduciendo la traza: %v", err))
		os.Exit(1)
	}

	fmt.Printf("Accesos: %d - Rechazados: %d - Page faults: %d - Taxa de page faults: %.2f%%\n",
		summary.Replayed, summary.Rejected, summary.Stats.TotalFaults, summary.Stats.FaultRate)
}
