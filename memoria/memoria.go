package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	memoryHandler "github.com/Diogouema/ProjSistemaOperacional/memoria/handlers"
	"github.com/Diogouema/ProjSistemaOperacional/memoria/helpers"
	"github.com/Diogouema/ProjSistemaOperacional/utils/menu"
	"github.com/Diogouema/ProjSistemaOperacional/utils/web/server"
)

const (
	//NO borrar el comentario de ConfigPath
	ConfigPath = "memoria/configs/memoria.json" //"./configs/memoria.json"
	LogPath    = "./logs/memoria.log"           //"./memoria.log"
)

func main() {
	memoryConfig := helpers.InitMemory(ConfigPath, LogPath)

	shared, err := helpers.NewSharedSimulator(memoryConfig)
	if err != nil {
		slog.Error(fmt.Sprintf("error inicializando el simulador: %v", err))
		panic(err)
	}

	// Con port_memory en 0 el simulador queda solo con el menú de consola.
	if memoryConfig.PortMemory > 0 {
		mux := http.NewServeMux()
		memoryHandler.RegisterRoutes(mux, shared)

		go func() {
			if err := server.InitServer(memoryConfig.PortMemory, mux); err != nil {
				slog.Error(fmt.Sprintf("error initializing server: %v", err))
			}
		}()
	}
	slog.Info("Memoria lista")

	console := menu.NewConsole(os.Stdin, os.Stdout)
	helpers.NewSimulationMenu(console, shared, memoryConfig).Run()

	slog.Info("Simulador finalizado")
}
