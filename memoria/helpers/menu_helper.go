package helpers

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Diogouema/ProjSistemaOperacional/memoria/models"
	"github.com/Diogouema/ProjSistemaOperacional/memoria/services"
	"github.com/Diogouema/ProjSistemaOperacional/utils/list"
	"github.com/Diogouema/ProjSistemaOperacional/utils/menu"
)

// SimulationMenu es el menú de consola del simulador.
type SimulationMenu struct {
	console      *menu.Console
	shared       *services.SharedSimulator
	memoryConfig models.Config

	// fotos de la memoria por instante, solo mientras corre una simulación del menú.
	// Se accede siempre con el lock del simulador tomado.
	frames map[int][]models.FrameSnapshot
}

func NewSimulationMenu(console *menu.Console, shared *services.SharedSimulator, memoryConfig models.Config) *SimulationMenu {
	m := &SimulationMenu{console: console, shared: shared, memoryConfig: memoryConfig}
	shared.Do(func(sim *services.Simulator) {
		sim.Subscribe(func(event models.FaultEvent) {
			if m.frames != nil {
				m.frames[event.Result.Time] = event.Frames
			}
		})
	})
	return m
}

// Run muestra el menú principal hasta que se elija salir.
func (m *SimulationMenu) Run() {
	mainMenu := m.console.Create("MENU PRINCIPAL", "Sair")
	mainMenu.SetHeader(m.header)
	mainMenu.Add("Parametros", m.parameters)
	mainMenu.Add("Executar simulacao", m.simulate)
	mainMenu.Loop()
}

// header muestra la configuración vigente en cada vuelta de los menús.
func (m *SimulationMenu) header(w io.Writer) {
	services.RenderHeader(w, m.shared.Config())
}

func (m *SimulationMenu) parameters() {
	parametersMenu := m.console.Create("PARAMETROS", "Voltar")
	parametersMenu.SetHeader(m.header)
	parametersMenu.Add("Tamanho da pagina", func() {
		m.updateSize("Novo tamanho da pagina (bytes): ", func(cfg *models.SimulationConfig, value int) {
			cfg.PageSize = value
		})
	})
	parametersMenu.Add("Tamanho da memoria fisica", func() {
		m.updateSize("Novo tamanho da memoria fisica (bytes): ", func(cfg *models.SimulationConfig, value int) {
			cfg.MemorySize = value
		})
	})
	parametersMenu.Add("Algoritmo de substituicao", m.updateAlgorithm)
	parametersMenu.Loop()
}

func (m *SimulationMenu) updateSize(label string, apply func(cfg *models.SimulationConfig, value int)) {
	value, err := m.console.ReadInt(label)
	if err != nil {
		fmt.Fprintln(m.console.Out(), "Valor invalido!")
		return
	}
	cfg := m.shared.Config()
	apply(&cfg, value)
	m.configure(cfg)
}

func (m *SimulationMenu) updateAlgorithm() {
	algorithms := models.Algorithms()
	choice := menu.SliceSelect(m.console, algorithms)
	if choice < 0 {
		fmt.Fprintln(m.console.Out(), "Opcao invalida!")
		return
	}
	cfg := m.shared.Config()
	cfg.Algorithm = algorithms[choice]
	m.configure(cfg)
}

func (m *SimulationMenu) configure(cfg models.SimulationConfig) {
	if err := m.shared.Configure(cfg); err != nil {
		fmt.Fprintf(m.console.Out(), "Configuracao invalida, mantendo a anterior: %v\n", err)
		return
	}
	fmt.Fprintln(m.console.Out(), "Parametros atualizados. Memoria reiniciada.")
}

// loadTrace usa la traza configurada o, si no hay, la secuencia de prueba del primer proceso.
func (m *SimulationMenu) loadTrace() (*list.ArrayList[models.AccessRequest], error) {
	if m.memoryConfig.TracePath != "" {
		return services.LoadTraceFile(m.memoryConfig.TracePath)
	}
	pid := DefaultProcess().PID
	if len(m.memoryConfig.Processes) > 0 {
		pid = m.memoryConfig.Processes[0].PID
	}
	return services.DefaultTrace(pid), nil
}

func (m *SimulationMenu) simulate() {
	out := m.console.Out()
	defer m.console.Pause()

	trace, err := m.loadTrace()
	if err != nil {
		slog.Error("No se pudo cargar la traza", "path", m.memoryConfig.TracePath, "error", err)
		fmt.Fprintf(out, "Erro ao carregar a traza: %v\n", err)
		return
	}

	var (
		outcomes []models.AccessOutcome
		frames   map[int][]models.FrameSnapshot
		stats    models.Stats
		report   models.Report
	)
	m.shared.Do(func(sim *services.Simulator) {
		m.frames = make(map[int][]models.FrameSnapshot)
		sim.Reset()
		outcomes = sim.Run(trace)
		frames = m.frames
		m.frames = nil
		stats = sim.Stats()
		report = services.BuildReport(sim)
	})

	fmt.Fprintln(out, "\n===== SIMULACAO =====")
	for i, outcome := range outcomes {
		var snapshot []models.FrameSnapshot
		if outcome.Err == nil && outcome.Result.Fault {
			snapshot = frames[outcome.Result.Time]
		}
		services.RenderOutcome(out, i+1, outcome, snapshot)
	}
	services.RenderResults(out, stats)

	if m.memoryConfig.ReportPath == "" {
		return
	}
	path, err := SaveReport(m.memoryConfig.ReportPath, report)
	if err != nil {
		slog.Error("No se pudo guardar el reporte", "error", err)
		return
	}
	fmt.Fprintf(out, "Relatorio salvo em %s\n", path)
}
