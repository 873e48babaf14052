package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// InitLogger configura slog para escribir tanto en consola como en el archivo de log del módulo.
//
// Parámetros:
//   - logPath: la ubicación donde se va a encontrar el archivo (se crea el directorio si no existe)
//   - logLevel: nivel de logueo, este dato viene definido en el archivo de config.
//
// Ejemplo:
//
//	func main() {
//		log.InitLogger("./logs/memoria.log", "INFO")
//	}
func InitLogger(logPath string, logLevel string) {
	if dir := filepath.Dir(logPath); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			panic(err)
		}
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
	if err != nil {
		panic(err)
	}

	// La consola la usa el menú interactivo, el archivo queda como registro de la corrida.
	multiWriter := io.MultiWriter(os.Stdout, logFile)

	level, err := ConvertStringToLogLevel(logLevel)
	slog.SetDefault(slog.New(NewHandler(multiWriter, level)))

	if err != nil {
		slog.Warn(err.Error())
	}

	slog.Debug("Se ha configurado correctamente el logger", "archivo", logPath, "nivel", level.String())
}

// NewHandler arma el handler de texto que usan todos los módulos.
func NewHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
}

// ConvertStringToLogLevel traduce el nivel del archivo de config al tipo slog.Level.
// Si el nivel no existe retorna INFO junto con un error para avisarlo.
func ConvertStringToLogLevel(levelStr string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("no existe el nivel de log %q, se coloca INFO por defecto", levelStr)
	}
}
