package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// InitConfig lee el archivo de configuración y carga sus valores en config. Si no puede leerlo hace panic,
// ya que ningún módulo puede arrancar sin su configuración.
//
// Parámetros:
//   - filePath: ubicación donde se encuentra el archivo de configuración
//   - config: puntero a cualquier estructura con tags json
//
// Ejemplo:
//
//	func main() {
//		var memoryConfig models.Config
//		config.InitConfig("./memoria/configs/memoria.json", &memoryConfig)
//	}
func InitConfig(filePath string, config interface{}) {
	if err := LoadConfig(filePath, config); err != nil {
		panic(fmt.Errorf("error al configurar el archivo %s: %w", filePath, err))
	}
}

// LoadConfig es la versión de InitConfig que retorna el error en lugar de cortar la ejecución.
func LoadConfig(filePath string, config interface{}) error {
	configFile, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer configFile.Close()

	jsonParser := json.NewDecoder(configFile)
	jsonParser.DisallowUnknownFields()

	return jsonParser.Decode(config)
}

// SaveConfig escribe la configuración en formato JSON indentado, pisando el archivo si ya existía.
func SaveConfig(filePath string, config interface{}) error {
	output, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, append(output, '\n'), 0666)
}
