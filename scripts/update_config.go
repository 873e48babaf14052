package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Diogouema/ProjSistemaOperacional/utils/config"
)

// Para su uso se debe posicionar en la carpeta scripts
// > ./update_config.exe ip_memory 192.168.1.100
// > ./update_config.exe port_memory 8010 algorithm LRU
// > ./update_config.exe page_size 1024 memory_size 4096

// modules son las carpetas cuyas configs se actualizan.
var modules = []string{"memoria", "traza"}

func main() {
	// Verificar que se pasen argumentos en pares: clave1 valor1 clave2 valor2 ...
	if len(os.Args) < 3 || len(os.Args)%2 != 1 {
		fmt.Println("Uso: update_config <clave_1> <valor_1> [<clave_2> <valor_2> ...]")
		fmt.Println("Ejemplo: update_config ip_memory 192.168.0.10 algorithm LRU")
		return
	}

	updates := parseUpdates(os.Args[1:])

	fmt.Println("Valores a actualizar:")
	for k, v := range updates {
		fmt.Printf("  %s: %v\n", k, v)
	}

	for _, module := range modules {
		moduleConfigPath := filepath.Join("..", module, "configs")
		fmt.Printf("\nProcesando módulo: %s (en %s)\n", module, moduleConfigPath)
		updateDirectory(moduleConfigPath, updates)
	}

	fmt.Println("\nProceso de actualización de configuraciones finalizado.")
}

// parseUpdates arma el mapa clave -> valor. Los valores que son JSON válido (números, booleanos)
// se guardan con su tipo; el resto queda como string.
func parseUpdates(args []string) map[string]interface{} {
	updates := make(map[string]interface{})
	for i := 0; i+1 < len(args); i += 2 {
		var parsedValue interface{}
		if err := json.Unmarshal([]byte(args[i+1]), &parsedValue); err != nil {
			parsedValue = args[i+1]
		}
		updates[args[i]] = parsedValue
	}
	return updates
}

// updateDirectory recorre los .json de dir y actualiza las claves que ya existen en cada archivo.
func updateDirectory(dir string, updates map[string]interface{}) {
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			fmt.Printf("  Error al acceder %s: %v\n", path, err)
			return nil
		}
		if info.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		modified, err := updateFile(path, updates)
		if err != nil {
			fmt.Printf("  Error en el archivo %s: %v\n", path, err)
			return nil
		}
		if modified {
			fmt.Printf("  El archivo %s ha sido actualizado correctamente.\n", path)
		} else {
			fmt.Printf("  No se encontraron claves a actualizar en %s.\n", path)
		}
		return nil
	})

	if err != nil {
		fmt.Printf("Error al buscar archivos en la carpeta %s: %v\n", dir, err)
	}
}

func updateFile(path string, updates map[string]interface{}) (bool, error) {
	fileContent, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	var data map[string]interface{}
	if err := json.Unmarshal(fileContent, &data); err != nil {
		return false, err
	}

	modified := false
	for updateKey, updateValue := range updates {
		// Solo se pisan claves que ya existen en el archivo
		if _, ok := data[updateKey]; ok {
			data[updateKey] = updateValue
			fmt.Printf("    Modificada '%s' en %s a '%v'\n", updateKey, path, updateValue)
			modified = true
		}
	}
	if !modified {
		return false, nil
	}

	return true, config.SaveConfig(path, data)
}
