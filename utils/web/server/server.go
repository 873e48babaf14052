package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// InitServer inicializa el servidor en el puerto indicado con el mux que recibe.
// Bloquea hasta que el servidor se cae; en caso de no poder levantarlo retorna el error.
//
// Parámetros:
//   - port: puerto donde se iniciará el servidor
//   - handler: mux con las rutas del módulo
//
// Ejemplo:
//
//	func main() {
//		mux := http.NewServeMux()
//		err := server.InitServer(memoryConfig.PortMemory, mux)
//		if err != nil {
//			panic(err)
//		}
//	}
func InitServer(port int, handler http.Handler) error {
	addr := ":" + strconv.Itoa(port)

	slog.Debug(fmt.Sprintf("Servidor escuchando en %s", addr))
	err := http.ListenAndServe(addr, handler)
	if err != nil {
		slog.Error(fmt.Sprintf("Error al escuchar en el puerto %s: %v", addr, err))
	}
	return err
}

// SendJsonResponse retorna la respuesta del servidor en formato JSON con status 200.
//
// Parámetros:
//   - writer: el http.ResponseWriter con el que se escribe la respuesta HTTP
//   - data: cualquier estructura de datos que querés enviar al cliente, se convierte automáticamente a JSON.
func SendJsonResponse(writer http.ResponseWriter, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		http.Error(writer, "Error al convertir datos a JSON", http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusOK)
	writer.Write(response)
}

// DecodeJsonRequest lee el body del request en v. Si el body no es válido responde 400 y retorna false.
func DecodeJsonRequest(writer http.ResponseWriter, request *http.Request, v interface{}) bool {
	if err := json.NewDecoder(request.Body).Decode(v); err != nil {
		slog.Warn("Request con body inválido", "ruta", request.URL.Path, "error", err)
		http.Error(writer, "body inválido: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}
