package handlers

import (
	"net/http"

	"github.com/Diogouema/ProjSistemaOperacional/utils/web/server"
)

// HandshakeHandler se usa para chequear la conexión al servidor
//
// Parámetros:
//   - message: el mensaje que querés devolver en la respuesta
//
// Ejemplo:
//
//	func main() {
//		mux := http.NewServeMux()
//		mux.HandleFunc("GET /", handlers.HandshakeHandler("Bienvenido al simulador de paginación"))
//	}
func HandshakeHandler(message string) func(http.ResponseWriter, *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		server.SendJsonResponse(writer, message)
	}
}
