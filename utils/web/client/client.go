package client

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// DoRequest realiza peticiones HTTP (GET, POST, PUT, DELETE, etc.) contra otro módulo.
// Retorna la respuesta del servidor. Si el status no es 200 retorna la respuesta junto con un error,
// así quien llama puede leer el body con el detalle.
//
// Parámetros:
//   - port: el puerto al que se hará la petición
//   - ip: la IP o dominio del servidor
//   - metodo: metodo HTTP
//   - query: parte final de la URL
//   - bodies ...[]byte: (opcional) body del request, puede pasarse vacío.
//
// Ejemplo:
//
//	func main() {
//		response, err := client.DoRequest(8002, "127.0.0.1", "GET", "memoria/estadisticas")
//		if err != nil {
//			slog.Error(fmt.Sprintf("Ocurrió un error: %v", err))
//			return
//		}
//		defer response.Body.Close()
//	}
func DoRequest(port int, ip string, metodo string, query string, bodies ...[]byte) (*http.Response, error) {
	url := fmt.Sprintf("http://%s:%d/%s", ip, port, query)

	req, err := http.NewRequest(metodo, url, ifBody(bodies...))
	if err != nil {
		slog.Error(fmt.Sprintf("error creando request a ip: %s puerto: %d", ip, port))
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	respuesta, err := httpClient.Do(req)
	if err != nil {
		slog.Error(fmt.Sprintf("error enviando request a ip: %s puerto: %d - %v", ip, port, err))
		return nil, err
	}

	if respuesta.StatusCode != http.StatusOK {
		errorMsg := &StatusError{Code: respuesta.StatusCode, Query: query}
		slog.Debug(errorMsg.Error())
		return respuesta, errorMsg
	}

	return respuesta, nil
}

// StatusError indica que el servidor respondió con un status distinto de 200.
type StatusError struct {
	Code  int
	Query string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status error en %s: %d %s", e.Query, e.Code, http.StatusText(e.Code))
}

func ifBody(bodies ...[]byte) io.Reader {
	if len(bodies) == 0 {
		return nil
	}
	return bytes.NewBuffer(bodies[0])
}
