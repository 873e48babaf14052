package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Diogouema/ProjSistemaOperacional/memoria/models"
	"github.com/Diogouema/ProjSistemaOperacional/utils/list"
)

// defaultAddresses es la secuencia de prueba histórica del simulador (páginas 0,1,2,0,3,4,0,1,2,3,4 con páginas de 4KB).
var defaultAddresses = []int{0, 4096, 8192, 0, 12288, 16384, 0, 4096, 8192, 12288, 16384}

// DefaultTrace arma la secuencia de prueba para el proceso indicado.
func DefaultTrace(pid int) *list.ArrayList[models.AccessRequest] {
	trace := list.NewArrayList[models.AccessRequest]()
	for _, address := range defaultAddresses {
		trace.Add(models.AccessRequest{PID: pid, VirtualAddress: address})
	}
	return trace
}

// LoadTrace lee una traza en CSV con líneas "pid,direccion_virtual".
// Se ignoran las líneas vacías, las que empiezan con # y un encabezado opcional (primera fila sin campos numéricos).
func LoadTrace(reader io.Reader) (*list.ArrayList[models.AccessRequest], error) {
	csvReader := csv.NewReader(reader)
	csvReader.Comment = '#'
	csvReader.FieldsPerRecord = 2
	csvReader.TrimLeadingSpace = true

	trace := list.NewArrayList[models.AccessRequest]()
	for line := 1; ; line++ {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("traza inválida: %w", err)
		}

		pid, pidErr := strconv.Atoi(strings.TrimSpace(record[0]))
		address, addrErr := strconv.Atoi(strings.TrimSpace(record[1]))
		if pidErr != nil || addrErr != nil {
			// Solo la primera fila puede ser encabezado, y solo si ningún campo es numérico.
			if line == 1 && pidErr != nil && addrErr != nil {
				continue
			}
			row, _ := csvReader.FieldPos(0)
			return nil, fmt.Errorf("traza inválida en la línea %d: %q", row, strings.Join(record, ","))
		}
		trace.Add(models.AccessRequest{PID: pid, VirtualAddress: address})
	}
	return trace, nil
}

// LoadTraceFile abre el archivo y lo parsea con LoadTrace.
func LoadTraceFile(path string) (*list.ArrayList[models.AccessRequest], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadTrace(file)
}
