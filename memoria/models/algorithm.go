package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Algorithm es el algoritmo de reemplazo de páginas.
type Algorithm int

const (
	FIFO Algorithm = iota
	LRU
)

var algorithmNames = map[Algorithm]string{
	FIFO: "FIFO",
	LRU:  "LRU",
}

// Algorithms lista los algoritmos soportados en el orden del menú.
func Algorithms() []Algorithm {
	return []Algorithm{FIFO, LRU}
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Valid indica si es uno de los algoritmos soportados.
func (a Algorithm) Valid() bool {
	_, ok := algorithmNames[a]
	return ok
}

// ParseAlgorithm acepta el nombre ("FIFO", "lru") o el código numérico del menú ("0", "1").
func ParseAlgorithm(s string) (Algorithm, error) {
	value := strings.ToUpper(strings.TrimSpace(s))
	for algorithm, name := range algorithmNames {
		if value == name || value == fmt.Sprint(int(algorithm)) {
			return algorithm, nil
		}
	}
	return FIFO, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

func (a Algorithm) MarshalJSON() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return json.Marshal(a.String())
}

func (a *Algorithm) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownAlgorithm, string(data))
	}
	parsed, err := ParseAlgorithm(name)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML hace que los reportes muestren el nombre del algoritmo.
func (a Algorithm) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}
