package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Console agrupa la entrada y salida que comparten todos los menús de un módulo.
// Los submenús deben crearse desde la misma Console para no perder lo que ya se leyó de la entrada.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{reader: bufio.NewReader(in), out: out}
}

// Out es el writer donde los menús imprimen.
func (c *Console) Out() io.Writer {
	return c.out
}

// ReadLine imprime el label y lee una línea completa, sin el salto de línea.
// Si la entrada terminó sin datos retorna io.EOF.
func (c *Console) ReadLine(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadInt lee una línea y la convierte a entero.
func (c *Console) ReadInt(label string) (int, error) {
	line, err := c.ReadLine(label)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(line)
}

// Pause espera un ENTER.
func (c *Console) Pause() {
	_, _ = c.ReadLine("\nPressione ENTER para continuar...")
}

type option struct {
	name   string
	action func()
}

// Menu es una lista numerada de opciones; la opción 0 siempre es la de salida.
type Menu struct {
	console   *Console
	title     string
	exitLabel string
	header    func(io.Writer)
	options   []option
}

// Create arma un menú vacío sobre la consola.
func (c *Console) Create(title string, exitLabel string) *Menu {
	return &Menu{console: c, title: title, exitLabel: exitLabel}
}

// SetHeader define lo que se imprime antes del título en cada vuelta del menú.
func (m *Menu) SetHeader(header func(io.Writer)) {
	m.header = header
}

// Add agrega una opción; se numeran desde 1 en el orden en que se agregan.
func (m *Menu) Add(name string, action func()) {
	m.options = append(m.options, option{name: name, action: action})
}

// Activate muestra el menú una vez y ejecuta la opción elegida.
// Retorna false cuando se elige la salida o se termina la entrada.
func (m *Menu) Activate() bool {
	out := m.console.out
	if m.header != nil {
		m.header(out)
	}
	fmt.Fprintf(out, "===== %s =====\n", m.title)
	for i, opt := range m.options {
		fmt.Fprintf(out, "%d. %s\n", i+1, opt.name)
	}
	fmt.Fprintf(out, "0. %s\n", m.exitLabel)

	choice, err := m.console.ReadInt("Escolha: ")
	if errors.Is(err, io.EOF) {
		return false
	}
	if err != nil || choice < 0 || choice > len(m.options) {
		fmt.Fprintln(out, "Opcao invalida!")
		return true
	}
	if choice == 0 {
		return false
	}

	m.options[choice-1].action()
	return true
}

// Loop activa el menú hasta que se elija la salida.
func (m *Menu) Loop() {
	for m.Activate() {
	}
}

// SliceSelect lista los elementos y retorna el índice elegido, o -1 si la elección no es válida.
func SliceSelect[T any](c *Console, items []T) int {
	for i, item := range items {
		fmt.Fprintf(c.out, "%d - %v\n", i, item)
	}
	choice, err := c.ReadInt("Escolha: ")
	if err != nil || choice < 0 || choice >= len(items) {
		return -1
	}
	return choice
}
