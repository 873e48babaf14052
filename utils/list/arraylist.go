package list

import (
	"fmt"
	"sync"
)

// List define las operaciones de cola que usan las trazas de accesos.
type List[T any] interface {
	Add(item T)               // Añadir un elemento al final de la lista
	Dequeue() (T, error)      // Eliminar y devolver el primer elemento de la lista
	ForEach(callback func(T)) // A cada elemento de la lista se le va aplicar la función que le pase
	Get(index int) (T, error) // Obtener un elemento a partir de un índice dado
	GetAll() []T              // Retorna todos los elementos que se encuentra en la lista
	Size() int                // Retornar el tamaño de la lista
}

// ArrayList implements List
type ArrayList[T any] struct {
	mu    sync.RWMutex
	items []T
}

// NewArrayList crea una lista con los elementos recibidos, en el mismo orden.
//
// Ejemplo:
//
//	func main() {
//		accesses := list.NewArrayList(0, 4096, 8192)
//		fmt.Println(accesses.Size()) //output: 3
//	}
func NewArrayList[T any](items ...T) *ArrayList[T] {
	list := &ArrayList[T]{items: make([]T, 0, len(items))}
	list.items = append(list.items, items...)
	return list
}

// Add inserta un elemento al final de la lista.
//
// Parámetros:
//   - item: Elemento a insertar.
//
// Ejemplo:
//
//	func main() {
//		list := &ArrayList[int]{}
//		list.Add(10)
//		list.Add(20)
//	}
func (list *ArrayList[T]) Add(item T) {
	list.mu.Lock() // Bloqueo exclusivo para evitar cambios simultáneos
	defer list.mu.Unlock()

	list.items = append(list.items, item)
}

// Dequeue elimina y devuelve el primer elemento de la cola.
// En caso de que la lista se encuentre vacía retorna el valor "cero" del tipo T y un error indicando que está vacía.
//
// Ejemplo:
//
//	func main() {
//		numbers := &list.ArrayList[int]{}
//		numbers.Add(10)
//		numbers.Add(20)
//		value, _ := numbers.Dequeue()
//		fmt.Println("Valor: ", value) //output: 10
//	}
func (list *ArrayList[T]) Dequeue() (T, error) {
	list.mu.Lock()
	defer list.mu.Unlock()

	if len(list.items) == 0 {
		var zero T
		return zero, fmt.Errorf("list is empty")
	}
	value := list.items[0]
	list.items = list.items[1:]
	return value, nil
}

// Get devuelve el elemento en el índice proporcionado.
//
// Ejemplo:
//
//	func main() {
//		list := NewArrayList(10, 20, 30)
//		value, _ := list.Get(1)
//		fmt.Println("Valor: ", value) //Output: 20
//	}
func (list *ArrayList[T]) Get(index int) (T, error) {
	list.mu.RLock() //Bloqueo de solo lectura: permite otras lecturas concurrentes
	defer list.mu.RUnlock()

	if index < 0 || index >= len(list.items) {
		var zero T
		return zero, fmt.Errorf("index out of range: %d", index)
	}
	return list.items[index], nil
}

// Size devuelve el tamaño de la lista.
func (list *ArrayList[T]) Size() int {
	list.mu.RLock()
	defer list.mu.RUnlock()

	return len(list.items)
}

// ForEach aplica callback a cada elemento de la lista, en orden.
// El callback no debe modificar la lista, ya que se ejecuta con el lock de lectura tomado.
func (list *ArrayList[T]) ForEach(callback func(T)) {
	list.mu.RLock()
	defer list.mu.RUnlock()

	for _, item := range list.items {
		callback(item)
	}
}

// GetAll retorna una copia de todos los elementos que se encuentran en la lista
func (list *ArrayList[T]) GetAll() []T {
	list.mu.RLock()
	defer list.mu.RUnlock()

	// Copia del slice para que modificaciones externas no afecten la lista interna
	itemsCopy := make([]T, len(list.items))
	copy(itemsCopy, list.items)
	return itemsCopy
}
