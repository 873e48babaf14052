package list

import (
	"testing"
)

func TestArrayList_Add(t *testing.T) {
	list := &ArrayList[int]{}

	list.Add(10)
	list.Add(20)

	if list.Size() != 2 {
		t.Errorf("Expected size 2, got %d", list.Size())
	}
}

func TestArrayList_Size(t *testing.T) {
	list := &ArrayList[int]{}

	if list.Size() != 0 {
		t.Errorf("Expected size 0, got %d", list.Size())
	}

	list.Add(10)

	if list.Size() != 1 {
		t.Errorf("Expected size 1, got %d", list.Size())
	}
}

func TestNewArrayList(t *testing.T) {
	list := NewArrayList(0, 4096, 8192)

	if list.Size() != 3 {
		t.Errorf("Expected size 3, got %d", list.Size())
	}

	value, err := list.Get(2)
	if err != nil || value != 8192 {
		t.Errorf("Expected 8192 at index 2, got %d", value)
	}
}

func TestArrayList_Dequeue(t *testing.T) {
	list := &ArrayList[int]{}

	list.Add(10)
	list.Add(20)
	list.Add(30)

	value, err := list.Dequeue()
	if err != nil || value != 10 {
		t.Errorf("Expected 10 at index 0, got %d", value)
	}

	if list.Size() != 2 {
		t.Errorf("Expected size 2, got %d", list.Size())
	}

	value, err = list.Get(0)
	if err != nil || value != 20 {
		t.Errorf("Expected 20 at index 0, got %d", value)
	}
}

func TestArrayList_Dequeue_ThrowError(t *testing.T) {
	list := &ArrayList[int]{}

	_, err := list.Dequeue()
	if err == nil {
		t.Errorf("Expected error, got nil")
	}
}

func TestArrayList_Get_ThrowError(t *testing.T) {
	list := NewArrayList(10)

	if _, err := list.Get(1); err == nil {
		t.Errorf("Expected error for index 1, got nil")
	}
	if _, err := list.Get(-1); err == nil {
		t.Errorf("Expected error for index -1, got nil")
	}
}

func TestArrayList_GetAll_ReturnsCopy(t *testing.T) {
	list := NewArrayList(1, 2, 3)

	items := list.GetAll()
	items[0] = 100

	value, _ := list.Get(0)
	if value != 1 {
		t.Errorf("Expected internal item to stay 1, got %d", value)
	}
}

func TestArrayList_ForEach(t *testing.T) {
	list := NewArrayList(1, 2, 3)

	sum := 0
	list.ForEach(func(number int) {
		sum += number
	})

	if sum != 6 {
		t.Errorf("Expected sum 6, got %d", sum)
	}
}
