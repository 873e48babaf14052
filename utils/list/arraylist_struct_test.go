package list

import (
	"testing"
)

type access struct {
	pid     int
	address int
}

var accesses ArrayList[access]

func TestArrayList(t *testing.T) {
	setupAccesses()

	if accesses.Size() != 3 {
		t.Errorf("Expected size 3, got %d", accesses.Size())
	}

	value, err := accesses.Dequeue()
	if err != nil || value.address != 0 {
		t.Errorf("Expected address 0 at index 0, got %d", value.address)
	}

	if accesses.Size() != 2 {
		t.Errorf("Expected size 2, got %d", accesses.Size())
	}

	value, err = accesses.Get(0)
	if err != nil || value.address != 4096 {
		t.Errorf("Expected address 4096 at index 0, got %d", value.address)
	}
}

func setupAccesses() {
	accesses = ArrayList[access]{}
	for i := 0; i < 3; i++ {
		accesses.Add(access{
			pid:     1,
			address: i * 4096,
		})
	}
}
