package semantic

import (
	"fmt"

	"fortio.org/safecast"
)

// arena is an append-only slice with index 0 reserved as the "none" sentinel.
type arena[T any] struct {
	name string
	data []T
}

func newArena[T any](name string, capacity int) arena[T] {
	if capacity <= 0 {
		capacity = 16
	}
	return arena[T]{
		name: name,
		data: make([]T, 1, capacity+1),
	}
}

// push appends v and returns its index.
func (a *arena[T]) push(v T) uint32 {
	idx, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("%s arena overflow: %w", a.name, err))
	}
	a.data = append(a.data, v)
	return idx
}

// at returns a pointer to the element or nil for the sentinel and
// out-of-range indices.
func (a *arena[T]) at(idx uint32) *T {
	if idx == 0 || int(idx) >= len(a.data) {
		return nil
	}
	return &a.data[idx]
}

func (a *arena[T]) len() int { return len(a.data) - 1 }

// last returns the index of the most recently pushed element.
func (a *arena[T]) last() uint32 {
	idx, err := safecast.Conv[uint32](len(a.data) - 1)
	if err != nil {
		panic(fmt.Errorf("%s arena overflow: %w", a.name, err))
	}
	return idx
}
