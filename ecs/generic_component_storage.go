package ecs

import (
	"iter"
	"reflect"
)

// ComponentRegistry maps component types to the factory that builds their
// column storage. Every Storage owns exactly one registry.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentStorage
}

// NewComponentRegistry returns an empty registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentStorage),
	}
}

// RegisterComponent makes T usable as an entity component. Spawning an
// entity with an unregistered type panics.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.factories[reflect.TypeFor[T]()] = func() iComponentStorage {
		return &genericComponentStorage[T]{}
	}
}

func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentStorage {
	return r.factories[t]
}

const blockSize = 64

// genericComponentStorage keeps values of T in fixed size blocks so that
// pointers handed out by Get stay valid while the column grows.
type genericComponentStorage[T any] struct {
	blocks    [][blockSize]T
	filled    [][blockSize]bool
	freeSlots []int
	nextIndex int
}

func (cs *genericComponentStorage[T]) slot(index int) (int, int, bool) {
	if index < 0 {
		return 0, 0, false
	}
	block, offset := index/blockSize, index%blockSize
	return block, offset, block < len(cs.blocks)
}

// Append stores item (a T or *T) and returns its slot, reusing freed slots
// first. It returns -1 when item has the wrong type.
func (cs *genericComponentStorage[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		return -1
	}

	var index int
	if n := len(cs.freeSlots); n > 0 {
		index = cs.freeSlots[n-1]
		cs.freeSlots = cs.freeSlots[:n-1]
	} else {
		index = cs.nextIndex
		cs.nextIndex++
		if index/blockSize >= len(cs.blocks) {
			cs.blocks = append(cs.blocks, [blockSize]T{})
			cs.filled = append(cs.filled, [blockSize]bool{})
		}
	}

	block, offset, _ := cs.slot(index)
	cs.blocks[block][offset] = value
	cs.filled[block][offset] = true
	return index
}

// Get returns a *T for an occupied slot, nil otherwise.
func (cs *genericComponentStorage[T]) Get(index int) any {
	block, offset, ok := cs.slot(index)
	if !ok || !cs.filled[block][offset] {
		return nil
	}
	return &cs.blocks[block][offset]
}

// Delete zeroes the slot and queues it for reuse.
func (cs *genericComponentStorage[T]) Delete(index int) {
	block, offset, ok := cs.slot(index)
	if !ok || !cs.filled[block][offset] {
		return
	}
	var zero T
	cs.blocks[block][offset] = zero
	cs.filled[block][offset] = false
	cs.freeSlots = append(cs.freeSlots, index)
}

func (cs *genericComponentStorage[T]) Has(index int) bool {
	block, offset, ok := cs.slot(index)
	return ok && cs.filled[block][offset]
}

// Len is the number of occupied slots.
func (cs *genericComponentStorage[T]) Len() int {
	return cs.nextIndex - len(cs.freeSlots)
}

func (cs *genericComponentStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < cs.nextIndex; i++ {
			if cs.filled[i/blockSize][i%blockSize] && !yield(i) {
				return
			}
		}
	}
}
