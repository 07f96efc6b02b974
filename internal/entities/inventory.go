package entities

import (
	"fmt"
	"strings"
)

// Named is what Inventory needs from the things it stores
type Named interface {
	GetName() string
	String() string
}

// Inventory is a bounded container looked up by name
type Inventory[T Named] struct {
	items    []T
	capacity int
}

// NewInventory creates an empty inventory holding at most capacity entries
func NewInventory[T Named](capacity int) *Inventory[T] {
	return &Inventory[T]{capacity: capacity}
}

// Add appends an entry, returning false when the inventory is full
func (inv *Inventory[T]) Add(it T) bool {
	if len(inv.items) >= inv.capacity {
		return false
	}
	inv.items = append(inv.items, it)
	return true
}

// RemoveByName removes every entry with the name and reports whether any was removed
func (inv *Inventory[T]) RemoveByName(name string) bool {
	kept := inv.items[:0]
	for _, it := range inv.items {
		if it.GetName() != name {
			kept = append(kept, it)
		}
	}
	removed := len(kept) != len(inv.items)
	clear(inv.items[len(kept):])
	inv.items = kept
	return removed
}

// FindByName returns a pointer to the first entry with the name
func (inv *Inventory[T]) FindByName(name string) (*T, bool) {
	for i := range inv.items {
		if inv.items[i].GetName() == name {
			return &inv.items[i], true
		}
	}
	return nil, false
}

// Snapshot returns a copy of the entries
func (inv *Inventory[T]) Snapshot() []T {
	return append([]T(nil), inv.items...)
}

func (inv *Inventory[T]) Len() int {
	return len(inv.items)
}

func (inv *Inventory[T]) Capacity() int {
	return inv.capacity
}

func (inv *Inventory[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Inventory(%d/%d): ", len(inv.items), inv.capacity)
	for _, it := range inv.items {
		b.WriteString(it.String())
		b.WriteString(" ")
	}
	return b.String()
}
