package marina

import (
	"slices"
)

// Capacity is the maximum number of boats the marina can manage.
const Capacity = 120

// Registry is the ordered collection of the marina boats.
//
// Boats are always sorted by name, case-insensitively. Names are not unique:
// operations by name act on the first match.
type Registry struct {
	boats []*Boat
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{boats: make([]*Boat, 0, Capacity)}
}

// Len returns the number of boats.
func (r *Registry) Len() int { return len(r.boats) }

// Boats returns the boats in name order.
//
// The slice is a copy, but boats are shared with the registry.
func (r *Registry) Boats() []*Boat { return slices.Clone(r.boats) }

// Insert adds a boat keeping the name order. A boat whose name equals
// existing ones is inserted after them.
//
// It returns ErrCapacity, and does nothing, if the registry is full.
func (r *Registry) Insert(b *Boat) error {
	if len(r.boats) >= Capacity {
		return ErrCapacity
	}
	// Walk back from the end, shifting every successor by one.
	i := len(r.boats)
	r.boats = append(r.boats, nil)
	for ; i > 0 && compareNames(r.boats[i-1].Name, b.Name) > 0; i-- {
		r.boats[i] = r.boats[i-1]
	}
	r.boats[i] = b
	return nil
}

// Find returns the first boat named 'name', case-insensitively.
func (r *Registry) Find(name string) (*Boat, bool) {
	i := r.index(name)
	if i < 0 {
		return nil, false
	}
	return r.boats[i], true
}

// Remove deletes the first boat named 'name', case-insensitively.
// It returns ErrNotFound if there is none.
func (r *Registry) Remove(name string) error {
	i := r.index(name)
	if i < 0 {
		return ErrNotFound
	}
	r.boats = slices.Delete(r.boats, i, i+1)
	return nil
}

// Sort restores the name order. Boats with equal names keep their relative order.
func (r *Registry) Sort() {
	slices.SortStableFunc(r.boats, func(a, b *Boat) int {
		return compareNames(a.Name, b.Name)
	})
}

// Total returns the sum owed for all boats.
func (r *Registry) Total() Money {
	var total Money
	for _, b := range r.boats {
		total = total.Add(b.Owed)
	}
	return total
}

func (r *Registry) index(name string) int {
	return slices.IndexFunc(r.boats, func(b *Boat) bool {
		return compareNames(b.Name, name) == 0
	})
}
