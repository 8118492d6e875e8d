package usecase

import "slices"

// Retention is a bounded FIFO of recently asked record positions.
// Pushing beyond capacity evicts the oldest position.
type Retention struct {
	capacity int
	items    []int
}

func NewRetention(capacity int) *Retention {
	capacity = max(capacity, 0)
	return &Retention{capacity: capacity, items: make([]int, 0, capacity)}
}

func (r *Retention) Push(position int) {
	if r.capacity == 0 {
		return
	}
	if len(r.items) == r.capacity {
		copy(r.items, r.items[1:])
		r.items = r.items[:len(r.items)-1]
	}
	r.items = append(r.items, position)
}

// Contains implements sampler.Exclusion.
func (r *Retention) Contains(position int) bool {
	return slices.Contains(r.items, position)
}

func (r *Retention) Len() int      { return len(r.items) }
func (r *Retention) Capacity() int { return r.capacity }

// Items returns the positions oldest first.
func (r *Retention) Items() []int {
	return slices.Clone(r.items)
}
