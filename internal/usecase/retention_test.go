package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetention_EvictsOldest(t *testing.T) {
	r := NewRetention(3)
	for _, p := range []int{1, 2, 3, 4} {
		r.Push(p)
	}
	assert.Equal(t, []int{2, 3, 4}, r.Items())
	assert.False(t, r.Contains(1), "evicted position still retained")
	assert.True(t, r.Contains(4))
	assert.Equal(t, 3, r.Len())
}

func TestRetention_ZeroCapacity(t *testing.T) {
	r := NewRetention(-2)
	r.Push(7)
	assert.Zero(t, r.Capacity())
	assert.Zero(t, r.Len())
	assert.False(t, r.Contains(7))
}

func TestRetentionCapacity(t *testing.T) {
	cases := []struct{ retention, view, want int }{
		{10, 100, 10},
		{10, 5, 4},
		{10, 1, 0},
		{10, 0, 0},
		{0, 50, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, retentionCapacity(c.retention, c.view), "retention=%d view=%d", c.retention, c.view)
	}
}
