package queue

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityQueue_Empty(t *testing.T) {
	pq := NewMax(4)

	assert.Equal(t, 0, pq.Len())

	_, ok := pq.Top()
	assert.False(t, ok)

	_, ok = pq.Pop()
	assert.False(t, ok)
}

func TestPriorityQueue_PopOrder(t *testing.T) {
	pq := NewMax(8)

	pq.Push(Item{Key: "a", Distance: 0.5})
	pq.Push(Item{Key: "b", Distance: 0.1})
	pq.Push(Item{Key: "c", Distance: 0.9})
	pq.Push(Item{Key: "d", Distance: 0.3})

	top, ok := pq.Top()
	require.True(t, ok)
	assert.Equal(t, "c", top.Key)

	var keys []string
	for pq.Len() > 0 {
		item, ok := pq.Pop()
		require.True(t, ok)
		keys = append(keys, item.Key)
	}

	// Worst first.
	assert.Equal(t, []string{"c", "a", "d", "b"}, keys)
}

func TestPriorityQueue_BoundedReplace(t *testing.T) {
	// The k-NN usage pattern: keep the k closest by evicting the worst.
	const k = 5

	rng := rand.New(rand.NewSource(42)) // nolint gosec
	distances := make([]float32, 100)
	for i := range distances {
		distances[i] = rng.Float32()
	}

	pq := NewMax(k)
	for _, d := range distances {
		if pq.Len() < k {
			pq.Push(Item{Distance: d})
			continue
		}
		if top, _ := pq.Top(); d < top.Distance {
			pq.Pop()
			pq.Push(Item{Distance: d})
		}
	}

	require.Equal(t, k, pq.Len())

	got := make([]float32, 0, k)
	for pq.Len() > 0 {
		item, _ := pq.Pop()
		got = append(got, item.Distance)
	}

	sort.Slice(distances, func(i, j int) bool { return distances[i] < distances[j] })

	// Pop yields the k smallest distances, worst first.
	for i, d := range got {
		assert.Equal(t, distances[k-1-i], d)
	}
}
