package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator_traversal(t *testing.T) {
	for _, engine := range hashEngines {
		t.Run(engine, func(t *testing.T) {
			s := seqOf(t, engine, 10, 20, 30)
			var items, indices []int
			it := s.Iterator()
			assert.Equal(t, -1, it.Index(), "index before first Next")
			for it.Next() {
				items = append(items, it.Value())
				indices = append(indices, it.Index())
			}
			require.NoError(t, it.Err())
			assert.Equal(t, []int{10, 20, 30}, items)
			assert.Equal(t, []int{0, 1, 2}, indices)
			assert.False(t, it.Next(), "exhausted iterator stays exhausted")
		})
	}
}

func TestIterator_empty(t *testing.T) {
	for _, engine := range hashEngines {
		s := seqOf(t, engine)
		it := s.Iterator()
		assert.False(t, it.Next(), engine)
		assert.NoError(t, it.Err(), engine)
	}
}

func TestIterator_staleOnMutation(t *testing.T) {
	l, err := NewArrayList(WithItems(1, 2, 3, 4))
	require.NoError(t, err)

	it := l.Iterator()
	require.True(t, it.Next())
	require.Equal(t, 1, it.Value())

	_, err = l.Add(5)
	require.NoError(t, err)

	assert.False(t, it.Next(), "mutation between steps must fault, not skip or duplicate")
	assert.ErrorIs(t, it.Err(), ErrStale)
	assert.False(t, it.Next(), "staleness is terminal")
	assert.ErrorIs(t, it.Err(), ErrStale)
}

func TestIterator_staleOnDequeue(t *testing.T) {
	q, err := NewCircularQueue(WithItems(1, 2, 3))
	require.NoError(t, err)

	it := q.Iterator()
	require.True(t, it.Next())
	_, ok := q.Dequeue()
	require.True(t, ok)

	assert.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), ErrStale)
}

func TestIterator_linkedListNodeWalk(t *testing.T) {
	l, err := NewLinkedList(WithItems("a", "b", "c"))
	require.NoError(t, err)

	it := l.Iterator()
	var items []string
	for it.Next() {
		items = append(items, it.Value())
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []string{"a", "b", "c"}, items)

	// removal mid-iteration faults even though the walked node still exists
	it = l.Iterator()
	require.True(t, it.Next())
	require.True(t, l.Remove("c"))
	assert.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), ErrStale)
}

func TestIterator_readsDoNotInvalidate(t *testing.T) {
	l, err := NewArrayList(WithItems(1, 2, 3))
	require.NoError(t, err)

	it := l.Iterator()
	require.True(t, it.Next())

	// read-only operations never bump the version
	_ = l.Count()
	_ = l.Contains(2)
	_ = l.SequencedHash()
	_ = l.UnsequencedHash()
	_, err = l.At(1)
	require.NoError(t, err)

	assert.True(t, it.Next())
	assert.Equal(t, 2, it.Value())
	require.NoError(t, it.Err())
}
