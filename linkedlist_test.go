package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkedList_endOperations(t *testing.T) {
	l, err := NewLinkedList[string]()
	require.NoError(t, err)

	_, ok := l.First()
	assert.False(t, ok)
	_, ok = l.Last()
	assert.False(t, ok)
	_, ok = l.RemoveFirst()
	assert.False(t, ok)
	_, ok = l.RemoveLast()
	assert.False(t, ok)
	assert.Zero(t, l.Version(), "empty-end removals are no-ops")

	added, err := l.Add("b")
	require.NoError(t, err)
	require.True(t, added)
	added, err = l.AddFirst("a")
	require.NoError(t, err)
	require.True(t, added)
	added, err = l.Add("c")
	require.NoError(t, err)
	require.True(t, added)

	first, ok := l.First()
	require.True(t, ok)
	assert.Equal(t, "a", first)
	last, ok := l.Last()
	require.True(t, ok)
	assert.Equal(t, "c", last)
	assert.Equal(t, []string{"a", "b", "c"}, l.Slice())

	item, ok := l.RemoveFirst()
	require.True(t, ok)
	assert.Equal(t, "a", item)
	item, ok = l.RemoveLast()
	require.True(t, ok)
	assert.Equal(t, "c", item)
	assert.Equal(t, []string{"b"}, l.Slice())
}

func TestLinkedList_countAfterAdds(t *testing.T) {
	l, err := NewLinkedList[int]()
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		ok, err := l.Add(i)
		require.NoError(t, err)
		require.True(t, ok)
	}
	assert.Equal(t, 50, l.Count())
}

func TestLinkedList_positionalAccess(t *testing.T) {
	// exercise the nearer-end scan across the whole index range
	items := make([]int, 21)
	for i := range items {
		items[i] = i * 10
	}
	l, err := NewLinkedList(WithItems(items...))
	require.NoError(t, err)

	for i, want := range items {
		got, err := l.At(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "index %d", i)
	}
	_, err = l.At(len(items))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	ok, err := l.Set(10, 999)
	require.NoError(t, err)
	require.True(t, ok)
	got, err := l.At(10)
	require.NoError(t, err)
	assert.Equal(t, 999, got)
}

func TestLinkedList_insertRemoveAt(t *testing.T) {
	l, err := NewLinkedList(WithItems("a", "d"))
	require.NoError(t, err)

	ok, err := l.Insert(1, "b")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = l.Insert(2, "c")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = l.Insert(4, "e") // at count: append
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, l.Slice())

	_, err = l.Insert(-1, "x")
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = l.Insert(6, "x")
	assert.ErrorIs(t, err, ErrOutOfBounds)

	item, err := l.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, "c", item)
	item, err = l.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, "a", item)
	assert.Equal(t, []string{"b", "d", "e"}, l.Slice())
}

func TestLinkedList_removeByValue(t *testing.T) {
	l, err := NewLinkedList(WithItems(1, 2, 1, 3))
	require.NoError(t, err)

	assert.True(t, l.Remove(1), "removes the first occurrence")
	assert.Equal(t, []int{2, 1, 3}, l.Slice())

	v := l.Version()
	assert.False(t, l.Remove(9))
	assert.Equal(t, v, l.Version(), "absent item is a no-op")
}

func TestLinkedList_eventIndices(t *testing.T) {
	l, err := NewLinkedList(WithItems("a", "b", "c"))
	require.NoError(t, err)

	var got []recordedEvent
	l.Subscribe(EventInserted|EventRemovedAt, func(ev ChangeEvent[string]) {
		got = append(got, recordedEvent{kind: ev.Kind, item: ev.Item, index: ev.Index, count: ev.Count})
	})

	_, ok := l.RemoveLast()
	require.True(t, ok)
	_, ok = l.RemoveFirst()
	require.True(t, ok)
	added, err := l.AddFirst("x")
	require.NoError(t, err)
	require.True(t, added)

	assert.Equal(t, []recordedEvent{
		{kind: EventRemovedAt, item: "c", index: 2, count: 1},
		{kind: EventRemovedAt, item: "a", index: 0, count: 1},
		{kind: EventInserted, item: "x", index: 0, count: 1},
	}, got)
}

func TestLinkedList_policies(t *testing.T) {
	l, err := NewLinkedList(WithDistinct[int](true), WithItems(1, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, l.Slice())

	ok, err := l.Add(2)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = l.AddFirst(1)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = l.Set(0, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	nl, err := NewLinkedList[any]()
	require.NoError(t, err)
	_, err = nl.Add(nil)
	assert.ErrorIs(t, err, ErrNilItem)
	assert.Zero(t, nl.Count())
}

func TestLinkedList_addAll(t *testing.T) {
	l, err := NewLinkedList[int]()
	require.NoError(t, err)
	n, err := l.AddAll(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, uint64(1), l.Version(), "one bump per mutating call")
	assert.Equal(t, []int{1, 2, 3}, l.Slice())

	n, err = l.AddAll()
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, uint64(1), l.Version(), "empty add-all is a no-op")
}

func TestLinkedList_clear(t *testing.T) {
	l, err := NewLinkedList(WithItems(1, 2, 3))
	require.NoError(t, err)
	l.Clear()
	assert.Zero(t, l.Count())
	assert.True(t, l.IsEmpty())
	_, ok := l.First()
	assert.False(t, ok)

	// reusable after clear
	added, err := l.Add(9)
	require.NoError(t, err)
	require.True(t, added)
	assert.Equal(t, []int{9}, l.Slice())
}

func TestLinkedList_searchOperations(t *testing.T) {
	l, err := NewLinkedList(WithItems("x", "y", "x"))
	require.NoError(t, err)
	assert.Equal(t, 0, l.IndexOf("x"))
	assert.Equal(t, 1, l.IndexOf("y"))
	assert.Equal(t, -1, l.IndexOf("z"))
	assert.True(t, l.Contains("y"))
	assert.False(t, l.Contains("z"))
}
