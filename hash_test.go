package collections

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqOf adapts the three engines to Sequence for table-driven hash tests.
func seqOf(t *testing.T, engine string, items ...int) Sequence[int] {
	t.Helper()
	switch engine {
	case "arraylist":
		l, err := NewArrayList(WithItems(items...))
		require.NoError(t, err)
		return l
	case "linkedlist":
		l, err := NewLinkedList(WithItems(items...))
		require.NoError(t, err)
		return l
	case "circularqueue":
		q, err := NewCircularQueue(WithItems(items...))
		require.NoError(t, err)
		return q
	default:
		t.Fatalf("unknown engine %q", engine)
		return nil
	}
}

var hashEngines = []string{"arraylist", "linkedlist", "circularqueue"}

func TestUnsequencedHash_permutationInvariant(t *testing.T) {
	items := []int{2, 3, 5, 7, 11, 13, 13, 2}
	rng := rand.New(rand.NewSource(6))
	for _, engine := range hashEngines {
		t.Run(engine, func(t *testing.T) {
			want := seqOf(t, engine, items...).UnsequencedHash()
			for trial := 0; trial < 10; trial++ {
				shuffled := append([]int(nil), items...)
				rng.Shuffle(len(shuffled), func(i, j int) {
					shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
				})
				assert.Equal(t, want, seqOf(t, engine, shuffled...).UnsequencedHash(),
					"permutation %v must hash equal", shuffled)
			}
		})
	}
}

func TestUnsequencedHash_crossEngineConsistent(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	want := seqOf(t, "arraylist", items...).UnsequencedHash()
	for _, engine := range hashEngines[1:] {
		assert.Equal(t, want, seqOf(t, engine, items...).UnsequencedHash(), engine)
	}
}

func TestSequencedHash_orderSensitive(t *testing.T) {
	for _, engine := range hashEngines {
		t.Run(engine, func(t *testing.T) {
			forward := seqOf(t, engine, 1, 2, 3, 4, 5)
			reversed := seqOf(t, engine, 5, 4, 3, 2, 1)
			assert.NotEqual(t, forward.SequencedHash(), reversed.SequencedHash())
			assert.Equal(t, forward.SequencedHash(), seqOf(t, engine, 1, 2, 3, 4, 5).SequencedHash())
		})
	}
}

// TestSequencedHash_cacheRoundTrip verifies cache correctness: hashing,
// mutating n times, undoing those mutations, and hashing again must produce
// the original value, despite the version having advanced.
func TestSequencedHash_cacheRoundTrip(t *testing.T) {
	l, err := NewArrayList(WithItems(10, 20, 30))
	require.NoError(t, err)
	seqBefore := l.SequencedHash()
	unsBefore := l.UnsequencedHash()

	for i := 0; i < 5; i++ {
		_, err := l.Add(100 + i)
		require.NoError(t, err)
	}
	assert.NotEqual(t, seqBefore, l.SequencedHash(), "hash must reflect the additions")
	for i := 4; i >= 0; i-- {
		require.True(t, l.Remove(100+i))
	}

	assert.Equal(t, seqBefore, l.SequencedHash())
	assert.Equal(t, unsBefore, l.UnsequencedHash())
}

func TestHashCache_invalidatedByMutation(t *testing.T) {
	q, err := NewCircularQueue(WithItems(1, 2, 3))
	require.NoError(t, err)
	before := q.SequencedHash()
	// cached while version unchanged
	require.True(t, q.seqCache.valid)
	assert.Equal(t, before, q.SequencedHash())

	_, ok := q.Dequeue()
	require.True(t, ok)
	assert.NotEqual(t, before, q.SequencedHash())
}

func TestSequencedEqual(t *testing.T) {
	a := seqOf(t, "arraylist", 1, 2, 3)
	b := seqOf(t, "linkedlist", 1, 2, 3)
	c := seqOf(t, "circularqueue", 3, 2, 1)

	assert.True(t, SequencedEqual(a, b), "equal order across engines")
	assert.False(t, SequencedEqual(a, c), "reordered contents")
	assert.True(t, SequencedEqual[int](nil, nil))
	assert.False(t, SequencedEqual(a, nil))
}

func TestUnsequencedEqual(t *testing.T) {
	a := seqOf(t, "arraylist", 1, 2, 2, 3)
	b := seqOf(t, "circularqueue", 3, 2, 1, 2)
	c := seqOf(t, "linkedlist", 1, 2, 3, 3)

	assert.True(t, UnsequencedEqual(a, b), "same multiset, any order")
	assert.False(t, UnsequencedEqual(a, c), "different multiplicities")
	assert.False(t, UnsequencedEqual(a, seqOf(t, "arraylist", 1, 2, 2)), "different count")
}

// Hash equality is necessary but not sufficient: document the contract
// rather than asserting collision-freedom.
func TestUnsequencedHash_equalHashDoesNotImplyEqual(t *testing.T) {
	a := seqOf(t, "arraylist", 1, 2)
	b := seqOf(t, "arraylist", 2, 1)
	assert.Equal(t, a.UnsequencedHash(), b.UnsequencedHash())
	assert.False(t, SequencedEqual(a, b))
}
