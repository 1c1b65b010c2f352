package collections

import (
	"sync/atomic"
	"testing"

	"github.com/joeycumines/logiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEvent is the minimal logiface.Event implementation needed to construct
// a working logger in these tests.
type testEvent struct {
	logiface.UnimplementedEvent
	level logiface.Level
}

func (x *testEvent) Level() logiface.Level        { return x.level }
func (x *testEvent) AddField(key string, val any) {}

var testEventFactory = logiface.NewEventFactoryFunc[logiface.Event](func(level logiface.Level) logiface.Event {
	return &testEvent{level: level}
})

// TestWithLogger_mutations verifies that an attached logger observes
// structural changes, and that reads stay silent.
func TestWithLogger_mutations(t *testing.T) {
	var events atomic.Int64
	logger := logiface.New[logiface.Event](
		logiface.WithEventFactory[logiface.Event](testEventFactory),
		logiface.WithWriter[logiface.Event](logiface.NewWriterFunc(func(event logiface.Event) error {
			events.Add(1)
			return nil
		})),
		logiface.WithLevel[logiface.Event](logiface.LevelDebug),
	)

	l, err := NewArrayList[int](WithLogger[int](logger))
	require.NoError(t, err)

	_, err = l.Add(1)
	require.NoError(t, err)
	_, err = l.Add(2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), events.Load())

	// reads do not log
	_ = l.Count()
	_, _ = l.At(0)
	assert.Equal(t, int64(2), events.Load())

	// no-op mutations do not log
	assert.False(t, l.Remove(3))
	assert.Equal(t, int64(2), events.Load())

	l.Clear()
	assert.Equal(t, int64(3), events.Load())
}

// TestWithLogger_levelFiltering verifies that mutation logging is debug-level,
// so a logger at the default level stays quiet.
func TestWithLogger_levelFiltering(t *testing.T) {
	var events atomic.Int64
	logger := logiface.New[logiface.Event](
		logiface.WithEventFactory[logiface.Event](testEventFactory),
		logiface.WithWriter[logiface.Event](logiface.NewWriterFunc(func(event logiface.Event) error {
			events.Add(1)
			return nil
		})),
	)

	l, err := NewArrayList[int](WithLogger[int](logger))
	require.NoError(t, err)

	_, err = l.Add(1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), events.Load())
}

// TestWithLogger_nil verifies that a nil logger is safe.
func TestWithLogger_nil(t *testing.T) {
	l, err := NewArrayList[int](WithLogger[int](nil))
	require.NoError(t, err)
	_, err = l.Add(1)
	require.NoError(t, err)
	assert.Equal(t, 1, l.Count())
}
