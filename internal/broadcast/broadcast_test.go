package broadcast_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennyhq/website/internal/broadcast"
)

func TestPublishDeliversToAllSubscribers(t *testing.T) {
	t.Parallel()

	bus := broadcast.New[string]()

	var got []string
	var mu sync.Mutex
	record := func(ev string) {
		mu.Lock()
		got = append(got, ev)
		mu.Unlock()
	}

	bus.Subscribe(record)
	bus.Subscribe(record)
	require.Equal(t, 2, bus.Len())

	bus.Publish("locale-changed")

	assert.Len(t, got, 2)
	assert.Equal(t, "locale-changed", got[0])
}

func TestCancelRemovesSubscriber(t *testing.T) {
	t.Parallel()

	bus := broadcast.New[int]()

	var calls int
	cancel := bus.Subscribe(func(int) { calls++ })

	bus.Publish(1)
	cancel()
	bus.Publish(2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, bus.Len())

	// Idempotent.
	cancel()
	assert.Equal(t, 0, bus.Len())
}

func TestSubscriberMayCancelDuringPublish(t *testing.T) {
	t.Parallel()

	bus := broadcast.New[struct{}]()

	var cancel func()
	var calls int
	cancel = bus.Subscribe(func(struct{}) {
		calls++
		cancel()
	})

	bus.Publish(struct{}{})
	bus.Publish(struct{}{})

	assert.Equal(t, 1, calls)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	t.Parallel()

	bus := broadcast.New[string]()
	assert.NotPanics(t, func() { bus.Publish("nobody listening") })
}
