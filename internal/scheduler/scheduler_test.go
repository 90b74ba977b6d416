package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Tests IsLight
func TestIsLight(t *testing.T) {
	t.Parallel()

	require.True(t, IsLight(ActionGetCoinRatio))
	require.True(t, IsLight(ActionAuthCheck))
	require.True(t, IsLight(ActionGetPendingBroadcast))

	require.False(t, IsLight(ActionUpdateItemPrice))
	require.False(t, IsLight(ActionUpdatePrices))
	require.False(t, IsLight(ActionSaveCoinRatio))
	require.False(t, IsLight("someUnknownAction"))
}

// A light task runs synchronously on the calling goroutine.
func TestDispatcher_LightRunsInline(t *testing.T) {
	t.Parallel()

	d := NewDispatcher()

	ran := false
	d.Dispatch(ActionGetCoinRatio, func() { ran = true })

	require.True(t, ran)
}

// Heavy tasks execute strictly one after another in submission order.
func TestDispatcher_HeavySerialized(t *testing.T) {
	t.Parallel()

	d := NewDispatcher()

	var mu sync.Mutex
	var order []string
	done := make(chan struct{})

	d.Dispatch(ActionUpdatePrices, func() {
		time.Sleep(20 * time.Millisecond) // hold the lane
		mu.Lock()
		order = append(order, "first")
		mu.Unlock()
	})
	d.Dispatch(ActionUpdateItemPrice, func() {
		mu.Lock()
		order = append(order, "second")
		mu.Unlock()
	})
	d.Dispatch(ActionSaveSupply, func() {
		mu.Lock()
		order = append(order, "third")
		mu.Unlock()
		close(done)
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("heavy lane never drained")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"first", "second", "third"}, order)
}

// A light task must not wait behind a blocked heavy lane.
func TestDispatcher_LightNotBlockedByHeavy(t *testing.T) {
	t.Parallel()

	d := NewDispatcher()

	release := make(chan struct{})
	heavyStarted := make(chan struct{})
	d.Dispatch(ActionUpdatePrices, func() {
		close(heavyStarted)
		<-release
	})
	<-heavyStarted

	lightRan := false
	d.Dispatch(ActionGetSupply, func() { lightRan = true })
	require.True(t, lightRan)

	close(release)
}

// The drain loop restarts for tasks enqueued after it finished.
func TestDispatcher_DrainRestartsAfterIdle(t *testing.T) {
	t.Parallel()

	d := NewDispatcher()

	first := make(chan struct{})
	d.Dispatch(ActionUpdatePrices, func() { close(first) })
	select {
	case <-first:
	case <-time.After(2 * time.Second):
		t.Fatal("first heavy task never ran")
	}

	// Wait for the drain loop to park before enqueueing again.
	time.Sleep(10 * time.Millisecond)

	second := make(chan struct{})
	d.Dispatch(ActionUpdatePrices, func() { close(second) })
	select {
	case <-second:
	case <-time.After(2 * time.Second):
		t.Fatal("second heavy task never ran")
	}
}

// Tests the single-flight guard lifecycle
func TestGuardRegistry(t *testing.T) {
	t.Parallel()

	g := NewGuardRegistry()

	require.False(t, g.InFlight(OpUpdatePrices))
	require.True(t, g.TryAcquire(OpUpdatePrices))
	require.True(t, g.InFlight(OpUpdatePrices))

	// A duplicate acquisition is rejected while in flight.
	require.False(t, g.TryAcquire(OpUpdatePrices))

	// Other operations are tracked independently.
	require.True(t, g.TryAcquire(OpEnableExtension))
	g.Release(OpEnableExtension)

	g.Release(OpUpdatePrices)
	require.False(t, g.InFlight(OpUpdatePrices))
	require.True(t, g.TryAcquire(OpUpdatePrices))
	g.Release(OpUpdatePrices)
}
