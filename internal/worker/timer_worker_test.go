package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerWorker_FiresCallback(t *testing.T) {
	fired := make(chan string, 1)
	w := NewTimerWorker(func(_ context.Context, channelID, userID, note string) error {
		fired <- note
		return nil
	})

	w.Schedule(10*time.Millisecond, "chan-1", "user-1", "check the oven")

	select {
	case note := <-fired:
		assert.Equal(t, "check the oven", note)
	case <-time.After(time.Second):
		t.Fatal("timer never fired")
	}
	assert.Zero(t, w.Pending())
}

func TestTimerWorker_CancelStopsTimer(t *testing.T) {
	var fired atomic.Int32
	w := NewTimerWorker(func(context.Context, string, string, string) error {
		fired.Add(1)
		return nil
	})

	id := w.Schedule(50*time.Millisecond, "chan-1", "user-1", "note")
	require.True(t, w.Cancel(id))
	assert.False(t, w.Cancel(id), "second cancel should report missing")

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, fired.Load())
}

func TestTimerWorker_ShutdownCancelsPending(t *testing.T) {
	var fired atomic.Int32
	w := NewTimerWorker(func(context.Context, string, string, string) error {
		fired.Add(1)
		return nil
	})

	w.Schedule(time.Hour, "chan-1", "user-1", "long")
	w.Schedule(time.Hour, "chan-1", "user-2", "long")
	require.Equal(t, 2, w.Pending())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, w.Shutdown(ctx))
	assert.Zero(t, fired.Load())
}
