package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lichcore/dominion/internal/logger"
)

// TimerCallback fires when a member's timer expires.
type TimerCallback func(ctx context.Context, channelID, userID, note string) error

// TimerWorker schedules member-requested reminder timers and pings the
// requesting channel when they expire.
type TimerWorker struct {
	callback TimerCallback

	mu       sync.Mutex
	timers   map[uuid.UUID]*time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
}

// NewTimerWorker creates a new TimerWorker
func NewTimerWorker(callback TimerCallback) *TimerWorker {
	return &TimerWorker{
		callback: callback,
		timers:   make(map[uuid.UUID]*time.Timer),
		shutdown: make(chan struct{}),
	}
}

// Schedule registers a timer that fires after d and returns its identifier.
func (w *TimerWorker) Schedule(d time.Duration, channelID, userID, note string) uuid.UUID {
	id := uuid.New()

	timer := time.AfterFunc(d, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		w.mu.Lock()
		delete(w.timers, id)
		w.mu.Unlock()

		w.wg.Add(1)
		go func() {
			defer w.wg.Done()

			ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
			log := logger.FromContext(ctx)
			log.Info(LogMsgTimerFired, "timer_id", id, "user_id", userID)

			if err := w.callback(ctx, channelID, userID, note); err != nil {
				log.Error(LogMsgTimerPingFailed, "timer_id", id, "error", err)
			}
		}()
	})

	w.mu.Lock()
	w.timers[id] = timer
	w.mu.Unlock()

	logger.FromContext(context.Background()).Info(LogMsgTimerScheduled,
		"timer_id", id, "user_id", userID, "duration", d)
	return id
}

// Cancel stops a pending timer. Returns false when the timer already fired
// or never existed.
func (w *TimerWorker) Cancel(id uuid.UUID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	timer, ok := w.timers[id]
	if !ok {
		return false
	}
	timer.Stop()
	delete(w.timers, id)
	return true
}

// Pending reports the number of timers that have not fired yet.
func (w *TimerWorker) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

// Shutdown cancels pending timers and waits for in-flight pings.
func (w *TimerWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgTimerWorkerStopping)

	close(w.shutdown)

	w.mu.Lock()
	for id, timer := range w.timers {
		timer.Stop()
		log.Info(LogMsgTimerCancelled, "timer_id", id)
	}
	w.timers = make(map[uuid.UUID]*time.Timer)
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgTimerWorkerStopped)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgTimerWorkerTimeout)
		return ctx.Err()
	}
}
