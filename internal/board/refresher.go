package board

import (
	"context"
	"sync"

	"github.com/lichcore/dominion/internal/concurrency"
	"github.com/lichcore/dominion/internal/logger"
)

// RefreshFunc performs one full rebuild-and-sync of a board.
type RefreshFunc func(ctx context.Context) error

// Refresher coalesces refresh requests per board. At most one refresh runs
// at a time and at most one is queued behind it: every queued request is
// satisfied by whichever rebuild runs next, since a rebuild always reads
// the latest persisted state.
type Refresher struct {
	locks *concurrency.LockManager

	mu    sync.Mutex
	state map[string]*refreshState
}

type refreshState struct {
	inflight bool
	pending  bool
}

// NewRefresher creates a new Refresher
func NewRefresher(locks *concurrency.LockManager) *Refresher {
	return &Refresher{
		locks: locks,
		state: make(map[string]*refreshState),
	}
}

// Request schedules a refresh of the named board. When a refresh is already
// running the request collapses into a single pending slot and returns
// immediately; the refresh itself runs on a background goroutine.
func (r *Refresher) Request(board string, fn RefreshFunc) {
	r.mu.Lock()
	st, ok := r.state[board]
	if !ok {
		st = &refreshState{}
		r.state[board] = st
	}
	if st.inflight {
		st.pending = true
		r.mu.Unlock()
		return
	}
	st.inflight = true
	r.mu.Unlock()

	go r.run(board, st, fn)
}

// SyncBoards queues a coalesced refresh of every board. The periodic sync
// goes through the same per-board queue as command-triggered refreshes, so
// a scheduled pass never races an in-flight refresh for the stored message
// list.
func (r *Refresher) SyncBoards(svc *Service) {
	r.Request(BoardAssignment, svc.RefreshAssignmentBoard)
	r.Request(BoardArmor, svc.RefreshArmorBoard)
}

// run executes refreshes until no request is pending, holding the board's
// named lock so scheduled and requested refreshes never interleave.
func (r *Refresher) run(board string, st *refreshState, fn RefreshFunc) {
	for {
		ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
		log := logger.FromContext(ctx)

		lock := r.locks.GetLock(board)
		lock.Lock()
		err := fn(ctx)
		lock.Unlock()
		if err != nil {
			log.Debug("Coalesced board refresh returned error", "board", board, "error", err)
		}

		r.mu.Lock()
		if !st.pending {
			st.inflight = false
			r.mu.Unlock()
			return
		}
		st.pending = false
		r.mu.Unlock()
	}
}
