package board

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lichcore/dominion/internal/logger"
	"github.com/lichcore/dominion/internal/repository"
)

// Messenger abstracts the chat platform's per-message operations for one
// channel-scoped board. FetchMessage reports absence explicitly rather than
// failing: a missing message is an expected state, not an error.
type Messenger interface {
	FetchMessage(ctx context.Context, channelID, messageID string) (bool, error)
	SendPage(ctx context.Context, channelID string, page Page) (string, error)
	EditPage(ctx context.Context, channelID, messageID string, page Page) error
	DeletePage(ctx context.Context, channelID, messageID string) error
}

// Keys names the metadata entries carrying a board's message identity.
// ListKey holds the JSON-encoded ordered ID array; LegacyKey holds a single
// ID written by older deployments and kept updated for rollback safety.
type Keys struct {
	ListKey   string
	LegacyKey string
}

// Reconciler maps freshly packed pages onto the live messages representing
// a board: editing messages that occupy a page slot, sending messages for
// new slots, and deleting messages beyond the new page count.
type Reconciler struct {
	meta      repository.Meta
	messenger Messenger
}

// NewReconciler creates a new Reconciler
func NewReconciler(meta repository.Meta, messenger Messenger) *Reconciler {
	return &Reconciler{meta: meta, messenger: messenger}
}

// Sync brings the channel's messages in line with pages and persists the
// resulting ID list. On send/edit failure it aborts without persisting, so
// the stored list never references messages that were not actually written.
func (r *Reconciler) Sync(ctx context.Context, channelID string, keys Keys, pages []Page, initTitle string) error {
	log := logger.FromContext(ctx)

	stored, err := r.loadStoredIDs(ctx, keys)
	if err != nil {
		return fmt.Errorf("failed to load stored message ids: %w", err)
	}

	// Drop identifiers whose messages no longer exist. Fetch problems are
	// treated as absence: the slot is recreated below.
	live := make([]string, 0, len(stored))
	for _, id := range stored {
		found, err := r.messenger.FetchMessage(ctx, channelID, id)
		if err != nil {
			log.Debug("Stored board message not fetchable, treating as absent", "message_id", id, "error", err)
			continue
		}
		if found {
			live = append(live, id)
		}
	}

	// A board must always have at least one message to edit into shape.
	if len(live) == 0 {
		id, err := r.messenger.SendPage(ctx, channelID, Page{Title: initTitle, Description: InitializingBody})
		if err != nil {
			return fmt.Errorf("failed to send initial board message: %w", err)
		}
		live = append(live, id)
	}

	// Edit in place where a message occupies the slot; send for the rest.
	// Edits preserve channel position, sends append at the bottom.
	for i, page := range pages {
		if i < len(live) {
			if err := r.messenger.EditPage(ctx, channelID, live[i], page); err != nil {
				return fmt.Errorf("failed to edit board page %d: %w", i, err)
			}
			continue
		}
		id, err := r.messenger.SendPage(ctx, channelID, page)
		if err != nil {
			return fmt.Errorf("failed to send board page %d: %w", i, err)
		}
		live = append(live, id)
	}

	// The board shrank: delete leftovers. A failed delete only leaves a
	// stale message visible, so it is logged and swallowed.
	for i := len(pages); i < len(live); i++ {
		if err := r.messenger.DeletePage(ctx, channelID, live[i]); err != nil {
			log.Warn("Failed to delete excess board message", "message_id", live[i], "error", err)
		}
	}

	return r.persistIDs(ctx, keys, live[:len(pages)])
}

// loadStoredIDs reads the persisted identifier list, falling back to the
// legacy single-ID key when the list key is absent or malformed. persistIDs
// keeps the legacy key pointing at page 0, so a corrupt list entry still
// recovers the first message instead of orphaning the whole board.
func (r *Reconciler) loadStoredIDs(ctx context.Context, keys Keys) ([]string, error) {
	value, ok, err := r.meta.Get(ctx, keys.ListKey)
	if err != nil {
		return nil, err
	}
	if ok {
		var ids []string
		jsonErr := json.Unmarshal([]byte(value), &ids)
		if jsonErr == nil {
			return ids, nil
		}
		logger.FromContext(ctx).Warn("Malformed board message id list, falling back to legacy key", "key", keys.ListKey, "error", jsonErr)
	}

	value, ok, err = r.meta.Get(ctx, keys.LegacyKey)
	if err != nil {
		return nil, err
	}
	if ok && value != "" {
		return []string{value}, nil
	}
	return nil, nil
}

// persistIDs writes both the list key and, for backward compatibility, the
// legacy key pointing at the first page's message.
func (r *Reconciler) persistIDs(ctx context.Context, keys Keys, ids []string) error {
	encoded, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode message ids: %w", err)
	}
	if err := r.meta.Set(ctx, keys.ListKey, string(encoded)); err != nil {
		return fmt.Errorf("failed to persist message id list: %w", err)
	}
	if len(ids) > 0 {
		if err := r.meta.Set(ctx, keys.LegacyKey, ids[0]); err != nil {
			return fmt.Errorf("failed to persist legacy message id: %w", err)
		}
	}
	return nil
}
