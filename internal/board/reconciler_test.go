package board

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeys() Keys {
	return Keys{ListKey: AssignmentListKey, LegacyKey: AssignmentLegacyKey}
}

func storedIDs(t *testing.T, meta *fakeMeta, key string) []string {
	t.Helper()
	value, ok, err := meta.Get(context.Background(), key)
	require.NoError(t, err)
	require.True(t, ok)
	var ids []string
	require.NoError(t, json.Unmarshal([]byte(value), &ids))
	return ids
}

func makePages(n int) []Page {
	pages := make([]Page, n)
	for i := range pages {
		pages[i] = Page{Title: "T", Description: "page"}
	}
	return pages
}

func TestSync_FirstRunCreatesMessages(t *testing.T) {
	meta := newFakeMeta()
	messenger := newFakeMessenger()
	rec := NewReconciler(meta, messenger)

	err := rec.Sync(context.Background(), "chan", testKeys(), makePages(2), "T")
	require.NoError(t, err)

	// One placeholder send, edited into page 0, plus one send for page 1.
	assert.Len(t, messenger.sends, 2)
	assert.Len(t, messenger.edits, 1)

	ids := storedIDs(t, meta, AssignmentListKey)
	require.Len(t, ids, 2)

	legacy, ok, err := meta.Get(context.Background(), AssignmentLegacyKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ids[0], legacy)
}

func TestSync_SecondRunOnlyEdits(t *testing.T) {
	meta := newFakeMeta()
	messenger := newFakeMessenger()
	rec := NewReconciler(meta, messenger)

	require.NoError(t, rec.Sync(context.Background(), "chan", testKeys(), makePages(2), "T"))
	first := storedIDs(t, meta, AssignmentListKey)

	messenger.reset()
	require.NoError(t, rec.Sync(context.Background(), "chan", testKeys(), makePages(2), "T"))

	assert.Empty(t, messenger.sends)
	assert.Empty(t, messenger.deletes)
	assert.Len(t, messenger.edits, 2)
	assert.Equal(t, first, storedIDs(t, meta, AssignmentListKey))
}

func TestSync_ShrinkDeletesExcessAndPersistsShortList(t *testing.T) {
	meta := newFakeMeta()
	messenger := newFakeMessenger()
	rec := NewReconciler(meta, messenger)

	require.NoError(t, rec.Sync(context.Background(), "chan", testKeys(), makePages(3), "T"))
	before := storedIDs(t, meta, AssignmentListKey)
	require.Len(t, before, 3)

	messenger.reset()
	require.NoError(t, rec.Sync(context.Background(), "chan", testKeys(), makePages(1), "T"))

	assert.Len(t, messenger.deletes, 2)
	assert.ElementsMatch(t, before[1:], messenger.deletes)

	after := storedIDs(t, meta, AssignmentListKey)
	require.Len(t, after, 1)
	assert.Equal(t, before[0], after[0])
}

func TestSync_LegacySingleKeyIsAdopted(t *testing.T) {
	meta := newFakeMeta()
	messenger := newFakeMessenger()
	rec := NewReconciler(meta, messenger)

	// Simulate an older deployment that stored one bare message ID.
	id, err := messenger.SendPage(context.Background(), "chan", Page{Title: "old"})
	require.NoError(t, err)
	require.NoError(t, meta.Set(context.Background(), AssignmentLegacyKey, id))
	messenger.reset()

	require.NoError(t, rec.Sync(context.Background(), "chan", testKeys(), makePages(1), "T"))

	assert.Empty(t, messenger.sends)
	assert.Equal(t, []string{id}, messenger.edits)
	assert.Equal(t, []string{id}, storedIDs(t, meta, AssignmentListKey))
}

func TestSync_ManuallyDeletedMessagesAreReplaced(t *testing.T) {
	meta := newFakeMeta()
	messenger := newFakeMessenger()
	rec := NewReconciler(meta, messenger)

	require.NoError(t, rec.Sync(context.Background(), "chan", testKeys(), makePages(2), "T"))
	ids := storedIDs(t, meta, AssignmentListKey)

	// A moderator deletes both board messages by hand.
	messenger.drop(ids[0])
	messenger.drop(ids[1])
	messenger.reset()

	require.NoError(t, rec.Sync(context.Background(), "chan", testKeys(), makePages(2), "T"))

	assert.Len(t, messenger.sends, 2)
	replaced := storedIDs(t, meta, AssignmentListKey)
	assert.NotEqual(t, ids, replaced)
	assert.Len(t, replaced, 2)
}

func TestSync_MalformedListHealsOnNextRun(t *testing.T) {
	meta := newFakeMeta()
	messenger := newFakeMessenger()
	rec := NewReconciler(meta, messenger)

	require.NoError(t, meta.Set(context.Background(), AssignmentListKey, "not-json"))

	require.NoError(t, rec.Sync(context.Background(), "chan", testKeys(), makePages(1), "T"))

	ids := storedIDs(t, meta, AssignmentListKey)
	assert.Len(t, ids, 1)
}

func TestSync_MalformedListFallsBackToLegacyKey(t *testing.T) {
	meta := newFakeMeta()
	messenger := newFakeMessenger()
	rec := NewReconciler(meta, messenger)

	require.NoError(t, rec.Sync(context.Background(), "chan", testKeys(), makePages(1), "T"))
	ids := storedIDs(t, meta, AssignmentListKey)
	require.Len(t, ids, 1)

	// Corrupt the list entry; the legacy key still names page 0's message.
	require.NoError(t, meta.Set(context.Background(), AssignmentListKey, "not-json"))
	messenger.reset()

	require.NoError(t, rec.Sync(context.Background(), "chan", testKeys(), makePages(1), "T"))

	// The existing message is edited back into shape, not orphaned behind a
	// fresh send.
	assert.Empty(t, messenger.sends)
	assert.Equal(t, ids, messenger.edits)
	assert.Equal(t, ids, storedIDs(t, meta, AssignmentListKey))
}

func TestSync_EditFailureDoesNotPersist(t *testing.T) {
	meta := newFakeMeta()
	messenger := newFakeMessenger()
	rec := NewReconciler(meta, messenger)

	require.NoError(t, rec.Sync(context.Background(), "chan", testKeys(), makePages(1), "T"))
	before := storedIDs(t, meta, AssignmentListKey)

	messenger.failEdit = true
	err := rec.Sync(context.Background(), "chan", testKeys(), makePages(1), "T")
	require.Error(t, err)

	// Stored identity is untouched after the failed run.
	assert.Equal(t, before, storedIDs(t, meta, AssignmentListKey))
}

func TestSync_SendFailureOnFirstRunDoesNotPersist(t *testing.T) {
	meta := newFakeMeta()
	messenger := newFakeMessenger()
	messenger.failSend = true
	rec := NewReconciler(meta, messenger)

	err := rec.Sync(context.Background(), "chan", testKeys(), makePages(1), "T")
	require.Error(t, err)

	_, ok, err := meta.Get(context.Background(), AssignmentListKey)
	require.NoError(t, err)
	assert.False(t, ok)
}
