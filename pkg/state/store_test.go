package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getfolio/folio/pkg/portfolio"
)

func award(id, title string) portfolio.Award {
	return portfolio.Award{ID: id, Title: title}
}

func TestStoreStartsIdleAndEmpty(t *testing.T) {
	s := NewStore[portfolio.Award]()
	snap := s.Snapshot()
	assert.Equal(t, StatusIdle, snap.Status)
	assert.Nil(t, snap.Items)
	assert.Nil(t, snap.Item)
}

func TestBeginClearsStaleBanners(t *testing.T) {
	s := NewStore[portfolio.Award]()
	s.fail("boom")
	require.Equal(t, "boom", s.Snapshot().Err)

	s.begin()
	snap := s.Snapshot()
	assert.Equal(t, StatusLoading, snap.Status)
	assert.Empty(t, snap.Err)
	assert.Empty(t, snap.Message)
}

func TestFailPreservesCachedData(t *testing.T) {
	s := NewStore[portfolio.Award]()
	s.replaceAll([]portfolio.Award{award("a1", "First")}, "")

	s.begin()
	s.fail("server unavailable")

	snap := s.Snapshot()
	assert.Equal(t, StatusFailed, snap.Status)
	assert.Equal(t, "server unavailable", snap.Err)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "a1", snap.Items[0].ID)
}

func TestReplaceAllSwapsWholeList(t *testing.T) {
	s := NewStore[portfolio.Award]()
	s.replaceAll([]portfolio.Award{award("a1", "First"), award("a2", "Second")}, "")
	s.replaceAll([]portfolio.Award{award("a3", "Third")}, "loaded")

	snap := s.Snapshot()
	assert.Equal(t, StatusSucceeded, snap.Status)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "a3", snap.Items[0].ID)
	assert.Equal(t, "loaded", snap.Message)
}

func TestReplaceAllNilBecomesEmpty(t *testing.T) {
	s := NewStore[portfolio.Award]()
	s.replaceAll(nil, "")
	assert.NotNil(t, s.Snapshot().Items)
	assert.Empty(t, s.Snapshot().Items)
}

func TestSetItemLeavesListAlone(t *testing.T) {
	s := NewStore[portfolio.Award]()
	s.replaceAll([]portfolio.Award{award("a1", "First")}, "")

	item := award("a2", "Second")
	s.setItem(&item, "")

	snap := s.Snapshot()
	require.NotNil(t, snap.Item)
	assert.Equal(t, "a2", snap.Item.ID)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "a1", snap.Items[0].ID)
}

func TestAppendItemAddsNewEntity(t *testing.T) {
	s := NewStore[portfolio.Award]()
	s.replaceAll([]portfolio.Award{award("a1", "First")}, "")

	item := award("a2", "Second")
	s.appendItem(&item, "created")

	snap := s.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "a2", snap.Items[1].ID)
	assert.Equal(t, "created", snap.Message)
}

func TestAppendItemSkipsDuplicateIdentity(t *testing.T) {
	s := NewStore[portfolio.Award]()
	s.replaceAll([]portfolio.Award{award("a1", "First")}, "")

	dup := award("a1", "First again")
	s.appendItem(&dup, "")

	assert.Len(t, s.Snapshot().Items, 1)
}

func TestAppendItemSkipsMissingIdentity(t *testing.T) {
	s := NewStore[portfolio.Award]()
	anon := award("", "No id")
	s.appendItem(&anon, "")
	assert.Empty(t, s.Snapshot().Items)

	s.appendItem(nil, "ok")
	assert.Empty(t, s.Snapshot().Items)
	assert.Equal(t, StatusSucceeded, s.Snapshot().Status)
}

func TestReplaceItemSwapsByIdentity(t *testing.T) {
	s := NewStore[portfolio.Award]()
	s.replaceAll([]portfolio.Award{award("a1", "First"), award("a2", "Second")}, "")

	updated := award("a2", "Second, revised")
	s.replaceItem(&updated, "updated")

	snap := s.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "First", snap.Items[0].Title)
	assert.Equal(t, "Second, revised", snap.Items[1].Title)
}

func TestReplaceItemMissIsSilent(t *testing.T) {
	s := NewStore[portfolio.Award]()
	s.replaceAll([]portfolio.Award{award("a1", "First")}, "")

	ghost := award("zzz", "Ghost")
	s.replaceItem(&ghost, "")

	snap := s.Snapshot()
	assert.Equal(t, StatusSucceeded, snap.Status)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "a1", snap.Items[0].ID)
}

func TestRemoveItemDropsExactlyMatchingEntries(t *testing.T) {
	s := NewStore[portfolio.Award]()
	s.replaceAll([]portfolio.Award{award("a1", "First"), award("a2", "Second"), award("a3", "Third")}, "")

	s.removeItem("a2", "deleted")

	snap := s.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "a1", snap.Items[0].ID)
	assert.Equal(t, "a3", snap.Items[1].ID)
	assert.Equal(t, "deleted", snap.Message)
}

func TestRemoveItemUnknownIDKeepsList(t *testing.T) {
	s := NewStore[portfolio.Award]()
	s.replaceAll([]portfolio.Award{award("a1", "First")}, "")
	s.removeItem("zzz", "")
	assert.Len(t, s.Snapshot().Items, 1)
}

func TestResetReturnsToInitialState(t *testing.T) {
	s := NewStore[portfolio.Award]()
	s.replaceAll([]portfolio.Award{award("a1", "First")}, "hello")
	item := award("a2", "Second")
	s.setItem(&item, "")
	s.fail("boom")

	s.Reset()

	snap := s.Snapshot()
	assert.Equal(t, StatusIdle, snap.Status)
	assert.Nil(t, snap.Items)
	assert.Nil(t, snap.Item)
	assert.Empty(t, snap.Err)
	assert.Empty(t, snap.Message)
}

func TestClearMessagesKeepsData(t *testing.T) {
	s := NewStore[portfolio.Award]()
	s.replaceAll([]portfolio.Award{award("a1", "First")}, "loaded")
	s.fail("boom")

	s.ClearMessages()

	snap := s.Snapshot()
	assert.Empty(t, snap.Err)
	assert.Empty(t, snap.Message)
	assert.Len(t, snap.Items, 1)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewStore[portfolio.Award]()
	s.replaceAll([]portfolio.Award{award("a1", "First")}, "")

	snap := s.Snapshot()
	snap.Items[0].Title = "mutated"

	assert.Equal(t, "First", s.Snapshot().Items[0].Title)
}

func TestSubscribeFiresOnChangeUntilCancelled(t *testing.T) {
	s := NewStore[portfolio.Award]()
	var calls int
	cancel := s.Subscribe(func() { calls++ })

	s.replaceAll(nil, "")
	assert.Equal(t, 1, calls)

	cancel()
	s.replaceAll(nil, "")
	assert.Equal(t, 1, calls)
}
