package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessKey = "X"

func newUnlockedSession(t *testing.T, storage Storage) (*StudioSession, *OverrideStore) {
	t.Helper()
	store := NewOverrideStore(storage)
	session := NewStudioSession(store, testAccessKey)
	require.NoError(t, session.Unlock(testAccessKey))
	return session, store
}

func TestGateRejectsWrongKeyAndStaysLocked(t *testing.T) {
	session := NewStudioSession(NewOverrideStore(newMemoryStorage()), testAccessKey)

	require.ErrorIs(t, session.Unlock("WRONG"), ErrAccessDenied)
	assert.False(t, session.Unlocked())

	// mutations are refused while locked
	_, err := session.AddWorkItem()
	assert.ErrorIs(t, err, ErrLocked)
	assert.ErrorIs(t, session.AddSkill("Go", "BACKEND"), ErrLocked)
	_, err = session.ExportSnapshot()
	assert.ErrorIs(t, err, ErrLocked)

	// the failed attempt is logged
	assert.Contains(t, strings.Join(session.Log(), "\n"), "UNAUTHORIZED_ACCESS_ATTEMPT")
}

func TestGateUnlockIsOneWay(t *testing.T) {
	session := NewStudioSession(NewOverrideStore(newMemoryStorage()), testAccessKey)

	require.NoError(t, session.Unlock(testAccessKey))
	assert.True(t, session.Unlocked())

	// a later wrong key does not re-lock
	require.ErrorIs(t, session.Unlock("WRONG"), ErrAccessDenied)
	assert.True(t, session.Unlocked())
}

func TestAddWorkItemSequencesIDs(t *testing.T) {
	session, store := newUnlockedSession(t, newMemoryStorage())

	item, err := session.AddWorkItem()
	require.NoError(t, err)
	assert.Equal(t, "11", item.ID)
	assert.Len(t, store.WorkItems(), len(DefaultWorkItems)+1)

	item, err = session.AddWorkItem()
	require.NoError(t, err)
	assert.Equal(t, "12", item.ID)
}

func TestAddAfterRemoveNeverReissuesAnID(t *testing.T) {
	session, store := newUnlockedSession(t, newMemoryStorage())

	require.NoError(t, session.RemoveWorkItem("10"))
	item, err := session.AddWorkItem()
	require.NoError(t, err)

	// the freed "10" must not come back; ids stay unique
	assert.Equal(t, "11", item.ID)
	seen := map[string]bool{}
	for _, w := range store.WorkItems() {
		assert.False(t, seen[w.ID], "duplicate id %s", w.ID)
		seen[w.ID] = true
	}
}

func TestUpdateWorkItemFields(t *testing.T) {
	session, store := newUnlockedSession(t, newMemoryStorage())

	require.NoError(t, session.UpdateWorkItem("01", "title", "RENAMED"))
	require.NoError(t, session.UpdateWorkItem("01", "tech", "Go, HTMX , Tailwind"))

	item, _ := store.WorkItem("01")
	assert.Equal(t, "RENAMED", item.Title)
	assert.Equal(t, []string{"Go", "HTMX", "Tailwind"}, item.Tech)

	err := session.UpdateWorkItem("01", "bogus", "x")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestRemoveThenUpdateIsNoOp(t *testing.T) {
	session, store := newUnlockedSession(t, newMemoryStorage())

	require.NoError(t, session.RemoveWorkItem("02"))
	require.NoError(t, session.UpdateWorkItem("02", "title", "GHOST"))

	_, found := store.WorkItem("02")
	assert.False(t, found)
	assert.Len(t, store.WorkItems(), len(DefaultWorkItems)-1)

	// removing again is equally harmless
	require.NoError(t, session.RemoveWorkItem("02"))
}

func TestSkillOperations(t *testing.T) {
	session, store := newUnlockedSession(t, newMemoryStorage())

	require.NoError(t, session.AddSkill("Go", "BACKEND"))
	assert.Len(t, store.Skills(), len(DefaultSkills)+1)

	require.NoError(t, session.RemoveSkillAt(0))
	skills := store.Skills()
	assert.Len(t, skills, len(DefaultSkills))
	assert.NotEqual(t, DefaultSkills[0].Name, skills[0].Name)

	// out-of-range indexes are no-ops
	require.NoError(t, session.RemoveSkillAt(-1))
	require.NoError(t, session.RemoveSkillAt(999))
	assert.Len(t, store.Skills(), len(DefaultSkills))
}

func TestEveryMutationIsImmediatelyDurable(t *testing.T) {
	storage := newMemoryStorage()
	session, _ := newUnlockedSession(t, storage)

	_, err := session.AddWorkItem()
	require.NoError(t, err)
	require.NoError(t, session.AddSkill("Go", "BACKEND"))

	// a fresh session over the same storage sees both edits without any
	// explicit flush
	reloaded := NewOverrideStore(storage)
	assert.Len(t, reloaded.WorkItems(), len(DefaultWorkItems)+1)
	assert.Len(t, reloaded.Skills(), len(DefaultSkills)+1)
}

func TestMutationSurvivesWriteFailure(t *testing.T) {
	storage := newMemoryStorage()
	session, store := newUnlockedSession(t, storage)

	storage.failPut = errors.New("disk full")
	_, err := session.AddWorkItem()
	require.ErrorIs(t, err, ErrPersistence)

	// edit is live in memory, and the failure is in the session log
	assert.Len(t, store.WorkItems(), len(DefaultWorkItems)+1)
	assert.Contains(t, strings.Join(session.Log(), "\n"), "SNAPSHOT_WRITE_FAILED")
}

func TestSessionLogIsBoundedNewestFirst(t *testing.T) {
	session, _ := newUnlockedSession(t, newMemoryStorage())

	for i := 0; i < 15; i++ {
		require.NoError(t, session.AddSkill(fmt.Sprintf("TECH_%02d", i), "MASTER"))
	}

	logLines := session.Log()
	require.Len(t, logLines, sessionLogLimit)
	assert.Contains(t, logLines[0], "STACK_TECH_14")
	assert.Contains(t, logLines[len(logLines)-1], "STACK_TECH_05")
}

func TestExportSnapshotEmbedsParseableCollections(t *testing.T) {
	session, store := newUnlockedSession(t, newMemoryStorage())
	_, err := session.AddWorkItem()
	require.NoError(t, err)

	blob, err := session.ExportSnapshot()
	require.NoError(t, err)
	assert.Contains(t, blob, "PERMANENT SOURCE UPDATE")

	// the blob embeds two raw JSON arrays between backticks
	parts := strings.Split(blob, "`")
	require.Len(t, parts, 5)

	var work []WorkItem
	require.NoError(t, json.Unmarshal([]byte(parts[1]), &work))
	assert.Equal(t, store.WorkItems(), work)

	var skills []SkillEntry
	require.NoError(t, json.Unmarshal([]byte(parts[3]), &skills))
	assert.Equal(t, store.Skills(), skills)
}

func TestEndToEndEditPersistReload(t *testing.T) {
	storage := newMemoryStorage()

	// empty storage: defaults are authoritative
	store := NewOverrideStore(storage)
	require.Len(t, store.WorkItems(), 10)

	session := NewStudioSession(store, testAccessKey)
	require.NoError(t, session.Unlock(testAccessKey))

	item, err := session.AddWorkItem()
	require.NoError(t, err)
	assert.Equal(t, "11", item.ID)

	items := store.WorkItems()
	require.Len(t, items, 11)
	assert.Equal(t, "11", items[len(items)-1].ID)

	// simulate a fresh session: same storage, new everything
	fresh := NewOverrideStore(storage)
	assert.Equal(t, items, fresh.WorkItems())
}
