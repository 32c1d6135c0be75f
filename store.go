package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrPersistence marks a snapshot write that did not reach storage. Edits
// stay live in memory when it happens; callers surface it as a warning.
var ErrPersistence = errors.New("persistence failure")

// loadSnapshot returns the persisted collection under key, or defaults when
// the key is absent or the stored text does not decode. A snapshot that
// decodes is accepted as-is; there is no shape validation beyond that.
func loadSnapshot[T any](storage Storage, key string, defaults []T) []T {
	raw, ok, err := storage.Get(key)
	if err != nil || !ok {
		return defaults
	}
	var parsed []T
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return defaults
	}
	return parsed
}

func saveSnapshot[T any](storage Storage, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrPersistence, key, err)
	}
	if err := storage.Put(key, string(raw)); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// OverrideStore owns the authoritative in-memory work-item and skill
// collections. Bundled defaults bootstrap it; a persisted snapshot, when
// present and well-formed, replaces them. Every mutation persists
// immediately, so the snapshot always matches memory after a successful
// save.
type OverrideStore struct {
	storage Storage

	mu     sync.RWMutex
	work   []WorkItem
	skills []SkillEntry
}

func NewOverrideStore(storage Storage) *OverrideStore {
	return &OverrideStore{
		storage: storage,
		work:    loadSnapshot(storage, keyWorkItems, DefaultWorkItems),
		skills:  loadSnapshot(storage, keySkills, DefaultSkills),
	}
}

// WorkItems returns a copy of the resolved collection.
func (s *OverrideStore) WorkItems() []WorkItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.work)
}

// Skills returns a copy of the resolved collection.
func (s *OverrideStore) Skills() []SkillEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.skills)
}

// WorkItem looks up a single item by id.
func (s *OverrideStore) WorkItem(id string) (WorkItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.work {
		if item.ID == id {
			return item, true
		}
	}
	return WorkItem{}, false
}

// SetWorkItems replaces the collection and persists it. The in-memory state
// is updated even when the write fails, so the session keeps working and
// the caller can warn about durability.
func (s *OverrideStore) SetWorkItems(items []WorkItem) error {
	s.mu.Lock()
	s.work = slices.Clone(items)
	s.mu.Unlock()
	return saveSnapshot(s.storage, keyWorkItems, items)
}

// SetSkills replaces the collection and persists it.
func (s *OverrideStore) SetSkills(items []SkillEntry) error {
	s.mu.Lock()
	s.skills = slices.Clone(items)
	s.mu.Unlock()
	return saveSnapshot(s.storage, keySkills, items)
}

// Reset discards both persisted snapshots and reverts to bundled defaults.
func (s *OverrideStore) Reset() error {
	if err := s.storage.Delete(keyWorkItems); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := s.storage.Delete(keySkills); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	s.mu.Lock()
	s.work = slices.Clone(DefaultWorkItems)
	s.skills = slices.Clone(DefaultSkills)
	s.mu.Unlock()
	return nil
}
