package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// ErrDraftClosed rejects writes after a submission ended the draft
// lifecycle. A fresh lifecycle starts only through Reopen.
var ErrDraftClosed = errors.New("draft lifecycle closed")

// FeedbackDraft is the auto-saved state of the feedback form.
type FeedbackDraft struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Rating  int    `json:"rating"`
	Opinion string `json:"opinion"`
}

// DraftStore persists the feedback draft under its fixed key on every field
// change while the form is open, and clears it exactly once on successful
// submission.
type DraftStore struct {
	storage Storage

	mu        sync.Mutex
	submitted bool
}

func NewDraftStore(storage Storage) *DraftStore {
	return &DraftStore{storage: storage}
}

// Restore reads the saved draft. A missing or malformed snapshot means "no
// draft" and is never surfaced as an error.
func (d *DraftStore) Restore() (FeedbackDraft, bool) {
	raw, ok, err := d.storage.Get(keyDraft)
	if err != nil || !ok {
		return FeedbackDraft{}, false
	}
	var draft FeedbackDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return FeedbackDraft{}, false
	}
	return draft, true
}

// Persist saves the current form state. Refused once the draft has been
// submitted.
func (d *DraftStore) Persist(draft FeedbackDraft) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.submitted {
		return ErrDraftClosed
	}
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("%w: encode draft: %v", ErrPersistence, err)
	}
	if err := d.storage.Put(keyDraft, string(raw)); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// Clear removes the saved draft and ends the lifecycle. Called after a
// successful submission; retries of a failed submission keep the draft.
func (d *DraftStore) Clear() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.submitted = true
	if err := d.storage.Delete(keyDraft); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// Reopen starts a fresh draft lifecycle after the submitted state has been
// acknowledged.
func (d *DraftStore) Reopen() {
	d.mu.Lock()
	d.submitted = false
	d.mu.Unlock()
}
