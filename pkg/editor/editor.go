// Package editor implements the master/detail edit flow: a working copy of
// one entity that is committed back to its collection wholesale or
// discarded.
package editor

import "errors"

// ErrNotFound is returned when the edited entity is no longer in its
// collection. Callers return to the list view; this is never fatal.
var ErrNotFound = errors.New("entity not found")

// Editor wires the generic edit flow to one collection.
type Editor[T any] struct {
	get     func(id string) (T, bool)
	replace func(T) bool
	clone   func(T) T
}

func New[T any](get func(id string) (T, bool), replace func(T) bool, clone func(T) T) *Editor[T] {
	return &Editor[T]{get: get, replace: replace, clone: clone}
}

// Session is one open detail view. The working copy is a deep snapshot;
// field edits touch only the snapshot until Commit.
type Session[T any] struct {
	ed       *Editor[T]
	entityID string
	working  T
	editing  bool
}

// Open starts a detail session for the entity, or fails gracefully when it
// no longer exists.
func (ed *Editor[T]) Open(id string) (*Session[T], error) {
	current, ok := ed.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &Session[T]{ed: ed, entityID: id, working: ed.clone(current)}, nil
}

// EnterEdit re-snapshots the entity from its collection and flips the edit
// flag on.
func (s *Session[T]) EnterEdit() error {
	current, ok := s.ed.get(s.entityID)
	if !ok {
		return ErrNotFound
	}
	s.working = s.ed.clone(current)
	s.editing = true
	return nil
}

// Working exposes the scratch copy for field edits.
func (s *Session[T]) Working() *T { return &s.working }

// Editing reports whether the session is in edit mode.
func (s *Session[T]) Editing() bool { return s.editing }

// Cancel discards pending edits by reverting to the stored record.
func (s *Session[T]) Cancel() error {
	current, ok := s.ed.get(s.entityID)
	if !ok {
		return ErrNotFound
	}
	s.working = s.ed.clone(current)
	s.editing = false
	return nil
}

// Commit replaces the stored record with the working copy. The swap is the
// whole record, so committing the same copy twice leaves the collection
// unchanged after the first.
func (s *Session[T]) Commit() error {
	if !s.ed.replace(s.working) {
		return ErrNotFound
	}
	s.editing = false
	return nil
}

// QuickTransition applies a shortcut mutation (typically a status change
// plus its side effects) to the stored record and commits immediately,
// bypassing edit mode. The updated record is returned.
func (ed *Editor[T]) QuickTransition(id string, apply func(*T)) (T, error) {
	current, ok := ed.get(id)
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	updated := ed.clone(current)
	apply(&updated)
	if !ed.replace(updated) {
		var zero T
		return zero, ErrNotFound
	}
	return updated, nil
}
