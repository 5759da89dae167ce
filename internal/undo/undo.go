// ABOUTME: Bounded generic checkpoint stack with redo for snapshot-based undo
// ABOUTME: Undo/Redo swap the caller's current state with the popped snapshot

package undo

// Stack holds undo and redo snapshots of some state type S.
// Checkpoints beyond maxSize evict the oldest snapshot.
type Stack[S any] struct {
	undoStack []S
	redoStack []S
	maxSize   int
}

// New creates a Stack with the given maximum depth. A depth below one is
// treated as one.
func New[S any](maxSize int) *Stack[S] {
	if maxSize < 1 {
		maxSize = 1
	}
	return &Stack[S]{
		undoStack: make([]S, 0, maxSize),
		maxSize:   maxSize,
	}
}

// Checkpoint saves a snapshot onto the undo stack and clears redo history.
func (s *Stack[S]) Checkpoint(state S) {
	if len(s.undoStack) >= s.maxSize {
		// Evict oldest
		s.undoStack = s.undoStack[1:]
	}
	s.undoStack = append(s.undoStack, state)
	s.redoStack = s.redoStack[:0]
}

// Undo pops the most recent checkpoint and records current as redoable.
// Returns the zero value and false if there is nothing to undo; current is
// not recorded in that case.
func (s *Stack[S]) Undo(current S) (S, bool) {
	if len(s.undoStack) == 0 {
		var zero S
		return zero, false
	}
	last := s.undoStack[len(s.undoStack)-1]
	s.undoStack = s.undoStack[:len(s.undoStack)-1]
	s.redoStack = append(s.redoStack, current)
	return last, true
}

// Redo pops the most recently undone state and records current as undoable.
func (s *Stack[S]) Redo(current S) (S, bool) {
	if len(s.redoStack) == 0 {
		var zero S
		return zero, false
	}
	last := s.redoStack[len(s.redoStack)-1]
	s.redoStack = s.redoStack[:len(s.redoStack)-1]
	if len(s.undoStack) >= s.maxSize {
		s.undoStack = s.undoStack[1:]
	}
	s.undoStack = append(s.undoStack, current)
	return last, true
}

// ClearRedo drops all redoable states.
func (s *Stack[S]) ClearRedo() {
	s.redoStack = s.redoStack[:0]
}

// CanUndo returns true if there are states to undo.
func (s *Stack[S]) CanUndo() bool {
	return len(s.undoStack) > 0
}

// CanRedo returns true if there are states to redo.
func (s *Stack[S]) CanRedo() bool {
	return len(s.redoStack) > 0
}

// Len returns the number of undoable and redoable snapshots.
func (s *Stack[S]) Len() (undo, redo int) {
	return len(s.undoStack), len(s.redoStack)
}
