// Package history records canvas snapshots and rolls a canvas back to them.
//
// A History is a stack of snapshots. Save pushes the canvas's current state;
// Undo pops the most recent snapshot and restores the canvas from it. Undo
// therefore returns to the last saved state, which after a save-per-mutation
// workflow is the state produced by the latest mutation itself.
package history

import (
	"canvas-memento/core"
	"canvas-memento/stores/memory"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// NothingToUndoMessage is written to the history's output when Undo is called
// with an empty stack.
const NothingToUndoMessage = "No states to undo."

var ErrNothingToUndo = errors.New("nothing to undo")

type History struct {
	stack core.SnapshotStack
	out   io.Writer
}

// New creates a history backed by stack. A nil stack falls back to an
// unbounded in-memory stack and a nil out discards messages.
func New(stack core.SnapshotStack, out io.Writer) *History {
	if stack == nil {
		stack = memory.NewStack(0)
	}
	if out == nil {
		out = io.Discard
	}
	return &History{stack: stack, out: out}
}

// Save pushes a snapshot of c onto the stack.
func (h *History) Save(c *core.Canvas) {
	snapshot := c.Snapshot()
	h.stack.Push(snapshot)

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID(),
		"shapes":      snapshot.Len(),
		"depth":       h.stack.Len(),
	}).Debug("Canvas state saved")
}

// Undo restores c from the most recently saved snapshot. With nothing saved it
// reports NothingToUndoMessage, leaves c untouched and returns ErrNothingToUndo.
// The error is informational; callers may ignore it.
func (h *History) Undo(c *core.Canvas) error {
	snapshot, ok := h.stack.Pop()
	if !ok {
		logrus.Debug("Undo requested with empty history")
		fmt.Fprintln(h.out, NothingToUndoMessage)
		return ErrNothingToUndo
	}

	c.Restore(snapshot)
	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID(),
		"depth":       h.stack.Len(),
	}).Debug("Canvas state undone")
	return nil
}

// Depth returns the number of snapshots available to Undo. With an unbounded
// stack it equals saves minus successful undos; a bounded stack caps it at the
// stack's limit.
func (h *History) Depth() int {
	return h.stack.Len()
}
