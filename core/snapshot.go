package core

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type (
	// Snapshot is an immutable capture of a canvas's shape sequence.
	Snapshot struct {
		id        string
		createdAt time.Time
		shapes    []Shape
	}

	// SnapshotStack holds snapshots last-in-first-out.
	SnapshotStack interface {
		Push(snapshot *Snapshot)
		// Pop removes and returns the most recent snapshot. It returns false
		// when the stack is empty.
		Pop() (*Snapshot, bool)
		Len() int
	}
)

func newSnapshot(shapes []Shape) *Snapshot {
	id := ulid.Make()
	return &Snapshot{
		id:        id.String(),
		createdAt: ulid.Time(id.Time()),
		shapes:    append([]Shape(nil), shapes...),
	}
}

func (s *Snapshot) ID() string {
	return s.id
}

// CreatedAt is the capture time, taken from the ULID timestamp.
func (s *Snapshot) CreatedAt() time.Time {
	return s.createdAt
}

// Shapes returns a copy of the captured sequence.
func (s *Snapshot) Shapes() []Shape {
	return append([]Shape(nil), s.shapes...)
}

func (s *Snapshot) Len() int {
	return len(s.shapes)
}
