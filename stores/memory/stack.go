package memory

import (
	"canvas-memento/core"

	"github.com/sirupsen/logrus"
)

// snapshotStack is not safe for concurrent use; a canvas and its history are
// driven from a single goroutine.
type snapshotStack struct {
	snapshots []*core.Snapshot
	limit     int
}

// NewStack returns an in-memory snapshot stack. A limit of zero or less means
// the stack is unbounded; otherwise pushing past the limit drops the oldest
// snapshot.
func NewStack(limit int) core.SnapshotStack {
	if limit < 0 {
		limit = 0
	}
	return &snapshotStack{limit: limit}
}

func (s *snapshotStack) Push(snapshot *core.Snapshot) {
	if snapshot == nil {
		return
	}

	s.snapshots = append(s.snapshots, snapshot)

	log := logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID(),
		"shapes":      snapshot.Len(),
	})

	if s.limit > 0 && len(s.snapshots) > s.limit {
		excess := len(s.snapshots) - s.limit
		log.WithField("dropped", excess).Debug("Snapshot limit reached, dropping oldest")
		s.snapshots = append([]*core.Snapshot(nil), s.snapshots[excess:]...)
	}

	log.WithField("depth", len(s.snapshots)).Debug("Snapshot pushed")
}

func (s *snapshotStack) Pop() (*core.Snapshot, bool) {
	if len(s.snapshots) == 0 {
		return nil, false
	}

	last := len(s.snapshots) - 1
	snapshot := s.snapshots[last]
	s.snapshots[last] = nil
	s.snapshots = s.snapshots[:last]

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID(),
		"depth":       len(s.snapshots),
	}).Debug("Snapshot popped")
	return snapshot, true
}

func (s *snapshotStack) Len() int {
	return len(s.snapshots)
}
