package stores

import (
	"canvas-memento/core"
	"canvas-memento/stores/memory"

	"github.com/sirupsen/logrus"
)

// GetStack returns the snapshot stack backing a History. Snapshots live in
// memory only.
func GetStack(limit int) core.SnapshotStack {
	storageField := logrus.Fields{
		"storageType": "in-memory",
		"limit":       limit,
	}
	if limit <= 0 {
		storageField["limit"] = "unbounded"
	}

	logrus.WithFields(storageField).Info("Use snapshot stack")
	return memory.NewStack(limit)
}
