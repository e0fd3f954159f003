package core

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Canvas owns an ordered sequence of shapes. Insertion order is draw order.
type Canvas struct {
	shapes []Shape
}

func NewCanvas() *Canvas {
	return &Canvas{}
}

// AddShape appends s to the end of the sequence. Nil shapes, including typed
// nil pointers, are ignored.
func (c *Canvas) AddShape(s Shape) {
	if s == nil || s.ID() == "" {
		logrus.Debug("Nil shape not added")
		return
	}
	c.shapes = append(c.shapes, s)
	logrus.WithFields(logrus.Fields{
		"shape_id": s.ID(),
		"shapes":   len(c.shapes),
	}).Debug("Shape added")
}

// RemoveShape removes the first shape with the same handle as s.
// It reports whether a shape was removed; an absent shape is not an error.
func (c *Canvas) RemoveShape(s Shape) bool {
	if s == nil || s.ID() == "" {
		return false
	}

	log := logrus.WithField("shape_id", s.ID())
	for i, existing := range c.shapes {
		if existing.ID() != s.ID() {
			continue
		}
		shapes := make([]Shape, 0, len(c.shapes)-1)
		shapes = append(shapes, c.shapes[:i]...)
		c.shapes = append(shapes, c.shapes[i+1:]...)
		log.WithField("shapes", len(c.shapes)).Debug("Shape removed")
		return true
	}

	log.Debug("Shape not on canvas, nothing removed")
	return false
}

// Draw writes a header, one line per shape in order and a blank separator line.
func (c *Canvas) Draw(w io.Writer) {
	fmt.Fprintln(w, "Canvas state:")
	for _, s := range c.shapes {
		s.Draw(w)
	}
	fmt.Fprintln(w)
}

// Snapshot captures the current sequence. Later mutations of the canvas do not
// affect the returned snapshot.
func (c *Canvas) Snapshot() *Snapshot {
	return newSnapshot(c.shapes)
}

// Restore replaces the whole sequence with the shapes held by s.
func (c *Canvas) Restore(s *Snapshot) {
	if s == nil {
		return
	}
	c.shapes = s.Shapes()
	logrus.WithFields(logrus.Fields{
		"snapshot_id": s.ID(),
		"shapes":      len(c.shapes),
	}).Debug("Canvas restored")
}

// LastShape returns the shape at the tail of the sequence. The second result is
// false when the canvas is empty.
func (c *Canvas) LastShape() (Shape, bool) {
	if len(c.shapes) == 0 {
		return nil, false
	}
	return c.shapes[len(c.shapes)-1], true
}

// Shapes returns a copy of the current sequence.
func (c *Canvas) Shapes() []Shape {
	return append([]Shape(nil), c.shapes...)
}

func (c *Canvas) Len() int {
	return len(c.shapes)
}
