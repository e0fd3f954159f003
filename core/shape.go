package core

import (
	"fmt"
	"io"

	"github.com/oklog/ulid/v2"
)

type (
	// Shape is a drawable value held by a Canvas. The set of shapes is closed:
	// only Circle and Square implement it.
	Shape interface {
		// ID is the handle used for identity-based removal.
		ID() string
		// Draw writes a one-line description of the shape to w.
		Draw(w io.Writer)
		String() string

		shape()
	}

	// Circle is an immutable circle with a color label and radius.
	Circle struct {
		id     string
		color  string
		radius int
	}

	// Square is an immutable square with a color label and side length.
	Square struct {
		id    string
		color string
		side  int
	}
)

// NewCircle accepts any color and any radius, including non-positive ones.
// Use Valid to check the size.
func NewCircle(color string, radius int) *Circle {
	return &Circle{id: ulid.Make().String(), color: color, radius: radius}
}

// NewSquare accepts any color and any side length, including non-positive ones.
func NewSquare(color string, side int) *Square {
	return &Square{id: ulid.Make().String(), color: color, side: side}
}

// ID returns "" for a nil circle, which no canvas accepts.
func (c *Circle) ID() string {
	if c == nil {
		return ""
	}
	return c.id
}

func (c *Circle) Color() string { return c.color }
func (c *Circle) Radius() int { return c.radius }
func (c *Circle) Valid() bool { return c.radius > 0 }

func (c *Circle) String() string {
	return fmt.Sprintf("Drawing a %s circle with radius %d", c.color, c.radius)
}

func (c *Circle) Draw(w io.Writer) {
	fmt.Fprintln(w, c.String())
}

func (c *Circle) shape() {}

func (s *Square) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

func (s *Square) Color() string { return s.color }
func (s *Square) Side() int { return s.side }
func (s *Square) Valid() bool { return s.side > 0 }

func (s *Square) String() string {
	return fmt.Sprintf("Drawing a %s square with side length %d", s.color, s.side)
}

func (s *Square) Draw(w io.Writer) {
	fmt.Fprintln(w, s.String())
}

func (s *Square) shape() {}
