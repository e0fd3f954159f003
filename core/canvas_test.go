package core

import (
	"bytes"
	"testing"
)

func drawString(c *Canvas) string {
	var buf bytes.Buffer
	c.Draw(&buf)
	return buf.String()
}

func TestNewCanvas(t *testing.T) {
	c := NewCanvas()
	if c.Len() != 0 {
		t.Errorf("new canvas has %d shapes, want 0", c.Len())
	}
	if got, want := drawString(c), "Canvas state:\n\n"; got != want {
		t.Errorf("Draw() = %q, want %q", got, want)
	}
}

func TestAddShape_DrawOrder(t *testing.T) {
	c := NewCanvas()
	c.AddShape(NewCircle("red", 10))
	c.AddShape(NewSquare("blue", 20))

	want := "Canvas state:\n" +
		"Drawing a red circle with radius 10\n" +
		"Drawing a blue square with side length 20\n" +
		"\n"
	if got := drawString(c); got != want {
		t.Errorf("Draw() = %q, want %q", got, want)
	}
}

func TestRemoveShape_ByIdentity(t *testing.T) {
	c := NewCanvas()
	first := NewCircle("red", 10)
	twin := NewCircle("red", 10)
	c.AddShape(first)
	c.AddShape(twin)

	if !c.RemoveShape(twin) {
		t.Fatal("RemoveShape() = false, want true")
	}
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}

	last, ok := c.LastShape()
	if !ok {
		t.Fatal("LastShape() reported empty canvas")
	}
	if last.ID() != first.ID() {
		t.Errorf("remaining shape = %s, want %s", last.ID(), first.ID())
	}
}

func TestRemoveShape_Absent(t *testing.T) {
	c := NewCanvas()
	c.AddShape(NewSquare("blue", 20))

	if c.RemoveShape(NewSquare("blue", 20)) {
		t.Error("RemoveShape() of a shape not on the canvas = true, want false")
	}
	if c.RemoveShape(nil) {
		t.Error("RemoveShape(nil) = true, want false")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestLastShape(t *testing.T) {
	c := NewCanvas()
	if s, ok := c.LastShape(); ok || s != nil {
		t.Errorf("LastShape() on empty canvas = (%v, %v), want (nil, false)", s, ok)
	}

	circle := NewCircle("red", 10)
	square := NewSquare("blue", 20)
	c.AddShape(circle)
	c.AddShape(square)

	s, ok := c.LastShape()
	if !ok || s.ID() != square.ID() {
		t.Errorf("LastShape() = %v, want the square", s)
	}

	c.RemoveShape(square)
	s, ok = c.LastShape()
	if !ok || s.ID() != circle.ID() {
		t.Errorf("LastShape() after removal = %v, want the circle", s)
	}
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	src := NewCanvas()
	src.AddShape(NewCircle("red", 10))
	src.AddShape(NewSquare("blue", 20))
	src.AddShape(NewCircle("green", 5))
	src.RemoveShape(src.Shapes()[1])

	snapshot := src.Snapshot()
	want := drawString(src)

	t.Run("Other canvas", func(t *testing.T) {
		dst := NewCanvas()
		dst.AddShape(NewSquare("black", 1))
		dst.Restore(snapshot)
		if got := drawString(dst); got != want {
			t.Errorf("restored Draw() = %q, want %q", got, want)
		}
	})

	t.Run("Same canvas after mutation", func(t *testing.T) {
		src.AddShape(NewSquare("yellow", 7))
		last, _ := src.LastShape()
		src.RemoveShape(src.Shapes()[0])
		src.Restore(snapshot)
		if got := drawString(src); got != want {
			t.Errorf("restored Draw() = %q, want %q", got, want)
		}
		if src.RemoveShape(last) {
			t.Error("shape added after the snapshot survived Restore")
		}
	})
}

func TestRestore_Overwrites(t *testing.T) {
	c := NewCanvas()
	empty := c.Snapshot()
	c.AddShape(NewCircle("red", 10))
	c.AddShape(NewCircle("red", 11))

	c.Restore(empty)
	if c.Len() != 0 {
		t.Errorf("Len() after restoring empty snapshot = %d, want 0", c.Len())
	}

	c.AddShape(NewCircle("red", 12))
	c.Restore(nil)
	if c.Len() != 1 {
		t.Errorf("Restore(nil) changed canvas: Len() = %d, want 1", c.Len())
	}
}

func TestRestore_CanvasMutationDoesNotReachSnapshot(t *testing.T) {
	c := NewCanvas()
	c.AddShape(NewCircle("red", 10))
	snapshot := c.Snapshot()

	c.Restore(snapshot)
	c.AddShape(NewSquare("blue", 20))

	if snapshot.Len() != 1 {
		t.Errorf("snapshot Len() = %d after mutating restored canvas, want 1", snapshot.Len())
	}
}

func TestShapes_ReturnsCopy(t *testing.T) {
	c := NewCanvas()
	c.AddShape(NewCircle("red", 10))

	shapes := c.Shapes()
	shapes[0] = NewSquare("blue", 20)

	if got := drawString(c); got != "Canvas state:\nDrawing a red circle with radius 10\n\n" {
		t.Errorf("canvas changed through Shapes(): %q", got)
	}
}

func TestNilShapes(t *testing.T) {
	var circle *Circle
	var square *Square

	testCases := []struct {
		name  string
		shape Shape
	}{
		{"Untyped nil", nil},
		{"Nil circle", circle},
		{"Nil square", square},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCanvas()
			c.AddShape(NewCircle("red", 10))

			c.AddShape(tc.shape)
			if c.Len() != 1 {
				t.Errorf("Len() after AddShape(nil) = %d, want 1", c.Len())
			}
			if c.RemoveShape(tc.shape) {
				t.Error("RemoveShape(nil) = true, want false")
			}
			if got, want := drawString(c), "Canvas state:\nDrawing a red circle with radius 10\n\n"; got != want {
				t.Errorf("Draw() = %q, want %q", got, want)
			}
		})
	}
}
