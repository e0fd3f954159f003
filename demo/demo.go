package demo

import (
	"canvas-memento/core"
	"canvas-memento/history"
	"canvas-memento/stores"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Run plays the scripted canvas session against a fresh canvas and writes the
// transcript to w. historyLimit bounds the snapshot stack; zero or less means
// unbounded.
func Run(w io.Writer, historyLimit int) {
	canvas := core.NewCanvas()
	hist := history.New(stores.GetStack(historyLimit), w)

	canvas.AddShape(core.NewCircle("red", 10))
	hist.Save(canvas)
	canvas.Draw(w)

	canvas.AddShape(core.NewSquare("blue", 20))
	hist.Save(canvas)
	canvas.Draw(w)

	removeLast(w, canvas, hist)
	removeLast(w, canvas, hist)

	logrus.WithFields(logrus.Fields{
		"shapes": canvas.Len(),
		"depth":  hist.Depth(),
	}).Info("Demo finished")
}

// removeLast takes the last shape off the canvas and checkpoints the result.
func removeLast(w io.Writer, canvas *core.Canvas, hist *history.History) {
	fmt.Fprintln(w, "Undoing last action...")

	last, ok := canvas.LastShape()
	if !ok {
		fmt.Fprintln(w, "No shapes to undo.")
		return
	}

	canvas.RemoveShape(last)
	hist.Save(canvas)
	canvas.Draw(w)
}
