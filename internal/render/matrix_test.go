package render

import (
	"math"
	"testing"
)

func TestMatrixRotateThenScale(t *testing.T) {
	n := &Node{Rotation: 90, ScaleX: 2, ScaleY: 1}
	m := n.Matrix()

	// Scale applies first: (1, 0) -> (2, 0); rotating 90 degrees lands
	// on (0, 2).
	x, y := m.TransformPoint(1, 0)
	if math.Abs(x) > 1e-9 || math.Abs(y-2) > 1e-9 {
		t.Errorf("TransformPoint(1, 0) = (%g, %g), want (0, 2)", x, y)
	}
}

func TestMatrixIdentity(t *testing.T) {
	n := &Node{ScaleX: 1, ScaleY: 1}
	if !n.Matrix().IsIdentity() {
		t.Error("identity node matrix is not identity")
	}

	m := Translate(10, 5)
	x, y := m.TransformPoint(1, 1)
	if x != 11 || y != 6 {
		t.Errorf("Translate(10, 5) point = (%g, %g), want (11, 6)", x, y)
	}

	if Identity().Multiply(Scale(2, 2)).IsIdentity() {
		t.Error("scaled matrix reported as identity")
	}
}
