package snap

import (
	"testing"

	"github.com/artfolio/artfolio/canvas-go/internal/scene"
)

func rect(id string, x, y, w, h float64) *scene.Object {
	return &scene.Object{
		ID: id, Type: scene.TypeRect,
		X: x, Y: y, Width: w, Height: h,
		ScaleX: 1, ScaleY: 1, Opacity: 1, Visible: true,
	}
}

func findGuide(guides []Guide, axis Axis) (Guide, bool) {
	for _, g := range guides {
		if g.Axis == axis {
			return g, true
		}
	}
	return Guide{}, false
}

func TestSiblingEdgeThreshold(t *testing.T) {
	siblings := []*scene.Object{rect("a", 0, 0, 100, 100)}

	tests := []struct {
		name      string
		x         float64
		wantX     float64
		wantGuide bool
	}{
		{name: "within threshold snaps to sibling right edge", x: 109, wantX: 100, wantGuide: true},
		{name: "outside threshold stays put", x: 111, wantX: 111, wantGuide: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(Input{
				X: tt.x, Y: 300, Width: 100, Height: 100,
				Siblings:    siblings,
				CanvasWidth: 1000, CanvasHeight: 1000,
				SnapEnabled: true,
			})
			if res.X != tt.wantX {
				t.Errorf("X = %g, want %g", res.X, tt.wantX)
			}
			g, ok := findGuide(res.Guides, AxisVertical)
			if ok != tt.wantGuide {
				t.Fatalf("vertical guide present = %v, want %v", ok, tt.wantGuide)
			}
			if ok && g.Position != 100 {
				t.Errorf("guide at %g, want 100", g.Position)
			}
		})
	}
}

func TestCanvasCenterSnapIgnoresToggles(t *testing.T) {
	res := Resolve(Input{
		X: 446, Y: 40, Width: 100, Height: 100,
		CanvasWidth: 1000, CanvasHeight: 800,
		GridEnabled: false, SnapEnabled: false,
	})
	if res.X != 450 {
		t.Errorf("X = %g, want 450 (center snapped)", res.X)
	}
	if g, ok := findGuide(res.Guides, AxisVertical); !ok || g.Position != 500 {
		t.Errorf("vertical guide = %+v (present=%v), want position 500", g, ok)
	}
	if res.Y != 40 {
		t.Errorf("Y = %g, want 40 (untouched)", res.Y)
	}
	if _, ok := findGuide(res.Guides, AxisHorizontal); ok {
		t.Error("unexpected horizontal guide")
	}
}

func TestGridSnapNeedsBothToggles(t *testing.T) {
	in := Input{
		X: 52, Y: 300, Width: 30, Height: 30,
		CanvasWidth: 1000, CanvasHeight: 1000,
	}

	in.GridEnabled, in.SnapEnabled = true, true
	res := Resolve(in)
	// Center 67 attracts to the 70 grid line.
	if res.X != 55 {
		t.Errorf("X = %g, want 55", res.X)
	}
	if g, ok := findGuide(res.Guides, AxisVertical); !ok || g.Position != 70 {
		t.Errorf("vertical guide = %+v (present=%v), want position 70", g, ok)
	}

	in.GridEnabled, in.SnapEnabled = true, false
	if res := Resolve(in); res.X != 52 {
		t.Errorf("grid without snapEnabled moved X to %g", res.X)
	}
	in.GridEnabled, in.SnapEnabled = false, true
	if res := Resolve(in); res.X != 52 {
		t.Errorf("snap without gridEnabled gridded X to %g", res.X)
	}
}

func TestCenterRuleBeatsSiblings(t *testing.T) {
	// Sibling left edge is 2 away, canvas center is 4 away: the center
	// rule runs first and claims the axis.
	res := Resolve(Input{
		X: 446, Y: 300, Width: 100, Height: 100,
		Siblings:    []*scene.Object{rect("a", 448, 600, 50, 50)},
		CanvasWidth: 1000, CanvasHeight: 1000,
		SnapEnabled: true,
	})
	if res.X != 450 {
		t.Errorf("X = %g, want 450 from canvas center", res.X)
	}
	g, ok := findGuide(res.Guides, AxisVertical)
	if !ok || g.Position != 500 {
		t.Errorf("vertical guide = %+v, want canvas center 500", g)
	}
}

func TestGridClaimsAxisBeforeSiblings(t *testing.T) {
	// Sibling alignment at distance 1 loses to the grid, which owns the
	// axis first.
	res := Resolve(Input{
		X: 52, Y: 300, Width: 30, Height: 30,
		Siblings:    []*scene.Object{rect("a", 51, 600, 40, 40)},
		CanvasWidth: 1000, CanvasHeight: 1000,
		GridEnabled: true, SnapEnabled: true,
	})
	if res.X != 55 {
		t.Errorf("X = %g, want grid result 55", res.X)
	}
	if g, _ := findGuide(res.Guides, AxisVertical); g.Position != 70 {
		t.Errorf("guide position = %g, want grid line 70", g.Position)
	}
}

func TestEqualDistanceKeepsFirstSibling(t *testing.T) {
	// Both siblings offer a left-edge alignment 5 away.
	res := Resolve(Input{
		X: 105, Y: 300, Width: 50, Height: 50,
		Siblings: []*scene.Object{
			rect("first", 100, 500, 40, 40),
			rect("second", 110, 600, 40, 40),
		},
		CanvasWidth: 2000, CanvasHeight: 2000,
		SnapEnabled: true,
	})
	if res.X != 100 {
		t.Errorf("X = %g, want 100 from the first sibling", res.X)
	}
}

func TestCircleSiblingSnapsByBoundingBox(t *testing.T) {
	// Circle radius 30 at (200, 200): bounding box spans x 170..230.
	res := Resolve(Input{
		X: 233, Y: 500, Width: 50, Height: 50,
		Siblings: []*scene.Object{{
			ID: "c", Type: scene.TypeCircle, X: 200, Y: 200, Radius: 30,
			ScaleX: 1, ScaleY: 1, Opacity: 1, Visible: true,
		}},
		CanvasWidth: 2000, CanvasHeight: 2000,
		SnapEnabled: true,
	})
	if res.X != 230 {
		t.Errorf("X = %g, want 230 (circle box right edge)", res.X)
	}
}

func TestAxesSnapIndependently(t *testing.T) {
	siblings := []*scene.Object{rect("a", 0, 0, 100, 100)}
	res := Resolve(Input{
		X: 104, Y: 400, Width: 100, Height: 100,
		Siblings:    siblings,
		CanvasWidth: 2000, CanvasHeight: 2000,
		SnapEnabled: true,
	})
	if res.X != 100 {
		t.Errorf("X = %g, want 100", res.X)
	}
	if res.Y != 400 {
		t.Errorf("Y = %g, want raw 400", res.Y)
	}
	if len(res.Guides) != 1 {
		t.Errorf("guides = %+v, want exactly one", res.Guides)
	}
}
