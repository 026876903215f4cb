// Package snap computes snapped positions and alignment guides for an
// object being dragged across the gallery canvas. Resolve is pure and is
// called once per pointer-move frame.
package snap

import (
	"math"

	"github.com/artfolio/artfolio/canvas-go/internal/scene"
)

const (
	// Threshold is the maximum distance, in scene units, at which a snap
	// candidate attracts the moving object.
	Threshold = 10.0
	// GridSize is the grid line spacing in scene units.
	GridSize = 10.0
)

type Axis string

const (
	AxisVertical   Axis = "vertical"
	AxisHorizontal Axis = "horizontal"
)

// Guide is a transient alignment line shown while a snap condition holds.
// Vertical guides carry an x position, horizontal guides a y position.
type Guide struct {
	Axis     Axis    `json:"axis"`
	Position float64 `json:"position"`
}

// Input describes one snap query: the moving object's proposed top-left
// position and effective size, its siblings (the moving object itself must
// not be in the list), the canvas dimensions and the editor toggles.
type Input struct {
	X, Y          float64
	Width, Height float64
	Siblings      []*scene.Object
	CanvasWidth   float64
	CanvasHeight  float64
	GridEnabled   bool
	SnapEnabled   bool
}

// Result is the snapped position plus the guides to display. Each axis
// snaps at most once, so there is at most one guide per axis.
type Result struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Guides []Guide `json:"guides,omitempty"`
}

// Resolve applies the snap rules in priority order. Per axis, the first
// rule that produces a guide wins: canvas center, then grid (needs both
// toggles), then sibling alignment (needs snapEnabled). An axis with no
// match keeps its raw input value.
func Resolve(in Input) Result {
	res := Result{X: in.X, Y: in.Y}
	var xSnapped, ySnapped bool

	cx := in.X + in.Width/2
	cy := in.Y + in.Height/2

	// Canvas-center snap applies regardless of the toggles.
	canvasCX := in.CanvasWidth / 2
	if math.Abs(cx-canvasCX) <= Threshold {
		res.X = canvasCX - in.Width/2
		res.Guides = append(res.Guides, Guide{Axis: AxisVertical, Position: canvasCX})
		xSnapped = true
	}
	canvasCY := in.CanvasHeight / 2
	if math.Abs(cy-canvasCY) <= Threshold {
		res.Y = canvasCY - in.Height/2
		res.Guides = append(res.Guides, Guide{Axis: AxisHorizontal, Position: canvasCY})
		ySnapped = true
	}

	if in.GridEnabled && in.SnapEnabled {
		if !xSnapped {
			if pos, line, ok := gridSnap(in.X, in.Width); ok {
				res.X = pos
				res.Guides = append(res.Guides, Guide{Axis: AxisVertical, Position: line})
				xSnapped = true
			}
		}
		if !ySnapped {
			if pos, line, ok := gridSnap(in.Y, in.Height); ok {
				res.Y = pos
				res.Guides = append(res.Guides, Guide{Axis: AxisHorizontal, Position: line})
				ySnapped = true
			}
		}
	}

	if in.SnapEnabled {
		if !xSnapped {
			if c, ok := bestCandidate(in.Siblings, func(box scene.Rect) []candidate {
				return xCandidates(in.Width, box)
			}, in.X); ok {
				res.X = c.pos
				res.Guides = append(res.Guides, Guide{Axis: AxisVertical, Position: c.line})
			}
		}
		if !ySnapped {
			if c, ok := bestCandidate(in.Siblings, func(box scene.Rect) []candidate {
				return yCandidates(in.Height, box)
			}, in.Y); ok {
				res.Y = c.pos
				res.Guides = append(res.Guides, Guide{Axis: AxisHorizontal, Position: c.line})
			}
		}
	}

	return res
}

// gridSnap snaps the center of a span to the nearest grid multiple within
// Threshold, falling back to the raw edge coordinate.
func gridSnap(pos, size float64) (snapped, line float64, ok bool) {
	center := pos + size/2
	target := math.Round(center/GridSize) * GridSize
	if math.Abs(center-target) <= Threshold {
		return target - size/2, target, true
	}
	target = math.Round(pos/GridSize) * GridSize
	if math.Abs(pos-target) <= Threshold {
		return target, target, true
	}
	return 0, 0, false
}

// candidate pairs a snapped coordinate for the moving box with the
// alignment line to draw when it wins.
type candidate struct {
	pos  float64
	line float64
}

// xCandidates lists the five alignments of a moving span of width w
// against a sibling box: left-left, right-right, center-center,
// left-to-right, right-to-left.
func xCandidates(w float64, b scene.Rect) []candidate {
	bcx, _ := b.Center()
	return []candidate{
		{pos: b.X, line: b.X},
		{pos: b.Right() - w, line: b.Right()},
		{pos: bcx - w/2, line: bcx},
		{pos: b.Right(), line: b.Right()},
		{pos: b.X - w, line: b.X},
	}
}

func yCandidates(h float64, b scene.Rect) []candidate {
	_, bcy := b.Center()
	return []candidate{
		{pos: b.Y, line: b.Y},
		{pos: b.Bottom() - h, line: b.Bottom()},
		{pos: bcy - h/2, line: bcy},
		{pos: b.Bottom(), line: b.Bottom()},
		{pos: b.Y - h, line: b.Y},
	}
}

// bestCandidate scans every sibling's candidates and keeps the one with
// minimum distance to raw, within Threshold. Ties keep the earlier
// candidate, so iteration order decides between equally near siblings.
func bestCandidate(siblings []*scene.Object, candidates func(scene.Rect) []candidate, raw float64) (candidate, bool) {
	best := candidate{}
	bestDist := math.Inf(1)
	found := false

	for _, sib := range siblings {
		if sib == nil {
			continue
		}
		box := sib.BoundingBox()
		for _, c := range candidates(box) {
			d := math.Abs(c.pos - raw)
			if d <= Threshold && d < bestDist {
				best = c
				bestDist = d
				found = true
			}
		}
	}
	return best, found
}
