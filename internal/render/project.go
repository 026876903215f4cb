package render

import (
	"math"
	"sort"

	"github.com/artfolio/artfolio/canvas-go/internal/scene"
)

// Options carries ambient rendering inputs that are not part of the scene.
type Options struct {
	// Origin absolutizes leading-slash hyperlink paths, e.g.
	// "https://artfolio.app". Empty leaves such paths unlinked.
	Origin string
}

// ProjectScene projects the document's top-level objects at the given
// scale. Nodes come back in draw order: ZIndex ascending, document order
// preserved between equal indices. Invisible objects are absent.
func ProjectScene(doc *scene.Document, scale float64, opts Options) []*Node {
	if doc == nil {
		return nil
	}
	return projectAll(doc.Objects, scale, opts)
}

// Project maps one object to its visual node, recursively for containers.
// It returns nil for invisible objects and for point-based variants whose
// point list is malformed; both render as nothing.
func Project(obj *scene.Object, scale float64, opts Options) *Node {
	if obj == nil || !obj.Visible {
		return nil
	}

	n := &Node{
		ID:        obj.ID,
		X:         obj.X * scale,
		Y:         obj.Y * scale,
		Rotation:  obj.Rotation,
		ScaleX:    obj.ScaleX,
		ScaleY:    obj.ScaleY,
		Transform: transformList(obj.Rotation, obj.ScaleX, obj.ScaleY),
		Opacity:   obj.Opacity,
		ZIndex:    obj.ZIndex,
	}

	switch obj.Type {
	case scene.TypeRect:
		n.Kind = KindRect
		n.Width = obj.Width * scale
		n.Height = obj.Height * scale
		n.Fill = obj.Fill
		n.Stroke = obj.Stroke
		n.StrokeWidth = obj.StrokeWidth * scale
		n.CornerRadius = obj.CornerRadius * scale

	case scene.TypeCircle:
		// The stored point is the circle's center; the visual anchor is
		// the top-left of its bounding square. The radius shift happens
		// before scaling.
		n.Kind = KindCircle
		n.X = (obj.X - obj.Radius) * scale
		n.Y = (obj.Y - obj.Radius) * scale
		n.Width = 2 * obj.Radius * scale
		n.Height = 2 * obj.Radius * scale
		n.Fill = obj.Fill
		n.Stroke = obj.Stroke
		n.StrokeWidth = obj.StrokeWidth * scale

	case scene.TypeText:
		n.Kind = KindText
		n.Text = obj.Text
		n.FontSize = obj.FontSize * scale
		n.FontFamily = obj.FontFamily
		n.Fill = obj.Fill
		if obj.Width > 0 {
			n.Width = obj.Width * scale
		}
		if obj.IsHyperlink {
			n.Href = DeriveURL(obj.Text, opts.Origin)
		}

	case scene.TypeImage:
		n.Kind = KindImage
		n.Src = obj.Src
		if obj.CropWidth > 0 && obj.CropHeight > 0 {
			// Crop shrinks the visible region and offsets the source
			// inside it; the image itself keeps its natural size.
			n.Width = obj.CropWidth * scale
			n.Height = obj.CropHeight * scale
			n.OffsetX = -obj.CropX * scale
			n.OffsetY = -obj.CropY * scale
			n.NaturalWidth = obj.Width * scale
			n.NaturalHeight = obj.Height * scale
		} else {
			n.Width = obj.Width * scale
			n.Height = obj.Height * scale
		}

	case scene.TypeGalleryItem:
		n.Kind = KindGalleryItem
		n.Width = obj.Width * scale
		n.Height = obj.Height * scale
		n.Src = obj.Src
		n.ArtworkID = obj.ArtworkID
		n.Caption = obj.Caption

	case scene.TypeGroup:
		n.Kind = KindGroup
		n.Children = projectAll(obj.Children, scale, opts)

	case scene.TypeFrame:
		n.Kind = KindFrame
		n.Width = obj.Width * scale
		n.Height = obj.Height * scale
		n.Fill = obj.Fill
		n.Stroke = obj.Stroke
		n.StrokeWidth = obj.StrokeWidth * scale
		n.CornerRadius = obj.CornerRadius * scale
		if len(obj.Children) == 0 {
			n.Label = obj.Label
			if n.Label == "" {
				n.Label = "Empty frame"
			}
		} else {
			n.Children = projectAll(obj.Children, scale, opts)
		}

	case scene.TypeLine, scene.TypeTriangle, scene.TypeStar, scene.TypeDiamond:
		if !pathInto(n, obj, scale) {
			return nil
		}

	default:
		return nil
	}

	return n
}

// pathInto fills n from a point-based variant. Points are relative to the
// object's anchor; the node is sized to the tight bounding box of the
// scaled point set and the path is rebased to the node origin. Because
// the path coordinates are pre-scaled, the stroke width is carried raw.
func pathInto(n *Node, obj *scene.Object, scale float64) bool {
	if len(obj.Points) < 4 || len(obj.Points)%2 != 0 {
		return false
	}

	pts := make([]float64, len(obj.Points))
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := 0; i < len(obj.Points); i += 2 {
		x := obj.Points[i] * scale
		y := obj.Points[i+1] * scale
		pts[i], pts[i+1] = x, y
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	for i := 0; i < len(pts); i += 2 {
		pts[i] -= minX
		pts[i+1] -= minY
	}

	n.Kind = KindPath
	n.X = obj.X*scale + minX
	n.Y = obj.Y*scale + minY
	n.Width = maxX - minX
	n.Height = maxY - minY
	n.Path = pts
	n.Closed = obj.Closed && obj.Type != scene.TypeLine
	n.Fill = obj.Fill
	n.Stroke = obj.Stroke
	n.RawStrokeWidth = obj.StrokeWidth
	return true
}

func projectAll(objs []*scene.Object, scale float64, opts Options) []*Node {
	var nodes []*Node
	for _, obj := range objs {
		if node := Project(obj, scale, opts); node != nil {
			nodes = append(nodes, node)
		}
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].ZIndex < nodes[j].ZIndex
	})
	return nodes
}
