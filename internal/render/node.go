// Package render projects a gallery scene into a positioned visual tree.
// Projection is pure: the same document and scale always yield the same
// nodes, and nothing in the scene is mutated.
package render

import (
	"strconv"
	"strings"
)

// NodeKind names the renderable primitive a Node carries.
type NodeKind string

const (
	KindRect        NodeKind = "rect"
	KindCircle      NodeKind = "circle"
	KindText        NodeKind = "text"
	KindImage       NodeKind = "image"
	KindPath        NodeKind = "path"
	KindGroup       NodeKind = "group"
	KindFrame       NodeKind = "frame"
	KindGalleryItem NodeKind = "gallery-item"
)

// Node is one element of the projected visual tree. X/Y/Width/Height are
// post-scale screen units; the object's own rotation and scale are NOT
// folded into them but carried in Transform (and the numeric fields), to
// be applied about the node's top-left corner.
type Node struct {
	Kind      NodeKind `json:"kind"`
	ID        string   `json:"id"`
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	Width     float64  `json:"width"`
	Height    float64  `json:"height"`
	Rotation  float64  `json:"rotation"`
	ScaleX    float64  `json:"scaleX"`
	ScaleY    float64  `json:"scaleY"`
	Transform string   `json:"transform,omitempty"`
	Opacity   float64  `json:"opacity"`
	ZIndex    int      `json:"zIndex"`

	Fill         string  `json:"fill,omitempty"`
	Stroke       string  `json:"stroke,omitempty"`
	StrokeWidth  float64 `json:"strokeWidth,omitempty"`
	CornerRadius float64 `json:"cornerRadius,omitempty"`

	// text
	Text       string  `json:"text,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	FontFamily string  `json:"fontFamily,omitempty"`
	Href       string  `json:"href,omitempty"`

	// image and gallery-item
	Src           string  `json:"src,omitempty"`
	OffsetX       float64 `json:"offsetX,omitempty"`
	OffsetY       float64 `json:"offsetY,omitempty"`
	NaturalWidth  float64 `json:"naturalWidth,omitempty"`
	NaturalHeight float64 `json:"naturalHeight,omitempty"`
	ArtworkID     string  `json:"artworkId,omitempty"`
	Caption       string  `json:"caption,omitempty"`

	// path: alternating x/y pairs rebased to the node origin and already
	// scaled, so RawStrokeWidth must be used as-is when drawing them.
	Path           []float64 `json:"path,omitempty"`
	Closed         bool      `json:"closed,omitempty"`
	RawStrokeWidth float64   `json:"rawStrokeWidth,omitempty"`

	// frame placeholder, set only when the frame has no children.
	Label string `json:"label,omitempty"`

	Children []*Node `json:"children,omitempty"`
}

// transformList renders the rotate-then-scale transform in list form,
// matching how the UI applies it (origin at the node's top-left). Empty
// when both parts are identity.
func transformList(rotation, sx, sy float64) string {
	var parts []string
	if rotation != 0 {
		parts = append(parts, "rotate("+fmtFloat(rotation)+"deg)")
	}
	if sx != 1 || sy != 1 {
		parts = append(parts, "scale("+fmtFloat(sx)+", "+fmtFloat(sy)+")")
	}
	return strings.Join(parts, " ")
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
