package scene

// ObjectType discriminates the closed set of scene object variants.
type ObjectType string

const (
	TypeRect        ObjectType = "rect"
	TypeCircle      ObjectType = "circle"
	TypeText        ObjectType = "text"
	TypeImage       ObjectType = "image"
	TypeLine        ObjectType = "line"
	TypeGroup       ObjectType = "group"
	TypeFrame       ObjectType = "frame"
	TypeGalleryItem ObjectType = "gallery-item"
	TypeTriangle    ObjectType = "triangle"
	TypeStar        ObjectType = "star"
	TypeDiamond     ObjectType = "diamond"
)

// Valid reports whether t is one of the known object types.
func (t ObjectType) Valid() bool {
	switch t {
	case TypeRect, TypeCircle, TypeText, TypeImage, TypeLine,
		TypeGroup, TypeFrame, TypeGalleryItem,
		TypeTriangle, TypeStar, TypeDiamond:
		return true
	}
	return false
}

// IsContainer reports whether t owns an ordered child list.
func (t ObjectType) IsContainer() bool {
	return t == TypeGroup || t == TypeFrame
}

// HasPoints reports whether t is drawn from a relative point list.
func (t ObjectType) HasPoints() bool {
	return t == TypeLine || t == TypeTriangle || t == TypeStar || t == TypeDiamond
}

// Object is one visual element in a gallery scene. It is a tagged union:
// Type selects the variant and which of the optional fields below are
// meaningful. Common fields are always present.
//
// Coordinates are scene units. (X, Y) is the top-left anchor for every
// variant except circle, where it is the center. Points for line and
// polygon variants are alternating x/y pairs relative to (X, Y).
type Object struct {
	ID       string     `json:"id"`
	Type     ObjectType `json:"type"`
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
	Rotation float64    `json:"rotation"`
	ScaleX   float64    `json:"scaleX"`
	ScaleY   float64    `json:"scaleY"`
	Opacity  float64    `json:"opacity"`
	ZIndex   int        `json:"zIndex"`
	Visible  bool       `json:"visible"`

	// rect, image, gallery-item, frame. For text: optional soft-wrap width.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// circle
	Radius float64 `json:"radius,omitempty"`

	// Paint for rect, circle, frame and the point-based variants.
	Fill         string  `json:"fill,omitempty"`
	Stroke       string  `json:"stroke,omitempty"`
	StrokeWidth  float64 `json:"strokeWidth,omitempty"`
	CornerRadius float64 `json:"cornerRadius,omitempty"`

	// text
	Text        string  `json:"text,omitempty"`
	FontSize    float64 `json:"fontSize,omitempty"`
	FontFamily  string  `json:"fontFamily,omitempty"`
	IsHyperlink bool    `json:"isHyperlink,omitempty"`

	// image
	Src        string  `json:"src,omitempty"`
	CropX      float64 `json:"cropX,omitempty"`
	CropY      float64 `json:"cropY,omitempty"`
	CropWidth  float64 `json:"cropWidth,omitempty"`
	CropHeight float64 `json:"cropHeight,omitempty"`

	// gallery-item
	ArtworkID string `json:"artworkId,omitempty"`
	Caption   string `json:"caption,omitempty"`

	// line, triangle, star, diamond. Even length >= 4 or the object
	// renders as empty.
	Points []float64 `json:"points,omitempty"`
	Closed bool      `json:"closed,omitempty"`

	// group, frame. A child belongs to exactly one container.
	Children []*Object `json:"children,omitempty"`

	// frame placeholder caption shown when the frame is empty.
	Label string `json:"label,omitempty"`
}

// New returns an object of the given type with neutral defaults
// (unit scale, full opacity, visible).
func New(t ObjectType) *Object {
	return &Object{
		Type:    t,
		ScaleX:  1,
		ScaleY:  1,
		Opacity: 1,
		Visible: true,
	}
}

// Clone returns a deep copy of the object, including points and children.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	dup := *o
	if o.Points != nil {
		dup.Points = make([]float64, len(o.Points))
		copy(dup.Points, o.Points)
	}
	if o.Children != nil {
		dup.Children = make([]*Object, len(o.Children))
		for i, child := range o.Children {
			dup.Children[i] = child.Clone()
		}
	}
	return &dup
}

// SnapSize returns the object's effective size for snapping. Size is
// variant-aware: rect, image and gallery-item use the stored dimensions,
// circle its diameter, text its wrap width when one is set. All are
// multiplied by the scale factors. Variants with no intrinsic size
// report ok = false and participate in snapping as points.
func (o *Object) SnapSize() (w, h float64, ok bool) {
	switch o.Type {
	case TypeRect, TypeImage, TypeGalleryItem:
		return o.Width * o.ScaleX, o.Height * o.ScaleY, true
	case TypeCircle:
		return 2 * o.Radius * o.ScaleX, 2 * o.Radius * o.ScaleY, true
	case TypeText:
		if o.Width == 0 {
			return 0, 0, false
		}
		return o.Width * o.ScaleX, 0, true
	}
	return 0, 0, false
}

// BoundingBox returns the object's axis-aligned box in scene units.
// Rotation is ignored. A circle's box is centered on its stored point;
// size-undefined variants degenerate to a zero box at the anchor.
func (o *Object) BoundingBox() Rect {
	w, h, ok := o.SnapSize()
	if !ok {
		return Rect{X: o.X, Y: o.Y}
	}
	if o.Type == TypeCircle {
		return Rect{X: o.X - o.Radius*o.ScaleX, Y: o.Y - o.Radius*o.ScaleY, Width: w, Height: h}
	}
	return Rect{X: o.X, Y: o.Y, Width: w, Height: h}
}
