package editor

import "github.com/artfolio/artfolio/canvas-go/internal/scene"

// Patch is a partial update for UpdateObject. Nil fields are left alone;
// set fields replace the object's values. The JSON form is what the
// builder UI sends over the wasm boundary.
type Patch struct {
	X        *float64 `json:"x,omitempty"`
	Y        *float64 `json:"y,omitempty"`
	Rotation *float64 `json:"rotation,omitempty"`
	ScaleX   *float64 `json:"scaleX,omitempty"`
	ScaleY   *float64 `json:"scaleY,omitempty"`
	Opacity  *float64 `json:"opacity,omitempty"`
	ZIndex   *int     `json:"zIndex,omitempty"`
	Visible  *bool    `json:"visible,omitempty"`

	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Radius *float64 `json:"radius,omitempty"`

	Fill         *string  `json:"fill,omitempty"`
	Stroke       *string  `json:"stroke,omitempty"`
	StrokeWidth  *float64 `json:"strokeWidth,omitempty"`
	CornerRadius *float64 `json:"cornerRadius,omitempty"`

	Text        *string  `json:"text,omitempty"`
	FontSize    *float64 `json:"fontSize,omitempty"`
	FontFamily  *string  `json:"fontFamily,omitempty"`
	IsHyperlink *bool    `json:"isHyperlink,omitempty"`

	Src        *string  `json:"src,omitempty"`
	CropX      *float64 `json:"cropX,omitempty"`
	CropY      *float64 `json:"cropY,omitempty"`
	CropWidth  *float64 `json:"cropWidth,omitempty"`
	CropHeight *float64 `json:"cropHeight,omitempty"`

	ArtworkID *string `json:"artworkId,omitempty"`
	Caption   *string `json:"caption,omitempty"`

	Points *[]float64 `json:"points,omitempty"`
	Closed *bool      `json:"closed,omitempty"`
	Label  *string    `json:"label,omitempty"`
}

func (p Patch) applyTo(o *scene.Object) {
	if p.X != nil {
		o.X = *p.X
	}
	if p.Y != nil {
		o.Y = *p.Y
	}
	if p.Rotation != nil {
		o.Rotation = *p.Rotation
	}
	if p.ScaleX != nil {
		o.ScaleX = *p.ScaleX
	}
	if p.ScaleY != nil {
		o.ScaleY = *p.ScaleY
	}
	if p.Opacity != nil {
		o.Opacity = *p.Opacity
	}
	if p.ZIndex != nil {
		o.ZIndex = *p.ZIndex
	}
	if p.Visible != nil {
		o.Visible = *p.Visible
	}
	if p.Width != nil {
		o.Width = *p.Width
	}
	if p.Height != nil {
		o.Height = *p.Height
	}
	if p.Radius != nil {
		o.Radius = *p.Radius
	}
	if p.Fill != nil {
		o.Fill = *p.Fill
	}
	if p.Stroke != nil {
		o.Stroke = *p.Stroke
	}
	if p.StrokeWidth != nil {
		o.StrokeWidth = *p.StrokeWidth
	}
	if p.CornerRadius != nil {
		o.CornerRadius = *p.CornerRadius
	}
	if p.Text != nil {
		o.Text = *p.Text
	}
	if p.FontSize != nil {
		o.FontSize = *p.FontSize
	}
	if p.FontFamily != nil {
		o.FontFamily = *p.FontFamily
	}
	if p.IsHyperlink != nil {
		o.IsHyperlink = *p.IsHyperlink
	}
	if p.Src != nil {
		o.Src = *p.Src
	}
	if p.CropX != nil {
		o.CropX = *p.CropX
	}
	if p.CropY != nil {
		o.CropY = *p.CropY
	}
	if p.CropWidth != nil {
		o.CropWidth = *p.CropWidth
	}
	if p.CropHeight != nil {
		o.CropHeight = *p.CropHeight
	}
	if p.ArtworkID != nil {
		o.ArtworkID = *p.ArtworkID
	}
	if p.Caption != nil {
		o.Caption = *p.Caption
	}
	if p.Points != nil {
		o.Points = make([]float64, len(*p.Points))
		copy(o.Points, *p.Points)
	}
	if p.Closed != nil {
		o.Closed = *p.Closed
	}
	if p.Label != nil {
		o.Label = *p.Label
	}
}

// Float returns a pointer to v, for building patches inline.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }
