// Package export rasterizes scene documents to SVG and PNG through
// github.com/tdewolff/canvas, reusing the projection pipeline the web
// renderer consumes so both surfaces agree on geometry.
package export

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"

	"github.com/artfolio/artfolio/canvas-go/internal/render"
	"github.com/artfolio/artfolio/canvas-go/internal/scene"
)

// unitToPt converts canvas units to font points for face construction.
const unitToPt = 72.0 / 25.4

// Options configures an Exporter. FontPath points at a TTF/OTF file;
// without it text nodes are skipped with a warning. AssetDir is the
// root for resolving image sources; unresolvable images draw as
// placeholder boxes.
type Options struct {
	Origin   string
	AssetDir string
	FontPath string
	Logger   *slog.Logger
}

// Exporter turns documents into image bytes. It is safe to reuse for
// multiple exports; the font family loads once on first use.
type Exporter struct {
	origin   string
	assetDir string
	fontPath string
	log      *slog.Logger

	family  *canvas.FontFamily
	fontErr error
}

func New(opts Options) *Exporter {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Exporter{
		origin:   opts.Origin,
		assetDir: opts.AssetDir,
		fontPath: opts.FontPath,
		log:      log,
	}
}

// SVG writes the document as an SVG image.
func (e *Exporter) SVG(w io.Writer, doc *scene.Document) error {
	c, err := e.draw(doc)
	if err != nil {
		return err
	}
	if err := renderers.SVG()(w, c); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// PNG writes the document as a PNG image at one pixel per canvas unit.
func (e *Exporter) PNG(w io.Writer, doc *scene.Document) error {
	c, err := e.draw(doc)
	if err != nil {
		return err
	}
	if err := renderers.PNG(canvas.DPMM(1.0))(w, c); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

func (e *Exporter) draw(doc *scene.Document) (*canvas.Canvas, error) {
	if doc == nil {
		return nil, fmt.Errorf("export: nil document")
	}
	nodes := render.ProjectScene(doc, 1.0, render.Options{Origin: e.origin})

	c := canvas.New(doc.Width, doc.Height)
	ctx := canvas.NewContext(c)
	// Top-left origin, matching the scene coordinate space.
	ctx.SetCoordSystem(canvas.CartesianIV)

	if bg, ok := parseColor(doc.Background, 1); ok {
		ctx.SetFillColor(bg)
		ctx.SetStrokeColor(color.RGBA{})
		ctx.DrawPath(0, 0, canvas.Rectangle(doc.Width, doc.Height))
	}

	for _, n := range nodes {
		e.drawNode(ctx, n, render.Identity(), 1)
	}
	return c, nil
}

// drawNode renders one projected node. parent carries the accumulated
// transform of enclosing groups and frames; alpha their combined
// opacity.
func (e *Exporter) drawNode(ctx *canvas.Context, n *render.Node, parent render.Matrix2D, alpha float64) {
	world := parent.Multiply(render.Translate(n.X, n.Y)).Multiply(n.Matrix())
	alpha *= n.Opacity

	switch n.Kind {
	case render.KindRect:
		var p *canvas.Path
		if n.CornerRadius > 0 {
			p = canvas.RoundedRectangle(n.Width, n.Height, n.CornerRadius)
		} else {
			p = canvas.Rectangle(n.Width, n.Height)
		}
		e.fillStroke(ctx, p.Transform(canvasMatrix(world)), n.Fill, n.Stroke, n.StrokeWidth, alpha)

	case render.KindCircle:
		r := n.Width / 2
		m := world.Multiply(render.Translate(r, r))
		e.fillStroke(ctx, canvas.Circle(r).Transform(canvasMatrix(m)), n.Fill, n.Stroke, n.StrokeWidth, alpha)

	case render.KindPath:
		p := polyline(n.Path, n.Closed)
		if p == nil {
			return
		}
		fill := n.Fill
		if !n.Closed {
			fill = ""
		}
		e.fillStroke(ctx, p.Transform(canvasMatrix(world)), fill, n.Stroke, n.RawStrokeWidth, alpha)

	case render.KindText:
		e.drawText(ctx, n, world, alpha)

	case render.KindImage, render.KindGalleryItem:
		e.drawImage(ctx, n, world, alpha)

	case render.KindFrame:
		p := canvas.Rectangle(n.Width, n.Height).Transform(canvasMatrix(world))
		e.fillStroke(ctx, p, n.Fill, n.Stroke, n.StrokeWidth, alpha)
		if n.Label != "" {
			e.drawLabel(ctx, n.Label, world, n.Width, n.Height, alpha)
		}
		for _, child := range n.Children {
			e.drawNode(ctx, child, world, alpha)
		}

	case render.KindGroup:
		for _, child := range n.Children {
			e.drawNode(ctx, child, world, alpha)
		}
	}
}

func (e *Exporter) fillStroke(ctx *canvas.Context, p *canvas.Path, fill, stroke string, strokeWidth, alpha float64) {
	fc, hasFill := parseColor(fill, alpha)
	sc, hasStroke := parseColor(stroke, alpha)
	if !hasFill && !hasStroke {
		return
	}
	if hasFill {
		ctx.SetFillColor(fc)
	} else {
		ctx.SetFillColor(color.RGBA{})
	}
	if hasStroke && strokeWidth > 0 {
		ctx.SetStrokeColor(sc)
		ctx.SetStrokeWidth(strokeWidth)
	} else {
		ctx.SetStrokeColor(color.RGBA{})
		ctx.SetStrokeWidth(0)
	}
	ctx.DrawPath(0, 0, p)
}

func (e *Exporter) drawText(ctx *canvas.Context, n *render.Node, world render.Matrix2D, alpha float64) {
	face := e.face(n.FontSize, n.Fill, alpha)
	if face == nil {
		e.log.Warn("skipping text node, no usable font", "id", n.ID)
		return
	}
	// Glyphs stay upright; only the anchor follows the node transform.
	x, y := world.TransformPoint(0, 0)
	line := canvas.NewTextLine(face, n.Text, canvas.Left)
	ctx.DrawText(x, y+face.Metrics().Ascent, line)
}

func (e *Exporter) drawLabel(ctx *canvas.Context, label string, world render.Matrix2D, w, h float64, alpha float64) {
	face := e.face(14, "#6b7280", alpha)
	if face == nil {
		return
	}
	x, y := world.TransformPoint(w/2, h/2)
	line := canvas.NewTextLine(face, label, canvas.Center)
	ctx.DrawText(x, y, line)
}

func (e *Exporter) drawImage(ctx *canvas.Context, n *render.Node, world render.Matrix2D, alpha float64) {
	img := e.loadImage(n.Src)
	if img == nil {
		// Placeholder keeps the layout legible when assets are absent.
		p := canvas.Rectangle(n.Width, n.Height).Transform(canvasMatrix(world))
		e.fillStroke(ctx, p, "#e5e7eb", "#9ca3af", 1, alpha)
		if n.Caption != "" {
			e.drawLabel(ctx, n.Caption, world, n.Width, n.Height, alpha)
		}
		return
	}

	bounds := img.Bounds()
	if n.NaturalWidth > 0 && n.NaturalHeight > 0 &&
		(n.NaturalWidth != n.Width || n.NaturalHeight != n.Height) {
		// Cropped: cut the visible window out of the source.
		kx := float64(bounds.Dx()) / n.NaturalWidth
		ky := float64(bounds.Dy()) / n.NaturalHeight
		rect := image.Rect(
			bounds.Min.X+int(-n.OffsetX*kx),
			bounds.Min.Y+int(-n.OffsetY*ky),
			bounds.Min.X+int((-n.OffsetX+n.Width)*kx),
			bounds.Min.Y+int((-n.OffsetY+n.Height)*ky),
		).Intersect(bounds)
		if sub, ok := img.(interface {
			SubImage(image.Rectangle) image.Image
		}); ok && !rect.Empty() {
			img = sub.SubImage(rect)
			bounds = img.Bounds()
		}
	}
	if n.Width <= 0 || bounds.Dx() == 0 {
		return
	}
	x, y := world.TransformPoint(0, 0)
	ctx.DrawImage(x, y, img, canvas.DPMM(float64(bounds.Dx())/n.Width))
}

func (e *Exporter) loadImage(src string) image.Image {
	if src == "" || e.assetDir == "" {
		return nil
	}
	path := filepath.Join(e.assetDir, filepath.FromSlash(strings.TrimPrefix(src, "/")))
	f, err := os.Open(path)
	if err != nil {
		e.log.Debug("image source unavailable", "src", src, "error", err)
		return nil
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		e.log.Warn("image decode failed", "src", src, "error", err)
		return nil
	}
	return img
}

// face returns a font face at size canvas units, or nil when no font is
// configured or loading it failed.
func (e *Exporter) face(size float64, fill string, alpha float64) *canvas.FontFace {
	if e.family == nil && e.fontErr == nil {
		if e.fontPath == "" {
			e.fontErr = fmt.Errorf("no font configured")
		} else {
			family := canvas.NewFontFamily("artfolio")
			if err := family.LoadFontFile(e.fontPath, canvas.FontRegular); err != nil {
				e.fontErr = fmt.Errorf("load font %s: %w", e.fontPath, err)
				e.log.Warn("font load failed", "path", e.fontPath, "error", err)
			} else {
				e.family = family
			}
		}
	}
	if e.family == nil {
		return nil
	}
	col, ok := parseColor(fill, alpha)
	if !ok {
		col = color.NRGBA{A: uint8(255 * alpha)}
	}
	if size <= 0 {
		size = 16
	}
	return e.family.Face(size*unitToPt, col, canvas.FontRegular, canvas.FontNormal)
}

// polyline builds a path from projected point pairs. Nil means the node
// was malformed and draws nothing.
func polyline(pts []float64, closed bool) *canvas.Path {
	if len(pts) < 4 || len(pts)%2 != 0 {
		return nil
	}
	p := &canvas.Path{}
	p.MoveTo(pts[0], pts[1])
	for i := 2; i < len(pts); i += 2 {
		p.LineTo(pts[i], pts[i+1])
	}
	if closed {
		p.Close()
	}
	return p
}

// canvasMatrix converts a row-major [a b c d e f] affine into the
// library's 2x3 layout.
func canvasMatrix(m render.Matrix2D) canvas.Matrix {
	return canvas.Matrix{
		{m[0], m[2], m[4]},
		{m[1], m[3], m[5]},
	}
}

// parseColor accepts #rgb, #rrggbb and #rrggbbaa. Empty or malformed
// values report ok=false, which callers treat as "none".
func parseColor(s string, alpha float64) (color.Color, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s[0] != '#' {
		return nil, false
	}
	hex := s[1:]
	var r, g, b, a uint8
	a = 255
	switch len(hex) {
	case 3:
		v, err := parseHexByte(string([]byte{hex[0], hex[0]}))
		if err != nil {
			return nil, false
		}
		r = v
		if v, err = parseHexByte(string([]byte{hex[1], hex[1]})); err != nil {
			return nil, false
		}
		g = v
		if v, err = parseHexByte(string([]byte{hex[2], hex[2]})); err != nil {
			return nil, false
		}
		b = v
	case 6, 8:
		var err error
		if r, err = parseHexByte(hex[0:2]); err != nil {
			return nil, false
		}
		if g, err = parseHexByte(hex[2:4]); err != nil {
			return nil, false
		}
		if b, err = parseHexByte(hex[4:6]); err != nil {
			return nil, false
		}
		if len(hex) == 8 {
			if a, err = parseHexByte(hex[6:8]); err != nil {
				return nil, false
			}
		}
	default:
		return nil, false
	}
	if alpha < 1 {
		a = uint8(float64(a) * max(alpha, 0))
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, true
}

func parseHexByte(s string) (uint8, error) {
	var v uint8
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d uint8
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		default:
			return 0, fmt.Errorf("bad hex digit %q", c)
		}
		v = v<<4 | d
	}
	return v, nil
}
