package render

import (
	"reflect"
	"testing"

	"github.com/artfolio/artfolio/canvas-go/internal/scene"
)

func base(t scene.ObjectType, id string) *scene.Object {
	obj := scene.New(t)
	obj.ID = id
	return obj
}

func TestCircleAnchor(t *testing.T) {
	circle := base(scene.TypeCircle, "c1")
	circle.X, circle.Y, circle.Radius = 50, 50, 20

	for _, scale := range []float64{1, 2, 0.5} {
		n := Project(circle, scale, Options{})
		if n == nil {
			t.Fatal("Project returned nil for a visible circle")
		}
		if n.X != 30*scale || n.Y != 30*scale {
			t.Errorf("scale %g: anchor = (%g, %g), want (%g, %g)", scale, n.X, n.Y, 30*scale, 30*scale)
		}
		if n.Width != 40*scale || n.Height != 40*scale {
			t.Errorf("scale %g: size = %gx%g, want %gx%g", scale, n.Width, n.Height, 40*scale, 40*scale)
		}
	}
}

func TestRectProjection(t *testing.T) {
	rect := base(scene.TypeRect, "r1")
	rect.X, rect.Y, rect.Width, rect.Height = 10, 20, 100, 50
	rect.Fill, rect.Stroke, rect.StrokeWidth = "#fff", "#000", 2
	rect.CornerRadius = 4

	n := Project(rect, 2, Options{})
	want := []float64{20, 40, 200, 100, 4, 8}
	got := []float64{n.X, n.Y, n.Width, n.Height, n.StrokeWidth, n.CornerRadius}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rect projection = %v, want %v", got, want)
	}
	if n.Kind != KindRect {
		t.Errorf("Kind = %s, want rect", n.Kind)
	}
}

func TestInvisibleRendersNothing(t *testing.T) {
	obj := base(scene.TypeRect, "r1")
	obj.Visible = false
	if n := Project(obj, 1, Options{}); n != nil {
		t.Errorf("invisible object projected to %+v, want nil", n)
	}

	group := base(scene.TypeGroup, "g1")
	hidden := base(scene.TypeRect, "r2")
	hidden.Visible = false
	shown := base(scene.TypeRect, "r3")
	group.Children = []*scene.Object{hidden, shown}

	n := Project(group, 1, Options{})
	if len(n.Children) != 1 || n.Children[0].ID != "r3" {
		t.Errorf("group children = %+v, want only r3", n.Children)
	}
}

func TestHyperlinkText(t *testing.T) {
	link := base(scene.TypeText, "t1")
	link.Text, link.IsHyperlink = "example.com", true

	n := Project(link, 1, Options{})
	if n.Href != "https://example.com" {
		t.Errorf("Href = %q, want https://example.com", n.Href)
	}

	plain := base(scene.TypeText, "t2")
	plain.Text, plain.IsHyperlink = "hello world", true
	if n := Project(plain, 1, Options{}); n.Href != "" {
		t.Errorf("Href = %q for underivable text, want empty", n.Href)
	}

	unflagged := base(scene.TypeText, "t3")
	unflagged.Text = "example.com"
	if n := Project(unflagged, 1, Options{}); n.Href != "" {
		t.Errorf("Href = %q without the flag, want empty", n.Href)
	}
}

func TestImageCropOffsetsSource(t *testing.T) {
	img := base(scene.TypeImage, "i1")
	img.X, img.Y = 5, 5
	img.Width, img.Height = 200, 100
	img.Src = "/a.png"
	img.CropX, img.CropY, img.CropWidth, img.CropHeight = 10, 20, 50, 40

	n := Project(img, 2, Options{})
	if n.Width != 100 || n.Height != 80 {
		t.Errorf("cropped size = %gx%g, want 100x80", n.Width, n.Height)
	}
	if n.OffsetX != -20 || n.OffsetY != -40 {
		t.Errorf("offset = (%g, %g), want (-20, -40)", n.OffsetX, n.OffsetY)
	}
	if n.NaturalWidth != 400 || n.NaturalHeight != 200 {
		t.Errorf("natural size = %gx%g, want 400x200", n.NaturalWidth, n.NaturalHeight)
	}

	img.CropWidth, img.CropHeight = 0, 0
	n = Project(img, 2, Options{})
	if n.Width != 400 || n.Height != 200 || n.OffsetX != 0 {
		t.Errorf("uncropped projection = %+v, want plain 400x200", n)
	}
}

func TestPathTightBounds(t *testing.T) {
	line := base(scene.TypeLine, "l1")
	line.X, line.Y = 100, 100
	line.Points = []float64{10, 10, 60, 40}
	line.Stroke, line.StrokeWidth = "#000", 3
	line.Closed = true // lines never close, flag or not

	n := Project(line, 2, Options{})
	if n.X != 220 || n.Y != 220 {
		t.Errorf("anchor = (%g, %g), want (220, 220)", n.X, n.Y)
	}
	if n.Width != 100 || n.Height != 60 {
		t.Errorf("size = %gx%g, want 100x60", n.Width, n.Height)
	}
	if want := []float64{0, 0, 100, 60}; !reflect.DeepEqual(n.Path, want) {
		t.Errorf("path = %v, want %v", n.Path, want)
	}
	if n.Closed {
		t.Error("line projected as closed")
	}
	if n.RawStrokeWidth != 3 {
		t.Errorf("RawStrokeWidth = %g, want unscaled 3", n.RawStrokeWidth)
	}

	tri := base(scene.TypeTriangle, "t1")
	tri.Points = []float64{0, 100, 50, 0, 100, 100}
	tri.Closed = true
	if n := Project(tri, 1, Options{}); !n.Closed {
		t.Error("closed triangle projected as open")
	}
}

func TestMalformedPointsRenderEmpty(t *testing.T) {
	for _, pts := range [][]float64{nil, {1, 2}, {1, 2, 3}} {
		obj := base(scene.TypeStar, "s1")
		obj.Points = pts
		if n := Project(obj, 1, Options{}); n != nil {
			t.Errorf("points %v projected to %+v, want nil", pts, n)
		}
	}
}

func TestFramePlaceholder(t *testing.T) {
	frame := base(scene.TypeFrame, "f1")
	frame.Width, frame.Height = 200, 150

	n := Project(frame, 1, Options{})
	if n.Label != "Empty frame" {
		t.Errorf("Label = %q, want default placeholder", n.Label)
	}

	frame.Label = "Drop art here"
	if n := Project(frame, 1, Options{}); n.Label != "Drop art here" {
		t.Errorf("Label = %q, want custom placeholder", n.Label)
	}

	frame.Children = []*scene.Object{base(scene.TypeRect, "r1")}
	n = Project(frame, 1, Options{})
	if n.Label != "" {
		t.Errorf("Label = %q with children present, want empty", n.Label)
	}
	if len(n.Children) != 1 {
		t.Errorf("children = %+v, want the one child", n.Children)
	}
}

func TestTransformComposition(t *testing.T) {
	obj := base(scene.TypeRect, "r1")
	obj.Rotation = 45
	obj.ScaleX, obj.ScaleY = 2, 1

	n := Project(obj, 1, Options{})
	if want := "rotate(45deg) scale(2, 1)"; n.Transform != want {
		t.Errorf("Transform = %q, want %q", n.Transform, want)
	}

	plain := base(scene.TypeRect, "r2")
	if n := Project(plain, 1, Options{}); n.Transform != "" {
		t.Errorf("identity Transform = %q, want empty", n.Transform)
	}

	rotOnly := base(scene.TypeRect, "r3")
	rotOnly.Rotation = 90
	if n := Project(rotOnly, 1, Options{}); n.Transform != "rotate(90deg)" {
		t.Errorf("Transform = %q, want rotate(90deg)", n.Transform)
	}
}

func TestProjectSceneOrdersByZIndex(t *testing.T) {
	doc := scene.NewDocument(500, 500)
	a := base(scene.TypeRect, "a")
	a.ZIndex = 1
	b := base(scene.TypeRect, "b") // zIndex 0, drawn first
	c := base(scene.TypeRect, "c")
	c.ZIndex = 1 // ties with a, keeps document order after it
	doc.Objects = []*scene.Object{a, b, c}

	nodes := ProjectScene(doc, 1, Options{})
	var ids []string
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}
	if want := []string{"b", "a", "c"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("draw order = %v, want %v", ids, want)
	}
}

func TestGalleryItemProjection(t *testing.T) {
	item := base(scene.TypeGalleryItem, "gi1")
	item.Width, item.Height = 300, 200
	item.ArtworkID = "art_123"
	item.Src = "/artworks/art_123/render.png"
	item.Caption = "Study"

	n := Project(item, 1, Options{})
	if n.Kind != KindGalleryItem || n.ArtworkID != "art_123" || n.Caption != "Study" {
		t.Errorf("gallery item node = %+v", n)
	}
}
