package scene

import (
	"github.com/artfolio/artfolio/canvas-go/internal/typeid"
)

// NewSampleDocument builds the starter gallery used for seeding and demos:
// a dark canvas with a title, a framed artwork slot, a few shapes and a
// hyperlink back to the artist's profile.
func NewSampleDocument() *Document {
	frameID := typeid.NewObjectID()
	itemID := typeid.NewObjectID()
	titleID := typeid.NewObjectID()
	linkID := typeid.NewObjectID()
	rectID := typeid.NewObjectID()
	circleID := typeid.NewObjectID()
	starID := typeid.NewObjectID()
	artworkID := typeid.NewArtworkID()

	return &Document{
		Width:      1280,
		Height:     800,
		Background: "#1f1d2b",
		Objects: []*Object{
			{
				ID: titleID, Type: TypeText,
				X: 80, Y: 60,
				ScaleX: 1, ScaleY: 1, Opacity: 1, Visible: true,
				Text: "My Gallery", FontSize: 42, FontFamily: "Inter", Fill: "#f4f4f8",
			},
			{
				ID: frameID, Type: TypeFrame,
				X: 80, Y: 160, Width: 460, Height: 360,
				ScaleX: 1, ScaleY: 1, Opacity: 1, Visible: true,
				Fill: "#2a2838", Stroke: "#6c5ce7", StrokeWidth: 2,
				Label: "Featured work",
				Children: []*Object{
					{
						ID: itemID, Type: TypeGalleryItem,
						X: 20, Y: 20, Width: 420, Height: 320,
						ScaleX: 1, ScaleY: 1, Opacity: 1, Visible: true,
						ArtworkID: artworkID,
						Src:       "/artworks/" + artworkID + "/render.png",
						Caption:   "Untitled study",
					},
				},
			},
			{
				ID: rectID, Type: TypeRect,
				X: 620, Y: 160, Width: 240, Height: 160,
				ScaleX: 1, ScaleY: 1, Opacity: 1, Visible: true,
				Fill: "#e94560", Stroke: "#0f0e17", StrokeWidth: 2, CornerRadius: 8,
			},
			{
				ID: circleID, Type: TypeCircle,
				X: 980, Y: 240, Radius: 80,
				ScaleX: 1, ScaleY: 1, Opacity: 1, Visible: true,
				Fill: "#0f3460", Stroke: "#16213e", StrokeWidth: 2,
			},
			{
				ID: starID, Type: TypeStar,
				X: 620, Y: 400,
				ScaleX: 1, ScaleY: 1, Opacity: 1, Visible: true,
				Points: []float64{
					50, 0, 61.2, 34.6, 97.6, 34.5, 68.1, 55.9, 79.4, 90.5,
					50, 69, 20.6, 90.5, 31.9, 55.9, 2.4, 34.5, 38.8, 34.6,
				},
				Closed: true,
				Fill:   "#f5a623", Stroke: "#c78400", StrokeWidth: 2,
			},
			{
				ID: linkID, Type: TypeText,
				X: 80, Y: 700,
				ScaleX: 1, ScaleY: 1, Opacity: 1, Visible: true,
				Text: "www.artfolio.app", FontSize: 16, FontFamily: "Inter",
				Fill: "#6c5ce7", IsHyperlink: true,
			},
		},
	}
}
