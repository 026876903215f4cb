package typeid

import (
	"fmt"

	"go.jetify.com/typeid/v2"
)

const (
	PrefixGallery = "gal"
	PrefixObject  = "obj"
	PrefixArtwork = "art"
)

func New(prefix string) string {
	id := typeid.MustGenerate(prefix)
	return id.String()
}

func NewGalleryID() string { return New(PrefixGallery) }
func NewObjectID() string  { return New(PrefixObject) }
func NewArtworkID() string { return New(PrefixArtwork) }

func Validate(id, expectedPrefix string) error {
	parsed, err := typeid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid typeid %q: %w", id, err)
	}
	if parsed.Prefix() != expectedPrefix {
		return fmt.Errorf("expected prefix %q but got %q in id %q", expectedPrefix, parsed.Prefix(), id)
	}
	return nil
}
