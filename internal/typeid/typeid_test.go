package typeid

import (
	"strings"
	"testing"
)

func TestNewCarriesPrefix(t *testing.T) {
	tests := []struct{ id, prefix string }{
		{NewGalleryID(), PrefixGallery},
		{NewObjectID(), PrefixObject},
		{NewArtworkID(), PrefixArtwork},
	}
	for _, tt := range tests {
		if !strings.HasPrefix(tt.id, tt.prefix+"_") {
			t.Errorf("id %q does not carry prefix %q", tt.id, tt.prefix)
		}
		if err := Validate(tt.id, tt.prefix); err != nil {
			t.Errorf("Validate(%q, %q): %v", tt.id, tt.prefix, err)
		}
	}
}

func TestValidateRejectsWrongPrefix(t *testing.T) {
	if err := Validate(NewGalleryID(), PrefixObject); err == nil {
		t.Fatal("want error for mismatched prefix")
	}
	if err := Validate("not a typeid", PrefixGallery); err == nil {
		t.Fatal("want error for malformed id")
	}
}

func TestIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := NewObjectID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
