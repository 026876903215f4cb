package scene

import (
	"encoding/json"
	"fmt"
)

// Document is one editable gallery scene: the top-level object list plus
// canvas dimensions and an optional background color (empty means none).
// Draw order is slice order; the renderer breaks ties with ZIndex.
type Document struct {
	Objects    []*Object `json:"objects"`
	Width      float64   `json:"width"`
	Height     float64   `json:"height"`
	Background string    `json:"background,omitempty"`
}

// NewDocument returns an empty document with the given canvas size.
func NewDocument(width, height float64) *Document {
	return &Document{
		Objects: []*Object{},
		Width:   width,
		Height:  height,
	}
}

// FindObject returns the top-level object with the given id, or nil.
func (d *Document) FindObject(id string) *Object {
	for _, obj := range d.Objects {
		if obj.ID == id {
			return obj
		}
	}
	return nil
}

// IndexOf returns the position of the top-level object with the given id,
// or -1 when absent.
func (d *Document) IndexOf(id string) int {
	for i, obj := range d.Objects {
		if obj.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	dup := &Document{
		Objects:    make([]*Object, len(d.Objects)),
		Width:      d.Width,
		Height:     d.Height,
		Background: d.Background,
	}
	for i, obj := range d.Objects {
		dup.Objects[i] = obj.Clone()
	}
	return dup
}

// Encode serializes the document to its canonical JSON form.
func Encode(d *Document) ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode scene: %w", err)
	}
	return data, nil
}

// Decode parses a document from its JSON form.
func Decode(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if d.Objects == nil {
		d.Objects = []*Object{}
	}
	return &d, nil
}
