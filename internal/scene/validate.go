package scene

import "fmt"

// Validate performs the structural checks the save path requires: every
// object (recursively) has a non-empty unique id, a known type, opacity
// within [0, 1], and no nil children. Point-array shape is deliberately
// not checked here; malformed point lists degrade to an empty render
// instead of blocking a save.
func Validate(d *Document) error {
	if d == nil {
		return fmt.Errorf("nil document")
	}
	if d.Width < 0 || d.Height < 0 {
		return fmt.Errorf("negative canvas size %gx%g", d.Width, d.Height)
	}
	seen := make(map[string]bool)
	for i, obj := range d.Objects {
		if obj == nil {
			return fmt.Errorf("nil object at index %d", i)
		}
		if err := validateObject(obj, seen); err != nil {
			return err
		}
	}
	return nil
}

func validateObject(o *Object, seen map[string]bool) error {
	if o.ID == "" {
		return fmt.Errorf("object of type %q has empty id", o.Type)
	}
	if seen[o.ID] {
		return fmt.Errorf("duplicate object id %q", o.ID)
	}
	seen[o.ID] = true

	if !o.Type.Valid() {
		return fmt.Errorf("object %q has unknown type %q", o.ID, o.Type)
	}
	if o.Opacity < 0 || o.Opacity > 1 {
		return fmt.Errorf("object %q has opacity %g outside [0, 1]", o.ID, o.Opacity)
	}
	if len(o.Children) > 0 && !o.Type.IsContainer() {
		return fmt.Errorf("object %q of type %q cannot have children", o.ID, o.Type)
	}
	for i, child := range o.Children {
		if child == nil {
			return fmt.Errorf("object %q has nil child at index %d", o.ID, i)
		}
		if err := validateObject(child, seen); err != nil {
			return err
		}
	}
	return nil
}
