// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
)

// Scene is a named collection of objects plus the camera they are
// viewed through.
type Scene struct {
	Name    string
	Camera  Camera
	Objects []*Object
}

// New returns an empty scene with the default camera.
func New(name string) *Scene {
	return &Scene{Name: name, Camera: DefaultCamera()}
}

// Add appends an object. A name already in use gets a numeric suffix
// in the usual ".001" style so ids stay unique in the output document.
func (s *Scene) Add(o *Object) *Object {
	if s.Object(o.Name) != nil {
		base := o.Name
		for i := 1; ; i++ {
			next := fmt.Sprintf("%s.%03d", base, i)
			if s.Object(next) == nil {
				o.Name = next
				break
			}
		}
	}
	s.Objects = append(s.Objects, o)
	return o
}

// Object returns the object with the given name, or nil.
func (s *Scene) Object(name string) *Object {
	for _, o := range s.Objects {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// Selected returns the objects that take part in an export: selected
// and not hidden, in scene order.
func (s *Scene) Selected() []*Object {
	var out []*Object
	for _, o := range s.Objects {
		if o.Selected && !o.Hide {
			out = append(out, o)
		}
	}
	return out
}

// SelectAll marks every visible object selected.
func (s *Scene) SelectAll() {
	for _, o := range s.Objects {
		if !o.Hide {
			o.Selected = true
		}
	}
}
