// Package catalog stores named shape catalogs and reads and writes them as
// JSON.
//
// A catalog file has the form:
//
//	{
//	  "shapes": [
//	    {"name": "square", "segments": [
//	      {"length": 1, "angle": 0},
//	      {"length": 1, "angle": 90},
//	      {"length": 1, "angle": 90},
//	      {"length": 1, "angle": 90}
//	    ]}
//	  ]
//	}
//
// Names are compared with Unicode case folding, so "Square" and "SQUARE"
// refer to the same entry.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/shapedraw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrUnnamed is returned for a shape with an empty name.
	ErrUnnamed = errors.New("catalog: shape has no name")

	// ErrDuplicate is returned when a file holds two shapes whose names
	// fold to the same key.
	ErrDuplicate = errors.New("catalog: duplicate shape name")
)

// Catalog is an ordered set of shapes keyed by folded name.
//
// Catalog is not safe for concurrent mutation.
type Catalog struct {
	shapes []*shapedraw.Shape
}

// New creates a catalog from shapes. Later shapes replace earlier ones with
// the same folded name.
func New(shapes ...*shapedraw.Shape) (*Catalog, error) {
	c := &Catalog{}
	for _, s := range shapes {
		if err := c.Add(s); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Default returns a catalog holding the built-in shapes.
func Default() *Catalog {
	return &Catalog{shapes: shapedraw.DefaultShapes()}
}

// Shapes returns the shapes in catalog order, ready to hand to
// shapedraw.NewPredictor.
func (c *Catalog) Shapes() []*shapedraw.Shape {
	return append([]*shapedraw.Shape(nil), c.shapes...)
}

// Len returns the number of shapes.
func (c *Catalog) Len() int {
	return len(c.shapes)
}

// Names returns the shape names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.shapes))
	for i, s := range c.shapes {
		names[i] = s.Name()
	}
	return names
}

// Lookup finds a shape by name, ignoring case.
func (c *Catalog) Lookup(name string) (*shapedraw.Shape, bool) {
	if i := c.index(name); i >= 0 {
		return c.shapes[i], true
	}
	return nil, false
}

// Add validates s and inserts it, replacing any shape with the same folded
// name in place.
func (c *Catalog) Add(s *shapedraw.Shape) error {
	if s == nil || s.Len() == 0 {
		return fmt.Errorf("%w: empty shape", shapedraw.ErrInvalidShape)
	}
	if strings.TrimSpace(s.Name()) == "" {
		return ErrUnnamed
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if i := c.index(s.Name()); i >= 0 {
		c.shapes[i] = s
		return nil
	}
	c.shapes = append(c.shapes, s)
	return nil
}

// Remove deletes the shape with the given name and reports whether it was
// present.
func (c *Catalog) Remove(name string) bool {
	i := c.index(name)
	if i < 0 {
		return false
	}
	c.shapes = append(c.shapes[:i], c.shapes[i+1:]...)
	return true
}

func (c *Catalog) index(name string) int {
	key := Fold(name)
	for i, s := range c.shapes {
		if Fold(s.Name()) == key {
			return i
		}
	}
	return -1
}

// Fold returns the case-folded lookup key for a shape name.
func Fold(name string) string {
	// Casers carry state, so each call gets its own.
	return cases.Fold().String(strings.TrimSpace(name))
}

// DisplayName returns a title-cased form of name for labels and listings.
func DisplayName(name string) string {
	return cases.Title(language.English).String(name)
}
