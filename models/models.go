package models

import (
	"iter"
	"slices"
)

// ElementType is the declared type of a hierarchy element
type ElementType string

// Possible element types
const (
	ElementTypeNumeric      ElementType = "Numeric"
	ElementTypeString       ElementType = "String"
	ElementTypeConsolidated ElementType = "Consolidated"
)

// Element is a named, typed member of a hierarchy
type Element struct {
	Name string      `json:"Name"`
	Type ElementType `json:"Type"`
}

// Hierarchy is an ordered sequence of elements belonging to a dimension.
// Elements is walked every time the hierarchy is encoded, so it must be
// restartable.
type Hierarchy struct {
	Name     string
	Elements iter.Seq[Element]
}

// Dimension is a named axis of a cube, composed of hierarchies
type Dimension struct {
	Name        string
	Hierarchies []Hierarchy
}

// NewDimension returns a dimension with a single hierarchy of the same name
// holding the provided elements
func NewDimension(name string, elements iter.Seq[Element]) Dimension {
	return Dimension{
		Name: name,
		Hierarchies: []Hierarchy{
			{Name: name, Elements: elements},
		},
	}
}

// Cube is a named multidimensional array. Dimensions holds the ordered names
// of the dimensions defining its coordinate space.
type Cube struct {
	Name       string   `json:"Name"`
	Dimensions []string `json:"Dimensions"`
}

// View is a saved selection on a cube
type View struct {
	Cube    string
	Name    string
	Private bool
}

// Subset is a saved selection on a dimension hierarchy
type Subset struct {
	Dimension string
	Hierarchy string
	Name      string
	Private   bool
}

// Numeric maps a sequence of names to numeric elements
func Numeric(names iter.Seq[string]) iter.Seq[Element] {
	return func(yield func(Element) bool) {
		for name := range names {
			if !yield(Element{Name: name, Type: ElementTypeNumeric}) {
				return
			}
		}
	}
}

// NumericElements returns a sequence of numeric elements with the provided names
func NumericElements(names ...string) iter.Seq[Element] {
	return Numeric(slices.Values(names))
}
