package models

import (
	"errors"
	"fmt"
)

// minCubeDimensions is the smallest number of dimensions a TM1 cube accepts
const minCubeDimensions = 2

// Validation errors
var (
	ErrEmptyName          = errors.New("empty name not allowed")
	ErrDuplicateDimension = errors.New("duplicate dimension")
	ErrDuplicateCube      = errors.New("duplicate cube")
	ErrNoHierarchy        = errors.New("dimension has no hierarchy")
	ErrUndeclaredDim      = errors.New("cube references an undeclared dimension")
	ErrTooFewDimensions   = errors.New("cube needs at least two dimensions")
)

// Schema is a desired set of dimensions and cubes. Cubes may only reference
// dimensions declared in the same schema.
type Schema struct {
	Dimensions []Dimension
	Cubes      []Cube
}

// Append adds the dimensions and cubes of other to the schema
func (s *Schema) Append(other Schema) {
	s.Dimensions = append(s.Dimensions, other.Dimensions...)
	s.Cubes = append(s.Cubes, other.Cubes...)
}

// Validate checks that the schema can be provisioned in declaration order
func (s Schema) Validate() error {
	dims := make(map[string]struct{}, len(s.Dimensions))
	for _, d := range s.Dimensions {
		if d.Name == "" {
			return fmt.Errorf("invalid dimension: %w", ErrEmptyName)
		}
		if _, ok := dims[d.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateDimension, d.Name)
		}
		if len(d.Hierarchies) == 0 {
			return fmt.Errorf("%w: %s", ErrNoHierarchy, d.Name)
		}
		dims[d.Name] = struct{}{}
	}

	cubes := make(map[string]struct{}, len(s.Cubes))
	for _, c := range s.Cubes {
		if c.Name == "" {
			return fmt.Errorf("invalid cube: %w", ErrEmptyName)
		}
		if _, ok := cubes[c.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateCube, c.Name)
		}
		if len(c.Dimensions) < minCubeDimensions {
			return fmt.Errorf("%w: %s", ErrTooFewDimensions, c.Name)
		}
		for _, d := range c.Dimensions {
			if _, ok := dims[d]; !ok {
				return fmt.Errorf("%w: cube %s, dimension %s", ErrUndeclaredDim, c.Name, d)
			}
		}
		cubes[c.Name] = struct{}{}
	}
	return nil
}
