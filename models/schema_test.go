package models

import (
	"errors"
	"slices"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func testSchema() Schema {
	return Schema{
		Dimensions: []Dimension{
			NewDimension("Region", NumericElements("North", "South")),
			NewDimension("Measure", NumericElements("Sales")),
		},
		Cubes: []Cube{
			{Name: "Sales", Dimensions: []string{"Region", "Measure"}},
		},
	}
}

func TestNewDimension(t *testing.T) {
	Convey("Given a dimension created with NewDimension", t, func() {
		d := NewDimension("Region", NumericElements("North", "South"))

		Convey("Then it has a single hierarchy with the same name", func() {
			So(d.Name, ShouldEqual, "Region")
			So(d.Hierarchies, ShouldHaveLength, 1)
			So(d.Hierarchies[0].Name, ShouldEqual, "Region")
		})

		Convey("Then the hierarchy holds the numeric elements in order, every time it is walked", func() {
			expected := []Element{
				{Name: "North", Type: ElementTypeNumeric},
				{Name: "South", Type: ElementTypeNumeric},
			}
			So(slices.Collect(d.Hierarchies[0].Elements), ShouldResemble, expected)
			So(slices.Collect(d.Hierarchies[0].Elements), ShouldResemble, expected)
		})
	})
}

func TestSchemaValidate(t *testing.T) {
	Convey("A valid schema is successfully validated", t, func() {
		So(testSchema().Validate(), ShouldBeNil)
	})

	Convey("An empty schema is valid", t, func() {
		So(Schema{}.Validate(), ShouldBeNil)
	})

	Convey("Given a schema with a dimension without name", t, func() {
		s := testSchema()
		s.Dimensions[0].Name = ""
		So(errors.Is(s.Validate(), ErrEmptyName), ShouldBeTrue)
	})

	Convey("Given a schema with a duplicated dimension", t, func() {
		s := testSchema()
		s.Dimensions = append(s.Dimensions, NewDimension("Region", NumericElements("East")))
		So(errors.Is(s.Validate(), ErrDuplicateDimension), ShouldBeTrue)
	})

	Convey("Given a schema with a dimension without hierarchies", t, func() {
		s := testSchema()
		s.Dimensions[1].Hierarchies = nil
		So(errors.Is(s.Validate(), ErrNoHierarchy), ShouldBeTrue)
	})

	Convey("Given a schema with a duplicated cube", t, func() {
		s := testSchema()
		s.Cubes = append(s.Cubes, s.Cubes[0])
		So(errors.Is(s.Validate(), ErrDuplicateCube), ShouldBeTrue)
	})

	Convey("Given a schema with a cube referencing an undeclared dimension", t, func() {
		s := testSchema()
		s.Cubes[0].Dimensions = append(s.Cubes[0].Dimensions, "Year")
		err := s.Validate()
		So(errors.Is(err, ErrUndeclaredDim), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "dimension Year")
	})

	Convey("Given a schema with a single-dimension cube", t, func() {
		s := testSchema()
		s.Cubes[0].Dimensions = []string{"Region"}
		So(errors.Is(s.Validate(), ErrTooFewDimensions), ShouldBeTrue)
	})
}

func TestSchemaAppend(t *testing.T) {
	Convey("Appending a schema keeps the declaration order", t, func() {
		s := testSchema()
		s.Append(Schema{
			Dimensions: []Dimension{NewDimension("Year", NumericElements("2020"))},
			Cubes:      []Cube{{Name: "Yearly", Dimensions: []string{"Year", "Measure"}}},
		})
		So(s.Dimensions, ShouldHaveLength, 3)
		So(s.Dimensions[2].Name, ShouldEqual, "Year")
		So(s.Cubes[1].Name, ShouldEqual, "Yearly")
		So(s.Validate(), ShouldBeNil)
	})
}
