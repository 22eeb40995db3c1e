package sweep_test

import (
	"testing"

	"github.com/ONSdigital/dp-tm1-tools/sweep"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMatcher(t *testing.T) {
	Convey("Given the default cleanup patterns", t, func() {
		m, err := sweep.NewMatcher("^temp_*", "^test*", "^TM1py*")
		So(err, ShouldBeNil)

		Convey("Names are matched at their start regardless of case", func() {
			pattern, ok := m.Match("temp_foo")
			So(ok, ShouldBeTrue)
			So(pattern, ShouldEqual, "^temp_*")

			_, ok = m.Match("TEMP_FOO")
			So(ok, ShouldBeTrue)

			pattern, ok = m.Match("TM1py Date")
			So(ok, ShouldBeTrue)
			So(pattern, ShouldEqual, "^TM1py*")
		})

		Convey("Names containing a pattern elsewhere are not matched", func() {
			_, ok := m.Match("footemp_")
			So(ok, ShouldBeFalse)

			_, ok = m.Match("Sales")
			So(ok, ShouldBeFalse)
		})

		Convey("The first matching pattern is returned", func() {
			pattern, ok := m.Match("test_temp")
			So(ok, ShouldBeTrue)
			So(pattern, ShouldEqual, "^test*")
		})

		Convey("The patterns are kept in order", func() {
			So(m.Patterns(), ShouldResemble, []string{"^temp_*", "^test*", "^TM1py*"})
		})
	})

	Convey("Patterns without an anchor still match prefixes only", t, func() {
		m, err := sweep.NewMatcher("tmp")
		So(err, ShouldBeNil)

		_, ok := m.Match("tmp_cube")
		So(ok, ShouldBeTrue)
		_, ok = m.Match("my_tmp_cube")
		So(ok, ShouldBeFalse)
	})

	Convey("An invalid pattern is rejected", t, func() {
		m, err := sweep.NewMatcher("^ok", "(")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, `"("`)
		So(m, ShouldBeNil)
	})

	Convey("A matcher without patterns matches nothing", t, func() {
		m, err := sweep.NewMatcher()
		So(err, ShouldBeNil)
		_, ok := m.Match("temp_foo")
		So(ok, ShouldBeFalse)
	})
}
