package generator

import (
	"slices"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDates(t *testing.T) {
	ranges := []struct {
		start, end time.Time
	}{
		{date(2020, time.January, 1), date(2020, time.January, 2)},
		{date(2020, time.February, 27), date(2020, time.March, 2)},
		{date(2019, time.December, 30), date(2021, time.January, 3)},
	}

	Convey("Given a set of date ranges where start is before end", t, func() {
		for _, r := range ranges {
			dates := slices.Collect(Dates(r.start, r.end))

			So(dates, ShouldHaveLength, DaysBetween(r.start, r.end))
			So(dates[0].Equal(r.start), ShouldBeTrue)
			for i, d := range dates {
				So(d.Before(r.end), ShouldBeTrue)
				if i > 0 {
					So(d.Equal(dates[i-1].AddDate(0, 0, 1)), ShouldBeTrue)
				}
			}
		}
	})

	Convey("The full sample range produces one date per day including leap days", t, func() {
		So(DaysBetween(date(1940, time.January, 1), date(2041, time.January, 1)), ShouldEqual, 36891)
		So(slices.Collect(Dates(date(1940, time.January, 1), date(2041, time.January, 1))), ShouldHaveLength, 36891)
		So(DaysBetween(date(2020, time.February, 1), date(2020, time.March, 1)), ShouldEqual, 29)
	})

	Convey("Ranges longer than a time.Duration can hold are counted exactly", t, func() {
		start, end := date(1600, time.January, 1), date(2000, time.January, 1)
		So(DaysBetween(start, end), ShouldEqual, 146097)
		So(slices.Collect(Dates(start, end)), ShouldHaveLength, 146097)
	})

	Convey("An empty or inverted range yields nothing", t, func() {
		So(slices.Collect(Dates(date(2020, time.May, 1), date(2020, time.May, 1))), ShouldBeEmpty)
		So(slices.Collect(Dates(date(2020, time.May, 2), date(2020, time.May, 1))), ShouldBeEmpty)
		So(DaysBetween(date(2020, time.May, 2), date(2020, time.May, 1)), ShouldEqual, 0)
	})

	Convey("The sequence can be restarted", t, func() {
		seq := Dates(date(2020, time.May, 1), date(2020, time.May, 4))
		So(slices.Collect(seq), ShouldResemble, slices.Collect(seq))
	})

	Convey("Breaking early stops the sequence", t, func() {
		n := 0
		for range Dates(date(2020, time.May, 1), date(2030, time.May, 1)) {
			n++
			if n == 3 {
				break
			}
		}
		So(n, ShouldEqual, 3)
	})

	Convey("Bounds with a time of day are truncated to their date", t, func() {
		start := time.Date(2020, time.May, 1, 18, 30, 0, 0, time.UTC)
		end := time.Date(2020, time.May, 3, 1, 0, 0, 0, time.UTC)
		So(slices.Collect(DateNames(start, end)), ShouldResemble, []string{"2020-05-01", "2020-05-02"})
	})
}

func TestYearsAndQuarters(t *testing.T) {
	Convey("Years yields the half-open range as strings", t, func() {
		years := slices.Collect(Years(1940, 2041))
		So(years, ShouldHaveLength, 101)
		So(years[0], ShouldEqual, "1940")
		So(years[100], ShouldEqual, "2040")
	})

	Convey("Quarters yields Q1 to Q4", t, func() {
		So(slices.Collect(Quarters()), ShouldResemble, []string{"Q1", "Q2", "Q3", "Q4"})
	})
}
