package generator

import (
	"fmt"
	"iter"
	"strconv"
	"time"
)

// DateLayout is the format of generated date element names
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Dates yields every calendar date in [start, end) once, in increasing order.
// Both bounds are truncated to their calendar date in UTC. The sequence is
// finite and can be ranged over any number of times.
func Dates(start, end time.Time) iter.Seq[time.Time] {
	from, to := day(start), day(end)
	return func(yield func(time.Time) bool) {
		for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// DateNames yields the dates in [start, end) formatted with DateLayout
func DateNames(start, end time.Time) iter.Seq[string] {
	return func(yield func(string) bool) {
		for d := range Dates(start, end) {
			if !yield(d.Format(DateLayout)) {
				return
			}
		}
	}
}

// DaysBetween returns the number of dates Dates yields for the same bounds
func DaysBetween(start, end time.Time) int {
	from, to := day(start), day(end)
	if !from.Before(to) {
		return 0
	}
	// UTC days are always 86400s long; Duration would overflow past ~292 years
	return int((to.Unix() - from.Unix()) / secondsPerDay)
}

// Years yields the years in [from, to) as strings
func Years(from, to int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for y := from; y < to; y++ {
			if !yield(strconv.Itoa(y)) {
				return
			}
		}
	}
}

// Quarters yields Q1 to Q4
func Quarters() iter.Seq[string] {
	return func(yield func(string) bool) {
		for q := 1; q <= 4; q++ {
			if !yield(fmt.Sprintf("Q%d", q)) {
				return
			}
		}
	}
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
