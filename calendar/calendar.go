// Package calendar builds the week grid of a month view.
//
// Weeks start on Sunday. Months are zero-indexed (0 = January) and values outside
// of [0, 11] are folded into that range, carrying into the year. Years are limited
// to [MinYear, MaxYear]; months beyond are clamped to the first or last month of that range.
package calendar

import (
	"time"

	"github.com/mazzegi/mcal/date"
)

// DaysPerWeek is the length of every week of a grid.
const DaysPerWeek = 7

// Years outside of this range are not supported by the date arithmetic.
const (
	MinYear = -1_000_000
	MaxYear = 1_000_000
)

// Week is a row of a month grid. Position i holds the date with weekday i.
type Week []date.Date

func (w Week) First() date.Date {
	return w[0]
}

func (w Week) Last() date.Date {
	return w[len(w)-1]
}

// ISOWeek returns the ISO week of the row's Monday.
func (w Week) ISOWeek() date.ISOWeek {
	return w[time.Monday].ISOWeek()
}

// Normalize folds month into [0, 11] and adjusts year accordingly. The result is clamped to
// January of MinYear and December of MaxYear.
func Normalize(year, month int) (int, int) {
	switch {
	case year > MaxYear:
		return MaxYear, 11
	case year < MinYear:
		return MinYear, 0
	}
	year, month = carry(year, month)
	switch {
	case year > MaxYear:
		return MaxYear, 11
	case year < MinYear:
		return MinYear, 0
	}
	return year, month
}

// carry folds month into [0, 11] without clamping. year must be in [MinYear, MaxYear].
func carry(year, month int) (int, int) {
	year += month / 12
	month %= 12
	if month < 0 {
		month += 12
		year--
	}
	return year, month
}

// firstOfMonth is also used for the neighbours of the boundary months, so it does not clamp.
func firstOfMonth(year, month int) date.Date {
	year, month = carry(year, month)
	return date.Make(year, time.Month(month+1), 1)
}

// DaysOfMonth returns all dates of the month in ascending order.
func DaysOfMonth(year, month int) []date.Date {
	return daysOfMonth(Normalize(year, month))
}

func daysOfMonth(year, month int) []date.Date {
	d := firstOfMonth(year, month)
	m := d.Month()
	var days []date.Date
	for d.Month() == m {
		days = append(days, d)
		d = d.AddDays(1)
	}
	return days
}

// WeeksOfMonth returns the weeks of the month. The first and last week are padded with days of the
// previous and next month, so that every week has exactly DaysPerWeek days.
func WeeksOfMonth(year, month int) []Week {
	year, month = Normalize(year, month)
	days := daysOfMonth(year, month)
	weeks := partition(days)
	weeks = padLeading(weeks, year, month)
	weeks = padTrailing(weeks, year, month)
	return weeks
}

// partition starts a new week on every Sunday.
func partition(days []date.Date) []Week {
	var weeks []Week
	var curr Week
	for _, d := range days {
		if len(curr) > 0 && d.WeekDay() == time.Sunday {
			weeks = append(weeks, curr)
			curr = nil
		}
		curr = append(curr, d)
	}
	if len(curr) > 0 {
		weeks = append(weeks, curr)
	}
	return weeks
}

// padLeading prepends the last days of the previous month to the first week.
func padLeading(weeks []Week, year, month int) []Week {
	first := weeks[0]
	if first.First().WeekDay() == time.Sunday {
		return weeks
	}
	prevDays := daysOfMonth(year, month-1)
	toAdd := min(DaysPerWeek-len(first), len(prevDays))

	padded := make(Week, 0, DaysPerWeek)
	padded = append(padded, prevDays[len(prevDays)-toAdd:]...)
	padded = append(padded, first...)

	out := make([]Week, len(weeks))
	copy(out, weeks)
	out[0] = padded
	return out
}

// padTrailing appends the first days of the next month to the last week.
func padTrailing(weeks []Week, year, month int) []Week {
	last := weeks[len(weeks)-1]
	// leading padding only prepends, so the month's last day still ends the last week
	lastWeekDay := last.Last().WeekDay()
	if lastWeekDay == time.Saturday && len(last) == DaysPerWeek {
		return weeks
	}
	next := firstOfMonth(year, month+1)
	toAdd := int(time.Saturday - lastWeekDay)

	padded := make(Week, 0, DaysPerWeek)
	padded = append(padded, last...)
	for i := 0; i < toAdd; i++ {
		padded = append(padded, next.AddDays(i))
	}

	out := make([]Week, len(weeks))
	copy(out, weeks)
	out[len(out)-1] = padded
	return out
}
