package calendar

import (
	"fmt"
	"time"

	"github.com/mazzegi/mcal/date"
	"github.com/mazzegi/mcal/errorx"
	"github.com/mazzegi/mcal/mathx"
	"github.com/mazzegi/mcal/slicesx"
)

// WeekCount is the range of the number of weeks a month grid may have.
var WeekCount = mathx.NewRange(4, 6)

// MonthGrid is the padded week grid of a month.
type MonthGrid struct {
	Month date.YearMonth
	Weeks []Week
}

// NewMonthGrid returns the grid of the zero-indexed month of year.
func NewMonthGrid(year, month int) MonthGrid {
	year, month = Normalize(year, month)
	return MonthGrid{
		Month: date.MakeYearMonth(year, time.Month(month+1)),
		Weeks: WeeksOfMonth(year, month),
	}
}

func MonthGridOf(ym date.YearMonth) MonthGrid {
	return NewMonthGrid(ym.Year(), ym.MonthIndex())
}

// YearGrids returns the grids of all months of year, January first.
func YearGrids(year int) []MonthGrid {
	grids := make([]MonthGrid, 12)
	for m := range grids {
		grids[m] = NewMonthGrid(year, m)
	}
	return grids
}

// Days returns all dates of the grid, including padding, in ascending order.
func (g MonthGrid) Days() []date.Date {
	return slicesx.Flatten(g.Weeks)
}

// InMonth returns the dates of the grid which belong to its month.
func (g MonthGrid) InMonth() []date.Date {
	return slicesx.Filter(g.Days(), g.Month.Contains)
}

// Leading returns the padding dates of the previous month.
func (g MonthGrid) Leading() []date.Date {
	if len(g.Weeks) == 0 {
		return nil
	}
	return slicesx.Filter(g.Weeks[0], g.IsPadding)
}

// Trailing returns the padding dates of the next month.
func (g MonthGrid) Trailing() []date.Date {
	if len(g.Weeks) == 0 {
		return nil
	}
	last := g.Weeks[len(g.Weeks)-1]
	return slicesx.Filter(last, func(d date.Date) bool {
		return g.IsPadding(d) && d.After(g.Month.FirstDay())
	})
}

func (g MonthGrid) Contains(d date.Date) bool {
	if len(g.Weeks) == 0 {
		return false
	}
	return d.BetweenInclusive(g.Weeks[0].First(), g.Weeks[len(g.Weeks)-1].Last())
}

// IsPadding reports whether d is a date of the grid outside of its month.
func (g MonthGrid) IsPadding(d date.Date) bool {
	return g.Contains(d) && !g.Month.Contains(d)
}

// Validate checks the structure of the grid and reports all violations.
func (g MonthGrid) Validate() error {
	errs := errorx.NewGroup()
	if !WeekCount.Contains(len(g.Weeks)) {
		errs.Append(fmt.Errorf("%s: %d weeks not in %s", g.Month, len(g.Weeks), WeekCount))
	}
	for i, w := range g.Weeks {
		if len(w) != DaysPerWeek {
			errs.Append(fmt.Errorf("%s: week %d has %d days", g.Month, i, len(w)))
			continue
		}
		for pos, d := range w {
			if int(d.WeekDay()) != pos {
				errs.Append(fmt.Errorf("%s: week %d: %s at position %d is a %s", g.Month, i, d, pos, d.WeekDay()))
			}
			if g.Month.Contains(d) {
				continue
			}
			if i != 0 && i != len(g.Weeks)-1 {
				errs.Append(fmt.Errorf("%s: week %d: padding %s in an inner week", g.Month, i, d))
			}
		}
	}
	days := g.Days()
	for i := 1; i < len(days); i++ {
		if !days[i].Equal(days[i-1].AddDays(1)) {
			errs.Append(fmt.Errorf("%s: %s does not follow %s", g.Month, days[i], days[i-1]))
		}
	}
	inMonth := g.InMonth()
	if len(inMonth) != g.Month.NumDays() {
		errs.Append(fmt.Errorf("%s: %d days in month, expect %d", g.Month, len(inMonth), g.Month.NumDays()))
	}
	return errs.Err()
}
