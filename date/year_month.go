package date

import (
	"fmt"
	"time"
)

// YearMonth is a month of a particular year. It is kept as the first day of that month.
type YearMonth struct {
	d Date
}

func MakeYearMonth(year int, month time.Month) YearMonth {
	return YearMonth{d: Make(year, month, 1)}
}

func YearMonthNow() YearMonth {
	return Today().YearMonth()
}

func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("parse year-month %q: %w", s, err)
	}
	return MakeYearMonth(t.Year(), t.Month()), nil
}

func (ym YearMonth) Year() int {
	return ym.d.Year()
}

func (ym YearMonth) Month() time.Month {
	return ym.d.Month()
}

// MonthIndex returns the zero based month, 0 for January.
func (ym YearMonth) MonthIndex() int {
	return int(ym.d.Month()) - 1
}

func (ym YearMonth) FirstDay() Date {
	return ym.d
}

func (ym YearMonth) LastDay() Date {
	return ym.d.AddMonths(1).AddDays(-1)
}

func (ym YearMonth) NumDays() int {
	return ym.LastDay().Day()
}

func (ym YearMonth) Contains(d Date) bool {
	return d.Year() == ym.Year() && d.Month() == ym.Month()
}

func (ym YearMonth) Previous() YearMonth {
	return YearMonth{d: ym.d.AddMonths(-1)}
}

func (ym YearMonth) Next() YearMonth {
	return YearMonth{d: ym.d.AddMonths(1)}
}

func (ym YearMonth) AddMonths(n int) YearMonth {
	return YearMonth{d: ym.d.AddMonths(n)}
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%d-%02d", ym.Year(), ym.Month())
}
