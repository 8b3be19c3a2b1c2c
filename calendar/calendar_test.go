package calendar

import (
	"math"
	"testing"
	"time"

	"cloudeng.io/datetime"

	"github.com/mazzegi/mcal/date"
	"github.com/mazzegi/mcal/slicesx"
	"github.com/mazzegi/mcal/testx"
)

// span returns the dates from "from" to "to", both inclusive.
func span(from, to date.Date) []date.Date {
	var ds []date.Date
	for d := from; d.BeforeOrAt(to); d = d.AddDays(1) {
		ds = append(ds, d)
	}
	return ds
}

func week(from date.Date) Week {
	return Week(span(from, from.AddDays(DaysPerWeek-1)))
}

func TestNormalize(t *testing.T) {
	tx := testx.NewTx(t)
	type test struct {
		year, month         int
		wantYear, wantMonth int
	}
	tests := []test{
		{year: 2024, month: 0, wantYear: 2024, wantMonth: 0},
		{year: 2024, month: 11, wantYear: 2024, wantMonth: 11},
		{year: 2024, month: -1, wantYear: 2023, wantMonth: 11},
		{year: 2024, month: 12, wantYear: 2025, wantMonth: 0},
		{year: 2024, month: -12, wantYear: 2023, wantMonth: 0},
		{year: 2024, month: -13, wantYear: 2022, wantMonth: 11},
		{year: 2024, month: 25, wantYear: 2026, wantMonth: 1},
		{year: 0, month: -1, wantYear: -1, wantMonth: 11},
	}
	testx.RunTestsParallel(tx, tests, func(tx *testx.Tx, test test) {
		y, m := Normalize(test.year, test.month)
		tx.AssertEqual(test.wantYear, y)
		tx.AssertEqual(test.wantMonth, m)
	})
}

func TestDaysOfMonth(t *testing.T) {
	tx := testx.NewTx(t)
	type test struct {
		year, month int
		wantFirst   date.Date
		wantLen     int
	}
	tests := []test{
		{year: 2024, month: 1, wantFirst: date.Make(2024, 2, 1), wantLen: 29},
		{year: 2023, month: 1, wantFirst: date.Make(2023, 2, 1), wantLen: 28},
		{year: 1900, month: 1, wantFirst: date.Make(1900, 2, 1), wantLen: 28},
		{year: 2000, month: 1, wantFirst: date.Make(2000, 2, 1), wantLen: 29},
		{year: 2024, month: 3, wantFirst: date.Make(2024, 4, 1), wantLen: 30},
		{year: 2024, month: 11, wantFirst: date.Make(2024, 12, 1), wantLen: 31},
		{year: 2024, month: -1, wantFirst: date.Make(2023, 12, 1), wantLen: 31},
		{year: 2024, month: 13, wantFirst: date.Make(2025, 2, 1), wantLen: 28},
	}
	testx.RunTestsParallel(tx, tests, func(tx *testx.Tx, test test) {
		days := DaysOfMonth(test.year, test.month)
		tx.AssertEqual(test.wantLen, len(days))
		tx.AssertEqual(span(test.wantFirst, test.wantFirst.AddDays(test.wantLen-1)), days)
	})
}

func TestDaysOfMonthAgainstTable(t *testing.T) {
	tx := testx.NewTx(t)
	for year := 1600; year <= 2400; year++ {
		for month := 0; month < 12; month++ {
			days := DaysOfMonth(year, month)
			want := int(datetime.DaysInMonth(year, datetime.Month(month+1)))
			tx.AssertTrue(len(days) == want, "%d-%02d: have %d days, want %d", year, month+1, len(days), want)
			for _, d := range days {
				tx.AssertTrue(d.Year() == year && d.Month() == time.Month(month+1),
					"%d-%02d: foreign date %s", year, month+1, d)
			}
		}
	}
}

func TestWeeksOfMonthScenarios(t *testing.T) {
	type test struct {
		name        string
		year, month int
		want        []Week
	}
	tests := []test{
		{
			name: "april_2024_monday_start",
			year: 2024, month: 3,
			want: []Week{
				week(date.Make(2024, 3, 31)),
				week(date.Make(2024, 4, 7)),
				week(date.Make(2024, 4, 14)),
				week(date.Make(2024, 4, 21)),
				week(date.Make(2024, 4, 28)),
			},
		},
		{
			name: "february_2024_leap",
			year: 2024, month: 1,
			want: []Week{
				week(date.Make(2024, 1, 28)),
				week(date.Make(2024, 2, 4)),
				week(date.Make(2024, 2, 11)),
				week(date.Make(2024, 2, 18)),
				week(date.Make(2024, 2, 25)),
			},
		},
		{
			name: "september_2024_sunday_start",
			year: 2024, month: 8,
			want: []Week{
				week(date.Make(2024, 9, 1)),
				week(date.Make(2024, 9, 8)),
				week(date.Make(2024, 9, 15)),
				week(date.Make(2024, 9, 22)),
				week(date.Make(2024, 9, 29)),
			},
		},
		{
			name: "february_2015_four_weeks",
			year: 2015, month: 1,
			want: []Week{
				week(date.Make(2015, 2, 1)),
				week(date.Make(2015, 2, 8)),
				week(date.Make(2015, 2, 15)),
				week(date.Make(2015, 2, 22)),
			},
		},
		{
			name: "august_2024_saturday_end",
			year: 2024, month: 7,
			want: []Week{
				week(date.Make(2024, 7, 28)),
				week(date.Make(2024, 8, 4)),
				week(date.Make(2024, 8, 11)),
				week(date.Make(2024, 8, 18)),
				week(date.Make(2024, 8, 25)),
			},
		},
		{
			name: "december_2023_six_weeks_year_rollover",
			year: 2023, month: 11,
			want: []Week{
				week(date.Make(2023, 11, 26)),
				week(date.Make(2023, 12, 3)),
				week(date.Make(2023, 12, 10)),
				week(date.Make(2023, 12, 17)),
				week(date.Make(2023, 12, 24)),
				week(date.Make(2023, 12, 31)),
			},
		},
		{
			name: "january_2024_previous_year_padding",
			year: 2024, month: 0,
			want: []Week{
				week(date.Make(2023, 12, 31)),
				week(date.Make(2024, 1, 7)),
				week(date.Make(2024, 1, 14)),
				week(date.Make(2024, 1, 21)),
				week(date.Make(2024, 1, 28)),
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tx := testx.NewTx(t)
			tx.AssertEqual(test.want, WeeksOfMonth(test.year, test.month))
		})
	}
}

func TestWeeksOfMonthPadding(t *testing.T) {
	tx := testx.NewTx(t)

	april := NewMonthGrid(2024, 3)
	tx.AssertEqual([]date.Date{date.Make(2024, 3, 31)}, april.Leading())
	tx.AssertEqual(span(date.Make(2024, 5, 1), date.Make(2024, 5, 4)), april.Trailing())
	tx.AssertEqual(date.Make(2024, 3, 31), april.Weeks[0][0])
	for pos := 3; pos < DaysPerWeek; pos++ {
		tx.AssertEqual(time.Month(5), april.Weeks[4][pos].Month())
	}

	september := NewMonthGrid(2024, 8)
	tx.AssertEqual(0, len(september.Leading()))
	tx.AssertEqual(span(date.Make(2024, 10, 1), date.Make(2024, 10, 5)), september.Trailing())

	february := NewMonthGrid(2024, 1)
	tx.AssertEqual(span(date.Make(2024, 1, 28), date.Make(2024, 1, 31)), february.Leading())
	tx.AssertEqual(span(date.Make(2024, 3, 1), date.Make(2024, 3, 2)), february.Trailing())
	tx.AssertEqual(29, len(february.InMonth()))

	short := NewMonthGrid(2015, 1)
	tx.AssertEqual(0, len(short.Leading()))
	tx.AssertEqual(0, len(short.Trailing()))
}

func TestWeeksOfMonthProperties(t *testing.T) {
	tx := testx.NewTx(t)
	for year := 1900; year <= 2100; year++ {
		for month := 0; month < 12; month++ {
			weeks := WeeksOfMonth(year, month)
			testx.TxAssertInRange(tx, len(weeks), WeekCount.Min, WeekCount.Max)

			days := DaysOfMonth(year, month)
			flat := slicesx.Flatten(weeks)
			inMonth := slicesx.Filter(flat, func(d date.Date) bool {
				return d.Month() == time.Month(month+1)
			})
			tx.AssertEqual(days, inMonth)

			for i := 1; i < len(flat); i++ {
				tx.AssertTrue(flat[i].Equal(flat[i-1].AddDays(1)), "%d-%02d: gap between %s and %s", year, month+1, flat[i-1], flat[i])
			}
			// leading padding ends right before the 1st, trailing padding starts right after the last day
			if lead := slicesx.Filter(weeks[0], func(d date.Date) bool { return d.Before(days[0]) }); len(lead) > 0 {
				tx.AssertEqual(days[0].AddDays(-1), lead[len(lead)-1])
				tx.AssertEqual(days[0].AddMonths(-1).Month(), lead[0].Month())
			}
			last := days[len(days)-1]
			if trail := slicesx.Filter(weeks[len(weeks)-1], func(d date.Date) bool { return d.After(last) }); len(trail) > 0 {
				tx.AssertEqual(last.AddDays(1), trail[0])
				tx.AssertEqual(1, trail[0].Day())
			}

			g := NewMonthGrid(year, month)
			tx.AssertNoErr(g.Validate())
		}
	}
}

func TestWeeksOfMonthOutOfRange(t *testing.T) {
	tx := testx.NewTx(t)
	tx.AssertEqual(WeeksOfMonth(2023, 11), WeeksOfMonth(2024, -1))
	tx.AssertEqual(WeeksOfMonth(2025, 0), WeeksOfMonth(2024, 12))
	tx.AssertEqual(NewMonthGrid(2023, 11), NewMonthGrid(2024, -1))
}

func TestNormalizeClampsYear(t *testing.T) {
	type test struct {
		year, month         int
		wantYear, wantMonth int
	}
	tests := []test{
		{year: MaxYear, month: 11, wantYear: MaxYear, wantMonth: 11},
		{year: MaxYear, month: 12, wantYear: MaxYear, wantMonth: 11},
		{year: MaxYear + 1, month: 0, wantYear: MaxYear, wantMonth: 11},
		{year: MinYear, month: 0, wantYear: MinYear, wantMonth: 0},
		{year: MinYear, month: -1, wantYear: MinYear, wantMonth: 0},
		{year: 1 << 40, month: 3, wantYear: MaxYear, wantMonth: 11},
		{year: math.MaxInt, month: math.MaxInt, wantYear: MaxYear, wantMonth: 11},
		{year: math.MinInt, month: math.MinInt, wantYear: MinYear, wantMonth: 0},
		{year: 2024, month: math.MaxInt, wantYear: MaxYear, wantMonth: 11},
	}
	testx.RunTestsParallel(testx.NewTx(t), tests, func(tx *testx.Tx, test test) {
		year, month := Normalize(test.year, test.month)
		tx.AssertEqual(test.wantYear, year)
		tx.AssertEqual(test.wantMonth, month)
	})
}

func TestWeeksOfMonthExtremeYears(t *testing.T) {
	type test struct {
		year, month int
	}
	tests := []test{
		{year: MaxYear, month: 11},
		{year: MinYear, month: 0},
		{year: 1 << 40, month: 3},
		{year: math.MaxInt, month: 3},
		{year: math.MinInt, month: 3},
		{year: -4000, month: 1},
	}
	testx.RunTestsParallel(testx.NewTx(t), tests, func(tx *testx.Tx, test test) {
		g := NewMonthGrid(test.year, test.month)
		tx.AssertNoErr(g.Validate())
		year, month := Normalize(test.year, test.month)
		tx.AssertEqual(daysOfMonth(year, month), g.InMonth())
	})

	tx := testx.NewTx(t)
	tx.AssertEqual(WeeksOfMonth(MaxYear, 11), WeeksOfMonth(math.MaxInt, 3))

	// the padding of the boundary months comes from beyond the range
	dec := date.Make(MaxYear, time.December, 31)
	weeks := WeeksOfMonth(MaxYear, 11)
	for _, d := range weeks[len(weeks)-1] {
		if d.After(dec) {
			tx.AssertEqual(date.MakeYearMonth(MaxYear+1, time.January), d.YearMonth())
		}
	}
	jan := date.Make(MinYear, time.January, 1)
	for _, d := range WeeksOfMonth(MinYear, 0)[0] {
		if d.Before(jan) {
			tx.AssertEqual(date.MakeYearMonth(MinYear-1, time.December), d.YearMonth())
		}
	}
}

func TestWeeksOfMonthConcurrent(t *testing.T) {
	tx := testx.NewTx(t)
	want := WeeksOfMonth(2024, 3)
	type test struct{}
	testx.RunTestsParallel(tx, make([]test, 16), func(tx *testx.Tx, _ test) {
		tx.AssertEqual(want, WeeksOfMonth(2024, 3))
	})
}

func TestWeekISOWeek(t *testing.T) {
	tx := testx.NewTx(t)
	weeks := WeeksOfMonth(2024, 3)
	tx.AssertEqual(date.ISOWeek{Year: 2024, Week: 14}, weeks[0].ISOWeek())
	dec := WeeksOfMonth(2024, 11)
	tx.AssertEqual(date.ISOWeek{Year: 2025, Week: 1}, dec[len(dec)-1].ISOWeek())
}
