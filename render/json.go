package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mazzegi/mcal/calendar"
	"github.com/mazzegi/mcal/date"
	"github.com/mazzegi/mcal/slicesx"
)

type Day struct {
	Date    date.Date `json:"date"`
	Day     int       `json:"day"`
	Weekday int       `json:"weekday"`
	InMonth bool      `json:"inMonth"`
	Today   bool      `json:"today,omitempty"`
}

type MonthView struct {
	Year     int      `json:"year"`
	Month    int      `json:"month"`
	Label    string   `json:"label"`
	Weekdays []string `json:"weekdays"`
	Weeks    [][]Day  `json:"weeks"`
}

// View converts g into its JSON representation. Month is 1-based.
func View(g calendar.MonthGrid, opts Options) MonthView {
	return MonthView{
		Year:     g.Month.Year(),
		Month:    int(g.Month.Month()),
		Label:    opts.Names.MonthAndYear(g.Month.Year(), g.Month.Month()),
		Weekdays: opts.Names.WeekdaysShort(),
		Weeks: slicesx.Map(g.Weeks, func(w calendar.Week) []Day {
			return slicesx.Map(w, func(d date.Date) Day {
				return Day{
					Date:    d,
					Day:     d.Day(),
					Weekday: int(d.WeekDay()),
					InMonth: g.Month.Contains(d),
					Today:   !opts.Today.IsZero() && d.Equal(opts.Today),
				}
			})
		}),
	}
}

// WriteJSON writes a single grid as an object and several grids as an array.
func WriteJSON(w io.Writer, opts Options, grids ...calendar.MonthGrid) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	views := slicesx.Map(grids, func(g calendar.MonthGrid) MonthView {
		return View(g, opts)
	})
	var err error
	if len(views) == 1 {
		err = enc.Encode(views[0])
	} else {
		err = enc.Encode(views)
	}
	if err != nil {
		return fmt.Errorf("encode-json: %w", err)
	}
	return nil
}
