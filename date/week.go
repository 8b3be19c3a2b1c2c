package date

import (
	"fmt"
)

type ISOWeek struct {
	Year int `json:"year"`
	Week int `json:"week"`
}

func (w ISOWeek) Format() string {
	return fmt.Sprintf("%02d", w.Week)
}

func (w ISOWeek) String() string {
	return fmt.Sprintf("%d-W%02d", w.Year, w.Week)
}
