// Package labels provides month and weekday names for the supported languages.
package labels

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type table struct {
	months        [12]string
	weekdays      [7]string
	weekdaysShort [7]string
}

// weekdays start on Sunday to match time.Weekday
var tables = []struct {
	tag language.Tag
	table
}{
	{
		tag: language.English,
		table: table{
			months:        [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
			weekdays:      [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
			weekdaysShort: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		},
	},
	{
		tag: language.German,
		table: table{
			months:        [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
			weekdays:      [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
			weekdaysShort: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		},
	},
	{
		tag: language.French,
		table: table{
			months:        [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
			weekdays:      [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
			weekdaysShort: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		},
	},
	{
		tag: language.Spanish,
		table: table{
			months:        [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
			weekdays:      [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
			weekdaysShort: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		},
	},
	{
		tag: language.Italian,
		table: table{
			months:        [12]string{"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno", "luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre"},
			weekdays:      [7]string{"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato"},
			weekdaysShort: [7]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
		},
	},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(tables))
	for i, t := range tables {
		tags[i] = t.tag
	}
	return language.NewMatcher(tags)
}()

// Names are the calendar names of one language.
type Names struct {
	tag language.Tag
	t   *table
}

// Lookup returns the names of the supported language closest to lang, e.g. "de-AT" or "fr".
// Unknown or malformed languages fall back to English.
func Lookup(lang string) Names {
	tag, err := language.Parse(lang)
	if err != nil {
		return For(language.English)
	}
	return For(tag)
}

func For(tag language.Tag) Names {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	return Names{
		tag: tables[idx].tag,
		t:   &tables[idx].table,
	}
}

// tbl falls back to English for the zero Names.
func (n Names) tbl() *table {
	if n.t == nil {
		return &tables[0].table
	}
	return n.t
}

func (n Names) Tag() language.Tag {
	if n.t == nil {
		return tables[0].tag
	}
	return n.tag
}

// Months returns the month names, January first.
func (n Names) Months() []string {
	return append([]string{}, n.tbl().months[:]...)
}

// Weekdays returns the weekday names, Sunday first.
func (n Names) Weekdays() []string {
	return append([]string{}, n.tbl().weekdays[:]...)
}

// WeekdaysShort returns the abbreviated weekday names, Sunday first.
func (n Names) WeekdaysShort() []string {
	return append([]string{}, n.tbl().weekdaysShort[:]...)
}

func (n Names) Month(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return n.tbl().months[m-1]
}

func (n Names) Weekday(wd time.Weekday) string {
	if wd < time.Sunday || wd > time.Saturday {
		return ""
	}
	return n.tbl().weekdays[wd]
}

// MonthAndYear returns the long month name followed by the year, e.g. "April 2024".
func (n Names) MonthAndYear(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", n.Month(month), year)
}

// Title upper-cases the first letter of every word in a language aware way.
func (n Names) Title(s string) string {
	return cases.Title(n.Tag()).String(s)
}
