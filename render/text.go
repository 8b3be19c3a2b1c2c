// Package render turns month grids into text or JSON. It contains no calendar logic.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mazzegi/mcal/calendar"
	"github.com/mazzegi/mcal/date"
	"github.com/mazzegi/mcal/labels"
	"github.com/mazzegi/mcal/slicesx"
)

const (
	cellWidth   = 2
	monthsInRow = 3
	blockGap    = "   "
)

// Options control the presentation of a grid.
type Options struct {
	Names       labels.Names
	ShowPadding bool
	WeekNumbers bool
	// Today is highlighted if it is part of a rendered grid. The zero Date highlights nothing.
	Today date.Date
	Color bool
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Underline(true)
	paddingStyle = lipgloss.NewStyle().Faint(true)
	todayStyle   = lipgloss.NewStyle().Reverse(true)
	weekNoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (o Options) paint(style lipgloss.Style, s string) string {
	if !o.Color {
		return s
	}
	return style.Render(s)
}

func (o Options) width() int {
	w := calendar.DaysPerWeek*(cellWidth+1) - 1
	if o.WeekNumbers {
		w += cellWidth + 1
	}
	return w
}

// Month renders g with a "<month> <year>" title.
func Month(g calendar.MonthGrid, opts Options) string {
	title := opts.Names.Title(opts.Names.MonthAndYear(g.Month.Year(), g.Month.Month()))
	return strings.Join(monthLines(g, title, opts), "\n") + "\n"
}

// Year renders all grids below a year title, three months side by side.
func Year(year int, grids []calendar.MonthGrid, opts Options) string {
	blocks := slicesx.Map(grids, func(g calendar.MonthGrid) string {
		title := opts.Names.Title(opts.Names.Month(g.Month.Month()))
		return strings.Join(monthLines(g, title, opts), "\n")
	})

	var rows []string
	for _, chunk := range slicesx.Chunks(blocks, monthsInRow) {
		var cols []string
		for i, block := range chunk {
			if i > 0 {
				cols = append(cols, blockGap)
			}
			cols = append(cols, block)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}
	var rowWidth int
	if len(rows) > 0 {
		rowWidth = lipgloss.Width(rows[0])
	}
	header := lipgloss.PlaceHorizontal(rowWidth, lipgloss.Center, opts.paint(titleStyle, fmt.Sprintf("%d", year)))
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{header, ""}, joinRows(rows)...)...) + "\n"
}

// joinRows separates the rows of month blocks by an empty line.
func joinRows(rows []string) []string {
	var out []string
	for i, r := range rows {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, r)
	}
	return out
}

func monthLines(g calendar.MonthGrid, title string, opts Options) []string {
	width := opts.width()
	lines := []string{
		lipgloss.PlaceHorizontal(width, lipgloss.Center, opts.paint(titleStyle, title)),
		weekdayHeader(opts),
	}
	for _, w := range g.Weeks {
		lines = append(lines, weekLine(g, w, opts))
	}
	return lines
}

func weekdayHeader(opts Options) string {
	heads := slicesx.Map(opts.Names.WeekdaysShort(), func(s string) string {
		r := []rune(opts.Names.Title(s))
		if len(r) > cellWidth {
			r = r[:cellWidth]
		}
		return fmt.Sprintf("%-*s", cellWidth, string(r))
	})
	if opts.WeekNumbers {
		heads = append([]string{strings.Repeat(" ", cellWidth)}, heads...)
	}
	return opts.paint(headerStyle, strings.Join(heads, " "))
}

func weekLine(g calendar.MonthGrid, w calendar.Week, opts Options) string {
	cells := slicesx.Map(w, func(d date.Date) string {
		cell := fmt.Sprintf("%*d", cellWidth, d.Day())
		switch {
		case g.IsPadding(d) && !opts.ShowPadding:
			return strings.Repeat(" ", cellWidth)
		case !opts.Today.IsZero() && d.Equal(opts.Today) && !g.IsPadding(d):
			return opts.paint(todayStyle, cell)
		case g.IsPadding(d):
			return opts.paint(paddingStyle, cell)
		default:
			return cell
		}
	})
	if opts.WeekNumbers {
		cells = append([]string{opts.paint(weekNoStyle, w.ISOWeek().Format())}, cells...)
	}
	return strings.Join(cells, " ")
}
