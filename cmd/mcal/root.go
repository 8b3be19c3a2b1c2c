package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mazzegi/log"
	"github.com/spf13/cobra"

	"github.com/mazzegi/mcal/calendar"
	"github.com/mazzegi/mcal/config"
	"github.com/mazzegi/mcal/date"
	"github.com/mazzegi/mcal/labels"
	"github.com/mazzegi/mcal/render"
)

type app struct {
	// dir is where the lookup of .env files starts
	dir     string
	today   date.Date
	cfg     config.Config
	flags   config.Config
	verbose bool
}

func newRootCmd(dir string, today date.Date) *cobra.Command {
	app := &app{dir: dir, today: today}
	def := config.Default(today)

	cmd := &cobra.Command{
		Use:           "mcal",
		Short:         "Print month calendars",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # The current month
  mcal

  # April 2024 in German with ISO week numbers
  mcal month 2024-04 --lang de --week-numbers

  # A whole year as JSON
  mcal year 2024 --format json
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.printMonth(cmd.OutOrStdout(), app.cfg.YearMonth())
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.configure(cmd)
	}

	pf := cmd.PersistentFlags()
	pf.IntVar(&app.flags.Year, "year", def.Year, "Year")
	pf.IntVar(&app.flags.Month, "month", def.Month, "Month (1-12)")
	pf.StringVar(&app.flags.Lang, "lang", def.Lang, "Language of month and weekday names (en|de|fr|es|it)")
	pf.StringVar(&app.flags.Format, "format", def.Format, "Output format (text|json)")
	pf.BoolVar(&app.flags.Padding, "padding", def.Padding, "Show the days of the adjacent months")
	pf.BoolVar(&app.flags.WeekNumbers, "week-numbers", def.WeekNumbers, "Show ISO week numbers")
	pf.BoolVar(&app.flags.Color, "color", def.Color, "Highlight today and dim adjacent days")
	pf.BoolVarP(&app.verbose, "verbose", "v", false, "Log debug messages to stderr")

	cmd.AddCommand(newMonthCmd(app))
	cmd.AddCommand(newYearCmd(app))
	return cmd
}

// configure layers the flags set explicitly over the environment and validates the result.
func (app *app) configure(cmd *cobra.Command) error {
	installLogger(cmd.ErrOrStderr(), app.verbose)
	cfg, err := config.Load(app.dir, app.today)
	if err != nil {
		return err
	}
	fs := cmd.Flags()
	if fs.Changed("year") {
		cfg.Year = app.flags.Year
	}
	if fs.Changed("month") {
		cfg.Month = app.flags.Month
	}
	if fs.Changed("lang") {
		cfg.Lang = app.flags.Lang
	}
	if fs.Changed("format") {
		cfg.Format = strings.ToLower(app.flags.Format)
	}
	if fs.Changed("padding") {
		cfg.Padding = app.flags.Padding
	}
	if fs.Changed("week-numbers") {
		cfg.WeekNumbers = app.flags.WeekNumbers
	}
	if fs.Changed("color") {
		cfg.Color = app.flags.Color
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	log.Debugf("config: %+v", cfg)
	app.cfg = cfg
	return nil
}

// selectMonth replaces the configured year and 1-based month by those given as arguments.
func (app *app) selectMonth(year, month int) error {
	cfg := app.cfg
	cfg.Year, cfg.Month = year, month
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	app.cfg = cfg
	return nil
}

func (app *app) options() render.Options {
	return render.Options{
		Names:       labels.Lookup(app.cfg.Lang),
		ShowPadding: app.cfg.Padding,
		WeekNumbers: app.cfg.WeekNumbers,
		Today:       app.today,
		Color:       app.cfg.Color,
	}
}

func newMonthCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Print the calendar of a month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				ym, err := date.ParseYearMonth(args[0])
				if err != nil {
					return err
				}
				if err := app.selectMonth(ym.Year(), int(ym.Month())); err != nil {
					return err
				}
			}
			return app.printMonth(cmd.OutOrStdout(), app.cfg.YearMonth())
		},
	}
}

func newYearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "year [YYYY]",
		Short: "Print the calendars of all months of a year",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				year, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("parse year %q: %w", args[0], err)
				}
				if err := app.selectMonth(year, app.cfg.Month); err != nil {
					return err
				}
			}
			return app.printYear(cmd.OutOrStdout(), app.cfg.Year)
		},
	}
}

func (app *app) printMonth(w io.Writer, ym date.YearMonth) error {
	g := calendar.MonthGridOf(ym)
	log.Debugf("month %s: %d weeks", ym, len(g.Weeks))
	if app.cfg.Format == config.FormatJSON {
		return render.WriteJSON(w, app.options(), g)
	}
	_, err := io.WriteString(w, render.Month(g, app.options()))
	return err
}

func (app *app) printYear(w io.Writer, year int) error {
	grids := calendar.YearGrids(year)
	log.Debugf("year %d", year)
	if app.cfg.Format == config.FormatJSON {
		return render.WriteJSON(w, app.options(), grids...)
	}
	_, err := io.WriteString(w, render.Year(year, grids, app.options()))
	return err
}
