// Package config holds the settings of the mcal command.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/mazzegi/mcal/date"
	"github.com/mazzegi/mcal/env"
	"github.com/mazzegi/mcal/errorx"
)

// Prefix of all environment variables and .env keys, e.g. MCAL_LANG.
const Prefix = "MCAL_"

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	Year int `json:"year"`
	// Month is 1-based, 1 for January.
	Month       int    `json:"month"`
	Lang        string `json:"lang"`
	Format      string `json:"format"`
	Padding     bool   `json:"padding"`
	WeekNumbers bool   `json:"weeknumbers"`
	Color       bool   `json:"color"`
}

// Default returns the settings for the month of today.
func Default(today date.Date) Config {
	return Config{
		Year:    today.Year(),
		Month:   int(today.Month()),
		Lang:    "en",
		Format:  FormatText,
		Padding: true,
		Color:   true,
	}
}

// Load returns the defaults overridden by the MCAL_ variables of the .env files found from dir upwards
// and of the OS environment.
func Load(dir string, today date.Date) (Config, error) {
	c := Default(today)
	if err := c.Apply(env.Load(dir).WithPrefix(Prefix)); err != nil {
		return Config{}, fmt.Errorf("apply environment: %w", err)
	}
	return c, nil
}

// Apply sets all fields present in e. Keys are the lower-case field names.
func (c *Config) Apply(e env.Env) error {
	errs := errorx.NewGroup()
	applyInt := func(key string, dst *int) {
		v, ok, err := e.Int(key)
		errs.Append(err)
		if ok && err == nil {
			*dst = v
		}
	}
	applyBool := func(key string, dst *bool) {
		v, ok, err := e.Bool(key)
		errs.Append(err)
		if ok && err == nil {
			*dst = v
		}
	}
	applyInt("year", &c.Year)
	applyInt("month", &c.Month)
	applyBool("padding", &c.Padding)
	applyBool("weeknumbers", &c.WeekNumbers)
	applyBool("color", &c.Color)
	c.Lang = e.StringOrDefault("lang", c.Lang)
	c.Format = strings.ToLower(e.StringOrDefault("format", c.Format))
	return errs.Err()
}

// YearMonth returns the configured month. Months out of [1, 12] carry into the year.
func (c Config) YearMonth() date.YearMonth {
	return date.MakeYearMonth(c.Year, time.Month(c.Month))
}

func (c Config) Validate() error {
	errs := errorx.NewGroup()
	if c.Month < 1 || c.Month > 12 {
		errs.Append(fmt.Errorf("month %d not in [1, 12]", c.Month))
	}
	if c.Year < 1 || c.Year > 9999 {
		errs.Append(fmt.Errorf("year %d not in [1, 9999]", c.Year))
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		errs.Append(fmt.Errorf("unknown format %q, expect %q or %q", c.Format, FormatText, FormatJSON))
	}
	if strings.TrimSpace(c.Lang) == "" {
		errs.Append(fmt.Errorf("empty language"))
	}
	return errs.Err()
}
