package config

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/datedmemo/pkg/service/datetime"
	"github.com/urfave/cli/v3"
)

// Calendar holds the zone used to interpret and humanize memo dates
type Calendar struct {
	timezone string
}

// Flags returns CLI flags for calendar configuration
func (x *Calendar) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "timezone",
			Aliases:     []string{"tz"},
			Usage:       "IANA time zone for memo dates (default: server local zone)",
			Sources:     cli.EnvVars("DATEDMEMO_TIMEZONE"),
			Destination: &x.timezone,
		},
	}
}

// Configure builds a date normalizer bound to the configured zone
func (x *Calendar) Configure() (*datetime.Normalizer, error) {
	if x.timezone == "" {
		return datetime.New(), nil
	}

	loc, err := time.LoadLocation(x.timezone)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidTimezone, err.Error(), goerr.V(TimezoneKey, x.timezone))
	}
	return datetime.New(datetime.WithLocation(loc)), nil
}
