package datetime

import (
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/datedmemo/pkg/domain/types"
)

// InputLayout is the layout of dates typed by users (MM/DD/YYYY, zero padding optional)
const InputLayout = "1/2/2006"

const (
	LabelToday    = "Today"
	LabelTomorrow = "Tomorrow"
)

var ErrInvalidDate = goerr.New("invalid date input")

const day = 24 * time.Hour

var futureMagnitudes = []humanize.RelTimeMagnitude{
	{D: 2 * day, Format: "in a day", DivBy: 1},
	{D: 30 * day, Format: "in %d days", DivBy: day},
	{D: 60 * day, Format: "in a month", DivBy: 1},
	{D: 365 * day, Format: "in %d months", DivBy: 30 * day},
	{D: 730 * day, Format: "in a year", DivBy: 1},
	{D: math.MaxInt64, Format: "in %d years", DivBy: 365 * day},
}

var pastMagnitudes = []humanize.RelTimeMagnitude{
	{D: 2 * day, Format: "a day ago", DivBy: 1},
	{D: 30 * day, Format: "%d days ago", DivBy: day},
	{D: 60 * day, Format: "a month ago", DivBy: 1},
	{D: 365 * day, Format: "%d months ago", DivBy: 30 * day},
	{D: 730 * day, Format: "a year ago", DivBy: 1},
	{D: math.MaxInt64, Format: "%d years ago", DivBy: 365 * day},
}

// Normalizer converts user input into canonical timestamps and canonical timestamps
// into relative labels, both in one fixed time zone.
type Normalizer struct {
	loc *time.Location
	now func() time.Time
}

type Option func(*Normalizer)

// WithLocation sets the zone dates are interpreted and displayed in. Default is time.Local.
func WithLocation(loc *time.Location) Option {
	return func(n *Normalizer) {
		if loc != nil {
			n.loc = loc
		}
	}
}

// WithClock replaces the current-time source
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		if now != nil {
			n.now = now
		}
	}
}

func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		loc: time.Local,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Location returns the zone used by the normalizer
func (x *Normalizer) Location() *time.Location {
	return x.loc
}

// Now returns the current time in the normalizer's zone, truncated to seconds
func (x *Normalizer) Now() types.Timestamp {
	return types.NewTimestamp(x.now().In(x.loc))
}

// Normalize turns a MM/DD/YYYY input into midnight of that date in the normalizer's
// zone. Blank input means now.
func (x *Normalizer) Normalize(input string) (types.Timestamp, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return x.Now(), nil
	}

	t, err := time.ParseInLocation(InputLayout, input, x.loc)
	if err != nil {
		return "", goerr.Wrap(ErrInvalidDate, "failed to parse date input",
			goerr.V("input", input),
			goerr.V("reason", err.Error()))
	}

	return types.NewTimestamp(t), nil
}

// Humanize returns a label relative to today's calendar date: "Today", "Tomorrow",
// "in 5 days", "3 months ago". A value that does not parse is returned as is.
func (x *Normalizer) Humanize(stored string) string {
	then, err := types.Timestamp(stored).Time()
	if err != nil {
		return stored
	}

	from := calendarDate(x.now().In(x.loc))
	to := calendarDate(then.In(x.loc))
	if from.Equal(to) {
		return LabelToday
	}

	magnitudes := pastMagnitudes
	if to.After(from) {
		magnitudes = futureMagnitudes
	}

	label := humanize.CustomRelTime(from, to, "", "", magnitudes)
	if label == "in a day" {
		return LabelTomorrow
	}
	return label
}

// calendarDate maps t to midnight UTC of its own calendar date, so differences between
// two results are whole days regardless of DST in the source zone.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
