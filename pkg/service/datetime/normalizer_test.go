package datetime_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/datedmemo/pkg/domain/types"
	"github.com/secmon-lab/datedmemo/pkg/service/datetime"
)

var pacific = time.FixedZone("PDT", -7*60*60)

func newNormalizer(now time.Time) *datetime.Normalizer {
	return datetime.New(
		datetime.WithLocation(pacific),
		datetime.WithClock(func() time.Time { return now }),
	)
}

func TestNormalize(t *testing.T) {
	now := time.Date(2026, 10, 15, 14, 30, 15, 500_000_000, pacific)
	n := newNormalizer(now)

	tests := []struct {
		name    string
		input   string
		want    types.Timestamp
		wantErr bool
	}{
		{name: "zero padded", input: "03/23/1995", want: "1995-03-23T00:00:00-07:00"},
		{name: "not padded", input: "3/5/2026", want: "2026-03-05T00:00:00-07:00"},
		{name: "surrounding spaces", input: " 10/16/2026 ", want: "2026-10-16T00:00:00-07:00"},
		{name: "empty means now", input: "", want: "2026-10-15T14:30:15-07:00"},
		{name: "blank means now", input: "   ", want: "2026-10-15T14:30:15-07:00"},
		{name: "iso date", input: "2026-10-15", wantErr: true},
		{name: "day first", input: "23/03/1995", wantErr: true},
		{name: "free text", input: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := n.Normalize(tt.input)
			if tt.wantErr {
				gt.Error(t, err).Is(datetime.ErrInvalidDate)
				return
			}
			gt.NoError(t, err).Required()
			gt.Value(t, got).Equal(tt.want)
		})
	}
}

func TestNormalize_NowMatchesClock(t *testing.T) {
	n := datetime.New(datetime.WithLocation(pacific))

	before := time.Now().Truncate(time.Second)
	got, err := n.Normalize("")
	gt.NoError(t, err).Required()
	after := time.Now()

	parsed, err := got.Time()
	gt.NoError(t, err).Required()
	gt.Bool(t, !parsed.Before(before) && !parsed.After(after)).True()
	_, offset := parsed.Zone()
	gt.Value(t, offset).Equal(-7 * 60 * 60)
}

func TestHumanize(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, pacific)
	n := newNormalizer(now)

	tests := []struct {
		name   string
		stored string
		want   string
	}{
		{name: "today at midnight", stored: "2026-10-15T00:00:00-07:00", want: "Today"},
		{name: "today late evening", stored: "2026-10-15T23:59:59-07:00", want: "Today"},
		{name: "today given in utc", stored: "2026-10-15T20:00:00Z", want: "Today"},
		{name: "tomorrow", stored: "2026-10-16T00:00:00-07:00", want: "Tomorrow"},
		{name: "tomorrow late", stored: "2026-10-16T23:00:00-07:00", want: "Tomorrow"},
		{name: "yesterday", stored: "2026-10-14T00:00:00-07:00", want: "a day ago"},
		{name: "in five days", stored: "2026-10-20T00:00:00-07:00", want: "in 5 days"},
		{name: "ten days ago", stored: "2026-10-05T00:00:00-07:00", want: "10 days ago"},
		{name: "in a month", stored: "2026-11-20T00:00:00-07:00", want: "in a month"},
		{name: "in three months", stored: "2027-01-15T00:00:00-07:00", want: "in 3 months"},
		{name: "a year ago", stored: "2025-10-01T00:00:00-07:00", want: "a year ago"},
		{name: "far in the past", stored: "1995-03-23T00:00:00-07:00", want: "31 years ago"},
		{name: "unparseable", stored: "someday", want: "someday"},
		{name: "empty", stored: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, n.Humanize(tt.stored)).Equal(tt.want)
		})
	}
}

func TestHumanize_CalendarDateNotInstant(t *testing.T) {
	// 23:30 tonight and 00:30 tomorrow are one hour apart but on different dates
	now := time.Date(2026, 10, 15, 23, 30, 0, 0, pacific)
	n := newNormalizer(now)

	gt.Value(t, n.Humanize("2026-10-16T00:30:00-07:00")).Equal("Tomorrow")
	gt.Value(t, n.Humanize("2026-10-15T00:00:00-07:00")).Equal("Today")
}
