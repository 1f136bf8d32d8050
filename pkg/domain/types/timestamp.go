package types

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// TimestampLayout is the canonical storage layout. Values in this layout carry the zone
// offset and are truncated to seconds, so values written with one offset sort
// lexicographically in chronological order.
const TimestampLayout = time.RFC3339

// Timestamp is the canonical text form of a memo date as persisted in the store
type Timestamp string

// NewTimestamp formats t in its own location, truncated to seconds
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.Truncate(time.Second).Format(TimestampLayout))
}

// Time parses the timestamp. Offsets other than the layout's are accepted as long as
// the value is RFC 3339 (fractional seconds included).
func (x Timestamp) Time() (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, string(x))
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "failed to parse timestamp", goerr.V("timestamp", string(x)))
	}
	return t, nil
}

// Validate checks that the timestamp is parseable
func (x Timestamp) Validate() error {
	if x == "" {
		return goerr.New("timestamp cannot be empty")
	}
	if _, err := x.Time(); err != nil {
		return err
	}
	return nil
}

// Canonical re-formats a parseable timestamp in the canonical layout, keeping its
// offset. Unparseable values are returned unchanged.
func (x Timestamp) Canonical() Timestamp {
	t, err := x.Time()
	if err != nil {
		return x
	}
	return NewTimestamp(t)
}

// String returns the string representation of Timestamp
func (x Timestamp) String() string {
	return string(x)
}
