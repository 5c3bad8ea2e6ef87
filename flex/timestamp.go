package flex

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Timestamp is a point in time at second precision, stored as seconds since
// the Unix epoch. The zero value is the epoch itself, which doubles as the
// "absent or unparseable" sentinel.
type Timestamp int64

// calendarLayouts are tried in order for string timestamps.
var calendarLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FromTime converts t to a Timestamp, dropping sub-second precision.
func FromTime(t time.Time) Timestamp {
	return Timestamp(t.Unix())
}

// Time returns the timestamp as a UTC time.
func (t Timestamp) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

// Unix returns the timestamp in seconds since the epoch.
func (t Timestamp) Unix() int64 {
	return int64(t)
}

// IsZero reports whether t is the epoch sentinel.
func (t Timestamp) IsZero() bool {
	return t == 0
}

func (t Timestamp) String() string {
	return t.Time().Format(time.RFC3339)
}

// ParseTimestamp parses an ISO-8601 calendar string. Layouts without a zone
// are read as UTC. Malformed input yields the epoch.
func ParseTimestamp(s string) Timestamp {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	for _, layout := range calendarLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return FromTime(parsed)
		}
	}
	return 0
}

// UnmarshalJSON accepts epoch seconds of any integer width, a calendar string,
// or any scalar placeholder.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	text, kind := scalarText(data)
	switch kind {
	case KindList:
		return &KindError{Target: "timestamp", Kind: kind}
	case KindNumber:
		*t = Timestamp(ParseInt(text))
	case KindText:
		*t = ParseTimestamp(text)
	default:
		*t = 0
	}
	return nil
}

// MarshalJSON renders the timestamp as an RFC 3339 string, which
// UnmarshalJSON reads back unchanged.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// ParseEpoch parses a decimal count of seconds, as accepted on the command line.
func ParseEpoch(s string) (Timestamp, error) {
	sec, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	return Timestamp(sec), nil
}
