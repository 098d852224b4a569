// internal/model/timestamp.go
package model

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

const (
	isoLayout       = "2006-01-02T15:04:05"
	isoMicrosLayout = "2006-01-02T15:04:05.000000"
	offsetLayout    = "-07:00"
)

// Timestamp is a column value plus whether the column stored a time zone.
// TIMESTAMP values are wall-clock times; drivers hand them back at a zero
// offset that means nothing.
type Timestamp struct {
	Time  time.Time
	Zoned bool
}

// NewTimestamp converts a scanned nullable column; nil stays nil.
func NewTimestamp(t *time.Time, zoned bool) *Timestamp {
	if t == nil {
		return nil
	}
	return &Timestamp{Time: *t, Zoned: zoned}
}

// ZonedColumnType reports whether a driver's DatabaseTypeName is a
// timestamp-with-time-zone type.
func ZonedColumnType(name string) bool {
	name = strings.ToUpper(strings.TrimSpace(name))
	return name == "TIMESTAMPTZ" || strings.HasSuffix(name, " WITH TIME ZONE")
}

// ISOTime marshals as ISO-8601. Fractional seconds appear only when
// non-zero, always as microseconds. Only zoned values carry an offset.
type ISOTime Timestamp

// HTTPDate marshals as an RFC 1123 date in GMT. Wall-clock values are
// taken as UTC.
type HTTPDate Timestamp

// FormatISO returns the ISOTime text form of ts.
func FormatISO(ts Timestamp) string {
	layout := isoLayout
	if ts.Time.Nanosecond()/int(time.Microsecond) != 0 {
		layout = isoMicrosLayout
	}
	if ts.Zoned {
		layout += offsetLayout
	}
	return ts.Time.Format(layout)
}

// FormatHTTP returns the HTTPDate text form of ts.
func FormatHTTP(ts Timestamp) string {
	t := ts.Time
	if !ts.Zoned {
		t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	}
	return t.UTC().Format(http.TimeFormat)
}

func (t ISOTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(FormatISO(Timestamp(t)))
}

func (t HTTPDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(FormatHTTP(Timestamp(t)))
}

// ISO converts a nullable column; nil stays nil and encodes as null.
func ISO(ts *Timestamp) *ISOTime {
	if ts == nil {
		return nil
	}
	v := ISOTime(*ts)
	return &v
}

// HTTP converts a nullable column; nil stays nil and encodes as null.
func HTTP(ts *Timestamp) *HTTPDate {
	if ts == nil {
		return nil
	}
	v := HTTPDate(*ts)
	return &v
}
