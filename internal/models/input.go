package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

var requestLocation atomic.Pointer[time.Location]

// SetRequestLocation sets the zone DateInput uses for dates without an
// offset. It defaults to UTC.
func SetRequestLocation(loc *time.Location) {
	requestLocation.Store(loc)
}

// RequestLocation returns the zone set by SetRequestLocation.
func RequestLocation() *time.Location {
	if loc := requestLocation.Load(); loc != nil {
		return loc
	}
	return time.UTC
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate accepts the date formats produced by the admin forms.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// DateInput is an optional date in a request body. Set reports that the key
// was present; Valid is false when it was null or an empty string. Dates
// without an offset are read in RequestLocation.
type DateInput struct {
	Set   bool
	Valid bool
	Time  time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateInput) UnmarshalJSON(b []byte) error {
	d.Set = true
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		return nil
	}
	t, err := ParseDate(s, RequestLocation())
	if err != nil {
		return err
	}
	d.Valid = true
	d.Time = t
	return nil
}

// Ptr returns the date or nil when it was null or empty.
func (d DateInput) Ptr() *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time
	return &t
}

// Or returns the date, or def when it was absent, null or empty.
func (d DateInput) Or(def time.Time) time.Time {
	if !d.Valid {
		return def
	}
	return d.Time
}
