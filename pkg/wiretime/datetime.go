// Package wiretime renders timestamps in the fixed wire format used by
// JSON payloads: "2006-01-02 15:04:05" in UTC, second precision.
package wiretime

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// Layout is the date-time wire format
	Layout = "2006-01-02 15:04:05"
	// DateLayout is the date-only wire format
	DateLayout = "2006-01-02"
)

var jsonNull = []byte("null")

// Format renders t in UTC with sub-second precision truncated
func Format(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(Layout)
}

// Parse reads a Layout value as UTC
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date-time %q: %w", s, err)
	}
	return t, nil
}

// DateTime is a timestamp serialized with Layout.
// The zero value is treated as absent and encodes as null.
type DateTime struct {
	time.Time
}

// NewDateTime wraps t
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func (d DateTime) String() string {
	if d.IsZero() {
		return ""
	}
	return Format(d.Time)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return jsonNull, nil
	}
	return json.Marshal(Format(d.Time))
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		d.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date-time must be a string: %w", err)
	}

	t, err := Parse(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d DateTime) MarshalYAML() (interface{}, error) {
	if d.IsZero() {
		return nil, nil
	}
	return Format(d.Time), nil
}

// UnmarshalYAML accepts Layout and, for hand-written fixtures, RFC 3339
func (d *DateTime) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("date-time must be a string: %w", err)
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	t, err := Parse(s)
	if err != nil {
		rfc, rfcErr := time.Parse(time.RFC3339Nano, s)
		if rfcErr != nil {
			return err
		}
		t = rfc.UTC()
	}
	d.Time = t
	return nil
}
