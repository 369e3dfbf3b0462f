// Package period models calendar months as they are stored on payroll
// documents: a date normalized to the first day of the month.
package period

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

var ErrInvalidMonth = errors.New("invalid month")

// Month is the first day of a calendar month, UTC.
type Month struct {
	t time.Time
}

// NewMonth returns the month containing t.
func NewMonth(year int, month time.Month) Month {
	return Month{t: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)}
}

// ParseMonth accepts YYYY-MM or YYYY-MM-DD; the day is dropped.
func ParseMonth(s string) (Month, error) {
	s = strings.TrimSpace(s)
	layout := dateLayout
	if len(s) == len(monthLayout) {
		layout = monthLayout
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return NewMonth(t.Year(), t.Month()), nil
}

func (m Month) IsZero() bool { return m.t.IsZero() }

func (m Month) Time() time.Time { return m.t }

// Next returns the following month, rolling December into January.
func (m Month) Next() Month {
	return Month{t: m.t.AddDate(0, 1, 0)}
}

// String renders the month as YYYY-MM-01, the stored form.
func (m Month) String() string {
	return m.t.Format(dateLayout)
}

func (m Month) Equal(o Month) bool { return m.t.Equal(o.t) }

func (m Month) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Month) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidMonth, string(b))
	}
	parsed, err := ParseMonth(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Range is the half-open interval [From, To).
type Range struct {
	From Month
	To   Month
}

// ParseFilter parses a YYYY-MM query filter into the range covering that
// month. Anything malformed yields ok=false and the caller treats the filter
// as absent.
func ParseFilter(s string) (r Range, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return Range{}, false
	}
	t, err := time.Parse("2006-1", parts[0]+"-"+parts[1])
	if err != nil {
		return Range{}, false
	}
	from := NewMonth(t.Year(), t.Month())
	return Range{From: from, To: from.Next()}, true
}
