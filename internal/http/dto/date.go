// Package dto holds the JSON request and response shapes of the HTTP API.
// Money is always an integer number of sen.
package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ehfoto/backoffice/internal/calendar"
)

// Date is a calendar day encoded as "YYYY-MM-DD". The zero Date encodes
// as null and decodes from null or "".
type Date time.Time

func (d Date) Time() time.Time { return time.Time(d) }

func (d Date) IsZero() bool { return time.Time(d).IsZero() }

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(time.Time(d).Format(time.DateOnly))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	if s == "" {
		*d = Date{}
		return nil
	}

	t, err := calendar.Parse(s)
	if err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}

	*d = Date(t)

	return nil
}

func datePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}

	d := Date(*t)

	return &d
}

// Map converts every element of in with f.
func Map[T, R any](in []T, f func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}

	return out
}
