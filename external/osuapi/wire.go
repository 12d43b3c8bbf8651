package osuapi

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
)

// flexInt accepts a JSON number, a numeric string or null.
type flexInt int64

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s, ok := unquoteScalar(b)
	if !ok {
		*f = 0
		return nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		*f = flexInt(v)
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("decode integer %s: %w", b, err)
	}
	*f = flexInt(v)
	return nil
}

// flexFloat accepts a JSON number, a decimal string or null.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s, ok := unquoteScalar(b)
	if !ok {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("decode number %s: %w", b, err)
	}
	*f = flexFloat(v)
	return nil
}

func unquoteScalar(b []byte) (string, bool) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return "", false
	}
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	return s, s != ""
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func parseTimestamp(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp %q", v)
}

func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t, nil
	}
	t, err := parseTimestamp(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("unsupported date %q", v)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

func str(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// listPayload accepts a bare array, a paginated {"items": [...]} object or a
// single object.
type listPayload[T any] []T

func (l *listPayload[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*l = nil
		return nil
	case b[0] == '[':
		var items []T
		if err := sonic.Unmarshal(b, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}

	var page struct {
		Items *[]T `json:"items"`
	}
	if err := sonic.Unmarshal(b, &page); err == nil && page.Items != nil {
		*l = *page.Items
		return nil
	}

	var single T
	if err := sonic.Unmarshal(b, &single); err != nil {
		return err
	}
	*l = []T{single}
	return nil
}
