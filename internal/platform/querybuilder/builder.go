package querybuilder

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Builder assembles a URL query string that keeps parameters in the
// order they were added.
type Builder struct {
	pairs [][2]string
}

func New() *Builder {
	return &Builder{}
}

// Add appends key=value. Nil values, including nil pointers, are skipped.
func (b *Builder) Add(key string, value any) *Builder {
	s, ok := formatValue(value)
	if !ok || key == "" {
		return b
	}
	b.pairs = append(b.pairs, [2]string{key, s})
	return b
}

func (b *Builder) AddIf(cond bool, key string, value any) *Builder {
	if !cond {
		return b
	}
	return b.Add(key, value)
}

func (b *Builder) Len() int {
	return len(b.pairs)
}

// Encode renders the parameters form-encoded, without a leading '?'.
func (b *Builder) Encode() string {
	if len(b.pairs) == 0 {
		return ""
	}

	var buf strings.Builder
	for i, p := range b.pairs {
		if i > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(url.QueryEscape(p[0]))
		buf.WriteByte('=')
		buf.WriteString(url.QueryEscape(p[1]))
	}
	return buf.String()
}

// AppendTo returns path with the encoded query attached, or path unchanged
// when there are no parameters.
func (b *Builder) AppendTo(path string) string {
	q := b.Encode()
	if q == "" {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + q
}

func formatValue(value any) (string, bool) {
	if value == nil {
		return "", false
	}

	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), true
	default:
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String(), true
		}
		return fmt.Sprint(v.Interface()), true
	}
}
