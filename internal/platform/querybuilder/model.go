package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// FromModel builds a query from the `query` struct tags of model, in field
// declaration order. Nil pointers are skipped; `omitempty` also skips zero
// values.
func FromModel(model any) (*Builder, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model must be struct")
	}

	b := New()
	typ := value.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		tag := strings.TrimSpace(field.Tag.Get("query"))
		if tag == "" || tag == "-" {
			continue
		}

		parts := strings.Split(tag, ",")
		name := strings.TrimSpace(parts[0])
		if name == "" {
			continue
		}
		omitEmpty := false
		for _, opt := range parts[1:] {
			if strings.TrimSpace(opt) == "omitempty" {
				omitEmpty = true
			}
		}

		fv := value.Field(i)
		if omitEmpty && fv.IsZero() {
			continue
		}
		b.Add(name, fv.Interface())
	}
	return b, nil
}
