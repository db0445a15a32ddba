package schema

import (
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Field describes one attribute of an ObjectSpec.
type Field struct {
	Type     cty.Type
	Required bool
}

// ObjectSpec validates map-shaped values field by field against cty types.
// Fields not named in the spec are ignored.
type ObjectSpec struct {
	fields map[string]Field
}

// Object creates an ObjectSpec over the given fields.
func Object(fields map[string]Field) *ObjectSpec {
	copied := make(map[string]Field, len(fields))
	for name, f := range fields {
		copied[name] = f
	}
	return &ObjectSpec{fields: copied}
}

// Fields returns the spec's field names in sorted order.
func (s *ObjectSpec) Fields() []string {
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Field returns the named field and whether it exists.
func (s *ObjectSpec) Field(name string) (Field, bool) {
	f, ok := s.fields[name]
	return f, ok
}

// Validate implements Validator. The value must be a map[string]any (nil is
// treated as empty); each present field must convert to its declared cty
// type, and required fields must be present and non-nil.
func (s *ObjectSpec) Validate(value any) error {
	var m map[string]any
	switch v := value.(type) {
	case nil:
		m = nil
	case map[string]any:
		m = v
	default:
		return &ValidationError{Detail: fmt.Sprintf("expected an object, got %T", value)}
	}

	for _, name := range s.Fields() {
		f := s.fields[name]
		raw, present := m[name]
		if !present || raw == nil {
			if f.Required {
				return &ValidationError{Field: name, Detail: "required field is missing"}
			}
			continue
		}
		if err := conformsTo(raw, f.Type); err != nil {
			return &ValidationError{Field: name, Detail: "does not conform to " + f.Type.FriendlyName(), Cause: err}
		}
	}
	return nil
}

// SafeValidate implements SafeValidator.
func (s *ObjectSpec) SafeValidate(value any) Result {
	if err := s.Validate(value); err != nil {
		ve, ok := err.(*ValidationError)
		if !ok {
			ve = &ValidationError{Detail: err.Error(), Cause: err}
		}
		return Result{Err: ve}
	}
	return Result{OK: true, Value: value}
}

// conformsTo reports whether a Go value can inhabit the given cty type.
func conformsTo(value any, want cty.Type) error {
	got, err := toCty(value)
	if err != nil {
		return err
	}
	_, err = convert.Convert(got, want)
	return err
}

// toCty converts dynamic JSON-shaped Go values to cty values. Maps and
// slices become object and tuple values so conversion can check element
// types; other scalars go through gocty reflection.
func toCty(v any) (cty.Value, error) {
	switch x := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case bool:
		return cty.BoolVal(x), nil
	case string:
		return cty.StringVal(x), nil
	case int:
		return cty.NumberIntVal(int64(x)), nil
	case int64:
		return cty.NumberIntVal(x), nil
	case float64:
		return cty.NumberFloatVal(x), nil
	case []any:
		if len(x) == 0 {
			return cty.EmptyTupleVal, nil
		}
		vals := make([]cty.Value, len(x))
		for i, item := range x {
			cv, err := toCty(item)
			if err != nil {
				return cty.NilVal, err
			}
			vals[i] = cv
		}
		return cty.TupleVal(vals), nil
	case map[string]any:
		if len(x) == 0 {
			return cty.EmptyObjectVal, nil
		}
		vals := make(map[string]cty.Value, len(x))
		for name, item := range x {
			cv, err := toCty(item)
			if err != nil {
				return cty.NilVal, err
			}
			vals[name] = cv
		}
		return cty.ObjectVal(vals), nil
	default:
		implied, err := gocty.ImpliedType(v)
		if err != nil {
			return cty.NilVal, err
		}
		return gocty.ToCtyValue(v, implied)
	}
}

// Any is a validator that accepts every value.
type Any struct{}

// Validate implements Validator.
func (Any) Validate(any) error { return nil }

// SafeValidate implements SafeValidator.
func (Any) SafeValidate(value any) Result {
	return Result{OK: true, Value: value}
}
