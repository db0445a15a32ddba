package runtime

import (
	"sort"
	"strconv"

	"github.com/wippyai/remote-mount/dom"
)

// PropKind discriminates the values a prop can carry.
type PropKind int

const (
	// PropOmitted is the zero value: the prop is skipped entirely, writing
	// neither attribute nor property.
	PropOmitted PropKind = iota
	PropString
	PropNumber
	PropBool
	// PropOpaque covers objects, slices, functions: set as a direct
	// property only, never serialized to an attribute.
	PropOpaque
)

// PropValue is a tagged prop value. The attribute/property decision is a
// pure function of the tag, not of runtime type inspection.
type PropValue struct {
	opaque any
	str    string
	num    float64
	kind   PropKind
	b      bool
}

// StringProp creates a string prop.
func StringProp(s string) PropValue {
	return PropValue{kind: PropString, str: s}
}

// NumberProp creates a numeric prop.
func NumberProp(n float64) PropValue {
	return PropValue{kind: PropNumber, num: n}
}

// BoolProp creates a boolean prop.
func BoolProp(b bool) PropValue {
	return PropValue{kind: PropBool, b: b}
}

// OpaqueProp creates a property-only prop holding an arbitrary value.
func OpaqueProp(v any) PropValue {
	return PropValue{kind: PropOpaque, opaque: v}
}

// Kind returns the prop's tag.
func (p PropValue) Kind() PropKind {
	return p.kind
}

// Interface returns the prop's underlying Go value.
func (p PropValue) Interface() any {
	switch p.kind {
	case PropString:
		return p.str
	case PropNumber:
		return p.num
	case PropBool:
		return p.b
	case PropOpaque:
		return p.opaque
	default:
		return nil
	}
}

// attributeForm decides the attribute write for a prop: the stringified
// value and whether to set or remove the attribute. Opaque and omitted
// props touch no attribute.
func (p PropValue) attributeForm() (value string, set, remove bool) {
	switch p.kind {
	case PropString:
		return p.str, true, false
	case PropNumber:
		return strconv.FormatFloat(p.num, 'f', -1, 64), true, false
	case PropBool:
		if p.b {
			// Presence-only attribute with an empty value.
			return "", true, false
		}
		return "", false, true
	default:
		return "", false, false
	}
}

// Props maps prop names to tagged values.
type Props map[string]PropValue

// Interfaces returns the props as a plain map for schema validation,
// excluding omitted entries.
func (p Props) Interfaces() map[string]any {
	out := make(map[string]any, len(p))
	for name, v := range p {
		if v.kind == PropOmitted {
			continue
		}
		out[name] = v.Interface()
	}
	return out
}

// applyProps writes each prop to the element as a direct property plus the
// attribute form its tag dictates. Names are applied in sorted order so
// repeated mounts behave identically.
func applyProps(el *dom.Element, props Props) {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := props[name]
		if p.kind == PropOmitted {
			continue
		}

		el.SetProperty(name, p.Interface())

		value, set, remove := p.attributeForm()
		switch {
		case set:
			el.SetAttribute(name, value)
		case remove:
			el.RemoveAttribute(name)
		}
	}
}
