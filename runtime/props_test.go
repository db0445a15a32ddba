package runtime

import (
	"testing"

	"github.com/wippyai/remote-mount/dom"
)

func TestPropValue_AttributeForm(t *testing.T) {
	tests := []struct {
		name   string
		prop   PropValue
		value  string
		set    bool
		remove bool
	}{
		{"string", StringProp("abc"), "abc", true, false},
		{"integer number", NumberProp(2), "2", true, false},
		{"fractional number", NumberProp(2.5), "2.5", true, false},
		{"negative number", NumberProp(-7), "-7", true, false},
		{"bool true", BoolProp(true), "", true, false},
		{"bool false", BoolProp(false), "", false, true},
		{"opaque", OpaqueProp([]int{1}), "", false, false},
		{"omitted", PropValue{}, "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, set, remove := tt.prop.attributeForm()
			if value != tt.value || set != tt.set || remove != tt.remove {
				t.Errorf("attributeForm() = (%q, %v, %v), want (%q, %v, %v)",
					value, set, remove, tt.value, tt.set, tt.remove)
			}
		})
	}
}

func TestProps_Interfaces(t *testing.T) {
	p := Props{
		"a": StringProp("1"),
		"b": NumberProp(2),
		"c": BoolProp(false),
		"d": {},
	}

	m := p.Interfaces()
	if len(m) != 3 {
		t.Fatalf("len = %d, want omitted entries excluded", len(m))
	}
	if m["a"] != "1" || m["b"] != float64(2) || m["c"] != false {
		t.Errorf("values = %v", m)
	}
}

func TestApplyProps_BoolFalseClearsStaleAttribute(t *testing.T) {
	el := dom.NewElement("a-b")
	el.SetAttribute("hidden", "")

	applyProps(el, Props{"hidden": BoolProp(false)})

	if el.HasAttribute("hidden") {
		t.Error("boolean false must remove the attribute entirely")
	}
	if v, _ := el.Property("hidden"); v != false {
		t.Errorf("hidden property = %v", v)
	}
}
