package dom

import (
	"testing"
)

func TestElement_Attributes(t *testing.T) {
	el := NewElement("user-card")

	el.SetAttribute("userId", "123")
	if v, ok := el.Attribute("userId"); !ok || v != "123" {
		t.Fatalf("Attribute userId = %q, %v", v, ok)
	}

	el.RemoveAttribute("userId")
	if el.HasAttribute("userId") {
		t.Error("attribute still present after removal")
	}

	// Removing an absent attribute is a no-op
	el.RemoveAttribute("missing")
}

func TestElement_Properties(t *testing.T) {
	el := NewElement("user-card")

	complex := map[string]any{"nested": true}
	el.SetProperty("complex", complex)

	v, ok := el.Property("complex")
	if !ok {
		t.Fatal("property not set")
	}
	if m, _ := v.(map[string]any); m["nested"] != true {
		t.Errorf("property value = %v", v)
	}

	if el.HasAttribute("complex") {
		t.Error("property write must not create an attribute")
	}
}

func TestElement_DispatchOrder(t *testing.T) {
	el := NewElement("user-card")

	var order []int
	el.AddEventListener("select", func(Event) { order = append(order, 1) })
	el.AddEventListener("select", func(Event) { order = append(order, 2) })
	el.AddEventListener("other", func(Event) { order = append(order, 99) })

	el.DispatchEvent(Event{Type: "select"})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("dispatch order = %v", order)
	}
}

func TestElement_RemoveEventListener(t *testing.T) {
	el := NewElement("user-card")

	var calls int
	h := el.AddEventListener("select", func(Event) { calls++ })
	el.AddEventListener("select", func(Event) { calls += 10 })

	el.RemoveEventListener(h)
	el.DispatchEvent(Event{Type: "select"})

	if calls != 10 {
		t.Fatalf("calls = %d, want only the surviving listener", calls)
	}

	// Double removal is a no-op
	el.RemoveEventListener(h)
}

func TestContainer_ReplaceChildren(t *testing.T) {
	c := NewContainer()
	first := NewElement("a-b")
	second := NewElement("c-d")

	c.ReplaceChildren(first)
	if !c.Contains(first) || first.Parent() != c {
		t.Fatal("first child not attached")
	}

	c.ReplaceChildren(second)
	if c.Contains(first) {
		t.Error("prior content must be discarded")
	}
	if first.Parent() != nil {
		t.Error("detached element still has a parent")
	}
	if !c.Contains(second) {
		t.Error("second child not attached")
	}
}

func TestContainer_ReplaceText(t *testing.T) {
	c := NewContainer()
	el := NewElement("a-b")
	c.ReplaceChildren(el)

	c.ReplaceText("unavailable")
	if len(c.Children()) != 0 {
		t.Error("children survived text replacement")
	}
	if c.Text() != "unavailable" {
		t.Errorf("Text = %q", c.Text())
	}
	if el.Parent() != nil {
		t.Error("replaced element still has a parent")
	}
}

func TestContainer_Remove(t *testing.T) {
	c := NewContainer()
	el := NewElement("a-b")
	c.ReplaceChildren(el)

	if !c.Remove(el) {
		t.Fatal("Remove returned false for a child")
	}
	if c.Remove(el) {
		t.Error("Remove returned true for a detached element")
	}
}

func TestDefinitions(t *testing.T) {
	defs := NewDefinitions()

	upgraded := false
	if err := defs.Define("user-card", func(el *Element) error {
		upgraded = true
		el.SetProperty("upgraded", true)
		return nil
	}); err != nil {
		t.Fatalf("Define: %v", err)
	}

	if !defs.Defined("user-card") {
		t.Fatal("tag not defined")
	}

	el := NewElement("user-card")
	if err := defs.Upgrade(el); err != nil {
		t.Fatalf("Upgrade: %v", err)
	}
	if !upgraded {
		t.Error("upgrade hook did not run")
	}

	// Undefined tags stay generic
	if err := defs.Upgrade(NewElement("not-defined")); err != nil {
		t.Errorf("Upgrade of undefined tag: %v", err)
	}

	// Redefinition overwrites
	if err := defs.Define("user-card", nil); err != nil {
		t.Errorf("redefinition: %v", err)
	}
}

func TestValidTag(t *testing.T) {
	valid := []string{"user-card", "x-y", "a-1", "chart-view-2"}
	invalid := []string{"", "usercard", "User-Card", "-card", "1-card", "user_card", "user card"}

	for _, tag := range valid {
		if !ValidTag(tag) {
			t.Errorf("ValidTag(%q) = false", tag)
		}
	}
	for _, tag := range invalid {
		if ValidTag(tag) {
			t.Errorf("ValidTag(%q) = true", tag)
		}
	}
}
