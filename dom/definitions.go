package dom

import (
	"sync"

	"github.com/wippyai/remote-mount/errors"
)

// UpgradeFunc runs when an element of a defined tag is created, letting the
// definition attach behavior to the fresh element.
type UpgradeFunc func(*Element) error

// Definitions is a thread-safe custom-element tag registry.
//
// A bundle re-fetched after a failed load runs again, so redefining an
// existing tag overwrites rather than failing: last definition wins.
type Definitions struct {
	upgrades map[string]UpgradeFunc
	mu       sync.RWMutex
}

// NewDefinitions creates an empty tag registry.
func NewDefinitions() *Definitions {
	return &Definitions{
		upgrades: make(map[string]UpgradeFunc),
	}
}

// Define registers a tag. The tag must be lowercase, contain a hyphen, and
// use only letters, digits, and hyphens (the custom-element convention).
// upgrade may be nil.
func (d *Definitions) Define(tag string, upgrade UpgradeFunc) error {
	if !ValidTag(tag) {
		return errors.InvalidInput(errors.PhaseRegister, "invalid custom element tag "+tag)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.upgrades[tag] = upgrade
	return nil
}

// Defined reports whether a tag has been defined.
func (d *Definitions) Defined(tag string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.upgrades[tag]
	return ok
}

// Tags returns the defined tag names in unspecified order.
func (d *Definitions) Tags() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, 0, len(d.upgrades))
	for tag := range d.upgrades {
		out = append(out, tag)
	}
	return out
}

// Upgrade applies the tag's upgrade hook to el, if the tag is defined and
// carries one. Creating elements of undefined tags is allowed (they stay
// generic), matching browser behavior for unknown custom elements.
func (d *Definitions) Upgrade(el *Element) error {
	d.mu.RLock()
	upgrade, ok := d.upgrades[el.TagName()]
	d.mu.RUnlock()

	if !ok || upgrade == nil {
		return nil
	}
	return upgrade(el)
}

// ValidTag reports whether tag is an acceptable custom-element tag name.
func ValidTag(tag string) bool {
	if tag == "" || tag[0] == '-' || tag[0] >= '0' && tag[0] <= '9' {
		return false
	}
	hyphen := false
	for _, r := range tag {
		switch {
		case r == '-':
			hyphen = true
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return hyphen
}
