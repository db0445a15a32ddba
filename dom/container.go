package dom

// Container is a mount target. It owns at most one generation of children at
// a time: mounting replaces everything previously held.
type Container struct {
	children []*Element
	text     string
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{}
}

// ReplaceChildren discards the container's current content and attaches the
// given elements.
func (c *Container) ReplaceChildren(els ...*Element) {
	for _, old := range c.children {
		old.parent = nil
	}
	c.children = append([]*Element(nil), els...)
	c.text = ""
	for _, el := range els {
		if el.parent != nil {
			el.parent.Remove(el)
		}
		el.parent = c
	}
}

// ReplaceText discards the container's current content and sets plain text.
func (c *Container) ReplaceText(s string) {
	for _, old := range c.children {
		old.parent = nil
	}
	c.children = nil
	c.text = s
}

// Remove detaches el if it is currently a child. Returns whether anything
// was removed.
func (c *Container) Remove(el *Element) bool {
	for i, child := range c.children {
		if child == el {
			c.children = append(c.children[:i:i], c.children[i+1:]...)
			el.parent = nil
			return true
		}
	}
	return false
}

// Contains reports whether el is currently a child.
func (c *Container) Contains(el *Element) bool {
	for _, child := range c.children {
		if child == el {
			return true
		}
	}
	return false
}

// Children returns the current children.
func (c *Container) Children() []*Element {
	out := make([]*Element, len(c.children))
	copy(out, c.children)
	return out
}

// Text returns the container's plain-text content, set by ReplaceText.
func (c *Container) Text() string {
	return c.text
}
