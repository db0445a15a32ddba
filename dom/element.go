package dom

// Event is a dispatched occurrence on an element. Detail carries the payload
// a remote component attached to the event.
type Event struct {
	Detail any
	Type   string
}

// Listener receives dispatched events.
type Listener func(Event)

// ListenerHandle identifies a registered listener for later removal.
type ListenerHandle struct {
	event string
	id    int
}

type listenerEntry struct {
	fn Listener
	id int
}

// Element is a mounted component instance: a tag name plus attributes,
// properties, and event listeners.
type Element struct {
	attrs     map[string]string
	props     map[string]any
	listeners map[string][]listenerEntry
	parent    *Container
	tag       string
	nextID    int
}

// NewElement creates a detached element with the given tag name.
func NewElement(tag string) *Element {
	return &Element{
		tag:       tag,
		attrs:     make(map[string]string),
		props:     make(map[string]any),
		listeners: make(map[string][]listenerEntry),
	}
}

// TagName returns the element's tag name.
func (e *Element) TagName() string {
	return e.tag
}

// SetAttribute sets a string attribute.
func (e *Element) SetAttribute(name, value string) {
	e.attrs[name] = value
}

// RemoveAttribute removes an attribute if present.
func (e *Element) RemoveAttribute(name string) {
	delete(e.attrs, name)
}

// Attribute returns an attribute value and whether it is present.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// HasAttribute reports whether an attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.attrs[name]
	return ok
}

// SetProperty sets a direct property. Properties hold arbitrary values and
// are never serialized to attributes.
func (e *Element) SetProperty(name string, value any) {
	e.props[name] = value
}

// Property returns a property value and whether it is set.
func (e *Element) Property(name string) (any, bool) {
	v, ok := e.props[name]
	return v, ok
}

// AddEventListener registers a listener for the named event. Listeners fire
// in registration order.
func (e *Element) AddEventListener(event string, fn Listener) ListenerHandle {
	e.nextID++
	e.listeners[event] = append(e.listeners[event], listenerEntry{fn: fn, id: e.nextID})
	return ListenerHandle{event: event, id: e.nextID}
}

// RemoveEventListener removes a previously registered listener. Removing a
// handle twice is a no-op.
func (e *Element) RemoveEventListener(h ListenerHandle) {
	entries := e.listeners[h.event]
	for i, entry := range entries {
		if entry.id == h.id {
			e.listeners[h.event] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// DispatchEvent invokes the listeners registered for ev.Type in registration
// order. Listener mutation during dispatch does not affect the current
// dispatch pass.
func (e *Element) DispatchEvent(ev Event) {
	entries := e.listeners[ev.Type]
	snapshot := make([]listenerEntry, len(entries))
	copy(snapshot, entries)
	for _, entry := range snapshot {
		entry.fn(ev)
	}
}

// Parent returns the container the element is attached to, or nil.
func (e *Element) Parent() *Container {
	return e.parent
}
