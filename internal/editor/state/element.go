package state

// Attr is a single named attribute on an element.
type Attr struct {
	Name  string
	Value string
}

// Element is a node of the persisted state tree.
type Element struct {
	name     string
	attrs    []Attr
	children []*Element
}

// NewElement creates an element with the given name.
func NewElement(name string) *Element {
	return &Element{name: name}
}

// Name returns the element name.
func (e *Element) Name() string {
	return e.name
}

// Child returns the first child with the given name, or nil if absent.
func (e *Element) Child(name string) *Element {
	for _, c := range e.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Children returns the child elements in document order.
func (e *Element) Children() []*Element {
	return e.children
}

// AddChild appends a child element. Nil children are ignored.
func (e *Element) AddChild(child *Element) {
	if child == nil {
		return
	}
	e.children = append(e.children, child)
}

// NewChild creates, appends, and returns a child with the given name.
func (e *Element) NewChild(name string) *Element {
	child := NewElement(name)
	e.children = append(e.children, child)
	return child
}

// RemoveChild removes the first child with the given name.
// Returns true if a child was removed.
func (e *Element) RemoveChild(name string) bool {
	for i, c := range e.children {
		if c.name == name {
			e.children = append(e.children[:i], e.children[i+1:]...)
			return true
		}
	}
	return false
}

// Attr returns the value of the named attribute and whether it is present.
// An absent attribute is distinguishable from an empty one.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrOr returns the value of the named attribute, or def if absent.
func (e *Element) AttrOr(name, def string) string {
	if v, ok := e.Attr(name); ok {
		return v
	}
	return def
}

// SetAttr sets an attribute, replacing an existing value in place.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}

// RemoveAttr removes the named attribute. Returns true if it was present.
func (e *Element) RemoveAttr(name string) bool {
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return true
		}
	}
	return false
}

// Attrs returns the attributes in insertion order.
func (e *Element) Attrs() []Attr {
	return e.attrs
}

// Equal reports whether two elements are structurally identical:
// same name, same attributes in order, same children in order.
func (e *Element) Equal(other *Element) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.name != other.name {
		return false
	}
	if len(e.attrs) != len(other.attrs) || len(e.children) != len(other.children) {
		return false
	}
	for i, a := range e.attrs {
		if other.attrs[i] != a {
			return false
		}
	}
	for i, c := range e.children {
		if !c.Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the element.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	clone := &Element{name: e.name}
	if len(e.attrs) > 0 {
		clone.attrs = make([]Attr, len(e.attrs))
		copy(clone.attrs, e.attrs)
	}
	for _, c := range e.children {
		clone.children = append(clone.children, c.Clone())
	}
	return clone
}
