package xml

import "strings"

// Attr is an attribute with its qualified name kept as written (for example "c:type").
type Attr struct {
	Name  string
	Value string
}

// Element is a node of the minimal element tree. Names keep their prefix as
// written in the document, so "glib:signal" and "signal" are distinct.
type Element struct {
	parent   *Element
	name     string
	text     string
	attrs    []Attr
	children []*Element
	line     int
	column   int
}

// NewElement returns a detached element named name.
func NewElement(name string) *Element {
	return &Element{name: name}
}

// Name returns the qualified element name.
func (e *Element) Name() string {
	return e.name
}

// Attributes returns the attributes in document order.
func (e *Element) Attributes() []Attr {
	return e.attrs
}

// SetAttr sets or replaces an attribute, keeping first-set order.
func (e *Element) SetAttr(name, value string) {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}

// Children returns the child elements in document order.
func (e *Element) Children() []*Element {
	return e.children
}

// AppendChild attaches child as the last child of e.
func (e *Element) AppendChild(child *Element) {
	child.parent = e
	e.children = append(e.children, child)
}

// Text returns the character data directly under the element.
func (e *Element) Text() string {
	return e.text
}

// SetText replaces the direct character data.
func (e *Element) SetText(text string) {
	e.text = text
}

// Line returns the 1-based line of the start tag, or 0 for constructed elements.
func (e *Element) Line() int {
	return e.line
}

// Column returns the 1-based column of the start tag, or 0 for constructed elements.
func (e *Element) Column() int {
	return e.column
}

// Path returns the slash separated element names from the root.
func (e *Element) Path() string {
	var names []string
	for cur := e; cur != nil; cur = cur.parent {
		names = append(names, cur.name)
	}
	var b strings.Builder
	for i := len(names) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(names[i])
	}
	return b.String()
}
