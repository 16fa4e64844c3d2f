// Package schema maps element trees onto typed values through declarative
// field tables. A Spec lists the attributes, children, text and tagged variants
// of one element kind; one generic procedure decodes and one encodes.
package schema

import (
	"cmp"
	"fmt"
	"slices"

	girerrors "github.com/jacoelho/gir/errors"
	"github.com/jacoelho/gir/internal/xml"
)

type phase uint8

const (
	phaseAttr phase = iota
	phaseChild
	phaseText
	phaseVariant
)

// Field is one entry of a Spec table.
type Field[T any] struct {
	decode func(st *state, v *T) error
	encode func(e *xml.Element, v *T)
	phase  phase
}

// Spec describes how element Tag maps onto T.
//
// Specs are usually declared as package variables and populated with Define
// from an init function so that recursive element kinds can refer to each other.
type Spec[T any] struct {
	fallback func() *T
	tag      string
	fields   []Field[T]
	strict   bool
}

// New returns an empty, non-strict spec for tag.
func New[T any](tag string) *Spec[T] {
	return &Spec[T]{tag: tag}
}

// Tag returns the element name the spec matches.
func (s *Spec[T]) Tag() string {
	return s.tag
}

// Strict makes the spec reject attributes and children no field claims.
func (s *Spec[T]) Strict() *Spec[T] {
	s.strict = true
	return s
}

// Default sets the value used when a required child of this kind is absent.
func (s *Spec[T]) Default(fn func() *T) *Spec[T] {
	s.fallback = fn
	return s
}

// Define installs the field table. Decoding claims attributes first, then tagged
// children, then text, then variants over the children still unclaimed.
func (s *Spec[T]) Define(fields ...Field[T]) *Spec[T] {
	s.fields = slices.Clone(fields)
	slices.SortStableFunc(s.fields, func(a, b Field[T]) int {
		return cmp.Compare(a.phase, b.phase)
	})
	return s
}

// Decode maps e onto a new T.
func (s *Spec[T]) Decode(e *xml.Element) (*T, error) {
	v := new(T)
	st := &state{
		elem:     e,
		attrs:    make([]bool, len(e.Attributes())),
		children: make([]bool, len(e.Children())),
	}
	for _, f := range s.fields {
		if err := f.decode(st, v); err != nil {
			return nil, err
		}
	}
	if !s.strict {
		return v, nil
	}
	for i, claimed := range st.attrs {
		if !claimed {
			name := e.Attributes()[i].Name
			return nil, st.fail(girerrors.ErrUnexpectedAttribute, fmt.Sprintf("unexpected attribute %s on <%s>", name, e.Name()))
		}
	}
	for i, claimed := range st.children {
		if !claimed {
			child := e.Children()[i]
			return nil, failAt(child, girerrors.ErrUnexpectedElement, fmt.Sprintf("unexpected element <%s> in <%s>", child.Name(), e.Name()))
		}
	}
	return v, nil
}

// Encode maps v onto a new element.
func (s *Spec[T]) Encode(v *T) *xml.Element {
	e := xml.NewElement(s.tag)
	encodeFields(s.fields, e, v)
	return e
}

func encodeFields[T any](fields []Field[T], e *xml.Element, v *T) {
	// attributes and text first so the element header is stable, then children
	// in table order
	for _, f := range fields {
		if f.phase == phaseAttr || f.phase == phaseText {
			f.encode(e, v)
		}
	}
	for _, f := range fields {
		if f.phase == phaseChild || f.phase == phaseVariant {
			f.encode(e, v)
		}
	}
}

type state struct {
	elem     *xml.Element
	attrs    []bool
	children []bool
}

func (st *state) attr(name string) (string, bool) {
	for i, a := range st.elem.Attributes() {
		if a.Name == name && !st.attrs[i] {
			st.attrs[i] = true
			return a.Value, true
		}
	}
	return "", false
}

// nextChild claims the first unclaimed child at or after *from accepted by
// match and advances *from past it. Callers reuse one cursor for one match.
func (st *state) nextChild(from *int, match func(name string) bool) (*xml.Element, bool) {
	children := st.elem.Children()
	for i := *from; i < len(children); i++ {
		if st.children[i] || !match(children[i].Name()) {
			continue
		}
		st.children[i] = true
		*from = i + 1
		return children[i], true
	}
	*from = len(children)
	return nil, false
}

func (st *state) fail(code girerrors.Code, msg string) error {
	return failAt(st.elem, code, msg)
}

func failAt(e *xml.Element, code girerrors.Code, msg string) error {
	return &girerrors.Error{
		Code:    code,
		Message: msg,
		Path:    e.Path(),
		Line:    e.Line(),
		Column:  e.Column(),
	}
}
