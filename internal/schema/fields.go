package schema

import (
	"fmt"
	"strings"

	girerrors "github.com/jacoelho/gir/errors"
	"github.com/jacoelho/gir/internal/xml"
)

// Attr declares a required attribute.
func Attr[T, V any](name string, codec Codec[V], loc func(*T) *V) Field[T] {
	return Field[T]{
		phase: phaseAttr,
		decode: func(st *state, v *T) error {
			raw, ok := st.attr(name)
			if !ok {
				return st.fail(girerrors.ErrMissingAttribute, fmt.Sprintf("missing attribute %s on <%s>", name, st.elem.Name()))
			}
			parsed, err := codec.Parse(raw)
			if err != nil {
				return invalidAttr(st, name, err)
			}
			*loc(v) = parsed
			return nil
		},
		encode: func(e *xml.Element, v *T) {
			e.SetAttr(name, codec.Format(*loc(v)))
		},
	}
}

// OptionalAttr declares an attribute whose absence leaves the location nil.
func OptionalAttr[T, V any](name string, codec Codec[V], loc func(*T) **V) Field[T] {
	return Field[T]{
		phase: phaseAttr,
		decode: func(st *state, v *T) error {
			raw, ok := st.attr(name)
			if !ok {
				return nil
			}
			parsed, err := codec.Parse(raw)
			if err != nil {
				return invalidAttr(st, name, err)
			}
			*loc(v) = &parsed
			return nil
		},
		encode: func(e *xml.Element, v *T) {
			if p := *loc(v); p != nil {
				e.SetAttr(name, codec.Format(*p))
			}
		},
	}
}

// Child declares an optional single child. Only the first matching child is
// claimed.
func Child[T, C any](spec *Spec[C], loc func(*T) **C) Field[T] {
	return child(spec, loc, false)
}

// RequiredChild declares a single child that must be present unless the child
// spec has a Default.
func RequiredChild[T, C any](spec *Spec[C], loc func(*T) **C) Field[T] {
	return child(spec, loc, true)
}

func child[T, C any](spec *Spec[C], loc func(*T) **C, required bool) Field[T] {
	return Field[T]{
		phase: phaseChild,
		decode: func(st *state, v *T) error {
			var from int
			e, ok := st.nextChild(&from, func(name string) bool { return name == spec.tag })
			if !ok {
				if !required {
					return nil
				}
				if spec.fallback != nil {
					*loc(v) = spec.fallback()
					return nil
				}
				return st.fail(girerrors.ErrMissingElement, fmt.Sprintf("missing element <%s> in <%s>", spec.tag, st.elem.Name()))
			}
			c, err := spec.Decode(e)
			if err != nil {
				return err
			}
			*loc(v) = c
			return nil
		},
		encode: func(e *xml.Element, v *T) {
			if c := *loc(v); c != nil {
				e.AppendChild(spec.Encode(c))
			}
		},
	}
}

// Children declares a repeated child kept in document order.
func Children[T, C any](spec *Spec[C], loc func(*T) *[]*C) Field[T] {
	return Field[T]{
		phase: phaseChild,
		decode: func(st *state, v *T) error {
			var from int
			for {
				e, ok := st.nextChild(&from, func(name string) bool { return name == spec.tag })
				if !ok {
					return nil
				}
				c, err := spec.Decode(e)
				if err != nil {
					return err
				}
				*loc(v) = append(*loc(v), c)
			}
		},
		encode: func(e *xml.Element, v *T) {
			for _, c := range *loc(v) {
				e.AppendChild(spec.Encode(c))
			}
		},
	}
}

// Text declares the element's direct character data.
func Text[T any](loc func(*T) *string) Field[T] {
	return Field[T]{
		phase: phaseText,
		decode: func(st *state, v *T) error {
			*loc(v) = st.elem.Text()
			return nil
		},
		encode: func(e *xml.Element, v *T) {
			e.SetText(*loc(v))
		},
	}
}

// Case is one alternative of a tagged variant. S is the sealed interface the
// alternatives implement.
type Case[S any] struct {
	decode func(e *xml.Element) (S, error)
	encode func(s S) (*xml.Element, bool)
	tag    func() string
}

// On builds a case decoding elements matched by spec into *C. It panics if *C
// does not implement S.
func On[S, C any](spec *Spec[C]) Case[S] {
	if _, ok := any((*C)(nil)).(S); !ok {
		var s S
		panic(fmt.Sprintf("schema: %T does not implement %T", (*C)(nil), &s))
	}
	return Case[S]{
		tag: func() string { return spec.tag },
		decode: func(e *xml.Element) (S, error) {
			c, err := spec.Decode(e)
			if err != nil {
				var zero S
				return zero, err
			}
			return any(c).(S), nil
		},
		encode: func(s S) (*xml.Element, bool) {
			c, ok := any(s).(*C)
			if !ok {
				return nil, false
			}
			return spec.Encode(c), true
		},
	}
}

// Marker builds a case for an element with no content that always decodes to
// value. The dynamic type of value must be comparable.
func Marker[S any](tag string, value S) Case[S] {
	return Case[S]{
		tag:    func() string { return tag },
		decode: func(*xml.Element) (S, error) { return value, nil },
		encode: func(s S) (*xml.Element, bool) {
			if any(s) != any(value) {
				return nil, false
			}
			return xml.NewElement(tag), true
		},
	}
}

// Variant declares a single untagged child selected by element name among
// cases. The first unclaimed child matching any case wins.
func Variant[T, S any](required bool, loc func(*T) *S, cases ...Case[S]) Field[T] {
	return Field[T]{
		phase: phaseVariant,
		decode: func(st *state, v *T) error {
			var from int
			e, c, ok := nextCase(st, &from, cases)
			if !ok {
				if required {
					return st.fail(girerrors.ErrNoVariant, fmt.Sprintf("<%s> requires one of %s", st.elem.Name(), caseTags(cases)))
				}
				return nil
			}
			s, err := c.decode(e)
			if err != nil {
				return err
			}
			*loc(v) = s
			return nil
		},
		encode: func(e *xml.Element, v *T) {
			s := *loc(v)
			if any(s) == nil {
				return
			}
			if child, ok := encodeCase(s, cases); ok {
				e.AppendChild(child)
			}
		},
	}
}

// Variants declares an ordered, heterogeneous sequence of untagged children.
func Variants[T, S any](loc func(*T) *[]S, cases ...Case[S]) Field[T] {
	return Field[T]{
		phase: phaseVariant,
		decode: func(st *state, v *T) error {
			var from int
			for {
				e, c, ok := nextCase(st, &from, cases)
				if !ok {
					return nil
				}
				s, err := c.decode(e)
				if err != nil {
					return err
				}
				*loc(v) = append(*loc(v), s)
			}
		},
		encode: func(e *xml.Element, v *T) {
			for _, s := range *loc(v) {
				if child, ok := encodeCase(s, cases); ok {
					e.AppendChild(child)
				}
			}
		},
	}
}

func nextCase[S any](st *state, from *int, cases []Case[S]) (*xml.Element, Case[S], bool) {
	var matched Case[S]
	e, ok := st.nextChild(from, func(name string) bool {
		for _, c := range cases {
			if c.tag() == name {
				matched = c
				return true
			}
		}
		return false
	})
	return e, matched, ok
}

func encodeCase[S any](s S, cases []Case[S]) (*xml.Element, bool) {
	for _, c := range cases {
		if e, ok := c.encode(s); ok {
			return e, true
		}
	}
	return nil, false
}

func caseTags[S any](cases []Case[S]) string {
	tags := make([]string, len(cases))
	for i, c := range cases {
		tags[i] = "<" + c.tag() + ">"
	}
	return strings.Join(tags, ", ")
}

func invalidAttr(st *state, name string, err error) error {
	return &girerrors.Error{
		Code:    girerrors.ErrInvalidValue,
		Message: fmt.Sprintf("attribute %s on <%s>", name, st.elem.Name()),
		Path:    st.elem.Path(),
		Line:    st.elem.Line(),
		Column:  st.elem.Column(),
		Err:     err,
	}
}
