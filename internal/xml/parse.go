package xml

import (
	"cmp"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"unicode"

	girerrors "github.com/jacoelho/gir/errors"
)

const (
	defaultMaxDepth = 256
	defaultMaxAttrs = 256
)

// Limits bounds the element tree built by Parse. Zero values use defaults.
type Limits struct {
	MaxDepth int
	MaxAttrs int
}

// Validate rejects negative limits.
func (l Limits) Validate() error {
	if l.MaxDepth < 0 {
		return fmt.Errorf("xml max depth must be >= 0")
	}
	if l.MaxAttrs < 0 {
		return fmt.Errorf("xml max attrs must be >= 0")
	}
	return nil
}

func (l Limits) resolved() Limits {
	return Limits{
		MaxDepth: cmp.Or(l.MaxDepth, defaultMaxDepth),
		MaxAttrs: cmp.Or(l.MaxAttrs, defaultMaxAttrs),
	}
}

// Parse builds the element tree from XML input. Namespace prefixes are kept
// literally; no namespace URI resolution is performed. Malformed input yields
// an ErrXMLSyntax error; reader failures are returned unchanged.
func Parse(r io.Reader, limits Limits) (*Element, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	limits = limits.resolved()
	decoder := xml.NewDecoder(r)

	var stack []*Element
	var root *Element
	rootClosed := false

	for {
		line, column := decoder.InputPos()
		tok, err := decoder.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			var syntax *xml.SyntaxError
			if errors.As(err, &syntax) {
				return nil, syntaxError(decoder, syntax.Msg)
			}
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, syntaxErrorAt(line, column, fmt.Sprintf("unexpected element %s after document end", qualified(t.Name)))
			}
			if len(stack) >= limits.MaxDepth {
				return nil, syntaxErrorAt(line, column, fmt.Sprintf("element depth exceeds %d", limits.MaxDepth))
			}
			if len(t.Attr) > limits.MaxAttrs {
				return nil, syntaxErrorAt(line, column, fmt.Sprintf("element %s has more than %d attributes", qualified(t.Name), limits.MaxAttrs))
			}
			elem := &Element{
				name:   qualified(t.Name),
				attrs:  convertAttrs(t.Attr),
				line:   line,
				column: column,
			}
			if len(stack) > 0 {
				stack[len(stack)-1].AppendChild(elem)
			} else {
				root = elem
			}
			stack = append(stack, elem)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, syntaxErrorAt(line, column, fmt.Sprintf("unexpected end element </%s>", qualified(t.Name)))
			}
			open := stack[len(stack)-1]
			if name := qualified(t.Name); name != open.name {
				return nil, syntaxErrorAt(line, column, fmt.Sprintf("element <%s> closed by </%s>", open.name, name))
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				rootClosed = true
			}

		case xml.CharData:
			if len(stack) == 0 {
				if !isIgnorableOutsideRoot(t) {
					return nil, syntaxErrorAt(line, column, "unexpected character data outside root element")
				}
				continue
			}
			stack[len(stack)-1].text += string(t)
		}
	}

	if root == nil {
		return nil, syntaxError(decoder, "document has no root element")
	}
	if len(stack) > 0 {
		return nil, syntaxError(decoder, fmt.Sprintf("unexpected EOF inside <%s>", stack[len(stack)-1].name))
	}
	return root, nil
}

func qualified(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

func convertAttrs(xmlAttrs []xml.Attr) []Attr {
	attrs := make([]Attr, 0, len(xmlAttrs))
	for _, a := range xmlAttrs {
		attrs = append(attrs, Attr{Name: qualified(a.Name), Value: a.Value})
	}
	return attrs
}

func isIgnorableOutsideRoot(data []byte) bool {
	for _, r := range string(data) {
		if r == '\uFEFF' {
			continue
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func syntaxError(decoder *xml.Decoder, msg string) error {
	line, column := decoder.InputPos()
	return syntaxErrorAt(line, column, msg)
}

func syntaxErrorAt(line, column int, msg string) error {
	return &girerrors.Error{Code: girerrors.ErrXMLSyntax, Message: msg, Line: line, Column: column}
}
