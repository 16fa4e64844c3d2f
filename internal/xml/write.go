package xml

import (
	"bufio"
	"encoding/xml"
	"io"
	"strings"
)

// Write serializes root as an XML document. Children are indented with indent
// unless the element carries text, in which case its content is written inline
// so the text survives a round trip unchanged.
func Write(w io.Writer, root *Element, indent string) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(xml.Header); err != nil {
		return err
	}
	if err := writeElement(bw, root, indent, 0); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}

func writeElement(w *bufio.Writer, e *Element, indent string, depth int) error {
	w.WriteByte('<')
	w.WriteString(e.name)
	for _, a := range e.attrs {
		w.WriteByte(' ')
		w.WriteString(a.Name)
		w.WriteString(`="`)
		if err := xml.EscapeText(w, []byte(a.Value)); err != nil {
			return err
		}
		w.WriteByte('"')
	}
	inline := e.text != "" && (len(e.children) == 0 || strings.TrimSpace(e.text) != "")
	if !inline && len(e.children) == 0 {
		_, err := w.WriteString("/>")
		return err
	}
	w.WriteByte('>')

	if inline {
		if err := xml.EscapeText(w, []byte(e.text)); err != nil {
			return err
		}
		for _, child := range e.children {
			if err := writeElement(w, child, "", 0); err != nil {
				return err
			}
		}
	} else {
		for _, child := range e.children {
			if indent != "" {
				w.WriteByte('\n')
				w.WriteString(strings.Repeat(indent, depth+1))
			}
			if err := writeElement(w, child, indent, depth+1); err != nil {
				return err
			}
		}
		if indent != "" {
			w.WriteByte('\n')
			w.WriteString(strings.Repeat(indent, depth))
		}
	}

	w.WriteString("</")
	w.WriteString(e.name)
	_, err := w.WriteString(">")
	return err
}
