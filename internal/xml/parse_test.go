package xml

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	girerrors "github.com/jacoelho/gir/errors"
)

func TestParseKeepsPrefixes(t *testing.T) {
	input := `<?xml version="1.0"?>
<repository version="1.2" xmlns:c="http://www.gtk.org/introspection/c/1.0">
  <namespace name="GLib" c:identifier-prefixes="G">
    <glib:signal name="changed"/>
    <doc xml:space="preserve">Hello &amp; welcome</doc>
  </namespace>
</repository>`

	root, err := Parse(strings.NewReader(input), Limits{})
	require.NoError(t, err)
	assert.Equal(t, "repository", root.Name())
	assert.Equal(t, 2, root.Line())
	assert.Equal(t, 1, root.Column())

	assert.Contains(t, root.Attributes(), Attr{Name: "xmlns:c", Value: "http://www.gtk.org/introspection/c/1.0"})

	require.Len(t, root.Children(), 1)
	ns := root.Children()[0]
	assert.Equal(t, []Attr{{Name: "name", Value: "GLib"}, {Name: "c:identifier-prefixes", Value: "G"}}, ns.Attributes())

	require.Len(t, ns.Children(), 2)
	assert.Equal(t, "glib:signal", ns.Children()[0].Name())
	doc := ns.Children()[1]
	assert.Equal(t, "Hello & welcome", doc.Text())
	assert.Equal(t, []Attr{{Name: "xml:space", Value: "preserve"}}, doc.Attributes())
	assert.Equal(t, "/repository/namespace/doc", doc.Path())
	assert.Equal(t, 5, doc.Line())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		limits Limits
		want   string
	}{
		{name: "empty", input: "", want: "no root element"},
		{name: "mismatched end", input: "<a><b></a>", want: "element <b> closed by </a>"},
		{name: "unclosed", input: "<a><b/>", want: "unexpected EOF"},
		{name: "second root", input: "<a/><b/>", want: "after document end"},
		{name: "text outside root", input: "<a/>junk", want: "character data outside root"},
		{name: "bad syntax", input: "<a x=1/>", want: ""},
		{name: "depth", input: "<a><b><c/></b></a>", limits: Limits{MaxDepth: 2}, want: "depth exceeds 2"},
		{name: "attrs", input: `<a x="1" y="2"/>`, limits: Limits{MaxAttrs: 1}, want: "more than 1 attributes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), tt.limits)
			require.Error(t, err)
			assert.True(t, girerrors.HasCode(err, girerrors.ErrXMLSyntax), "code of %v", err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseNegativeLimits(t *testing.T) {
	_, err := Parse(strings.NewReader("<a/>"), Limits{MaxDepth: -1})
	require.Error(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	root := NewElement("repository")
	root.SetAttr("version", "1.2")
	root.SetAttr("xmlns:c", "http://www.gtk.org/introspection/c/1.0")
	ns := NewElement("namespace")
	ns.SetAttr("name", "Foo")
	ns.SetAttr("name", "Bar")
	root.AppendChild(ns)
	doc := NewElement("doc")
	doc.SetText("a < b\n  \"quoted\"")
	ns.AppendChild(doc)
	ns.AppendChild(NewElement("glib:signal"))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, root, "  "))

	parsed, err := Parse(&buf, Limits{})
	require.NoError(t, err)
	assert.Equal(t, root.Attributes(), parsed.Attributes())
	require.Len(t, parsed.Children(), 1)
	gotNS := parsed.Children()[0]
	assert.Equal(t, []Attr{{Name: "name", Value: "Bar"}}, gotNS.Attributes())
	require.Len(t, gotNS.Children(), 2)
	assert.Equal(t, "a < b\n  \"quoted\"", gotNS.Children()[0].Text())
	assert.Equal(t, "glib:signal", gotNS.Children()[1].Name())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errReadFailed }

var errReadFailed = stderrors.New("read failed")

func TestParseReaderFailure(t *testing.T) {
	_, err := Parse(failingReader{}, Limits{})
	require.ErrorIs(t, err, errReadFailed)
	assert.False(t, girerrors.HasCode(err, girerrors.ErrXMLSyntax))
}
