package gir_test

import (
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho/gir"
	girerrors "github.com/jacoelho/gir/errors"
)

const minimalRepository = `<?xml version="1.0"?>
<repository version="1.2" xmlns="http://www.gtk.org/introspection/core/1.0">
  <namespace name="Min" version="1.0">%s</namespace>
</repository>`

func wrap(body string) string {
	return strings.Replace(minimalRepository, "%s", body, 1)
}

func TestLoadString(t *testing.T) {
	repo, err := gir.LoadString(wrap(""))
	require.NoError(t, err)
	assert.Equal(t, "Min-1.0", repo.Namespace().Package())
	assert.Equal(t, gir.DocFormatUnknown, repo.DocFormat())
	assert.Empty(t, repo.Includes())
	assert.Nil(t, repo.Namespace().IdentifierPrefixes())
}

func TestLoadStructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code girerrors.Code
	}{
		{
			name: "malformed xml",
			doc:  `<repository><namespace name="A" version="1">`,
			code: girerrors.ErrXMLSyntax,
		},
		{
			name: "unexpected root",
			doc:  `<library/>`,
			code: girerrors.ErrUnexpectedRoot,
		},
		{
			name: "missing namespace",
			doc:  `<repository version="1.2"/>`,
			code: girerrors.ErrMissingElement,
		},
		{
			name: "missing required attribute",
			doc:  wrap(`<alias c:type="X"/>`),
			code: girerrors.ErrMissingAttribute,
		},
		{
			name: "invalid boolean",
			doc:  wrap(`<class name="A" glib:type-name="A" glib:get-type="a" abstract="maybe"/>`),
			code: girerrors.ErrInvalidValue,
		},
		{
			name: "invalid member value",
			doc:  wrap(`<bitfield name="F" c:type="F"><member name="a" value="x" c:identifier="A"/></bitfield>`),
			code: girerrors.ErrInvalidValue,
		},
		{
			name: "invalid transfer",
			doc: wrap(`<function name="f"><return-value transfer-ownership="floating">` +
				`<type name="none"/></return-value></function>`),
			code: girerrors.ErrInvalidValue,
		},
		{
			name: "unknown attribute on strict entity",
			doc:  wrap(`<class name="A" glib:type-name="A" glib:get-type="a" sparkle="1"/>`),
			code: girerrors.ErrUnexpectedAttribute,
		},
		{
			name: "unknown child on strict entity",
			doc:  wrap(`<class name="A" glib:type-name="A" glib:get-type="a"><gadget/></class>`),
			code: girerrors.ErrUnexpectedElement,
		},
		{
			name: "second namespace",
			doc:  `<repository><namespace name="A" version="1"/><namespace name="B" version="1"/></repository>`,
			code: girerrors.ErrUnexpectedElement,
		},
		{
			name: "boolean outside gir literals",
			doc:  wrap(`<class name="A" glib:type-name="A" glib:get-type="a" abstract="T"/>`),
			code: girerrors.ErrInvalidValue,
		},
		{
			name: "virtual method without parameters",
			doc: wrap(`<class name="A" glib:type-name="A" glib:get-type="a"><virtual-method name="v">` +
				`<return-value><type name="none"/></return-value></virtual-method></class>`),
			code: girerrors.ErrMissingElement,
		},
		{
			name: "unknown child on repository",
			doc:  `<repository><namespace name="A" version="1"/><extra/></repository>`,
			code: girerrors.ErrUnexpectedElement,
		},
		{
			name: "return value without type",
			doc:  wrap(`<function name="f"><return-value/></function>`),
			code: girerrors.ErrNoVariant,
		},
		{
			name: "field without type",
			doc:  wrap(`<record name="R"><field name="x"/></record>`),
			code: girerrors.ErrNoVariant,
		},
		{
			name: "function without return value",
			doc:  wrap(`<function name="f"/>`),
			code: girerrors.ErrMissingElement,
		},
		{
			name: "nested error aborts whole document",
			doc: wrap(`<record name="R"><field name="x"><array fixed-size="-1">` +
				`<type name="gint"/></array></field></record>`),
			code: girerrors.ErrInvalidValue,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := gir.LoadString(tt.doc)
			require.Error(t, err)
			assert.Nil(t, repo)
			assert.True(t, girerrors.HasCode(err, tt.code), "got %v", err)
			assert.True(t, girerrors.IsStructure(err))
			assert.False(t, girerrors.IsIO(err))
		})
	}
}

func TestLoadLenientEntitiesIgnoreUnknownContent(t *testing.T) {
	repo, err := gir.LoadString(wrap(`
    <future-thing name="x"/>
    <constant name="C" value="1" sparkle="1">
      <type name="gint" glitter="2"><shiny/></type>
      <annotation/>
    </constant>`))
	require.NoError(t, err)
	require.Len(t, repo.Namespace().Constants(), 1)
	assert.Equal(t, "gint", repo.Namespace().Constants()[0].Type().(*gir.Type).Name())
}

func TestLoadErrorPosition(t *testing.T) {
	_, err := gir.LoadString("<repository>\n  <namespace name=\"A\" version=\"1\">\n    <alias/>\n  </namespace>\n</repository>")
	require.Error(t, err)

	girErr, ok := girerrors.As(err)
	require.True(t, ok)
	assert.Equal(t, girerrors.ErrMissingAttribute, girErr.Code)
	assert.Equal(t, "/repository/namespace/alias", girErr.Path)
	assert.Equal(t, 3, girErr.Line)
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"Min-1.0.gir":  &fstest.MapFile{Data: []byte(wrap(""))},
		"Bad-1.0.gir":  &fstest.MapFile{Data: []byte(`<repository/>`)},
		"Text-1.0.gir": &fstest.MapFile{Data: []byte(`not xml`)},
	}

	repo, err := gir.LoadFS(fsys, "Min-1.0.gir")
	require.NoError(t, err)
	assert.Equal(t, "Min", repo.Namespace().Name())

	_, err = gir.LoadFS(fsys, "Missing-1.0.gir")
	require.Error(t, err)
	assert.True(t, girerrors.IsIO(err))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	girErr, ok := girerrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "Missing-1.0.gir", girErr.File)

	_, err = gir.LoadFS(fsys, "Bad-1.0.gir")
	require.Error(t, err)
	assert.True(t, girerrors.HasCode(err, girerrors.ErrMissingElement))
	assert.Contains(t, err.Error(), "Bad-1.0.gir")

	_, err = gir.LoadFS(fsys, "Text-1.0.gir")
	require.Error(t, err)
	assert.True(t, girerrors.IsStructure(err))
}

func TestLoadFile(t *testing.T) {
	repo, err := gir.LoadFile("testdata/GLib-2.0.gir")
	require.NoError(t, err)
	assert.Equal(t, []string{"g", "glib"}, repo.Namespace().SymbolPrefixes())
	assert.Equal(t, []string{"libgobject-2.0.so.0", "libglib-2.0.so.0"}, repo.Namespace().SharedLibraries())

	_, err = gir.LoadFile("testdata/Nope-1.0.gir")
	assert.True(t, girerrors.IsIO(err))
}

func TestLoadWithOptionsLimits(t *testing.T) {
	_, err := gir.LoadWithOptions(strings.NewReader(wrap("")), gir.NewOptions().WithMaxDepth(1))
	require.Error(t, err)
	assert.True(t, girerrors.HasCode(err, girerrors.ErrXMLSyntax))

	_, err = gir.LoadWithOptions(strings.NewReader(wrap("")), gir.NewOptions().WithMaxAttrs(-1))
	assert.Error(t, err)

	_, err = gir.LoadWithOptions(nil, gir.NewOptions())
	assert.True(t, girerrors.IsIO(err))
}
