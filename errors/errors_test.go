package errors

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		want string
		e    Error
	}{
		{
			name: "message only",
			e:    Error{Code: ErrMissingAttribute, Message: "missing attribute name"},
			want: "[gir-missing-attribute] missing attribute name",
		},
		{
			name: "with path",
			e:    Error{Code: ErrMissingAttribute, Message: "missing attribute name", Path: "/repository/namespace"},
			want: "[gir-missing-attribute] missing attribute name at /repository/namespace",
		},
		{
			name: "with position only",
			e:    Error{Code: ErrXMLSyntax, Message: "unexpected EOF", Line: 3, Column: 7},
			want: "[gir-xml-syntax] unexpected EOF at line 3, column 7",
		},
		{
			name: "with all",
			e: Error{
				Code:    ErrUnexpectedElement,
				Message: "unexpected element bogus",
				File:    "GLib-2.0.gir",
				Path:    "/repository/namespace/class",
				Line:    10,
				Column:  4,
			},
			want: "[gir-unexpected-element] unexpected element bogus in GLib-2.0.gir at /repository/namespace/class (line 10, column 4)",
		},
		{
			name: "with cause",
			e:    Error{Code: ErrIO, Message: "open document", File: "Gio-2.0.gir", Err: fs.ErrNotExist},
			want: "[gir-io] open document in Gio-2.0.gir: file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.e.Error())
		})
	}
}

func TestNilErrorFormatting(t *testing.T) {
	var e *Error
	assert.Equal(t, "gir error <nil>", e.Error())
	assert.NoError(t, e.Unwrap())
}

func TestKinds(t *testing.T) {
	structural := []Code{
		ErrXMLSyntax, ErrUnexpectedRoot, ErrMissingAttribute, ErrMissingElement, ErrInvalidValue,
		ErrUnexpectedAttribute, ErrUnexpectedElement, ErrNoVariant, ErrRootMismatch, ErrIncludeCycle,
	}
	for _, code := range structural {
		assert.Equal(t, KindStructure, code.Kind(), string(code))
	}
	assert.Equal(t, KindIO, ErrIO.Kind())
	assert.Equal(t, "io", KindIO.String())
	assert.Equal(t, "structure", KindStructure.String())
}

func TestClassificationThroughWrapping(t *testing.T) {
	io := Wrap(ErrIO, fs.ErrNotExist, "open document")
	wrapped := fmt.Errorf("resolve GLib-2.0.gir: %w", io)

	require.True(t, IsIO(wrapped))
	require.False(t, IsStructure(wrapped))
	require.ErrorIs(t, wrapped, fs.ErrNotExist)
	require.True(t, HasCode(wrapped, ErrIO))

	structural := fmt.Errorf("load: %w", Newf(ErrInvalidValue, "/repository", "invalid boolean %q", "maybe"))
	require.True(t, IsStructure(structural))
	require.False(t, IsIO(structural))

	plain := fmt.Errorf("plain")
	require.False(t, IsIO(plain))
	require.False(t, IsStructure(plain))
	require.False(t, IsIO(nil))
}

func TestWithFile(t *testing.T) {
	require.NoError(t, WithFile(nil, "a.gir"))

	err := WithFile(New(ErrMissingElement, "missing element namespace", "/repository"), "Foo-1.0.gir")
	e, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, "Foo-1.0.gir", e.File)
	assert.Equal(t, ErrMissingElement, e.Code)

	again := WithFile(err, "Other-1.0.gir")
	e, _ = As(again)
	assert.Equal(t, "Foo-1.0.gir", e.File, "first annotation wins")

	err = WithFile(fs.ErrPermission, "Bar-1.0.gir")
	require.True(t, IsIO(err))
	require.ErrorIs(t, err, fs.ErrPermission)
}
