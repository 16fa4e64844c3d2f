package source

import (
	"bytes"
	"context"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "GLib-2.0.gir", want: "GLib-2.0.gir"},
		{name: "sub/../Gio-2.0.gir", want: "Gio-2.0.gir"},
		{name: "", wantErr: true},
		{name: ".", wantErr: true},
		{name: "/etc/passwd", wantErr: true},
		{name: "../secret.gir", wantErr: true},
		{name: `dir\file.gir`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanName(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFSSource(t *testing.T) {
	src := NewFS(fstest.MapFS{
		"A-1.0.gir":   {Data: []byte("<a/>")},
		"B-1.0.gir":   {Data: []byte("<b/>")},
		"sub/C-1.gir": {Data: []byte("<c/>")},
		".girignore":  {Data: []byte("B-*\n")},
	})
	ctx := context.Background()

	data, err := src.ReadFile(ctx, "A-1.0.gir")
	require.NoError(t, err)
	assert.Equal(t, "<a/>", string(data))

	_, err = src.ReadFile(ctx, "missing.gir")
	require.ErrorIs(t, err, fs.ErrNotExist)

	names, err := src.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{".girignore", "A-1.0.gir", "B-1.0.gir"}, names)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = src.ReadFile(canceled, "A-1.0.gir")
	require.ErrorIs(t, err, context.Canceled)
}

func TestAFSSource(t *testing.T) {
	ctx := context.Background()
	service := afs.New()
	base := "mem://localhost/source-test"
	require.NoError(t, service.Upload(ctx, base+"/A-1.0.gir", 0o644, bytes.NewReader([]byte("<a/>"))))
	require.NoError(t, service.Upload(ctx, base+"/B-1.0.gir", 0o644, bytes.NewReader([]byte("<b/>"))))

	src := NewAFSWithService(service, base)
	assert.Equal(t, base, src.Location())

	data, err := src.ReadFile(ctx, "A-1.0.gir")
	require.NoError(t, err)
	assert.Equal(t, "<a/>", string(data))

	_, err = src.ReadFile(ctx, "missing.gir")
	require.Error(t, err)

	_, err = src.ReadFile(ctx, "../escape.gir")
	require.Error(t, err)

	names, err := src.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A-1.0.gir", "B-1.0.gir"}, names)
}
