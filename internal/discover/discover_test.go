package discover

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho/gir/internal/source"
)

func TestFiles(t *testing.T) {
	src := source.NewFS(fstest.MapFS{
		"Gtk-4.0.gir":        {Data: []byte("<repository/>")},
		"GLib-2.0.gir":       {Data: []byte("<repository/>")},
		"Broken-1.0.gir":     {Data: []byte("")},
		"Private-1.0.gir":    {Data: []byte("")},
		"README.md":          {Data: []byte("")},
		".hidden.gir":        {Data: []byte("")},
		"nested/Gio-2.0.gir": {Data: []byte("")},
		IgnoreFile:           {Data: []byte("# skip broken\nBroken-*.gir\n")},
	})

	files, err := Files(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, []string{"GLib-2.0.gir", "Gtk-4.0.gir", "Private-1.0.gir"}, files)

	files, err = Files(context.Background(), src, "Private-*")
	require.NoError(t, err)
	assert.Equal(t, []string{"GLib-2.0.gir", "Gtk-4.0.gir"}, files)
}

func TestFilesWithoutIgnoreFile(t *testing.T) {
	src := source.NewFS(fstest.MapFS{
		"B-1.gir": {Data: []byte("")},
		"A-1.gir": {Data: []byte("")},
	})
	files, err := Files(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, []string{"A-1.gir", "B-1.gir"}, files)
}
