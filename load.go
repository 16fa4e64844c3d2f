package gir

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	girerrors "github.com/jacoelho/gir/errors"
	"github.com/jacoelho/gir/internal/xml"
)

// Load parses one GIR document.
func Load(r io.Reader) (*Repository, error) {
	return LoadWithOptions(r, NewOptions())
}

// LoadWithOptions parses one GIR document with explicit limits.
func LoadWithOptions(r io.Reader, opts Options) (*Repository, error) {
	resolved, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, girerrors.New(girerrors.ErrIO, "nil reader", "")
	}
	return decodeRepository(r, resolved.limits)
}

// LoadBytes parses one GIR document held in memory.
func LoadBytes(data []byte) (*Repository, error) {
	return Load(bytes.NewReader(data))
}

// LoadString parses one GIR document held in a string.
func LoadString(s string) (*Repository, error) {
	return Load(strings.NewReader(s))
}

// LoadFS parses the named GIR document from fsys.
func LoadFS(fsys fs.FS, name string) (*Repository, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, girerrors.WithFile(err, name)
	}
	repo, err := LoadBytes(data)
	if err != nil {
		return nil, girerrors.WithFile(err, name)
	}
	return repo, nil
}

// LoadFile parses the GIR document at path.
func LoadFile(path string) (*Repository, error) {
	return LoadFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func decodeRepository(r io.Reader, limits xml.Limits) (*Repository, error) {
	root, err := xml.Parse(r, limits)
	if err != nil {
		if _, ok := girerrors.As(err); ok {
			return nil, err
		}
		return nil, girerrors.Wrap(girerrors.ErrIO, err, "read document")
	}
	if root.Name() != repositorySpec.Tag() {
		return nil, &girerrors.Error{
			Code:    girerrors.ErrUnexpectedRoot,
			Message: fmt.Sprintf("root element is <%s>, want <%s>", root.Name(), repositorySpec.Tag()),
			Path:    root.Path(),
			Line:    root.Line(),
			Column:  root.Column(),
		}
	}
	return repositorySpec.Decode(root)
}
