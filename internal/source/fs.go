package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
)

// FS reads documents from an fs.FS.
type FS struct {
	fsys     fs.FS
	location string
}

// NewFS returns a source over fsys.
func NewFS(fsys fs.FS) *FS {
	return &FS{fsys: fsys, location: "fs"}
}

// NewDir returns a source over a directory of the host file system.
func NewDir(dir string) *FS {
	return &FS{fsys: os.DirFS(dir), location: dir}
}

// ReadFile implements Source.
func (s *FS) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if s == nil || s.fsys == nil {
		return nil, fmt.Errorf("no filesystem configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	canonical, err := CleanName(name)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(s.fsys, canonical)
}

// List implements Source.
func (s *FS) List(ctx context.Context) ([]string, error) {
	if s == nil || s.fsys == nil {
		return nil, fmt.Errorf("no filesystem configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Location implements Source.
func (s *FS) Location() string {
	return s.location
}
