// Package source reads GIR documents by file name from a directory, an fs.FS,
// or any storage URL supported by afs.
package source

import (
	"context"
	"fmt"
	"path"
	"strings"
)

// Source reads documents addressed by names relative to its root.
type Source interface {
	// ReadFile returns the content of the named document.
	ReadFile(ctx context.Context, name string) ([]byte, error)
	// List returns the names of the regular files at the root.
	List(ctx context.Context) ([]string, error)
	// Location describes the root for logs and messages.
	Location() string
}

// CleanName validates a document name and returns its canonical form. Names
// must be relative, slash separated, and stay within the root.
func CleanName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("document name is empty")
	}
	if strings.Contains(name, "\\") {
		return "", fmt.Errorf("document name contains backslash: %q", name)
	}
	if strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("document name must be relative: %q", name)
	}
	canonical := path.Clean(name)
	if canonical == "." {
		return "", fmt.Errorf("document name is empty")
	}
	if canonical == ".." || strings.HasPrefix(canonical, "../") {
		return "", fmt.Errorf("document name escapes root: %q", name)
	}
	return canonical, nil
}
