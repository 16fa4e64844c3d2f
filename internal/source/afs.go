package source

import (
	"context"
	"fmt"
	"sort"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

// AFS reads documents below a base URL through an afs service, so any scheme
// afs supports (file, mem, gs, s3 with the matching connector) works.
type AFS struct {
	fs      afs.Service
	baseURL string
}

// NewAFS returns a source rooted at baseURL using the default afs service.
func NewAFS(baseURL string) *AFS {
	return NewAFSWithService(afs.New(), baseURL)
}

// NewAFSWithService returns a source rooted at baseURL using service.
func NewAFSWithService(service afs.Service, baseURL string) *AFS {
	return &AFS{fs: service, baseURL: baseURL}
}

// ReadFile implements Source.
func (s *AFS) ReadFile(ctx context.Context, name string) ([]byte, error) {
	canonical, err := CleanName(name)
	if err != nil {
		return nil, err
	}
	URL := url.Join(s.baseURL, canonical)
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", URL, err)
	}
	return data, nil
}

// List implements Source.
func (s *AFS) List(ctx context.Context) ([]string, error) {
	objects, err := s.fs.List(ctx, s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.baseURL, err)
	}
	names := make([]string, 0, len(objects))
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		names = append(names, object.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Location implements Source.
func (s *AFS) Location() string {
	return s.baseURL
}
