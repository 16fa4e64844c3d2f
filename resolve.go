package gir

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"

	"golang.org/x/sync/errgroup"

	girerrors "github.com/jacoelho/gir/errors"
	"github.com/jacoelho/gir/internal/doccache"
	"github.com/jacoelho/gir/internal/loader"
	"github.com/jacoelho/gir/internal/source"
)

// Source reads GIR documents by file name.
type Source = source.Source

// DirSource reads documents from a directory of the host file system.
func DirSource(dir string) Source {
	return source.NewDir(dir)
}

// FSSource reads documents from fsys.
func FSSource(fsys fs.FS) Source {
	return source.NewFS(fsys)
}

// URLSource reads documents below baseURL through afs, for example
// "file:///usr/share/gir-1.0" or "mem://localhost/gir".
func URLSource(baseURL string) Source {
	return source.NewAFS(baseURL)
}

// ParseCache shares parsed repositories between resolutions. Documents are
// keyed by a digest of their content, so renamed or copied files hit too.
// It is safe for concurrent use.
type ParseCache struct {
	cache *doccache.Cache[*Repository]
}

// NewParseCache returns a cache holding at most size repositories.
func NewParseCache(size int) (*ParseCache, error) {
	cache, err := doccache.New[*Repository](size)
	if err != nil {
		return nil, err
	}
	return &ParseCache{cache: cache}, nil
}

// Len returns the number of cached repositories.
func (c *ParseCache) Len() int {
	if c == nil {
		return 0
	}
	return c.cache.Len()
}

func (c *ParseCache) documents() *doccache.Cache[*Repository] {
	if c == nil {
		return nil
	}
	return c.cache
}

// Resolution is a set of repositories closed under namespace includes, keyed
// by file name (Name-Version.gir).
type Resolution struct {
	repos   map[string]*Repository
	digests map[string]doccache.Digest
	files   []string
}

func newResolution() *Resolution {
	return &Resolution{
		repos:   make(map[string]*Repository),
		digests: make(map[string]doccache.Digest),
	}
}

func (r *Resolution) add(entry *loader.Entry[*Repository]) {
	if _, ok := r.repos[entry.Name]; ok {
		return
	}
	r.repos[entry.Name] = entry.Doc
	r.digests[entry.Name] = entry.Digest
	r.files = append(r.files, entry.Name)
}

// Get returns the repository loaded from file.
func (r *Resolution) Get(file string) (*Repository, bool) {
	repo, ok := r.repos[file]
	return repo, ok
}

// Package returns the repository for the package identifier Name-Version.
func (r *Resolution) Package(id string) (*Repository, bool) {
	return r.Get(id + ".gir")
}

// Files returns the file names with every dependency before its dependents.
func (r *Resolution) Files() []string {
	return append([]string(nil), r.files...)
}

// Repositories returns the repositories in the order of Files.
func (r *Resolution) Repositories() []*Repository {
	out := make([]*Repository, len(r.files))
	for i, name := range r.files {
		out[i] = r.repos[name]
	}
	return out
}

// Len returns the number of repositories.
func (r *Resolution) Len() int {
	return len(r.files)
}

// Fingerprint digests the names and contents of every document. It does not
// depend on resolution order.
func (r *Resolution) Fingerprint() uint64 {
	return uint64(doccache.Combine(r.digests))
}

// Resolve loads file from dir together with its transitive includes.
func Resolve(dir, file string) (*Resolution, error) {
	return ResolveSource(context.Background(), DirSource(dir), file, NewOptions())
}

// ResolveFS loads file from fsys together with its transitive includes.
func ResolveFS(fsys fs.FS, file string) (*Resolution, error) {
	return ResolveSource(context.Background(), FSSource(fsys), file, NewOptions())
}

// ResolveURL loads file below baseURL together with its transitive includes.
func ResolveURL(ctx context.Context, baseURL, file string) (*Resolution, error) {
	return ResolveSource(ctx, URLSource(baseURL), file, NewOptions())
}

// ResolveSource loads file from src together with every namespace it
// transitively includes. Each document is read and parsed at most once. The
// first I/O or structural error aborts the resolution; an include cycle is
// reported as ErrIncludeCycle.
func ResolveSource(ctx context.Context, src Source, file string, opts Options) (*Resolution, error) {
	resolved, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	l := newLoader(src, resolved)
	if err := l.Load(ctx, file); err != nil {
		return nil, fmt.Errorf("resolve %s: %w", file, err)
	}
	res := newResolution()
	for _, entry := range l.Entries() {
		res.add(entry)
	}
	return res, nil
}

// ResolveAll resolves several roots concurrently, each with its own include
// state, and merges the results. Shared dependencies appear once. The first
// failure cancels the remaining roots.
func ResolveAll(ctx context.Context, src Source, files []string, opts Options) (*Resolution, error) {
	resolved, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	loaders := make([]*loader.Loader[*Repository], len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(resolved.concurrency)
	for i, file := range files {
		g.Go(func() error {
			l := newLoader(src, resolved)
			if err := l.Load(ctx, file); err != nil {
				return fmt.Errorf("resolve %s: %w", file, err)
			}
			loaders[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := newResolution()
	for _, l := range loaders {
		for _, entry := range l.Entries() {
			res.add(entry)
		}
	}
	return res, nil
}

func newLoader(src Source, opts resolvedOptions) *loader.Loader[*Repository] {
	return loader.New(loader.Config[*Repository]{
		Source: src,
		Decode: func(data []byte) (*Repository, error) {
			return decodeRepository(bytes.NewReader(data), opts.limits)
		},
		Check: func(name string, repo *Repository) error {
			if !opts.strictFileNames {
				return nil
			}
			if want := repo.Namespace().FileName(); want != name {
				return girerrors.Newf(girerrors.ErrRootMismatch, "/repository/namespace",
					"document declares %s, expected %s", want, name)
			}
			return nil
		},
		Includes: func(repo *Repository) []string {
			names := make([]string, len(repo.Includes()))
			for i, include := range repo.Includes() {
				names[i] = include.FileName()
			}
			return names
		},
		Cache:  opts.parseCache.documents(),
		Logger: opts.logger,
	})
}
