// Package loader loads a root document and every document it transitively
// includes, each exactly once, in dependency order.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	girerrors "github.com/jacoelho/gir/errors"
	"github.com/jacoelho/gir/internal/doccache"
	"github.com/jacoelho/gir/internal/graphcycle"
	"github.com/jacoelho/gir/internal/source"
)

// Config holds configuration for the document loader.
type Config[D any] struct {
	Source source.Source

	// Decode parses one document. It is not called for cache hits.
	Decode func(data []byte) (D, error)
	// Check validates a decoded or cached document against the name it was
	// loaded under. Optional.
	Check func(name string, doc D) error
	// Includes returns the names of the documents doc depends on, in
	// declaration order.
	Includes func(doc D) []string

	// Cache is shared between loaders; nil disables it.
	Cache  *doccache.Cache[D]
	Logger *slog.Logger
}

type entryState uint8

const (
	entryLoading entryState = iota + 1
	entryLoaded
)

// Entry is a loaded document.
type Entry[D any] struct {
	Doc    D
	Name   string
	Digest doccache.Digest
	state  entryState
}

type loadState[D any] struct {
	entries map[string]*Entry[D]
	order   []string
}

func (s *loadState[D]) isLoaded(name string) bool {
	entry, ok := s.entries[name]
	return ok && entry.state == entryLoaded
}

// Loader resolves include graphs. Entries accumulate across Load calls; a
// Loader is not safe for concurrent use.
type Loader[D any] struct {
	config Config[D]
	state  loadState[D]
}

// New creates a loader with the given configuration.
func New[D any](cfg Config[D]) *Loader[D] {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader[D]{
		config: cfg,
		state:  loadState[D]{entries: make(map[string]*Entry[D])},
	}
}

// Load loads root and its transitive includes. Documents already loaded by
// this loader are neither read nor decoded again. On error the loader keeps
// only the documents that were fully loaded before the failing one.
func (l *Loader[D]) Load(ctx context.Context, root string) error {
	if l == nil || l.config.Source == nil {
		return fmt.Errorf("no source configured")
	}
	if l.config.Decode == nil || l.config.Includes == nil {
		return fmt.Errorf("loader decode and includes functions are required")
	}
	l.config.Logger.Debug("resolve", "root", root, "source", l.config.Source.Location())

	err := graphcycle.Walk(graphcycle.Config[string]{
		Starts: []string{root},
		Known:  l.state.isLoaded,
		Next: func(name string) ([]string, error) {
			entry, err := l.open(ctx, name)
			if err != nil {
				return nil, girerrors.WithFile(err, name)
			}
			includes := l.config.Includes(entry.Doc)
			for _, include := range includes {
				l.config.Logger.Debug("include", "file", name, "include", include)
			}
			return includes, nil
		},
		Done: func(name string) error {
			entry := l.state.entries[name]
			entry.state = entryLoaded
			l.state.order = append(l.state.order, name)
			return nil
		},
	})
	if err != nil {
		l.rollback()
		return includeError(err)
	}
	return nil
}

func (l *Loader[D]) open(ctx context.Context, name string) (*Entry[D], error) {
	data, err := l.config.Source.ReadFile(ctx, name)
	if err != nil {
		return nil, &girerrors.Error{Code: girerrors.ErrIO, Message: "read document", Err: err}
	}
	digest := doccache.Sum(data)

	doc, hit := l.config.Cache.Get(digest)
	if hit {
		l.config.Logger.Debug("cache hit", "file", name, "digest", digest.String())
	} else {
		doc, err = l.config.Decode(data)
		if err != nil {
			return nil, err
		}
		l.config.Cache.Add(digest, doc)
		l.config.Logger.Debug("parsed", "file", name, "bytes", len(data), "digest", digest.String())
	}
	if l.config.Check != nil {
		if err := l.config.Check(name, doc); err != nil {
			return nil, err
		}
	}

	entry := &Entry[D]{Name: name, Doc: doc, Digest: digest, state: entryLoading}
	l.state.entries[name] = entry
	return entry, nil
}

func (l *Loader[D]) rollback() {
	for name, entry := range l.state.entries {
		if entry.state != entryLoaded {
			delete(l.state.entries, name)
		}
	}
}

// Get returns the loaded document stored under name.
func (l *Loader[D]) Get(name string) (*Entry[D], bool) {
	if !l.state.isLoaded(name) {
		return nil, false
	}
	return l.state.entries[name], true
}

// Entries returns the loaded documents, dependencies before dependents.
func (l *Loader[D]) Entries() []*Entry[D] {
	out := make([]*Entry[D], 0, len(l.state.order))
	for _, name := range l.state.order {
		out = append(out, l.state.entries[name])
	}
	return out
}

func includeError(err error) error {
	var cycle graphcycle.CycleError[string]
	if !errors.As(err, &cycle) {
		return err
	}
	return &girerrors.Error{
		Code:    girerrors.ErrIncludeCycle,
		Message: "include cycle " + strings.Join(cycle.Path, " -> "),
		File:    cycle.Path[0],
	}
}
