package gir

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/jacoelho/gir/internal/xml"
)

type intOption struct {
	value int
	set   bool
}

func (o intOption) resolved() int {
	if !o.set {
		return 0
	}
	return o.value
}

// Options configures document loading and include resolution. The zero value
// is valid; With methods return modified copies.
type Options struct {
	logger          *slog.Logger
	parseCache      *ParseCache
	maxDepth        intOption
	maxAttrs        intOption
	concurrency     intOption
	strictFileNames bool
}

type resolvedOptions struct {
	logger          *slog.Logger
	parseCache      *ParseCache
	limits          xml.Limits
	concurrency     int
	strictFileNames bool
}

// NewOptions returns a default, valid options value.
func NewOptions() Options {
	return Options{}
}

// Validate validates options values.
func (o Options) Validate() error {
	_, err := o.withDefaults()
	return err
}

// WithLogger sets the structured logger for resolution events (nil discards).
func (o Options) WithLogger(logger *slog.Logger) Options {
	o.logger = logger
	return o
}

// WithParseCache shares parsed documents between resolutions by content digest.
func (o Options) WithParseCache(cache *ParseCache) Options {
	o.parseCache = cache
	return o
}

// WithMaxDepth sets the XML element depth limit (0 uses default).
func (o Options) WithMaxDepth(value int) Options {
	o.maxDepth = intOption{value: value, set: true}
	return o
}

// WithMaxAttrs sets the per-element attribute limit (0 uses default).
func (o Options) WithMaxAttrs(value int) Options {
	o.maxAttrs = intOption{value: value, set: true}
	return o
}

// WithConcurrency bounds the number of roots ResolveAll resolves at once
// (0 uses GOMAXPROCS).
func (o Options) WithConcurrency(value int) Options {
	o.concurrency = intOption{value: value, set: true}
	return o
}

// WithStrictFileNames requires every resolved document to declare the
// namespace its file name implies.
func (o Options) WithStrictFileNames(value bool) Options {
	o.strictFileNames = value
	return o
}

func (o Options) withDefaults() (resolvedOptions, error) {
	limits := xml.Limits{MaxDepth: o.maxDepth.resolved(), MaxAttrs: o.maxAttrs.resolved()}
	if err := limits.Validate(); err != nil {
		return resolvedOptions{}, err
	}
	concurrency := o.concurrency.resolved()
	if concurrency < 0 {
		return resolvedOptions{}, fmt.Errorf("concurrency must be >= 0")
	}
	if concurrency == 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return resolvedOptions{
		logger:          logger,
		parseCache:      o.parseCache,
		limits:          limits,
		concurrency:     concurrency,
		strictFileNames: o.strictFileNames,
	}, nil
}
