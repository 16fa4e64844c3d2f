// Command girscan resolves GIR documents and prints a summary of each
// namespace and its dependencies.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/jacoelho/gir"
	"github.com/jacoelho/gir/internal/discover"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("girscan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to YAML config file")
	dir := fs.String("dir", "", "directory holding .gir files (default \".\")")
	baseURL := fs.String("url", "", "base URL holding .gir files (file://, mem://, ...)")
	concurrency := fs.Int("concurrency", 0, "roots resolved at once (0 uses GOMAXPROCS)")
	cacheSize := fs.Int("cache", 0, "parsed document cache size (0 disables)")
	strict := fs.Bool("strict", false, "require each file to declare the namespace its name implies")
	dump := fs.Bool("dump", false, "dump each namespace")
	verbose := fs.Bool("v", false, "log resolution events to stderr")
	var ignores []string
	fs.Func("ignore", "skip files matching pattern (repeatable)", func(s string) error {
		ignores = append(ignores, s)
		return nil
	})
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s [options] [file.gir ...]\n\n", os.Args[0]),
			writeln(stderr, "Resolves GIR documents with their includes and prints a summary."),
			writeln(stderr, "Without file arguments every .gir file in the source is resolved."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var cfg config
	if *configPath != "" {
		var err error
		if cfg, err = readConfig(*configPath); err != nil {
			if writeErr := writef(stderr, "error: %v\n", err); writeErr != nil {
				return 1
			}
			return 2
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			cfg.Dir = *dir
		case "url":
			cfg.URL = *baseURL
		case "concurrency":
			cfg.Concurrency = *concurrency
		case "cache":
			cfg.CacheSize = *cacheSize
		case "strict":
			cfg.StrictFileNames = *strict
		}
	})
	cfg.Ignore = append(cfg.Ignore, ignores...)
	if err := cfg.validate(); err != nil {
		if writeErr := writef(stderr, "error: %v\n", err); writeErr != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if *verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	opts := cfg.options().WithLogger(logger)
	if cfg.CacheSize > 0 {
		cache, err := gir.NewParseCache(cfg.CacheSize)
		if err != nil {
			_ = writef(stderr, "error: %v\n", err)
			return 1
		}
		opts = opts.WithParseCache(cache)
	}

	ctx := context.Background()
	src := cfg.source()
	roots := fs.Args()
	if len(roots) == 0 {
		var err error
		if roots, err = discover.Files(ctx, src, cfg.Ignore...); err != nil {
			if writeErr := writef(stderr, "error listing %s: %v\n", src.Location(), err); writeErr != nil {
				return 1
			}
			return 1
		}
		logger.Debug("discovered", "source", src.Location(), "files", len(roots))
	}
	if len(roots) == 0 {
		if err := writef(stderr, "no .gir files in %s\n", src.Location()); err != nil {
			return 1
		}
		return 1
	}

	res, err := gir.ResolveAll(ctx, src, roots, opts)
	if err != nil {
		if writeErr := writef(stderr, "error: %v\n", err); writeErr != nil {
			return 1
		}
		return 1
	}

	for _, name := range res.Files() {
		repo, _ := res.Get(name)
		if err := writeSummary(stdout, name, repo); err != nil {
			return 1
		}
		if *dump {
			dumpNamespace(stdout, repo.Namespace())
		}
	}
	if err := writef(stdout, "%d files, fingerprint %016x\n", res.Len(), res.Fingerprint()); err != nil {
		return 1
	}
	return 0
}

func writeSummary(w io.Writer, file string, repo *gir.Repository) error {
	ns := repo.Namespace()
	deps := make([]string, len(repo.Includes()))
	for i, include := range repo.Includes() {
		deps[i] = include.Package()
	}
	if len(deps) == 0 {
		deps = []string{"-"}
	}
	return errors.Join(
		writef(w, "Library: %s\n", ns.Package()),
		writef(w, "  GIR file: %s\n", file),
		writef(w, "  Version: %s\n", ns.Version()),
		writef(w, "  Dependencies: %s\n", strings.Join(deps, ", ")),
		writef(w, "  Classes: %d, Interfaces: %d, Records: %d, Enumerations: %d, Bitfields: %d\n",
			len(ns.Classes()), len(ns.Interfaces()), len(ns.Records()), len(ns.Enumerations()), len(ns.BitFields())),
		writef(w, "  Functions: %d, Callbacks: %d, Constants: %d, Aliases: %d\n",
			len(ns.Functions()), len(ns.Callbacks()), len(ns.Constants()), len(ns.Aliases())),
	)
}

func dumpNamespace(w io.Writer, ns *gir.Namespace) {
	cfg := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		DisableMethods:          true,
		SortKeys:                true,
		MaxDepth:                4,
	}
	cfg.Fdump(w, ns)
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
