// Package discover finds GIR documents at the root of a source.
package discover

import (
	"context"
	"slices"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/jacoelho/gir/internal/source"
)

// IgnoreFile lists patterns, in .gitignore syntax, of documents to skip.
const IgnoreFile = ".girignore"

const extension = ".gir"

// Files returns the sorted names of the .gir documents in src, minus those
// matched by the source's ignore file and by extra patterns.
func Files(ctx context.Context, src source.Source, extra ...string) ([]string, error) {
	names, err := src.List(ctx)
	if err != nil {
		return nil, err
	}

	patterns := slices.Clone(extra)
	if slices.Contains(names, IgnoreFile) {
		data, err := src.ReadFile(ctx, IgnoreFile)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, strings.Split(string(data), "\n")...)
	}
	var gi *ignore.GitIgnore
	if len(patterns) > 0 {
		gi = ignore.CompileIgnoreLines(patterns...)
	}

	var results []string
	for _, name := range names {
		if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, extension) {
			continue
		}
		if gi != nil && gi.MatchesPath(name) {
			continue
		}
		results = append(results, name)
	}
	slices.Sort(results)
	return results, nil
}
