// Package graphcycle walks directed graphs depth first, visiting each node once
// and reporting cycles with the path that closes them.
package graphcycle

import (
	"fmt"
	"strings"
)

type visitState uint8

const (
	stateVisiting visitState = iota + 1
	stateDone
)

// CycleError reports a cycle. Path starts and ends with the revisited node.
type CycleError[K comparable] struct {
	Path []K
}

// Error returns the error string.
func (e CycleError[K]) Error() string {
	parts := make([]string, len(e.Path))
	for i, k := range e.Path {
		parts[i] = fmt.Sprint(k)
	}
	return "cycle detected: " + strings.Join(parts, " -> ")
}

// Config configures a traversal.
type Config[K comparable] struct {
	// Next returns the successors of a node. It is called once per node, when
	// the node is first entered.
	Next func(K) ([]K, error)
	// Done is called in post-order, after every successor is done.
	Done func(K) error
	// Known reports nodes completed by an earlier traversal; they are skipped.
	Known  func(K) bool
	Starts []K
}

// Walk visits every node reachable from Starts in post-order and reports the
// first cycle or callback error.
func Walk[K comparable](cfg Config[K]) error {
	if cfg.Next == nil {
		return fmt.Errorf("graph walk: next function is nil")
	}
	states := make(map[K]visitState, len(cfg.Starts))
	var path []K

	var visit func(key K) error
	visit = func(key K) error {
		switch states[key] {
		case stateVisiting:
			return CycleError[K]{Path: append(cyclePath(path, key), key)}
		case stateDone:
			return nil
		}
		if cfg.Known != nil && cfg.Known(key) {
			states[key] = stateDone
			return nil
		}

		states[key] = stateVisiting
		path = append(path, key)
		neighbors, err := cfg.Next(key)
		if err != nil {
			return err
		}
		for _, next := range neighbors {
			if err := visit(next); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		states[key] = stateDone
		if cfg.Done != nil {
			return cfg.Done(key)
		}
		return nil
	}

	for _, start := range cfg.Starts {
		if err := visit(start); err != nil {
			return err
		}
	}
	return nil
}

func cyclePath[K comparable](path []K, key K) []K {
	for i, k := range path {
		if k == key {
			return append([]K(nil), path[i:]...)
		}
	}
	return []K{}
}
