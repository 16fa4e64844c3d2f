package graphcycle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkPostOrder(t *testing.T) {
	graph := map[string][]string{
		"a": {"b", "c"},
		"b": {"d"},
		"c": {"d"},
		"d": nil,
	}
	var order []string
	calls := map[string]int{}
	err := Walk(Config[string]{
		Starts: []string{"a"},
		Next: func(n string) ([]string, error) {
			calls[n]++
			return graph[n], nil
		},
		Done: func(n string) error {
			order = append(order, n)
			return nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "b", "c", "a"}, order)
	for n, c := range calls {
		assert.Equal(t, 1, c, "node %s expanded more than once", n)
	}
}

func TestWalkCyclePath(t *testing.T) {
	graph := map[int][]int{
		1: {2},
		2: {3},
		3: {2},
	}
	err := Walk(Config[int]{
		Starts: []int{1},
		Next:   func(n int) ([]int, error) { return graph[n], nil },
	})
	require.Error(t, err)

	var cycleErr CycleError[int]
	require.True(t, errors.As(err, &cycleErr), "error type %T", err)
	assert.Equal(t, []int{2, 3, 2}, cycleErr.Path)
	assert.Equal(t, "cycle detected: 2 -> 3 -> 2", err.Error())
}

func TestWalkSelfLoop(t *testing.T) {
	err := Walk(Config[string]{
		Starts: []string{"x"},
		Next:   func(string) ([]string, error) { return []string{"x"}, nil },
	})
	var cycleErr CycleError[string]
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, []string{"x", "x"}, cycleErr.Path)
}

func TestWalkKnownNodesSkipped(t *testing.T) {
	graph := map[string][]string{"a": {"b"}, "b": {"c"}}
	var expanded []string
	err := Walk(Config[string]{
		Starts: []string{"a"},
		Known:  func(n string) bool { return n == "b" },
		Next: func(n string) ([]string, error) {
			expanded = append(expanded, n)
			return graph[n], nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, expanded)
}

func TestWalkPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	err := Walk(Config[int]{
		Starts: []int{1},
		Next:   func(int) ([]int, error) { return nil, boom },
	})
	require.ErrorIs(t, err, boom)

	err = Walk(Config[int]{
		Starts: []int{1},
		Next:   func(int) ([]int, error) { return nil, nil },
		Done:   func(int) error { return boom },
	})
	require.ErrorIs(t, err, boom)
}

func TestWalkNilNext(t *testing.T) {
	require.Error(t, Walk(Config[int]{Starts: []int{1}}))
}
