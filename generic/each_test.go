package generic

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestParallelEachCollectsByIndex(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	results := make([]int, len(items))
	err := ParallelEach(items, func(i int, item int) error {
		results[i] = item * 2
		return nil
	})
	require.NoError(t, err)

	for i, got := range results {
		require.Equal(t, i*2, got)
	}
}

func TestParallelEachReturnsError(t *testing.T) {
	items := []string{"a", "b", "c"}
	err := ParallelEach(items, func(i int, item string) error {
		if item == "b" {
			return errors.Errorf("item %d failed", i)
		}
		return nil
	})
	require.EqualError(t, err, "item 1 failed")
}

func TestParallelEachEmpty(t *testing.T) {
	require.NoError(t, ParallelEach(nil, func(int, struct{}) error { return nil }))
}
