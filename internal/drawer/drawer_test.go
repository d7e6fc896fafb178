package drawer

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededDrawer(seed int64) *fairDrawer {
	return New(&Config{
		Source: rand.New(rand.NewSource(seed)),
	})
}

func TestSelectWinners_Conservation(t *testing.T) {
	d := seededDrawer(42)
	candidates := []string{"u1", "u2", "u3", "u4", "u5"}

	winners, losers, err := d.SelectWinners(candidates, 2)
	require.NoError(t, err)

	assert.Len(t, winners, 2)
	assert.Len(t, losers, 3)

	// Winners and losers together must be exactly the original pool.
	seen := make(map[string]int)
	for _, id := range winners {
		seen[id]++
	}
	for _, id := range losers {
		seen[id]++
	}

	assert.Len(t, seen, len(candidates))
	for _, id := range candidates {
		assert.Equal(t, 1, seen[id], "entrant %s should appear exactly once", id)
	}
}

func TestSelectWinners_CountZero(t *testing.T) {
	d := seededDrawer(1)

	winners, losers, err := d.SelectWinners([]string{"u1", "u2"}, 0)
	require.NoError(t, err)

	assert.Empty(t, winners)
	assert.Len(t, losers, 2)
}

func TestSelectWinners_CountEqualsPool(t *testing.T) {
	d := seededDrawer(1)

	winners, losers, err := d.SelectWinners([]string{"u1", "u2", "u3"}, 3)
	require.NoError(t, err)

	assert.Len(t, winners, 3)
	assert.Empty(t, losers)
}

func TestSelectWinners_NoCandidates(t *testing.T) {
	d := seededDrawer(1)

	_, _, err := d.SelectWinners(nil, 1)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestSelectWinners_InsufficientCandidates(t *testing.T) {
	d := seededDrawer(1)

	_, _, err := d.SelectWinners([]string{"u1", "u2", "u3"}, 5)
	assert.ErrorIs(t, err, ErrInsufficientCandidates)
}

func TestSelectWinners_NegativeCount(t *testing.T) {
	d := seededDrawer(1)

	_, _, err := d.SelectWinners([]string{"u1"}, -1)
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestSelectWinners_DoesNotMutateInput(t *testing.T) {
	d := seededDrawer(7)
	candidates := []string{"u1", "u2", "u3", "u4"}

	_, _, err := d.SelectWinners(candidates, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"u1", "u2", "u3", "u4"}, candidates)
}

// TestSelectWinners_Uniformity draws a single winner many times from a fixed
// pool and checks each candidate's selection frequency against the expected
// 1/n using a chi-square statistic.
func TestSelectWinners_Uniformity(t *testing.T) {
	const (
		poolSize = 5
		trials   = 50000
	)

	d := seededDrawer(1234)

	candidates := make([]string, poolSize)
	for i := range candidates {
		candidates[i] = fmt.Sprintf("u%d", i+1)
	}

	counts := make(map[string]int, poolSize)
	for i := 0; i < trials; i++ {
		winners, _, err := d.SelectWinners(candidates, 1)
		require.NoError(t, err)
		require.Len(t, winners, 1)
		counts[winners[0]]++
	}

	expected := float64(trials) / float64(poolSize)
	chiSquare := 0.0
	for _, id := range candidates {
		diff := float64(counts[id]) - expected
		chiSquare += diff * diff / expected
	}

	// 4 degrees of freedom; critical value at p=0.001 is 18.47. A fair
	// shuffle stays comfortably under it.
	assert.Less(t, chiSquare, 18.47, "selection frequencies diverge from uniform: %v", counts)

	for _, id := range candidates {
		frequency := float64(counts[id]) / float64(trials)
		assert.InDelta(t, 1.0/poolSize, frequency, 0.01, "entrant %s drawn at %f", id, frequency)
	}
}
