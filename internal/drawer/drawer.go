package drawer

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_drawer.go github.com/eventpool/lottery/internal/drawer Drawer

// Drawer selects lottery winners uniformly at random from a candidate pool
type Drawer interface {
	// SelectWinners picks count winners from candidates without replacement.
	// The remaining candidates are returned as losers.
	SelectWinners(candidates []string, count int) (winners []string, losers []string, err error)
}

// Selection errors
var (
	// ErrNoCandidates is returned when the candidate pool is empty
	ErrNoCandidates = errors.New("no candidates to draw from")

	// ErrInsufficientCandidates is returned when count exceeds the pool size
	ErrInsufficientCandidates = errors.New("not enough candidates for requested count")

	// ErrInvalidCount is returned when count is negative
	ErrInvalidCount = errors.New("count cannot be negative")
)

// Source produces random integers for the shuffle. The default source is
// backed by crypto/rand; tests inject a seeded math/rand.Rand, which
// satisfies this interface directly.
type Source interface {
	Intn(n int) int
}

// Config for the drawer
type Config struct {
	// Optional source override for testing
	Source Source
}

// fairDrawer implements Drawer using a uniform shuffle
type fairDrawer struct {
	source Source
}

// New creates a new drawer. With a nil config or source it draws from a
// cryptographically secure source, so results cannot be predicted or
// manipulated by anyone observing prior draws.
func New(cfg *Config) *fairDrawer {
	var source Source
	if cfg != nil && cfg.Source != nil {
		source = cfg.Source
	} else {
		source = &cryptoSource{}
	}

	return &fairDrawer{
		source: source,
	}
}

// SelectWinners shuffles the candidate pool with Fisher-Yates and takes the
// first count entries, which makes every subset of size count equally likely.
func (d *fairDrawer) SelectWinners(candidates []string, count int) ([]string, []string, error) {
	if count < 0 {
		return nil, nil, ErrInvalidCount
	}

	if len(candidates) == 0 {
		return nil, nil, ErrNoCandidates
	}

	if count > len(candidates) {
		return nil, nil, fmt.Errorf("%w: requested %d from pool of %d", ErrInsufficientCandidates, count, len(candidates))
	}

	shuffled := make([]string, len(candidates))
	copy(shuffled, candidates)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := d.source.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	winners := make([]string, count)
	copy(winners, shuffled[:count])

	losers := make([]string, len(shuffled)-count)
	copy(losers, shuffled[count:])

	return winners, losers, nil
}

// cryptoSource implements Source over crypto/rand
type cryptoSource struct{}

// Intn returns a uniform random int in [0, n).
func (s *cryptoSource) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails if the OS entropy source is broken,
		// at which point no draw should proceed.
		panic(fmt.Sprintf("secure random source failed: %v", err))
	}
	return int(v.Int64())
}
