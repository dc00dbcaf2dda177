package dice

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/torneio/internal/dice Roller

// Roller rolls the dice used to break ties between equally skilled participants
type Roller interface {
	Roll(sides int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// roller is safe for concurrent use; Discord handlers run on their own goroutines
type roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *roller {
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return &roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll returns a value in [1, sides]. Fewer than two sides falls back to a six-sided die.
func (r *roller) Roll(sides int) int {
	if sides < 2 {
		sides = 6
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.random.Intn(sides) + 1
}
