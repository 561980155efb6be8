package economy

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MixinNetwork/mixin/logger"
	"golang.org/x/sync/semaphore"
)

const (
	DefaultGenerationCost    = 10
	DefaultGenerationTimeout = 30 * time.Second
)

type Configuration struct {
	GenerationCost    uint64
	GenerationTimeout time.Duration
}

// Economy owns the in-memory mirror of the store. Every mutating intent
// holds the writer permit for its whole duration, so balance read-modify-write
// sequences never interleave.
type Economy struct {
	store     Store
	generator Generator
	conf      *Configuration
	writer    *semaphore.Weighted

	sync.RWMutex
	clock        *Clock
	loaded       bool
	balance      uint64
	collectibles []*Collectible
}

func New(store Store, generator Generator, conf *Configuration) *Economy {
	if conf == nil {
		conf = &Configuration{}
	}
	if conf.GenerationCost == 0 {
		conf.GenerationCost = DefaultGenerationCost
	}
	if conf.GenerationTimeout <= 0 {
		conf.GenerationTimeout = DefaultGenerationTimeout
	}
	return &Economy{
		store:     store,
		generator: generator,
		conf:      conf,
		writer:    semaphore.NewWeighted(1),
	}
}

func (e *Economy) GenerationCost() uint64 {
	return e.conf.GenerationCost
}

// Load opens the store and replaces the mirror with the persisted state.
func (e *Economy) Load(ctx context.Context) *Result {
	err := e.writer.Acquire(ctx, 1)
	if err != nil {
		return fail(e.Balance(), fmt.Errorf("%w: %v", ErrStoreUnavailable, err), "Failed to load app data. Please try again.")
	}
	defer e.writer.Release(1)

	cs, bal, clock, err := e.readAll(ctx)
	if err != nil {
		logger.Printf("Economy.Load() => %v\n", err)
		return fail(0, err, "Failed to load app data. Please try again.")
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i].CreatedAt.After(cs[j].CreatedAt) })

	e.Lock()
	e.clock = clock
	e.loaded = true
	e.balance = bal.Amount
	e.collectibles = cs
	e.Unlock()

	logger.Verbosef("Economy.Load() => %d collectibles, balance %d\n", len(cs), bal.Amount)
	return succeed(bal.Amount, nil, fmt.Sprintf("Loaded %d collectibles.", len(cs)))
}

func (e *Economy) readAll(ctx context.Context) ([]*Collectible, *Balance, *Clock, error) {
	err := e.store.Open(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	cs, err := e.store.ListCollectibles()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	bal, err := e.store.ReadBalance()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	clock, err := NewClock(e.store)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return cs, bal, clock, nil
}

// Reset drops the mirror, a later Load is required before any intent.
// It waits for the intent in flight to finish.
func (e *Economy) Reset(ctx context.Context) error {
	err := e.writer.Acquire(ctx, 1)
	if err != nil {
		return err
	}
	defer e.writer.Release(1)

	e.Lock()
	defer e.Unlock()

	e.clock = nil
	e.loaded = false
	e.balance = 0
	e.collectibles = nil
	return nil
}

func (e *Economy) loadedClock() *Clock {
	e.RLock()
	defer e.RUnlock()
	if !e.loaded {
		return nil
	}
	return e.clock
}

func (e *Economy) Loaded() bool {
	e.RLock()
	defer e.RUnlock()
	return e.loaded
}

func (e *Economy) Balance() uint64 {
	e.RLock()
	defer e.RUnlock()
	return e.balance
}

// Snapshot returns copies of the mirrored collectibles, most recent first.
func (e *Economy) Snapshot() []*Collectible {
	e.RLock()
	defer e.RUnlock()

	cs := make([]*Collectible, len(e.collectibles))
	for i, c := range e.collectibles {
		cs[i] = c.Copy()
	}
	return cs
}

// Score is 5 per owned and 1 per resold collectible.
func (e *Economy) Score() int {
	e.RLock()
	defer e.RUnlock()

	var score int
	for _, c := range e.collectibles {
		switch c.Status {
		case StatusOwned:
			score += 5
		case StatusResold:
			score += 1
		}
	}
	return score
}

// Find returns a copy of the mirrored collectible, nil when unknown.
func (e *Economy) Find(id string) *Collectible {
	e.RLock()
	defer e.RUnlock()

	for _, c := range e.collectibles {
		if c.Id == id {
			return c.Copy()
		}
	}
	return nil
}

func (e *Economy) setBalance(amount uint64) {
	e.Lock()
	defer e.Unlock()
	e.balance = amount
}

func (e *Economy) prepend(c *Collectible) {
	e.Lock()
	defer e.Unlock()
	e.collectibles = append([]*Collectible{c}, e.collectibles...)
}

func (e *Economy) replace(c *Collectible, balance uint64) {
	e.Lock()
	defer e.Unlock()

	for i, old := range e.collectibles {
		if old.Id == c.Id {
			e.collectibles[i] = c
		}
	}
	e.balance = balance
}
