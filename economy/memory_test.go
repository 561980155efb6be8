package economy

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// memoryStore is a Store whose writes can be made to fail on demand. Each
// queued error is consumed by one write call, nil lets the write through.
type memoryStore struct {
	sync.Mutex
	openErr      error
	props        map[string][]byte
	collectibles map[string]*Collectible
	balance      *Balance
	initial      uint64

	balanceErrs     []error
	collectibleErrs []error
}

func newMemoryStore(initial uint64) *memoryStore {
	return &memoryStore{
		props:        make(map[string][]byte),
		collectibles: make(map[string]*Collectible),
		initial:      initial,
	}
}

func (ms *memoryStore) Open(ctx context.Context) error {
	return ms.openErr
}

func (ms *memoryStore) WriteProperty(key, val []byte) error {
	ms.Lock()
	defer ms.Unlock()
	ms.props[string(key)] = append([]byte{}, val...)
	return nil
}

func (ms *memoryStore) ReadProperty(key []byte) ([]byte, error) {
	ms.Lock()
	defer ms.Unlock()
	return ms.props[string(key)], nil
}

func (ms *memoryStore) ListCollectibles() ([]*Collectible, error) {
	ms.Lock()
	defer ms.Unlock()

	cs := []*Collectible{}
	for _, c := range ms.collectibles {
		cs = append(cs, c.Copy())
	}
	return cs, nil
}

func (ms *memoryStore) ReadCollectible(id string) (*Collectible, error) {
	ms.Lock()
	defer ms.Unlock()

	c := ms.collectibles[id]
	if c == nil {
		return nil, nil
	}
	return c.Copy(), nil
}

func (ms *memoryStore) WriteCollectible(c *Collectible) error {
	ms.Lock()
	defer ms.Unlock()

	if len(ms.collectibleErrs) > 0 {
		err := ms.collectibleErrs[0]
		ms.collectibleErrs = ms.collectibleErrs[1:]
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWriteFailed, err)
		}
	}
	ms.collectibles[c.Id] = c.Copy()
	return nil
}

func (ms *memoryStore) ReadBalance() (*Balance, error) {
	ms.Lock()
	defer ms.Unlock()

	if ms.balance == nil {
		ms.balance = &Balance{Amount: ms.initial, UpdatedAt: time.Now()}
	}
	b := *ms.balance
	return &b, nil
}

func (ms *memoryStore) WriteBalance(amount uint64) error {
	ms.Lock()
	defer ms.Unlock()

	if len(ms.balanceErrs) > 0 {
		err := ms.balanceErrs[0]
		ms.balanceErrs = ms.balanceErrs[1:]
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWriteFailed, err)
		}
	}
	ms.balance = &Balance{Amount: amount, UpdatedAt: time.Now()}
	return nil
}

func (ms *memoryStore) failBalance(errs ...error) {
	ms.Lock()
	defer ms.Unlock()
	ms.balanceErrs = append(ms.balanceErrs, errs...)
}

func (ms *memoryStore) failCollectible(errs ...error) {
	ms.Lock()
	defer ms.Unlock()
	ms.collectibleErrs = append(ms.collectibleErrs, errs...)
}

func (ms *memoryStore) put(c *Collectible) {
	ms.Lock()
	defer ms.Unlock()
	ms.collectibles[c.Id] = c.Copy()
}

type stubGenerator struct {
	attrs *Attributes
	err   error
	wait  chan struct{}
	calls int32
}

func (g *stubGenerator) Generate(ctx context.Context) (*Attributes, error) {
	atomic.AddInt32(&g.calls, 1)
	if g.wait != nil {
		select {
		case <-g.wait:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if g.err != nil {
		return nil, g.err
	}
	a := *g.attrs
	return &a, nil
}

func (g *stubGenerator) Calls() int {
	return int(atomic.LoadInt32(&g.calls))
}
