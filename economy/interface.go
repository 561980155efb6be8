package economy

import (
	"context"
)

type Store interface {
	Open(ctx context.Context) error

	WriteProperty(key, val []byte) error
	ReadProperty(key []byte) ([]byte, error)

	ListCollectibles() ([]*Collectible, error)
	ReadCollectible(id string) (*Collectible, error)
	WriteCollectible(c *Collectible) error

	// ReadBalance materializes and persists the initial balance when absent.
	ReadBalance() (*Balance, error)
	WriteBalance(amount uint64) error
}

type Generator interface {
	Generate(ctx context.Context) (*Attributes, error)
}
