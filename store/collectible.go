package store

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/MixinNetwork/mixin/common"
	"github.com/MixinNetwork/nexus/economy"
	"github.com/dgraph-io/badger/v3"
)

const (
	prefixCollectiblePayload = "COLLECTIBLES:PAYLOAD:"
	prefixCollectibleCreated = "COLLECTIBLES:CREATED:"
)

func (bs *BadgerStore) WriteCollectible(c *economy.Collectible) error {
	db, err := bs.handle()
	if err != nil {
		return err
	}
	err = db.Update(func(txn *badger.Txn) error {
		old, err := bs.readCollectible(txn, c.Id)
		if err != nil {
			return err
		}
		if old != nil {
			err = checkImmutable(old, c)
			if err != nil {
				return err
			}
		}
		key := []byte(prefixCollectiblePayload + c.Id)
		val := common.MsgpackMarshalPanic(c)
		err = txn.Set(key, val)
		if err != nil {
			return err
		}
		return txn.Set(buildCollectibleCreatedKey(c), []byte{1})
	})
	if err != nil {
		return fmt.Errorf("%w: collectible %s %v", economy.ErrWriteFailed, c.Id, err)
	}
	return nil
}

func (bs *BadgerStore) ReadCollectible(id string) (*economy.Collectible, error) {
	db, err := bs.handle()
	if err != nil {
		return nil, err
	}
	txn := db.NewTransaction(false)
	defer txn.Discard()

	return bs.readCollectible(txn, id)
}

// ListCollectibles returns every collectible in creation order.
func (bs *BadgerStore) ListCollectibles() ([]*economy.Collectible, error) {
	db, err := bs.handle()
	if err != nil {
		return nil, err
	}
	txn := db.NewTransaction(false)
	defer txn.Discard()

	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = []byte(prefixCollectibleCreated)
	it := txn.NewIterator(opts)
	defer it.Close()

	cs := []*economy.Collectible{}
	for it.Seek(opts.Prefix); it.Valid(); it.Next() {
		key := it.Item().Key()
		id := string(key[len(opts.Prefix)+8:])
		c, err := bs.readCollectible(txn, id)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, fmt.Errorf("collectible %s indexed without payload", id)
		}
		cs = append(cs, c)
	}
	return cs, nil
}

func (bs *BadgerStore) readCollectible(txn *badger.Txn, id string) (*economy.Collectible, error) {
	key := []byte(prefixCollectiblePayload + id)
	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	var c economy.Collectible
	err = common.MsgpackUnmarshal(val, &c)
	if err != nil {
		return nil, err
	}
	return &c, c.Verify()
}

func checkImmutable(old, c *economy.Collectible) error {
	switch {
	case old.Name != c.Name:
	case old.Rarity != c.Rarity:
	case old.ContentHash != c.ContentHash:
	case !old.CreatedAt.Equal(c.CreatedAt):
	default:
		return nil
	}
	return fmt.Errorf("collectible %s immutable attributes changed", c.Id)
}

func buildCollectibleCreatedKey(c *economy.Collectible) []byte {
	key := append([]byte(prefixCollectibleCreated), tsToBytes(c.CreatedAt)...)
	return append(key, []byte(c.Id)...)
}

func tsToBytes(ts time.Time) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(ts.UnixNano()))
}
