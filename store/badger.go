package store

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/MixinNetwork/nexus/economy"
	"github.com/dgraph-io/badger/v3"
)

const (
	SchemaVersion         = 1
	DefaultInitialBalance = 100

	propertySchemaVersion = "PROPERTY:SCHEMA:VERSION"
)

type Configuration struct {
	Dir            string
	InMemory       bool
	SyncWrites     bool
	InitialBalance uint64
}

type BadgerStore struct {
	sync.Mutex
	conf   *Configuration
	db     *badger.DB
	cancel context.CancelFunc
	gcDone chan struct{}
}

func NewBadger(conf *Configuration) *BadgerStore {
	if conf.InitialBalance == 0 {
		conf.InitialBalance = DefaultInitialBalance
	}
	return &BadgerStore{conf: conf}
}

func OpenBadger(ctx context.Context, conf *Configuration) (*BadgerStore, error) {
	bs := NewBadger(conf)
	return bs, bs.Open(ctx)
}

// Open is a no-op on an already opened store.
func (bs *BadgerStore) Open(ctx context.Context) error {
	bs.Lock()
	defer bs.Unlock()

	if bs.db != nil {
		return nil
	}

	opts := badger.DefaultOptions(bs.conf.Dir)
	if bs.conf.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.WithSyncWrites(bs.conf.SyncWrites).WithLogger(&badgerLogger{})
	db, err := badger.Open(opts)
	if err != nil {
		return fmt.Errorf("%w: %v", economy.ErrStoreUnavailable, err)
	}
	err = checkSchemaVersion(db)
	if err != nil {
		db.Close()
		return fmt.Errorf("%w: %v", economy.ErrStoreUnavailable, err)
	}
	bs.db = db

	gctx, cancel := context.WithCancel(context.Background())
	bs.cancel = cancel
	bs.gcDone = make(chan struct{})
	if bs.conf.InMemory {
		close(bs.gcDone)
	} else {
		go bs.collectGarbage(gctx, db, bs.gcDone)
	}
	logger.Printf("BadgerStore.Open(%s) => schema %d\n", bs.conf.Dir, SchemaVersion)
	return nil
}

func (bs *BadgerStore) Close() error {
	bs.Lock()
	defer bs.Unlock()

	if bs.db == nil {
		return nil
	}
	bs.cancel()
	<-bs.gcDone
	err := bs.db.Close()
	bs.db = nil
	return err
}

func (bs *BadgerStore) Badger() *badger.DB {
	bs.Lock()
	defer bs.Unlock()
	return bs.db
}

func (bs *BadgerStore) collectGarbage(ctx context.Context, db *badger.DB, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Minute):
		}
		lsm, vlog := db.Size()
		logger.Verbosef("Badger LSM %d VLOG %d\n", lsm, vlog)
		if lsm > 1024*1024*8 || vlog > 1024*1024*32 {
			err := db.RunValueLogGC(0.5)
			logger.Printf("Badger RunValueLogGC %v\n", err)
		}
	}
}

func (bs *BadgerStore) WriteProperty(key, val []byte) error {
	db, err := bs.handle()
	if err != nil {
		return err
	}
	err = db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", economy.ErrWriteFailed, err)
	}
	return nil
}

func (bs *BadgerStore) ReadProperty(key []byte) ([]byte, error) {
	db, err := bs.handle()
	if err != nil {
		return nil, err
	}
	txn := db.NewTransaction(false)
	defer txn.Discard()

	return readProperty(txn, key)
}

func (bs *BadgerStore) handle() (*badger.DB, error) {
	db := bs.Badger()
	if db == nil {
		return nil, fmt.Errorf("%w: store not opened", economy.ErrStoreUnavailable)
	}
	return db, nil
}

func readProperty(txn *badger.Txn, key []byte) ([]byte, error) {
	item, err := txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func checkSchemaVersion(db *badger.DB) error {
	return db.Update(func(txn *badger.Txn) error {
		key := []byte(propertySchemaVersion)
		val, err := readProperty(txn, key)
		if err != nil {
			return err
		}
		if val == nil {
			return txn.Set(key, []byte(strconv.Itoa(SchemaVersion)))
		}
		v, err := strconv.Atoi(string(val))
		if err != nil {
			return fmt.Errorf("invalid schema version %q", val)
		}
		if v > SchemaVersion {
			return fmt.Errorf("unsupported schema version %d", v)
		}
		return nil
	})
}
