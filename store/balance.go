package store

import (
	"fmt"
	"time"

	"github.com/MixinNetwork/mixin/common"
	"github.com/MixinNetwork/mixin/logger"
	"github.com/MixinNetwork/nexus/economy"
	"github.com/dgraph-io/badger/v3"
)

const keyBalanceSingleton = "BALANCE:SINGLETON"

// ReadBalance persists the initial balance on first use, so a fresh store
// and a reopened one return the same value.
func (bs *BadgerStore) ReadBalance() (*economy.Balance, error) {
	db, err := bs.handle()
	if err != nil {
		return nil, err
	}
	var bal *economy.Balance
	err = db.Update(func(txn *badger.Txn) error {
		b, err := readBalance(txn)
		if err != nil || b != nil {
			bal = b
			return err
		}
		bal = &economy.Balance{
			Amount:    bs.conf.InitialBalance,
			UpdatedAt: time.Now(),
		}
		logger.Printf("BadgerStore.ReadBalance() => initial %d\n", bal.Amount)
		return txn.Set([]byte(keyBalanceSingleton), common.MsgpackMarshalPanic(bal))
	})
	return bal, err
}

func (bs *BadgerStore) WriteBalance(amount uint64) error {
	db, err := bs.handle()
	if err != nil {
		return err
	}
	bal := &economy.Balance{
		Amount:    amount,
		UpdatedAt: time.Now(),
	}
	err = db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyBalanceSingleton), common.MsgpackMarshalPanic(bal))
	})
	if err != nil {
		return fmt.Errorf("%w: balance %v", economy.ErrWriteFailed, err)
	}
	return nil
}

func readBalance(txn *badger.Txn) (*economy.Balance, error) {
	item, err := txn.Get([]byte(keyBalanceSingleton))
	if err == badger.ErrKeyNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}
	var b economy.Balance
	err = common.MsgpackUnmarshal(val, &b)
	return &b, err
}
