package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MixinNetwork/mixin/crypto"
	"github.com/MixinNetwork/nexus/economy"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, dir string) *BadgerStore {
	bs, err := OpenBadger(context.Background(), &Configuration{Dir: dir})
	require.NoError(t, err)
	t.Cleanup(func() { bs.Close() })
	return bs
}

func testCollectible(name string, r economy.Rarity, createdAt time.Time) *economy.Collectible {
	img := "aW1n:" + name
	return &economy.Collectible{
		Id:          uuid.Must(uuid.NewV4()).String(),
		Name:        name,
		Rarity:      r,
		ImageData:   img,
		Status:      economy.StatusOwned,
		CreatedAt:   createdAt,
		ContentHash: crypto.NewHash([]byte(img)),
	}
}

func TestOpenIdempotent(t *testing.T) {
	bs := openTestStore(t, t.TempDir())
	db := bs.Badger()
	require.NoError(t, bs.Open(context.Background()))
	assert.Same(t, db, bs.Badger())

	gcDone := bs.gcDone
	require.NoError(t, bs.Close())
	require.NoError(t, bs.Close())
	assert.Nil(t, bs.Badger())

	select {
	case <-gcDone:
	default:
		t.Fatal("garbage collection still running after Close")
	}
}

func TestOpenUnavailable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	_, err := OpenBadger(context.Background(), &Configuration{Dir: path})
	assert.ErrorIs(t, err, economy.ErrStoreUnavailable)
}

func TestNotOpened(t *testing.T) {
	bs := NewBadger(&Configuration{Dir: t.TempDir()})

	_, err := bs.ReadBalance()
	assert.ErrorIs(t, err, economy.ErrStoreUnavailable)
	err = bs.WriteBalance(1)
	assert.ErrorIs(t, err, economy.ErrStoreUnavailable)
	_, err = bs.ListCollectibles()
	assert.ErrorIs(t, err, economy.ErrStoreUnavailable)
}

func TestSchemaVersion(t *testing.T) {
	dir := t.TempDir()
	bs, err := OpenBadger(context.Background(), &Configuration{Dir: dir})
	require.NoError(t, err)
	val, err := bs.ReadProperty([]byte(propertySchemaVersion))
	require.NoError(t, err)
	assert.Equal(t, "1", string(val))

	require.NoError(t, bs.WriteProperty([]byte(propertySchemaVersion), []byte("2")))
	require.NoError(t, bs.Close())

	_, err = OpenBadger(context.Background(), &Configuration{Dir: dir})
	assert.ErrorIs(t, err, economy.ErrStoreUnavailable)
	assert.ErrorContains(t, err, "unsupported schema version 2")
}

func TestInMemory(t *testing.T) {
	bs, err := OpenBadger(context.Background(), &Configuration{InMemory: true, InitialBalance: 7})
	require.NoError(t, err)
	defer bs.Close()

	bal, err := bs.ReadBalance()
	require.NoError(t, err)
	assert.Equal(t, uint64(7), bal.Amount)
}

func TestProperties(t *testing.T) {
	bs := openTestStore(t, t.TempDir())

	val, err := bs.ReadProperty([]byte("missing"))
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, bs.WriteProperty([]byte("k"), []byte("v")))
	val, err = bs.ReadProperty([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)
}
