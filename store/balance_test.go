package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBalanceMaterializesDefault(t *testing.T) {
	dir := t.TempDir()
	bs := openTestStore(t, dir)

	bal, err := bs.ReadBalance()
	require.NoError(t, err)
	assert.Equal(t, uint64(DefaultInitialBalance), bal.Amount)

	raw, err := bs.ReadProperty([]byte(keyBalanceSingleton))
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}

func TestWriteBalanceSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	bs := openTestStore(t, dir)
	require.NoError(t, bs.WriteBalance(42))
	require.NoError(t, bs.Close())

	bs = openTestStore(t, dir)
	bal, err := bs.ReadBalance()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), bal.Amount)
}

func TestWriteBalanceZeroIsKept(t *testing.T) {
	bs := openTestStore(t, t.TempDir())
	require.NoError(t, bs.WriteBalance(0))

	bal, err := bs.ReadBalance()
	require.NoError(t, err)
	assert.Zero(t, bal.Amount)
}
