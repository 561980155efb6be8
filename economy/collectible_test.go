package economy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResellValueTable(t *testing.T) {
	expected := map[Rarity]uint64{
		RarityF:     1,
		RarityE:     2,
		RarityD:     3,
		RarityC:     4,
		RarityB:     5,
		RarityA:     10,
		RarityS:     15,
		RaritySPlus: 25,
	}
	for r, v := range expected {
		assert.Equal(t, v, ResellValue(r), string(r))
	}
}

func TestResellValueMonotonic(t *testing.T) {
	for i := 1; i < len(Rarities); i++ {
		lower, higher := Rarities[i-1], Rarities[i]
		assert.Less(t, ResellValue(lower), ResellValue(higher), "%s < %s", lower, higher)
		assert.Less(t, lower.Rank(), higher.Rank())
	}
}

func TestParseRarity(t *testing.T) {
	r, err := ParseRarity("S+")
	require.NoError(t, err)
	assert.Equal(t, RaritySPlus, r)
	assert.Equal(t, 7, r.Rank())

	_, err = ParseRarity("s+")
	assert.Error(t, err)
	_, err = ParseRarity("")
	assert.Error(t, err)
	assert.Equal(t, -1, Rarity("G").Rank())
}

func TestCollectibleVerify(t *testing.T) {
	c := newOwned(RarityD, time.Now())
	assert.NoError(t, c.Verify())
	assert.Equal(t, "owned", c.StatusName())

	c.ImageData = "dGFtcGVyZWQ="
	assert.Error(t, c.Verify())
}

func TestCollectibleCopy(t *testing.T) {
	c := newOwned(RarityD, time.Now())
	cc := c.Copy()
	cc.Status = StatusResold
	assert.Equal(t, StatusOwned, c.Status)
	assert.Equal(t, "resold", cc.StatusName())
}
