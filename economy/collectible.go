package economy

import (
	"fmt"
	"time"

	"github.com/MixinNetwork/mixin/crypto"
)

const (
	StatusOwned  = 10
	StatusResold = 11
)

type Rarity string

const (
	RarityF     Rarity = "F"
	RarityE     Rarity = "E"
	RarityD     Rarity = "D"
	RarityC     Rarity = "C"
	RarityB     Rarity = "B"
	RarityA     Rarity = "A"
	RarityS     Rarity = "S"
	RaritySPlus Rarity = "S+"
)

// Rarities lists every tier from lowest to highest.
var Rarities = []Rarity{RarityF, RarityE, RarityD, RarityC, RarityB, RarityA, RarityS, RaritySPlus}

func ParseRarity(s string) (Rarity, error) {
	r := Rarity(s)
	if r.Rank() < 0 {
		return "", fmt.Errorf("invalid rarity %q", s)
	}
	return r, nil
}

// Rank is the position of the tier in Rarities, or -1 for an unknown tier.
func (r Rarity) Rank() int {
	for i, t := range Rarities {
		if t == r {
			return i
		}
	}
	return -1
}

// ResellValue is the number of tokens credited when a collectible of the
// given rarity is resold.
func ResellValue(r Rarity) uint64 {
	switch r {
	case RaritySPlus:
		return 25
	case RarityS:
		return 15
	case RarityA:
		return 10
	case RarityB:
		return 5
	case RarityC:
		return 4
	case RarityD:
		return 3
	case RarityE:
		return 2
	}
	return 1
}

// Attributes is what a Generator mints, before the economy assigns identity.
type Attributes struct {
	Name      string
	Rarity    Rarity
	ImageData string
}

type Collectible struct {
	Id          string
	Name        string
	Rarity      Rarity
	ImageData   string
	Status      int
	CreatedAt   time.Time
	ContentHash crypto.Hash
}

func (c *Collectible) StatusName() string {
	switch c.Status {
	case StatusOwned:
		return "owned"
	case StatusResold:
		return "resold"
	}
	panic(c.Status)
}

// Verify checks the image payload against the hash recorded at mint.
func (c *Collectible) Verify() error {
	if crypto.NewHash([]byte(c.ImageData)) != c.ContentHash {
		return fmt.Errorf("collectible %s content hash mismatch", c.Id)
	}
	return nil
}

func (c *Collectible) Copy() *Collectible {
	cc := *c
	return &cc
}

type Balance struct {
	Amount    uint64
	UpdatedAt time.Time
}
