package generator

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"sync"

	"github.com/MixinNetwork/nexus/economy"
)

const imageSize = 16

var (
	rarityWeights = map[economy.Rarity]int{
		economy.RarityF:     30,
		economy.RarityE:     22,
		economy.RarityD:     16,
		economy.RarityC:     12,
		economy.RarityB:     9,
		economy.RarityA:     6,
		economy.RarityS:     4,
		economy.RaritySPlus: 1,
	}

	rarityPalette = map[economy.Rarity]color.RGBA{
		economy.RarityF:     {0x6b, 0x72, 0x80, 0xff},
		economy.RarityE:     {0x9c, 0xa3, 0xaf, 0xff},
		economy.RarityD:     {0x1e, 0x3a, 0x8a, 0xff},
		economy.RarityC:     {0x14, 0x53, 0x2d, 0xff},
		economy.RarityB:     {0x58, 0x1c, 0x87, 0xff},
		economy.RarityA:     {0x71, 0x3f, 0x12, 0xff},
		economy.RarityS:     {0x7c, 0x2d, 0x12, 0xff},
		economy.RaritySPlus: {0xdb, 0x27, 0x77, 0xff},
	}

	namePrefixes = []string{"Vol", "Neo", "Zap", "Glim", "Pyr", "Aqu", "Ter", "Lum", "Cryo", "Vex"}
	nameSuffixes = []string{"tar", "mon", "zard", "lix", "byte", "fang", "wing", "orb", "gon", "ra"}
)

// LocalGenerator mints collectibles without any remote service, with a
// weighted rarity and a small symmetric sprite as the image.
type LocalGenerator struct {
	sync.Mutex
	rand *rand.Rand
}

func NewLocal(seed int64) *LocalGenerator {
	return &LocalGenerator{rand: rand.New(rand.NewSource(seed))}
}

func (g *LocalGenerator) Generate(ctx context.Context) (*economy.Attributes, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.Lock()
	defer g.Unlock()

	rarity := g.pickRarity()
	name := namePrefixes[g.rand.Intn(len(namePrefixes))] + nameSuffixes[g.rand.Intn(len(nameSuffixes))]
	img, err := g.renderSprite(rarityPalette[rarity])
	if err != nil {
		return nil, err
	}
	return &economy.Attributes{
		Name:      name,
		Rarity:    rarity,
		ImageData: img,
	}, nil
}

func (g *LocalGenerator) pickRarity() economy.Rarity {
	var total int
	for _, r := range economy.Rarities {
		total += rarityWeights[r]
	}
	n := g.rand.Intn(total)
	for _, r := range economy.Rarities {
		n -= rarityWeights[r]
		if n < 0 {
			return r
		}
	}
	return economy.RarityF
}

func (g *LocalGenerator) renderSprite(fg color.RGBA) (string, error) {
	img := image.NewRGBA(image.Rect(0, 0, imageSize, imageSize))
	for y := 0; y < imageSize; y++ {
		for x := 0; x < imageSize/2; x++ {
			c := color.RGBA{0x11, 0x18, 0x27, 0xff}
			if g.rand.Intn(2) == 0 {
				c = fg
			}
			img.SetRGBA(x, y, c)
			img.SetRGBA(imageSize-1-x, y, c)
		}
	}
	var buf bytes.Buffer
	err := png.Encode(&buf, img)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
