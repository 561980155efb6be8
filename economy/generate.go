package economy

import (
	"context"
	"errors"
	"fmt"

	"github.com/MixinNetwork/mixin/crypto"
	"github.com/MixinNetwork/mixin/logger"
	"github.com/gofrs/uuid"
)

// Generate debits the generation cost before calling the generator, so the
// tokens are reserved while the call is in flight. Any failure after the
// debit refunds it in both the store and the mirror.
func (e *Economy) Generate(ctx context.Context) *Result {
	err := e.writer.Acquire(ctx, 1)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrGenerationFailed, err)
		return fail(e.Balance(), err, fmt.Sprintf("Failed to generate collectible: %v. No tokens were spent.", err))
	}
	defer e.writer.Release(1)

	clock := e.loadedClock()
	if clock == nil {
		return fail(0, fmt.Errorf("%w: economy not loaded", ErrStoreUnavailable), "Failed to load app data. Please try again.")
	}

	cost := e.conf.GenerationCost
	prior := e.Balance()
	if prior < cost {
		msg := fmt.Sprintf("You need %d tokens to generate a collectible. Current balance: %d.", cost, prior)
		return reject(prior, ErrInsufficientFunds, msg)
	}
	reserved := prior - cost

	var minted *Collectible
	w := &twoPhaseWrite{
		first: func() error {
			err := e.store.WriteBalance(reserved)
			if err != nil {
				return err
			}
			e.setBalance(reserved)
			return nil
		},
		second: func() error {
			c, err := e.mint(ctx, clock)
			minted = c
			return err
		},
		undo: func() error {
			return e.store.WriteBalance(prior)
		},
	}

	outcome, err := w.run()
	switch outcome {
	case writeCommitted:
		e.prepend(minted)
		logger.Verbosef("Economy.Generate() => %s %s %s\n", minted.Id, minted.Name, minted.Rarity)
		msg := fmt.Sprintf("Awesome! You generated a new collectible: %s (%s)!", minted.Name, minted.Rarity)
		return succeed(reserved, minted.Copy(), msg)
	case writeAborted:
		logger.Printf("Economy.Generate() reserve => %v\n", err)
		err = fmt.Errorf("%w: %w", ErrGenerationFailed, err)
		return fail(prior, err, fmt.Sprintf("Failed to generate collectible: %v. No tokens were spent.", err))
	case writeRolledBack:
		e.setBalance(prior)
		logger.Printf("Economy.Generate() refunded %d => %v\n", cost, err)
		msg := fmt.Sprintf("Failed to generate collectible: %v. Tokens refunded.", err)
		return fail(prior, fmt.Errorf("%w: %w", ErrGenerationFailed, err), msg)
	}
	logger.Printf("Economy.Generate() refund of %d not persisted => %v\n", cost, err)
	msg := fmt.Sprintf("Failed to generate collectible and the refund of %d tokens could not be saved: %v", cost, err)
	return fail(reserved, err, msg)
}

func (e *Economy) mint(ctx context.Context, clock *Clock) (*Collectible, error) {
	gctx, cancel := context.WithTimeout(ctx, e.conf.GenerationTimeout)
	defer cancel()

	attrs, err := e.generator.Generate(gctx)
	if errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("generator timed out after %s", e.conf.GenerationTimeout)
	} else if err != nil {
		return nil, err
	}
	if attrs == nil || attrs.Name == "" {
		return nil, fmt.Errorf("generator returned no collectible")
	}
	if attrs.Rarity.Rank() < 0 {
		return nil, fmt.Errorf("generator returned invalid rarity %q", attrs.Rarity)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	old, err := e.store.ReadCollectible(id.String())
	if err != nil {
		return nil, err
	} else if old != nil {
		return nil, fmt.Errorf("collectible id %s already exists", id)
	}

	ts, err := clock.Now()
	if err != nil {
		return nil, err
	}

	c := &Collectible{
		Id:          id.String(),
		Name:        attrs.Name,
		Rarity:      attrs.Rarity,
		ImageData:   attrs.ImageData,
		Status:      StatusOwned,
		CreatedAt:   ts,
		ContentHash: crypto.NewHash([]byte(attrs.ImageData)),
	}
	return c, e.store.WriteCollectible(c)
}
