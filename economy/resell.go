package economy

import (
	"context"
	"fmt"

	"github.com/MixinNetwork/mixin/logger"
)

// Resell marks an owned collectible resold and credits its resell value.
// The status flip is written first and undone when the credit cannot be
// written, the mirror only follows what the store ends up holding.
func (e *Economy) Resell(ctx context.Context, id string) *Result {
	err := e.writer.Acquire(ctx, 1)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrResellFailed, err)
		return fail(e.Balance(), err, fmt.Sprintf("Failed to resell collectible: %v", err))
	}
	defer e.writer.Release(1)

	if !e.Loaded() {
		return fail(0, fmt.Errorf("%w: economy not loaded", ErrStoreUnavailable), "Failed to load app data. Please try again.")
	}

	balance := e.Balance()
	owned := e.Find(id)
	if owned == nil {
		return fail(balance, fmt.Errorf("%w: %s", ErrNotFound, id), "Could not find the collectible to resell.")
	}
	if owned.Status != StatusOwned {
		err := fmt.Errorf("%w: %s already resold", ErrNotFound, id)
		return reject(balance, err, fmt.Sprintf("%s has already been resold.", owned.Name))
	}

	credit := ResellValue(owned.Rarity)
	credited := balance + credit
	resold := owned.Copy()
	resold.Status = StatusResold

	w := &twoPhaseWrite{
		first: func() error {
			return e.store.WriteCollectible(resold)
		},
		second: func() error {
			return e.store.WriteBalance(credited)
		},
		undo: func() error {
			return e.store.WriteCollectible(owned)
		},
	}

	outcome, err := w.run()
	switch outcome {
	case writeCommitted:
		e.replace(resold, credited)
		logger.Verbosef("Economy.Resell(%s) => +%d\n", id, credit)
		msg := fmt.Sprintf("%s resold successfully! You gained %d tokens.", resold.Name, credit)
		return succeed(credited, resold.Copy(), msg)
	case writePartial:
		e.replace(resold, balance)
		logger.Printf("Economy.Resell(%s) credit of %d not persisted => %v\n", id, credit, err)
		msg := fmt.Sprintf("%s was marked resold but the %d token credit could not be saved: %v", resold.Name, credit, err)
		return fail(balance, err, msg)
	}
	logger.Printf("Economy.Resell(%s) => %v\n", id, err)
	err = fmt.Errorf("%w: %w", ErrResellFailed, err)
	return fail(balance, err, fmt.Sprintf("Failed to resell collectible: %v", err))
}
