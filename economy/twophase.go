package economy

import "fmt"

const (
	writeCommitted = iota
	writeAborted
	writeRolledBack
	writePartial
)

// twoPhaseWrite sequences two store writes that have no shared transaction.
// When the second write fails the first is undone; when the undo fails too
// the outcome is writePartial and the error wraps ErrPartiallyApplied.
type twoPhaseWrite struct {
	first  func() error
	second func() error
	undo   func() error
}

func (w *twoPhaseWrite) run() (int, error) {
	err := w.first()
	if err != nil {
		return writeAborted, err
	}
	err = w.second()
	if err == nil {
		return writeCommitted, nil
	}
	uerr := w.undo()
	if uerr != nil {
		return writePartial, fmt.Errorf("%w: %v, compensation %v", ErrPartiallyApplied, err, uerr)
	}
	return writeRolledBack, err
}
