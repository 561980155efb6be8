package economy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTwoPhaseWrite(t *testing.T) {
	boom := errors.New("boom")
	ok := func() error { return nil }
	bad := func() error { return boom }

	tests := []struct {
		name    string
		w       *twoPhaseWrite
		outcome int
		undone  bool
		partial bool
	}{
		{"committed", &twoPhaseWrite{first: ok, second: ok}, writeCommitted, false, false},
		{"aborted", &twoPhaseWrite{first: bad}, writeAborted, false, false},
		{"rolled back", &twoPhaseWrite{first: ok, second: bad, undo: ok}, writeRolledBack, true, false},
		{"partial", &twoPhaseWrite{first: ok, second: bad, undo: bad}, writePartial, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var undone bool
			if undo := tt.w.undo; undo != nil {
				tt.w.undo = func() error {
					undone = true
					return undo()
				}
			}
			outcome, err := tt.w.run()
			assert.Equal(t, tt.outcome, outcome)
			assert.Equal(t, tt.undone, undone)
			assert.Equal(t, tt.partial, errors.Is(err, ErrPartiallyApplied))
			if outcome == writeCommitted {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, "boom")
			}
		})
	}
}
