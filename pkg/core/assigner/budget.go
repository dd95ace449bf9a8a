package assigner

import (
	"errors"
	"time"

	"github.com/datasquad/roomcheck/pkg/core/model"
)

// ErrBudgetExhausted is returned by TryConsume when the shift cannot fit
// another room check.
var ErrBudgetExhausted = errors.New("shift budget exhausted")

// ShiftBudget tracks the remaining check time in one shift. It is owned by
// a single shift's assignment pass and discarded afterwards.
type ShiftBudget struct {
	checkDuration time.Duration
	remaining     time.Duration
	next          time.Time
	shiftEnd      time.Time
}

// NewShiftBudget builds a budget for the shift. Usable time is the shift
// duration minus the buffer; the first check is scheduled at
// shift start + buffer.
func NewShiftBudget(shift model.Shift, buffer, checkDuration time.Duration) *ShiftBudget {
	return &ShiftBudget{
		checkDuration: checkDuration,
		remaining:     shift.Duration() - buffer,
		next:          shift.Start.Add(buffer),
		shiftEnd:      shift.End,
	}
}

// Peek returns the timestamp the next check would be scheduled at,
// without consuming budget.
func (b *ShiftBudget) Peek() time.Time {
	return b.next
}

// ShiftEnd returns the owning shift's end time, the bound for any
// scheduled check interval.
func (b *ShiftBudget) ShiftEnd() time.Time {
	return b.shiftEnd
}

// CanConsume reports whether another check still fits.
func (b *ShiftBudget) CanConsume() bool {
	return b.remaining >= b.checkDuration
}

// TryConsume reserves one check duration and returns the scheduled check
// timestamp, or ErrBudgetExhausted when no full check fits anymore.
func (b *ShiftBudget) TryConsume() (time.Time, error) {
	if !b.CanConsume() {
		return time.Time{}, ErrBudgetExhausted
	}
	at := b.next
	b.remaining -= b.checkDuration
	b.next = b.next.Add(b.checkDuration)
	return at, nil
}
