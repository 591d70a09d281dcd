package inventory

import (
	"fmt"

	"github.com/huynhanx03/go-pieces/pkg/piece"
)

// Exchange records one positional swap between the queue and the stack.
type Exchange struct {
	Position int         // logical queue position, 0 = front
	Slot     int         // stack slot, 0 = base
	Queued   piece.Piece // piece that was in the queue before the swap
	Reserved piece.Piece // piece that was on the stack before the swap
}

// Outcome is the result of one action. Only the fields relevant to Action are set.
type Outcome struct {
	Action    Action
	Err       error
	Played    piece.Piece // play: piece removed from the queue front
	Reserved  piece.Piece // reserve: piece moved from the queue to the stack
	Used      piece.Piece // use: piece popped from the stack
	Added     piece.Piece // play, reserve: piece generated into the queue back
	Exchanges []Exchange  // swap-one, swap-block
}

// OK reports whether the action was applied.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Message renders the outcome for a player.
func (o Outcome) Message() string {
	if o.Err != nil {
		return "Action failed: " + o.Err.Error()
	}
	switch o.Action {
	case ActionPlay:
		return fmt.Sprintf("Piece %s played. New piece %s added to the back of the queue.", o.Played, o.Added)
	case ActionReserve:
		return fmt.Sprintf("Piece %s reserved (queue -> stack). New piece %s added to the back of the queue.", o.Reserved, o.Added)
	case ActionUse:
		return fmt.Sprintf("Reserved piece %s used.", o.Used)
	case ActionSwapOne:
		x := o.Exchanges[0]
		return fmt.Sprintf("Swapped queue front %s with stack top %s.", x.Queued, x.Reserved)
	case ActionSwapBlock:
		n := len(o.Exchanges)
		return fmt.Sprintf("Swapped the first %d queue pieces with the %d reserved pieces.", n, n)
	default:
		return o.Action.String()
	}
}
