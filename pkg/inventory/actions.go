package inventory

import (
	"fmt"

	"github.com/huynhanx03/go-pieces/pkg/common/apperr"
	"github.com/huynhanx03/go-pieces/pkg/datastructs/stack"
	"github.com/huynhanx03/go-pieces/pkg/piece"
)

// Perform dispatches a to the matching action. Unknown actions fail with
// CodePreconditionFailed and change nothing.
func (inv *Inventory) Perform(a Action) Outcome {
	switch a {
	case ActionPlay:
		return inv.Play()
	case ActionReserve:
		return inv.Reserve()
	case ActionUse:
		return inv.Use()
	case ActionSwapOne:
		return inv.SwapOne()
	case ActionSwapBlock:
		return inv.SwapBlock()
	default:
		return Outcome{
			Action: a,
			Err:    apperr.MapError(a.String(), ErrUnknownAction, apperr.CodePreconditionFailed, apperr.MsgFailed),
		}
	}
}

// Play removes the front piece and refills the queue with a new one.
func (inv *Inventory) Play() Outcome {
	return inv.record(inv.play())
}

// Reserve moves the front piece onto the stack and refills the queue.
func (inv *Inventory) Reserve() Outcome {
	return inv.record(inv.reserve())
}

// Use pops the top of the stack. The queue is untouched.
func (inv *Inventory) Use() Outcome {
	return inv.record(inv.use())
}

// SwapOne exchanges the queue front with the stack top in place.
func (inv *Inventory) SwapOne() Outcome {
	return inv.record(inv.swapOne())
}

// SwapBlock exchanges the oldest StackCap queue pieces with the stack
// pieces, base to top, position for position.
func (inv *Inventory) SwapBlock() Outcome {
	return inv.record(inv.swapBlock())
}

func (inv *Inventory) record(o Outcome) Outcome {
	inv.stats.record(o)
	return o
}

func (inv *Inventory) play() Outcome {
	out := Outcome{Action: ActionPlay}

	played, err := inv.queue.Dequeue()
	if err != nil {
		out.Err = apperr.MapError(ActionPlay.String(), err, apperr.CodeEmpty, apperr.MsgFailed)
		return out
	}
	out.Played = played

	out.Added, out.Err = inv.refill(ActionPlay)
	return out
}

// reserve checks the stack before touching the queue. If the push still
// fails, the dequeued piece goes back to the queue front so no piece is lost.
func (inv *Inventory) reserve() Outcome {
	out := Outcome{Action: ActionReserve}
	scope := ActionReserve.String()

	if inv.stack.IsFull() {
		err := fmt.Errorf("%w (%d)", stack.ErrFull, inv.stack.Cap())
		out.Err = apperr.MapError(scope, err, apperr.CodeFull, apperr.MsgPreconditionFailed)
		return out
	}

	p, err := inv.queue.Dequeue()
	if err != nil {
		out.Err = apperr.MapError(scope, err, apperr.CodeEmpty, apperr.MsgFailed)
		return out
	}

	if err := inv.stack.Push(p); err != nil {
		if restoreErr := inv.queue.PushFront(p); restoreErr != nil {
			err = fmt.Errorf("%w; restoring %s: %w", err, p, restoreErr)
		}
		out.Err = apperr.MapError(scope, err, apperr.CodeInternal, apperr.MsgInternal)
		return out
	}
	out.Reserved = p

	out.Added, out.Err = inv.refill(ActionReserve)
	return out
}

func (inv *Inventory) use() Outcome {
	out := Outcome{Action: ActionUse}

	p, err := inv.stack.Pop()
	if err != nil {
		out.Err = apperr.MapError(ActionUse.String(), err, apperr.CodeEmpty, apperr.MsgFailed)
		return out
	}
	out.Used = p
	return out
}

func (inv *Inventory) swapOne() Outcome {
	out := Outcome{Action: ActionSwapOne}
	scope := ActionSwapOne.String()

	if inv.stack.IsEmpty() {
		out.Err = apperr.MapError(scope, stack.ErrEmpty, apperr.CodePreconditionFailed, apperr.MsgPreconditionFailed)
		return out
	}
	front, err := inv.queue.PeekFront()
	if err != nil {
		out.Err = apperr.MapError(scope, err, apperr.CodePreconditionFailed, apperr.MsgPreconditionFailed)
		return out
	}

	topSlot := inv.stack.Len() - 1
	top, _ := inv.stack.PeekTop()

	x, err := inv.exchange(0, topSlot, front, top)
	if err != nil {
		out.Err = apperr.MapError(scope, err, apperr.CodeInternal, apperr.MsgInternal)
		return out
	}
	out.Exchanges = []Exchange{x}
	return out
}

func (inv *Inventory) swapBlock() Outcome {
	out := Outcome{Action: ActionSwapBlock}
	scope := ActionSwapBlock.String()

	if !inv.queue.IsFull() || !inv.stack.IsFull() {
		err := fmt.Errorf("%w: queue %d/%d, stack %d/%d", ErrBlockNotReady,
			inv.queue.Len(), inv.queue.Cap(), inv.stack.Len(), inv.stack.Cap())
		out.Err = apperr.MapError(scope, err, apperr.CodePreconditionFailed, apperr.MsgPreconditionFailed)
		return out
	}

	n := inv.stack.Cap()
	queued := make([]piece.Piece, n)
	reserved := make([]piece.Piece, n)
	for i := 0; i < n; i++ {
		q, qErr := inv.queue.At(i)
		s, sErr := inv.stack.At(i)
		if qErr != nil || sErr != nil {
			out.Err = apperr.NewError(scope, apperr.CodeInternal, apperr.MsgInternal,
				fmt.Errorf("position %d: queue=%v stack=%v", i, qErr, sErr))
			return out
		}
		queued[i], reserved[i] = q, s
	}

	out.Exchanges = make([]Exchange, 0, n)
	for i := 0; i < n; i++ {
		x, err := inv.exchange(i, i, queued[i], reserved[i])
		if err != nil {
			out.Err = apperr.MapError(scope, err, apperr.CodeInternal, apperr.MsgInternal)
			return out
		}
		out.Exchanges = append(out.Exchanges, x)
	}
	return out
}

// exchange writes the stack piece into queue position pos and the queue piece
// into stack slot slot. Indices and counts stay the same.
func (inv *Inventory) exchange(pos, slot int, queued, reserved piece.Piece) (Exchange, error) {
	if err := inv.queue.Set(pos, reserved); err != nil {
		return Exchange{}, err
	}
	if err := inv.stack.Set(slot, queued); err != nil {
		_ = inv.queue.Set(pos, queued)
		return Exchange{}, err
	}
	return Exchange{Position: pos, Slot: slot, Queued: queued, Reserved: reserved}, nil
}

// refill generates one piece into the queue back.
func (inv *Inventory) refill(a Action) (piece.Piece, error) {
	p := inv.gen.Generate()
	if err := inv.queue.Enqueue(p); err != nil {
		return piece.Piece{}, apperr.MapError(a.String(), err, apperr.CodeInternal, apperr.MsgInternal)
	}
	return p, nil
}
