package inventory

import (
	"iter"

	"github.com/huynhanx03/go-pieces/pkg/datastructs/queue"
	"github.com/huynhanx03/go-pieces/pkg/datastructs/stack"
	"github.com/huynhanx03/go-pieces/pkg/piece"
	"github.com/huynhanx03/go-pieces/pkg/settings"
	"github.com/huynhanx03/go-pieces/pkg/unique"
)

// reserveStack is the subset of stack.Stack the inventory relies on.
type reserveStack interface {
	IsEmpty() bool
	IsFull() bool
	Len() int
	Cap() int
	Push(p piece.Piece) error
	Pop() (piece.Piece, error)
	PeekTop() (piece.Piece, error)
	At(i int) (piece.Piece, error)
	Set(i int, p piece.Piece) error
	All() iter.Seq2[int, piece.Piece]
	Snapshot() []piece.Piece
	Reset()
}

var _ reserveStack = (*stack.Stack[piece.Piece])(nil)

// Inventory owns the upcoming-pieces queue, the reserve stack and the
// generator that refills the queue. It is NOT thread-safe.
type Inventory struct {
	queue *queue.Ring[piece.Piece]
	stack reserveStack
	gen   *piece.Generator
	stats Stats
}

type options struct {
	gen *piece.Generator
}

// Option customizes New.
type Option func(*options)

// WithGenerator makes the inventory draw pieces from g instead of building
// one from the configured kinds, seed and first id.
func WithGenerator(g *piece.Generator) Option {
	return func(o *options) {
		o.gen = g
	}
}

// New builds an inventory with an empty stack and a queue filled to
// capacity with freshly generated pieces, in generation order.
func New(cfg settings.Inventory, opts ...Option) (*Inventory, error) {
	if cfg.StackCapacity < 1 || cfg.StackCapacity >= cfg.QueueCapacity {
		return nil, ErrInvalidCapacities
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.gen == nil {
		gen, err := newGenerator(cfg)
		if err != nil {
			return nil, err
		}
		o.gen = gen
	}

	q, err := queue.NewRing[piece.Piece](cfg.QueueCapacity)
	if err != nil {
		return nil, err
	}
	s, err := stack.New[piece.Piece](cfg.StackCapacity)
	if err != nil {
		return nil, err
	}

	inv := &Inventory{
		queue: q,
		stack: s,
		gen:   o.gen,
		stats: newStats(),
	}
	inv.fill()
	return inv, nil
}

func newGenerator(cfg settings.Inventory) (*piece.Generator, error) {
	kinds, err := piece.ParseKinds(cfg.Kinds)
	if err != nil {
		return nil, err
	}
	seq, err := unique.NewSequence(cfg.FirstID)
	if err != nil {
		return nil, err
	}
	return piece.NewGenerator(seq, piece.NewPicker(cfg.Seed), kinds)
}

// fill tops the queue up to capacity.
func (inv *Inventory) fill() {
	for !inv.queue.IsFull() {
		_ = inv.queue.Enqueue(inv.gen.Generate())
	}
}

// Reset empties the stack and refills the queue with new pieces.
// Ids keep increasing across resets.
func (inv *Inventory) Reset() {
	inv.queue.Reset()
	inv.stack.Reset()
	inv.stats = newStats()
	inv.fill()
}

// QueueLen returns the number of upcoming pieces.
func (inv *Inventory) QueueLen() int { return inv.queue.Len() }

// QueueCap returns the queue capacity.
func (inv *Inventory) QueueCap() int { return inv.queue.Cap() }

// StackLen returns the number of reserved pieces.
func (inv *Inventory) StackLen() int { return inv.stack.Len() }

// StackCap returns the stack capacity.
func (inv *Inventory) StackCap() int { return inv.stack.Cap() }

// Snapshot is a read-only copy of both containers.
type Snapshot struct {
	Queue    []piece.Piece // front to back
	Stack    []piece.Piece // top to base
	QueueCap int
	StackCap int
}

// Snapshot returns ordered copies of the queue and the stack for display.
func (inv *Inventory) Snapshot() Snapshot {
	return Snapshot{
		Queue:    inv.queue.Snapshot(),
		Stack:    inv.stack.Snapshot(),
		QueueCap: inv.queue.Cap(),
		StackCap: inv.stack.Cap(),
	}
}

// Stats returns a copy of the per-action counters.
func (inv *Inventory) Stats() Stats {
	return inv.stats.clone()
}
