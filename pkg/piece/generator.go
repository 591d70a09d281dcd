package piece

import (
	"math/rand/v2"
	"time"

	"github.com/huynhanx03/go-pieces/pkg/unique"
)

// Picker chooses an index in [0, n).
type Picker interface {
	IntN(n int) int
}

// Generator produces fresh pieces: a uniformly random kind and the next id.
// It is NOT thread-safe.
type Generator struct {
	seq    *unique.Sequence
	picker Picker
	kinds  []Kind
}

// NewGenerator creates a Generator drawing ids from seq and kinds via picker.
func NewGenerator(seq *unique.Sequence, picker Picker, kinds []Kind) (*Generator, error) {
	if len(kinds) == 0 {
		return nil, ErrNoKinds
	}
	if seq == nil {
		s, err := unique.NewSequence(0)
		if err != nil {
			return nil, err
		}
		seq = s
	}
	if picker == nil {
		picker = NewPicker(0)
	}
	own := make([]Kind, len(kinds))
	copy(own, kinds)
	return &Generator{seq: seq, picker: picker, kinds: own}, nil
}

// NewPicker returns a PCG-backed picker. A zero seed is replaced by the current time.
func NewPicker(seed uint64) Picker {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate returns a new piece. Ids are never reused.
func (g *Generator) Generate() Piece {
	k := g.kinds[g.picker.IntN(len(g.kinds))]
	return Piece{Kind: k, ID: g.seq.Generate()}
}

// Kinds returns a copy of the kind set.
func (g *Generator) Kinds() []Kind {
	out := make([]Kind, len(g.kinds))
	copy(out, g.kinds)
	return out
}

// NextID reports the id the next piece will carry.
func (g *Generator) NextID() int64 {
	return g.seq.Peek()
}
