package piece

import (
	"fmt"
)

// Kind is the type tag of a piece, e.g. 'I' or 'T'.
type Kind byte

// DefaultKinds is the piece set used when no other set is configured.
const DefaultKinds = "IOTL"

// String returns the single-letter tag.
func (k Kind) String() string {
	return string(rune(k))
}

// Piece is an immutable value identified by its id.
type Piece struct {
	Kind Kind
	ID   int64
}

// String renders the piece as "[T 3]".
func (p Piece) String() string {
	return fmt.Sprintf("[%s %d]", p.Kind, p.ID)
}

// ParseKinds converts a tag string into a deduplicated kind set, preserving order.
func ParseKinds(tags string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(tags))
	seen := make(map[Kind]struct{}, len(tags))
	for i := 0; i < len(tags); i++ {
		c := tags[i]
		if c <= ' ' || c > '~' {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKind, c)
		}
		k := Kind(c)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		kinds = append(kinds, k)
	}
	if len(kinds) == 0 {
		return nil, ErrNoKinds
	}
	return kinds, nil
}
