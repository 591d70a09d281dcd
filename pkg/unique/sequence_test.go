package unique

import (
	"errors"
	"testing"
)

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewSequence(t *testing.T) {
	tests := []struct {
		name    string
		origin  int64
		wantErr error
	}{
		{"zero", 0, nil},
		{"positive", 42, nil},
		{"negative", -1, ErrNegativeOrigin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSequence(tt.origin)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewSequence(%d) error = %v, want %v", tt.origin, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := s.Peek(); got != tt.origin {
				t.Errorf("Peek() = %d, want %d", got, tt.origin)
			}
		})
	}
}

// =============================================================================
// Method: Generate()
// =============================================================================

func TestSequence_Generate(t *testing.T) {
	t.Run("starts_at_origin", func(t *testing.T) {
		s, _ := NewSequence(0)
		if got := s.Generate(); got != 0 {
			t.Errorf("first Generate() = %d, want 0", got)
		}
		if got := s.Generate(); got != 1 {
			t.Errorf("second Generate() = %d, want 1", got)
		}
	})

	t.Run("strictly_increasing_and_unique", func(t *testing.T) {
		s, _ := NewSequence(7)
		const n = 1000
		seen := make(map[int64]struct{}, n)
		prev := int64(-1)
		for i := 0; i < n; i++ {
			id := s.Generate()
			if id <= prev {
				t.Fatalf("Generate() = %d after %d; ids must strictly increase", id, prev)
			}
			if _, dup := seen[id]; dup {
				t.Fatalf("Generate() returned duplicate id %d", id)
			}
			seen[id] = struct{}{}
			prev = id
		}
		if got := s.Issued(); got != n {
			t.Errorf("Issued() = %d, want %d", got, n)
		}
	})
}
