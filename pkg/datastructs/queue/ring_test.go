package queue

import (
	"errors"
	"slices"
	"testing"
)

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewRing(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantErr  error
	}{
		{"five", 5, nil},
		{"one", 1, nil},
		{"non_power_of_two_kept", 7, nil},
		{"zero", 0, ErrInvalidCapacity},
		{"negative", -3, ErrInvalidCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewRing[int](tt.capacity)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewRing(%d) error = %v, want %v", tt.capacity, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if q.Cap() != tt.capacity {
				t.Errorf("Cap() = %d, want %d", q.Cap(), tt.capacity)
			}
			if q.Capacity() != uint64(tt.capacity) {
				t.Errorf("Capacity() = %d, want %d", q.Capacity(), tt.capacity)
			}
			if !q.IsEmpty() || q.IsFull() || q.Len() != 0 {
				t.Errorf("new ring: IsEmpty=%v IsFull=%v Len=%d", q.IsEmpty(), q.IsFull(), q.Len())
			}
		})
	}
}

// =============================================================================
// Method: Enqueue() / Dequeue()
// =============================================================================

func TestRing_FIFO(t *testing.T) {
	q, _ := NewRing[string](5)
	if err := q.Enqueue("a"); err != nil {
		t.Fatalf("Enqueue(a) error = %v", err)
	}
	if err := q.Enqueue("b"); err != nil {
		t.Fatalf("Enqueue(b) error = %v", err)
	}

	for _, want := range []string{"a", "b"} {
		got, err := q.Dequeue()
		if err != nil || got != want {
			t.Errorf("Dequeue() = %q, %v; want %q, nil", got, err, want)
		}
	}
}

func TestRing_Enqueue_Full(t *testing.T) {
	q, _ := NewRing[int](5)
	for i := 0; i < 5; i++ {
		if err := q.Enqueue(i); err != nil {
			t.Fatalf("Enqueue(%d) error = %v", i, err)
		}
	}
	if !q.IsFull() {
		t.Fatal("IsFull() = false after filling to capacity")
	}

	if err := q.Enqueue(99); !errors.Is(err, ErrFull) {
		t.Errorf("Enqueue on full = %v, want %v", err, ErrFull)
	}
	if got := q.Snapshot(); !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("Snapshot() after rejected Enqueue = %v", got)
	}
}

func TestRing_Dequeue_Empty(t *testing.T) {
	q, _ := NewRing[int](3)
	v, err := q.Dequeue()
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("Dequeue on empty error = %v, want %v", err, ErrEmpty)
	}
	if v != 0 {
		t.Errorf("Dequeue on empty value = %d, want zero", v)
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
}

func TestRing_WrapAround(t *testing.T) {
	q, _ := NewRing[int](5)
	for i := 0; i < 5; i++ {
		_ = q.Enqueue(i)
	}
	// Rotate 7 times: each removal is followed by a refill, as the inventory does.
	next := 5
	for i := 0; i < 7; i++ {
		v, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue() error = %v", err)
		}
		if v != i {
			t.Fatalf("Dequeue() = %d, want %d", v, i)
		}
		if err := q.Enqueue(next); err != nil {
			t.Fatalf("Enqueue(%d) error = %v", next, err)
		}
		next++
		if q.Len() != 5 {
			t.Fatalf("Len() = %d after rotate, want 5", q.Len())
		}
	}

	want := []int{7, 8, 9, 10, 11}
	if got := q.Snapshot(); !slices.Equal(got, want) {
		t.Errorf("Snapshot() = %v, want %v", got, want)
	}
}

// =============================================================================
// Method: PushFront()
// =============================================================================

func TestRing_PushFront(t *testing.T) {
	t.Run("undoes_dequeue", func(t *testing.T) {
		q, _ := NewRing[int](5)
		for i := 0; i < 5; i++ {
			_ = q.Enqueue(i)
		}
		v, _ := q.Dequeue()
		if err := q.PushFront(v); err != nil {
			t.Fatalf("PushFront() error = %v", err)
		}
		if got := q.Snapshot(); !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
			t.Errorf("Snapshot() = %v, want [0 1 2 3 4]", got)
		}
	})

	t.Run("wraps_below_zero", func(t *testing.T) {
		q, _ := NewRing[int](3)
		_ = q.Enqueue(1)
		if err := q.PushFront(0); err != nil {
			t.Fatalf("PushFront() error = %v", err)
		}
		if got := q.Snapshot(); !slices.Equal(got, []int{0, 1}) {
			t.Errorf("Snapshot() = %v, want [0 1]", got)
		}
		_ = q.Enqueue(2)
		if got := q.Snapshot(); !slices.Equal(got, []int{0, 1, 2}) {
			t.Errorf("Snapshot() = %v, want [0 1 2]", got)
		}
	})

	t.Run("full", func(t *testing.T) {
		q, _ := NewRing[int](1)
		_ = q.Enqueue(1)
		if err := q.PushFront(0); !errors.Is(err, ErrFull) {
			t.Errorf("PushFront on full = %v, want %v", err, ErrFull)
		}
	})
}

// =============================================================================
// Method: PeekFront() / At() / Set()
// =============================================================================

func TestRing_PeekFront(t *testing.T) {
	q, _ := NewRing[int](2)
	if _, err := q.PeekFront(); !errors.Is(err, ErrEmpty) {
		t.Errorf("PeekFront on empty = %v, want %v", err, ErrEmpty)
	}

	_ = q.Enqueue(10)
	_ = q.Enqueue(20)
	v, err := q.PeekFront()
	if err != nil || v != 10 {
		t.Errorf("PeekFront() = %d, %v; want 10, nil", v, err)
	}
	if q.Len() != 2 {
		t.Errorf("PeekFront mutated Len: %d", q.Len())
	}
}

func TestRing_AtSet(t *testing.T) {
	q, _ := NewRing[int](5)
	for i := 0; i < 5; i++ {
		_ = q.Enqueue(i)
	}
	// Move front to backing index 3.
	for i := 0; i < 3; i++ {
		v, _ := q.Dequeue()
		_ = q.Enqueue(v + 5)
	}
	// Logical order is now 3 4 5 6 7.

	tests := []struct {
		name    string
		pos     int
		want    int
		wantErr error
	}{
		{"front", 0, 3, nil},
		{"wrapped", 2, 5, nil},
		{"back", 4, 7, nil},
		{"negative", -1, 0, ErrOutOfRange},
		{"past_len", 5, 0, ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := q.At(tt.pos)
			if !errors.Is(err, tt.wantErr) || got != tt.want {
				t.Errorf("At(%d) = %d, %v; want %d, %v", tt.pos, got, err, tt.want, tt.wantErr)
			}
		})
	}

	if err := q.Set(2, 50); err != nil {
		t.Fatalf("Set(2) error = %v", err)
	}
	if got := q.Snapshot(); !slices.Equal(got, []int{3, 4, 50, 6, 7}) {
		t.Errorf("Snapshot() after Set = %v", got)
	}
	if err := q.Set(5, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Set(5) = %v, want %v", err, ErrOutOfRange)
	}
	if v, _ := q.PeekFront(); v != 3 {
		t.Errorf("Set moved the front: PeekFront() = %d", v)
	}
}

// =============================================================================
// Method: All() / Reset()
// =============================================================================

func TestRing_All(t *testing.T) {
	q, _ := NewRing[int](4)
	for i := 0; i < 4; i++ {
		_ = q.Enqueue(i * 10)
	}
	_, _ = q.Dequeue()
	_ = q.Enqueue(40)

	t.Run("front_to_back", func(t *testing.T) {
		var pos, vals []int
		for i, v := range q.All() {
			pos = append(pos, i)
			vals = append(vals, v)
		}
		if !slices.Equal(pos, []int{0, 1, 2, 3}) || !slices.Equal(vals, []int{10, 20, 30, 40}) {
			t.Errorf("All() = %v / %v", pos, vals)
		}
	})

	t.Run("rederivable", func(t *testing.T) {
		var first []int
		for _, v := range q.All() {
			first = append(first, v)
		}
		second := q.Snapshot()
		if !slices.Equal(first, second) {
			t.Errorf("second pass %v differs from first %v", second, first)
		}
	})

	t.Run("early_break", func(t *testing.T) {
		n := 0
		for range q.All() {
			n++
			if n == 2 {
				break
			}
		}
		if n != 2 {
			t.Errorf("iterated %d items, want 2", n)
		}
	})
}

func TestRing_Reset(t *testing.T) {
	q, _ := NewRing[int](3)
	_ = q.Enqueue(1)
	_ = q.Enqueue(2)
	q.Reset()
	if !q.IsEmpty() || q.Cap() != 3 {
		t.Errorf("after Reset: IsEmpty=%v Cap=%d", q.IsEmpty(), q.Cap())
	}
	_ = q.Enqueue(9)
	if v, _ := q.PeekFront(); v != 9 {
		t.Errorf("PeekFront() after Reset = %d, want 9", v)
	}
}
