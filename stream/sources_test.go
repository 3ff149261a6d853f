package stream

import (
	"errors"
	"testing"
)

func TestFromValues_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   []int
	}{
		{"empty", []int{}},
		{"single", []int{1}},
		{"several", []int{1, 2, 3, 4}},
		{"duplicates", []int{5, 5, 0, 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertSlice(t, FromValues(tc.in...).ToSlice(), tc.in)
		})
	}
}

func TestFromValues_CopiesArguments(t *testing.T) {
	in := []int{1, 2, 3}
	s := FromValues(in...)
	in[1] = 99
	assertSlice(t, s.ToSlice(), []int{1, 2, 3})
}

func TestFromSlice_ReadsLazily(t *testing.T) {
	in := []string{"a", "b", "c"}
	s := FromSlice(in)
	if s.Forced() {
		t.Error("tail should not be forced on construction")
	}
	assertSlice(t, s.ToSlice(), in)
}

func TestRangeFrom_Item(t *testing.T) {
	s := RangeFrom(0)
	for _, n := range []int{0, 1, 10, 100} {
		got, err := s.Item(n)
		if err != nil {
			t.Fatalf("Item(%d): %v", n, err)
		}
		if got != n {
			t.Errorf("Item(%d): got %d", n, got)
		}
	}
}

func TestRange_Bounded(t *testing.T) {
	tests := []struct {
		start, end int
		want       []int
	}{
		{0, 10, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{3, 3, []int{3}},
		{-2, 1, []int{-2, -1, 0, 1}},
	}

	for _, tc := range tests {
		s := Range(tc.start, tc.end)
		assertSlice(t, s.ToSlice(), tc.want)
		if got := s.Length(); got != tc.end-tc.start+1 {
			t.Errorf("Range(%d, %d).Length() = %d", tc.start, tc.end, got)
		}
	}
}

func TestRange_Float(t *testing.T) {
	assertSlice(t, Range(0.5, 2.5).ToSlice(), []float64{0.5, 1.5, 2.5})
}

func TestIterateTo_CustomStep(t *testing.T) {
	s := IterateTo(1, 16, func(n int) int { return n * 2 })
	assertSlice(t, s.ToSlice(), []int{1, 2, 4, 8, 16})
}

func TestIterateTo_StartPastEndIsUnbounded(t *testing.T) {
	s := Range(5, 1)
	assertSlice(t, s.Take(4).ToSlice(), []int{5, 6, 7, 8})
}

func TestIterate_StepRunsPerForcedTail(t *testing.T) {
	calls := 0
	s := Iterate("a", func(v string) string {
		calls++
		return v + "a"
	})
	if calls != 0 {
		t.Fatalf("step ran %d times before any tail was forced", calls)
	}
	got, _ := s.Item(2)
	if got != "aaa" {
		t.Errorf("got %q, want aaa", got)
	}
	_, _ = s.Item(2)
	if calls != 2 {
		t.Errorf("step ran %d times, want 2", calls)
	}
}

func TestRepeat(t *testing.T) {
	s := Repeat("x")
	assertSlice(t, s.Take(3).ToSlice(), []string{"x", "x", "x"})
	if s.MustTail() != s {
		t.Error("repeat should be a single self-referencing node")
	}
}

func TestUnfold(t *testing.T) {
	countdown := Unfold(3, func(n int) (int, int, bool) {
		return n, n - 1, n > 0
	})
	assertSlice(t, countdown.ToSlice(), []int{3, 2, 1})

	none := Unfold(0, func(n int) (int, int, bool) {
		return 0, 0, false
	})
	if !none.IsEmpty() {
		t.Error("expected empty stream when generator stops immediately")
	}
}

func TestRecurse_Sieve(t *testing.T) {
	sieve := func(next func(*Stream[int]) *Stream[int], s *Stream[int]) *Stream[int] {
		p := s.MustHead()
		return Cons(p, func() *Stream[int] {
			return next(s.MustTail().Filter(func(n int) bool { return n%p != 0 }))
		})
	}

	primes := Recurse(RangeFrom(2), sieve).Take(10)
	assertSlice(t, primes.ToSlice(), []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29})
}

func TestSkip(t *testing.T) {
	s := FromValues(1, 2, 3, 4)

	same, err := s.Skip(0)
	if err != nil || same != s {
		t.Errorf("Skip(0) should return the receiver, got %v, %v", same, err)
	}

	rest, err := s.Skip(2)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, rest.ToSlice(), []int{3, 4})

	end, err := s.Skip(4)
	if err != nil {
		t.Fatal(err)
	}
	if !end.IsEmpty() {
		t.Error("skipping every element should leave the empty stream")
	}

	if _, err := s.Skip(5); !errors.Is(err, ErrEmptyStream) {
		t.Errorf("expected ErrEmptyStream, got %v", err)
	}
	if _, err := s.Skip(-1); err == nil || errors.Is(err, ErrEmptyStream) {
		t.Errorf("expected invalid input error, got %v", err)
	}
}

func TestItem(t *testing.T) {
	s := FromValues(1, 2, 3, 4)
	for i, want := range []int{1, 2, 3, 4} {
		got, err := s.Item(i)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("Item(%d): got %d, want %d", i, got, want)
		}
	}
	if _, err := s.Item(4); !errors.Is(err, ErrEmptyStream) {
		t.Errorf("expected ErrEmptyStream, got %v", err)
	}
}
