package stream

import (
	"fmt"
	"io"
	"iter"
	"os"

	goerrors "github.com/kbukum/lazystream/errors"
)

// Skip returns the stream after the first n elements, forcing n tails.
// Skip(0) returns s itself.
func (s *Stream[T]) Skip(n int) (*Stream[T], error) {
	if n < 0 {
		return nil, goerrors.InvalidInput("n", "skip count must not be negative")
	}
	for ; n > 0; n-- {
		if s.IsEmpty() {
			return nil, goerrors.EmptyStream("skip")
		}
		s = s.rest()
	}
	return s, nil
}

// Item returns the element at index n.
func (s *Stream[T]) Item(n int) (T, error) {
	var zero T
	rest, err := s.Skip(n)
	if err != nil {
		return zero, err
	}
	if rest.IsEmpty() {
		return zero, goerrors.EmptyStream("item")
	}
	return rest.head, nil
}

// Walk calls visit for each element in order, forcing one tail at a time.
func (s *Stream[T]) Walk(visit func(T)) {
	for n := s; !n.IsEmpty(); n = n.rest() {
		visit(n.head)
	}
}

// ToSlice returns every element of a finite stream.
func (s *Stream[T]) ToSlice() []T {
	out := make([]T, 0)
	s.Walk(func(v T) {
		out = append(out, v)
	})
	return out
}

// All returns an iterator over the stream. Breaking out of the range loop
// stops before the next tail is forced, so All is safe on infinite streams.
func (s *Stream[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s; !n.IsEmpty(); n = n.rest() {
			if !yield(n.head) {
				return
			}
		}
	}
}

// Fprint writes each element on its own line, stopping at the first write
// error.
func (s *Stream[T]) Fprint(w io.Writer) error {
	for n := s; !n.IsEmpty(); n = n.rest() {
		if _, err := fmt.Fprintln(w, n.head); err != nil {
			return err
		}
	}
	return nil
}

// Print writes each element to standard output.
func (s *Stream[T]) Print() error {
	return s.Fprint(os.Stdout)
}
