package stream

// Reduce folds the stream from the left: f(...f(f(initial, e0), e1)..., en).
// It forces the whole stream.
func Reduce[T, R any](s *Stream[T], initial R, f func(R, T) R) R {
	acc := initial
	for n := s; !n.IsEmpty(); n = n.rest() {
		acc = f(acc, n.head)
	}
	return acc
}

// Length returns the number of elements of a finite stream.
func (s *Stream[T]) Length() int {
	return Reduce(s, 0, func(count int, _ T) int {
		return count + 1
	})
}

// Sum adds up the elements.
func Sum[N Number](s *Stream[N]) N {
	return Reduce(s, 0, func(acc, v N) N {
		return acc + v
	})
}

// Product multiplies the elements. The product of an empty stream is 1.
func Product[N Number](s *Stream[N]) N {
	return Reduce(s, 1, func(acc, v N) N {
		return acc * v
	})
}

// Equal reports whether a and b hold equal elements in the same order. It
// stops at the first difference.
func Equal[T comparable](a, b *Stream[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool {
		return x == y
	})
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T, U any](a *Stream[T], b *Stream[U], eq func(T, U) bool) bool {
	for {
		switch {
		case a.IsEmpty() && b.IsEmpty():
			return true
		case a.IsEmpty() || b.IsEmpty():
			return false
		case !eq(a.head, b.head):
			return false
		}
		a, b = a.rest(), b.rest()
	}
}

// Contains reports whether v occurs in the stream, stopping at the first
// match.
func Contains[T comparable](s *Stream[T], v T) bool {
	for n := s; !n.IsEmpty(); n = n.rest() {
		if n.head == v {
			return true
		}
	}
	return false
}
