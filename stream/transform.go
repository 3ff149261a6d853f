package stream

// Map returns the stream of f applied to each element. f runs once per
// element, when that element is reached.
func Map[T, U any](s *Stream[T], f func(T) U) *Stream[U] {
	if s.IsEmpty() {
		return Empty[U]()
	}
	return Cons(f(s.head), func() *Stream[U] {
		return Map(s.rest(), f)
	})
}

// Scale multiplies every element by factor.
func Scale[N Number](s *Stream[N], factor N) *Stream[N] {
	return Map(s, func(v N) N {
		return v * factor
	})
}

// Filter keeps the elements satisfying keep. Rejected elements are skipped
// eagerly until an accepted one is found, so forcing past the last accepted
// element of an infinite stream never returns.
func (s *Stream[T]) Filter(keep func(T) bool) *Stream[T] {
	for ; !s.IsEmpty(); s = s.rest() {
		if keep(s.head) {
			src := s
			return Cons(src.head, func() *Stream[T] {
				return src.rest().Filter(keep)
			})
		}
	}
	return Empty[T]()
}

// Take returns the first n elements, or all of them if the stream is shorter.
// The tail of the n-th source element is never forced.
func (s *Stream[T]) Take(n int) *Stream[T] {
	switch {
	case n <= 0 || s.IsEmpty():
		return Empty[T]()
	case n == 1:
		return single(s.head)
	}
	return Cons(s.head, func() *Stream[T] {
		return s.rest().Take(n - 1)
	})
}

// TakeWhile returns the leading elements satisfying keep.
func (s *Stream[T]) TakeWhile(keep func(T) bool) *Stream[T] {
	if s.IsEmpty() || !keep(s.head) {
		return Empty[T]()
	}
	return Cons(s.head, func() *Stream[T] {
		return s.rest().TakeWhile(keep)
	})
}

// DropWhile skips the leading elements satisfying drop and returns the rest.
// The result shares nodes with s.
func (s *Stream[T]) DropWhile(drop func(T) bool) *Stream[T] {
	for ; !s.IsEmpty(); s = s.rest() {
		if !drop(s.head) {
			return s
		}
	}
	return Empty[T]()
}

// Tap calls fn with each element as it is reached and passes the element
// through unchanged.
func (s *Stream[T]) Tap(fn func(T)) *Stream[T] {
	if s.IsEmpty() {
		return Empty[T]()
	}
	fn(s.head)
	return Cons(s.head, func() *Stream[T] {
		return s.rest().Tap(fn)
	})
}

// Append returns s followed by other. other is not traversed until s is
// exhausted; if either side is empty the other is returned as is.
func (s *Stream[T]) Append(other *Stream[T]) *Stream[T] {
	if s.IsEmpty() {
		if other == nil {
			return Empty[T]()
		}
		return other
	}
	if other.IsEmpty() {
		return s
	}
	return Cons(s.head, func() *Stream[T] {
		return s.rest().Append(other)
	})
}

// Concat joins streams end to end.
func Concat[T any](streams ...*Stream[T]) *Stream[T] {
	out := Empty[T]()
	for i := len(streams) - 1; i >= 0; i-- {
		out = streams[i].Append(out)
	}
	return out
}

// Zip combines a and b pairwise. The result is as long as the shorter input.
func Zip[A, B, C any](a *Stream[A], b *Stream[B], combine func(A, B) C) *Stream[C] {
	if a.IsEmpty() || b.IsEmpty() {
		return Empty[C]()
	}
	return Cons(combine(a.head, b.head), func() *Stream[C] {
		return Zip(a.rest(), b.rest(), combine)
	})
}

// ZipLongest combines a and b pairwise until one runs out, then continues
// with the remainder of the other unchanged. The result is as long as the
// longer input.
func ZipLongest[T any](a, b *Stream[T], combine func(T, T) T) *Stream[T] {
	switch {
	case a.IsEmpty():
		if b == nil {
			return Empty[T]()
		}
		return b
	case b.IsEmpty():
		return a
	}
	return Cons(combine(a.head, b.head), func() *Stream[T] {
		return ZipLongest(a.rest(), b.rest(), combine)
	})
}

// ZipWith selects Zip when truncated is true and ZipLongest otherwise.
func ZipWith[T any](a, b *Stream[T], truncated bool, combine func(T, T) T) *Stream[T] {
	if truncated {
		return Zip(a, b, combine)
	}
	return ZipLongest(a, b, combine)
}
