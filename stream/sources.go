package stream

import "slices"

// Number is the set of element types supporting arithmetic, used by Range,
// Scale, Sum and Product.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// FromValues returns a finite stream of the given values, in order.
func FromValues[T any](vs ...T) *Stream[T] {
	return FromSlice(slices.Clone(vs))
}

// FromSlice returns a finite stream over vs. The slice is read lazily, one
// element per forced tail, so it must not be modified while the stream is in
// use.
func FromSlice[T any](vs []T) *Stream[T] {
	if len(vs) == 0 {
		return Empty[T]()
	}
	return Cons(vs[0], func() *Stream[T] {
		return FromSlice(vs[1:])
	})
}

// Range returns start, start+1, ... up to and including end. The stream ends
// only when a value equals end, so a start greater than end never reaches it
// and the result is infinite.
func Range[N Number](start, end N) *Stream[N] {
	return IterateTo(start, end, successor[N])
}

// RangeFrom returns the unbounded stream start, start+1, start+2, ...
func RangeFrom[N Number](start N) *Stream[N] {
	return Iterate(start, successor[N])
}

func successor[N Number](n N) N {
	return n + 1
}

// Iterate returns the unbounded stream start, step(start), step(step(start)),
// ... step runs once per forced tail.
func Iterate[T any](start T, step func(T) T) *Stream[T] {
	return Cons(start, func() *Stream[T] {
		return Iterate(step(start), step)
	})
}

// IterateTo is like Iterate but ends with the first value equal to end. If
// start equals end the result has exactly one element. A step that never
// lands on end produces an infinite stream.
func IterateTo[T comparable](start, end T, step func(T) T) *Stream[T] {
	if start == end {
		return single(start)
	}
	return Cons(start, func() *Stream[T] {
		return IterateTo(step(start), end, step)
	})
}

// Repeat returns an infinite stream of v. The stream is a single node whose
// tail is itself.
func Repeat[T any](v T) *Stream[T] {
	s := &Stream[T]{head: v}
	s.tail = &suspension[T]{result: s}
	return s
}

// Unfold builds a stream from a generator. f receives the current state and
// returns the next element, the following state, and false once the stream
// should end. The first element is produced immediately; later ones as tails
// are forced.
func Unfold[S, T any](seed S, f func(S) (T, S, bool)) *Stream[T] {
	v, next, ok := f(seed)
	if !ok {
		return Empty[T]()
	}
	return Cons(v, func() *Stream[T] {
		return Unfold(next, f)
	})
}

// Recurse builds a self-referential stream. build receives the stream to
// expand and a next function that applies build to another stream, typically
// a filtered or mapped tail of s inside a suspension:
//
//	primes := stream.Recurse(stream.RangeFrom(2), func(next func(*stream.Stream[int]) *stream.Stream[int], s *stream.Stream[int]) *stream.Stream[int] {
//	    p := s.MustHead()
//	    return stream.Cons(p, func() *stream.Stream[int] {
//	        return next(s.MustTail().Filter(func(n int) bool { return n%p != 0 }))
//	    })
//	})
func Recurse[T any](s *Stream[T], build func(next func(*Stream[T]) *Stream[T], s *Stream[T]) *Stream[T]) *Stream[T] {
	return build(func(rest *Stream[T]) *Stream[T] {
		return Recurse(rest, build)
	}, s)
}
