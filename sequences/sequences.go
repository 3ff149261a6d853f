package sequences

import "github.com/kbukum/lazystream/stream"

// Naturals returns 1, 2, 3, ...
func Naturals() *stream.Stream[int] {
	return stream.RangeFrom(1)
}

// Primes returns the primes in order, computed with a lazy sieve: each prime
// filters its multiples out of the stream that follows it.
func Primes() *stream.Stream[int] {
	return stream.Recurse(stream.RangeFrom(2), sieve)
}

func sieve(next func(*stream.Stream[int]) *stream.Stream[int], s *stream.Stream[int]) *stream.Stream[int] {
	p := s.MustHead()
	return stream.Cons(p, func() *stream.Stream[int] {
		return next(s.MustTail().Filter(func(n int) bool {
			return n%p != 0
		}))
	})
}

// Fibonacci returns 1, 1, 2, 3, 5, 8, ...
func Fibonacci() *stream.Stream[int] {
	return fibonacci(0, 1)
}

func fibonacci(a, b int) *stream.Stream[int] {
	return stream.Cons(b, func() *stream.Stream[int] {
		return fibonacci(b, a+b)
	})
}

// Squares returns 1, 4, 9, 16, ...
func Squares() *stream.Stream[int] {
	return stream.Map(Naturals(), func(n int) int {
		return n * n
	})
}

// Powers returns 1, base, base², ...
func Powers(base int) *stream.Stream[int] {
	return stream.Iterate(1, func(n int) int {
		return n * base
	})
}

// Triangular returns the running sums of the naturals: 1, 3, 6, 10, ...
func Triangular() *stream.Stream[int] {
	var build func(sum, n int) *stream.Stream[int]
	build = func(sum, n int) *stream.Stream[int] {
		return stream.Cons(sum+n, func() *stream.Stream[int] {
			return build(sum+n, n+1)
		})
	}
	return build(0, 1)
}
