// Package stream provides a lazy, memoizing, singly-linked sequence.
//
// A Stream is either empty or a head value followed by a suspended tail. The
// tail is a zero-argument function that produces the rest of the stream; it
// runs the first time the tail is needed and its result is cached on the node,
// so shared suffixes are computed once no matter how many traversals or
// derived streams reach them.
//
// Streams may be finite or infinite. Transforms (Map, Filter, Take, Append,
// Zip, ...) build new nodes whose tails close over the source, so they never
// force more of the source than the caller consumes. Eager operations
// (Reduce, Length, ToSlice, Walk, Equal) force the whole stream and only
// terminate on finite input; bound an infinite stream with Take or All first.
//
// # Usage
//
//	evens := stream.RangeFrom(0).Filter(func(n int) bool { return n%2 == 0 })
//	squares := stream.Map(evens, func(n int) int { return n * n })
//	fmt.Println(squares.Take(5).ToSlice()) // [0 4 16 36 64]
//
// # Errors
//
// Head, Tail, Skip and Item on a stream that has run out return an error
// matching ErrEmptyStream. MustHead and MustTail panic with the same error and
// are meant for use inside suspensions, which cannot return errors.
//
// # Concurrency
//
// A Stream is not safe for concurrent use. Forcing a tail writes the cached
// result into the node without synchronization; callers sharing a stream
// between goroutines must serialize access to it.
package stream
