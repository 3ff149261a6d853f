// Package pipeline provides context-aware, pull-based consumption of lazy
// streams.
//
// A stream has no notion of cancellation: forcing a tail is a plain function
// call. Pipelines wrap a stream (or a slice, or any Iterator) so that every
// pulled value first checks the context, which lets callers put a deadline on
// how long they are willing to walk an expensive or infinite stream.
//
// Pipelines are lazy. No value is pulled until Collect, Drain, or ForEach runs,
// and pulling a stream-backed pipeline forces exactly one tail per value, never
// the tail of the last value consumed.
//
// # Operators
//
//   - Map: transform each value
//   - Filter: keep values matching a predicate
//   - Tap: side-effect without altering the value (logging, metrics)
//   - Take: stop after n values
//   - Reduce: accumulate all values into one result
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, time.Second)
//	defer cancel()
//	src := pipeline.FromStream(sequences.Primes())
//	first, err := pipeline.Collect(ctx, pipeline.Take(src, 100))
//
// ToStream goes the other way and turns any pipeline into a memoized stream.
package pipeline
