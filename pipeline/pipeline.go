package pipeline

import (
	"context"

	"github.com/kbukum/lazystream/stream"
)

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Pipeline represents a lazy, pull-based data pipeline.
// No work happens until values are pulled via Collect, Drain, or ForEach.
type Pipeline[T any] struct {
	create func(ctx context.Context) Iterator[T]
}

// Runnable is a fully-configured pipeline ready to execute.
type Runnable struct {
	run func(ctx context.Context) error
}

// Run executes the pipeline until completion or context cancellation.
func (r *Runnable) Run(ctx context.Context) error {
	return r.run(ctx)
}

// --- Constructors ---

// From creates a pipeline from an existing Iterator.
func From[T any](iter Iterator[T]) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] {
			return iter
		},
	}
}

// FromSlice creates a pipeline from a slice of values.
func FromSlice[T any](items []T) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// FromStream creates a pipeline that walks s from its head. Each pulled value
// forces one tail; tails forced by earlier runs are reused through the
// stream's own memoization.
func FromStream[T any](s *stream.Stream[T]) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] {
			return &streamIter[T]{cur: s}
		},
	}
}

// ToStream materializes a pipeline as a memoized stream. The first value is
// pulled immediately and each later one when the corresponding tail is
// forced. An iterator error ends the stream; the returned func reports it.
func ToStream[T any](ctx context.Context, p *Pipeline[T]) (*stream.Stream[T], func() error) {
	iter := p.create(ctx)
	var failed error

	var next func() *stream.Stream[T]
	next = func() *stream.Stream[T] {
		val, ok, err := iter.Next(ctx)
		if err != nil || !ok {
			failed = err
			if cerr := iter.Close(); failed == nil {
				failed = cerr
			}
			return stream.Empty[T]()
		}
		return stream.Cons(val, next)
	}

	return next(), func() error { return failed }
}

// --- Terminals ---

// Drain creates a Runnable that pulls all values and sends each to sink.
func Drain[T any](p *Pipeline[T], sink func(context.Context, T) error) *Runnable {
	return &Runnable{
		run: func(ctx context.Context) error {
			iter := p.create(ctx)
			defer iter.Close()
			for {
				val, ok, err := iter.Next(ctx)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				if err := sink(ctx, val); err != nil {
					return err
				}
			}
		},
	}
}

// Collect runs the pipeline and returns all values as a slice. On error the
// values pulled so far are returned with it.
func Collect[T any](ctx context.Context, p *Pipeline[T]) ([]T, error) {
	result := make([]T, 0)
	err := ForEach(ctx, p, func(_ context.Context, val T) error {
		result = append(result, val)
		return nil
	})
	return result, err
}

// ForEach pulls all values and calls fn for each. Convenience wrapper around Drain.
func ForEach[T any](ctx context.Context, p *Pipeline[T], fn func(context.Context, T) error) error {
	return Drain(p, fn).Run(ctx)
}

// Iter returns the raw Iterator for this pipeline. The caller must Close() it.
func (p *Pipeline[T]) Iter(ctx context.Context) Iterator[T] {
	return p.create(ctx)
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	if it.index >= len(it.items) {
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

// streamIter advances lazily: the tail of the current node is forced only
// when the following value is requested.
type streamIter[T any] struct {
	cur     *stream.Stream[T]
	started bool
}

func (it *streamIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	if it.cur.IsEmpty() {
		return zero, false, nil
	}
	if it.started {
		it.cur = it.cur.MustTail()
		if it.cur.IsEmpty() {
			return zero, false, nil
		}
	}
	it.started = true
	return it.cur.MustHead(), true, nil
}

func (it *streamIter[T]) Close() error {
	it.cur = nil
	return nil
}
