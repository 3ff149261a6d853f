package stream

import (
	"fmt"
	"strings"

	goerrors "github.com/kbukum/lazystream/errors"
)

// ErrEmptyStream matches, via errors.Is, every error returned for access past
// the end of a stream. It must not be modified; each failing operation
// returns its own AppError naming the operation.
var ErrEmptyStream error = goerrors.EmptyStream("")

// maxShown bounds how many elements String renders, so cyclic streams such as
// Repeat still print.
const maxShown = 32

// Stream is a lazy sequence node. The zero value and a nil *Stream are both
// the empty stream.
type Stream[T any] struct {
	head T
	tail *suspension[T] // nil for the empty stream
}

// suspension is a node's tail: a pending thunk until the first force, then the
// cached result. The thunk is dropped after it runs.
type suspension[T any] struct {
	thunk  func() *Stream[T]
	result *Stream[T]
}

func (s *suspension[T]) force() *Stream[T] {
	if s.thunk != nil {
		next := s.thunk()
		if next == nil {
			next = Empty[T]()
		}
		s.result = next
		s.thunk = nil
	}
	return s.result
}

func (s *suspension[T]) forced() bool {
	return s.thunk == nil
}

// Empty returns an empty stream.
func Empty[T any]() *Stream[T] {
	return &Stream[T]{}
}

// Cons returns a stream with head followed by the stream rest produces. rest
// runs at most once, the first time the tail is forced. A nil rest, or a rest
// returning nil, ends the stream after head.
func Cons[T any](head T, rest func() *Stream[T]) *Stream[T] {
	if rest == nil {
		return single(head)
	}
	return &Stream[T]{head: head, tail: &suspension[T]{thunk: rest}}
}

// Prepend returns a stream with v followed by s. The new node's tail is
// already forced.
func (s *Stream[T]) Prepend(v T) *Stream[T] {
	if s == nil {
		s = Empty[T]()
	}
	return &Stream[T]{head: v, tail: &suspension[T]{result: s}}
}

func single[T any](v T) *Stream[T] {
	return Empty[T]().Prepend(v)
}

// IsEmpty reports whether the stream has no elements.
func (s *Stream[T]) IsEmpty() bool {
	return s == nil || s.tail == nil
}

// Head returns the first element.
func (s *Stream[T]) Head() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, goerrors.EmptyStream("head")
	}
	return s.head, nil
}

// Tail returns the stream after the first element, forcing the suspension on
// first access.
func (s *Stream[T]) Tail() (*Stream[T], error) {
	if s.IsEmpty() {
		return nil, goerrors.EmptyStream("tail")
	}
	return s.tail.force(), nil
}

// MustHead is like Head but panics if the stream is empty.
func (s *Stream[T]) MustHead() T {
	v, err := s.Head()
	if err != nil {
		panic(err)
	}
	return v
}

// MustTail is like Tail but panics if the stream is empty.
func (s *Stream[T]) MustTail() *Stream[T] {
	t, err := s.Tail()
	if err != nil {
		panic(err)
	}
	return t
}

// Forced reports whether this node's tail has been evaluated. The empty
// stream has nothing left to evaluate and reports true.
func (s *Stream[T]) Forced() bool {
	return s.IsEmpty() || s.tail.forced()
}

// rest forces the tail of a stream known to be non-empty.
func (s *Stream[T]) rest() *Stream[T] {
	return s.tail.force()
}

// String renders the already-evaluated prefix, e.g. "<1 2 3 ...>". It never
// forces a tail.
func (s *Stream[T]) String() string {
	var b strings.Builder
	b.WriteByte('<')
	n := s
	for i := 0; !n.IsEmpty(); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i == maxShown {
			b.WriteString("...")
			break
		}
		fmt.Fprint(&b, n.head)
		if !n.tail.forced() {
			b.WriteString(" ...")
			break
		}
		n = n.tail.result
	}
	b.WriteByte('>')
	return b.String()
}
