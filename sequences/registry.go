package sequences

import (
	"sort"

	"github.com/kbukum/lazystream/errors"
	"github.com/kbukum/lazystream/stream"
)

// Factory builds a fresh stream for a named sequence.
type Factory func() *stream.Stream[int]

var registry = map[string]Factory{
	"naturals":   Naturals,
	"primes":     Primes,
	"fibonacci":  Fibonacci,
	"squares":    Squares,
	"triangular": Triangular,
	"powers2":    func() *stream.Stream[int] { return Powers(2) },
}

// Lookup returns a new stream for the named sequence.
func Lookup(name string) (*stream.Stream[int], error) {
	f, ok := registry[name]
	if !ok {
		return nil, errors.NotFound("sequence", name).WithDetail("known", Names())
	}
	return f(), nil
}

// Names returns the registered sequence names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
