package main

import (
	"context"
	"fmt"

	"github.com/jessevdk/go-flags"

	apperrors "github.com/kbukum/lazystream/errors"
	"github.com/kbukum/lazystream/observability"
	"github.com/kbukum/lazystream/pipeline"
	"github.com/kbukum/lazystream/sequences"
	"github.com/kbukum/lazystream/validation"
)

func init() {
	addCommand("item", "Print the element at an index", "The item command prints the element at a zero-based index.", func() flags.Commander {
		return &cmdItem{}
	})
}

type cmdItem struct {
	Positional struct {
		Sequence string `positional-arg-name:"<sequence>"`
		Index    int    `positional-arg-name:"<index>"`
	} `positional-args:"yes" required:"yes"`
}

func (x *cmdItem) Execute(args []string) error {
	if len(args) > 0 {
		return errExtraArgs
	}
	name, index := x.Positional.Sequence, x.Positional.Index
	return runCommand("item", name, func(ctx context.Context, env *environment) (int, error) {
		err := validation.New().
			Range("index", index, 0, env.cfg.Stream.MaxCount-1).
			Validate()
		if err != nil {
			return 0, err
		}

		s, err := sequences.Lookup(name)
		if err != nil {
			return 0, err
		}
		s = observability.Instrument(ctx, env.metrics, name, s)

		// Pulled through the pipeline so the timeout can interrupt the walk.
		prefix, err := pipeline.Collect(ctx, pipeline.Take(pipeline.FromStream(s), index+1))
		if err != nil {
			return 0, err
		}
		if len(prefix) <= index {
			return 0, apperrors.EmptyStream("item").WithDetail("index", index)
		}
		fmt.Fprintln(Stdout, prefix[index])
		return 1, nil
	})
}
