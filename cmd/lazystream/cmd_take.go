package main

import (
	"context"
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/kbukum/lazystream/observability"
	"github.com/kbukum/lazystream/pipeline"
	"github.com/kbukum/lazystream/sequences"
	"github.com/kbukum/lazystream/validation"
)

const takeLongHelp = `
The take command prints the first elements of a sequence, one per line.
With --skip, that many elements are dropped first. With --inline the
elements are printed on one line as <a b c>, eliding any past the 32nd.
`

func init() {
	addCommand("take", "Print the first elements of a sequence", takeLongHelp, func() flags.Commander {
		return &cmdTake{}
	})
}

type cmdTake struct {
	Count      int  `short:"n" long:"count" default:"-1" description:"Number of elements (config default when negative)"`
	Skip       int  `long:"skip" description:"Number of elements to drop first"`
	Inline     bool `long:"inline" description:"Print the elements on one line"`
	Positional struct {
		Sequence string `positional-arg-name:"<sequence>"`
	} `positional-args:"yes" required:"yes"`
}

func (x *cmdTake) Execute(args []string) error {
	if len(args) > 0 {
		return errExtraArgs
	}
	name := x.Positional.Sequence
	return runCommand("take", name, func(ctx context.Context, env *environment) (int, error) {
		n, err := env.countArg("count", x.Count)
		if err != nil {
			return 0, err
		}
		err = validation.New().
			Range("skip", x.Skip, 0, env.cfg.Stream.MaxCount).
			Validate()
		if err != nil {
			return 0, err
		}

		s, err := sequences.Lookup(name)
		if err != nil {
			return 0, err
		}
		s, err = observability.Instrument(ctx, env.metrics, name, s).Skip(x.Skip)
		if err != nil {
			return 0, err
		}

		out, errFn := pipeline.ToStream(ctx, pipeline.Take(pipeline.FromStream(s), n))
		if x.Inline {
			out.Walk(func(int) {})
			fmt.Fprintln(Stdout, out.String())
		} else if err := out.Fprint(Stdout); err != nil {
			return 0, err
		}
		return out.Length(), errFn()
	})
}
