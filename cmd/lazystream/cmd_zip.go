package main

import (
	"context"
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/kbukum/lazystream/observability"
	"github.com/kbukum/lazystream/pipeline"
	"github.com/kbukum/lazystream/sequences"
	"github.com/kbukum/lazystream/stream"
)

const zipLongHelp = `
The zip command prints the element-wise sums of a prefix of <a> (-n
elements) and a prefix of <b> (-m elements, defaulting to -n). Output stops
with the shorter prefix unless --long is given, in which case the longer
prefix's remaining elements are printed unchanged.
`

func init() {
	addCommand("zip", "Print element-wise sums of two sequences", zipLongHelp, func() flags.Commander {
		return &cmdZip{}
	})
}

type cmdZip struct {
	Count      int  `short:"n" long:"count" default:"-1" description:"Elements taken from <a> (config default when negative)"`
	CountB     int  `short:"m" long:"count-b" default:"-1" description:"Elements taken from <b> (same as -n when negative)"`
	Long       bool `long:"long" description:"Continue to the end of the longer prefix"`
	Positional struct {
		A string `positional-arg-name:"<a>"`
		B string `positional-arg-name:"<b>"`
	} `positional-args:"yes" required:"yes"`
}

func (x *cmdZip) Execute(args []string) error {
	if len(args) > 0 {
		return errExtraArgs
	}
	label := x.Positional.A + "+" + x.Positional.B
	return runCommand("zip", label, func(ctx context.Context, env *environment) (int, error) {
		n, err := env.countArg("count", x.Count)
		if err != nil {
			return 0, err
		}
		m := n
		if x.CountB >= 0 {
			if m, err = env.countArg("count-b", x.CountB); err != nil {
				return 0, err
			}
		}

		a, err := sequences.Lookup(x.Positional.A)
		if err != nil {
			return 0, err
		}
		b, err := sequences.Lookup(x.Positional.B)
		if err != nil {
			return 0, err
		}
		a = observability.Instrument(ctx, env.metrics, x.Positional.A, a).Take(n)
		b = observability.Instrument(ctx, env.metrics, x.Positional.B, b).Take(m)

		sums := stream.ZipWith(a, b, !x.Long, func(u, v int) int { return u + v })
		count := 0
		err = pipeline.ForEach(ctx, pipeline.FromStream(sums), func(_ context.Context, v int) error {
			count++
			_, err := fmt.Fprintln(Stdout, v)
			return err
		})
		return count, err
	})
}
