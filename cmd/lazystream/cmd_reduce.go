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

const reduceLongHelp = `
The reduce command folds the first elements of a sequence into one value.
sum starts from 0, product from 1 and count from 0. Integer overflow wraps.
`

var reducers = map[string]struct {
	initial int
	fn      func(acc, v int) int
}{
	"sum":     {0, func(acc, v int) int { return acc + v }},
	"product": {1, func(acc, v int) int { return acc * v }},
	"count":   {0, func(acc, _ int) int { return acc + 1 }},
}

func init() {
	addCommand("reduce", "Fold a prefix of a sequence into one value", reduceLongHelp, func() flags.Commander {
		return &cmdReduce{}
	})
}

type cmdReduce struct {
	Count      int    `short:"n" long:"count" default:"-1" description:"Number of elements (config default when negative)"`
	Op         string `long:"op" default:"sum" description:"Reduction to apply: sum, product or count"`
	Positional struct {
		Sequence string `positional-arg-name:"<sequence>"`
	} `positional-args:"yes" required:"yes"`
}

func (x *cmdReduce) Execute(args []string) error {
	if len(args) > 0 {
		return errExtraArgs
	}
	name := x.Positional.Sequence
	return runCommand("reduce", name, func(ctx context.Context, env *environment) (int, error) {
		n, err := env.countArg("count", x.Count)
		if err != nil {
			return 0, err
		}
		err = validation.New().
			Required("op", x.Op).
			OneOf("op", x.Op, []string{"sum", "product", "count"}).
			Validate()
		if err != nil {
			return 0, err
		}
		r := reducers[x.Op]

		s, err := sequences.Lookup(name)
		if err != nil {
			return 0, err
		}
		s = observability.Instrument(ctx, env.metrics, name, s)

		result, err := pipeline.Collect(ctx, pipeline.Reduce(pipeline.Take(pipeline.FromStream(s), n), r.initial, r.fn))
		if err != nil {
			return 0, err
		}
		fmt.Fprintln(Stdout, result[0])
		return 1, nil
	})
}
