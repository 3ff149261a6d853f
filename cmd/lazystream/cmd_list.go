package main

import (
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/kbukum/lazystream/sequences"
)

func init() {
	addCommand("list", "List the known sequences", "", func() flags.Commander {
		return &cmdList{}
	})
}

type cmdList struct{}

func (x *cmdList) Execute(args []string) error {
	if len(args) > 0 {
		return errExtraArgs
	}
	for _, name := range sequences.Names() {
		fmt.Fprintln(Stdout, name)
	}
	return nil
}
