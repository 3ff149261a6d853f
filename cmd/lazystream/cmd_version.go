package main

import (
	"github.com/jessevdk/go-flags"

	"github.com/kbukum/lazystream/version"
)

func init() {
	addCommand("version", "Print version information", "", func() flags.Commander {
		return &cmdVersion{}
	})
}

type cmdVersion struct{}

func (x *cmdVersion) Execute(args []string) error {
	if len(args) > 0 {
		return errExtraArgs
	}
	return version.GetVersionInfo().Fprint(Stdout)
}
