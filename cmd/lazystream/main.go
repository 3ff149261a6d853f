package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	apperrors "github.com/kbukum/lazystream/errors"
)

var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

type options struct {
	Config  string `short:"c" long:"config" description:"Path to a YAML config file"`
	EnvFile string `long:"env-file" description:"Path to a .env file"`
	Verbose bool   `short:"v" long:"verbose" description:"Log at debug level"`
	RunID   string `long:"run-id" description:"UUID to tag this run's logs and spans with"`
}

var optionsData options

const (
	shortHelp = "Explore lazily evaluated integer sequences"
	longHelp  = `
lazystream prints prefixes, single elements, reductions and element-wise
sums of infinite integer sequences. Elements are computed on demand and
memoized, so only what a command needs is ever realized.
`
)

type cmdInfo struct {
	name, shortHelp, longHelp string
	builder                   func() flags.Commander
}

var commands []*cmdInfo

// addCommand registers a command. Each parse builds a fresh command value.
func addCommand(name, shortHelp, longHelp string, builder func() flags.Commander) *cmdInfo {
	info := &cmdInfo{
		name:      name,
		shortHelp: shortHelp,
		longHelp:  longHelp,
		builder:   builder,
	}
	commands = append(commands, info)
	return info
}

// Parser creates the command-line parser with every registered command.
func Parser() *flags.Parser {
	optionsData = options{}
	parser := flags.NewParser(&optionsData, flags.HelpFlag|flags.PassDoubleDash)
	parser.ShortDescription = shortHelp
	parser.LongDescription = longHelp
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.shortHelp, strings.TrimSpace(c.longHelp), c.builder()); err != nil {
			panic(fmt.Sprintf("cannot add command %q: %v", c.name, err))
		}
	}
	return parser
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(Stderr, "error: %v\n", err)
		os.Exit(apperrors.ExitCode(err))
	}
}

func run(args []string) error {
	parser := Parser()
	_, err := parser.ParseArgs(args)
	if err == nil {
		return nil
	}
	if e, ok := err.(*flags.Error); ok {
		if e.Type == flags.ErrHelp {
			fmt.Fprintln(Stdout, e.Message)
			return nil
		}
		return apperrors.New(apperrors.ErrCodeInvalidInput, e.Message).WithCause(err)
	}
	return err
}

var errExtraArgs = apperrors.New(apperrors.ErrCodeInvalidInput, "too many arguments for command")
