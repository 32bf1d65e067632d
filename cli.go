package planit

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/jac-oblong/planit/galaxy"
	"github.com/jac-oblong/planit/internal/util"
)

var ErrSignalReceived = errors.New("received signal")

// treeWidth is how wide the list output is allowed to get when the
// output is not a terminal.
const treeWidth = 80

// Run parses the command line and dispatches: `planit init` seeds a
// new database, `planit list` prints it, anything else starts the
// TUI.
func (cli CLI) Run(ctx context.Context, argv []string) error {
	var opts CLIOptions
	args, err := opts.parse(argv[1:])
	if err != nil {
		return err
	}

	if opts.OptHelp {
		os.Stdout.Write(opts.help())
		return nil
	}

	if opts.OptVersion {
		fmt.Fprintf(os.Stdout, "planit version %s\n", Version)
		return nil
	}

	if opts.OptDir != "" {
		if err := os.Chdir(opts.OptDir); err != nil {
			return errors.Wrapf(err, "failed to change directory to %s", opts.OptDir)
		}
	}

	if len(args) > 0 {
		tracer.Printf("CLI.Run: dispatching to %s", args[0])
		switch args[0] {
		case "init":
			return cli.runInit(args[1:])
		case "list":
			return cli.runList(opts)
		default:
			return errors.Errorf("unknown command '%s'", args[0])
		}
	}

	p := New()
	p.Argv = argv
	p.rcfile = opts.OptRcfile
	return p.Run(ctx)
}

// runInit creates a fresh database in the current directory.
func (cli CLI) runInit(args []string) error {
	if len(args) < 1 {
		return errors.New("init requires a project title")
	}

	g := galaxy.New()
	g.Title = args[0]
	g.Description = strings.Join(args[1:], " ")

	dir, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to determine working directory")
	}
	if err := g.Init(dir); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Initialized empty planit database %s\n", galaxy.DefaultFilename)
	return nil
}

// runList prints the database as a tree.
func (cli CLI) runList(opts CLIOptions) error {
	g, err := galaxy.Load()
	if err != nil {
		return err
	}

	printer := util.TreePrinter{
		Width:       treeWidth,
		Description: true,
		Recursive:   opts.OptRecurse,
	}
	return printer.Print(os.Stdout, g.Title, g.Description, g.TreeRoots())
}
