package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/jac-oblong/planit"
	"github.com/jac-oblong/planit/internal/util"
)

func main() {
	os.Exit(_main())
}

func _main() int {
	cli := planit.CLI{}
	if err := cli.Run(context.Background(), os.Args); err != nil {
		cause := errors.Cause(err)
		if cause == planit.ErrSignalReceived {
			// the terminal is restored by now; exit quietly like an
			// interrupted curses program should
			return 1
		}
		if util.IsIgnorableError(cause) {
			if st, ok := util.GetExitStatus(cause); ok {
				return st
			}
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}
