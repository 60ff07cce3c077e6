// Command helena is a thin smoke-test host for the Helena core: run a
// script, dump the output of each pipeline stage, or drop into a tiny
// line-mode REPL. It exercises the pipeline end to end; it is not a
// dialect implementation of its own.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
