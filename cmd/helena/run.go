package main

import (
	"context"
	"fmt"
	"os"

	"github.com/helena-lang/helena/exec"
	"github.com/helena-lang/helena/helena"
	"github.com/helena-lang/helena/profile"
	"github.com/helena-lang/helena/value"
	"github.com/helena-lang/helena/vlog"
	"github.com/spf13/cobra"
)

var (
	runEval    string
	runProfile bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a script against the demo command set",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runEval, "eval", "e", "", "run inline source instead of reading a file")
	runCmd.Flags().BoolVar(&runProfile, "profile", false, "print a per-operation timing summary after execution")
}

func runScript(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	src, err := loadInput(path, runEval)
	if err != nil {
		return err
	}

	ex := newExecutor()

	var profiler *profile.Profiler
	if runProfile {
		profiler = profile.NewProfiler()
		if ex.Trace == nil {
			ex.Trace = vlog.NewDiscard()
		}
		profiler.Attach(ex.Trace)
	}

	result, err := helena.Run(context.Background(), src, ex)

	if profiler != nil {
		profiler.Finish(ex.Trace).FormatText(os.Stdout)
	}
	if ex.Trace != nil {
		ex.Trace.Close()
	}
	if err != nil {
		return err
	}
	if !value.AsNilValue(result) {
		fmt.Println(formatValue(result))
	}
	return nil
}

// newExecutor wires the demo command set and resolvers together and
// applies the --trace/--trace-file flags.
func newExecutor() *exec.Executor {
	vars := newDemoVariables()
	ex := exec.New(vars, demoCommands(vars), helena.DefaultSelectorResolver{})

	if traceOn || traceFile != "" {
		var session *vlog.Session
		if traceFile != "" {
			session = vlog.NewFile(traceFile)
		} else {
			session = vlog.New()
		}
		session.Enable()
		ex.Trace = session
	}
	return ex
}
