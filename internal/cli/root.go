package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lu-zhengda/portkill/internal/format"
	"github.com/lu-zhengda/portkill/internal/logging"
	"github.com/lu-zhengda/portkill/internal/port"
	"github.com/lu-zhengda/portkill/internal/process"
	"github.com/spf13/cobra"
)

// Set via ldflags at build time.
var version = "dev"

const usageLine = "Usage: portkill <port1> <port2> <port3> ..."

// app carries the runner and parsed flags for one invocation.
type app struct {
	runner port.CmdRunner

	output  string
	dryRun  bool
	timeout time.Duration
	noColor bool
	debug   bool
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portkill <port>...",
		Short: "Kill the processes listening on TCP ports",
		Long: `portkill finds the processes listening on the given TCP ports using
netstat and force-kills each of them with taskkill.

Every requested port is searched, and every process found is killed even
if an earlier kill fails.`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          a.run,
	}

	cmd.SetVersionTemplate(fmt.Sprintf("portkill %s\n", version))
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	cmd.Flags().StringVarP(&a.output, "output", "o", outputText, "Output format (text, json, yaml)")
	cmd.Flags().BoolVar(&a.dryRun, "dry-run", false, "Show the processes that would be killed without killing them")
	cmd.Flags().DurationVar(&a.timeout, "timeout", 0, "Abort if the run takes longer than this (e.g. 30s); 0 disables")
	cmd.Flags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVarP(&a.debug, "debug", "D", false, "Log external commands to stderr")

	return cmd
}

// Execute runs the root command against the real system utilities.
func Execute() error {
	a := &app{runner: &port.RealCmdRunner{}}
	return execute(newRootCmd(a), a, os.Args[1:])
}

// execute runs cmd with args and prints any error to the command's stderr.
func execute(cmd *cobra.Command, a *app, args []string) error {
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		a.printError(cmd.ErrOrStderr(), err)
	}
	return err
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	logging.Setup(cmd.ErrOrStderr(), a.debug)

	if len(args) == 0 {
		fmt.Fprintln(out, usageLine)
		return nil
	}

	if err := validateOutput(a.output); err != nil {
		return err
	}

	ports, err := port.ParsePorts(args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	p := newPrinter(out, a.output == outputText, a.noColor)
	rep := &Report{
		Ports:   ports,
		DryRun:  a.dryRun,
		Results: []process.Outcome{},
	}

	p.notice("Searching for processes listening on ports: %s", format.List(format.Uints(ports)))

	pids, err := port.NewNetstatScanner(a.runner).ListeningPIDs(ctx, ports)
	if err != nil {
		return err
	}
	rep.PIDs = pids.Sorted()

	if len(rep.PIDs) == 0 {
		p.notice("Found no processes running on the given ports.")
		return writeReport(out, a.output, rep)
	}

	p.plain("Found PIDs: %s", format.List(format.Uints(rep.PIDs)))

	if a.dryRun {
		for _, pid := range rep.PIDs {
			p.notice("Would kill PID %d", pid)
		}
		return writeReport(out, a.output, rep)
	}

	terminator := process.NewTerminator(a.runner)
	for _, pid := range rep.PIDs {
		p.notice("Attempting to kill PID %d", pid)

		outcome, err := terminator.Kill(ctx, pid)
		if err != nil {
			return err
		}
		rep.Results = append(rep.Results, outcome)

		if outcome.Killed {
			p.success("Successfully killed PID %d", pid)
		} else {
			p.failure("Failed to kill PID %d: %s", pid, outcome.Reason)
		}
	}

	return writeReport(out, a.output, rep)
}

// printError writes err to w. Invalid ports are printed as-is; everything
// else is prefixed with "Error: ".
func (a *app) printError(w io.Writer, err error) {
	st := newStyles(w, a.noColor)
	msg := err.Error()

	var invalidPort *port.InvalidPortError
	if !errors.As(err, &invalidPort) {
		msg = "Error: " + msg
	}
	fmt.Fprintln(w, st.failure.Render(msg))
}
