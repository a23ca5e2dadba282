// internal/app/app.go
package app

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"revcomp-core/fasta"
	"revcomp/internal/cli"
	"revcomp/internal/cmdutil"
	"revcomp/internal/pipeline"
	"revcomp/internal/writers"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitDataError   = 1
	ExitUsage       = 2
	ExitOutputError = 3
	ExitInterrupted = 130
)

// RunContext parses argv, runs the pipeline and returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	code := ExitOK
	cmd := cli.NewCommand(func(_ *cobra.Command, opts cli.Options) error {
		code = execute(ctx, opts, stdin, stdout, stderr)
		return nil
	})
	if argv == nil {
		argv = []string{} // cobra falls back to os.Args on nil
	}
	cmd.SetArgs(argv)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		_, _ = io.WriteString(stderr, cmd.UsageString())
		return ExitUsage
	}
	return code
}

func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}

func execute(ctx context.Context, opts cli.Options, stdin io.Reader, stdout, stderr io.Writer) int {
	in, err := fasta.Open(opts.Input, stdin)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return ExitDataError
	}
	defer in.Close()

	out, err := writers.Create(opts.Output, stdout)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return ExitOutputError
	}

	st, runErr := pipeline.Run(ctx, in, out, pipeline.Config{LineWidth: opts.Width})
	if cerr := out.Close(); cerr != nil && runErr == nil {
		runErr = cerr
	}
	switch {
	case runErr == nil:
		return ExitOK
	case writers.IsBrokenPipe(runErr):
		cmdutil.Warnf(stderr, opts.Quiet, "output closed after %d records", st.Records)
		return ExitOK
	case errors.Is(runErr, context.Canceled), errors.Is(runErr, context.DeadlineExceeded):
		return ExitInterrupted
	case pipeline.IsDataError(runErr):
		cmdutil.Errorf(stderr, "%v", runErr)
		return ExitDataError
	default:
		cmdutil.Errorf(stderr, "%v", runErr)
		return ExitOutputError
	}
}
