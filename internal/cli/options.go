// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"revcomp-core/fasta"
	"revcomp/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	Input  string // FASTA path or "-" for stdin
	Output string // output path or "-" for stdout
	Width  int    // bases per output line
	Quiet  bool
}

// UsageError marks a bad invocation (exit code 2).
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// NewCommand returns the root command. run is called with validated Options.
func NewCommand(run func(cmd *cobra.Command, opts Options) error) *cobra.Command {
	var opt Options
	cmd := &cobra.Command{
		Use:   "revcomp [flags] [file|-]",
		Short: "Reverse-complement every record of a FASTA stream",
		Long: `Reads nucleotide FASTA from a file or stdin and writes each record with the
same name line and the reverse complement of its sequence, wrapped at a fixed
width. IUPAC ambiguity codes are complemented; case is preserved. Any other
sequence byte is an error.`,
		Version: version.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return &UsageError{err}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opt.Input = "-"
			if len(args) == 1 {
				opt.Input = args[0]
			}
			if err := opt.validate(); err != nil {
				return &UsageError{err}
			}
			return run(cmd, opt)
		},
	}
	cmd.SetVersionTemplate("revcomp version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return &UsageError{err} })

	f := cmd.Flags()
	f.StringVarP(&opt.Output, "output", "o", "-", "output file ('-' for stdout)")
	f.IntVarP(&opt.Width, "width", "w", fasta.DefaultLineWidth, "bases per output line")
	f.BoolVarP(&opt.Quiet, "quiet", "q", false, "suppress warnings")
	return cmd
}

func (o Options) validate() error {
	if o.Width < 1 {
		return fmt.Errorf("--width must be >= 1 (got %d)", o.Width)
	}
	if o.Output == "" {
		return errors.New("--output must not be empty")
	}
	return nil
}
