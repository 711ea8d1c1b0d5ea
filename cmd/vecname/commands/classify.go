package commands

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crimson-sun/vecname/internal/output"
	"github.com/crimson-sun/vecname/internal/output/async"
	"github.com/crimson-sun/vecname/internal/output/file"
	"github.com/crimson-sun/vecname/internal/output/stdout"
	"github.com/crimson-sun/vecname/internal/pipeline"
)

func newClassifyCmd(a *app) *cobra.Command {
	var (
		input   string
		tee     bool
		unique  bool
		maxSize int64
	)

	cmd := &cobra.Command{
		Use:   "classify [names...]",
		Short: "Classify vector names",
		Long: `Classify vector names given as arguments, or read from --input (or stdin)
when no arguments are given. Input lines may hold several whitespace separated
names; blank lines and lines starting with '#' are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.buildOutput(cmd.OutOrStdout(), tee, maxSize)
			if err != nil {
				return err
			}

			var opts []pipeline.Option
			if unique {
				opts = append(opts, pipeline.WithUnique())
			}
			p := pipeline.New(a.eng, out, opts...)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			runErr := a.run(ctx, p, cmd.InOrStdin(), input, args)
			if err := p.Close(); err != nil && runErr == nil {
				runErr = err
			}
			if errors.Is(runErr, context.Canceled) {
				zap.S().Infow("interrupted")
				return nil
			}
			return runErr
		},
	}

	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "", "read names from this file instead of stdin")
	f.StringP("verbosity", "v", "standard", "record fields (minimal, standard, full)")
	f.StringP("output", "o", "", "append NDJSON records to this file")
	f.BoolVar(&tee, "tee", false, "with --output, also write records to stdout")
	f.BoolVarP(&unique, "unique", "u", false, "emit each distinct name once")
	f.Int64Var(&maxSize, "max-size", 0, "rotate the --output file at this many bytes (0 disables)")
	return cmd
}

func (a *app) run(ctx context.Context, p *pipeline.Pipeline, stdin io.Reader, input string, args []string) error {
	if len(args) > 0 {
		return p.Query(ctx, args)
	}
	r := stdin
	if input != "" && input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer f.Close()
		r = f
	}
	return p.Stream(ctx, r)
}

// buildOutput assembles the record sinks. stdout is used unless --output is
// set without --tee. The file gets the same format as stdout and is drained
// asynchronously.
func (a *app) buildOutput(w io.Writer, tee bool, maxSize int64) (output.Output, error) {
	verbosity, err := output.ParseVerbosity(a.cfg.Output.Verbosity)
	if err != nil {
		return nil, err
	}
	format, err := a.format()
	if err != nil {
		return nil, err
	}
	console := stdout.New(format, verbosity, a.cfg.Output.Pretty, stdout.WithWriter(w))

	if a.cfg.Output.File == "" {
		return console, nil
	}
	f, err := file.New(a.cfg.Output.File, format, verbosity, file.WithMaxSize(maxSize))
	if err != nil {
		return nil, err
	}
	sink := async.New(f)
	if !tee {
		return sink, nil
	}
	return output.Tee(console, sink), nil
}
