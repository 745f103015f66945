package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"devtools.znkr.io/devtools/compare"
	"devtools.znkr.io/devtools/highlight"
	"devtools.znkr.io/devtools/report"
)

var compareFlags struct {
	textA, textB string
	format       string
	algorithm    string
	syntax       string
	copy         bool
	archive      string
	watch        bool
}

var compareCmd = &cobra.Command{
	Use:   "compare [A] [B]",
	Short: "Compares two texts line by line",
	Long: `Compares two texts line by line and reports the number of differing characters, simple
statistics about both texts and a diff listing.

A and B are file names, "-" reads from stdin. Use --text-a and --text-b to pass texts literally.
By default, lines are compared by position; --algorithm=myers pairs them by content instead.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ins, err := resolveInputs(args, []input{
			{literal: compareFlags.textA, given: cmd.Flags().Changed("text-a")},
			{literal: compareFlags.textB, given: cmd.Flags().Changed("text-b")},
		})
		if err != nil {
			return err
		}

		format, algo, err := compareSettings(cmd)
		if err != nil {
			return err
		}

		var opts []highlight.Option
		switch {
		case compareFlags.syntax != "":
			opts = append(opts, highlight.Lang(compareFlags.syntax))
		case ins[0].isFile():
			opts = append(opts, highlight.LangFromFilename(ins[0].path))
		}

		run := func() error {
			texts, err := readInputs(ins, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runCompare(cmd.OutOrStdout(), texts[0], texts[1], format, algo, opts)
		}

		if !compareFlags.watch {
			return run()
		}
		if !ins[0].isFile() || !ins[1].isFile() {
			return errors.New("--watch requires two input files")
		}
		// Empty inputs are reported without stopping the watch.
		update := func() error {
			err := run()
			if isEmptyInput(err) {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return nil
			}
			return err
		}
		if err := update(); err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return watch(ctx, []string{ins[0].path, ins[1].path}, update)
	},
}

func init() {
	fs := compareCmd.Flags()
	fs.StringVar(&compareFlags.textA, "text-a", "", "first text, instead of a file")
	fs.StringVar(&compareFlags.textB, "text-b", "", "second text, instead of a file")
	fs.StringVarP(&compareFlags.format, "format", "f", "", "output format (text, markdown, html, json)")
	fs.StringVar(&compareFlags.algorithm, "algorithm", "", "line pairing (aligned, myers)")
	fs.StringVar(&compareFlags.syntax, "syntax", "", "syntax highlighting of HTML reports, e.g. go (default derived from the file name of A)")
	fs.BoolVar(&compareFlags.copy, "copy", false, "copy the text report to the clipboard")
	fs.StringVar(&compareFlags.archive, "archive", "", "also write the report in all formats to this tar file")
	fs.BoolVarP(&compareFlags.watch, "watch", "w", false, "compare again whenever an input file changes")
}

// compareSettings combines flags and config.
func compareSettings(cmd *cobra.Command) (report.Format, compare.Algorithm, error) {
	formatName := cfg.Compare.Format
	if cmd.Flags().Changed("format") {
		formatName = compareFlags.format
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return "", 0, err
	}

	algoName := cfg.Compare.Algorithm
	if cmd.Flags().Changed("algorithm") {
		algoName = compareFlags.algorithm
	}
	algo, err := compare.ParseAlgorithm(algoName)
	if err != nil {
		return "", 0, err
	}
	return format, algo, nil
}

func runCompare(w io.Writer, a, b string, format report.Format, algo compare.Algorithm, opts []highlight.Option) error {
	res, err := compare.Compare(a, b, compare.WithAlgorithm(algo))
	if errors.Is(err, compare.ErrEmptyInput) {
		return emptyInputError{cat.T("stringCompare.emptyInput")}
	}
	if err != nil {
		return err
	}
	logger.Debug("Compared inputs",
		zap.Stringer("algorithm", algo),
		zap.Int("differences", res.Differences),
		zap.Int("lines", len(res.Lines)))

	if err := report.WriteCompare(w, format, cat, res, opts...); err != nil {
		return err
	}
	if compareFlags.copy {
		if err := copyText(report.CompareText(cat, res)); err != nil {
			return err
		}
	}
	if compareFlags.archive != "" {
		err := archive(compareFlags.archive, "compare", func(w io.Writer, f report.Format) error {
			return report.WriteCompare(w, f, cat, res, opts...)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// emptyInputError carries the localized message for an empty input.
type emptyInputError struct {
	msg string
}

func (e emptyInputError) Error() string { return e.msg }

func isEmptyInput(err error) bool {
	var e emptyInputError
	return errors.As(err, &e)
}
