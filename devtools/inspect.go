package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"devtools.znkr.io/devtools/inspect"
	"devtools.znkr.io/devtools/report"
)

var inspectFlags struct {
	text    string
	format  string
	copy    bool
	archive string
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [FILE]",
	Short: "Finds whitespace, control and full-width characters",
	Long: `Lists every space, tab, line break, carriage return, full-width and control character of
a text together with its position and code.

FILE is read from stdin if it is missing or "-". Use --text to pass the text literally.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ins, err := resolveInputs(args, []input{
			{literal: inspectFlags.text, given: cmd.Flags().Changed("text")},
		})
		if err != nil {
			return err
		}
		texts, err := readInputs(ins, cmd.InOrStdin())
		if err != nil {
			return err
		}

		formatName := cfg.Inspect.Format
		if cmd.Flags().Changed("format") {
			formatName = inspectFlags.format
		}
		format, err := report.ParseFormat(formatName)
		if err != nil {
			return err
		}

		return runInspect(cmd.OutOrStdout(), texts[0], format)
	},
}

func init() {
	fs := inspectCmd.Flags()
	fs.StringVar(&inspectFlags.text, "text", "", "text to inspect, instead of a file")
	fs.StringVarP(&inspectFlags.format, "format", "f", "", "output format (text, markdown, html, json)")
	fs.BoolVar(&inspectFlags.copy, "copy", false, "copy the text report to the clipboard")
	fs.StringVar(&inspectFlags.archive, "archive", "", "also write the report in all formats to this tar file")
}

func runInspect(w io.Writer, text string, format report.Format) error {
	findings, err := inspect.Inspect(text)
	if errors.Is(err, inspect.ErrEmptyInput) {
		return emptyInputError{cat.T("stringInspector.emptyInput")}
	}
	if err != nil {
		return err
	}
	logger.Debug("Inspected input", zap.Int("findings", len(findings)))

	if err := report.WriteInspect(w, format, cat, text, findings); err != nil {
		return err
	}
	if inspectFlags.copy {
		if err := copyText(report.InspectText(cat, findings)); err != nil {
			return err
		}
	}
	if inspectFlags.archive != "" {
		err := archive(inspectFlags.archive, "inspect", func(w io.Writer, f report.Format) error {
			return report.WriteInspect(w, f, cat, text, findings)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
