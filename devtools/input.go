package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"devtools.znkr.io/devtools/pack"
	"devtools.znkr.io/devtools/report"
)

// input is a text given on the command line, either literally or by file name. The file name "-"
// stands for stdin.
type input struct {
	path    string
	literal string
	given   bool // literal is set
}

func (in input) isFile() bool { return !in.given && in.path != "-" }

func (in input) read(stdin io.Reader) (string, error) {
	switch {
	case in.given:
		return in.literal, nil
	case in.path == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %v", err)
		}
		return string(b), nil
	default:
		b, err := os.ReadFile(in.path)
		if err != nil {
			return "", fmt.Errorf("reading input: %v", err)
		}
		return string(b), nil
	}
}

// resolveInputs assigns the positional arguments in order to the inputs that were not given
// literally. A single missing input without arguments is read from stdin.
func resolveInputs(args []string, ins []input) ([]input, error) {
	var missing int
	for _, in := range ins {
		if !in.given {
			missing++
		}
	}
	if missing == 1 && len(args) == 0 {
		args = []string{"-"}
	}
	if len(args) != missing {
		return nil, fmt.Errorf("want %d file arguments, got %d", missing, len(args))
	}

	ret := make([]input, len(ins))
	stdin := 0
	for i, in := range ins {
		if !in.given {
			in.path, args = args[0], args[1:]
			if in.path == "-" {
				stdin++
			}
		}
		ret[i] = in
	}
	if stdin > 1 {
		return nil, errors.New("stdin can only be read once")
	}
	return ret, nil
}

func readInputs(ins []input, stdin io.Reader) ([]string, error) {
	ret := make([]string, 0, len(ins))
	for _, in := range ins {
		s, err := in.read(stdin)
		if err != nil {
			return nil, err
		}
		ret = append(ret, s)
	}
	return ret, nil
}

// writeFunc writes a report in the given format.
type writeFunc func(w io.Writer, f report.Format) error

// archive writes the report in all formats into a tar file.
func archive(filename, name string, write writeFunc) error {
	docs := make([]pack.Doc, 0, len(report.Formats))
	for _, f := range report.Formats {
		var sb strings.Builder
		if err := write(&sb, f); err != nil {
			return err
		}
		docs = append(docs, pack.Doc{
			Name:     name + f.Ext(),
			MimeType: f.MimeType(),
			Data:     []byte(sb.String()),
		})
	}
	if err := pack.Pack(filename, docs); err != nil {
		return fmt.Errorf("writing archive: %v", err)
	}
	logger.Info("Wrote archive", zap.String("file", filename), zap.Int("reports", len(docs)))
	return nil
}

func copyText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%s: %v", cat.T("common.copyFailed"), err)
	}
	logger.Debug("Copied report to clipboard", zap.Int("bytes", len(text)))
	fmt.Fprintln(os.Stderr, cat.T("common.copied"))
	return nil
}
