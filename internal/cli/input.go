package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/suffixlens/pkg/errors"
)

// inputFlags select where the text comes from when no argument is given.
type inputFlags struct {
	file        string // path to read, "-" for stdin
	keepNewline bool   // keep a trailing newline from files and pipes
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.file, "file", "", "read text from a file (- for stdin)")
	cmd.Flags().BoolVar(&f.keepNewline, "keep-newline", false, "keep a trailing newline read from a file or stdin")
}

// readText returns the text to analyze: the first argument verbatim, else
// the file, else stdin. Reading from an interactive terminal is refused so
// the command does not hang waiting for input.
func readText(args []string, f inputFlags, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	var data []byte
	var err error
	if f.file != "" && f.file != "-" {
		data, err = os.ReadFile(f.file)
		if os.IsNotExist(err) {
			return "", errors.Wrap(errors.ErrCodeNotFound, err, "input file %s", f.file)
		}
		if err != nil {
			return "", fmt.Errorf("read %s: %w", f.file, err)
		}
	} else {
		if file, ok := stdin.(*os.File); ok && isatty.IsTerminal(file.Fd()) {
			return "", errors.New(errors.ErrCodeInvalidInput, "no input: pass text as an argument, use --file, or pipe it on stdin")
		}
		data, err = io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
	}

	text := string(data)
	if !f.keepNewline {
		text = trimNewline(text)
	}
	return text, nil
}

// trimNewline drops one trailing "\n" or "\r\n".
func trimNewline(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	return strings.TrimSuffix(s, "\n")
}

// writeOutput writes data to path, or to w when path is empty or "-".
func writeOutput(path string, data []byte, w io.Writer) error {
	if path == "" || path == "-" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	newPrinter(w).file(path)
	return nil
}
