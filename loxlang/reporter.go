package loxlang

import (
	"fmt"
	"io"
	"os"
)

// ErrorReporter receives lexical diagnostics. Report is the primitive;
// Error is Report with no position qualifier. Implementations never fail:
// a reporter that cannot emit has nothing useful to tell the scanner.
type ErrorReporter interface {
	Error(line int, message string)
	Report(line int, position string, message string)
}

// WriterReporter writes diagnostics to a stream, one line each, in the form
// [line N] Error<POS>: MESSAGE
type WriterReporter struct {
	W io.Writer
}

func NewStderrReporter() *WriterReporter {
	return &WriterReporter{
		W: os.Stderr,
	}
}

func (r *WriterReporter) Error(line int, message string) {
	r.Report(line, "", message)
}

func (r *WriterReporter) Report(line int, position string, message string) {
	fmt.Fprintf(r.W, "[line %d] Error%s: %s\n", line, position, message)
}

// CollectReporter accumulates formatted diagnostics instead of emitting them.
type CollectReporter struct {
	Reports []string
}

func (r *CollectReporter) Error(line int, message string) {
	r.Report(line, "", message)
}

func (r *CollectReporter) Report(line int, position string, message string) {
	r.Reports = append(r.Reports, fmt.Sprintf("[line %d] Error%s: %s", line, position, message))
}
