package exit

import (
	"fmt"
	"io"
)

// Stream selects where a result message is printed.
type Stream int

const (
	Stdout Stream = iota
	Stderr
)

// Result holds the message and exit code a command finishes with.
type Result struct {
	Stream   Stream
	ExitCode int
	Message  string
}

// Print writes the message to stdout or stderr depending on the stream.
func (r *Result) Print(stdout, stderr io.Writer) {
	w := stdout
	if r.Stream == Stderr {
		w = stderr
	}
	fmt.Fprint(w, r.Message)
}

func Success(message string) *Result {
	return &Result{
		Stream:   Stdout,
		ExitCode: 0,
		Message:  message,
	}
}

func Error(message string) *Result {
	return &Result{
		Stream:   Stderr,
		ExitCode: 1,
		Message:  message,
	}
}

func Errorf(format string, a ...any) *Result {
	return Error(fmt.Sprintf(format, a...))
}

// Usage reports a command line mistake followed by the usage text.
func Usage(err error, usage string) *Result {
	return &Result{
		Stream:   Stderr,
		ExitCode: 2,
		Message:  fmt.Sprintf("Error: %v\n\n%s\n", err, usage),
	}
}
