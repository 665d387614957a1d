// Package paniclog turns panics into errors at the edge of the program,
// logging the stack trace so that the cause is not lost.
package paniclog

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/abhinav/huffpack/internal/log"
	"go.uber.org/multierr"
)

// Handle handles a recovered panic value, logging it and its stack trace at
// error level. Returns the error version of the panic, if any.
func Handle(pval interface{}, logger *log.Logger) error {
	if pval == nil {
		return nil
	}

	logger.Error(fmt.Sprintf("panic: %v", pval))
	stack := log.Writer{Log: logger, Level: log.Error}
	_, _ = io.WriteString(&stack, string(debug.Stack()))
	_ = stack.Close()

	if err, ok := pval.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", pval)
}

// Recover recovers a panic and appends it into the given error pointer.
// It must be deferred directly.
//
//	defer paniclog.Recover(&err, logger)
func Recover(err *error, logger *log.Logger) {
	if pval := recover(); pval != nil {
		*err = multierr.Append(*err, Handle(pval, logger))
	}
}
