package pre2tex

import (
	"errors"
	"fmt"
)

// Sentinel errors for transpiler construction.
var (
	ErrMarkerNotSingleByte = errors.New("marker must be a single non-space byte")
	ErrMarkersEqual        = errors.New("header and alignment markers must differ")
	ErrEmptySentinel       = errors.New("sentinel cannot be empty")
	ErrInvalidMaxLevel     = errors.New("max header level out of range")
)

// InvariantError reports a broken pipeline invariant: a block rendered with
// zero content lines, or a heading level the renderer does not support.
// These indicate a bug in the caller or the pipeline, not bad user input,
// so they are raised via panic rather than returned. The CLI recovers them
// at the per-file boundary; library callers that want the same behavior can
// do likewise with errors.As on the recovered value.
type InvariantError struct {
	Stage  string // pipeline stage that detected the violation
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("pre2tex: invariant violated in %s: %s", e.Stage, e.Detail)
}

// invariant panics with an *InvariantError.
func invariant(stage, format string, args ...any) {
	panic(&InvariantError{Stage: stage, Detail: fmt.Sprintf(format, args...)})
}
