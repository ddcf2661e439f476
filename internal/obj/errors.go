package obj

import (
	"errors"
	"fmt"
)

// Line-level failure kinds. Match with errors.Is.
var (
	ErrMalformedRecord      = errors.New("malformed record")
	ErrUnsupportedFaceArity = errors.New("unsupported face arity")
	ErrIndexOutOfRange      = errors.New("index out of range")
)

// LineError reports why one input line was rejected.
type LineError struct {
	Line int    // 1-based line number
	Text string // the line as read, untrimmed
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("obj: line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
