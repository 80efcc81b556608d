package codec

import (
	"errors"
	"fmt"
)

// ErrFieldCount reports an ordinal line whose field count differs from the schema.
// It is only returned with options.Options.StrictFieldCount set; otherwise such lines
// are skipped.
var ErrFieldCount = errors.New("field count mismatch")

// RecordError wraps the failure of a single line.
type RecordError struct {
	Line int // one-based, counted over the lines yielded by the source
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// isRecordError reports whether err is local to one line.
func isRecordError(err error) bool {
	var re *RecordError
	return errors.As(err, &re)
}
