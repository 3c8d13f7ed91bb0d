package journal

import "fmt"

// ValidationError reports a rejected mutation: empty required text, an
// unknown activity or session type, or a malformed import. The document is
// left unchanged.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IndexError reports a chapter removal with an out-of-range index. The
// document is left unchanged.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("chapter index %d out of range (%d entries)", e.Index, e.Len)
}
