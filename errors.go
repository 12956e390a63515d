package animbin

import "fmt"

// ErrorKind classifies decoding errors.
type ErrorKind int

const (
	// ErrUnexpectedEOF means the buffer ended before a field could be
	// fully read.
	ErrUnexpectedEOF ErrorKind = iota + 1
	// ErrMalformedLength means a count or string-length prefix decoded to
	// a negative or otherwise invalid value.
	ErrMalformedLength
	// ErrStructuralMismatch means the declared counts are inconsistent
	// with the content actually present.
	ErrStructuralMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnexpectedEOF:
		return "unexpected end of stream"
	case ErrMalformedLength:
		return "malformed length"
	case ErrStructuralMismatch:
		return "structural mismatch"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error carries the buffer offset and classification for diagnostics.
// Every error is fatal for the decode in progress: the caller must treat
// the whole input as corrupt.
type Error struct {
	Offset int64
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Offset > 0 {
		return fmt.Sprintf("animbin: %v at %d: %s", e.Kind, e.Offset, e.Detail)
	}
	return fmt.Sprintf("animbin: %v: %s", e.Kind, e.Detail)
}
