package animbin

import "math"

// Writer builds a byte buffer in the wire format the Reader consumes.
// Writes are infallible since the destination is memory.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// Bytes returns the accumulated buffer. The slice is shared with the
// Writer and must not be written to again after further Write calls.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// WriteInt32 appends v as 4 little-endian bytes.
func (w *Writer) WriteInt32(v int32) {
	w.buf = le.AppendUint32(w.buf, uint32(v))
}

// WriteInt64 appends v as 8 little-endian bytes.
func (w *Writer) WriteInt64(v int64) {
	w.buf = le.AppendUint64(w.buf, uint64(v))
}

// WriteString appends a 7-bit-encoded byte-count prefix followed by the
// UTF-8 bytes of s.
func (w *Writer) WriteString(s string) {
	v := uint32(len(s))
	for v >= 0x80 {
		w.buf = append(w.buf, byte(v)|0x80)
		v >>= 7
	}
	w.buf = append(w.buf, byte(v))
	w.buf = append(w.buf, s...)
}

// WriteMatrix appends the 16 float32 elements of m in row-major order.
func (w *Writer) WriteMatrix(m Matrix) {
	for _, f := range m {
		w.buf = le.AppendUint32(w.buf, math.Float32bits(f))
	}
}
