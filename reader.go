package animbin

import (
	"encoding/binary"
	"fmt"
	"math"
)

var le = binary.LittleEndian

// maxLengthBytes bounds the 7-bit-encoded length prefix. Five 7-bit groups
// cover the full int32 range; a sixth byte can never be valid.
const maxLengthBytes = 5

// Reader is a forward-only cursor over an in-memory buffer. Every read
// advances the offset by the exact byte width of the value consumed; there
// is no rewind. All multi-byte fields are little-endian.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader { return &Reader{buf: buf} }

// Offset returns the current cursor position in bytes from the start of
// the buffer.
func (r *Reader) Offset() int64 { return int64(r.off) }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

func (r *Reader) take(n int, what string) ([]byte, error) {
	if n > len(r.buf)-r.off {
		return nil, &Error{
			Offset: int64(r.off),
			Kind:   ErrUnexpectedEOF,
			Detail: fmt.Sprintf("need %d bytes for %s, have %d", n, what, len(r.buf)-r.off),
		}
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// ReadInt32 consumes 4 bytes as a signed little-endian integer.
func (r *Reader) ReadInt32() (int32, error) {
	b, err := r.take(4, "int32")
	if err != nil {
		return 0, err
	}
	return int32(le.Uint32(b)), nil
}

// ReadInt64 consumes 8 bytes as a signed little-endian integer.
func (r *Reader) ReadInt64() (int64, error) {
	b, err := r.take(8, "int64")
	if err != nil {
		return 0, err
	}
	return int64(le.Uint64(b)), nil
}

// readLength consumes a 7-bit-encoded length prefix: each byte contributes
// 7 bits of magnitude, least-significant group first, and the high bit
// flags a continuation. The accumulated value is interpreted as an int32.
func (r *Reader) readLength() (int, error) {
	start := r.off
	var v uint64
	var shift uint
	for i := 0; i < maxLengthBytes; i++ {
		if r.off >= len(r.buf) {
			return 0, &Error{
				Offset: int64(r.off),
				Kind:   ErrUnexpectedEOF,
				Detail: "buffer ended inside length prefix",
			}
		}
		b := r.buf[r.off]
		r.off++
		v |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			if v > math.MaxUint32 {
				return 0, &Error{
					Offset: int64(start),
					Kind:   ErrMalformedLength,
					Detail: "length prefix overflows int32",
				}
			}
			n := int32(uint32(v))
			if n < 0 {
				return 0, &Error{
					Offset: int64(start),
					Kind:   ErrMalformedLength,
					Detail: fmt.Sprintf("negative length %d", n),
				}
			}
			return int(n), nil
		}
		shift += 7
	}
	return 0, &Error{
		Offset: int64(start),
		Kind:   ErrMalformedLength,
		Detail: "length prefix longer than 5 bytes",
	}
}

// ReadString consumes a 7-bit-encoded byte-count prefix followed by that
// many UTF-8 bytes.
func (r *Reader) ReadString() (string, error) {
	n, err := r.readLength()
	if err != nil {
		return "", err
	}
	b, err := r.take(n, "string")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadMatrix consumes 16 consecutive float32 values, filling the matrix in
// row-major order (M11..M14, M21..M24, M31..M34, M41..M44).
func (r *Reader) ReadMatrix() (Matrix, error) {
	var m Matrix
	b, err := r.take(64, "matrix")
	if err != nil {
		return m, err
	}
	for i := range m {
		m[i] = math.Float32frombits(le.Uint32(b[i*4:]))
	}
	return m, nil
}
