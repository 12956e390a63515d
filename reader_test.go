package animbin

import (
	"errors"
	"testing"
)

// assertKind fails unless err is an *Error with the given kind.
func assertKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", kind)
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if e.Kind != kind {
		t.Fatalf("error kind mismatch: got %v want %v (%v)", e.Kind, kind, err)
	}
}

func TestReadInt32(t *testing.T) {
	r := NewReader([]byte{0x2A, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF})
	v, err := r.ReadInt32()
	if err != nil || v != 42 {
		t.Fatalf("read err=%v v=%d", err, v)
	}
	v, err = r.ReadInt32()
	if err != nil || v != -1 {
		t.Fatalf("read err=%v v=%d", err, v)
	}
	if r.Offset() != 8 {
		t.Fatalf("offset=%d", r.Offset())
	}
	_, err = r.ReadInt32()
	assertKind(t, err, ErrUnexpectedEOF)
}

func TestReadInt64(t *testing.T) {
	r := NewReader([]byte{0xE8, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
	v, err := r.ReadInt64()
	if err != nil || v != 1000 {
		t.Fatalf("read err=%v v=%d", err, v)
	}

	r = NewReader([]byte{0x01, 0x02, 0x03})
	_, err = r.ReadInt64()
	assertKind(t, err, ErrUnexpectedEOF)
}

func TestReadString(t *testing.T) {
	r := NewReader(append([]byte{0x05}, []byte("hello")...))
	s, err := r.ReadString()
	if err != nil || s != "hello" {
		t.Fatalf("read err=%v s=%q", err, s)
	}
	if r.Remaining() != 0 {
		t.Fatalf("remaining=%d", r.Remaining())
	}

	// Empty string is a single zero prefix byte.
	r = NewReader([]byte{0x00})
	s, err = r.ReadString()
	if err != nil || s != "" {
		t.Fatalf("read err=%v s=%q", err, s)
	}
}

func TestReadString_MultiByteLengthPrefix(t *testing.T) {
	// 200 'a' bytes: 200 = 0xC8 encodes as [0xC8, 0x01].
	payload := make([]byte, 200)
	for i := range payload {
		payload[i] = 'a'
	}
	r := NewReader(append([]byte{0xC8, 0x01}, payload...))
	s, err := r.ReadString()
	if err != nil || len(s) != 200 {
		t.Fatalf("read err=%v len=%d", err, len(s))
	}
	if r.Offset() != 202 {
		t.Fatalf("offset=%d", r.Offset())
	}
}

func TestReadString_NegativeLength(t *testing.T) {
	// Five 7-bit groups encoding 0xFFFFFFFF, which is -1 as an int32.
	r := NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F})
	_, err := r.ReadString()
	assertKind(t, err, ErrMalformedLength)
}

func TestReadString_OverlongLengthPrefix(t *testing.T) {
	// Sixth continuation byte can never occur in a valid prefix.
	r := NewReader([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01})
	_, err := r.ReadString()
	assertKind(t, err, ErrMalformedLength)

	// Fifth group with bits above an int32's range.
	r = NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x7F})
	_, err = r.ReadString()
	assertKind(t, err, ErrMalformedLength)
}

func TestReadString_TruncatedPrefix(t *testing.T) {
	r := NewReader([]byte{0x80})
	_, err := r.ReadString()
	assertKind(t, err, ErrUnexpectedEOF)
}

func TestReadString_TruncatedPayload(t *testing.T) {
	r := NewReader([]byte{0x05, 'h', 'e'})
	_, err := r.ReadString()
	assertKind(t, err, ErrUnexpectedEOF)
}

func TestReadMatrix(t *testing.T) {
	w := NewWriter()
	var want Matrix
	for i := range want {
		want[i] = float32(i) * 0.5
	}
	w.WriteMatrix(want)
	if w.Len() != 64 {
		t.Fatalf("encoded matrix is %d bytes", w.Len())
	}

	r := NewReader(w.Bytes())
	got, err := r.ReadMatrix()
	if err != nil {
		t.Fatalf("read matrix: %v", err)
	}
	if got != want {
		t.Fatalf("matrix mismatch:\n got: %v\nwant: %v", got, want)
	}
	// Row-major: element (1,2) is the 7th value written.
	if got.At(1, 2) != 3.0 {
		t.Fatalf("At(1,2)=%v", got.At(1, 2))
	}

	r = NewReader(w.Bytes()[:63])
	_, err = r.ReadMatrix()
	assertKind(t, err, ErrUnexpectedEOF)
}

func TestWriteString_PrefixEncoding(t *testing.T) {
	cases := []struct {
		n      int
		prefix []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xAC, 0x02}},
		{16384, []byte{0x80, 0x80, 0x01}},
	}
	for _, c := range cases {
		w := NewWriter()
		w.WriteString(string(make([]byte, c.n)))
		got := w.Bytes()[:len(c.prefix)]
		for i := range c.prefix {
			if got[i] != c.prefix[i] {
				t.Fatalf("n=%d prefix mismatch: got %v want %v", c.n, got, c.prefix)
			}
		}
		if w.Len() != len(c.prefix)+c.n {
			t.Fatalf("n=%d total length %d", c.n, w.Len())
		}
	}
}
