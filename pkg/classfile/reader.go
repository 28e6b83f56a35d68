package classfile

import "golang.org/x/crypto/cryptobyte"

// Reader is a sequential big-endian cursor over a byte slice.
// Every read either consumes exactly the bytes it needs or fails with
// a *DecodeError wrapping ErrTruncated and consumes nothing.
type Reader struct {
	s    cryptobyte.String
	size int
}

// NewReader returns a Reader positioned at the start of b.
func NewReader(b []byte) *Reader {
	return &Reader{s: cryptobyte.String(b), size: len(b)}
}

// Offset returns the number of bytes consumed.
func (r *Reader) Offset() int { return r.size - len(r.s) }

// Len returns the number of unread bytes.
func (r *Reader) Len() int { return len(r.s) }

// Empty reports whether all bytes have been consumed.
func (r *Reader) Empty() bool { return r.s.Empty() }

func (r *Reader) short(op string) error {
	return &DecodeError{Offset: r.Offset(), Op: op, Err: ErrTruncated}
}

// ReadU1 reads one byte.
func (r *Reader) ReadU1() (uint8, error) {
	var v uint8
	if !r.s.ReadUint8(&v) {
		return 0, r.short("u1")
	}
	return v, nil
}

// ReadU2 reads a big-endian uint16.
func (r *Reader) ReadU2() (uint16, error) {
	var v uint16
	if !r.s.ReadUint16(&v) {
		return 0, r.short("u2")
	}
	return v, nil
}

// ReadU4 reads a big-endian uint32.
func (r *Reader) ReadU4() (uint32, error) {
	var v uint32
	if !r.s.ReadUint32(&v) {
		return 0, r.short("u4")
	}
	return v, nil
}

// ReadBytes reads n bytes. The returned slice is a copy.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	var b []byte
	if n < 0 || !r.s.ReadBytes(&b, n) {
		return nil, r.short("bytes")
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadArray calls f exactly n times, in order, and collects the results.
// The first error aborts the loop and no partial result is returned.
func ReadArray[T any](r *Reader, n int, f func(*Reader) (T, error)) ([]T, error) {
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := f(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
