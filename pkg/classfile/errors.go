package classfile

import (
	"errors"
	"fmt"
	"io"
)

// Sentinel errors returned (wrapped) by the decoder, resolver and lookups.
// Callers should test for them with errors.Is.
var (
	// ErrTruncated means the input ended before a read could complete.
	ErrTruncated = fmt.Errorf("truncated input: %w", io.ErrUnexpectedEOF)

	ErrBadMagic      = errors.New("invalid magic number")
	ErrUnsupported   = errors.New("unsupported")
	ErrUnknownTag    = errors.New("unknown constant pool tag")
	ErrUnknownOpcode = errors.New("unknown opcode")
	ErrBadIndex      = errors.New("invalid constant pool index")
	ErrWrongKind     = errors.New("constant pool entry has wrong kind")
	ErrCodeBoundary  = errors.New("instruction crosses code boundary")
	ErrInvalidText   = errors.New("invalid modified UTF-8")
	ErrUnresolved    = errors.New("attribute not resolved")
	ErrTrailingBytes = errors.New("trailing bytes after attribute payload")
)

// DecodeError records where in the input a read failed.
type DecodeError struct {
	Offset int    // byte offset from the start of the reader's input
	Op     string // the read that failed, e.g. "u2"
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s at offset %d: %v", e.Op, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
