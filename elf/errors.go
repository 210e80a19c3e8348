package elf

import (
	"io"

	"github.com/pkg/errors"
)

// Error kinds surfaced by the decoder. Wrapped errors keep one of these as
// their cause, so callers can classify with errors.Cause. I/O failures from
// the underlying reader pass through untranslated.
var (
	ErrInvalidMagic  = errors.New("bad ELF magic")
	ErrInvalidFormat = errors.New("invalid ELF format")

	// ErrNotImplemented is reserved for structures the decoder
	// intentionally leaves undecoded.
	ErrNotImplemented = errors.New("not implemented")
)

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidFormat, format, args...)
}

// truncated classifies a structure-read failure: running out of bytes
// mid-record is a format error, anything else is the reader's own error.
func truncated(err error, what string) error {
	cause := errors.Cause(err)
	if cause == io.EOF || cause == io.ErrUnexpectedEOF {
		return errors.Wrapf(ErrInvalidFormat, "truncated %s", what)
	}
	return errors.Wrap(err, what)
}
