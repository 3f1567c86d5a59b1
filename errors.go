package geoslice

import "errors"

var (
	ErrOutOfRange  = errors.New("geoslice: window out of range")
	ErrTruncated   = errors.New("geoslice: payload shorter than descriptor implies")
	ErrBadMetadata = errors.New("geoslice: invalid metadata")
	ErrClosed      = errors.New("geoslice: reader is closed")
)
