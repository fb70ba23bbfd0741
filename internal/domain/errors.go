package domain

import "errors"

// Domain errors.
var (
	ErrMessageNotFound   = errors.New("message not found")
	ErrUnknownLocale     = errors.New("unknown locale")
	ErrDuplicateKey      = errors.New("duplicate message key")
	ErrEmptyMessage      = errors.New("empty message")
	ErrMissingKey        = errors.New("key missing from locale")
	ErrUnsupportedFormat = errors.New("unsupported locale file format")
	ErrReservedKey       = errors.New("key is reserved by the message format")
)
