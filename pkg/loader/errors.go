package loader

import "errors"

var (
	// ErrUnknownFormat is returned for documents that are neither YAML nor JSON.
	ErrUnknownFormat = errors.New("unknown document format")

	// ErrDecode is returned when a document cannot be decoded.
	ErrDecode = errors.New("failed to decode document")
)
