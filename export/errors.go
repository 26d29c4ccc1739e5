// Package export provides common errors for the exporter registry.
package export

import "errors"

var (
	// ErrExporterNotFound is returned when an exporter is not found in the registry.
	ErrExporterNotFound = errors.New("exporter not found")

	// ErrNilImage indicates Encode was called with a nil image.
	ErrNilImage = errors.New("nil image")
)
