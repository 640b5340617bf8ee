package form

import "errors"

var (
	// ErrFormNotFound signals a lookup for a form id that has no document.
	ErrFormNotFound = errors.New("evaluation form not found")
	// ErrResponseNotFound signals a lookup for a response id that has no document.
	ErrResponseNotFound = errors.New("form response not found")
)
