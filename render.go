// Package render draws the hall of shame panel: a bordered grid of
// numbered entries in a 7 pixel bitmap font, composited onto a larger
// base image.
//
// All drawing happens on [Buffer], a plain RGBA pixel array. A render
// creates fresh buffers and keeps no state between calls.
package render

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import "errors"

// Errors reported by the package. They are wrapped with context; use
// errors.Is to test for them.
var (
	ErrInvalidGrid   = errors.New("invalid grid")
	ErrFontSheet     = errors.New("font sheet does not match glyph table")
	ErrLabelOverflow = errors.New("label extends past the panel")
	ErrOverlayBounds = errors.New("overlay does not fit inside base image")
)
