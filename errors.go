package aml

import "errors"

var (
	// ErrDocumentParse is returned when an AML document cannot be read or
	// contains no animations. The engine's current document is left as is.
	ErrDocumentParse = errors.New("aml: cannot parse document")

	// ErrUnknownAnimation is returned by Bind when no loaded animation has
	// the requested title.
	ErrUnknownAnimation = errors.New("aml: unknown animation")

	// ErrDegenerateScene describes a scene whose end time precedes its start
	// time. Playback never returns it; it is only reported through the logger.
	ErrDegenerateScene = errors.New("aml: scene ends before it starts")

	// ErrDestroyed is returned by operations on a destroyed engine.
	ErrDestroyed = errors.New("aml: engine destroyed")
)
