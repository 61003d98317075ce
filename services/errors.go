package services

import "errors"

var (
	ErrInvalidSelection    = errors.New("invalid selection")
	ErrIncompleteSelection = errors.New("incomplete selection")
	ErrSessionClosed       = errors.New("selection session closed")
	ErrUnknownModloader    = errors.New("unknown modloader")
	ErrJavaNotFound        = errors.New("java not found")
	ErrGameDirNotSet       = errors.New("game directory not set")
)
