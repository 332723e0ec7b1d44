package core

import "errors"

var (
	// ErrModuleNotFound is returned when a path segment does not resolve to a registered module.
	ErrModuleNotFound = errors.New("storetree: module not registered")

	// ErrRootPath is returned when an operation needs a non-root path.
	ErrRootPath = errors.New("storetree: root module path not allowed")

	// ErrNilDefinition is returned when a nil raw module is registered or applied.
	ErrNilDefinition = errors.New("storetree: nil module definition")
)
