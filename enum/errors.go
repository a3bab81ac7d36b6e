package enum

import "errors"

// Library errors. All failures surface synchronously to the immediate
// caller; nothing is retried internally.
var (
	ErrInvalidName    = errors.New("invalid enum name")
	ErrDuplicateName  = errors.New("duplicate enum name")
	ErrFrozen         = errors.New("enum is frozen")
	ErrInvalidPlugin  = errors.New("invalid plugin")
	ErrPluginNotFound = errors.New("plugin not found")
	ErrInvalidOperand = errors.New("operand is not a valid enum set")
)
