package runtime

import "errors"

// Error message string constants - single source of truth for error messages
const (
	ErrMsgNameNotFound   = "no lookup entry with that name"
	ErrMsgItemUnreadable = "item payload unreadable"
	ErrMsgNotRebindable  = "reference category is read-only"
)

// Errors returned by Configuration and ItemHandle implementations.
// Wrap with fmt.Errorf("%w: %s", ...) for additional context.
var (
	// ErrNameNotFound means a rebind target name did not resolve in the
	// configuration at rebind time.
	ErrNameNotFound = errors.New(ErrMsgNameNotFound)

	// ErrItemUnreadable means a payload exists on disk but the
	// configuration cannot load it.
	ErrItemUnreadable = errors.New(ErrMsgItemUnreadable)

	// ErrNotRebindable means the category cannot be rewritten on any item.
	ErrNotRebindable = errors.New(ErrMsgNotRebindable)
)
