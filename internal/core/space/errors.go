package space

import "errors"

// Core errors
var (
	// ErrConfiguration reports an empty or inverted randomization range, or any other
	// configured value the core cannot run with. It is fatal to the configuration.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrDomain reports a violated numeric precondition, such as a non-positive field of view.
	ErrDomain = errors.New("value outside of domain")

	ErrUnknownKind        = errors.New("unknown object kind")
	ErrDescriptorConsumed = errors.New("spawn descriptor already projected")
)
