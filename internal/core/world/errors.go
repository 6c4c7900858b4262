package world

import "errors"

// World errors
var (
	ErrWrongPhase       = errors.New("registry mutation outside of its phase")
	ErrDuplicateEntity  = errors.New("entity already registered")
	ErrTickInProgress   = errors.New("tick already in progress")
	ErrNilTimeSource    = errors.New("nil time source")
	ErrSystemRegistered = errors.New("system already registered")
)
