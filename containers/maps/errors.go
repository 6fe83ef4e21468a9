package maps

import "errors"

var (
	// ErrAlreadyBound is returned by Put when the value is bound to a different key.
	ErrAlreadyBound = errors.New("value already bound to a different key")
	// ErrNullReference is raised when a nil key or value crosses into a typed bimap.
	ErrNullReference = errors.New("nil key or value")
	// ErrTypeMismatch is raised when an untyped key or value has the wrong dynamic type.
	ErrTypeMismatch = errors.New("key or value of unexpected type")
)
