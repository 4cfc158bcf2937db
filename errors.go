package bidimap

import (
	"github.com/ajwerner/bidimap/internal/abstract"
	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidArgument is returned when a nil key or value is stored.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoSuchElement is returned when asking an empty map for its bounds
	// and when an iterator steps past either end.
	ErrNoSuchElement = abstract.ErrNoSuchElement

	// ErrConcurrentModification is returned by an iterator whose map was
	// structurally modified by anything other than the iterator itself.
	ErrConcurrentModification = abstract.ErrConcurrentModification

	// ErrIllegalState is returned by an iterator asked to remove or read an
	// element when it is not positioned on one.
	ErrIllegalState = abstract.ErrIllegalState

	// ErrUnsupportedOperation is returned when adding to a view.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
