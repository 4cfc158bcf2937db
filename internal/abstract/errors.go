package abstract

import "github.com/cockroachdb/errors"

var (
	// ErrNoSuchElement is returned when stepping past either end of a
	// traversal or querying the bounds of an empty tree.
	ErrNoSuchElement = errors.New("no such element")

	// ErrConcurrentModification is returned by a cursor that observes a
	// structural change it did not make.
	ErrConcurrentModification = errors.New("concurrent modification")

	// ErrIllegalState is returned by a cursor asked to act on a position it
	// does not hold.
	ErrIllegalState = errors.New("illegal cursor state")
)
