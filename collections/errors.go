package collections

import "errors"

// Sentinel errors returned by Collection and LazyCollection operations.
// Operations wrap them with context; match with errors.Is.
var (
	// ErrConstruction is returned by MapInto when a constructor rejects a value.
	ErrConstruction = errors.New("collections: value cannot be constructed into target type")

	// ErrLengthMismatch is returned by Combine when the key and value
	// collections have different lengths.
	ErrLengthMismatch = errors.New("collections: keys and values must have the same length")

	// ErrIndexOutOfRange is returned when a sample size or positional index is
	// outside the bounds of the collection.
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrEmptyAggregate is returned by Min / Max on an empty collection.
	ErrEmptyAggregate = errors.New("collections: aggregate of empty collection")

	// ErrEmptyReduce is returned by Reduce without an initial value on an
	// empty collection.
	ErrEmptyReduce = errors.New("collections: reduce of empty collection with no initial value")

	// ErrEmptyPop is returned by Pop on an empty collection.
	ErrEmptyPop = errors.New("collections: pop from empty collection")

	// ErrNoMatchingItems is returned by FirstOrFail / LastOrFail when no
	// item satisfies the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")
)
