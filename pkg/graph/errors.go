package graph

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidReference is returned when a handle of another graph is used.
	ErrInvalidReference = errors.New("invalid reference: element belongs to a different graph")
	// ErrOutOfRange is returned for positional lookups outside of the live elements.
	ErrOutOfRange = errors.New("index out of range")
	// ErrRemoved is returned when a handle of an already removed element is used.
	ErrRemoved = errors.New("element was removed from the graph")
)
