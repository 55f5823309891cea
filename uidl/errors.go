package uidl

import (
	"errors"
	"fmt"
)

var (
	// ErrChildIndex is returned when a record has fewer children than requested.
	ErrChildIndex = errors.New("child index out of range")
	// ErrChildType is returned when a child is a string where a node was expected, or the reverse.
	ErrChildType = errors.New("unexpected child type")
	// ErrMalformed is returned when wire input cannot be decoded into a record.
	ErrMalformed = errors.New("malformed update record")
)

// AccessError describes a failed positional child access.
type AccessError struct {
	Tag   string
	Index int
	Count int
	Want  string // "node" or "string" for type mismatches
	Err   error
}

func (e *AccessError) Error() string {
	if e.Want != "" {
		return fmt.Sprintf("uidl: <%s> child %d is not a %s: %v", e.Tag, e.Index, e.Want, e.Err)
	}
	return fmt.Sprintf("uidl: <%s> child %d of %d: %v", e.Tag, e.Index, e.Count, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}
