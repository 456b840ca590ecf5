package recipes

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSuchRecipes is returned by Find when the search yields nothing,
	// including when one of the given names does not resolve.
	ErrNoSuchRecipes = errors.New("there are no such recipes in the database")

	ErrNotFound       = errors.New("no match")
	ErrAmbiguous      = errors.New("ambiguous match")
	ErrMalformedInput = errors.New("malformed input")
)

// Resolution classifies the outcome of resolving a name pattern to ids.
type Resolution int

const (
	NotFound Resolution = iota
	Unique
	Ambiguous
)

func (r Resolution) String() string {
	switch r {
	case NotFound:
		return "not found"
	case Unique:
		return "unique"
	case Ambiguous:
		return "ambiguous"
	}
	return fmt.Sprintf("Resolution(%d)", int(r))
}

// Resolve classifies a lookup result.
func Resolve(ids []int64) Resolution {
	switch len(ids) {
	case 0:
		return NotFound
	case 1:
		return Unique
	default:
		return Ambiguous
	}
}

// MatchError reports a name that did not resolve to exactly one row.
type MatchError struct {
	Table   string
	Pattern string
	Matches int
}

func (e *MatchError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("%s: no match for %q", e.Table, e.Pattern)
	}
	return fmt.Sprintf("%s: %q matches %d rows", e.Table, e.Pattern, e.Matches)
}

func (e *MatchError) Unwrap() error {
	if e.Matches == 0 {
		return ErrNotFound
	}
	return ErrAmbiguous
}

// MalformedInputError reports user input that cannot be parsed.
type MalformedInputError struct {
	Input  string
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input %q: %s", e.Input, e.Reason)
}

func (e *MalformedInputError) Unwrap() error {
	return ErrMalformedInput
}
