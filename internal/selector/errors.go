package selector

import "errors"

var (
	// ErrEmptyPattern indicates a blank exclusion pattern.
	ErrEmptyPattern = errors.New("empty pattern")
	// ErrUnknownKind indicates a rule whose kind is neither Suffix nor Contains.
	ErrUnknownKind = errors.New("unknown rule kind")
)
