package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrDataLoad marks every failure to produce a Dataset. It is fatal for the server.
	ErrDataLoad = errors.New("data load failed")
	// ErrUnknownColumn is returned by column lookups for names the dataset does not expose.
	ErrUnknownColumn = errors.New("unknown column")
)

// LoadError describes why a source could not become a Dataset.
type LoadError struct {
	Source string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	msg := "data load"
	if e.Source != "" {
		msg += " " + e.Source
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrDataLoad) match any LoadError.
func (e *LoadError) Is(target error) bool { return target == ErrDataLoad }

// NewLoadError builds a LoadError; err may be nil.
func NewLoadError(source, reason string, err error) *LoadError {
	return &LoadError{Source: source, Reason: reason, Err: err}
}

// MissingColumnsError lists required columns absent from a source header.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns %v", e.Columns)
}
