package assets

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAssetNotFound   = errors.New("asset not found")
	ErrMalformedBody   = errors.New("malformed request body")
	ErrVersionConflict = errors.New("asset was modified concurrently")
)

// FieldError describes one failed constraint on a request field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

// ValidationError is returned when a request body fails its declared constraints.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.String())
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}

// InvalidFieldNameError lists patch keys that do not name a known asset attribute.
type InvalidFieldNameError struct {
	Names []string
}

func (e *InvalidFieldNameError) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("Could not find any field with name %s to update.", e.Names[0])
	}
	return fmt.Sprintf("Could not find any fields with names %s to update.", strings.Join(e.Names, ", "))
}

// InvalidFieldValueError is returned when a patch value has the wrong type for its field.
type InvalidFieldValueError struct {
	Field    string
	Expected string
}

func (e *InvalidFieldValueError) Error() string {
	return fmt.Sprintf("%s: must be a %s", e.Field, e.Expected)
}

// NotFoundError names the id that could not be resolved. It matches ErrAssetNotFound.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No Asset found with id {%d}", e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrAssetNotFound }

func malformedBody(err error) error {
	return fmt.Errorf("%w: %v", ErrMalformedBody, err)
}
