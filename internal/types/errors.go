// README: Error taxonomy shared by the flow services and the HTTP error mapping.
package types

import (
	"fmt"
	"strings"
)

// LengthMismatchError is returned when the category and place-name lists differ in length.
type LengthMismatchError struct {
	Categories int
	Names      int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("category count (%d) does not match place name count (%d)", e.Categories, e.Names)
}

// InvalidCategoryError is returned when a value is outside the fixed category set.
type InvalidCategoryError struct {
	Given   string
	Allowed []Category
}

func (e *InvalidCategoryError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, c := range e.Allowed {
		allowed[i] = string(c)
	}
	return fmt.Sprintf("%q is not a valid category; allowed categories are [%s]", e.Given, strings.Join(allowed, ", "))
}

// PlaceNotFoundError is returned when place resolution has no match for Name.
type PlaceNotFoundError struct {
	Name string
}

func (e *PlaceNotFoundError) Error() string {
	return fmt.Sprintf("place %q could not be found", e.Name)
}

// MalformedGenerationError is returned when generated text holds no parseable JSON payload.
// Raw keeps the generated text for diagnostics.
type MalformedGenerationError struct {
	Raw string
	Err error
}

func (e *MalformedGenerationError) Error() string {
	return fmt.Sprintf("malformed generation output: %v", e.Err)
}

func (e *MalformedGenerationError) Unwrap() error {
	return e.Err
}

// UpstreamGenerationError wraps any failure of a generation-backed flow that has no fallback.
type UpstreamGenerationError struct {
	Detail string
	Err    error
}

func (e *UpstreamGenerationError) Error() string {
	if e.Err == nil {
		return "upstream generation failed: " + e.Detail
	}
	return fmt.Sprintf("upstream generation failed: %s: %v", e.Detail, e.Err)
}

func (e *UpstreamGenerationError) Unwrap() error {
	return e.Err
}

// UpstreamTimeoutError is returned when an outbound call exceeds its deadline.
type UpstreamTimeoutError struct {
	Op  string
	Err error
}

func (e *UpstreamTimeoutError) Error() string {
	return fmt.Sprintf("%s timed out: %v", e.Op, e.Err)
}

func (e *UpstreamTimeoutError) Unwrap() error {
	return e.Err
}
