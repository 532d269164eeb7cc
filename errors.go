package querybuilder

import "errors"

// Sentinel errors for go-query-builder.
// These errors can be checked using errors.Is(). Only Validate and Build
// return them; compilation itself never fails.
var (
	// ErrNoTable is returned when the builder has no FROM target, e.g. after Reset.
	ErrNoTable = errors.New("querybuilder: no table specified")

	// ErrInvalidIdentifier is returned when a table or alias contains invalid characters.
	ErrInvalidIdentifier = errors.New("querybuilder: invalid SQL identifier")

	// ErrInvalidOperator is returned when a filter uses an unsupported operator.
	ErrInvalidOperator = errors.New("querybuilder: invalid SQL operator")

	// ErrInvalidJoinType is returned when a join uses an unknown join type.
	ErrInvalidJoinType = errors.New("querybuilder: invalid join type")

	// ErrInvalidLimit is returned when the limit count or offset is negative.
	ErrInvalidLimit = errors.New("querybuilder: invalid limit")
)

// ValidationError represents a failed check on a single query fragment.
type ValidationError struct {
	Identifier string
	Context    string
	Reason     string

	// Err is the sentinel the error matches with errors.Is.
	Err error
}

func (e *ValidationError) Error() string {
	return "querybuilder: invalid " + e.Context + " '" + e.Identifier + "': " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == e.Err
}

// NewValidationError creates a new ValidationError matching sentinel.
func NewValidationError(identifier, context, reason string, sentinel error) *ValidationError {
	return &ValidationError{
		Identifier: identifier,
		Context:    context,
		Reason:     reason,
		Err:        sentinel,
	}
}
