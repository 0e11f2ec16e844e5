package domain

import "errors"

// Error message string constants - single source of truth for error messages
const (
	ErrMsgItemNotFound = "inventory item not found"
	ErrMsgDuplicateSKU = "sku already exists"
	ErrMsgInvalidInput = "invalid input"

	ErrMsgSessionNotFound   = "session not found"
	ErrMsgInvalidCredential = "invalid username or password"
)

// Common domain errors. Wrap with fmt.Errorf("...: %w", err) for context;
// handlers match on them with errors.Is / errors.As.
var (
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
	ErrDuplicateSKU = errors.New(ErrMsgDuplicateSKU)
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrSessionNotFound   = errors.New(ErrMsgSessionNotFound)
	ErrInvalidCredential = errors.New(ErrMsgInvalidCredential)
)

// FieldErrors is a field-keyed validation error set. Every applicable rule
// failure is collected before the set is returned, so a caller can surface
// all problems at once rather than one per round trip.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	return ErrMsgInvalidInput
}

// Add records a message for a field, keeping the first message when the
// same field fails more than one rule.
func (fe FieldErrors) Add(field, message string) {
	if _, ok := fe[field]; !ok {
		fe[field] = message
	}
}

// HasErrors reports whether any field failed validation.
func (fe FieldErrors) HasErrors() bool {
	return len(fe) > 0
}
