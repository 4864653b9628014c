package error

import "strings"

// FieldError describes a single invalid form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors aggregates every failed field of one form submission, in
// field order. Screens render Messages below the corresponding inputs and
// keep the submit action disabled while the slice is non-empty.
type ValidationErrors []FieldError

// Error implements the error interface.
func (v ValidationErrors) Error() string {
	messages := v.Messages()
	return "validation failed: " + strings.Join(messages, "; ")
}

// Messages returns the human-readable messages, in field order.
func (v ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(v))
	for _, fieldErr := range v {
		messages = append(messages, fieldErr.Message)
	}
	return messages
}

// ByField returns the messages for one field, preserving order.
func (v ValidationErrors) ByField(field string) []string {
	var messages []string
	for _, fieldErr := range v {
		if fieldErr.Field == field {
			messages = append(messages, fieldErr.Message)
		}
	}
	return messages
}
