package profile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrFailedToReadProfile  = errors.New("failed to read profile")
	ErrFailedToParseProfile = errors.New("failed to parse profile")
	ErrInvalidProfile       = errors.New("invalid profile")
	ErrInvalidCodepoint     = errors.New("invalid codepoint")
	ErrUnknownClass         = errors.New("unknown unicode class")
)

// FieldError describes one failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every field that failed validation.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

func (v ValidationErrors) Unwrap() error {
	return ErrInvalidProfile
}
