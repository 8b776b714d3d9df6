package entity

import (
	"fmt"
	"strings"
)

// maxContentLength caps message content to prevent oversized payloads.
const maxContentLength = 4096

// ValidateContent validates message content before dispatch.
// Empty or whitespace-only content is rejected.
// Returns a ValidationError if the content is invalid.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return &ValidationError{Field: "content", Message: "is required"}
	}
	if len(content) > maxContentLength {
		return &ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("must not exceed %d characters", maxContentLength),
		}
	}
	return nil
}

// ValidateEmail performs a shallow syntactic check on an email address.
// Full RFC 5322 validation is deliberately not attempted; the address is
// only used by the simulated email channel.
func ValidateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t") {
		return &ValidationError{Field: "email", Message: "invalid format"}
	}
	return nil
}
