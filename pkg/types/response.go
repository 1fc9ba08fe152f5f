package types

import "encoding/json"

// Envelope is the wire shape every Flow PMS endpoint responds with: a
// success flag plus either a data payload or a human-readable message.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Token   string          `json:"token,omitempty"`
}

// ValidationResult is the structured outcome of a client-side validation
// entry point. It is returned, never thrown.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// Valid builds a passing result.
func Valid() ValidationResult {
	return ValidationResult{IsValid: true, Errors: []string{}}
}

// Invalid builds a failing result from the collected messages.
func Invalid(errors []string) ValidationResult {
	return ValidationResult{IsValid: len(errors) == 0, Errors: errors}
}
