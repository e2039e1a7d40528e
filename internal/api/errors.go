package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Error is a non-2xx backend response.
type Error struct {
	StatusCode int
	// Message is the optional server provided message.
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error, status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error, status %d: %s", e.StatusCode, e.Message)
}

// ErrorMessage returns the server provided message carried by err, or fallback.
func ErrorMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// IsUnauthorized reports whether err is a 401 backend response.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == 401
}

func parseErrorMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return strings.TrimSpace(payload.Error)
	}
	return strings.TrimSpace(payload.Message)
}
