package models

import "time"

// APIResponse is the uniform envelope wrapping every API result, success and
// error alike. Data and Message are omitted when empty; Success reflects the
// HTTP status code the envelope was built for.
type APIResponse struct {
	Data      any    `json:"data,omitempty"`
	Message   string `json:"message,omitempty"`
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
}

// NewResponse builds the envelope for the given status code. Success is true
// exactly when the code is in the 2xx range.
func NewResponse(statusCode int, data any, message string) APIResponse {
	return APIResponse{
		Data:      data,
		Message:   message,
		Success:   statusCode >= 200 && statusCode < 300,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}
