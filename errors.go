package testrail

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// APIError is returned when the API responds with a non-200 status. It
// carries the HTTP status code and whatever message text could be recovered
// from the error body; Message may be empty.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("TestRail API returned HTTP %d (no additional error message received)", e.StatusCode)
	}
	return fmt.Sprintf("TestRail API returned HTTP %d: %s", e.StatusCode, e.Message)
}

func newAPIError(statusCode int, body []byte) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    extractErrorMessage(body),
	}
}

// extractErrorMessage pulls the best available message text out of an error
// response body. The API reports errors as {"error": "..."}; anything else
// falls back to the raw body, and an empty body yields an empty message.
func extractErrorMessage(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}

	return string(body)
}
