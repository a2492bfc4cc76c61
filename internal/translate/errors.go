package translate

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents an error response from the completion API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("completion api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("completion api error %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsQuota reports whether the error is a quota/billing-class failure that
// should fall back to the untranslated input rather than surface to callers.
func (e *APIError) IsQuota() bool {
	if e.Code == "insufficient_quota" {
		return true
	}
	msg := strings.ToLower(e.Message)
	return strings.Contains(msg, "quota") || strings.Contains(msg, "billing")
}

// newAPIError extracts the provider's {error: {code, message}} shape when
// present, keeping the raw body either way.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: body}

	var parsed struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Code = parsed.Error.Code
		apiErr.Message = parsed.Error.Message
	}

	return apiErr
}
