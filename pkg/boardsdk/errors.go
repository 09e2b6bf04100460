package boardsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the boards service.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []FieldError
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("boards: %d: %s", e.StatusCode, e.Message)
	}

	msgs := make([]string, 0, len(e.Errors))
	for _, f := range e.Errors {
		msgs = append(msgs, f.Path+": "+f.Msg)
	}
	return fmt.Sprintf("boards: %d: %s", e.StatusCode, strings.Join(msgs, "; "))
}

// Field returns the validation message for path, or "".
func (e *APIError) Field(path string) string {
	for _, f := range e.Errors {
		if f.Path == path {
			return f.Msg
		}
	}
	return ""
}

func (e *APIError) IsNotFound() bool     { return e.StatusCode == http.StatusNotFound }
func (e *APIError) IsUnauthorized() bool { return e.StatusCode == http.StatusUnauthorized }
func (e *APIError) IsRateLimited() bool  { return e.StatusCode == http.StatusTooManyRequests }

// parseErrorResponse turns a failed response body into an *APIError. Bodies
// that aren't the usual envelope keep the status text as the message.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}

	var env ErrorResponse
	if err := json.Unmarshal(body, &env); err == nil {
		apiErr.Message = env.Message
		apiErr.Errors = env.Errors
	}
	if apiErr.Message == "" && len(apiErr.Errors) == 0 {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}
