package tasksdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// APIError is a non-2xx response from the API. Fields is populated for 422
// validation failures, Message for everything else.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return fmt.Sprintf("api error %d: validation failed on %s", e.StatusCode, strings.Join(keys, ", "))
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// decodeError reads an error body off a non-2xx response. The body is either
// a {"errors": ...} validation payload or a {"message": ...} one.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	if resp.StatusCode == http.StatusUnprocessableEntity {
		var body ValidationErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			apiErr.Fields = body.Errors
			return apiErr
		}
		return apiErr
	}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Message
	}
	return apiErr
}
