package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrNetwork is matched by every transport failure (DNS, refused
// connection, timeout) so callers can tell "offline" from "rejected".
var ErrNetwork = errors.New("network error")

// ErrItemNotFound is returned when acting on an item missing from the local list.
var ErrItemNotFound = errors.New("item not found")

// APIError is any non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
	ErrorID string
}

func (e *APIError) Error() string {
	if e.ErrorID != "" {
		return fmt.Sprintf("api error %d: %s (error id %s)", e.Status, e.Message, e.ErrorID)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	var body struct {
		Error   string `json:"error"`
		ErrorID string `json:"errorId"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if json.Unmarshal(data, &body) == nil {
		apiErr.Message = body.Error
		apiErr.ErrorID = body.ErrorID
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

type networkError struct {
	op  string
	err error
}

func (e *networkError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrNetwork, e.op, e.err)
}

func (e *networkError) Is(target error) bool { return target == ErrNetwork }

func (e *networkError) Unwrap() error { return e.err }
