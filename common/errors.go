package common

import "fmt"

// APIError is a server-reported failure: a non-2xx status plus the optional
// human-readable detail field the backend puts in the error body. Views
// surface Detail verbatim when it is present.
type APIError struct {
	StatusCode int    `json:"-"`
	Detail     string `json:"detail"`
	Err        error  `json:"-"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func NewAPIError(statusCode int, detail string, err error) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Detail:     detail,
		Err:        err,
	}
}
