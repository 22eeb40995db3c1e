package tm1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ONSdigital/log.go/v2/log"
)

// maxErrorBody bounds how much of an error response is read
const maxErrorBody = 64 * 1024

// Error is the error returned for an unsuccessful TM1 response. It carries
// the status code and log data describing the failed request.
type Error struct {
	err        error
	statusCode int
	logData    map[string]interface{}
}

// NewError creates an Error
func NewError(err error, statusCode int, logData map[string]interface{}) *Error {
	return &Error{
		err:        err,
		statusCode: statusCode,
		logData:    logData,
	}
}

// Error implements the standard Go error
func (e *Error) Error() string {
	if e.err == nil {
		return "nil"
	}
	return e.err.Error()
}

// Unwrap implements Go error unwrapping
func (e *Error) Unwrap() error {
	return e.err
}

// Code returns the HTTP status code of the TM1 response
func (e *Error) Code() int {
	return e.statusCode
}

// LogData implements the DataLogger interface which allows you to extract
// embedded log.Data from an error
func (e *Error) LogData() map[string]interface{} {
	return e.logData
}

// IsNotFound reports whether err is a TM1 404 response
func IsNotFound(err error) bool {
	var tm1Err *Error
	return errors.As(err, &tm1Err) && tm1Err.statusCode == http.StatusNotFound
}

// newResponseError builds an Error from a non-2xx response, using the
// message of the OData error body when there is one
func newResponseError(method, path string, resp *http.Response) *Error {
	logData := log.Data{
		"method":      method,
		"path":        path,
		"status_code": resp.StatusCode,
	}

	message := http.StatusText(resp.StatusCode)
	if resp.Body != nil {
		b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if err == nil && len(b) > 0 {
			var body struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			if json.Unmarshal(b, &body) == nil && body.Error.Message != "" {
				message = body.Error.Message
				logData["tm1_code"] = body.Error.Code
			} else if text := strings.TrimSpace(string(b)); text != "" {
				message = text
			}
		}
	}

	return NewError(
		fmt.Errorf("%s %s: received status %d: %s", method, path, resp.StatusCode, message),
		resp.StatusCode,
		logData,
	)
}
