package client

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/teris-io/shortid"
)

var generator *shortid.Shortid

func init() {
	g, err := shortid.New(1, shortid.DefaultABC, rand.Uint64())
	if err != nil {
		logrus.Panicf("Failed to initialize client package with error: %+v", err)
	}
	generator = g
}

// ErrUnauthorized marks a 401 from the backend. It is detected and logged but
// nothing acts on it yet; a redirect-to-login will hang off this later.
var ErrUnauthorized = errors.New("backend rejected the bearer token")

// TransportError means the request never produced a response. The ID ties the
// user-visible failure to the log line.
type TransportError struct {
	ID  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure [%s]: %v", e.ID, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerError is any non-2xx response that is not a 404 or 401.
type ServerError struct {
	ID         string
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error [%s]: status %d: %s", e.ID, e.StatusCode, e.Body)
}

// NotFoundError reports a 404 for a get or delete against a missing id.
type NotFoundError struct {
	Method string
	Path   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no record behind %s %s", e.Method, e.Path)
}

// IsNotFound reports whether err, anywhere in its chain, is a 404 from the
// backend. Delete callers treat this the same as success.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

func errorID() string {
	id, err := generator.Generate()
	if err != nil {
		return "-"
	}
	return id
}

func newTransportError(err error) *TransportError {
	transportErr := &TransportError{ID: errorID(), Err: err}
	logrus.Errorf("request failed before reaching the backend [%s]: %+v", transportErr.ID, err)
	return transportErr
}

func newServerError(statusCode int, body string) *ServerError {
	serverErr := &ServerError{ID: errorID(), StatusCode: statusCode, Body: body}
	logrus.Errorf("backend responded with status %d [%s]: %s", statusCode, serverErr.ID, body)
	return serverErr
}
