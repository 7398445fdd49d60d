// Package method classifies HTTP request methods.
package method

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnknown is returned by Parse for methods outside RFC 9110 and PATCH.
var ErrUnknown = errors.New("method.unknown")

// Method is an upper-case HTTP method name.
type Method string

const (
	Get     Method = http.MethodGet
	Head    Method = http.MethodHead
	Post    Method = http.MethodPost
	Put     Method = http.MethodPut
	Patch   Method = http.MethodPatch
	Delete  Method = http.MethodDelete
	Connect Method = http.MethodConnect
	Options Method = http.MethodOptions
	Trace   Method = http.MethodTrace
)

var known = map[Method]struct{}{
	Get: {}, Head: {}, Post: {}, Put: {}, Patch: {},
	Delete: {}, Connect: {}, Options: {}, Trace: {},
}

// Parse returns the method named s, ignoring case.
func Parse(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := known[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknown, s)
	}
	return m, nil
}

func (m Method) String() string { return string(m) }

// IsSafe reports whether the method is read-only.
func (m Method) IsSafe() bool {
	switch m {
	case Get, Head, Options, Trace:
		return true
	}
	return false
}

// IsIdempotent reports whether repeating the request has the same effect as
// sending it once.
func (m Method) IsIdempotent() bool {
	return m.IsSafe() || m == Put || m == Delete
}

// AllowsBody reports whether a request body has defined semantics.
func (m Method) AllowsBody() bool {
	switch m {
	case Post, Put, Patch:
		return true
	}
	return false
}
