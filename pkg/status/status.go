// Package status wraps HTTP status codes with their reason phrase and class.
package status

import (
	"net/http"
	"strconv"
)

// Status is an HTTP status code.
type Status int

const (
	OK                  Status = http.StatusOK
	Created             Status = http.StatusCreated
	NoContent           Status = http.StatusNoContent
	MovedPermanently    Status = http.StatusMovedPermanently
	Found               Status = http.StatusFound
	SeeOther            Status = http.StatusSeeOther
	NotModified         Status = http.StatusNotModified
	BadRequest          Status = http.StatusBadRequest
	Unauthorized        Status = http.StatusUnauthorized
	Forbidden           Status = http.StatusForbidden
	NotFound            Status = http.StatusNotFound
	MethodNotAllowed    Status = http.StatusMethodNotAllowed
	NotAcceptable       Status = http.StatusNotAcceptable
	UnsupportedMedia    Status = http.StatusUnsupportedMediaType
	UnprocessableEntity Status = http.StatusUnprocessableEntity
	TooManyRequests     Status = http.StatusTooManyRequests
	ServerError         Status = http.StatusInternalServerError
	BadGateway          Status = http.StatusBadGateway
	ServiceUnavailable  Status = http.StatusServiceUnavailable
)

// Of returns the status for code. Codes outside 100..599 are not valid.
func Of(code int) (Status, bool) {
	s := Status(code)
	return s, s.Valid()
}

func (s Status) Code() int { return int(s) }

// Text returns the reason phrase, empty for unregistered codes.
func (s Status) Text() string { return http.StatusText(int(s)) }

func (s Status) Valid() bool { return s >= 100 && s <= 599 }

func (s Status) IsInformational() bool { return s >= 100 && s < 200 }
func (s Status) IsSuccess() bool       { return s >= 200 && s < 300 }
func (s Status) IsRedirect() bool      { return s >= 300 && s < 400 }
func (s Status) IsClientError() bool   { return s >= 400 && s < 500 }
func (s Status) IsServerError() bool   { return s >= 500 && s < 600 }
func (s Status) IsError() bool         { return s.IsClientError() || s.IsServerError() }

// String renders "404 Not Found", or just the number for unregistered codes.
func (s Status) String() string {
	code := strconv.Itoa(int(s))
	if text := s.Text(); text != "" {
		return code + " " + text
	}
	return code
}
