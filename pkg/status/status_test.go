package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/httpkit/pkg/status"
)

func TestOf(t *testing.T) {
	t.Parallel()

	s, ok := status.Of(404)
	assert.True(t, ok)
	assert.Equal(t, status.NotFound, s)
	assert.Equal(t, "Not Found", s.Text())
	assert.Equal(t, "404 Not Found", s.String())

	_, ok = status.Of(99)
	assert.False(t, ok)
	_, ok = status.Of(600)
	assert.False(t, ok)

	s, ok = status.Of(299)
	assert.True(t, ok)
	assert.Empty(t, s.Text())
	assert.Equal(t, "299", s.String())
}

func TestClasses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code                                              int
		info, success, redirect, client, server, anyError bool
	}{
		{code: 100, info: true},
		{code: 200, success: true},
		{code: 204, success: true},
		{code: 303, redirect: true},
		{code: 404, client: true, anyError: true},
		{code: 429, client: true, anyError: true},
		{code: 500, server: true, anyError: true},
		{code: 503, server: true, anyError: true},
	}
	for _, tt := range tests {
		s := status.Status(tt.code)
		assert.Equal(t, tt.info, s.IsInformational(), tt.code)
		assert.Equal(t, tt.success, s.IsSuccess(), tt.code)
		assert.Equal(t, tt.redirect, s.IsRedirect(), tt.code)
		assert.Equal(t, tt.client, s.IsClientError(), tt.code)
		assert.Equal(t, tt.server, s.IsServerError(), tt.code)
		assert.Equal(t, tt.anyError, s.IsError(), tt.code)
		assert.Equal(t, tt.code, s.Code())
	}
}
