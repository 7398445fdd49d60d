package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/httpkit/pkg/cookie"
)

func TestBeforeWrite(t *testing.T) {
	t.Parallel()

	t.Run("fires before first write", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		calls := 0
		w, finish := cookie.BeforeWrite(rec, func() {
			calls++
			rec.Header().Set("X-Hook", "1")
		})

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("body"))
		finish()

		assert.Equal(t, 1, calls)
		assert.Equal(t, "1", rec.Result().Header.Get("X-Hook"))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("finish fires when nothing was written", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		calls := 0
		_, finish := cookie.BeforeWrite(rec, func() { calls++ })

		finish()
		finish()
		assert.Equal(t, 1, calls)
	})

	t.Run("flush fires hook", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		calls := 0
		w, _ := cookie.BeforeWrite(rec, func() { calls++ })

		w.(http.Flusher).Flush()
		assert.Equal(t, 1, calls)
		assert.True(t, rec.Flushed)
	})
}
