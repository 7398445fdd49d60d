package cookie

import "net/http"

// hookWriter runs a callback right before the response headers are sent.
type hookWriter struct {
	http.ResponseWriter
	hook  func()
	fired bool
}

// BeforeWrite wraps w so that hook runs once, before the first WriteHeader,
// Write or Flush. The returned finish func runs the hook if the handler wrote
// nothing; call it after the wrapped handler returns.
func BeforeWrite(w http.ResponseWriter, hook func()) (http.ResponseWriter, func()) {
	hw := &hookWriter{ResponseWriter: w, hook: hook}
	return hw, hw.fire
}

func (w *hookWriter) fire() {
	if w.fired {
		return
	}
	w.fired = true
	w.hook()
}

func (w *hookWriter) WriteHeader(code int) {
	w.fire()
	w.ResponseWriter.WriteHeader(code)
}

func (w *hookWriter) Write(b []byte) (int, error) {
	w.fire()
	return w.ResponseWriter.Write(b)
}

func (w *hookWriter) Flush() {
	w.fire()
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *hookWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
