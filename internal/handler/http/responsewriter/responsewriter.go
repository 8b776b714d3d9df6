// Package responsewriter captures the status code and body size of a
// response for the access log.
package responsewriter

import "net/http"

// ResponseWriter records what was written through it. The zero status is
// reported as 200, matching net/http's implicit WriteHeader.
type ResponseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
	wrote  bool
}

func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the first status code; later calls are ignored the
// same way the underlying writer ignores them.
func (w *ResponseWriter) WriteHeader(status int) {
	if w.wrote {
		return
	}
	w.status = status
	w.wrote = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *ResponseWriter) StatusCode() int { return w.status }

func (w *ResponseWriter) BytesWritten() int { return w.bytes }

// Unwrap lets http.ResponseController reach the underlying writer, which
// the event stream endpoint needs for flushing.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
