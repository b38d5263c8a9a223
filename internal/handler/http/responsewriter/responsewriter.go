// Package responsewriter wraps http.ResponseWriter so middleware can read
// the status code and body size of a response after the handler returns.
// The logging and metrics middleware share one Recorder per request.
package responsewriter

import (
	"net/http"
)

// Recorder wraps http.ResponseWriter and records what the handler wrote.
type Recorder struct {
	http.ResponseWriter
	code        int
	bytes       int
	wroteHeader bool
}

// Wrap returns a Recorder around w. The status defaults to 200 so handlers
// that never call WriteHeader still report the code net/http sends.
func Wrap(w http.ResponseWriter) *Recorder {
	return &Recorder{
		ResponseWriter: w,
		code:           http.StatusOK,
	}
}

// WriteHeader records the status code and forwards it. Repeated calls are
// ignored, matching net/http semantics.
func (r *Recorder) WriteHeader(code int) {
	if r.wroteHeader {
		return
	}
	r.code = code
	r.wroteHeader = true
	r.ResponseWriter.WriteHeader(code)
}

// Write forwards the body bytes and adds them to the recorded size. A write
// before WriteHeader commits the implicit 200, as the underlying writer does.
func (r *Recorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// Status returns the recorded HTTP status code.
func (r *Recorder) Status() int {
	return r.code
}

// BytesWritten returns the number of body bytes written so far.
func (r *Recorder) BytesWritten() int {
	return r.bytes
}

// Unwrap returns the underlying http.ResponseWriter for http.ResponseController.
func (r *Recorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
