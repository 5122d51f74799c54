// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keith Braham

package http

import "net/http"

// responseWriter is a thin decorator around [http.ResponseWriter] that
// records the status code and the number of body bytes written, so the
// logging middleware can observe the response after the downstream handler
// has returned without buffering the body.
//
// WriteHeader is forwarded to the underlying writer exactly once; subsequent
// calls are silently ignored, mirroring the contract documented on
// [http.ResponseWriter].
type responseWriter struct {
	http.ResponseWriter

	// status is recorded on the first WriteHeader call (explicit or implicit).
	status int

	wroteHeader bool

	// size accumulates the bytes successfully written across all Write calls.
	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b to the underlying writer, implicitly writing a 200 header
// first if none was written yet, and adds the written byte count to size.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
