package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip transparently decompresses gzip request bodies and compresses
// response bodies for clients that accept gzip. Person search result sets
// compress well and are the main beneficiary; update payloads may arrive
// compressed from bulk importers. Writers and readers are pooled across
// requests.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		// Caches must keep the compressed and identity forms of the same
		// person payload apart.
		w.Header().Add("Vary", "Accept-Encoding")

		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			if err := decompressRequestBody(req); err != nil {
				http.Error(w, "invalid gzip data", http.StatusBadRequest)
				return
			}
		}

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		gzipWriter := gzipWriterPool.Get().(*gzip.Writer)
		gzipWriter.Reset(w)

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, gzipWriter: gzipWriter}, req)

		gzipWriter.Close()
		gzipWriterPool.Put(gzipWriter)
	})
}

// decompressRequestBody swaps req.Body for a pooled gzip reader over the
// original body and drops the Content-Encoding header so downstream decoders
// see plain JSON. The reader returns to the pool when the body is closed.
func decompressRequestBody(req *http.Request) error {
	gzipReader := gzipReaderPool.Get().(*gzip.Reader)
	if err := gzipReader.Reset(req.Body); err != nil {
		gzipReaderPool.Put(gzipReader)
		return err
	}

	req.Body = &pooledBodyReader{
		Reader: gzipReader,
		onClose: func() {
			gzipReader.Close()
			gzipReaderPool.Put(gzipReader)
		},
	}
	req.Header.Del("Content-Encoding")

	return nil
}

type pooledBodyReader struct {
	io.Reader
	onClose func()
}

func (r *pooledBodyReader) Close() error {
	if r.onClose != nil {
		r.onClose()
	}
	return nil
}

type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	// A bodiless status must not claim an encoding.
	if statusCode != http.StatusNoContent && statusCode != http.StatusNotModified {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.gzipWriter.Write(data)
}
