package http

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"
)

var gzipPool = sync.Pool{
	New: func() any { return gzip.NewWriter(nil) },
}

// withGZip compresses JSON views for clients that accept gzip. The
// compressor is taken from the pool only once a body is actually written.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !acceptsGZip(r) {
			next.ServeHTTP(w, r)
			return
		}

		cw := &compressWriter{ResponseWriter: w}
		defer cw.finish()

		next.ServeHTTP(cw, r)
	})
}

func acceptsGZip(r *http.Request) bool {
	if r.Method == http.MethodHead {
		return false
	}
	for _, enc := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		name, _, _ := strings.Cut(strings.TrimSpace(enc), ";")
		if strings.EqualFold(name, "gzip") {
			return true
		}
	}
	return false
}

type compressWriter struct {
	http.ResponseWriter
	zw     *gzip.Writer
	status int
}

func (c *compressWriter) WriteHeader(status int) {
	if c.status != 0 {
		return
	}
	c.status = status

	if status != http.StatusNoContent && status != http.StatusNotModified {
		h := c.Header()
		h.Del("Content-Length")
		h.Set("Content-Encoding", "gzip")
		h.Add("Vary", "Accept-Encoding")
	}
	c.ResponseWriter.WriteHeader(status)
}

func (c *compressWriter) Write(p []byte) (int, error) {
	if c.status == 0 {
		c.WriteHeader(http.StatusOK)
	}
	if c.Header().Get("Content-Encoding") != "gzip" {
		return c.ResponseWriter.Write(p)
	}
	if c.zw == nil {
		c.zw = gzipPool.Get().(*gzip.Writer)
		c.zw.Reset(c.ResponseWriter)
	}
	return c.zw.Write(p)
}

// finish flushes the gzip trailer and returns the compressor to the pool.
func (c *compressWriter) finish() {
	if c.zw == nil {
		return
	}
	_ = c.zw.Close()
	gzipPool.Put(c.zw)
	c.zw = nil
}
