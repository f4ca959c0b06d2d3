package middleware

import (
	"net/http"
	"strings"
	"sync"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
)

// brotliMinLength is the smallest response body worth compressing. Short
// envelope responses are served as-is.
const brotliMinLength = 1024

// Brotli compresses response bodies for clients that advertise br support.
// Bodies below brotliMinLength pass through uncompressed, and upgrade or
// event-stream requests are never wrapped because both break when the
// response is buffered.
func Brotli() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isStreamingRequest(c) || !acceptsBrotli(c.Request) {
			c.Next()
			return
		}

		c.Header("Vary", "Accept-Encoding")

		bw := &brotliResponseWriter{
			ResponseWriter: c.Writer,
			br:             brotli.NewWriterLevel(c.Writer, brotli.DefaultCompression),
		}
		c.Writer = bw

		defer func() {
			if err := bw.drain(); err != nil {
				_ = c.Error(err)
			}
			if bw.compressing {
				bw.br.Close()
			}
		}()

		c.Next()
	}
}

// brotliResponseWriter buffers writes until the body crosses the size
// threshold, then switches the response to brotli encoding.
type brotliResponseWriter struct {
	gin.ResponseWriter
	br          *brotli.Writer
	pending     []byte
	headerOnce  sync.Once
	compressing bool
	passthrough bool
}

func (w *brotliResponseWriter) Write(data []byte) (int, error) {
	if w.passthrough {
		return w.ResponseWriter.Write(data)
	}

	w.pending = append(w.pending, data...)
	if len(w.pending) < brotliMinLength {
		return len(data), nil
	}

	w.headerOnce.Do(func() {
		w.compressing = true
		w.ResponseWriter.Header().Set("Content-Encoding", "br")
		w.ResponseWriter.Header().Del("Content-Length")
	})

	n, err := w.br.Write(w.pending)
	w.pending = w.pending[:0]
	return n, err
}

func (w *brotliResponseWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// Flush forwards buffered bytes so streaming handlers that flush explicitly
// keep working. A flush before the compression threshold pins the response
// to identity encoding for its remainder; once raw bytes have reached the
// client the body can never switch to brotli.
func (w *brotliResponseWriter) Flush() {
	if w.compressing {
		if len(w.pending) > 0 {
			_, _ = w.br.Write(w.pending)
			w.pending = w.pending[:0]
		}
		_ = w.br.Flush()
	} else {
		w.passthrough = true
		if len(w.pending) > 0 {
			_, _ = w.ResponseWriter.Write(w.pending)
			w.pending = w.pending[:0]
		}
	}
	w.ResponseWriter.Flush()
}

// drain writes out a body that never reached the compression threshold.
func (w *brotliResponseWriter) drain() error {
	if len(w.pending) == 0 {
		return nil
	}
	if w.compressing {
		_, err := w.br.Write(w.pending)
		w.pending = w.pending[:0]
		return err
	}
	_, err := w.ResponseWriter.Write(w.pending)
	w.pending = w.pending[:0]
	return err
}

func isStreamingRequest(c *gin.Context) bool {
	if strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "text/event-stream")
}

func acceptsBrotli(r *http.Request) bool {
	for _, enc := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		if strings.TrimSpace(strings.ToLower(enc)) == "br" {
			return true
		}
	}
	return false
}
