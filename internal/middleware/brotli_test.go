package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
)

func brotliRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Brotli())
	router.GET("/body", handler)
	return router
}

func brotliGet(router *gin.Engine, acceptEncoding string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/body", nil)
	if acceptEncoding != "" {
		req.Header.Set("Accept-Encoding", acceptEncoding)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestBrotliCompressesLargeBody(t *testing.T) {
	payload := strings.Repeat("assessment authoring ", 200)
	router := brotliRouter(func(c *gin.Context) {
		c.String(http.StatusOK, payload)
	})

	rec := brotliGet(router, "br")
	if got := rec.Header().Get("Content-Encoding"); got != "br" {
		t.Fatalf("Content-Encoding = %q, want br", got)
	}

	decoded, err := io.ReadAll(brotli.NewReader(bytes.NewReader(rec.Body.Bytes())))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(decoded) != payload {
		t.Fatalf("decoded body differs from payload")
	}
}

func TestBrotliSkipsSmallBody(t *testing.T) {
	router := brotliRouter(func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	rec := brotliGet(router, "br")
	if got := rec.Header().Get("Content-Encoding"); got != "" {
		t.Fatalf("Content-Encoding = %q, want none", got)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestBrotliSkipsClientsWithoutSupport(t *testing.T) {
	payload := strings.Repeat("x", 4096)
	router := brotliRouter(func(c *gin.Context) {
		c.String(http.StatusOK, payload)
	})

	rec := brotliGet(router, "gzip")
	if got := rec.Header().Get("Content-Encoding"); got != "" {
		t.Fatalf("Content-Encoding = %q, want none", got)
	}
	if rec.Body.String() != payload {
		t.Fatal("body altered for non-br client")
	}
}

// A handler that flushes while still under the compression threshold has
// already sent identity-encoded bytes. The rest of the body must stay
// identity-encoded even when it later crosses the threshold.
func TestBrotliFlushPinsIdentityEncoding(t *testing.T) {
	head := strings.Repeat("a", 512)
	tail := strings.Repeat("b", 2048)
	router := brotliRouter(func(c *gin.Context) {
		c.Status(http.StatusOK)
		if _, err := c.Writer.WriteString(head); err != nil {
			t.Errorf("write head: %v", err)
		}
		c.Writer.Flush()
		if _, err := c.Writer.WriteString(tail); err != nil {
			t.Errorf("write tail: %v", err)
		}
	})

	rec := brotliGet(router, "br")
	if got := rec.Header().Get("Content-Encoding"); got != "" {
		t.Fatalf("Content-Encoding = %q, want none after early flush", got)
	}
	if rec.Body.String() != head+tail {
		t.Fatalf("body = %d bytes, want %d plain bytes", rec.Body.Len(), len(head)+len(tail))
	}
}
