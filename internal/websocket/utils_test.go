package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
)

// dialTestConn upgrades a throwaway HTTP server connection and hands the
// server-side conn to serve. The returned client conn reads what serve writes.
func dialTestConn(t *testing.T, serve func(*websocket.Conn)) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		serve(conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

// The draft stream writes pongs and forwarded events from separate
// goroutines. Writer must serialize them; run with -race.
func TestWriterSerializesConcurrentSends(t *testing.T) {
	const goroutines = 8
	const perGoroutine = 25

	done := make(chan struct{})
	client := dialTestConn(t, func(conn *websocket.Conn) {
		defer conn.Close()

		writer := NewWriter(conn)
		var wg sync.WaitGroup
		for g := 0; g < goroutines; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < perGoroutine; i++ {
					if err := writer.WriteTyped(PongResponse{Event: EventPong}); err != nil {
						t.Errorf("WriteTyped: %v", err)
						return
					}
				}
			}()
		}
		wg.Wait()
		close(done)
	})

	for i := 0; i < goroutines*perGoroutine; i++ {
		var msg PongResponse
		if err := client.ReadJSON(&msg); err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if msg.Event != EventPong {
			t.Fatalf("event = %q, want pong", msg.Event)
		}
	}
	<-done
}

func TestWriteError(t *testing.T) {
	client := dialTestConn(t, func(conn *websocket.Conn) {
		defer conn.Close()
		if err := NewWriter(conn).WriteError("unknown action: subscribe"); err != nil {
			t.Errorf("WriteError: %v", err)
		}
	})

	var msg ErrorResponse
	if err := client.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Event != EventError || msg.Error != "unknown action: subscribe" {
		t.Fatalf("msg = %+v", msg)
	}
}
