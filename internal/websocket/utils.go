package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeTimeout = 10 * time.Second
	readTimeout  = 5 * time.Minute
)

// WriteTyped sends a typed payload over the WebSocket with a write deadline.
func WriteTyped(conn *websocket.Conn, v interface{}) error {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(v)
}

// WriteError sends an ErrorResponse over the WebSocket.
func WriteError(conn *websocket.Conn, msg string) error {
	return WriteTyped(conn, ErrorResponse{
		Event: EventError,
		Error: msg,
	})
}

// Writer serializes concurrent sends to one connection. gorilla/websocket
// allows only a single writer per connection, and the draft stream writes
// from both its read loop and its pub/sub forwarder.
type Writer struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// NewWriter wraps conn for use from multiple goroutines. All writes to the
// connection must go through the returned Writer.
func NewWriter(conn *websocket.Conn) *Writer {
	return &Writer{conn: conn}
}

// WriteTyped sends a typed payload, holding the write lock for the send.
func (w *Writer) WriteTyped(v interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return WriteTyped(w.conn, v)
}

// WriteError sends an ErrorResponse.
func (w *Writer) WriteError(msg string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return WriteError(w.conn, msg)
}

// ReadJSON decodes the next message into v. The read deadline doubles as an
// idle timeout for the stream.
func ReadJSON(conn *websocket.Conn, v interface{}) error {
	conn.SetReadDeadline(time.Now().Add(readTimeout))
	return conn.ReadJSON(v)
}
