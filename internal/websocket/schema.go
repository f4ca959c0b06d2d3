package websocket

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventError Event = "error"
	EventDraft Event = "draft"
	EventPong  Event = "pong"
)

// DraftEventResponse carries a draft lifecycle notification to the client.
// Kind is "updated", "committed" or "discarded".
type DraftEventResponse struct {
	Event     Event  `json:"event"`
	DraftID   string `json:"draft_id"`
	Kind      string `json:"kind"`
	Timestamp int64  `json:"timestamp"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
