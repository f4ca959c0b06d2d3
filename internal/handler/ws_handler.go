package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/quizforge/quizforge-backend/internal/config"
	"github.com/quizforge/quizforge-backend/internal/middleware"
	"github.com/quizforge/quizforge-backend/internal/service"
	ws "github.com/quizforge/quizforge-backend/internal/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams draft lifecycle events to editor clients.
type WSHandler struct {
	rdb          *redis.Client
	draftService *service.DraftService
	log          zerolog.Logger
	upgrader     websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(rdb *redis.Client, draftService *service.DraftService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		rdb:          rdb,
		draftService: draftService,
		log:          log.With().Str("component", "ws_handler").Logger(),
		upgrader:     buildUpgrader(allowedOrigins),
	}
}

// DraftEventStream godoc
// WS /ws/v1/drafts/:id/stream
// Upgrades to WebSocket and forwards the draft's Redis pub/sub events. The
// client sees an "updated" event per applied edit, plus "committed" and
// "discarded" when the session ends.
func (h *WSHandler) DraftEventStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	draftID := c.Param("id")

	// The draft must exist and belong to this author before streaming.
	if _, err := h.draftService.Get(c.Request.Context(), claims.AuthorID, draftID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().
		Int("author_id", claims.AuthorID).
		Str("draft_id", draftID).
		Logger()

	wsLog.Info().Msg("Editor connected")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := h.rdb.Subscribe(ctx, config.CacheKey.DraftEventChannel(draftID))
	defer sub.Close()

	// Pongs and forwarded events share the connection, so every write has
	// to go through the same serialized writer.
	writer := ws.NewWriter(conn)

	go h.forwardEvents(ctx, sub, writer, wsLog)

	for {
		var msg ws.RequestEnvelope
		err := ws.ReadJSON(conn, &msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				wsLog.Warn().Err(err).Msg("Unexpected close")
			} else {
				wsLog.Debug().Msg("Connection closed")
			}
			return
		}

		switch msg.Action {
		case ws.ActionPing:
			writer.WriteTyped(ws.PongResponse{Event: ws.EventPong})
		default:
			wsLog.Warn().Str("action", string(msg.Action)).Msg("Unknown action")
			writer.WriteError("unknown action: " + string(msg.Action))
		}
	}
}

// forwardEvents relays draft events from Redis pub/sub onto the WebSocket
// until the subscription or connection drops.
func (h *WSHandler) forwardEvents(ctx context.Context, sub *redis.PubSub, writer *ws.Writer, wsLog zerolog.Logger) {
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}

			var event service.DraftEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				wsLog.Warn().Err(err).Msg("Malformed draft event")
				continue
			}

			err := writer.WriteTyped(ws.DraftEventResponse{
				Event:     ws.EventDraft,
				DraftID:   event.DraftID,
				Kind:      event.Kind,
				Timestamp: event.Timestamp.Unix(),
			})
			if err != nil {
				wsLog.Debug().Msg("Write failed, stopping event forwarder")
				return
			}
		}
	}
}
