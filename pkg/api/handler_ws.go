package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"

	"github.com/kaiseki-io/kaiseki/pkg/events"
)

// wsHandler handles GET /ws.
// Upgrades to WebSocket and serves the subscribe/unsubscribe/catchup
// protocol over the shared event manager. One connection can follow
// multiple sessions.
func (s *Server) wsHandler(c *echo.Context) error {
	opts := &websocket.AcceptOptions{}
	if len(s.cfg.Stream.AllowedWSOrigins) == 0 {
		// Development default; deployments set allowed_ws_origins.
		opts.InsecureSkipVerify = true
	} else {
		opts.OriginPatterns = s.cfg.Stream.AllowedWSOrigins
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), opts)
	if err != nil {
		return err
	}

	s.handleWSConnection(c.Request().Context(), conn)
	return nil
}

// handleWSConnection runs the read loop until the connection closes.
func (s *Server) handleWSConnection(ctx context.Context, conn *websocket.Conn) {
	sink := &wsSink{conn: conn, timeout: s.cfg.Stream.WriteTimeout}
	sub := s.manager.Register(ctx, sink)
	defer sub.Close()
	defer conn.Close(websocket.StatusNormalClosure, "")

	s.sendWS(ctx, sink, map[string]string{
		"kind":          "connection.established",
		"connection_id": sub.ID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg events.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "subscriber_id", sub.ID, "error", err)
			continue
		}

		s.handleWSMessage(ctx, sub, sink, &msg)
	}
}

// handleWSMessage dispatches one client message.
func (s *Server) handleWSMessage(ctx context.Context, sub *events.Subscriber, sink *wsSink, msg *events.ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if !validChannel(msg.Channel) {
			s.sendWS(ctx, sink, map[string]string{"kind": "error", "message": "channel is required for subscribe"})
			return
		}
		if err := sub.Subscribe(msg.Channel); err != nil {
			s.sendWS(ctx, sink, map[string]string{
				"kind":    "subscription.error",
				"channel": msg.Channel,
				"message": "failed to subscribe to channel",
			})
			return
		}
		s.sendWS(ctx, sink, map[string]string{
			"kind":    "subscription.confirmed",
			"channel": msg.Channel,
		})
		// Replay from the client's cursor; zero means the full log.
		afterSeq := int64(0)
		if msg.LastSeq != nil {
			afterSeq = *msg.LastSeq
		}
		if _, err := sub.Catchup(ctx, msg.Channel, afterSeq); err != nil {
			slog.Warn("WebSocket catchup failed", "channel", msg.Channel, "error", err)
		}

	case "unsubscribe":
		if !validChannel(msg.Channel) {
			s.sendWS(ctx, sink, map[string]string{"kind": "error", "message": "channel is required for unsubscribe"})
			return
		}
		sub.Unsubscribe(msg.Channel)

	case "catchup":
		if !validChannel(msg.Channel) || msg.LastSeq == nil {
			s.sendWS(ctx, sink, map[string]string{"kind": "error", "message": "channel and last_seq are required for catchup"})
			return
		}
		if _, err := sub.Catchup(ctx, msg.Channel, *msg.LastSeq); err != nil {
			slog.Warn("WebSocket catchup failed", "channel", msg.Channel, "error", err)
		}

	case "ping":
		s.sendWS(ctx, sink, map[string]string{"kind": "pong"})
	}
}

// validChannel accepts only per-session event channels.
func validChannel(channel string) bool {
	return strings.HasPrefix(channel, "menu_session:") && len(channel) > len("menu_session:")
}

func (s *Server) sendWS(ctx context.Context, sink *wsSink, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := sink.Send(ctx, data); err != nil {
		slog.Debug("WebSocket send failed", "error", err)
	}
}

// wsSink adapts a WebSocket connection to events.Sink.
type wsSink struct {
	conn    *websocket.Conn
	timeout time.Duration
}

// Send implements events.Sink. coder/websocket serializes concurrent
// writers internally; the timeout bounds a stalled client.
func (s *wsSink) Send(ctx context.Context, payload []byte) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.conn.Write(ctx, websocket.MessageText, payload)
}
