package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/ArcFarmia_Go/internal/chain"
	"github.com/osse101/ArcFarmia_Go/internal/domain"
	"github.com/osse101/ArcFarmia_Go/internal/farm"
	"github.com/osse101/ArcFarmia_Go/internal/logger"
)

// Handler upgrades /ws requests and serves the intent stream
type Handler struct {
	hub        *Hub
	dispatcher *Dispatcher
	upgrader   websocket.Upgrader
}

// NewHandler creates a handler. A nil checkOrigin accepts same-host requests only.
func NewHandler(hub *Hub, dispatcher *Dispatcher, checkOrigin func(*http.Request) bool) *Handler {
	return &Handler{
		hub:        hub,
		dispatcher: dispatcher,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  ReadBufferSize,
			WriteBufferSize: WriteBufferSize,
			CheckOrigin:     checkOrigin,
		},
	}
}

// ServeHTTP upgrades the connection, sends the current view and then answers
// every intent with a result frame carrying the view after it.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn(LogMsgUpgradeFailed, "error", err)
		return
	}
	defer conn.Close()

	c := &client{conn: conn, send: make(chan []byte, SendBufferSize)}
	if !h.hub.register(c) {
		return
	}
	log.Info(LogMsgClientConnected, "remote", conn.RemoteAddr().String())
	defer log.Info(LogMsgClientDisconnected, "remote", conn.RemoteAddr().String())

	done := make(chan struct{})
	go func() {
		defer close(done)
		writePump(c)
	}()

	h.enqueue(r.Context(), c, h.hub.viewFrame())
	h.readPump(r.Context(), c)

	// The writer exits once unregister closes the send channel.
	h.hub.unregister(c)
	<-done
}

func (h *Handler) readPump(ctx context.Context, c *client) {
	log := logger.FromContext(ctx)

	c.conn.SetReadLimit(MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(PongWait))
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(PongWait))

		var in Intent
		if err := json.Unmarshal(msg, &in); err != nil {
			log.Debug(LogMsgBadFrame, "error", err)
			h.enqueue(ctx, c, ResultFrame{Type: FrameError, Error: ErrMsgMalformedIntent, View: h.hub.farm.View()})
			continue
		}

		res, err := h.dispatcher.Dispatch(ctx, in)
		h.enqueue(ctx, c, resultFrame(in, res, err, h.hub))
	}
}

func resultFrame(in Intent, res farm.Result, err error, hub *Hub) ResultFrame {
	frame := ResultFrame{
		Type:      FrameResult,
		RequestID: in.RequestID,
		Intent:    in.Type,
		Result:    res,
		Applied:   err == nil && res.Applied,
		View:      hub.farm.View(),
	}
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrActionRejected):
		if frame.Result.Reason == "" {
			frame.Result.Reason = err.Error()
		}
	default:
		frame.Type = FrameError
		frame.Error = err.Error()
		if errors.Is(err, domain.ErrChainUnavailable) || errors.Is(err, domain.ErrTransactionReverted) {
			frame.Reason = chain.Reason(err)
		}
	}
	return frame
}

func (h *Handler) enqueue(ctx context.Context, c *client, frame interface{}) {
	data, err := json.Marshal(frame)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgEncodeFailed, "error", err)
		return
	}
	select {
	case c.send <- data:
	default:
		logger.FromContext(ctx).Warn(LogMsgSlowClient, "remote", c.conn.RemoteAddr().String())
	}
}

func writePump(c *client) {
	ticker := time.NewTicker(PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(WriteWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				_ = c.conn.Close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = c.conn.Close()
				return
			}
		}
	}
}
