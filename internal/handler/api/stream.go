package api

import (
	"context"
	"encoding/json"
	"log/slog"

	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

const (
	streamSessionKey     = "session"
	streamUnsubscribeKey = "unsubscribe"
)

type BookingsEvent struct {
	Type     string                    `json:"type"`
	Bookings []*resdto.BookingResponse `json:"bookings"`
}

// StreamHandler pushes a session's full booking list over a websocket,
// once on connect and again after every change.
type StreamHandler struct {
	melody *melody.Melody
	cfg    config.Config
}

func NewStreamHandler(m *melody.Melody, cfg config.Config) *StreamHandler {
	h := &StreamHandler{melody: m, cfg: cfg}
	m.HandleConnect(h.onConnect)
	m.HandleDisconnect(h.onDisconnect)
	return h
}

// @Summary Booking stream
// @Description Websocket; pass the session token as ?token=.
// @Tags bookings
// @Param token query string true "Session token"
// @Success 101 "Switching Protocols"
// @Failure 401 {object} httperr.Response
// @Router /api/ws [get]
func (h *StreamHandler) Bookings(c *gin.Context) {
	s, ok := mustSession(c)
	if !ok {
		return
	}
	keys := map[string]any{streamSessionKey: s}
	if err := h.melody.HandleRequestWithKeys(c.Writer, c.Request, keys); err != nil {
		slog.Warn("websocket upgrade failed", "session_id", s.ID.String(), "error", err.Error())
	}
}

func (h *StreamHandler) onConnect(ms *melody.Session) {
	v, ok := ms.Get(streamSessionKey)
	if !ok {
		return
	}
	s := v.(*usecase.Session)

	unsubscribe := s.Account.WatchBookings(func(list []*queries.BookingView) {
		h.push(ms, list)
	})
	ms.Set(streamUnsubscribeKey, unsubscribe)

	list, err := s.Account.ListBookings(context.Background())
	if err != nil {
		slog.Warn("initial booking list unavailable", "session_id", s.ID.String(), "error", err.Error())
		return
	}
	h.push(ms, list)
}

func (h *StreamHandler) onDisconnect(ms *melody.Session) {
	if v, ok := ms.Get(streamUnsubscribeKey); ok {
		v.(func())()
	}
}

func (h *StreamHandler) push(ms *melody.Session, list []*queries.BookingView) {
	payload, err := json.Marshal(BookingsEvent{
		Type:     "bookings",
		Bookings: resdto.FromBookingViews(list, h.cfg.Booking.Currency),
	})
	if err != nil {
		slog.Error("encode booking event", "error", err.Error())
		return
	}
	if err := ms.Write(payload); err != nil {
		slog.Debug("booking event dropped", "error", err.Error())
	}
}
