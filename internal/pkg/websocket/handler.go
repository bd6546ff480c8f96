package websocket

import (
	"github.com/gin-gonic/gin"
	appauth "github.com/hirehunt/hirehunt/internal/app/auth"
	"github.com/hirehunt/hirehunt/internal/middleware"
	"github.com/hirehunt/hirehunt/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// Handler for WebSocket connections
type Handler struct {
	hub    *Hub
	logger zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
	}
}

// HandleConnection godoc
// @Summary Stream live events
// @Description Upgrades to a WebSocket that pushes referral.created, referral.status and message.new events for the caller. Browsers pass the token as the token query parameter.
// @Tags websocket
// @Security BearerAuth
// @Param token query string false "Bearer token"
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /api/ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	id, ok := appauth.FromContext(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().Err(err).Int64("userID", id.UserID).Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:    h.hub,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		userID: id.UserID,
		addr:   conn.RemoteAddr().String(),
		logger: h.logger,
	}
	if !h.hub.enqueue(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
