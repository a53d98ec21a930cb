// Package http exposes the chat controller as a webhook. A chat transport
// posts each inbound user text and sends back the returned reply.
package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ChatHandler processes one inbound text and returns the bot's reply.
type ChatHandler interface {
	Handle(ctx context.Context, userID, text string) (string, error)
}

// Error is the JSON body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// InboundMessage is the body of POST /api/v1/chats/:userId/messages.
type InboundMessage struct {
	Text string `json:"text"`
}

// Reply is returned when the bot answers an inbound message.
type Reply struct {
	Reply string `json:"reply"`
}

// Server handles HTTP requests and forwards chat messages to the controller.
type Server struct {
	chat ChatHandler
}

// NewServer creates a new HTTP server backed by chat.
func NewServer(chat ChatHandler) *Server {
	return &Server{chat: chat}
}

// RegisterRoutes mounts the server's handlers on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/chats/:userId/messages", s.PostMessage)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// PostMessage handles POST /api/v1/chats/:userId/messages. It answers 200
// with the reply, or 204 when the bot has nothing to say.
func (s *Server) PostMessage(ctx echo.Context) error {
	userID := ctx.Param("userId")
	if userID == "" {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "User id is required",
		})
	}

	var msg InboundMessage
	if err := ctx.Bind(&msg); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	reply, err := s.chat.Handle(ctx.Request().Context(), userID, msg.Text)
	if err != nil {
		ctx.Logger().Errorf("chat message of user %s failed: %v", userID, err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process message",
		})
	}

	if reply == "" {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusOK, Reply{Reply: reply})
}
