package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/chatrelay/internal/chat"
	"github.com/nfrund/chatrelay/internal/middleware"
	"github.com/nfrund/chatrelay/internal/upstream"
)

// ChatHandler translates the REST surface into store operations and upstream
// completion calls. All dependencies are injected at construction.
type ChatHandler struct {
	store     *chat.Store
	completer upstream.Completer
	maxTurns  int
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(store *chat.Store, completer upstream.Completer, maxTurns int) *ChatHandler {
	return &ChatHandler{store: store, completer: completer, maxTurns: maxTurns}
}

// Health handles the liveness probe.
func (h *ChatHandler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// ListChats returns all known chat identifiers.
func (h *ChatHandler) ListChats(c echo.Context) error {
	return c.JSON(http.StatusOK, ChatListResponse{ChatIDs: h.store.ListIDs()})
}

// SendMessage creates or continues a chat: it appends the user's message,
// asks the upstream model for a reply with the trimmed history as context,
// stores the reply, and returns it.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var body sendMessageBody
	// A malformed body surfaces as missing fields below.
	_ = c.Bind(&body)

	req := SendMessageRequest{
		ChatID:  asString(body.ChatID),
		Message: asString(body.Message),
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationMessage(err)})
	}

	prior := h.store.GetOrCreate(req.ChatID)

	history := chat.Trim(append(prior, chat.Message{Role: chat.RoleUser, Content: req.Message}), h.maxTurns)
	h.store.Replace(req.ChatID, history)

	ctx := c.Request().Context()
	reply, err := h.completer.Complete(ctx, history)
	if err != nil {
		middleware.FromContext(ctx).Error("Upstream completion failed", "chatId", req.ChatID, "error", err)
		// The 500 tells the client this turn did not happen, so the stored
		// history has to agree: restore the pre-request snapshot.
		h.store.Replace(req.ChatID, prior)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Server error"})
	}

	history = chat.Trim(append(history, chat.Message{Role: chat.RoleAssistant, Content: reply}), h.maxTurns)
	h.store.Replace(req.ChatID, history)

	return c.JSON(http.StatusOK, ReplyResponse{Reply: reply})
}

// DeleteChat removes a conversation.
func (h *ChatHandler) DeleteChat(c echo.Context) error {
	id := c.Param("chatId")
	if id == "" {
		// Unreachable through the registered route, kept as a guard.
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "chatId is required"})
	}

	if !h.store.Delete(id) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Chat not found"})
	}
	return c.JSON(http.StatusOK, DeleteResponse{OK: true})
}
