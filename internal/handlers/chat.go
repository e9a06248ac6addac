package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"servicehub-backend/internal/middleware"
	"servicehub-backend/internal/models"
	"servicehub-backend/internal/services"
	"servicehub-backend/internal/supabase"
)

type ChatHandler struct {
	dbClient    *supabase.DatabaseClient
	chatService *services.ChatService
}

func NewChatHandler(dbClient *supabase.DatabaseClient, chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{
		dbClient:    dbClient,
		chatService: chatService,
	}
}

// OpenConversation godoc
// @Summary     Open a conversation
// @Description Returns the existing conversation with the given participant, creating one if none exists. Two users share at most one conversation.
// @Tags        chat
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.OpenConversationRequest true "Participant"
// @Success     200 {object} models.ConversationResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /conversations [post]
func (h *ChatHandler) OpenConversation(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	var req models.OpenConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	otherID, err := uuid.Parse(req.ParticipantID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid participant id"})
		return
	}
	if otherID == userID {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "cannot open a conversation with yourself"})
		return
	}

	role, err := h.dbClient.GetRole(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	conv, err := h.chatService.Open(userID, otherID, role)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, conversationResponse(conv, 0))
}

// ListConversations godoc
// @Summary     List conversations
// @Description Conversations the caller participates in, most recent activity first, with unread counts.
// @Tags        chat
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.ConversationListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /conversations [get]
func (h *ChatHandler) ListConversations(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	conversations, unread, err := h.dbClient.ListConversations(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := models.ConversationListResponse{Conversations: make([]models.ConversationResponse, len(conversations))}
	for i := range conversations {
		resp.Conversations[i] = conversationResponse(&conversations[i], unread[conversations[i].ID])
	}

	c.JSON(http.StatusOK, resp)
}

// ListMessages godoc
// @Summary     List a conversation's messages
// @Description Messages in ascending creation order. Only participants may read.
// @Tags        chat
// @Produce     json
// @Security    Bearer
// @Param       conversation_id path string true "Conversation ID (UUID)"
// @Success     200 {object} models.MessageListResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /conversations/{conversation_id}/messages [get]
func (h *ChatHandler) ListMessages(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	conversationID, err := uuid.Parse(c.Param("conversation_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid conversation id"})
		return
	}

	conv, err := h.dbClient.GetConversation(conversationID)
	if err != nil {
		writeError(c, err)
		return
	}
	if !conv.HasParticipant(userID) {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "forbidden"})
		return
	}

	messages, err := h.dbClient.ListMessages(conversationID)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := models.MessageListResponse{Messages: make([]models.MessageResponse, len(messages))}
	for i := range messages {
		resp.Messages[i] = messageResponse(&messages[i], "")
	}

	c.JSON(http.StatusOK, resp)
}

// SendMessage godoc
// @Summary     Send a message
// @Description Appends a message to the conversation and notifies the other participant. The optional client_ref is echoed back unchanged.
// @Tags        chat
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       conversation_id path string true "Conversation ID (UUID)"
// @Param       request body models.SendMessageRequest true "Message"
// @Success     200 {object} models.MessageResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /conversations/{conversation_id}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	conversationID, err := uuid.Parse(c.Param("conversation_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid conversation id"})
		return
	}

	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	message, err := h.chatService.Send(conversationID, userID, req.Content, req.ClientRef)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, messageResponse(message, req.ClientRef))
}

// MarkRead godoc
// @Summary     Mark a conversation read
// @Description Marks every message addressed to the caller in this conversation as read and reports how many changed.
// @Tags        chat
// @Produce     json
// @Security    Bearer
// @Param       conversation_id path string true "Conversation ID (UUID)"
// @Success     200 {object} models.MarkReadResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /conversations/{conversation_id}/read [post]
func (h *ChatHandler) MarkRead(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	conversationID, err := uuid.Parse(c.Param("conversation_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid conversation id"})
		return
	}

	updated, err := h.chatService.MarkRead(conversationID, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MarkReadResponse{Updated: updated})
}
