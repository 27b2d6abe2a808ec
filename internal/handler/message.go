package handler

import (
	"net/http"
	"strconv"

	"CampusVault/internal/dto"
	"CampusVault/internal/service"
	"CampusVault/model"

	"github.com/gin-gonic/gin"
)

// MessageHandler serves group messages and direct conversations.
type MessageHandler struct {
	messages *service.MessageService
}

// NewMessageHandler creates a message handler.
func NewMessageHandler(messages *service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// Send stores a group message from the caller.
func (h *MessageHandler) Send(c *gin.Context) {
	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	message, err := h.messages.SendGroupMessage(c.Request.Context(), actorID(c), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Message sent",
		"message_id": message.ID,
	})
}

// List returns a group's messages in chronological order.
func (h *MessageHandler) List(c *gin.Context) {
	groupID, err := strconv.ParseUint(c.Query("group_id"), 10, 64)
	if err != nil || groupID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Group ID is required"})
		return
	}
	messages, err := h.messages.ListGroupMessages(c.Request.Context(), groupID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, toMessageResponse(&messages[i]))
	}
	c.JSON(http.StatusOK, out)
}

func toMessageResponse(m *model.Message) dto.MessageResponse {
	resp := dto.MessageResponse{
		ID:         m.ID,
		Content:    m.Content,
		Sender:     m.Sender.UserName,
		ResourceID: m.ResourceID,
		CreatedAt:  m.CreatedAt,
	}
	if m.Resource != nil {
		resp.ResourceTitle = &m.Resource.Title
	}
	return resp
}

// SendDirect stores a direct message from the caller.
func (h *MessageHandler) SendDirect(c *gin.Context) {
	var req dto.SendDirectMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	message, err := h.messages.SendDirectMessage(c.Request.Context(), actorID(c), &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Direct message sent",
		"message_id": message.ID,
	})
}

// ListDirect returns the conversation between two users, either direction.
func (h *MessageHandler) ListDirect(c *gin.Context) {
	senderID, senderErr := strconv.ParseUint(c.Query("sender_id"), 10, 64)
	receiverID, receiverErr := strconv.ParseUint(c.Query("receiver_id"), 10, 64)
	if senderErr != nil || receiverErr != nil || senderID == 0 || receiverID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both sender and receiver IDs are required"})
		return
	}
	messages, err := h.messages.ListConversation(c.Request.Context(), senderID, receiverID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]dto.DirectMessageResponse, 0, len(messages))
	for i := range messages {
		m := &messages[i]
		out = append(out, dto.DirectMessageResponse{
			ID:               m.ID,
			Content:          m.Content,
			SenderID:         m.SenderID,
			SenderUsername:   m.Sender.UserName,
			ReceiverID:       m.ReceiverID,
			ReceiverUsername: m.Receiver.UserName,
			ResourceID:       m.ResourceID,
			Read:             m.Read,
			CreatedAt:        m.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}
