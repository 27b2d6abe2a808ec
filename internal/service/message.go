package service

import (
	"context"

	"CampusVault/internal/dto"
	"CampusVault/model"

	"gorm.io/gorm"
)

// MessageService handles group messages and direct conversations.
type MessageService struct {
	db *gorm.DB
}

// NewMessageService creates a message service.
func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

// SendGroupMessage stores a message. It must carry content or a resource.
func (s *MessageService) SendGroupMessage(ctx context.Context, senderID uint64, req *dto.SendMessageRequest) (*model.Message, error) {
	if req.Content == "" && req.ResourceID == nil {
		return nil, NewValidationError("content", "Message content or resource is required")
	}
	message := &model.Message{
		Content:    req.Content,
		UserID:     senderID,
		GroupID:    req.GroupID,
		ResourceID: req.ResourceID,
	}
	if err := s.db.WithContext(ctx).Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// ListGroupMessages returns a group's messages in chronological order.
func (s *MessageService) ListGroupMessages(ctx context.Context, groupID uint64) ([]model.Message, error) {
	var messages []model.Message
	err := s.db.WithContext(ctx).
		Preload("Sender").
		Preload("Resource").
		Where("group_id = ?", groupID).
		Order("created_at asc, id asc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// SendDirectMessage stores a peer-to-peer message.
func (s *MessageService) SendDirectMessage(ctx context.Context, senderID uint64, req *dto.SendDirectMessageRequest) (*model.DirectMessage, error) {
	fields := map[string]string{}
	if req.Content == "" && req.ResourceID == nil {
		fields["content"] = "Message content or resource is required"
	}
	if req.ReceiverID == 0 {
		fields["receiver_id"] = "Receiver ID is required"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	message := &model.DirectMessage{
		Content:    req.Content,
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		ResourceID: req.ResourceID,
	}
	if err := s.db.WithContext(ctx).Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// ListConversation returns every message between the unordered pair {a, b},
// ascending by creation time. (a, b) and (b, a) yield the same result.
func (s *MessageService) ListConversation(ctx context.Context, a, b uint64) ([]model.DirectMessage, error) {
	var messages []model.DirectMessage
	err := s.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Order("created_at asc, id asc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
