package model

import "time"

type Message struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Content string `gorm:"column:content;type:text;not null" json:"content"`

	UserID uint64 `gorm:"column:user_id;not null;index" json:"sender_id"`
	Sender User   `gorm:"foreignKey:UserID;references:ID" json:"-"`

	GroupID *uint64 `gorm:"column:group_id;index" json:"group_id,omitempty"`
	Group   *Group  `gorm:"foreignKey:GroupID;references:ID" json:"-"`

	ResourceID *uint64   `gorm:"column:resource_id;index" json:"resource_id,omitempty"`
	Resource   *Resource `gorm:"foreignKey:ResourceID;references:ID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (Message) TableName() string {
	return "messages"
}

type DirectMessage struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Content string `gorm:"column:content;type:text;not null" json:"content"`

	SenderID uint64 `gorm:"column:sender_id;not null;index" json:"sender_id"`
	Sender   User   `gorm:"foreignKey:SenderID;references:ID" json:"-"`

	ReceiverID uint64 `gorm:"column:receiver_id;not null;index" json:"receiver_id"`
	Receiver   User   `gorm:"foreignKey:ReceiverID;references:ID" json:"-"`

	ResourceID *uint64   `gorm:"column:resource_id;index" json:"resource_id,omitempty"`
	Resource   *Resource `gorm:"foreignKey:ResourceID;references:ID" json:"-"`

	Read bool `gorm:"column:read;not null;default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (DirectMessage) TableName() string {
	return "direct_messages"
}
