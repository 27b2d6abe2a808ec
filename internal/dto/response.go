package dto

import "time"

// UserSummary is the user shape embedded in auth responses.
type UserSummary struct {
	ID           uint64 `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
}

// ResourceResponse is the resource projection returned by the API.
type ResourceResponse struct {
	ID            uint64    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	FileName      string    `json:"file_name"`
	StoredName    string    `json:"stored_name"`
	FileSize      int64     `json:"file_size"`
	DownloadCount int64     `json:"download_count"`
	UploaderID    uint64    `json:"uploader_id"`
	Uploader      string    `json:"uploader"`
	CreatedAt     time.Time `json:"created_at"`
}

// GroupResponse includes the computed member count.
type GroupResponse struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedBy   string    `json:"created_by"`
	MemberCount int64     `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// MessageResponse is a group message with its sender and attachment.
type MessageResponse struct {
	ID            uint64    `json:"id"`
	Content       string    `json:"content"`
	Sender        string    `json:"sender"`
	ResourceID    *uint64   `json:"resource_id"`
	ResourceTitle *string   `json:"resource_title"`
	CreatedAt     time.Time `json:"created_at"`
}

// DirectMessageResponse is one side-agnostic conversation entry.
type DirectMessageResponse struct {
	ID               uint64    `json:"id"`
	Content          string    `json:"content"`
	SenderID         uint64    `json:"sender_id"`
	SenderUsername   string    `json:"sender_username"`
	ReceiverID       uint64    `json:"receiver_id"`
	ReceiverUsername string    `json:"receiver_username"`
	ResourceID       *uint64   `json:"resource_id"`
	Read             bool      `json:"read"`
	CreatedAt        time.Time `json:"created_at"`
}
