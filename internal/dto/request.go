package dto

type RegisterRequest struct {
	Email        string `json:"email"`
	Username     string `json:"username"`
	FullName     string `json:"full_name"`
	Password     string `json:"password"`
	FieldOfStudy string `json:"field_of_study"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UpdateResourceRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type SendMessageRequest struct {
	Content    string  `json:"content"`
	GroupID    *uint64 `json:"group_id"`
	ResourceID *uint64 `json:"resource_id"`
}

type SendDirectMessageRequest struct {
	Content    string  `json:"content"`
	ReceiverID uint64  `json:"receiver_id"`
	ResourceID *uint64 `json:"resource_id"`
}
