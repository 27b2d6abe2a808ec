package model

import "time"

type Group struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Category    string `gorm:"column:category;type:varchar(50);not null" json:"category"`

	CreatedBy uint64 `gorm:"column:created_by;not null;index" json:"created_by"`
	Creator   User   `gorm:"foreignKey:CreatedBy;references:ID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (Group) TableName() string {
	return "groups"
}

// Membership roles.
const (
	RoleOwner     = "owner"
	RoleModerator = "moderator"
	RoleMember    = "member"
)

type GroupMember struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	UserID uint64 `gorm:"column:user_id;not null;index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID;references:ID" json:"-"`

	GroupID uint64 `gorm:"column:group_id;not null;index" json:"group_id"`
	Group   Group  `gorm:"foreignKey:GroupID;references:ID" json:"-"`

	Role string `gorm:"column:role;type:varchar(20);not null;default:'member'" json:"role"`

	JoinedAt time.Time `gorm:"column:joined_at;autoCreateTime" json:"joined_at"`
}

// TableName returns the database table name.
func (GroupMember) TableName() string {
	return "group_members"
}
