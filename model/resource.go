package model

import "time"

type Resource struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Category    string `gorm:"column:category;type:varchar(50);not null" json:"category"`

	FilePath string `gorm:"column:file_path;type:varchar(500);not null" json:"-"`
	FileName string `gorm:"column:file_name;type:varchar(200);not null" json:"file_name"`
	FileSize int64  `gorm:"column:file_size;not null" json:"file_size"`

	// SHA-256 of the stored bytes. One row per distinct content.
	FileHash string `gorm:"column:file_hash;size:64;uniqueIndex;not null" json:"-"`

	DownloadCount int64 `gorm:"column:download_count;not null;default:0" json:"download_count"`

	UserID   uint64 `gorm:"column:user_id;not null;index" json:"uploader_id"`
	Uploader User   `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (Resource) TableName() string {
	return "resources"
}
