package models

import "time"

// Media represents the media table. FileURL is the public URL served by the
// object storage backend; Folder is the storage path prefix the file lives in.
type Media struct {
	ID         string    `gorm:"primaryKey;column:id" json:"id"`
	FileName   string    `gorm:"column:file_name" json:"file_name"`
	FileURL    string    `gorm:"column:file_url" json:"file_url"`
	FileType   *string   `gorm:"column:file_type" json:"file_type"`
	FileSize   *int64    `gorm:"column:file_size" json:"file_size"`
	Folder     string    `gorm:"column:folder" json:"folder"`
	AltText    *string   `gorm:"column:alt_text" json:"alt_text"`
	UploadedBy *string   `gorm:"column:uploaded_by" json:"uploaded_by"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Media) TableName() string {
	return "media"
}

// IsValidImageType reports whether the media row is a web-displayable image.
func (m *Media) IsValidImageType() bool {
	if m.FileType == nil {
		return false
	}
	validTypes := []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"}
	for _, validType := range validTypes {
		if *m.FileType == validType {
			return true
		}
	}
	return false
}
