package models

import "time"

// News represents the news table. Notice rows (is_notice) are pinned above the
// rest when listing.
type News struct {
	ID              string    `gorm:"primaryKey;column:id" json:"id"`
	Title           string    `gorm:"column:title" json:"title"`
	Category        string    `gorm:"column:category" json:"category"`
	Content         *string   `gorm:"column:content" json:"content"`
	ThumbnailURL    *string   `gorm:"column:thumbnail_url" json:"thumbnail_url"`
	IsNotice        bool      `gorm:"column:is_notice" json:"is_notice"`
	IsPublished     bool      `gorm:"column:is_published" json:"is_published"`
	PublishedAt     time.Time `gorm:"column:published_at" json:"published_at"`
	Views           int       `gorm:"column:views" json:"views"`
	MetaDescription *string   `gorm:"column:meta_description" json:"meta_description"`
	Slug            *string   `gorm:"column:slug" json:"slug"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (News) TableName() string {
	return "news"
}
