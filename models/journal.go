package models

import "time"

// Journal represents the journals table (시공 일지).
type Journal struct {
	ID             string    `gorm:"primaryKey;column:id" json:"id"`
	Title          string    `gorm:"column:title" json:"title"`
	Category       string    `gorm:"column:category" json:"category"`
	Location       *string   `gorm:"column:location" json:"location"`
	ProgressStatus *string   `gorm:"column:progress_status" json:"progress_status"`
	Description    *string   `gorm:"column:description" json:"description"`
	Content        *string   `gorm:"column:content" json:"content"`
	ThumbnailURL   *string   `gorm:"column:thumbnail_url" json:"thumbnail_url"`
	IsPublished    bool      `gorm:"column:is_published" json:"is_published"`
	PublishedAt    time.Time `gorm:"column:published_at" json:"published_at"`
	Slug           *string   `gorm:"column:slug" json:"slug"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`

	// Relations
	Images []JournalImage `gorm:"foreignKey:JournalID" json:"images,omitempty"`
}

func (Journal) TableName() string {
	return "journals"
}

// JournalImage is one gallery image attached to a journal entry.
type JournalImage struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	JournalID string    `gorm:"column:journal_id" json:"journal_id"`
	ImageURL  string    `gorm:"column:image_url" json:"image_url"`
	Caption   *string   `gorm:"column:caption" json:"caption"`
	SortOrder int       `gorm:"column:sort_order" json:"sort_order"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (JournalImage) TableName() string {
	return "journal_images"
}
