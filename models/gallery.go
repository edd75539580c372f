package models

import "time"

// GalleryProject represents the gallery_projects table. PageType separates the
// house and apartment gallery pages.
type GalleryProject struct {
	ID           string    `gorm:"primaryKey;column:id" json:"id"`
	Title        string    `gorm:"column:title" json:"title"`
	Category     string    `gorm:"column:category" json:"category"`
	SubCategory  *string   `gorm:"column:sub_category" json:"sub_category"`
	Location     *string   `gorm:"column:location" json:"location"`
	Area         *string   `gorm:"column:area" json:"area"`
	Description  *string   `gorm:"column:description" json:"description"`
	ThumbnailURL *string   `gorm:"column:thumbnail_url" json:"thumbnail_url"`
	IsPublished  bool      `gorm:"column:is_published" json:"is_published"`
	SortOrder    int       `gorm:"column:sort_order" json:"sort_order"`
	PageType     string    `gorm:"column:page_type" json:"page_type"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`

	// Relations
	Images []GalleryImage `gorm:"foreignKey:ProjectID" json:"images,omitempty"`
}

func (GalleryProject) TableName() string {
	return "gallery_projects"
}

// GalleryImage is one image attached to a gallery project.
type GalleryImage struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	ProjectID string    `gorm:"column:project_id" json:"project_id"`
	ImageURL  string    `gorm:"column:image_url" json:"image_url"`
	Caption   *string   `gorm:"column:caption" json:"caption"`
	SortOrder int       `gorm:"column:sort_order" json:"sort_order"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (GalleryImage) TableName() string {
	return "gallery_images"
}
