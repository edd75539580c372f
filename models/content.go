package models

import (
	"encoding/json"
	"time"
)

// Portfolio represents the portfolios table (연도별 시공 실적).
type Portfolio struct {
	ID            string    `gorm:"primaryKey;column:id" json:"id"`
	Year          int       `gorm:"column:year" json:"year"`
	Title         string    `gorm:"column:title" json:"title"`
	StructureType *string   `gorm:"column:structure_type" json:"structure_type"`
	SortOrder     int       `gorm:"column:sort_order" json:"sort_order"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Portfolio) TableName() string {
	return "portfolios"
}

// ProcessStep represents the process_steps table.
type ProcessStep struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	StepNumber  string    `gorm:"column:step_number" json:"step_number"`
	Title       string    `gorm:"column:title" json:"title"`
	Description *string   `gorm:"column:description" json:"description"`
	ImageURL    *string   `gorm:"column:image_url" json:"image_url"`
	SortOrder   int       `gorm:"column:sort_order" json:"sort_order"`
	IsPublished bool      `gorm:"column:is_published" json:"is_published"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (ProcessStep) TableName() string {
	return "process_steps"
}

// FAQ represents the faqs table.
type FAQ struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	Question    string    `gorm:"column:question" json:"question"`
	Answer      string    `gorm:"column:answer" json:"answer"`
	Category    string    `gorm:"column:category" json:"category"`
	SortOrder   int       `gorm:"column:sort_order" json:"sort_order"`
	IsPublished bool      `gorm:"column:is_published" json:"is_published"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (FAQ) TableName() string {
	return "faqs"
}

// SiteSetting is one key/value pair of the site_settings table.
type SiteSetting struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	Key       string    `gorm:"column:key" json:"key"`
	Value     *string   `gorm:"column:value" json:"value"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (SiteSetting) TableName() string {
	return "site_settings"
}

// Category represents the categories table shared by news/journal/gallery.
type Category struct {
	ID          string  `gorm:"primaryKey;column:id" json:"id"`
	Type        string  `gorm:"column:type" json:"type"`
	Name        string  `gorm:"column:name" json:"name"`
	Description *string `gorm:"column:description" json:"description"`
	Color       *string `gorm:"column:color" json:"color"`
	SortOrder   int     `gorm:"column:sort_order" json:"sort_order"`
	IsActive    bool    `gorm:"column:is_active" json:"is_active"`
}

func (Category) TableName() string {
	return "categories"
}

// MainPageSection represents the main_page_sections table. Content holds the
// section-specific JSON payload as stored.
type MainPageSection struct {
	ID          string          `gorm:"primaryKey;column:id" json:"id"`
	SectionKey  string          `gorm:"column:section_key" json:"section_key"`
	Title       *string         `gorm:"column:title" json:"title"`
	Subtitle    *string         `gorm:"column:subtitle" json:"subtitle"`
	Description *string         `gorm:"column:description" json:"description"`
	Content     json.RawMessage `gorm:"column:content" json:"content"`
	ImageURL    *string         `gorm:"column:image_url" json:"image_url"`
	IsVisible   bool            `gorm:"column:is_visible" json:"is_visible"`
	SortOrder   int             `gorm:"column:sort_order" json:"sort_order"`
	UpdatedAt   time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

func (MainPageSection) TableName() string {
	return "main_page_sections"
}
