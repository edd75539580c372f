// controllers/journal.go - 시공 일지 관리
package controllers

import (
	"log"
	"net/http"
	"time"

	"howdohome-api/config"
	"howdohome-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPublishedJournals - 공개 시공 일지 목록 (public)
func GetPublishedJournals(c *gin.Context) {
	category := c.Query("category")

	query := config.DB.Model(&models.Journal{}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("is_published = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var journals []models.Journal
	if err := query.Order("published_at DESC").Find(&journals).Error; err != nil {
		log.Printf("failed to fetch journals: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch journals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": journals, "count": len(journals)})
}

// GetJournal - 시공 일지 상세 (public)
func GetJournal(c *gin.Context) {
	id := c.Param("id")

	var journal models.Journal
	if err := config.DB.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).Where("id = ? AND is_published = ?", id, true).First(&journal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": journal})
}

// GetAllJournals - 전체 시공 일지 (admin)
func GetAllJournals(c *gin.Context) {
	var journals []models.Journal
	if err := config.DB.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).Order("published_at DESC").Find(&journals).Error; err != nil {
		log.Printf("failed to fetch journals: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch journals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": journals, "count": len(journals)})
}

type JournalRequest struct {
	Title          string  `json:"title" binding:"required"`
	Category       string  `json:"category" binding:"required"`
	Location       *string `json:"location"`
	ProgressStatus *string `json:"progress_status"`
	Description    *string `json:"description"`
	Content        *string `json:"content"`
	ThumbnailURL   *string `json:"thumbnail_url"`
	IsPublished    bool    `json:"is_published"`
	Slug           *string `json:"slug"`
}

// CreateJournal - 시공 일지 등록 (admin)
func CreateJournal(c *gin.Context) {
	var req JournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	journal := models.Journal{
		ID:             uuid.NewString(),
		Title:          req.Title,
		Category:       req.Category,
		Location:       req.Location,
		ProgressStatus: req.ProgressStatus,
		Description:    req.Description,
		Content:        req.Content,
		ThumbnailURL:   req.ThumbnailURL,
		IsPublished:    req.IsPublished,
		PublishedAt:    now,
		Slug:           req.Slug,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := config.DB.Create(&journal).Error; err != nil {
		log.Printf("failed to create journal: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": journal})
}

// UpdateJournal - 시공 일지 수정 (admin)
func UpdateJournal(c *gin.Context) {
	id := c.Param("id")

	var journal models.Journal
	if err := config.DB.Where("id = ?", id).First(&journal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
		return
	}

	var req JournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"title":           req.Title,
		"category":        req.Category,
		"location":        req.Location,
		"progress_status": req.ProgressStatus,
		"description":     req.Description,
		"content":         req.Content,
		"thumbnail_url":   req.ThumbnailURL,
		"is_published":    req.IsPublished,
		"slug":            req.Slug,
		"updated_at":      time.Now(),
	}

	if err := config.DB.Model(&journal).Updates(updates).Error; err != nil {
		log.Printf("failed to update journal %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
		return
	}

	config.DB.Preload("Images").Where("id = ?", id).First(&journal)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": journal})
}

// DeleteJournal - 시공 일지 삭제 (admin). Images rows go with it.
func DeleteJournal(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Where("id = ?", id).Delete(&models.Journal{})
	if result.Error != nil {
		log.Printf("failed to delete journal %s: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete journal"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
		return
	}

	config.DB.Where("journal_id = ?", id).Delete(&models.JournalImage{})

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "삭제되었습니다"})
}

type JournalImageRequest struct {
	ImageURL  string  `json:"image_url" binding:"required"`
	Caption   *string `json:"caption"`
	SortOrder int     `json:"sort_order"`
}

// AddJournalImage - 시공 일지 이미지 추가 (admin)
func AddJournalImage(c *gin.Context) {
	journalID := c.Param("id")

	var journal models.Journal
	if err := config.DB.Where("id = ?", journalID).First(&journal).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Journal not found"})
		return
	}

	var req JournalImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image := models.JournalImage{
		ID:        uuid.NewString(),
		JournalID: journalID,
		ImageURL:  req.ImageURL,
		Caption:   req.Caption,
		SortOrder: req.SortOrder,
		CreatedAt: time.Now(),
	}

	if err := config.DB.Create(&image).Error; err != nil {
		log.Printf("failed to add journal image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": image})
}

// DeleteJournalImage - 시공 일지 이미지 삭제 (admin)
func DeleteJournalImage(c *gin.Context) {
	imageID := c.Param("image_id")

	result := config.DB.Where("id = ?", imageID).Delete(&models.JournalImage{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ReorderJournalImages - 이미지 순서 변경 (admin)
func ReorderJournalImages(c *gin.Context) {
	journalID := c.Param("id")

	var req struct {
		ImageIDs []string `json:"image_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for i, imageID := range req.ImageIDs {
		if err := config.DB.Model(&models.JournalImage{}).
			Where("id = ? AND journal_id = ?", imageID, journalID).
			Update("sort_order", i).Error; err != nil {
			log.Printf("failed to reorder journal images: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
