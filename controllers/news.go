// controllers/news.go - 뉴스/공지 관리
package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"howdohome-api/config"
	"howdohome-api/models"
	"howdohome-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPublishedNews - 공개 뉴스 목록 (public). Notice rows come first.
func GetPublishedNews(c *gin.Context) {
	category := c.Query("category")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 10
	}

	query := config.DB.Model(&models.News{}).Where("is_published = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		log.Printf("failed to count news: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}

	var items []models.News
	if err := query.Order("is_notice DESC, published_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error; err != nil {
		log.Printf("failed to fetch news: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"pagination": gin.H{
			"current_page": page,
			"per_page":     pageSize,
			"total_count":  totalCount,
			"total_pages":  services.TotalPages(totalCount, pageSize),
		},
	})
}

// GetNewsItem - 공개 뉴스 상세 (public). Looks up by id, then slug, and bumps
// the view counter.
func GetNewsItem(c *gin.Context) {
	key := c.Param("id")

	var item models.News
	err := config.DB.Where("id = ? AND is_published = ?", key, true).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		err = config.DB.Where("slug = ? AND is_published = ?", key, true).First(&item).Error
	}
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}

	// Best effort; a lost increment is not worth failing the read.
	config.DB.Model(&models.News{}).Where("id = ?", item.ID).
		UpdateColumn("views", gorm.Expr("views + 1"))
	item.Views++

	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

// GetAllNews - 전체 뉴스 목록 (admin)
func GetAllNews(c *gin.Context) {
	category := c.Query("category")
	published := c.Query("published")

	query := config.DB.Model(&models.News{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if published != "" {
		query = query.Where("is_published = ?", published == "true")
	}

	var items []models.News
	if err := query.Order("is_notice DESC, published_at DESC").Find(&items).Error; err != nil {
		log.Printf("failed to fetch news: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch news"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": items, "count": len(items)})
}

type NewsRequest struct {
	Title           string  `json:"title" binding:"required"`
	Category        string  `json:"category" binding:"required"`
	Content         *string `json:"content"`
	ThumbnailURL    *string `json:"thumbnail_url"`
	IsNotice        bool    `json:"is_notice"`
	IsPublished     bool    `json:"is_published"`
	MetaDescription *string `json:"meta_description"`
	Slug            *string `json:"slug"`
}

// CreateNews - 뉴스 등록 (admin)
func CreateNews(c *gin.Context) {
	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	item := models.News{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Category:        req.Category,
		Content:         req.Content,
		ThumbnailURL:    req.ThumbnailURL,
		IsNotice:        req.IsNotice,
		IsPublished:     req.IsPublished,
		PublishedAt:     now,
		MetaDescription: req.MetaDescription,
		Slug:            req.Slug,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := config.DB.Create(&item).Error; err != nil {
		log.Printf("failed to create news: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": item})
}

// UpdateNews - 뉴스 수정 (admin)
func UpdateNews(c *gin.Context) {
	id := c.Param("id")

	var item models.News
	if err := config.DB.Where("id = ?", id).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}

	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"title":            req.Title,
		"category":         req.Category,
		"content":          req.Content,
		"thumbnail_url":    req.ThumbnailURL,
		"is_notice":        req.IsNotice,
		"is_published":     req.IsPublished,
		"meta_description": req.MetaDescription,
		"slug":             req.Slug,
		"updated_at":       time.Now(),
	}

	if err := config.DB.Model(&item).Updates(updates).Error; err != nil {
		log.Printf("failed to update news %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
		return
	}

	config.DB.Where("id = ?", id).First(&item)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

// ToggleNewsPublished - 공개 여부 전환 (admin)
func ToggleNewsPublished(c *gin.Context) {
	id := c.Param("id")

	var item models.News
	if err := config.DB.Where("id = ?", id).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}

	if err := config.DB.Model(&item).Updates(map[string]interface{}{
		"is_published": !item.IsPublished,
		"updated_at":   time.Now(),
	}).Error; err != nil {
		log.Printf("failed to toggle news %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "is_published": !item.IsPublished})
}

// DeleteNews - 뉴스 삭제 (admin)
func DeleteNews(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Where("id = ?", id).Delete(&models.News{})
	if result.Error != nil {
		log.Printf("failed to delete news %s: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete news"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "삭제되었습니다"})
}
