// controllers/gallery.go - 갤러리 프로젝트 관리
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

// GetPublishedGalleryProjects - 공개 갤러리 목록 (public). page_type separates
// the house and apartment pages.
func GetPublishedGalleryProjects(c *gin.Context) {
	pageType := c.Query("page_type")
	category := c.Query("category")

	query := config.DB.Model(&models.GalleryProject{}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("is_published = ?", true)
	if pageType != "" {
		query = query.Where("page_type = ?", pageType)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var projects []models.GalleryProject
	if err := query.Order("sort_order ASC, created_at DESC").Find(&projects).Error; err != nil {
		log.Printf("failed to fetch gallery projects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gallery projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": projects, "count": len(projects)})
}

// GetAllGalleryProjects - 전체 갤러리 목록 (admin)
func GetAllGalleryProjects(c *gin.Context) {
	pageType := c.Query("page_type")

	query := config.DB.Model(&models.GalleryProject{}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		})
	if pageType != "" {
		query = query.Where("page_type = ?", pageType)
	}

	var projects []models.GalleryProject
	if err := query.Order("sort_order ASC, created_at DESC").Find(&projects).Error; err != nil {
		log.Printf("failed to fetch gallery projects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gallery projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": projects, "count": len(projects)})
}

type GalleryProjectRequest struct {
	Title        string  `json:"title" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	SubCategory  *string `json:"sub_category"`
	Location     *string `json:"location"`
	Area         *string `json:"area"`
	Description  *string `json:"description"`
	ThumbnailURL *string `json:"thumbnail_url"`
	IsPublished  bool    `json:"is_published"`
	SortOrder    int     `json:"sort_order"`
	PageType     string  `json:"page_type" binding:"required"`
}

// CreateGalleryProject - 갤러리 프로젝트 등록 (admin)
func CreateGalleryProject(c *gin.Context) {
	var req GalleryProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	project := models.GalleryProject{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Category:     req.Category,
		SubCategory:  req.SubCategory,
		Location:     req.Location,
		Area:         req.Area,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		IsPublished:  req.IsPublished,
		SortOrder:    req.SortOrder,
		PageType:     req.PageType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := config.DB.Create(&project).Error; err != nil {
		log.Printf("failed to create gallery project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": project})
}

// UpdateGalleryProject - 갤러리 프로젝트 수정 (admin)
func UpdateGalleryProject(c *gin.Context) {
	id := c.Param("id")

	var project models.GalleryProject
	if err := config.DB.Where("id = ?", id).First(&project).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery project not found"})
		return
	}

	var req GalleryProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"title":         req.Title,
		"category":      req.Category,
		"sub_category":  req.SubCategory,
		"location":      req.Location,
		"area":          req.Area,
		"description":   req.Description,
		"thumbnail_url": req.ThumbnailURL,
		"is_published":  req.IsPublished,
		"sort_order":    req.SortOrder,
		"page_type":     req.PageType,
		"updated_at":    time.Now(),
	}

	if err := config.DB.Model(&project).Updates(updates).Error; err != nil {
		log.Printf("failed to update gallery project %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
		return
	}

	config.DB.Preload("Images").Where("id = ?", id).First(&project)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": project})
}

// DeleteGalleryProject - 갤러리 프로젝트 삭제 (admin)
func DeleteGalleryProject(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Where("id = ?", id).Delete(&models.GalleryProject{})
	if result.Error != nil {
		log.Printf("failed to delete gallery project %s: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete gallery project"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery project not found"})
		return
	}

	config.DB.Where("project_id = ?", id).Delete(&models.GalleryImage{})

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "삭제되었습니다"})
}

// AddGalleryImage - 갤러리 이미지 추가 (admin)
func AddGalleryImage(c *gin.Context) {
	projectID := c.Param("id")

	var project models.GalleryProject
	if err := config.DB.Where("id = ?", projectID).First(&project).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery project not found"})
		return
	}

	var req struct {
		ImageURL  string  `json:"image_url" binding:"required"`
		Caption   *string `json:"caption"`
		SortOrder int     `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image := models.GalleryImage{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		ImageURL:  req.ImageURL,
		Caption:   req.Caption,
		SortOrder: req.SortOrder,
		CreatedAt: time.Now(),
	}

	if err := config.DB.Create(&image).Error; err != nil {
		log.Printf("failed to add gallery image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": image})
}

// DeleteGalleryImage - 갤러리 이미지 삭제 (admin)
func DeleteGalleryImage(c *gin.Context) {
	imageID := c.Param("image_id")

	result := config.DB.Where("id = ?", imageID).Delete(&models.GalleryImage{})
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
