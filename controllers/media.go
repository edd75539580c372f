// controllers/media.go - 미디어 라이브러리 (admin)
package controllers

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"howdohome-api/config"
	"howdohome-api/models"
	"howdohome-api/monitor"
	"howdohome-api/storage"
	"howdohome-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MediaStore is the object storage backend, set once at startup.
var MediaStore storage.Store

var allowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
}

const maxMediaSize = 10 * 1024 * 1024 // 10MB

// GetMedia - 미디어 목록. folder 쿼리로 폴더별 조회.
func GetMedia(c *gin.Context) {
	folder := c.Query("folder")

	query := config.DB.Model(&models.Media{})
	if folder != "" {
		query = query.Where("folder = ?", folder)
	}

	var files []models.Media
	if err := query.Order("created_at DESC").Find(&files).Error; err != nil {
		log.Printf("failed to fetch media: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch media"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": files, "count": len(files)})
}

// ListMediaStorage lists raw objects under a folder straight from storage.
func ListMediaStorage(c *gin.Context) {
	folder := c.DefaultQuery("folder", "")

	entries, err := MediaStore.List(c.Request.Context(), filepath.ToSlash(filepath.Join("media", folder)))
	if err != nil {
		log.Printf("failed to list storage: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list storage"})
		return
	}

	type storageEntry struct {
		storage.Entry
		PublicURL string `json:"public_url"`
	}
	result := make([]storageEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, storageEntry{Entry: e, PublicURL: MediaStore.PublicURL(e.Path)})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result, "count": len(result)})
}

// UploadMedia stores one file and records it in the media table.
func UploadMedia(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedMediaTypes[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}
	if header.Size > maxMediaSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds 10MB limit"})
		return
	}

	folder := utils.DefaultString(c.PostForm("folder"), "uploads")
	altText := c.PostForm("alt_text")

	safeName := utils.SanitizeFilename(header.Filename)
	key := fmt.Sprintf("media/%s/%s_%s", folder, uuid.NewString()[:8], safeName)

	if err := MediaStore.Upload(c.Request.Context(), key, file, header.Size, contentType); err != nil {
		log.Printf("failed to upload media: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	var uploadedBy *string
	if email, exists := c.Get("email"); exists {
		e := email.(string)
		uploadedBy = &e
	}

	media := models.Media{
		ID:         uuid.NewString(),
		FileName:   header.Filename,
		FileURL:    MediaStore.PublicURL(key),
		FileType:   &contentType,
		FileSize:   &header.Size,
		Folder:     folder,
		UploadedBy: uploadedBy,
		CreatedAt:  time.Now(),
	}
	if altText != "" {
		media.AltText = &altText
	}

	if err := config.DB.Create(&media).Error; err != nil {
		// Remove the stored object if the database insert fails.
		if rmErr := MediaStore.Remove(c.Request.Context(), []string{key}); rmErr != nil {
			log.Printf("failed to clean up %s after insert failure: %v", key, rmErr)
		}
		log.Printf("failed to record media: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
		return
	}

	monitor.MediaUploads.Inc()

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": media})
}

// DeleteMedia removes the file from storage and its row from the table.
func DeleteMedia(c *gin.Context) {
	id := c.Param("id")

	var media models.Media
	if err := config.DB.Where("id = ?", id).First(&media).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
		return
	}

	key := storageKeyFromURL(media.FileURL)
	if key != "" {
		if err := MediaStore.Remove(c.Request.Context(), []string{key}); err != nil {
			log.Printf("failed to remove %s from storage: %v", key, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
			return
		}
	}

	if err := config.DB.Delete(&media).Error; err != nil {
		log.Printf("failed to delete media row %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete media"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "삭제되었습니다"})
}

// storageKeyFromURL recovers the storage key from a stored public URL.
func storageKeyFromURL(fileURL string) string {
	i := strings.Index(fileURL, "/media/")
	if i < 0 {
		return ""
	}
	return fileURL[i+1:]
}
