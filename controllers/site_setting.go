// controllers/site_setting.go - 사이트 설정
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

// GetSiteSettings returns all settings as a key/value map (public).
func GetSiteSettings(c *gin.Context) {
	var settings []models.SiteSetting
	if err := config.DB.Find(&settings).Error; err != nil {
		log.Printf("failed to fetch site settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}

	values := make(map[string]*string, len(settings))
	for _, s := range settings {
		values[s.Key] = s.Value
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": values})
}

// UpsertSiteSettings saves a batch of key/value pairs (admin). Existing keys
// are updated, new keys inserted.
func UpsertSiteSettings(c *gin.Context) {
	var req map[string]*string
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No settings provided"})
		return
	}

	now := time.Now()
	for key, value := range req {
		var setting models.SiteSetting
		err := config.DB.Where("`key` = ?", key).First(&setting).Error
		switch {
		case err == nil:
			if err := config.DB.Model(&setting).Updates(map[string]interface{}{
				"value":      value,
				"updated_at": now,
			}).Error; err != nil {
				log.Printf("failed to update setting %s: %v", key, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
				return
			}
		case err == gorm.ErrRecordNotFound:
			setting = models.SiteSetting{
				ID:        uuid.NewString(),
				Key:       key,
				Value:     value,
				UpdatedAt: now,
			}
			if err := config.DB.Create(&setting).Error; err != nil {
				log.Printf("failed to insert setting %s: %v", key, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
				return
			}
		default:
			log.Printf("failed to load setting %s: %v", key, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "저장되었습니다"})
}
