// controllers/dashboard.go - 관리자 대시보드
package controllers

import (
	"log"
	"net/http"
	"time"

	"howdohome-api/config"
	"howdohome-api/models"
	"howdohome-api/services"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns the admin landing numbers: consultation totals by
// status, content counts and the most recent consultations.
func GetDashboardStats(c *gin.Context) {
	svc := services.NewConsultationService(config.DB)

	statusCounts, err := svc.StatusCounts()
	if err != nil {
		log.Printf("failed to load status counts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	var totalConsultations int64
	for _, count := range statusCounts {
		totalConsultations += count
	}

	var totalNews, totalJournals, totalGalleryProjects int64
	config.DB.Model(&models.News{}).Count(&totalNews)
	config.DB.Model(&models.Journal{}).Count(&totalJournals)
	config.DB.Model(&models.GalleryProject{}).Count(&totalGalleryProjects)

	recent, err := svc.List(services.ConsultationListParams{Page: 1, PageSize: 5})
	if err != nil {
		log.Printf("failed to load recent consultations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"consultations": gin.H{
				"total":       totalConsultations,
				"new":         statusCounts[models.ConsultationStatusNew],
				"in_progress": statusCounts[models.ConsultationStatusInProgress],
				"completed":   statusCounts[models.ConsultationStatusCompleted],
				"cancelled":   statusCounts[models.ConsultationStatusCancelled],
			},
			"news":             totalNews,
			"journals":         totalJournals,
			"gallery_projects": totalGalleryProjects,
			"current_date":     time.Now().Format("2006-01-02"),
		},
		"recent_consultations": recent.Rows,
	})
}
