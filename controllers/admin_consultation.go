// controllers/admin_consultation.go - 상담 신청 관리 (admin)
package controllers

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"howdohome-api/config"
	"howdohome-api/monitor"
	"howdohome-api/services"

	"github.com/gin-gonic/gin"
)

// GetConsultations returns the paginated, filtered admin list.
func GetConsultations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(services.DefaultPageSize)))

	params := services.ConsultationListParams{
		Filters: services.ConsultationFilters{
			Search:      c.Query("search"),
			Status:      c.Query("status"),
			ProjectType: c.Query("project_type"),
		},
		Page:     page,
		PageSize: pageSize,
	}

	svc := services.NewConsultationService(config.DB)
	result, err := svc.List(params)
	if err != nil {
		log.Printf("failed to list consultations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch consultations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"consultations": result.Rows,
		"pagination": gin.H{
			"current_page": result.Page,
			"per_page":     result.PageSize,
			"total_count":  result.TotalCount,
			"total_pages":  result.TotalPages,
			"has_next":     result.Page < result.TotalPages,
			"has_prev":     result.Page > 1,
		},
		"filters": params.Filters,
	})
}

// GetConsultation returns one consultation with its status trail.
func GetConsultation(c *gin.Context) {
	id := c.Param("id")
	svc := services.NewConsultationService(config.DB)

	consultation, err := svc.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrConsultationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Consultation not found"})
			return
		}
		log.Printf("failed to load consultation %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch consultation"})
		return
	}

	logs, err := svc.Logs(id)
	if err != nil {
		log.Printf("failed to load consultation logs %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch consultation logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    consultation,
		"logs":    logs,
	})
}

type ConsultationUpdateRequest struct {
	// PreviousStatus is the status the admin screen last read. The log entry
	// records the transition away from it.
	PreviousStatus string  `json:"previous_status" binding:"required"`
	Status         *string `json:"status"`
	AdminMemo      *string `json:"admin_memo"`
}

// UpdateConsultation saves the edit buffer from the detail screen and returns
// the refreshed row plus its trail.
func UpdateConsultation(c *gin.Context) {
	id := c.Param("id")

	var req ConsultationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var actor *string
	if email, exists := c.Get("email"); exists {
		e := email.(string)
		actor = &e
	}

	svc := services.NewConsultationService(config.DB)
	logged, err := svc.ApplyEdit(id, req.PreviousStatus, services.ConsultationEdit{
		Status:    req.Status,
		AdminMemo: req.AdminMemo,
	}, actor)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrConsultationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Consultation not found"})
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		default:
			log.Printf("failed to save consultation %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
		}
		return
	}

	if logged && req.Status != nil {
		monitor.StatusTransitions.WithLabelValues(req.PreviousStatus, *req.Status).Inc()
	}

	// Re-read so the screen shows persisted state and the new trail entry.
	consultation, err := svc.Get(id)
	if err != nil {
		log.Printf("failed to reload consultation %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch consultation"})
		return
	}
	logs, err := svc.Logs(id)
	if err != nil {
		log.Printf("failed to reload consultation logs %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch consultation logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "저장되었습니다",
		"data":        consultation,
		"logs":        logs,
		"log_written": logged,
	})
}

// DeleteConsultation removes the row. The status trail stays.
func DeleteConsultation(c *gin.Context) {
	id := c.Param("id")
	svc := services.NewConsultationService(config.DB)

	if err := svc.Delete(id); err != nil {
		if errors.Is(err, services.ErrConsultationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Consultation not found"})
			return
		}
		log.Printf("failed to delete consultation %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete consultation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "삭제되었습니다"})
}

// ExportConsultations streams the current filtered list as CSV. The window is
// capped at 100 rows by Normalize; only the first page is exported.
func ExportConsultations(c *gin.Context) {
	params := services.ConsultationListParams{
		Filters: services.ConsultationFilters{
			Search:      c.Query("search"),
			Status:      c.Query("status"),
			ProjectType: c.Query("project_type"),
		},
		Page:     1,
		PageSize: 100,
	}

	svc := services.NewConsultationService(config.DB)
	result, err := svc.List(params)
	if err != nil {
		log.Printf("failed to export consultations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export consultations"})
		return
	}

	var buf bytes.Buffer
	if err := services.WriteConsultationCSV(&buf, result.Rows); err != nil {
		log.Printf("failed to write consultation csv: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export consultations"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+services.ExportFileName(time.Now()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
