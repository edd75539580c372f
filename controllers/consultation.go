// controllers/consultation.go - public consultation form
package controllers

import (
	"fmt"
	"log"
	"net/http"

	"howdohome-api/config"
	"howdohome-api/models"
	"howdohome-api/monitor"
	"howdohome-api/services"
	"howdohome-api/utils"

	"github.com/gin-gonic/gin"
)

type ConsultationCreateRequest struct {
	Name             string  `json:"name" binding:"required"`
	Phone            string  `json:"phone" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	ConsultationType *string `json:"consultation_type"`
	ProjectType      *string `json:"project_type"`
	Area             *string `json:"area"`
	Budget           *string `json:"budget"`
	PreferredDate    *string `json:"preferred_date"`
	PreferredTime    *string `json:"preferred_time"`
	Message          *string `json:"message"`
}

// CreateConsultation - 상담 신청 접수 (public)
func CreateConsultation(c *gin.Context) {
	var req ConsultationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.ValidatePhone(req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "연락처 형식이 올바르지 않습니다"})
		return
	}

	ip := c.ClientIP()
	userAgent := c.GetHeader("User-Agent")

	consultation := models.Consultation{
		Name:             utils.SanitizeInput(req.Name),
		Phone:            utils.SanitizeInput(req.Phone),
		Email:            utils.SanitizeInput(req.Email),
		ConsultationType: req.ConsultationType,
		ProjectType:      req.ProjectType,
		Area:             req.Area,
		Budget:           req.Budget,
		PreferredDate:    req.PreferredDate,
		PreferredTime:    req.PreferredTime,
		Message:          req.Message,
	}
	if ip != "" {
		consultation.IPAddress = &ip
	}
	if userAgent != "" {
		consultation.UserAgent = &userAgent
	}

	svc := services.NewConsultationService(config.DB)
	if err := svc.Create(&consultation); err != nil {
		log.Printf("failed to create consultation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
		return
	}

	monitor.ConsultationSubmissions.Inc()

	// Notification mail is best effort; the submission already succeeded.
	go notifyNewConsultation(consultation)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "상담 신청이 접수되었습니다",
		"data":    consultation,
	})
}

func notifyNewConsultation(consultation models.Consultation) {
	to := config.NotifyEmail()
	if to == "" {
		return
	}

	projectType := "-"
	if consultation.ProjectType != nil {
		projectType = *consultation.ProjectType
	}
	body := fmt.Sprintf(
		"<h3>새 상담 신청</h3><p>이름: %s<br>연락처: %s<br>이메일: %s<br>프로젝트 유형: %s</p>",
		consultation.Name, consultation.Phone, consultation.Email, projectType,
	)

	if err := config.SendMail([]string{to}, "[하우두홈] 새 상담 신청", body); err != nil {
		log.Printf("failed to send consultation notification: %v", err)
	}
}
