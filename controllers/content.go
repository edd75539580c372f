// controllers/content.go - 포트폴리오 / 프로세스 / FAQ / 카테고리 / 메인 섹션
package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"howdohome-api/config"
	"howdohome-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ===== PORTFOLIOS =====

// GetPortfolios - 연도별 시공 실적 (public). Grouped newest year first.
func GetPortfolios(c *gin.Context) {
	var portfolios []models.Portfolio
	if err := config.DB.Order("year DESC, sort_order ASC").Find(&portfolios).Error; err != nil {
		log.Printf("failed to fetch portfolios: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch portfolios"})
		return
	}

	byYear := make(map[int][]models.Portfolio)
	years := make([]int, 0)
	for _, p := range portfolios {
		if _, seen := byYear[p.Year]; !seen {
			years = append(years, p.Year)
		}
		byYear[p.Year] = append(byYear[p.Year], p)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    portfolios,
		"years":   years,
		"by_year": byYear,
	})
}

type PortfolioRequest struct {
	Year          int     `json:"year" binding:"required"`
	Title         string  `json:"title" binding:"required"`
	StructureType *string `json:"structure_type"`
	SortOrder     int     `json:"sort_order"`
}

// CreatePortfolio - 시공 실적 등록 (admin)
func CreatePortfolio(c *gin.Context) {
	var req PortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	portfolio := models.Portfolio{
		ID:            uuid.NewString(),
		Year:          req.Year,
		Title:         req.Title,
		StructureType: req.StructureType,
		SortOrder:     req.SortOrder,
		CreatedAt:     time.Now(),
	}

	if err := config.DB.Create(&portfolio).Error; err != nil {
		log.Printf("failed to create portfolio: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": portfolio})
}

// UpdatePortfolio - 시공 실적 수정 (admin)
func UpdatePortfolio(c *gin.Context) {
	id := c.Param("id")

	var portfolio models.Portfolio
	if err := config.DB.Where("id = ?", id).First(&portfolio).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Portfolio not found"})
		return
	}

	var req PortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Model(&portfolio).Updates(map[string]interface{}{
		"year":           req.Year,
		"title":          req.Title,
		"structure_type": req.StructureType,
		"sort_order":     req.SortOrder,
	}).Error; err != nil {
		log.Printf("failed to update portfolio %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeletePortfolio - 시공 실적 삭제 (admin)
func DeletePortfolio(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Where("id = ?", id).Delete(&models.Portfolio{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete portfolio"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Portfolio not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ===== PROCESS STEPS =====

// GetProcessSteps - 시공 프로세스 (public)
func GetProcessSteps(c *gin.Context) {
	var steps []models.ProcessStep
	if err := config.DB.Where("is_published = ?", true).
		Order("sort_order ASC").Find(&steps).Error; err != nil {
		log.Printf("failed to fetch process steps: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch process steps"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": steps})
}

// GetAllProcessSteps - 전체 프로세스 (admin)
func GetAllProcessSteps(c *gin.Context) {
	var steps []models.ProcessStep
	if err := config.DB.Order("sort_order ASC").Find(&steps).Error; err != nil {
		log.Printf("failed to fetch process steps: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch process steps"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": steps})
}

type ProcessStepRequest struct {
	StepNumber  string  `json:"step_number" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	SortOrder   int     `json:"sort_order"`
	IsPublished bool    `json:"is_published"`
}

// CreateProcessStep - 프로세스 단계 등록 (admin)
func CreateProcessStep(c *gin.Context) {
	var req ProcessStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	step := models.ProcessStep{
		ID:          uuid.NewString(),
		StepNumber:  req.StepNumber,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
		IsPublished: req.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := config.DB.Create(&step).Error; err != nil {
		log.Printf("failed to create process step: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": step})
}

// UpdateProcessStep - 프로세스 단계 수정 (admin)
func UpdateProcessStep(c *gin.Context) {
	id := c.Param("id")

	var step models.ProcessStep
	if err := config.DB.Where("id = ?", id).First(&step).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Process step not found"})
		return
	}

	var req ProcessStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Model(&step).Updates(map[string]interface{}{
		"step_number":  req.StepNumber,
		"title":        req.Title,
		"description":  req.Description,
		"image_url":    req.ImageURL,
		"sort_order":   req.SortOrder,
		"is_published": req.IsPublished,
		"updated_at":   time.Now(),
	}).Error; err != nil {
		log.Printf("failed to update process step %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteProcessStep - 프로세스 단계 삭제 (admin)
func DeleteProcessStep(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Where("id = ?", id).Delete(&models.ProcessStep{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete process step"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Process step not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ===== FAQS =====

// GetFAQs - 공개 FAQ 목록 (public)
func GetFAQs(c *gin.Context) {
	category := c.Query("category")

	query := config.DB.Model(&models.FAQ{}).Where("is_published = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var faqs []models.FAQ
	if err := query.Order("sort_order ASC").Find(&faqs).Error; err != nil {
		log.Printf("failed to fetch faqs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch faqs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": faqs})
}

// GetAllFAQs - 전체 FAQ (admin)
func GetAllFAQs(c *gin.Context) {
	var faqs []models.FAQ
	if err := config.DB.Order("category ASC, sort_order ASC").Find(&faqs).Error; err != nil {
		log.Printf("failed to fetch faqs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch faqs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": faqs})
}

type FAQRequest struct {
	Question    string `json:"question" binding:"required"`
	Answer      string `json:"answer" binding:"required"`
	Category    string `json:"category" binding:"required"`
	SortOrder   int    `json:"sort_order"`
	IsPublished bool   `json:"is_published"`
}

// CreateFAQ - FAQ 등록 (admin)
func CreateFAQ(c *gin.Context) {
	var req FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	faq := models.FAQ{
		ID:          uuid.NewString(),
		Question:    req.Question,
		Answer:      req.Answer,
		Category:    req.Category,
		SortOrder:   req.SortOrder,
		IsPublished: req.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := config.DB.Create(&faq).Error; err != nil {
		log.Printf("failed to create faq: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": faq})
}

// UpdateFAQ - FAQ 수정 (admin)
func UpdateFAQ(c *gin.Context) {
	id := c.Param("id")

	var faq models.FAQ
	if err := config.DB.Where("id = ?", id).First(&faq).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "FAQ not found"})
		return
	}

	var req FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Model(&faq).Updates(map[string]interface{}{
		"question":     req.Question,
		"answer":       req.Answer,
		"category":     req.Category,
		"sort_order":   req.SortOrder,
		"is_published": req.IsPublished,
		"updated_at":   time.Now(),
	}).Error; err != nil {
		log.Printf("failed to update faq %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteFAQ - FAQ 삭제 (admin)
func DeleteFAQ(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Where("id = ?", id).Delete(&models.FAQ{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete faq"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "FAQ not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ===== CATEGORIES =====

// GetCategories - 카테고리 목록. type 쿼리로 news/journal/gallery 구분.
func GetCategories(c *gin.Context) {
	categoryType := c.Query("type")

	query := config.DB.Model(&models.Category{}).Where("is_active = ?", true)
	if categoryType != "" {
		query = query.Where("type = ?", categoryType)
	}

	var categories []models.Category
	if err := query.Order("sort_order ASC").Find(&categories).Error; err != nil {
		log.Printf("failed to fetch categories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
}

type CategoryRequest struct {
	Type        string  `json:"type" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	SortOrder   int     `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}

// CreateCategory - 카테고리 등록 (admin)
func CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	category := models.Category{
		ID:          uuid.NewString(),
		Type:        req.Type,
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		SortOrder:   req.SortOrder,
		IsActive:    isActive,
	}

	if err := config.DB.Create(&category).Error; err != nil {
		log.Printf("failed to create category: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": category})
}

// DeleteCategory - 카테고리 삭제 (admin)
func DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	result := config.DB.Where("id = ?", id).Delete(&models.Category{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ===== MAIN PAGE SECTIONS =====

// GetMainPageSections - 메인 페이지 섹션 (public)
func GetMainPageSections(c *gin.Context) {
	var sections []models.MainPageSection
	if err := config.DB.Where("is_visible = ?", true).
		Order("sort_order ASC").Find(&sections).Error; err != nil {
		log.Printf("failed to fetch main page sections: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sections"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": sections})
}

// GetAllMainPageSections - 전체 메인 섹션 (admin)
func GetAllMainPageSections(c *gin.Context) {
	var sections []models.MainPageSection
	if err := config.DB.Order("sort_order ASC").Find(&sections).Error; err != nil {
		log.Printf("failed to fetch main page sections: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sections"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": sections})
}

// UpdateMainPageSection - 섹션 내용 수정 (admin). Sections are fixed by key;
// only their content changes.
func UpdateMainPageSection(c *gin.Context) {
	sectionKey := c.Param("key")

	var section models.MainPageSection
	if err := config.DB.Where("section_key = ?", sectionKey).First(&section).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	var req struct {
		Title       *string         `json:"title"`
		Subtitle    *string         `json:"subtitle"`
		Description *string         `json:"description"`
		Content     json.RawMessage `json:"content"`
		ImageURL    *string         `json:"image_url"`
		IsVisible   *bool           `json:"is_visible"`
		SortOrder   *int            `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Subtitle != nil {
		updates["subtitle"] = *req.Subtitle
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(req.Content) > 0 {
		updates["content"] = string(req.Content)
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.IsVisible != nil {
		updates["is_visible"] = *req.IsVisible
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if err := config.DB.Model(&section).Updates(updates).Error; err != nil {
		log.Printf("failed to update section %s: %v", sectionKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "저장 중 오류가 발생했습니다"})
		return
	}

	config.DB.Where("section_key = ?", sectionKey).First(&section)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": section})
}
