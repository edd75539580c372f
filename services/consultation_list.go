package services

import (
	"howdohome-api/models"

	"gorm.io/gorm"
)

// DefaultPageSize matches the admin consultation table.
const DefaultPageSize = 10

// ConsultationFilters are the admin list filters. Zero values mean "no filter".
type ConsultationFilters struct {
	Search      string `json:"search"`
	Status      string `json:"status"`
	ProjectType string `json:"project_type"`
}

// ConsultationListParams is one immutable list query: filters plus window.
type ConsultationListParams struct {
	Filters  ConsultationFilters
	Page     int
	PageSize int
}

// Normalize clamps the window to sane values.
func (p ConsultationListParams) Normalize() ConsultationListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 || p.PageSize > 100 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Offset returns the row offset of the first row on the page.
func (p ConsultationListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// TotalPages computes the page count offered for a total row count.
func TotalPages(totalCount int64, pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return int((totalCount + int64(pageSize) - 1) / int64(pageSize))
}

// ConsultationPage is one page of results plus the total matching count.
type ConsultationPage struct {
	Rows       []models.Consultation `json:"rows"`
	TotalCount int64                 `json:"total_count"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalPages int                   `json:"total_pages"`
}

// applyConsultationFilters translates the filter set into one query: the
// search term substring-matches name, phone and email (OR-combined,
// case-insensitive by collation), status and project type match exactly.
func applyConsultationFilters(query *gorm.DB, f ConsultationFilters) *gorm.DB {
	if f.Search != "" {
		searchTerm := "%" + f.Search + "%"
		query = query.Where(
			"name LIKE ? OR phone LIKE ? OR email LIKE ?",
			searchTerm, searchTerm, searchTerm,
		)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.ProjectType != "" {
		query = query.Where("project_type = ?", f.ProjectType)
	}
	return query
}

// List runs one filtered, newest-first, windowed read plus the matching count.
func (s *ConsultationService) List(params ConsultationListParams) (*ConsultationPage, error) {
	params = params.Normalize()

	query := applyConsultationFilters(s.db.Model(&models.Consultation{}), params.Filters)

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, err
	}

	rows := make([]models.Consultation, 0, params.PageSize)
	if err := query.Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.PageSize).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return &ConsultationPage{
		Rows:       rows,
		TotalCount: totalCount,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: TotalPages(totalCount, params.PageSize),
	}, nil
}

// StatusCounts returns how many consultations sit in each status.
func (s *ConsultationService) StatusCounts() (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	if err := s.db.Model(&models.Consultation{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(models.ConsultationStatuses))
	for _, status := range models.ConsultationStatuses {
		counts[status] = 0
	}
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
