package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"howdohome-api/models"
)

var consultationCSVHeader = []string{
	"이름", "연락처", "이메일", "상담방법", "프로젝트유형", "면적", "예산", "상태", "신청일",
}

// WriteConsultationCSV writes the rows as UTF-8 CSV with a BOM so Excel opens
// the Korean headers correctly.
func WriteConsultationCSV(w io.Writer, rows []models.Consultation) error {
	if _, err := w.Write([]byte("\uFEFF")); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(consultationCSVHeader); err != nil {
		return err
	}
	for _, c := range rows {
		record := []string{
			c.Name,
			c.Phone,
			c.Email,
			derefOr(c.ConsultationType, ""),
			derefOr(c.ProjectType, ""),
			derefOr(c.Area, ""),
			derefOr(c.Budget, ""),
			c.Status,
			c.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportFileName returns the attachment name for an export taken now.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("consultations_%s.csv", now.Format("20060102"))
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
