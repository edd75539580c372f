package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"howdohome-api/models"
)

func TestWriteConsultationCSV(t *testing.T) {
	projectType := "아파트"
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)
	rows := []models.Consultation{
		{
			Name:        "김민수",
			Phone:       "010-1234-5678",
			Email:       "kim@example.com",
			ProjectType: &projectType,
			Status:      models.ConsultationStatusNew,
			CreatedAt:   created,
		},
	}

	var buf bytes.Buffer
	if err := WriteConsultationCSV(&buf, rows); err != nil {
		t.Fatalf("WriteConsultationCSV failed: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "\uFEFF") {
		t.Fatal("output must start with a UTF-8 BOM")
	}

	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(out, "\uFEFF"), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if lines[0] != "이름,연락처,이메일,상담방법,프로젝트유형,면적,예산,상태,신청일" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if lines[1] != "김민수,010-1234-5678,kim@example.com,,아파트,,,new,2026-03-14 09:30" {
		t.Fatalf("unexpected row: %s", lines[1])
	}
}

func TestWriteConsultationCSVNoRows(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteConsultationCSV(&buf, nil); err != nil {
		t.Fatalf("WriteConsultationCSV failed: %v", err)
	}
	if !strings.Contains(buf.String(), "이름") {
		t.Fatal("header must be written even without rows")
	}
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2026, 8, 29, 13, 0, 0, 0, time.UTC)
	if got := ExportFileName(now); got != "consultations_20260829.csv" {
		t.Fatalf("ExportFileName = %s", got)
	}
}
