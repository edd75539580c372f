package services

import (
	"errors"
	"fmt"
	"time"

	"howdohome-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrConsultationNotFound is returned when the consultation id does not exist.
	ErrConsultationNotFound = errors.New("consultation not found")
	// ErrInvalidStatus is returned when an edit carries a status outside the fixed set.
	ErrInvalidStatus = errors.New("invalid consultation status")
)

// ConsultationService owns consultation reads, edits and the status log trail.
type ConsultationService struct {
	db *gorm.DB
}

func NewConsultationService(db *gorm.DB) *ConsultationService {
	return &ConsultationService{db: db}
}

// ConsultationEdit is the partial edit buffer saved from the admin detail
// screen. Nil fields are left untouched.
type ConsultationEdit struct {
	Status    *string
	AdminMemo *string
}

// ApplyEdit persists the edit onto the consultation row and, only when the
// edit moves the status away from prevStatus, appends one consultation_logs
// entry recording the transition and the actor (nil for system changes).
//
// prevStatus is the status the caller last read. The row is not re-read and
// the two writes are not wrapped in a transaction, so two concurrent editors
// can both log a transition from the same stale status. If the log insert
// fails after the row update succeeded, the update is not rolled back and the
// error reports the missing log entry.
//
// Returns whether a log entry was written.
func (s *ConsultationService) ApplyEdit(id string, prevStatus string, edit ConsultationEdit, actor *string) (bool, error) {
	if edit.Status != nil && !models.IsValidConsultationStatus(*edit.Status) {
		return false, ErrInvalidStatus
	}

	var existing models.Consultation
	if err := s.db.Where("id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrConsultationNotFound
		}
		return false, fmt.Errorf("failed to load consultation: %w", err)
	}

	updates := map[string]interface{}{}
	if edit.Status != nil {
		updates["status"] = *edit.Status
	}
	if edit.AdminMemo != nil {
		updates["admin_memo"] = *edit.AdminMemo
	}
	if len(updates) == 0 {
		return false, nil
	}
	updates["updated_at"] = time.Now()

	if err := s.db.Model(&models.Consultation{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return false, fmt.Errorf("failed to update consultation: %w", err)
	}

	if edit.Status == nil || *edit.Status == prevStatus {
		return false, nil
	}

	prev := prevStatus
	logEntry := models.ConsultationLog{
		ID:             uuid.NewString(),
		ConsultationID: id,
		PreviousStatus: &prev,
		NewStatus:      edit.Status,
		AdminEmail:     actor,
		CreatedAt:      time.Now(),
	}
	if err := s.db.Create(&logEntry).Error; err != nil {
		// Row already updated; the trail is missing this transition.
		return false, fmt.Errorf("consultation updated but status log write failed: %w", err)
	}

	return true, nil
}

// Get loads one consultation by id.
func (s *ConsultationService) Get(id string) (*models.Consultation, error) {
	var consultation models.Consultation
	if err := s.db.Where("id = ?", id).First(&consultation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsultationNotFound
		}
		return nil, err
	}
	return &consultation, nil
}

// Logs returns the consultation's status trail, newest first. An empty slice
// (not nil) is returned when there are no entries yet.
func (s *ConsultationService) Logs(id string) ([]models.ConsultationLog, error) {
	logs := make([]models.ConsultationLog, 0)
	if err := s.db.Where("consultation_id = ?", id).
		Order("created_at DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// Create inserts a new consultation submitted from the public form. Status
// always starts at new; id and timestamps are assigned here.
func (s *ConsultationService) Create(consultation *models.Consultation) error {
	now := time.Now()
	consultation.ID = uuid.NewString()
	consultation.Status = models.ConsultationStatusNew
	consultation.CreatedAt = now
	consultation.UpdatedAt = now
	return s.db.Create(consultation).Error
}

// Delete removes the consultation row. Its consultation_logs entries are kept:
// the trail is append-only and outlives the record.
func (s *ConsultationService) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.Consultation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConsultationNotFound
	}
	return nil
}
