package models

import "time"

// Consultation statuses. The set is fixed; anything else is rejected on update.
const (
	ConsultationStatusNew        = "new"
	ConsultationStatusInProgress = "in_progress"
	ConsultationStatusCompleted  = "completed"
	ConsultationStatusCancelled  = "cancelled"
)

// ConsultationStatuses lists every valid status value.
var ConsultationStatuses = []string{
	ConsultationStatusNew,
	ConsultationStatusInProgress,
	ConsultationStatusCompleted,
	ConsultationStatusCancelled,
}

// IsValidConsultationStatus reports whether s is one of the fixed status values.
func IsValidConsultationStatus(s string) bool {
	for _, v := range ConsultationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Consultation represents the consultations table (상담 신청).
type Consultation struct {
	ID               string    `gorm:"primaryKey;column:id" json:"id"`
	Name             string    `gorm:"column:name" json:"name"`
	Phone            string    `gorm:"column:phone" json:"phone"`
	Email            string    `gorm:"column:email" json:"email"`
	ConsultationType *string   `gorm:"column:consultation_type" json:"consultation_type"`
	ProjectType      *string   `gorm:"column:project_type" json:"project_type"`
	Area             *string   `gorm:"column:area" json:"area"`
	Budget           *string   `gorm:"column:budget" json:"budget"`
	PreferredDate    *string   `gorm:"column:preferred_date" json:"preferred_date"`
	PreferredTime    *string   `gorm:"column:preferred_time" json:"preferred_time"`
	Message          *string   `gorm:"column:message" json:"message"`
	Status           string    `gorm:"column:status" json:"status"`
	AdminMemo        *string   `gorm:"column:admin_memo" json:"admin_memo"`
	IPAddress        *string   `gorm:"column:ip_address" json:"ip_address"`
	UserAgent        *string   `gorm:"column:user_agent" json:"user_agent"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Consultation) TableName() string {
	return "consultations"
}

// ConsultationLog is one immutable status-transition entry for a consultation.
// Rows are append-only: written once when a status change is saved, never
// updated or deleted afterwards, and they survive deletion of the parent row.
type ConsultationLog struct {
	ID             string    `gorm:"primaryKey;column:id" json:"id"`
	ConsultationID string    `gorm:"column:consultation_id" json:"consultation_id"`
	PreviousStatus *string   `gorm:"column:previous_status" json:"previous_status"`
	NewStatus      *string   `gorm:"column:new_status" json:"new_status"`
	Memo           *string   `gorm:"column:memo" json:"memo"`
	AdminEmail     *string   `gorm:"column:admin_email" json:"admin_email"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ConsultationLog) TableName() string {
	return "consultation_logs"
}
