package models

import "time"

// Admin roles. There is only the one privileged role today; RoleViewer exists
// for read-only dashboard accounts.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// AdminUser represents the admin_users table. Password is a bcrypt hash and is
// never serialized.
type AdminUser struct {
	UserID    int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	Email     string     `gorm:"column:email" json:"email"`
	Name      string     `gorm:"column:name" json:"name"`
	Password  string     `gorm:"column:password" json:"-"`
	Role      string     `gorm:"column:role" json:"role"`
	LastLogin *time.Time `gorm:"column:last_login" json:"last_login"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
