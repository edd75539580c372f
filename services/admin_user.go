package services

import (
	"errors"
	"fmt"
	"time"

	"howdohome-api/models"

	"gorm.io/gorm"
)

// ErrAdminUserExists is returned when the email is already registered.
var ErrAdminUserExists = errors.New("admin user already exists")

// SeedAdminUser inserts an admin account. hashedPassword must already be a
// bcrypt hash. The assigned user id is filled in on the returned struct.
func SeedAdminUser(db *gorm.DB, email, hashedPassword, name, role string) (*models.AdminUser, error) {
	var existing models.AdminUser
	err := db.Where("email = ?", email).First(&existing).Error
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %s (id=%d)", ErrAdminUserExists, email, existing.UserID)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	now := time.Now()
	user := models.AdminUser{
		Email:     email,
		Password:  hashedPassword,
		Name:      name,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
