package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"
)

var adminUserColumns = []string{
	"user_id", "email", "name", "password", "role",
	"last_login", "created_at", "updated_at", "deleted_at",
}

func TestSeedAdminUserCreates(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `admin_users` WHERE email = "),
			args:    []driver.Value{"admin@howdohome.co.kr"},
			columns: adminUserColumns,
			rows:    [][]driver.Value{},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `admin_users`"),
			anyArgs: true, // carries timestamps
			result:  scriptedResult{lastInsertID: 7, rowsAffected: 1},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	user, err := SeedAdminUser(db, "admin@howdohome.co.kr", "$2a$10$fakehash", "관리자", "admin")
	if err != nil {
		t.Fatalf("SeedAdminUser failed: %v", err)
	}
	if user.UserID != 7 {
		t.Fatalf("user id = %d, want the assigned insert id 7", user.UserID)
	}
	if user.Email != "admin@howdohome.co.kr" || user.Role != "admin" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unexpected remaining steps: %v", err)
	}
}

func TestSeedAdminUserRejectsDuplicateEmail(t *testing.T) {
	now := time.Now()
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `admin_users` WHERE email = "),
			args:    []driver.Value{"admin@howdohome.co.kr"},
			columns: adminUserColumns,
			rows: [][]driver.Value{{
				int64(3), "admin@howdohome.co.kr", "관리자", "$2a$10$fakehash", "admin",
				nil, now, now, nil,
			}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	if _, err := SeedAdminUser(db, "admin@howdohome.co.kr", "$2a$10$other", "관리자", "admin"); !errors.Is(err, ErrAdminUserExists) {
		t.Fatalf("expected ErrAdminUserExists, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unexpected remaining steps: %v", err)
	}
}
