package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"strings"
	"testing"
)

func strptr(s string) *string { return &s }

func TestApplyEditStatusChangeWritesOneLog(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `consultations` WHERE id = "),
			args:    []driver.Value{"c1"},
			columns: consultationColumns,
			rows:    [][]driver.Value{consultationRow("c1", "김민수", "010-1234-5678", "kim@example.com", "new")},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `consultations` SET"),
			anyArgs: true, // carries updated_at
			result:  scriptedResult{rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `consultation_logs`"),
			anyArgs: true, // carries a generated id and created_at
			result:  scriptedResult{rowsAffected: 1},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewConsultationService(db)
	logged, err := svc.ApplyEdit("c1", "new", ConsultationEdit{
		Status:    strptr("in_progress"),
		AdminMemo: strptr("통화 완료"),
	}, strptr("admin@howdohome.co.kr"))
	if err != nil {
		t.Fatalf("ApplyEdit failed: %v", err)
	}
	if !logged {
		t.Fatal("expected a log entry to be written")
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unexpected remaining steps: %v", err)
	}
}

func TestApplyEditLogRecordsTransitionAndActor(t *testing.T) {
	firstInsert := &queryStep{
		kind:    kindExec,
		pattern: regexp.MustCompile("INSERT INTO `consultation_logs`"),
		anyArgs: true,
		result:  scriptedResult{rowsAffected: 1},
	}
	secondInsert := &queryStep{
		kind:    kindExec,
		pattern: regexp.MustCompile("INSERT INTO `consultation_logs`"),
		anyArgs: true,
		result:  scriptedResult{rowsAffected: 1},
	}
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `consultations` WHERE id = "),
			args:    []driver.Value{"c1"},
			columns: consultationColumns,
			rows:    [][]driver.Value{consultationRow("c1", "김민수", "010-1234-5678", "kim@example.com", "new")},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `consultations` SET"),
			anyArgs: true,
			result:  scriptedResult{rowsAffected: 1},
		},
		firstInsert,
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `consultations` WHERE id = "),
			args:    []driver.Value{"c1"},
			columns: consultationColumns,
			rows:    [][]driver.Value{consultationRow("c1", "김민수", "010-1234-5678", "kim@example.com", "in_progress")},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `consultations` SET"),
			anyArgs: true,
			result:  scriptedResult{rowsAffected: 1},
		},
		secondInsert,
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewConsultationService(db)
	if _, err := svc.ApplyEdit("c1", "new", ConsultationEdit{Status: strptr("in_progress")}, strptr("admin@howdohome.co.kr")); err != nil {
		t.Fatalf("first ApplyEdit failed: %v", err)
	}
	if _, err := svc.ApplyEdit("c1", "in_progress", ConsultationEdit{Status: strptr("completed")}, strptr("admin@howdohome.co.kr")); err != nil {
		t.Fatalf("second ApplyEdit failed: %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unexpected remaining steps: %v", err)
	}

	// Insert columns follow the struct: id, consultation_id, previous_status,
	// new_status, memo, admin_email, created_at.
	checkLog := func(seen []driver.Value, prev, next string) {
		t.Helper()
		if len(seen) != 7 {
			t.Fatalf("log insert carried %d args, want 7", len(seen))
		}
		if seen[1] != "c1" {
			t.Errorf("consultation_id = %v, want c1", seen[1])
		}
		if seen[2] != prev {
			t.Errorf("previous_status = %v, want %s", seen[2], prev)
		}
		if seen[3] != next {
			t.Errorf("new_status = %v, want %s", seen[3], next)
		}
		if seen[5] != "admin@howdohome.co.kr" {
			t.Errorf("admin_email = %v", seen[5])
		}
	}
	checkLog(firstInsert.seen, "new", "in_progress")
	checkLog(secondInsert.seen, "in_progress", "completed")

	// Chained edits: each entry's previous_status matches the prior new_status.
	if firstInsert.seen[3] != secondInsert.seen[2] {
		t.Error("log entries do not chain")
	}
}

func TestApplyEditMemoOnlyWritesNoLog(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `consultations` WHERE id = "),
			args:    []driver.Value{"c1"},
			columns: consultationColumns,
			rows:    [][]driver.Value{consultationRow("c1", "김민수", "010-1234-5678", "kim@example.com", "in_progress")},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `consultations` SET"),
			anyArgs: true,
			result:  scriptedResult{rowsAffected: 1},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewConsultationService(db)
	logged, err := svc.ApplyEdit("c1", "in_progress", ConsultationEdit{
		AdminMemo: strptr("견적 발송"),
	}, strptr("admin@howdohome.co.kr"))
	if err != nil {
		t.Fatalf("ApplyEdit failed: %v", err)
	}
	if logged {
		t.Fatal("memo-only edit must not write a log entry")
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unexpected remaining steps: %v", err)
	}
}

func TestApplyEditSameStatusWritesNoLog(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `consultations` WHERE id = "),
			args:    []driver.Value{"c1"},
			columns: consultationColumns,
			rows:    [][]driver.Value{consultationRow("c1", "김민수", "010-1234-5678", "kim@example.com", "completed")},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `consultations` SET"),
			anyArgs: true,
			result:  scriptedResult{rowsAffected: 1},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewConsultationService(db)
	logged, err := svc.ApplyEdit("c1", "completed", ConsultationEdit{
		Status: strptr("completed"),
	}, nil)
	if err != nil {
		t.Fatalf("ApplyEdit failed: %v", err)
	}
	if logged {
		t.Fatal("saving an unchanged status must not write a log entry")
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unexpected remaining steps: %v", err)
	}
}

func TestApplyEditEmptyEditIsNoop(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `consultations` WHERE id = "),
			args:    []driver.Value{"c1"},
			columns: consultationColumns,
			rows:    [][]driver.Value{consultationRow("c1", "김민수", "010-1234-5678", "kim@example.com", "new")},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewConsultationService(db)
	logged, err := svc.ApplyEdit("c1", "new", ConsultationEdit{}, nil)
	if err != nil {
		t.Fatalf("ApplyEdit failed: %v", err)
	}
	if logged {
		t.Fatal("empty edit must not write a log entry")
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unexpected remaining steps: %v", err)
	}
}

func TestApplyEditInvalidStatus(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewConsultationService(db)
	if _, err := svc.ApplyEdit("c1", "new", ConsultationEdit{Status: strptr("done")}, nil); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unexpected remaining steps: %v", err)
	}
}

func TestApplyEditUnknownConsultation(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `consultations` WHERE id = "),
			args:    []driver.Value{"missing"},
			columns: consultationColumns,
			rows:    [][]driver.Value{},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewConsultationService(db)
	if _, err := svc.ApplyEdit("missing", "new", ConsultationEdit{Status: strptr("cancelled")}, nil); !errors.Is(err, ErrConsultationNotFound) {
		t.Fatalf("expected ErrConsultationNotFound, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unexpected remaining steps: %v", err)
	}
}

func TestApplyEditLogWriteFailureSurfaces(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `consultations` WHERE id = "),
			args:    []driver.Value{"c1"},
			columns: consultationColumns,
			rows:    [][]driver.Value{consultationRow("c1", "김민수", "010-1234-5678", "kim@example.com", "new")},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `consultations` SET"),
			anyArgs: true,
			result:  scriptedResult{rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `consultation_logs`"),
			anyArgs: true,
			err:     errors.New("disk full"),
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewConsultationService(db)
	logged, err := svc.ApplyEdit("c1", "new", ConsultationEdit{Status: strptr("in_progress")}, nil)
	if err == nil {
		t.Fatal("expected an error when the log insert fails")
	}
	if !strings.Contains(err.Error(), "status log write failed") {
		t.Fatalf("error should report the missing log entry, got %v", err)
	}
	if logged {
		t.Fatal("failed log insert must not report logged=true")
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unexpected remaining steps: %v", err)
	}
}

func TestListAppliesFiltersAndWindow(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT count\\(\\*\\) FROM `consultations` WHERE \\(name LIKE .* OR phone LIKE .* OR email LIKE .*\\) AND status = "),
			args:    []driver.Value{"%김%", "%김%", "%김%", "new"},
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(23)}},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `consultations` WHERE .* ORDER BY created_at DESC LIMIT 10 OFFSET 10"),
			args:    []driver.Value{"%김%", "%김%", "%김%", "new"},
			columns: consultationColumns,
			rows: [][]driver.Value{
				consultationRow("c11", "김민수", "010-1234-5678", "kim@example.com", "new"),
			},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewConsultationService(db)
	page, err := svc.List(ConsultationListParams{
		Filters: ConsultationFilters{Search: "김", Status: "new"},
		Page:    2,
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.TotalCount != 23 {
		t.Fatalf("total count = %d, want 23", page.TotalCount)
	}
	if page.TotalPages != 3 {
		t.Fatalf("total pages = %d, want 3", page.TotalPages)
	}
	if page.Page != 2 || page.PageSize != 10 {
		t.Fatalf("window = %d/%d, want 2/10", page.Page, page.PageSize)
	}
	if len(page.Rows) != 1 || page.Rows[0].ID != "c11" {
		t.Fatalf("unexpected rows: %+v", page.Rows)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unexpected remaining steps: %v", err)
	}
}

func TestLogsReturnsEmptySliceNotNil(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `consultation_logs` WHERE consultation_id = .* ORDER BY created_at DESC"),
			args:    []driver.Value{"c1"},
			columns: []string{"id", "consultation_id", "previous_status", "new_status", "memo", "admin_email", "created_at"},
			rows:    [][]driver.Value{},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewConsultationService(db)
	logs, err := svc.Logs("c1")
	if err != nil {
		t.Fatalf("Logs failed: %v", err)
	}
	if logs == nil {
		t.Fatal("Logs must return an empty slice, not nil")
	}
	if len(logs) != 0 {
		t.Fatalf("expected no entries, got %d", len(logs))
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unexpected remaining steps: %v", err)
	}
}

func TestDeleteUnknownConsultation(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("DELETE FROM `consultations` WHERE id = "),
			args:    []driver.Value{"missing"},
			result:  scriptedResult{rowsAffected: 0},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewConsultationService(db)
	if err := svc.Delete("missing"); !errors.Is(err, ErrConsultationNotFound) {
		t.Fatalf("expected ErrConsultationNotFound, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unexpected remaining steps: %v", err)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{23, 10, 3},
		{5, 0, 0},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.pageSize); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.pageSize, got, tc.want)
		}
	}
}
