package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"howdohome-api/models"
)

// listRecorder fakes the query side of a ListView and records every call.
type listRecorder struct {
	mu    sync.Mutex
	calls []ConsultationListParams
	err   error
	total int64
}

func (r *listRecorder) query(params ConsultationListParams) (*ConsultationPage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, params)
	if r.err != nil {
		return nil, r.err
	}
	return &ConsultationPage{
		Rows:       []models.Consultation{},
		TotalCount: r.total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: TotalPages(r.total, params.PageSize),
	}, nil
}

func (r *listRecorder) snapshot() []ConsultationListParams {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ConsultationListParams, len(r.calls))
	copy(out, r.calls)
	return out
}

func TestListViewFilterChangeResetsPage(t *testing.T) {
	rec := &listRecorder{total: 50}
	view := NewListView(rec.query, 10, time.Millisecond, nil)
	defer view.Close()

	view.SetPage(3)
	view.SetStatus("in_progress")

	calls := rec.snapshot()
	if len(calls) != 2 {
		t.Fatalf("expected 2 queries, got %d", len(calls))
	}
	if calls[0].Page != 3 {
		t.Fatalf("page query ran at page %d, want 3", calls[0].Page)
	}
	if calls[1].Page != 1 {
		t.Fatalf("status change must reset to page 1, queried page %d", calls[1].Page)
	}
	if calls[1].Filters.Status != "in_progress" {
		t.Fatalf("status filter not applied: %+v", calls[1].Filters)
	}
}

func TestListViewProjectTypeChangeResetsPage(t *testing.T) {
	rec := &listRecorder{total: 50}
	view := NewListView(rec.query, 10, time.Millisecond, nil)
	defer view.Close()

	view.SetPage(2)
	view.SetProjectType("아파트")

	calls := rec.snapshot()
	if len(calls) != 2 {
		t.Fatalf("expected 2 queries, got %d", len(calls))
	}
	if calls[1].Page != 1 || calls[1].Filters.ProjectType != "아파트" {
		t.Fatalf("unexpected params after type change: %+v", calls[1])
	}
}

func TestListViewSearchIsDebounced(t *testing.T) {
	rec := &listRecorder{total: 5}
	view := NewListView(rec.query, 10, 30*time.Millisecond, nil)
	defer view.Close()

	view.SetPage(4)
	view.SetSearch("김")
	view.SetSearch("김민")
	view.SetSearch("김민수")

	// Only the last term should fire, once the input has been idle.
	time.Sleep(150 * time.Millisecond)

	calls := rec.snapshot()
	if len(calls) != 2 {
		t.Fatalf("expected page query plus one debounced search, got %d calls: %+v", len(calls), calls)
	}
	last := calls[len(calls)-1]
	if last.Filters.Search != "김민수" {
		t.Fatalf("search fired with %q, want the final term", last.Filters.Search)
	}
	if last.Page != 1 {
		t.Fatalf("search must reset to page 1, queried page %d", last.Page)
	}
}

func TestListViewSearchWaitsForIdle(t *testing.T) {
	rec := &listRecorder{}
	view := NewListView(rec.query, 10, 50*time.Millisecond, nil)
	defer view.Close()

	view.SetSearch("김")
	time.Sleep(20 * time.Millisecond)
	if calls := rec.snapshot(); len(calls) != 0 {
		t.Fatalf("query fired before the debounce window elapsed: %+v", calls)
	}
}

func TestListViewPageClampsToOne(t *testing.T) {
	rec := &listRecorder{}
	view := NewListView(rec.query, 10, time.Millisecond, nil)
	defer view.Close()

	view.SetPage(0)

	calls := rec.snapshot()
	if len(calls) != 1 || calls[0].Page != 1 {
		t.Fatalf("page 0 must clamp to 1, got %+v", calls)
	}
}

func TestListViewQueryErrorDeliversEmptyPage(t *testing.T) {
	rec := &listRecorder{err: errors.New("connection refused")}

	var mu sync.Mutex
	var pages []*ConsultationPage
	view := NewListView(rec.query, 10, time.Millisecond, func(p *ConsultationPage) {
		mu.Lock()
		pages = append(pages, p)
		mu.Unlock()
	})
	defer view.Close()

	view.Refresh()

	mu.Lock()
	defer mu.Unlock()
	if len(pages) != 1 {
		t.Fatalf("expected one delivered page, got %d", len(pages))
	}
	if pages[0] == nil || len(pages[0].Rows) != 0 || pages[0].TotalPages != 0 {
		t.Fatalf("failed query must deliver an empty page, got %+v", pages[0])
	}
}

func TestListViewCloseDropsPendingSearch(t *testing.T) {
	rec := &listRecorder{}
	view := NewListView(rec.query, 10, 30*time.Millisecond, nil)

	view.SetSearch("김")
	view.Close()

	time.Sleep(100 * time.Millisecond)
	if calls := rec.snapshot(); len(calls) != 0 {
		t.Fatalf("closed view must not fire pending searches: %+v", calls)
	}
}

func TestListViewParamsReflectState(t *testing.T) {
	rec := &listRecorder{}
	view := NewListView(rec.query, 10, time.Millisecond, nil)
	defer view.Close()

	view.SetStatus("completed")
	view.SetPage(2)

	params := view.Params()
	if params.Filters.Status != "completed" || params.Page != 2 || params.PageSize != 10 {
		t.Fatalf("unexpected params: %+v", params)
	}
}
