package services

import (
	"log"
	"sync"
	"time"

	"howdohome-api/models"
)

// DefaultSearchDelay is how long search input must be idle before a query fires.
const DefaultSearchDelay = 300 * time.Millisecond

// ListQueryFunc runs one list query. ConsultationService.List satisfies it.
type ListQueryFunc func(ConsultationListParams) (*ConsultationPage, error)

// ListView drives a consultation list screen: it holds the current filters and
// page, re-queries whenever either changes, and delivers every result to
// onUpdate. Status and project-type changes query immediately; search input is
// debounced so a burst of keystrokes produces a single query. Any filter
// change moves back to page 1.
//
// A failed query is logged and delivered as an empty page; there is no retry.
type ListView struct {
	mu       sync.Mutex
	query    ListQueryFunc
	onUpdate func(*ConsultationPage)

	filters  ConsultationFilters
	page     int
	pageSize int

	searchDelay time.Duration
	searchTimer *time.Timer
	closed      bool
}

// NewListView creates a view over query with the given page size. Results,
// including empty pages on error, arrive via onUpdate. searchDelay <= 0 falls
// back to DefaultSearchDelay.
func NewListView(query ListQueryFunc, pageSize int, searchDelay time.Duration, onUpdate func(*ConsultationPage)) *ListView {
	if searchDelay <= 0 {
		searchDelay = DefaultSearchDelay
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &ListView{
		query:       query,
		onUpdate:    onUpdate,
		page:        1,
		pageSize:    pageSize,
		searchDelay: searchDelay,
	}
}

// Refresh re-runs the query with the current filters and page.
func (v *ListView) Refresh() {
	v.mu.Lock()
	params := ConsultationListParams{Filters: v.filters, Page: v.page, PageSize: v.pageSize}
	v.mu.Unlock()
	v.run(params)
}

// SetStatus applies a status filter, resets to page 1 and queries immediately.
func (v *ListView) SetStatus(status string) {
	v.mu.Lock()
	v.filters.Status = status
	v.page = 1
	v.mu.Unlock()
	v.Refresh()
}

// SetProjectType applies a project-type filter, resets to page 1 and queries
// immediately.
func (v *ListView) SetProjectType(projectType string) {
	v.mu.Lock()
	v.filters.ProjectType = projectType
	v.page = 1
	v.mu.Unlock()
	v.Refresh()
}

// SetSearch updates the search term. The query fires once the input has been
// idle for the debounce window, at page 1.
func (v *ListView) SetSearch(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.filters.Search = term
	if v.searchTimer != nil {
		v.searchTimer.Stop()
	}
	v.searchTimer = time.AfterFunc(v.searchDelay, func() {
		v.mu.Lock()
		if v.closed {
			v.mu.Unlock()
			return
		}
		v.page = 1
		params := ConsultationListParams{Filters: v.filters, Page: v.page, PageSize: v.pageSize}
		v.mu.Unlock()
		v.run(params)
	})
}

// SetPage moves to a page and queries immediately. Pages below 1 clamp to 1.
func (v *ListView) SetPage(page int) {
	v.mu.Lock()
	if page < 1 {
		page = 1
	}
	v.page = page
	v.mu.Unlock()
	v.Refresh()
}

// Params returns the filters and page the next query would use.
func (v *ListView) Params() ConsultationListParams {
	v.mu.Lock()
	defer v.mu.Unlock()
	return ConsultationListParams{Filters: v.filters, Page: v.page, PageSize: v.pageSize}
}

// Close drops any pending debounced query. Late timer fires and in-flight
// results are discarded afterwards.
func (v *ListView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	if v.searchTimer != nil {
		v.searchTimer.Stop()
		v.searchTimer = nil
	}
}

func (v *ListView) run(params ConsultationListParams) {
	page, err := v.query(params)
	if err != nil {
		log.Printf("consultation list query failed: %v", err)
		page = &ConsultationPage{
			Rows:       []models.Consultation{},
			Page:       params.Page,
			PageSize:   params.PageSize,
			TotalPages: 0,
		}
	}

	v.mu.Lock()
	closed := v.closed
	v.mu.Unlock()
	if closed {
		return
	}
	if v.onUpdate != nil {
		v.onUpdate(page)
	}
}
