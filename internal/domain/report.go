package domain

import (
	"fmt"
	"sync"
	"time"

	"github.com/orgball2608/tumblr-likes-archiver/pkg/errors"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/formatter"
)

type ItemStatus string

const (
	ItemStored   ItemStatus = "stored"
	ItemNotified ItemStatus = "notified"
	ItemFailed   ItemStatus = "failed"
)

type ItemResult struct {
	PostID       string
	URL          string
	Status       ItemStatus
	Confirmation string
	// DetectedType is the MIME sniffed from the fetched body.
	DetectedType string
	Err          error
}

// RunReport collects the outcome of every branch of one run. Safe for concurrent use.
type RunReport struct {
	Event         Event
	StartedAt     time.Time
	Posts         int
	Duplicates    int
	LedgerUpdated bool

	mu    sync.Mutex
	items []ItemResult
}

func NewRunReport(event Event) *RunReport {
	return &RunReport{Event: event, StartedAt: time.Now()}
}

func (r *RunReport) Add(res ItemResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, res)
}

func (r *RunReport) Items() []ItemResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]ItemResult, len(r.items))
	copy(out, r.items)
	return out
}

func (r *RunReport) Count(status ItemStatus) int {
	n := 0
	for _, it := range r.Items() {
		if it.Status == status {
			n++
		}
	}
	return n
}

// Errors returns item errors in completion order.
func (r *RunReport) Errors() []error {
	var errs []error
	for _, it := range r.Items() {
		if it.Err != nil {
			errs = append(errs, it.Err)
		}
	}
	return errs
}

func (r *RunReport) Err() error {
	return errors.Join(r.Errors()...)
}

func (r *RunReport) Summary() string {
	return fmt.Sprintf("posts: %s, stored: %s, notified: %s, duplicates: %s, failed: %s, ledger updated: %t",
		formatter.FormatNumber(r.Posts),
		formatter.FormatNumber(r.Count(ItemStored)),
		formatter.FormatNumber(r.Count(ItemNotified)),
		formatter.FormatNumber(r.Duplicates),
		formatter.FormatNumber(r.Count(ItemFailed)),
		r.LedgerUpdated,
	)
}
