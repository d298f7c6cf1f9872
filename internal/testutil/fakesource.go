// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"
	"time"

	"todo/internal/seed"
)

// FakeSource is an in-memory seed.Source for testing.
type FakeSource struct {
	mu      sync.Mutex
	records []seed.Record
	calls   int

	// RecordsErr, when set, is returned by Records.
	RecordsErr error
}

var _ seed.Source = (*FakeSource)(nil)

// NewFakeSource creates a FakeSource with no records.
func NewFakeSource() *FakeSource {
	return &FakeSource{}
}

// AddTask adds an open record.
func (f *FakeSource) AddTask(title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, seed.Record{Title: title})
}

// AddCompleted adds a completed record. A zero at leaves CompletedAt unset.
func (f *FakeSource) AddCompleted(title string, at time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec := seed.Record{Title: title, Completed: true}
	if !at.IsZero() {
		rec.CompletedAt = &at
	}
	f.records = append(f.records, rec)
}

// Calls returns how many times Records was called.
func (f *FakeSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// Records implements seed.Source.
func (f *FakeSource) Records(ctx context.Context) ([]seed.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.RecordsErr != nil {
		return nil, f.RecordsErr
	}
	result := make([]seed.Record, len(f.records))
	copy(result, f.records)
	return result, nil
}
