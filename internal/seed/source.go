// Package seed supplies the initial task list from a literal list, a YAML
// file or an external record source.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"todo/internal/todo"
)

// Source kinds selectable from configuration.
const (
	KindBuiltin = "builtin"
	KindFile    = "file"
	KindGoogle  = "google"
	KindEmpty   = "empty"
)

// ErrUnknownSource is returned for an unrecognised source kind.
var ErrUnknownSource = errors.New("unknown seed source")

// Record is the raw shape of one seed entry.
type Record struct {
	Title       string
	Completed   bool
	Description string
	CompletedAt *time.Time
}

// Source yields seed records.
// Backends (Google Tasks, files) are hidden behind this interface.
type Source interface {
	Records(ctx context.Context) ([]Record, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]Record, error)

// Records implements Source.
func (f SourceFunc) Records(ctx context.Context) ([]Record, error) {
	return f(ctx)
}

// Empty returns a source with no records.
func Empty() Source {
	return SourceFunc(func(ctx context.Context) ([]Record, error) {
		return nil, nil
	})
}

// Build turns records into tasks, drawing IDs from r. Every task gets the
// same CreatedAt, read once from r's clock. CompletedAt is copied from the
// record only; a completed record without one yields a completed task
// without CompletedAt.
func Build(records []Record, r todo.Reducer) todo.TaskList {
	if r.Now == nil {
		r.Now = time.Now
	}
	created := r.Now()

	list := make(todo.TaskList, 0, len(records))
	for _, rec := range records {
		// Add assigns an ID unique within list.
		list = r.Apply(list, todo.Add{})
		t := &list[len(list)-1]
		t.CreatedAt = created
		t.Title = rec.Title
		t.Description = rec.Description
		t.Completed = rec.Completed
		t.IsNew = false
		if rec.CompletedAt != nil {
			at := *rec.CompletedAt
			t.CompletedAt = &at
		}
	}
	return list
}

// Load reads records from src and builds the initial list.
func Load(ctx context.Context, src Source, r todo.Reducer) (todo.TaskList, error) {
	records, err := src.Records(ctx)
	if err != nil {
		return nil, err
	}
	return Build(records, r), nil
}

// NormalizeKind lowercases and trims a source kind; empty means builtin.
func NormalizeKind(kind string) string {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" {
		return KindBuiltin
	}
	return kind
}

// ValidateKind reports whether kind names a known source.
func ValidateKind(kind string) error {
	switch NormalizeKind(kind) {
	case KindBuiltin, KindFile, KindGoogle, KindEmpty:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSource, kind)
	}
}
