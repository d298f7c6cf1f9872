// Package store holds the current task list and applies commands to it.
package store

import (
	"log/slog"
	"sync"

	"todo/internal/logging"
	"todo/internal/todo"
)

// Store owns one task list. Each Dispatch replaces the list with the
// reducer's result; readers always get copies.
type Store struct {
	mu      sync.RWMutex
	items   todo.TaskList
	reducer todo.Reducer
	log     *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithReducer sets the reducer used by Dispatch.
func WithReducer(r todo.Reducer) Option {
	return func(s *Store) {
		s.reducer = r
	}
}

// WithLogger sets the logger used to trace dispatched commands.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a store holding a copy of initial.
func New(initial todo.TaskList, opts ...Option) *Store {
	s := &Store{
		items:   initial.Clone(),
		reducer: todo.DefaultReducer(),
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.items == nil {
		s.items = todo.TaskList{}
	}
	return s
}

// Dispatch applies cmd and returns a copy of the resulting list.
func (s *Store) Dispatch(cmd todo.Command) todo.TaskList {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.items)
	s.items = s.reducer.Apply(s.items, cmd)
	if cmd != nil {
		s.log.Debug("applied command", "command", cmd.String(), "before", before, "after", len(s.items))
	}
	return s.items.Clone()
}

// Items returns a copy of the current list in stored order.
func (s *Store) Items() todo.TaskList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.Clone()
}

// Ordered returns the current list in display order.
func (s *Store) Ordered() todo.TaskList {
	return todo.Ordered(s.Items())
}

// Find returns the task with the given ID.
func (s *Store) Find(id string) (todo.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.Find(id)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
