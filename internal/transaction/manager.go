package transaction

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// RollbackFunc is a function that reverses an operation
type RollbackFunc func() error

type step struct {
	name string
	fn   RollbackFunc
}

// Manager keeps the undo steps of an in-flight install so a failure never
// leaves a half-written binary behind
type Manager struct {
	steps  []step
	mu     sync.Mutex
	logger *zerolog.Logger
}

// NewManager creates a new transaction manager
func NewManager(logger *zerolog.Logger) *Manager {
	return &Manager{
		steps:  make([]step, 0, 2),
		logger: logger,
	}
}

// Add registers an undo step
func (m *Manager) Add(name string, fn RollbackFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.steps = append(m.steps, step{name: name, fn: fn})
}

// Rollback runs every registered step in reverse order and clears the stack.
// All steps run even when some fail; their errors are joined.
func (m *Manager) Rollback() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.steps) == 0 {
		return nil
	}

	if m.logger != nil {
		m.logger.Debug().Int("steps", len(m.steps)).Msg("rolling back install")
	}

	var errs []error
	for i := len(m.steps) - 1; i >= 0; i-- {
		s := m.steps[i]
		if err := s.fn(); err != nil {
			errs = append(errs, fmt.Errorf("rollback %s: %w", s.name, err))
			if m.logger != nil {
				m.logger.Error().Err(err).Str("operation", s.name).Msg("rollback failed")
			}
		}
	}

	m.steps = nil
	return errors.Join(errs...)
}

// Commit clears the undo stack, confirming the transaction
func (m *Manager) Commit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.steps = nil
}
