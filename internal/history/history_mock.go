package history

import (
	"time"

	"github.com/northstarwang/burnlens/internal/contract"
	"github.com/northstarwang/burnlens/schema"
	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of HistoryStore for testing.
type MockStore struct {
	mock.Mock
}

var _ contract.HistoryStore = &MockStore{} // Compile-time check

// RecordSummary implements the HistoryStore interface.
func (m *MockStore) RecordSummary(b *schema.SprintBurndown, summary schema.BurndownSummary, capturedAt time.Time) error {
	args := m.Called(b, summary, capturedAt)
	return args.Error(0)
}

// RecordVelocity implements the HistoryStore interface.
func (m *MockStore) RecordVelocity(v schema.TeamVelocity) error {
	args := m.Called(v)
	return args.Error(0)
}

// ListVelocity implements the HistoryStore interface.
func (m *MockStore) ListVelocity(teamID string) ([]schema.TeamVelocity, error) {
	args := m.Called(teamID)
	records, _ := args.Get(0).([]schema.TeamVelocity)
	return records, args.Error(1)
}

// Status implements the HistoryStore interface.
func (m *MockStore) Status() (map[string]int64, error) {
	args := m.Called()
	counts, _ := args.Get(0).(map[string]int64)
	return counts, args.Error(1)
}

// Clear implements the HistoryStore interface.
func (m *MockStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// Close implements the HistoryStore interface.
func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
