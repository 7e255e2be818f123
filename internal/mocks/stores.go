package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/planwise/planwise-api/internal/domain"
	"github.com/planwise/planwise-api/internal/store"
)

// MockProfileStore is an in-memory store.ProfileStore.
type MockProfileStore struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]domain.UserProfile

	// GetErr and UpsertErr, when set, are returned instead of touching the map.
	GetErr    error
	UpsertErr error
}

var _ store.ProfileStore = (*MockProfileStore)(nil)

// NewMockProfileStore creates an empty MockProfileStore.
func NewMockProfileStore() *MockProfileStore {
	return &MockProfileStore{profiles: make(map[uuid.UUID]domain.UserProfile)}
}

// Get implements store.ProfileStore
func (m *MockProfileStore) Get(_ context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	p, ok := m.profiles[userID]
	if !ok {
		return nil, store.ErrProfileNotFound
	}
	p.Preferences = copyPreferences(p.Preferences)
	return &p, nil
}

// GetForUpdate implements store.ProfileStore. The mock takes no row locks.
func (m *MockProfileStore) GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	return m.Get(ctx, userID)
}

// CreateIfMissing implements store.ProfileStore
func (m *MockProfileStore) CreateIfMissing(_ context.Context, profile *domain.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpsertErr != nil {
		return m.UpsertErr
	}
	if m.profiles == nil {
		m.profiles = make(map[uuid.UUID]domain.UserProfile)
	}
	if _, ok := m.profiles[profile.UserID]; !ok {
		p := *profile
		p.Preferences = copyPreferences(profile.Preferences)
		m.profiles[p.UserID] = p
	}
	return nil
}

// Upsert implements store.ProfileStore
func (m *MockProfileStore) Upsert(_ context.Context, profile *domain.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpsertErr != nil {
		return m.UpsertErr
	}
	if m.profiles == nil {
		m.profiles = make(map[uuid.UUID]domain.UserProfile)
	}
	p := *profile
	p.Preferences = copyPreferences(profile.Preferences)
	m.profiles[p.UserID] = p
	return nil
}

// WithTx implements store.ProfileStore. The mock ignores transactions.
func (m *MockProfileStore) WithTx(*sql.Tx) store.ProfileStore {
	return m
}

func copyPreferences(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// MockSubjectStore is an in-memory store.SubjectStore.
type MockSubjectStore struct {
	mu      sync.Mutex
	records []domain.SubjectRecord

	ListErr   error
	UpsertErr error
}

var _ store.SubjectStore = (*MockSubjectStore)(nil)

// ListByUser implements store.SubjectStore
func (m *MockSubjectStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.SubjectRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]*domain.SubjectRecord, 0)
	for i := range m.records {
		if m.records[i].UserID == userID {
			r := m.records[i]
			out = append(out, &r)
		}
	}
	return out, nil
}

// Upsert implements store.SubjectStore
func (m *MockSubjectStore) Upsert(_ context.Context, record *domain.SubjectRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpsertErr != nil {
		return m.UpsertErr
	}
	for i := range m.records {
		if m.records[i].ID == record.ID {
			if m.records[i].UserID != record.UserID {
				return store.ErrSubjectNotFound
			}
			m.records[i] = *record
			return nil
		}
	}
	m.records = append(m.records, *record)
	return nil
}

// MockAssignmentStore is an in-memory store.AssignmentStore.
type MockAssignmentStore struct {
	mu      sync.Mutex
	records []domain.AssignmentRecord

	ListErr   error
	UpsertErr error
}

var _ store.AssignmentStore = (*MockAssignmentStore)(nil)

// ListByUser implements store.AssignmentStore
func (m *MockAssignmentStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.AssignmentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]*domain.AssignmentRecord, 0)
	for i := range m.records {
		if m.records[i].UserID == userID {
			r := m.records[i]
			out = append(out, &r)
		}
	}
	return out, nil
}

// Upsert implements store.AssignmentStore
func (m *MockAssignmentStore) Upsert(_ context.Context, record *domain.AssignmentRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpsertErr != nil {
		return m.UpsertErr
	}
	for i := range m.records {
		if m.records[i].ID == record.ID {
			if m.records[i].UserID != record.UserID {
				return store.ErrAssignmentNotFound
			}
			m.records[i] = *record
			return nil
		}
	}
	m.records = append(m.records, *record)
	return nil
}

// MockBrainDumpStore is an in-memory store.BrainDumpStore.
type MockBrainDumpStore struct {
	mu    sync.Mutex
	dumps []domain.BrainDump

	CreateErr error
	ListErr   error
}

var _ store.BrainDumpStore = (*MockBrainDumpStore)(nil)

// Create implements store.BrainDumpStore
func (m *MockBrainDumpStore) Create(_ context.Context, dump *domain.BrainDump) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	for _, d := range m.dumps {
		if d.ID == dump.ID {
			return store.ErrBrainDumpExists
		}
	}
	m.dumps = append(m.dumps, *dump)
	return nil
}

// ListRecent implements store.BrainDumpStore
func (m *MockBrainDumpStore) ListRecent(_ context.Context, userID uuid.UUID, limit int) ([]*domain.BrainDump, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]*domain.BrainDump, 0)
	for i := range m.dumps {
		if m.dumps[i].UserID == userID {
			d := m.dumps[i]
			out = append(out, &d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Count returns the number of stored brain dumps.
func (m *MockBrainDumpStore) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.dumps)
}

// MockCheckinStore is an in-memory store.CheckinStore.
type MockCheckinStore struct {
	mu       sync.Mutex
	Checkins []domain.DailyCheckin

	CreateErr error
}

var _ store.CheckinStore = (*MockCheckinStore)(nil)

// Create implements store.CheckinStore
func (m *MockCheckinStore) Create(_ context.Context, checkin *domain.DailyCheckin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Checkins = append(m.Checkins, *checkin)
	return nil
}

// Count returns the number of stored check-ins.
func (m *MockCheckinStore) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Checkins)
}
