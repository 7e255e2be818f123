package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/planwise/planwise-api/internal/domain"
)

// ProfileStore persists one UserProfile per user.
type ProfileStore interface {
	// Get returns the profile for userID.
	// Returns ErrProfileNotFound if the user has not saved a profile yet.
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)

	// GetForUpdate is Get plus a row lock held until the surrounding
	// transaction ends. Only meaningful on a store returned by WithTx.
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)

	// CreateIfMissing inserts profile unless the user already has one.
	// An existing row is left untouched.
	CreateIfMissing(ctx context.Context, profile *domain.UserProfile) error

	// Upsert inserts or replaces the profile keyed by its UserID.
	Upsert(ctx context.Context, profile *domain.UserProfile) error

	// WithTx returns a ProfileStore that runs its queries in tx.
	WithTx(tx *sql.Tx) ProfileStore
}

// SubjectStore persists a user's subjects.
type SubjectStore interface {
	// ListByUser returns all subjects of userID in creation order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SubjectRecord, error)

	// Upsert inserts or replaces the subject keyed by its ID.
	// Returns ErrSubjectNotFound if the ID belongs to another user.
	Upsert(ctx context.Context, record *domain.SubjectRecord) error
}

// AssignmentStore persists a user's assignments.
type AssignmentStore interface {
	// ListByUser returns all assignments of userID in creation order.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.AssignmentRecord, error)

	// Upsert inserts or replaces the assignment keyed by its ID.
	// Returns ErrAssignmentNotFound if the ID belongs to another user.
	Upsert(ctx context.Context, record *domain.AssignmentRecord) error
}

// BrainDumpStore persists processed confusion dumps.
type BrainDumpStore interface {
	// Create saves a new brain dump.
	// Returns ErrBrainDumpExists if the ID is already taken.
	Create(ctx context.Context, dump *domain.BrainDump) error

	// ListRecent returns up to limit brain dumps of userID, newest first.
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.BrainDump, error)
}

// CheckinStore persists daily check-ins.
type CheckinStore interface {
	// Create saves a new check-in.
	Create(ctx context.Context, checkin *domain.DailyCheckin) error
}
