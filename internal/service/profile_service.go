package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/planwise/planwise-api/internal/domain"
	"github.com/planwise/planwise-api/internal/platform/logger"
	"github.com/planwise/planwise-api/internal/store"
)

// ProfileService reads and updates user profiles.
type ProfileService interface {
	// Get returns the stored profile, or an unsaved default profile when the
	// user has none yet.
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)

	// Save merges update into the stored profile, creating it if needed.
	Save(ctx context.Context, userID uuid.UUID, update domain.ProfileUpdate) (*domain.UserProfile, error)
}

type profileServiceImpl struct {
	db       store.TxBeginner
	profiles store.ProfileStore
	logger   *slog.Logger
	now      func() time.Time
}

// NewProfileService creates a ProfileService. Saves run in a transaction on db.
func NewProfileService(db store.TxBeginner, profiles store.ProfileStore, logger *slog.Logger) (ProfileService, error) {
	if db == nil || profiles == nil {
		return nil, &ServiceError{Service: "profile", Op: "create_service", Err: errors.New("dependencies cannot be nil")}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &profileServiceImpl{
		db:       db,
		profiles: profiles,
		logger:   logger.With("component", "profile_service"),
		now:      time.Now,
	}, nil
}

// Get implements ProfileService.
func (s *profileServiceImpl) Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	p, err := s.profiles.Get(ctx, userID)
	if errors.Is(err, store.ErrProfileNotFound) {
		return domain.NewUserProfile(userID, s.now())
	}
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to load profile",
			"error", err,
			"user_id", userID)
		return nil, wrapError("profile", "get", err)
	}
	return p, nil
}

// Save implements ProfileService.
func (s *profileServiceImpl) Save(
	ctx context.Context,
	userID uuid.UUID,
	update domain.ProfileUpdate,
) (*domain.UserProfile, error) {
	var saved *domain.UserProfile
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txProfiles := s.profiles.WithTx(tx)

		// The row is created first so that concurrent saves for a new user
		// also serialize on its lock.
		now := s.now()
		fresh, err := domain.NewUserProfile(userID, now)
		if err != nil {
			return err
		}
		if err := txProfiles.CreateIfMissing(ctx, fresh); err != nil {
			return err
		}
		p, err := txProfiles.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		p.Merge(update, now)
		if err := txProfiles.Upsert(ctx, p); err != nil {
			return err
		}
		saved = p
		return nil
	})
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to save profile",
			"error", err,
			"user_id", userID)
		return nil, wrapError("profile", "save", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("profile saved", "user_id", userID)
	return saved, nil
}
