package profile

import (
	"context"

	"creatorhub/internal/domain"
	"creatorhub/internal/repository"
)

// ProfileStore is the persistence contract for one profile document per
// user. Upsert may fail with *repository.ValidationError carrying the
// rejected document paths.
type ProfileStore interface {
	FindByUser(ctx context.Context, userID int64) (*domain.CreatorProfile, error)
	FindByUserForUpdate(ctx context.Context, userID int64) (*domain.CreatorProfile, error)
	FindByIdentifier(ctx context.Context, identifier string) (*domain.CreatorProfile, error)
	UsernameTaken(ctx context.Context, username string, excludeUserID int64) (bool, error)
	Upsert(ctx context.Context, p *domain.CreatorProfile) error
	Delete(ctx context.Context, userID int64) error
	WithUserLock(ctx context.Context, fn func(tx ProfileStore) error) error
}

// ProgressNotifier pushes onboarding progress to the creator's live
// sessions. Implemented by the events hub; delivery is best effort.
type ProgressNotifier interface {
	NotifyProgress(userID int64, step domain.Section, percentage int, status domain.ProfileStatus)
}

type storeAdapter struct {
	*repository.ProfileRepository
}

// NewStore wraps the gorm repository so transactional callbacks see the
// ProfileStore interface instead of the concrete repository.
func NewStore(r *repository.ProfileRepository) ProfileStore {
	return storeAdapter{r}
}

func (a storeAdapter) WithUserLock(ctx context.Context, fn func(tx ProfileStore) error) error {
	return a.ProfileRepository.WithUserLock(ctx, func(tx *repository.ProfileRepository) error {
		return fn(storeAdapter{tx})
	})
}
