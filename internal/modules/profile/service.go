package profile

import (
	"context"
	"errors"
	"strings"

	"creatorhub/internal/domain"
	"creatorhub/internal/repository"
)

// Service orchestrates the profile lifecycle: load or create, normalize the
// incoming section, recompute completion, persist. All writes run under the
// per-user store lock so concurrent section updates cannot interleave.
type Service struct {
	store    ProfileStore
	notifier ProgressNotifier
}

func NewService(store ProfileStore, notifier ProgressNotifier) *Service {
	return &Service{store: store, notifier: notifier}
}

// GetOrCreate is the only implicit-creation path in the system. The created
// flag lets callers distinguish a fresh draft from an existing profile.
func (s *Service) GetOrCreate(ctx context.Context, userID int64) (*domain.CreatorProfile, bool, error) {
	existing, err := s.store.FindByUser(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	p := domain.NewCreatorProfile(userID)
	RecomputeCompletion(p)
	if err := s.store.Upsert(ctx, p); err != nil {
		// Lost a creation race: another request inserted the row first.
		if errors.Is(err, repository.ErrDuplicate) {
			p, err = s.store.FindByUser(ctx, userID)
			return p, false, err
		}
		return nil, false, err
	}
	return p, true, nil
}

// ApplySection normalizes the raw payload for one section, replaces that
// section on the profile and recomputes completion state. The gallery
// section goes through the reconciler instead (SaveGallery).
func (s *Service) ApplySection(ctx context.Context, userID int64, sectionName string, raw map[string]any) (*domain.CreatorProfile, CompletionSummary, error) {
	section, ok := CanonicalSection(sectionName)
	if !ok {
		return nil, CompletionSummary{}, ErrUnknownSection
	}
	if section == domain.SectionGallery {
		return s.SaveGallery(ctx, userID, galleryPayloadFromMap(raw))
	}

	var (
		p       *domain.CreatorProfile
		summary CompletionSummary
	)
	err := s.store.WithUserLock(ctx, func(tx ProfileStore) error {
		var err error
		p, err = s.loadOrCreateLocked(ctx, tx, userID)
		if err != nil {
			return err
		}

		switch section {
		case domain.SectionPersonalInfo:
			if err := s.applyPersonalInfo(ctx, tx, p, NormalizePersonalInfo(raw)); err != nil {
				return err
			}
		case domain.SectionProfessionalInfo:
			p.Professional = NormalizeProfessionalInfo(raw)
		case domain.SectionPricing:
			p.Pricing = NormalizePricing(raw)
		case domain.SectionDescription:
			p.Description = NormalizeDescription(raw)
		case domain.SectionSocialMedia:
			p.SocialMedia = NormalizeSocialMedia(raw)
		}

		summary = RecomputeCompletion(p)
		return tx.Upsert(ctx, p)
	})
	if err != nil {
		return nil, CompletionSummary{}, err
	}

	s.notifyProgress(p, summary)
	return p, summary, nil
}

// applyPersonalInfo guards the username invariant: once set it only changes
// through an explicit new value that re-checks global uniqueness. An empty
// incoming username keeps the current one.
func (s *Service) applyPersonalInfo(ctx context.Context, tx ProfileStore, p *domain.CreatorProfile, info domain.PersonalInfo) error {
	current := p.PersonalInfo.Username
	switch {
	case info.Username == "":
		info.Username = current
	case !strings.EqualFold(info.Username, current):
		taken, err := tx.UsernameTaken(ctx, info.Username, p.UserID)
		if err != nil {
			return err
		}
		if taken {
			return ErrUsernameTaken
		}
	}

	p.PersonalInfo = info
	if info.Username != "" {
		p.ProfileURL = profileURLFor(info.Username)
	}
	return nil
}

// SaveGallery runs the reconcile-persist-recover cycle for the
// gallery section. On a store shape rejection it applies the repair ladder
// once and retries; a second rejection surfaces with the store's detail.
func (s *Service) SaveGallery(ctx context.Context, userID int64, payload GalleryPayload) (*domain.CreatorProfile, CompletionSummary, error) {
	gallery, err := ReconcileGallery(payload)
	if err != nil {
		return nil, CompletionSummary{}, err
	}

	var (
		p       *domain.CreatorProfile
		summary CompletionSummary
	)
	err = s.store.WithUserLock(ctx, func(tx ProfileStore) error {
		var err error
		p, err = s.loadOrCreateLocked(ctx, tx, userID)
		if err != nil {
			return err
		}

		p.Gallery = gallery
		summary = RecomputeCompletion(p)

		err = tx.Upsert(ctx, p)
		var vErr *repository.ValidationError
		if !errors.As(err, &vErr) {
			return err
		}

		RepairGallery(&p.Gallery, vErr.Paths)
		summary = RecomputeCompletion(p)
		err = tx.Upsert(ctx, p)
		if errors.As(err, &vErr) {
			return &PersistenceRejectedError{Paths: vErr.Paths}
		}
		return err
	})
	if err != nil {
		return nil, CompletionSummary{}, err
	}

	s.notifyProgress(p, summary)
	return p, summary, nil
}

// Recompute re-derives completion state for an existing profile and
// persists it.
func (s *Service) Recompute(ctx context.Context, userID int64) (*domain.CreatorProfile, CompletionSummary, error) {
	var (
		p       *domain.CreatorProfile
		summary CompletionSummary
	)
	err := s.store.WithUserLock(ctx, func(tx ProfileStore) error {
		var err error
		p, err = tx.FindByUserForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrProfileNotFound
		}
		summary = RecomputeCompletion(p)
		return tx.Upsert(ctx, p)
	})
	if err != nil {
		return nil, CompletionSummary{}, err
	}
	return p, summary, nil
}

// GetByIdentifier is the public lookup: only published profiles resolve.
// Each hit bumps the view counter. The bump re-reads the row under the
// per-user lock so it cannot overwrite a concurrent section update with the
// stale document from the identifier lookup.
func (s *Service) GetByIdentifier(ctx context.Context, identifier string) (*domain.CreatorProfile, error) {
	found, err := s.store.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if found == nil || found.Status != domain.StatusPublished {
		return nil, ErrProfileNotFound
	}

	var p *domain.CreatorProfile
	err = s.store.WithUserLock(ctx, func(tx ProfileStore) error {
		var err error
		p, err = tx.FindByUserForUpdate(ctx, found.UserID)
		if err != nil {
			return err
		}
		if p == nil || p.Status != domain.StatusPublished {
			return ErrProfileNotFound
		}
		p.Metrics.ProfileViews++
		return tx.Upsert(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, userID int64) error {
	return s.store.Delete(ctx, userID)
}

// Suspend is invoked by the moderation subsystem through the internal API.
// A suspended profile stops resolving publicly and cannot be re-published
// until moderation lifts the suspension.
func (s *Service) Suspend(ctx context.Context, userID int64) (*domain.CreatorProfile, error) {
	var p *domain.CreatorProfile
	err := s.store.WithUserLock(ctx, func(tx ProfileStore) error {
		var err error
		p, err = tx.FindByUserForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrProfileNotFound
		}
		p.Status = domain.StatusSuspended
		return tx.Upsert(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) loadOrCreateLocked(ctx context.Context, tx ProfileStore, userID int64) (*domain.CreatorProfile, error) {
	p, err := tx.FindByUserForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = domain.NewCreatorProfile(userID)
	}
	return p, nil
}

func (s *Service) notifyProgress(p *domain.CreatorProfile, summary CompletionSummary) {
	if s.notifier == nil {
		return
	}
	s.notifier.NotifyProgress(p.UserID, summary.NextStep, summary.OverallPercentage, p.Status)
}

func galleryPayloadFromMap(raw map[string]any) GalleryPayload {
	return GalleryPayload{
		Images:         listField(raw, "images"),
		Videos:         listField(raw, "videos"),
		PortfolioLinks: listField(raw, "portfolioLinks"),
		PortfolioItems: listField(raw, "portfolio"),
	}
}

// listField keeps the absent-vs-present distinction: a missing key stays nil,
// while a present but wrong-typed value repairs to an empty list.
func listField(raw map[string]any, key string) *[]any {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	if l, ok := v.([]any); ok {
		return &l
	}
	empty := []any{}
	return &empty
}
