package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"creatorhub/internal/domain"
)

// PublishOptions controls the draft→published transition. Bypass skips the
// completion precondition; it is an operational escape hatch, not a
// correctness guarantee.
type PublishOptions struct {
	Username string
	Bypass   bool
}

func profileURLFor(username string) string {
	return "/creator/" + strings.ToLower(strings.TrimSpace(username))
}

// Publish gates the draft→published transition. Without bypass, every
// section required for publish must satisfy its predicate. Publishing an
// already-published profile re-validates and restamps PublishedAt.
func (s *Service) Publish(ctx context.Context, userID int64, opts PublishOptions) (*domain.CreatorProfile, error) {
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
		if p.Status == domain.StatusSuspended {
			return ErrProfileSuspended
		}

		if !opts.Bypass {
			if missing := MissingSections(p); len(missing) > 0 {
				return &IncompleteProfileError{MissingSections: missing}
			}
		}

		username := resolveUsername(p, opts.Username)
		if !strings.EqualFold(username, p.PersonalInfo.Username) || p.PersonalInfo.Username == "" {
			taken, err := tx.UsernameTaken(ctx, username, p.UserID)
			if err != nil {
				return err
			}
			if taken {
				return ErrUsernameTaken
			}
		}
		p.PersonalInfo.Username = username
		p.ProfileURL = profileURLFor(username)

		if opts.Bypass {
			// Source behavior, kept on purpose: bypass force-sets every
			// completion flag even when the underlying data is empty.
			// Eligibility checks above never read these flags back.
			for _, section := range domain.OnboardingOrder {
				p.Completion[section] = true
			}
			p.OnboardingStep = domain.StepPublish
			p.Metrics.ProfileCompleteness = 100
		} else {
			RecomputeCompletion(p)
		}

		now := time.Now()
		p.Status = domain.StatusPublished
		p.PublishedAt = &now
		return tx.Upsert(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyProgress(p.UserID, domain.StepPublish, p.Metrics.ProfileCompleteness, p.Status)
	}
	return p, nil
}

// resolveUsername picks, in order: the explicit option, the username already
// on the profile, a generated fallback.
func resolveUsername(p *domain.CreatorProfile, explicit string) string {
	if u := strings.TrimSpace(explicit); u != "" {
		return u
	}
	if p.PersonalInfo.Username != "" {
		return p.PersonalInfo.Username
	}
	return fmt.Sprintf("creator_%d", p.UserID)
}
