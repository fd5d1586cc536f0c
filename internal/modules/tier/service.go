package tier

import (
	"context"

	"creatorhub/internal/domain"
)

// Influencer tier thresholds: inclusive lower bounds, non-overlapping.
const (
	silverFloor   = 50_000
	goldFloor     = 100_000
	platinumFloor = 500_000
	diamondFloor  = 1_000_000
)

// ScoreInfluencerTier maps total social reach to a tier plus interpolated
// progress toward the next tier, clamped to [0,100].
func ScoreInfluencerTier(totalFollowers int64) (domain.InfluencerTier, float64, error) {
	if totalFollowers < 0 {
		return "", 0, ErrInvalidMetric
	}

	f := float64(totalFollowers)
	var (
		t        domain.InfluencerTier
		progress float64
	)
	switch {
	case totalFollowers >= diamondFloor:
		t, progress = domain.TierDiamond, 100
	case totalFollowers >= platinumFloor:
		t = domain.TierPlatinum
		progress = 80 + (f-platinumFloor)/(diamondFloor-platinumFloor)*20
	case totalFollowers >= goldFloor:
		t = domain.TierGold
		progress = 60 + (f-goldFloor)/(platinumFloor-goldFloor)*20
	case totalFollowers >= silverFloor:
		t = domain.TierSilver
		progress = 40 + (f-silverFloor)/(goldFloor-silverFloor)*20
	default:
		t = domain.TierBronze
		progress = f / silverFloor * 100
		if progress > 40 {
			progress = 40
		}
	}

	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	return t, progress, nil
}

// ScoreServiceTier ranks delivery track record. Evaluated top-down, first
// match wins; both conditions gate each tier.
func ScoreServiceTier(completedProjects int, responseRate float64) (domain.ServiceTier, error) {
	if completedProjects < 0 || responseRate < 0 || responseRate > 100 {
		return "", ErrInvalidMetric
	}

	switch {
	case completedProjects >= 100 && responseRate >= 95:
		return domain.ServiceVIP, nil
	case completedProjects >= 50 && responseRate >= 90:
		return domain.ServiceElite, nil
	case completedProjects >= 20 && responseRate >= 85:
		return domain.ServiceProfessional, nil
	default:
		return domain.ServiceStandard, nil
	}
}

// MetricsStore is the persistence contract for the per-creator snapshot.
type MetricsStore interface {
	FindByUser(ctx context.Context, userID int64) (*domain.CreatorMetrics, error)
	Upsert(ctx context.Context, m *domain.CreatorMetrics) error
}

// Service recomputes the ranking snapshot from externally supplied
// counters. It never mutates the counters themselves.
type Service struct {
	metrics MetricsStore
}

func NewService(metrics MetricsStore) *Service {
	return &Service{metrics: metrics}
}

// RefreshInput carries the counters owned by the orders, reviews and social
// sync subsystems.
type RefreshInput struct {
	Followers         int64
	TotalEarnings     float64
	CompletedProjects int
	ResponseRate      float64
	PerformanceSeries []domain.PerformancePoint
}

// Refresh recomputes both tiers and the tier progress and persists the
// snapshot with a fresh LastUpdated stamp.
func (s *Service) Refresh(ctx context.Context, userID int64, in RefreshInput) (*domain.CreatorMetrics, error) {
	influencer, progress, err := ScoreInfluencerTier(in.Followers)
	if err != nil {
		return nil, err
	}
	service, err := ScoreServiceTier(in.CompletedProjects, in.ResponseRate)
	if err != nil {
		return nil, err
	}

	m, err := s.metrics.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = domain.NewCreatorMetrics(userID)
	}

	m.Followers = in.Followers
	m.TotalEarnings = in.TotalEarnings
	m.CompletedProjects = in.CompletedProjects
	m.ResponseRate = in.ResponseRate
	m.InfluencerTier = influencer
	m.ServiceTier = service
	m.TierProgress = progress
	if in.PerformanceSeries != nil {
		m.PerformanceSeries = in.PerformanceSeries
	}

	if err := s.metrics.Upsert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Get returns the current snapshot, or a zero-valued bronze/standard one
// for creators that were never scored.
func (s *Service) Get(ctx context.Context, userID int64) (*domain.CreatorMetrics, error) {
	m, err := s.metrics.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = domain.NewCreatorMetrics(userID)
	}
	return m, nil
}
