package tier

import (
	"context"
	"testing"

	"creatorhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScoreInfluencerTier_Boundaries(t *testing.T) {
	cases := []struct {
		name      string
		followers int64
		tier      domain.InfluencerTier
		progress  float64
	}{
		{"zero", 0, domain.TierBronze, 0},
		{"bronze midway", 25_000, domain.TierBronze, 40},
		{"just below silver", 49_999, domain.TierBronze, 40},
		{"silver floor", 50_000, domain.TierSilver, 40},
		{"silver midway", 75_000, domain.TierSilver, 50},
		{"gold floor", 100_000, domain.TierGold, 60},
		{"gold midway", 300_000, domain.TierGold, 70},
		{"platinum floor", 500_000, domain.TierPlatinum, 80},
		{"platinum midway", 750_000, domain.TierPlatinum, 90},
		{"diamond floor", 1_000_000, domain.TierDiamond, 100},
		{"well past diamond", 25_000_000, domain.TierDiamond, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tier, progress, err := ScoreInfluencerTier(tc.followers)
			require.NoError(t, err)
			assert.Equal(t, tc.tier, tier)
			assert.InDelta(t, tc.progress, progress, 0.01)
		})
	}
}

func TestScoreInfluencerTier_NegativeRejected(t *testing.T) {
	_, _, err := ScoreInfluencerTier(-1)
	assert.ErrorIs(t, err, ErrInvalidMetric)
}

func TestScoreServiceTier_DualGates(t *testing.T) {
	cases := []struct {
		name     string
		projects int
		rate     float64
		tier     domain.ServiceTier
	}{
		{"vip needs both gates", 100, 95, domain.ServiceVIP},
		{"high volume low rate drops to elite", 100, 94, domain.ServiceElite},
		{"elite floor", 50, 90, domain.ServiceElite},
		{"professional floor", 20, 85, domain.ServiceProfessional},
		{"one project short of professional", 19, 99, domain.ServiceStandard},
		{"high rate alone is standard", 0, 100, domain.ServiceStandard},
		{"many projects poor rate is standard", 120, 80, domain.ServiceStandard},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tier, err := ScoreServiceTier(tc.projects, tc.rate)
			require.NoError(t, err)
			assert.Equal(t, tc.tier, tier)
		})
	}
}

func TestScoreServiceTier_RangeChecks(t *testing.T) {
	_, err := ScoreServiceTier(-1, 90)
	assert.ErrorIs(t, err, ErrInvalidMetric)

	_, err = ScoreServiceTier(10, 101)
	assert.ErrorIs(t, err, ErrInvalidMetric)
}

type MockMetricsStore struct {
	mock.Mock
}

func (m *MockMetricsStore) FindByUser(ctx context.Context, userID int64) (*domain.CreatorMetrics, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreatorMetrics), args.Error(1)
}

func (m *MockMetricsStore) Upsert(ctx context.Context, cm *domain.CreatorMetrics) error {
	args := m.Called(ctx, cm)
	return args.Error(0)
}

func TestRefresh_PersistsSnapshot(t *testing.T) {
	store := new(MockMetricsStore)
	store.On("FindByUser", mock.Anything, int64(42)).Return(nil, nil)
	store.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(store)
	m, err := svc.Refresh(context.Background(), 42, RefreshInput{
		Followers:         89_000,
		TotalEarnings:     12_400,
		CompletedProjects: 54,
		ResponseRate:      93,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TierSilver, m.InfluencerTier)
	assert.Equal(t, domain.ServiceElite, m.ServiceTier)
	assert.InDelta(t, 55.6, m.TierProgress, 0.01)
	assert.Equal(t, int64(89_000), m.Followers)
	store.AssertExpectations(t)
}

func TestRefresh_InvalidMetricSkipsStore(t *testing.T) {
	store := new(MockMetricsStore)

	svc := NewService(store)
	_, err := svc.Refresh(context.Background(), 42, RefreshInput{Followers: -5})

	assert.ErrorIs(t, err, ErrInvalidMetric)
	store.AssertNotCalled(t, "FindByUser", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestGet_DefaultsForUnscoredCreator(t *testing.T) {
	store := new(MockMetricsStore)
	store.On("FindByUser", mock.Anything, int64(7)).Return(nil, nil)

	svc := NewService(store)
	m, err := svc.Get(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, domain.TierBronze, m.InfluencerTier)
	assert.Equal(t, domain.ServiceStandard, m.ServiceTier)
	assert.NotNil(t, m.PerformanceSeries)
}
