package domain

import "time"

type InfluencerTier string

const (
	TierBronze   InfluencerTier = "bronze"
	TierSilver   InfluencerTier = "silver"
	TierGold     InfluencerTier = "gold"
	TierPlatinum InfluencerTier = "platinum"
	TierDiamond  InfluencerTier = "diamond"
)

type ServiceTier string

const (
	ServiceStandard     ServiceTier = "standard"
	ServiceProfessional ServiceTier = "professional"
	ServiceElite        ServiceTier = "elite"
	ServiceVIP          ServiceTier = "vip"
)

type PerformancePoint struct {
	Month    string  `json:"month"`
	Earnings float64 `json:"earnings"`
	Projects int     `json:"projects"`
}

// CreatorMetrics is the per-creator ranking snapshot. Counters come from
// external subsystems (orders, reviews, social sync); tiers and progress are
// recomputed here on demand.
type CreatorMetrics struct {
	ID                int64              `json:"id"`
	UserID            int64              `json:"user_id"`
	Followers         int64              `json:"followers"`
	TotalEarnings     float64            `json:"total_earnings"`
	CompletedProjects int                `json:"completed_projects"`
	ResponseRate      float64            `json:"response_rate"`
	TierProgress      float64            `json:"tier_progress"`
	InfluencerTier    InfluencerTier     `json:"influencer_tier"`
	ServiceTier       ServiceTier        `json:"service_tier"`
	PerformanceSeries []PerformancePoint `json:"performance_series"`
	LastUpdated       time.Time          `json:"last_updated"`
}

func NewCreatorMetrics(userID int64) *CreatorMetrics {
	return &CreatorMetrics{
		UserID:            userID,
		InfluencerTier:    TierBronze,
		ServiceTier:       ServiceStandard,
		PerformanceSeries: []PerformancePoint{},
		LastUpdated:       time.Now(),
	}
}
