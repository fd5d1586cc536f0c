package tier

import "creatorhub/internal/domain"

// RefreshRequest carries externally-owned counters. Rates are validated
// here; out-of-range values are a caller bug, not something to repair.
type RefreshRequest struct {
	Followers         int64                     `json:"followers" validate:"min=0"`
	TotalEarnings     float64                   `json:"totalEarnings" validate:"min=0"`
	CompletedProjects int                       `json:"completedProjects" validate:"min=0"`
	ResponseRate      float64                   `json:"responseRate" validate:"min=0,max=100"`
	PerformanceSeries []domain.PerformancePoint `json:"performanceSeries"`
}
