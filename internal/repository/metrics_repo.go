package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"creatorhub/internal/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MetricsRepository struct {
	db *gorm.DB
}

func NewMetricsRepository(db *gorm.DB) *MetricsRepository {
	return &MetricsRepository{db: db}
}

type creatorMetricsModel struct {
	ID                int64          `gorm:"column:id;primaryKey"`
	UserID            int64          `gorm:"column:user_id;uniqueIndex"`
	Followers         int64          `gorm:"column:followers"`
	TotalEarnings     float64        `gorm:"column:total_earnings"`
	CompletedProjects int            `gorm:"column:completed_projects"`
	ResponseRate      float64        `gorm:"column:response_rate"`
	TierProgress      float64        `gorm:"column:tier_progress"`
	InfluencerTier    string         `gorm:"column:influencer_tier"`
	ServiceTier       string         `gorm:"column:service_tier"`
	PerformanceSeries datatypes.JSON `gorm:"column:performance_series"`
	LastUpdated       time.Time      `gorm:"column:last_updated"`
}

func (creatorMetricsModel) TableName() string { return "creator_metrics" }

// MetricsModel is exported for AutoMigrate in cmd entrypoints.
func MetricsModel() any { return &creatorMetricsModel{} }

func toMetricsModel(m *domain.CreatorMetrics) (creatorMetricsModel, error) {
	series, err := json.Marshal(m.PerformanceSeries)
	if err != nil {
		return creatorMetricsModel{}, err
	}
	return creatorMetricsModel{
		ID:                m.ID,
		UserID:            m.UserID,
		Followers:         m.Followers,
		TotalEarnings:     m.TotalEarnings,
		CompletedProjects: m.CompletedProjects,
		ResponseRate:      m.ResponseRate,
		TierProgress:      m.TierProgress,
		InfluencerTier:    string(m.InfluencerTier),
		ServiceTier:       string(m.ServiceTier),
		PerformanceSeries: datatypes.JSON(series),
		LastUpdated:       m.LastUpdated,
	}, nil
}

func toDomainMetrics(m creatorMetricsModel) (*domain.CreatorMetrics, error) {
	out := &domain.CreatorMetrics{
		ID:                m.ID,
		UserID:            m.UserID,
		Followers:         m.Followers,
		TotalEarnings:     m.TotalEarnings,
		CompletedProjects: m.CompletedProjects,
		ResponseRate:      m.ResponseRate,
		TierProgress:      m.TierProgress,
		InfluencerTier:    domain.InfluencerTier(m.InfluencerTier),
		ServiceTier:       domain.ServiceTier(m.ServiceTier),
		PerformanceSeries: []domain.PerformancePoint{},
		LastUpdated:       m.LastUpdated,
	}
	if len(m.PerformanceSeries) > 0 {
		if err := json.Unmarshal(m.PerformanceSeries, &out.PerformanceSeries); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *MetricsRepository) FindByUser(ctx context.Context, userID int64) (*domain.CreatorMetrics, error) {
	var m creatorMetricsModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, mapStoreError(tx.Error)
	}
	return toDomainMetrics(m)
}

func (r *MetricsRepository) Upsert(ctx context.Context, m *domain.CreatorMetrics) error {
	m.LastUpdated = time.Now()
	model, err := toMetricsModel(m)
	if err != nil {
		return err
	}

	var tx *gorm.DB
	if model.ID == 0 {
		tx = r.db.WithContext(ctx).Create(&model)
	} else {
		tx = r.db.WithContext(ctx).Save(&model)
	}
	if tx.Error != nil {
		return mapStoreError(tx.Error)
	}
	m.ID = model.ID
	return nil
}
