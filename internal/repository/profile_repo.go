package repository

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"creatorhub/internal/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxGalleryItems = 100

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,30}$`)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) DB() *gorm.DB { return r.db }

type creatorProfileModel struct {
	ID     int64  `gorm:"column:id;primaryKey"`
	UserID int64  `gorm:"column:user_id;uniqueIndex"`
	Status string `gorm:"column:status"`

	// Lowercased copy of personalInfo.username, backing the case-insensitive
	// uniqueness constraint on both postgres and sqlite.
	Username *string `gorm:"column:username;uniqueIndex"`

	OnboardingStep   string         `gorm:"column:onboarding_step"`
	PersonalInfo     datatypes.JSON `gorm:"column:personal_info"`
	ProfessionalInfo datatypes.JSON `gorm:"column:professional_info"`
	Pricing          datatypes.JSON `gorm:"column:pricing"`
	Description      datatypes.JSON `gorm:"column:description"`
	SocialMedia      datatypes.JSON `gorm:"column:social_media"`
	Gallery          datatypes.JSON `gorm:"column:gallery_portfolio"`
	Completion       datatypes.JSON `gorm:"column:completion_status"`
	Metrics          datatypes.JSON `gorm:"column:metrics"`

	ProfileURL  *string    `gorm:"column:profile_url"`
	Rating      float64    `gorm:"column:rating"`
	ReviewCount int        `gorm:"column:review_count"`
	PublishedAt *time.Time `gorm:"column:published_at"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (creatorProfileModel) TableName() string { return "creator_profiles" }

// ProfileModel is exported for AutoMigrate in cmd entrypoints.
func ProfileModel() any { return &creatorProfileModel{} }

func toProfileModel(p *domain.CreatorProfile) (creatorProfileModel, error) {
	m := creatorProfileModel{
		ID:             p.ID,
		UserID:         p.UserID,
		Status:         string(p.Status),
		OnboardingStep: string(p.OnboardingStep),
		Rating:         p.Rating,
		ReviewCount:    p.ReviewCount,
		PublishedAt:    p.PublishedAt,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if u := strings.TrimSpace(p.PersonalInfo.Username); u != "" {
		lower := strings.ToLower(u)
		m.Username = &lower
	}
	if p.ProfileURL != "" {
		url := p.ProfileURL
		m.ProfileURL = &url
	}

	sections := []struct {
		dst *datatypes.JSON
		src any
	}{
		{&m.PersonalInfo, p.PersonalInfo},
		{&m.ProfessionalInfo, p.Professional},
		{&m.Pricing, p.Pricing},
		{&m.Description, p.Description},
		{&m.SocialMedia, p.SocialMedia},
		{&m.Gallery, p.Gallery},
		{&m.Completion, p.Completion},
		{&m.Metrics, p.Metrics},
	}
	for _, s := range sections {
		raw, err := json.Marshal(s.src)
		if err != nil {
			return m, err
		}
		*s.dst = datatypes.JSON(raw)
	}
	return m, nil
}

func toDomainProfile(m creatorProfileModel) (*domain.CreatorProfile, error) {
	p := domain.NewCreatorProfile(m.UserID)
	p.ID = m.ID
	p.Status = domain.ProfileStatus(m.Status)
	p.OnboardingStep = domain.Section(m.OnboardingStep)
	p.Rating = m.Rating
	p.ReviewCount = m.ReviewCount
	p.PublishedAt = m.PublishedAt
	p.CreatedAt = m.CreatedAt
	p.UpdatedAt = m.UpdatedAt
	if m.ProfileURL != nil {
		p.ProfileURL = *m.ProfileURL
	}

	sections := []struct {
		src datatypes.JSON
		dst any
	}{
		{m.PersonalInfo, &p.PersonalInfo},
		{m.ProfessionalInfo, &p.Professional},
		{m.Pricing, &p.Pricing},
		{m.Description, &p.Description},
		{m.SocialMedia, &p.SocialMedia},
		{m.Gallery, &p.Gallery},
		{m.Completion, &p.Completion},
		{m.Metrics, &p.Metrics},
	}
	for _, s := range sections {
		if len(s.src) == 0 {
			continue
		}
		if err := json.Unmarshal(s.src, s.dst); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// validateDocument mirrors the store schema constraints and reports the
// offending paths before the write is attempted, so shape failures are
// repairable per collection instead of opaque driver errors.
func validateDocument(p *domain.CreatorProfile) []string {
	var paths []string

	if u := strings.TrimSpace(p.PersonalInfo.Username); u != "" && !usernamePattern.MatchString(u) {
		paths = append(paths, "personalInfo.username")
	}

	imagesOK := len(p.Gallery.Images) <= maxGalleryItems
	for _, it := range p.Gallery.Images {
		if strings.TrimSpace(it.URL) == "" {
			imagesOK = false
			break
		}
	}
	if !imagesOK {
		paths = append(paths, "galleryPortfolio.images")
	}

	videosOK := len(p.Gallery.Videos) <= maxGalleryItems
	for _, it := range p.Gallery.Videos {
		if strings.TrimSpace(it.URL) == "" {
			videosOK = false
			break
		}
	}
	if !videosOK {
		paths = append(paths, "galleryPortfolio.videos")
	}

	featuredOK := len(p.Gallery.Featured) <= maxGalleryItems
	for _, it := range p.Gallery.Featured {
		if it.ID == "" || it.Title == "" {
			featuredOK = false
			break
		}
		if it.Image == "" && !(it.IsVideo && it.VideoURL != "") {
			featuredOK = false
			break
		}
	}
	if !featuredOK {
		paths = append(paths, "portfolio")
	}

	return paths
}

func (r *ProfileRepository) FindByUser(ctx context.Context, userID int64) (*domain.CreatorProfile, error) {
	var m creatorProfileModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, mapStoreError(tx.Error)
	}
	return toDomainProfile(m)
}

// FindByUserForUpdate takes a row lock so concurrent section updates for the
// same user serialize instead of racing the read-modify-write cycle. Must run
// inside WithUserLock. SQLite has a single writer and no FOR UPDATE, so the
// clause only applies on postgres.
func (r *ProfileRepository) FindByUserForUpdate(ctx context.Context, userID int64) (*domain.CreatorProfile, error) {
	q := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var m creatorProfileModel
	tx := q.Where("user_id = ?", userID).First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, mapStoreError(tx.Error)
	}
	return toDomainProfile(m)
}

// FindByIdentifier resolves either a username (case-insensitive) or a numeric
// profile id.
func (r *ProfileRepository) FindByIdentifier(ctx context.Context, identifier string) (*domain.CreatorProfile, error) {
	identifier = strings.TrimSpace(identifier)

	var m creatorProfileModel
	tx := r.db.WithContext(ctx).Where("username = ?", strings.ToLower(identifier)).First(&m)
	if tx.Error == nil {
		return toDomainProfile(m)
	}
	if !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, mapStoreError(tx.Error)
	}

	id, err := strconv.ParseInt(identifier, 10, 64)
	if err != nil {
		return nil, nil
	}
	tx = r.db.WithContext(ctx).First(&m, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, mapStoreError(tx.Error)
	}
	return toDomainProfile(m)
}

// UsernameTaken reports whether another profile already claims the username.
func (r *ProfileRepository) UsernameTaken(ctx context.Context, username string, excludeUserID int64) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).
		Model(&creatorProfileModel{}).
		Where("username = ? AND user_id <> ?", strings.ToLower(strings.TrimSpace(username)), excludeUserID).
		Count(&count)
	if tx.Error != nil {
		return false, mapStoreError(tx.Error)
	}
	return count > 0, nil
}

// Upsert persists the document. Shape violations come back as
// *ValidationError with the offending paths; the uniqueness race on username
// is still caught by the DB constraint and surfaces as ErrDuplicate.
func (r *ProfileRepository) Upsert(ctx context.Context, p *domain.CreatorProfile) error {
	if paths := validateDocument(p); len(paths) > 0 {
		return &ValidationError{Paths: paths}
	}

	p.UpdatedAt = time.Now()
	m, err := toProfileModel(p)
	if err != nil {
		return err
	}

	var tx *gorm.DB
	if m.ID == 0 {
		tx = r.db.WithContext(ctx).Create(&m)
	} else {
		tx = r.db.WithContext(ctx).Save(&m)
	}
	if tx.Error != nil {
		return mapStoreError(tx.Error)
	}
	p.ID = m.ID
	return nil
}

func (r *ProfileRepository) Delete(ctx context.Context, userID int64) error {
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&creatorProfileModel{})
	return mapStoreError(tx.Error)
}

// WithUserLock runs fn in a transaction whose repository sees the same tx
// handle, so FindByUserForUpdate + Upsert execute as one serialized unit per
// user row.
func (r *ProfileRepository) WithUserLock(ctx context.Context, fn func(tx *ProfileRepository) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewProfileRepository(tx))
	})
	return mapStoreError(err)
}
