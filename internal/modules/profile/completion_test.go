package profile

import (
	"testing"

	"creatorhub/internal/domain"

	"github.com/stretchr/testify/assert"
)

// completeProfile builds a profile satisfying every section predicate.
func completeProfile(userID int64) *domain.CreatorProfile {
	p := domain.NewCreatorProfile(userID)
	p.PersonalInfo = domain.PersonalInfo{
		FullName:     "Aliya Bekova",
		Username:     "aliya.codes",
		Bio:          "Tech creator",
		ProfileImage: "https://cdn/x.png",
		Languages:    []string{},
	}
	p.Professional = domain.ProfessionalInfo{
		Title:          "Backend Creator",
		Category:       "Technology",
		Subcategory:    "Software",
		Expertise:      "Go",
		Skills:         []domain.Skill{},
		Certifications: []string{},
	}
	p.Pricing = domain.EmptyPricing()
	p.Pricing.Basic.Price = 450
	p.Pricing.Basic.Description = "60 second mention"
	p.Description = domain.Description{Brief: "Short", Detailed: "Long", FAQ: []domain.FAQ{}}
	p.SocialMedia = domain.SocialMedia{Instagram: "instagram.com/aliya", Followers: map[string]int64{}}
	p.Gallery = domain.EmptyGallery()
	p.Gallery.Images = []domain.GalleryItem{{URL: "https://cdn/1.jpg", Title: "Image 1", Tags: []string{}}}
	return p
}

func TestRecomputeCompletion_AllComplete(t *testing.T) {
	p := completeProfile(1)

	summary := RecomputeCompletion(p)

	assert.Equal(t, 100, summary.OverallPercentage)
	assert.Equal(t, domain.StepPublish, summary.NextStep)
	for _, section := range domain.OnboardingOrder {
		assert.True(t, summary.Sections[section], string(section))
	}
	assert.Equal(t, 100, p.Metrics.ProfileCompleteness)
	assert.Equal(t, domain.StepPublish, p.OnboardingStep)
}

func TestRecomputeCompletion_EmptyProfile(t *testing.T) {
	p := domain.NewCreatorProfile(1)

	summary := RecomputeCompletion(p)

	assert.Equal(t, 0, summary.OverallPercentage)
	assert.Equal(t, domain.SectionPersonalInfo, summary.NextStep)
	for _, section := range domain.OnboardingOrder {
		assert.False(t, summary.Sections[section], string(section))
	}
}

func TestRecomputeCompletion_NextStepIsFirstIncomplete(t *testing.T) {
	p := completeProfile(1)
	p.Pricing.Basic.Price = 0

	summary := RecomputeCompletion(p)

	assert.Equal(t, domain.SectionPricing, summary.NextStep)
	assert.False(t, summary.Sections[domain.SectionPricing])
	// 5 of 6 sections complete, floored
	assert.Equal(t, 83, summary.OverallPercentage)
}

func TestRecomputeCompletion_Idempotent(t *testing.T) {
	p := completeProfile(1)
	p.SocialMedia.Instagram = ""

	first := RecomputeCompletion(p)
	second := RecomputeCompletion(p)

	assert.Equal(t, first, second)
}

func TestRecomputeCompletion_FlagsAreDerivedNotTrusted(t *testing.T) {
	p := domain.NewCreatorProfile(1)
	// hand-edited flags are overwritten by the recompute
	p.Completion[domain.SectionPricing] = true

	summary := RecomputeCompletion(p)

	assert.False(t, summary.Sections[domain.SectionPricing])
	assert.False(t, p.Completion[domain.SectionPricing])
}

func TestMissingSections_ReportsOnlyPublishRequired(t *testing.T) {
	p := completeProfile(1)
	p.Pricing.Basic.Description = ""
	p.Gallery = domain.EmptyGallery()
	// description is incomplete too, but not required for publish
	p.Description.Brief = ""

	missing := MissingSections(p)

	assert.Equal(t, []domain.Section{domain.SectionPricing, domain.SectionGallery}, missing)
}

func TestMissingSections_IgnoresForcedFlags(t *testing.T) {
	p := domain.NewCreatorProfile(1)
	for _, section := range domain.OnboardingOrder {
		p.Completion[section] = true
	}

	missing := MissingSections(p)

	assert.Len(t, missing, len(domain.PublishRequiredSections))
}
