package profile

import "creatorhub/internal/domain"

// CompletionSummary is the derived completion state returned to callers
// after every recompute.
type CompletionSummary struct {
	Sections          map[domain.Section]bool `json:"sections"`
	OverallPercentage int                     `json:"overall_percentage"`
	NextStep          domain.Section          `json:"next_step"`
}

// sectionComplete is the fixed required-field predicate per section. It
// reads canonical data only; callers never set completion flags directly.
func sectionComplete(p *domain.CreatorProfile, section domain.Section) bool {
	switch section {
	case domain.SectionPersonalInfo:
		pi := p.PersonalInfo
		return pi.FullName != "" && pi.Username != "" && pi.Bio != "" && pi.ProfileImage != ""
	case domain.SectionProfessionalInfo:
		pr := p.Professional
		return pr.Title != "" && pr.Category != "" && pr.Subcategory != "" && pr.Expertise != ""
	case domain.SectionPricing:
		return p.Pricing.Basic.Price > 0 && p.Pricing.Basic.Description != ""
	case domain.SectionDescription:
		return p.Description.Brief != "" && p.Description.Detailed != ""
	case domain.SectionGallery:
		return p.Gallery.HasContent()
	case domain.SectionSocialMedia:
		sm := p.SocialMedia
		return sm.Website != "" || sm.Instagram != "" || sm.Twitter != "" ||
			sm.Facebook != "" || sm.LinkedIn != "" || sm.YouTube != ""
	default:
		return false
	}
}

// RecomputeCompletion derives all completion flags, the overall percentage
// and the next onboarding step from canonical section data, and writes the
// completeness metric back onto the profile. Deterministic and idempotent.
func RecomputeCompletion(p *domain.CreatorProfile) CompletionSummary {
	summary := CompletionSummary{
		Sections: make(map[domain.Section]bool, len(domain.OnboardingOrder)),
		NextStep: domain.StepPublish,
	}

	complete := 0
	for _, section := range domain.OnboardingOrder {
		ok := sectionComplete(p, section)
		summary.Sections[section] = ok
		if ok {
			complete++
		}
	}
	summary.OverallPercentage = complete * 100 / len(domain.OnboardingOrder)

	for _, section := range domain.OnboardingOrder {
		if !summary.Sections[section] {
			summary.NextStep = section
			break
		}
	}

	p.Completion = summary.Sections
	p.OnboardingStep = summary.NextStep
	p.Metrics.ProfileCompleteness = summary.OverallPercentage
	return summary
}

// MissingSections evaluates publish eligibility from the predicates
// themselves, not from stored flags, so a bypass publish that forced flags
// true cannot make a later publish look eligible.
func MissingSections(p *domain.CreatorProfile) []domain.Section {
	var missing []domain.Section
	for _, section := range domain.PublishRequiredSections {
		if !sectionComplete(p, section) {
			missing = append(missing, section)
		}
	}
	return missing
}
