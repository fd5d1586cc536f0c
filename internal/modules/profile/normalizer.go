package profile

import (
	"strconv"
	"strings"

	"creatorhub/internal/domain"
)

// Section normalization repairs loosely-typed client payloads into the
// canonical shape instead of rejecting them: wrong-typed lists become empty
// lists, missing scalars get typed zero defaults, numeric strings are parsed
// best effort. Normalizing an already-canonical payload is a no-op.

// CanonicalSection resolves a client-supplied section name, including the
// legacy "basicInfo" alias for professional info.
func CanonicalSection(name string) (domain.Section, bool) {
	switch name {
	case string(domain.SectionPersonalInfo):
		return domain.SectionPersonalInfo, true
	case string(domain.SectionProfessionalInfo), "basicInfo":
		return domain.SectionProfessionalInfo, true
	case string(domain.SectionDescription):
		return domain.SectionDescription, true
	case string(domain.SectionSocialMedia):
		return domain.SectionSocialMedia, true
	case string(domain.SectionPricing):
		return domain.SectionPricing, true
	case string(domain.SectionGallery):
		return domain.SectionGallery, true
	default:
		return "", false
	}
}

func asString(raw map[string]any, key string) string {
	if s, ok := raw[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// asFloat parses numbers submitted as strings best effort; unparsable
// values degrade to 0.
func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func asInt(v any) int {
	return int(asFloat(v))
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asList(v any) []any {
	l, _ := v.([]any)
	return l
}

func asStringList(v any) []string {
	out := []string{}
	for _, item := range asList(v) {
		if s, ok := item.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func NormalizePersonalInfo(raw map[string]any) domain.PersonalInfo {
	return domain.PersonalInfo{
		FullName:     asString(raw, "fullName"),
		Username:     asString(raw, "username"),
		Bio:          asString(raw, "bio"),
		ProfileImage: asString(raw, "profileImage"),
		Location:     asString(raw, "location"),
		Languages:    asStringList(raw["languages"]),
	}
}

func NormalizeProfessionalInfo(raw map[string]any) domain.ProfessionalInfo {
	info := domain.ProfessionalInfo{
		Title:          asString(raw, "title"),
		Category:       asString(raw, "category"),
		Subcategory:    asString(raw, "subcategory"),
		Expertise:      asString(raw, "expertise"),
		Skills:         []domain.Skill{},
		Experience:     asString(raw, "experience"),
		Certifications: asStringList(raw["certifications"]),
	}
	for _, entry := range asList(raw["skills"]) {
		switch v := entry.(type) {
		case string:
			// Bare skill strings are upgraded to structured entries.
			if name := strings.TrimSpace(v); name != "" {
				info.Skills = append(info.Skills, domain.Skill{Skill: name, Level: "intermediate"})
			}
		case map[string]any:
			skill := domain.Skill{
				Skill: asString(v, "skill"),
				Level: asString(v, "level"),
			}
			if skill.Skill == "" {
				continue
			}
			if skill.Level == "" {
				skill.Level = "intermediate"
			}
			info.Skills = append(info.Skills, skill)
		}
	}
	return info
}

func normalizePackage(v any) domain.Package {
	raw, _ := v.(map[string]any)
	if raw == nil {
		raw = map[string]any{}
	}
	return domain.Package{
		Title:       asString(raw, "title"),
		Description: asString(raw, "description"),
		Price:       asFloat(raw["price"]),
		LeadTime:    asInt(raw["leadTime"]),
		Features:    asStringList(raw["features"]),
	}
}

func NormalizePricing(raw map[string]any) domain.Pricing {
	return domain.Pricing{
		Basic:    normalizePackage(raw["basic"]),
		Standard: normalizePackage(raw["standard"]),
		Premium:  normalizePackage(raw["premium"]),
	}
}

func NormalizeDescription(raw map[string]any) domain.Description {
	desc := domain.Description{
		Brief:    asString(raw, "brief"),
		Detailed: asString(raw, "detailed"),
		FAQ:      []domain.FAQ{},
	}
	for _, entry := range asList(raw["faq"]) {
		item, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		faq := domain.FAQ{
			Question: asString(item, "question"),
			Answer:   asString(item, "answer"),
		}
		if faq.Question == "" {
			continue
		}
		desc.FAQ = append(desc.FAQ, faq)
	}
	return desc
}

func NormalizeSocialMedia(raw map[string]any) domain.SocialMedia {
	sm := domain.SocialMedia{
		Website:   asString(raw, "website"),
		Instagram: asString(raw, "instagram"),
		Twitter:   asString(raw, "twitter"),
		Facebook:  asString(raw, "facebook"),
		LinkedIn:  asString(raw, "linkedin"),
		YouTube:   asString(raw, "youtube"),
		Followers: map[string]int64{},
	}
	if counts, ok := raw["followers"].(map[string]any); ok {
		for platform, v := range counts {
			sm.Followers[platform] = int64(asFloat(v))
		}
	}
	return sm
}
