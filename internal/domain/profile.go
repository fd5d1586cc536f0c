package domain

import "time"

type ProfileStatus string

const (
	StatusDraft     ProfileStatus = "draft"
	StatusPublished ProfileStatus = "published"
	StatusSuspended ProfileStatus = "suspended"
)

// Section names a profile sub-document. The values double as the keys of
// CreatorProfile.Completion and as the :section path parameter on the API.
type Section string

const (
	SectionPersonalInfo     Section = "personalInfo"
	SectionProfessionalInfo Section = "professionalInfo"
	SectionDescription      Section = "description"
	SectionSocialMedia      Section = "socialMedia"
	SectionPricing          Section = "pricing"
	SectionGallery          Section = "galleryPortfolio"

	// StepPublish is not a section; it is the terminal onboarding step
	// reported once every section is complete.
	StepPublish Section = "publish"
)

// OnboardingOrder is the canonical sequence used to derive the "resume here"
// step. It is a hint for the caller, not authoritative for completion.
var OnboardingOrder = []Section{
	SectionPersonalInfo,
	SectionProfessionalInfo,
	SectionDescription,
	SectionSocialMedia,
	SectionPricing,
	SectionGallery,
}

// PublishRequiredSections must all be complete before a profile may be
// published without the bypass flag.
var PublishRequiredSections = []Section{
	SectionPersonalInfo,
	SectionProfessionalInfo,
	SectionPricing,
	SectionGallery,
}

type PersonalInfo struct {
	FullName     string   `json:"fullName"`
	Username     string   `json:"username"`
	Bio          string   `json:"bio"`
	ProfileImage string   `json:"profileImage"`
	Location     string   `json:"location"`
	Languages    []string `json:"languages"`
}

type Skill struct {
	Skill string `json:"skill"`
	Level string `json:"level"`
}

type ProfessionalInfo struct {
	Title          string   `json:"title"`
	Category       string   `json:"category"`
	Subcategory    string   `json:"subcategory"`
	Expertise      string   `json:"expertise"`
	Skills         []Skill  `json:"skills"`
	Experience     string   `json:"experience"`
	Certifications []string `json:"certifications"`
}

type Package struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	LeadTime    int      `json:"leadTime"`
	Features    []string `json:"features"`
}

type Pricing struct {
	Basic    Package `json:"basic"`
	Standard Package `json:"standard"`
	Premium  Package `json:"premium"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Description struct {
	Brief    string `json:"brief"`
	Detailed string `json:"detailed"`
	FAQ      []FAQ  `json:"faq"`
}

type SocialMedia struct {
	Website   string           `json:"website"`
	Instagram string           `json:"instagram"`
	Twitter   string           `json:"twitter"`
	Facebook  string           `json:"facebook"`
	LinkedIn  string           `json:"linkedin"`
	YouTube   string           `json:"youtube"`
	Followers map[string]int64 `json:"followers"`
}

// TotalFollowers sums the per-platform follower counters.
func (s SocialMedia) TotalFollowers() int64 {
	var total int64
	for _, n := range s.Followers {
		total += n
	}
	return total
}

type GalleryItem struct {
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Order       int      `json:"order"`
}

type PortfolioItem struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Image          string `json:"image"`
	Category       string `json:"category"`
	Client         string `json:"client"`
	Description    string `json:"description"`
	IsVideo        bool   `json:"isVideo"`
	VideoURL       string `json:"videoUrl"`
	PromotionType  string `json:"promotionType"`
	ClientFeedback string `json:"clientFeedback"`
	ProjectDate    string `json:"projectDate"`
	SortOrder      int    `json:"sortOrder"`
}

// GalleryPortfolio always carries all three collections; absent input
// normalizes to empty slices, never nil.
type GalleryPortfolio struct {
	Images   []GalleryItem   `json:"images"`
	Videos   []GalleryItem   `json:"videos"`
	Featured []PortfolioItem `json:"featured"`
}

// HasContent reports whether at least one image, video or portfolio entry is
// present, which is what gallery completion means.
func (g GalleryPortfolio) HasContent() bool {
	return len(g.Images) > 0 || len(g.Videos) > 0 || len(g.Featured) > 0
}

func EmptyGallery() GalleryPortfolio {
	return GalleryPortfolio{
		Images:   []GalleryItem{},
		Videos:   []GalleryItem{},
		Featured: []PortfolioItem{},
	}
}

type Ratings struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// ProfileMetrics is the per-profile counter block. ProfileCompleteness is
// owned by completion recompute; the rest is written by external subsystems
// and only read here.
type ProfileMetrics struct {
	ProfileViews        int64   `json:"profileViews"`
	ProfileCompleteness int     `json:"profileCompleteness"`
	AverageResponseTime float64 `json:"averageResponseTime"`
	Ratings             Ratings `json:"ratings"`
	ProjectsCompleted   int     `json:"projectsCompleted"`
}

type CreatorProfile struct {
	ID             int64            `json:"id"`
	UserID         int64            `json:"user_id"`
	Status         ProfileStatus    `json:"status"`
	OnboardingStep Section          `json:"onboarding_step"`
	PersonalInfo   PersonalInfo     `json:"personal_info"`
	Professional   ProfessionalInfo `json:"professional_info"`
	Pricing        Pricing          `json:"pricing"`
	Description    Description      `json:"description"`
	SocialMedia    SocialMedia      `json:"social_media"`
	Gallery        GalleryPortfolio `json:"gallery_portfolio"`
	Completion     map[Section]bool `json:"completion_status"`
	Metrics        ProfileMetrics   `json:"metrics"`
	ProfileURL     string           `json:"profile_url,omitempty"`
	Rating         float64          `json:"rating"`
	ReviewCount    int              `json:"review_count"`
	PublishedAt    *time.Time       `json:"published_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// NewCreatorProfile returns an empty draft for the user. Collections start
// empty rather than nil so persisted documents never carry null sections.
func NewCreatorProfile(userID int64) *CreatorProfile {
	now := time.Now()
	p := &CreatorProfile{
		UserID:         userID,
		Status:         StatusDraft,
		OnboardingStep: SectionPersonalInfo,
		PersonalInfo:   PersonalInfo{Languages: []string{}},
		Professional:   ProfessionalInfo{Skills: []Skill{}, Certifications: []string{}},
		Pricing:        EmptyPricing(),
		Description:    Description{FAQ: []FAQ{}},
		SocialMedia:    SocialMedia{Followers: map[string]int64{}},
		Gallery:        EmptyGallery(),
		Completion:     map[Section]bool{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, s := range OnboardingOrder {
		p.Completion[s] = false
	}
	return p
}

func EmptyPricing() Pricing {
	return Pricing{
		Basic:    Package{Features: []string{}},
		Standard: Package{Features: []string{}},
		Premium:  Package{Features: []string{}},
	}
}
