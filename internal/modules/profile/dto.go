package profile

import "creatorhub/internal/domain"

// GalleryRequest mirrors the raw gallery submission. Pointer slices keep
// the absent-vs-empty distinction the reconciler needs.
type GalleryRequest struct {
	Images         *[]any `json:"images"`
	Videos         *[]any `json:"videos"`
	PortfolioLinks *[]any `json:"portfolioLinks"`
	Portfolio      *[]any `json:"portfolio"`
}

func (r GalleryRequest) payload() GalleryPayload {
	return GalleryPayload{
		Images:         r.Images,
		Videos:         r.Videos,
		PortfolioLinks: r.PortfolioLinks,
		PortfolioItems: r.Portfolio,
	}
}

type PublishRequest struct {
	Username string `json:"username" validate:"omitempty,min=3,max=30"`
	Bypass   bool   `json:"bypass"`
}

// ProfileResponse is the canonical profile plus derived status returned by
// every lifecycle endpoint.
type ProfileResponse struct {
	Profile    *domain.CreatorProfile `json:"profile"`
	Completion CompletionSummary      `json:"completion"`
	Created    bool                   `json:"created,omitempty"`
}
