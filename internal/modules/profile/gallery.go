package profile

import (
	"fmt"
	"strings"

	"creatorhub/internal/domain"

	"github.com/google/uuid"
)

// GalleryPayload carries the raw gallery submission. Pointer slices
// distinguish an absent collection from an explicitly empty one; submitting
// none of images/videos/portfolio is the single hard-validation case.
type GalleryPayload struct {
	Images         *[]any
	Videos         *[]any
	PortfolioLinks *[]any
	PortfolioItems *[]any
}

// ReconcileGallery turns a heterogeneous gallery submission into the
// canonical three-collection shape. Entries may be bare URL strings or
// structured objects; anything else is dropped. Individual items are
// repaired field by field rather than rejected, so no unrelated content is
// lost.
func ReconcileGallery(in GalleryPayload) (domain.GalleryPortfolio, error) {
	if in.Images == nil && in.Videos == nil && in.PortfolioItems == nil {
		return domain.GalleryPortfolio{}, ErrEmptyGalleryPayload
	}

	out := domain.EmptyGallery()
	if in.Images != nil {
		out.Images = reconcileMediaItems(*in.Images, "Image")
	}
	if in.Videos != nil {
		out.Videos = reconcileMediaItems(*in.Videos, "Video")
	}
	if in.PortfolioLinks != nil {
		for _, entry := range *in.PortfolioLinks {
			link, ok := entry.(string)
			if !ok || strings.TrimSpace(link) == "" {
				continue
			}
			out.Featured = append(out.Featured, domain.PortfolioItem{
				ID:            uuid.NewString(),
				Title:         fmt.Sprintf("Portfolio link %d", len(out.Featured)+1),
				Image:         strings.TrimSpace(link),
				PromotionType: "link",
				SortOrder:     len(out.Featured),
			})
		}
	}
	if in.PortfolioItems != nil {
		for i, entry := range *in.PortfolioItems {
			item, ok := upgradePortfolioItem(entry, len(out.Featured), i)
			if !ok {
				continue
			}
			out.Featured = append(out.Featured, item)
		}
	}
	return out, nil
}

// reconcileMediaItems accepts bare URL strings and structured objects;
// entries that are neither are dropped silently.
func reconcileMediaItems(entries []any, kind string) []domain.GalleryItem {
	out := []domain.GalleryItem{}
	for _, entry := range entries {
		switch v := entry.(type) {
		case string:
			out = append(out, domain.GalleryItem{
				URL:   strings.TrimSpace(v),
				Title: fmt.Sprintf("%s %d", kind, len(out)+1),
				Tags:  []string{},
				Order: len(out),
			})
		case map[string]any:
			item := domain.GalleryItem{
				URL:         asString(v, "url"),
				Title:       asString(v, "title"),
				Description: asString(v, "description"),
				Tags:        asStringList(v["tags"]),
				Order:       len(out),
			}
			if item.Title == "" {
				item.Title = fmt.Sprintf("%s %d", kind, len(out)+1)
			}
			if _, ok := v["order"]; ok {
				item.Order = asInt(v["order"])
			}
			out = append(out, item)
		}
	}
	return out
}

// upgradePortfolioItem is identity preserving: every required field is
// defaulted individually; the item is dropped only when the input itself is
// not an object.
func upgradePortfolioItem(entry any, sortOrder, position int) (domain.PortfolioItem, bool) {
	raw, ok := entry.(map[string]any)
	if !ok || raw == nil {
		return domain.PortfolioItem{}, false
	}

	item := domain.PortfolioItem{
		ID:             asString(raw, "id"),
		Title:          asString(raw, "title"),
		Image:          asString(raw, "image"),
		Category:       asString(raw, "category"),
		Client:         asString(raw, "client"),
		Description:    asString(raw, "description"),
		IsVideo:        asBool(raw["isVideo"]),
		VideoURL:       asString(raw, "videoUrl"),
		PromotionType:  asString(raw, "promotionType"),
		ClientFeedback: asString(raw, "clientFeedback"),
		ProjectDate:    asString(raw, "projectDate"),
		SortOrder:      sortOrder,
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Title == "" {
		item.Title = fmt.Sprintf("Portfolio item %d", position+1)
	}
	if item.PromotionType == "" {
		item.PromotionType = "standard"
	}
	if _, ok := raw["sortOrder"]; ok {
		item.SortOrder = asInt(raw["sortOrder"])
	}
	return item, true
}

// recoveryPortfolioItem is the last rung of the repair ladder: rather than
// failing the whole request, persist one auditable placeholder entry.
func recoveryPortfolioItem() domain.PortfolioItem {
	return domain.PortfolioItem{
		ID:            uuid.NewString(),
		Title:         "Recovered portfolio",
		Image:         "/assets/portfolio-placeholder.png",
		PromotionType: "recovery",
	}
}

type galleryRepair struct {
	path  string
	apply func(g *domain.GalleryPortfolio)
}

// galleryRepairs maps store-reported paths to targeted repairs, tried in
// order. Kept small and data driven so each rung is testable on its own.
var galleryRepairs = []galleryRepair{
	{"gallery.images", func(g *domain.GalleryPortfolio) { g.Images = []domain.GalleryItem{} }},
	{"gallery.videos", func(g *domain.GalleryPortfolio) { g.Videos = []domain.GalleryItem{} }},
	{"galleryPortfolio.images", func(g *domain.GalleryPortfolio) { g.Images = []domain.GalleryItem{} }},
	{"galleryPortfolio.videos", func(g *domain.GalleryPortfolio) { g.Videos = []domain.GalleryItem{} }},
	{"galleryPortfolio.featured", func(g *domain.GalleryPortfolio) { g.Featured = []domain.PortfolioItem{} }},
	{"portfolio", repairPortfolio},
}

func repairPortfolio(g *domain.GalleryPortfolio) {
	kept := []domain.PortfolioItem{}
	for _, item := range g.Featured {
		if item.ID == "" || item.Title == "" {
			continue
		}
		if item.Image == "" && !(item.IsVideo && item.VideoURL != "") {
			continue
		}
		kept = append(kept, item)
	}
	if len(kept) == 0 {
		kept = []domain.PortfolioItem{recoveryPortfolioItem()}
	}
	g.Featured = kept
}

// RepairGallery applies the repair matching each rejected path. When no rung
// matches, the offending field cannot be isolated and the whole featured set
// degrades to the single recovery placeholder.
func RepairGallery(g *domain.GalleryPortfolio, paths []string) {
	applied := false
	for _, path := range paths {
		for _, repair := range galleryRepairs {
			if strings.HasPrefix(path, repair.path) {
				repair.apply(g)
				applied = true
				break
			}
		}
	}
	if !applied {
		g.Featured = []domain.PortfolioItem{recoveryPortfolioItem()}
	}
}
