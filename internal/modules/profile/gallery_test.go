package profile

import (
	"testing"

	"creatorhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listPtr(items ...any) *[]any {
	l := items
	return &l
}

func TestReconcileGallery_WrapsBareURLs(t *testing.T) {
	out, err := ReconcileGallery(GalleryPayload{
		Images:         listPtr("http://x/1.jpg"),
		Videos:         listPtr(),
		PortfolioItems: listPtr(),
	})
	require.NoError(t, err)

	require.Len(t, out.Images, 1)
	assert.Equal(t, "http://x/1.jpg", out.Images[0].URL)
	assert.Equal(t, "Image 1", out.Images[0].Title)
	assert.Equal(t, 0, out.Images[0].Order)
	assert.Equal(t, []string{}, out.Images[0].Tags)

	// collections are always present, never nil
	assert.NotNil(t, out.Videos)
	assert.NotNil(t, out.Featured)
}

func TestReconcileGallery_EmptyPayloadIsRejected(t *testing.T) {
	_, err := ReconcileGallery(GalleryPayload{})
	assert.ErrorIs(t, err, ErrEmptyGalleryPayload)

	// portfolio links alone do not make the payload non-empty
	_, err = ReconcileGallery(GalleryPayload{PortfolioLinks: listPtr("http://x")})
	assert.ErrorIs(t, err, ErrEmptyGalleryPayload)
}

func TestReconcileGallery_DropsOnlyInvalidEntries(t *testing.T) {
	out, err := ReconcileGallery(GalleryPayload{
		Images: listPtr(42, true, "http://x/ok.jpg", map[string]any{"url": "http://x/2.jpg", "title": "Cover"}),
	})
	require.NoError(t, err)

	require.Len(t, out.Images, 2)
	assert.Equal(t, "http://x/ok.jpg", out.Images[0].URL)
	assert.Equal(t, "Cover", out.Images[1].Title)
	assert.Equal(t, 1, out.Images[1].Order)
}

func TestReconcileGallery_StructuredEntryKeepsExplicitOrder(t *testing.T) {
	out, err := ReconcileGallery(GalleryPayload{
		Videos: listPtr(map[string]any{"url": "http://x/v.mp4", "order": float64(5)}),
	})
	require.NoError(t, err)

	require.Len(t, out.Videos, 1)
	assert.Equal(t, 5, out.Videos[0].Order)
	assert.Equal(t, "Video 1", out.Videos[0].Title)
}

func TestReconcileGallery_PortfolioItemUpgrade(t *testing.T) {
	out, err := ReconcileGallery(GalleryPayload{
		PortfolioItems: listPtr(
			map[string]any{"title": "Campaign"},
			nil,
			"not-an-object",
			map[string]any{"id": "p-2", "title": "Reel", "isVideo": true, "videoUrl": "http://x/v.mp4", "sortOrder": float64(9)},
		),
	})
	require.NoError(t, err)

	require.Len(t, out.Featured, 2)

	first := out.Featured[0]
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "Campaign", first.Title)
	assert.Equal(t, "standard", first.PromotionType)
	assert.Equal(t, 0, first.SortOrder)

	second := out.Featured[1]
	assert.Equal(t, "p-2", second.ID)
	assert.True(t, second.IsVideo)
	assert.Equal(t, 9, second.SortOrder)
}

func TestReconcileGallery_PortfolioLinksBecomeFeatured(t *testing.T) {
	out, err := ReconcileGallery(GalleryPayload{
		Images:         listPtr(),
		PortfolioLinks: listPtr("http://x/work", 99, " "),
	})
	require.NoError(t, err)

	require.Len(t, out.Featured, 1)
	assert.Equal(t, "http://x/work", out.Featured[0].Image)
	assert.Equal(t, "link", out.Featured[0].PromotionType)
	assert.NotEmpty(t, out.Featured[0].ID)
}

func TestRepairGallery_ResetsOnlyReportedCollections(t *testing.T) {
	g := domain.EmptyGallery()
	g.Images = []domain.GalleryItem{{URL: ""}}
	g.Videos = []domain.GalleryItem{{URL: "http://x/v.mp4", Title: "Video 1"}}

	RepairGallery(&g, []string{"galleryPortfolio.images"})

	assert.Empty(t, g.Images)
	assert.Len(t, g.Videos, 1)
}

func TestRepairGallery_FiltersInvalidPortfolioItems(t *testing.T) {
	g := domain.EmptyGallery()
	g.Featured = []domain.PortfolioItem{
		{ID: "a", Title: "Valid", Image: "http://x/a.jpg"},
		{ID: "b", Title: "No image"},
		{ID: "c", Title: "Video ok", IsVideo: true, VideoURL: "http://x/c.mp4"},
	}

	RepairGallery(&g, []string{"portfolio"})

	assert.Len(t, g.Featured, 2)
	assert.Equal(t, "a", g.Featured[0].ID)
	assert.Equal(t, "c", g.Featured[1].ID)
}

func TestRepairGallery_PlaceholderWhenFilterRemovesEverything(t *testing.T) {
	g := domain.EmptyGallery()
	g.Featured = []domain.PortfolioItem{{Title: "No id or image"}}

	RepairGallery(&g, []string{"portfolio"})

	assert.Len(t, g.Featured, 1)
	assert.Equal(t, "recovery", g.Featured[0].PromotionType)
	assert.NotEmpty(t, g.Featured[0].ID)
}

func TestRepairGallery_PlaceholderWhenPathCannotBeIsolated(t *testing.T) {
	g := domain.EmptyGallery()
	g.Featured = []domain.PortfolioItem{{ID: "a", Title: "Valid", Image: "http://x/a.jpg"}}

	RepairGallery(&g, []string{"metrics.profileViews"})

	assert.Len(t, g.Featured, 1)
	assert.Equal(t, "recovery", g.Featured[0].PromotionType)
}
