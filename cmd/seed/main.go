package main

import (
	"context"
	"fmt"
	"log"

	"creatorhub/internal/config"
	"creatorhub/internal/database"
	"creatorhub/internal/modules/profile"
	"creatorhub/internal/modules/tier"
	jwtsvc "creatorhub/internal/pkg/jwt"
	"creatorhub/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a local database with demo creators and prints dev credentials:
// a bearer token per creator and the INTERNAL_TOKEN_HASH matching the demo
// internal token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(repository.ProfileModel(), repository.MetricsModel()); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM creator_metrics")
	db.Exec("DELETE FROM creator_profiles")

	ctx := context.Background()
	profileRepo := repository.NewProfileRepository(db)
	metricsRepo := repository.NewMetricsRepository(db)
	profiles := profile.NewService(profile.NewStore(profileRepo), nil)
	tiers := tier.NewService(metricsRepo)

	log.Println("Creating demo creators...")

	// Fully onboarded, published creator.
	aliya := int64(1001)
	if _, _, err := profiles.GetOrCreate(ctx, aliya); err != nil {
		log.Fatal(err)
	}
	mustApply(profiles, ctx, aliya, "personalInfo", map[string]any{
		"fullName":     "Aliya Bekova",
		"username":     "aliya.codes",
		"bio":          "Tech content creator covering backend engineering.",
		"profileImage": "https://cdn.creatorhub.dev/avatars/aliya.png",
		"location":     "Almaty",
		"languages":    []any{"en", "kk", "ru"},
	})
	mustApply(profiles, ctx, aliya, "professionalInfo", map[string]any{
		"title":       "Backend Engineering Creator",
		"category":    "Technology",
		"subcategory": "Software",
		"expertise":   "Go, distributed systems",
		"skills":      []any{"Go", map[string]any{"skill": "PostgreSQL", "level": "expert"}},
	})
	mustApply(profiles, ctx, aliya, "description", map[string]any{
		"brief":    "Deep technical walkthroughs for developer audiences.",
		"detailed": "Weekly long-form videos and articles on backend systems, reviewed by practitioners.",
	})
	mustApply(profiles, ctx, aliya, "socialMedia", map[string]any{
		"youtube":   "youtube.com/@aliyacodes",
		"instagram": "instagram.com/aliya.codes",
		"followers": map[string]any{"youtube": 68000, "instagram": "21000"},
	})
	mustApply(profiles, ctx, aliya, "pricing", map[string]any{
		"basic": map[string]any{
			"title":       "Sponsored mention",
			"description": "60 second integrated mention in one video",
			"price":       450,
			"leadTime":    "7",
		},
		"premium": map[string]any{
			"title":       "Dedicated review",
			"description": "Full dedicated product review video",
			"price":       2400,
			"leadTime":    21,
		},
	})
	if _, _, err := profiles.SaveGallery(ctx, aliya, profile.GalleryPayload{
		Images: ptr([]any{"https://cdn.creatorhub.dev/work/aliya-1.jpg"}),
		Videos: ptr([]any{map[string]any{
			"url":   "https://cdn.creatorhub.dev/work/aliya-review.mp4",
			"title": "Sample dedicated review",
		}}),
	}); err != nil {
		log.Fatal(err)
	}
	if _, err := profiles.Publish(ctx, aliya, profile.PublishOptions{}); err != nil {
		log.Fatal(err)
	}
	if _, err := tiers.Refresh(ctx, aliya, tier.RefreshInput{
		Followers:         89000,
		TotalEarnings:     15400,
		CompletedProjects: 54,
		ResponseRate:      93,
	}); err != nil {
		log.Fatal(err)
	}

	// Draft creator mid-onboarding.
	marat := int64(1002)
	if _, _, err := profiles.GetOrCreate(ctx, marat); err != nil {
		log.Fatal(err)
	}
	mustApply(profiles, ctx, marat, "personalInfo", map[string]any{
		"fullName":     "Marat Iskakov",
		"username":     "marat_films",
		"bio":          "Short-form travel films.",
		"profileImage": "https://cdn.creatorhub.dev/avatars/marat.png",
	})

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	for _, id := range []int64{aliya, marat} {
		token, err := j.GenerateToken(id, "creator")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("creator %d bearer token:\n  %s\n", id, token)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("dev-internal-token"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("INTERNAL_TOKEN_HASH for X-Internal-Token=dev-internal-token:\n  %s\n", hash)

	var count int64
	db.Raw("SELECT COUNT(*) FROM creator_profiles").Scan(&count)
	log.Printf("Seed complete: %d profiles", count)
}

func mustApply(s *profile.Service, ctx context.Context, userID int64, section string, raw map[string]any) {
	if _, _, err := s.ApplySection(ctx, userID, section, raw); err != nil {
		log.Fatalf("apply %s for %d: %v", section, userID, err)
	}
}

func ptr(v []any) *[]any { return &v }
