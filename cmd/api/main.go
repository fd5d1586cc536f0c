package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"creatorhub/internal/config"
	"creatorhub/internal/database"
	"creatorhub/internal/middleware"
	"creatorhub/internal/modules/events"
	"creatorhub/internal/modules/profile"
	"creatorhub/internal/modules/tier"
	jwtsvc "creatorhub/internal/pkg/jwt"
	"creatorhub/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(repository.ProfileModel(), repository.MetricsModel()); err != nil {
		log.Fatal(err)
	}

	profileRepo := repository.NewProfileRepository(db)
	metricsRepo := repository.NewMetricsRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := events.NewHub()
	defer hub.Close()
	eventsHandler := events.NewHandler(hub)

	profileService := profile.NewService(profile.NewStore(profileRepo), hub)
	profileHandler := profile.NewHandler(profileService)

	tierService := tier.NewService(metricsRepo)
	tierHandler := tier.NewHandler(tierService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		profileHandler.RegisterPublicRoutes(v1)

		// protected (creator lifecycle)
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j), middleware.CreatorOnly())
		{
			profileHandler.RegisterRoutes(protected)
			tierHandler.RegisterRoutes(protected)
			eventsHandler.RegisterRoutes(protected)
		}

		// service-to-service moderation hooks
		internal := v1.Group("/internal")
		internal.Use(middleware.InternalAuth())
		{
			profileHandler.RegisterInternalRoutes(internal)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
