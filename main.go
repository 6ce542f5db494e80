package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"researchflow/config"
	"researchflow/helper"
	"researchflow/logger"
	"researchflow/metrics"
	"researchflow/repositories"
	"researchflow/router"
	"researchflow/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(logger.Config{})
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	seed, err := loadSeed(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load seed data")
	}
	for _, mismatch := range seed.VersionMismatches() {
		log.Warn().Str("detail", mismatch).Msg("current version does not match versions")
	}

	// Initialize repositories
	articleRepo := repositories.NewArticleRepository(seed)
	versionRepo := repositories.NewArticleVersionRepository(seed)
	eventRepo := repositories.NewLifecycleEventRepository(seed)
	userRepo := repositories.NewUserRepository(seed)

	// Initialize services
	articleService := services.NewArticleService(articleRepo, versionRepo, eventRepo)
	dashboardService := services.NewDashboardService(articleService, articleRepo, eventRepo)
	teamService := services.NewTeamService(userRepo)

	httpHelper, err := helper.NewHTTPHelper()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up validator")
	}

	engine, err := router.New(router.Deps{
		Config:           cfg,
		Log:              log,
		Metrics:          metrics.New(),
		Helper:           httpHelper,
		ArticleService:   articleService,
		DashboardService: dashboardService,
		TeamService:      teamService,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Int("articles", articleRepo.Count()).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	waitForShutdown(srv, log)
}

func loadSeed(cfg *config.Config) (*repositories.Seed, error) {
	if cfg.SeedFile != "" {
		return repositories.LoadSeedFile(cfg.SeedFile)
	}
	return repositories.DefaultSeed()
}

func waitForShutdown(srv *http.Server, log zerolog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info().Msg("shutting down")
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
