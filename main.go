package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/brettwhite-git/opportunity-kanban/internal/config"
	"github.com/brettwhite-git/opportunity-kanban/internal/database"
	"github.com/brettwhite-git/opportunity-kanban/internal/logging"
	"github.com/brettwhite-git/opportunity-kanban/internal/portlet"
	"github.com/brettwhite-git/opportunity-kanban/internal/queries"
	"github.com/brettwhite-git/opportunity-kanban/internal/server"
	"github.com/brettwhite-git/opportunity-kanban/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.LogPath); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	db, err := database.InitDB(context.Background(), cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	repo := database.NewOpportunityRepo(db)
	svc := queries.NewService(repo, nil)
	identity := user.EnvResolver{FallbackID: cfg.ViewerID}
	assets := server.StaticAssets{BaseURL: cfg.AssetBaseURL}

	renderer := portlet.NewRenderer(svc, identity, assets, nil)
	srv := server.New(renderer, cfg.ListenAddr)

	slog.Info("starting board server", "addr", cfg.ListenAddr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
