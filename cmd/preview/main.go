// Command preview renders the kanban board in the terminal, using the same
// snapshot pipeline the portlet embeds into dashboards.
package main

import (
	"context"
	"fmt"
	"log"

	tea "charm.land/bubbletea/v2"

	"github.com/brettwhite-git/opportunity-kanban/internal/config"
	"github.com/brettwhite-git/opportunity-kanban/internal/database"
	"github.com/brettwhite-git/opportunity-kanban/internal/logging"
	"github.com/brettwhite-git/opportunity-kanban/internal/models"
	"github.com/brettwhite-git/opportunity-kanban/internal/queries"
	"github.com/brettwhite-git/opportunity-kanban/internal/tui"
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

	ctx := context.Background()
	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	repo := database.NewOpportunityRepo(db)
	svc := queries.NewService(repo, nil)
	identity := user.EnvResolver{FallbackID: cfg.ViewerID}

	viewer, err := identity.CurrentViewer()
	if err != nil {
		log.Fatalf("Failed to resolve viewer: %v", err)
	}

	opportunities, err := svc.OpportunitiesByUser(ctx, viewer.ID)
	if err != nil {
		log.Fatalf("Failed to load opportunities: %v", err)
	}

	snapshot := models.BoardSnapshot{
		Columns:       queries.DeriveStatusColumns(opportunities),
		Opportunities: opportunities,
		UserID:        viewer.ID,
	}

	p := tea.NewProgram(tui.NewModel(snapshot, viewer.Name))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		log.Fatal(err)
	}
}
