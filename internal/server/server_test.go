package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/brettwhite-git/opportunity-kanban/internal/models"
	"github.com/brettwhite-git/opportunity-kanban/internal/portlet"
	"github.com/brettwhite-git/opportunity-kanban/internal/user"
)

type stubService struct {
	opps []models.Opportunity
}

func (s stubService) OpportunitiesByUser(ctx context.Context, userID int64) ([]models.Opportunity, error) {
	return s.opps, nil
}

type stubIdentity struct{}

func (stubIdentity) CurrentViewer() (user.Viewer, error) {
	return user.Viewer{ID: 7, Name: "demo"}, nil
}

func testServer() *Server {
	svc := stubService{opps: []models.Opportunity{
		{
			ID:               "42",
			TranID:           "OPP42",
			CompanyName:      "Acme Industrial",
			EntityStatus:     "10",
			EntityStatusText: "Qualification",
			Probability:      "50",
			ExpectedClose:    "8/20/2026",
			CloseDateGroup:   "THIS_MONTH THIS_QUARTER",
			ProjectedTotal:   "125000",
		},
	}}
	clock := func() time.Time { return time.UnixMilli(1700000000000) }
	renderer := portlet.NewRenderer(svc, stubIdentity{}, StaticAssets{BaseURL: "/static"}, clock)
	return New(renderer, ":0")
}

func get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	srv := httptest.NewServer(testServer().Handler())
	t.Cleanup(srv.Close)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp, string(body)
}

func TestIndexRedirectsToBoard(t *testing.T) {
	resp, _ := get(t, "/")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusFound)
	}
	if loc := resp.Header.Get("Location"); loc != "/board" {
		t.Errorf("Location = %q, want /board", loc)
	}
}

func TestPortletServesRawFragment(t *testing.T) {
	resp, body := get(t, "/portlet")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}

	for _, want := range []string{
		"window.KANBAN_DATA",
		`"userId":7`,
		"kanban-board-container",
		"Loading board...",
		"/static/portlet/kanban-client.js?_cb=1700000000000",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("fragment missing %q", want)
		}
	}

	// The fragment is inert until the client script runs.
	if strings.Contains(body, `class="kanban-card"`) {
		t.Error("fragment should not contain built cards")
	}
}

func TestBoardServesHydratedPage(t *testing.T) {
	resp, body := get(t, "/board")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	for _, want := range []string{
		"<title>Opportunity Kanban</title>",
		`data-opp-id="42"`,
		"OPP42",
		"Acme Industrial",
		"$125K",
		"kanban-filter-btn",
		"data-kanban-initialized",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}

	// Interactivity must survive as inline attributes.
	if !strings.Contains(body, "onclick=") {
		t.Error("hydrated page should carry inline handlers")
	}
}

func TestStaticAssetsURL(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"/static", "/portlet/app.js", "/static/portlet/app.js"},
		{"/static/", "portlet/app.js", "/static/portlet/app.js"},
		{"https://cdn.example.com/assets", "/app.js", "https://cdn.example.com/assets/app.js"},
	}
	for _, tt := range tests {
		got, err := StaticAssets{BaseURL: tt.base}.URL(tt.path)
		if err != nil {
			t.Fatalf("URL(%q): %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("URL(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
		}
	}

	if _, err := (StaticAssets{BaseURL: "/static"}).URL(""); err == nil {
		t.Error("empty path should error")
	}
}
