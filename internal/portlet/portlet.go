// Package portlet builds the server-rendered kanban dashboard fragment: an
// inline style block, an empty mount container, the serialized board
// snapshot, and a cache-busted reference to the client board script.
package portlet

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/brettwhite-git/opportunity-kanban/internal/models"
	"github.com/brettwhite-git/opportunity-kanban/internal/queries"
	"github.com/brettwhite-git/opportunity-kanban/internal/user"
)

// Portlet is the mutable render target handed in by the host container.
// Render populates both fields and nothing else.
type Portlet struct {
	Title string
	HTML  string
}

// AssetResolver resolves a logical file path to a servable URL. The host
// platform owns hosting and versioning; this is its narrow contract.
type AssetResolver interface {
	URL(path string) (string, error)
}

const (
	portletTitle = "Opportunity Kanban"

	// ClientScriptPath is the logical path of the client board script
	ClientScriptPath = "/portlet/kanban-client.js"

	// errorHTML replaces the whole fragment when the render fails; no
	// partial board is ever emitted.
	errorHTML = `<div style="padding:20px;color:#c00;">Error loading kanban board. Check script logs.</div>`
)

// Renderer assembles the board fragment for the current viewer.
type Renderer struct {
	queries  queries.Service
	identity user.Resolver
	assets   AssetResolver
	now      func() time.Time
}

// NewRenderer creates a portlet renderer. A nil clock uses time.Now.
func NewRenderer(svc queries.Service, identity user.Resolver, assets AssetResolver, clock func() time.Time) *Renderer {
	if clock == nil {
		clock = time.Now
	}
	return &Renderer{queries: svc, identity: identity, assets: assets, now: clock}
}

// Render populates the portlet. The title is always set; on any failure the
// fragment is replaced wholesale by a fixed error message and the cause is
// logged for operators. No error escapes this boundary.
func (r *Renderer) Render(ctx context.Context, p *Portlet) {
	p.Title = portletTitle

	html, err := r.buildBoard(ctx)
	if err != nil {
		slog.Error("portlet render failed", "error", err)
		p.HTML = errorHTML
		return
	}
	p.HTML = html
}

func (r *Renderer) buildBoard(ctx context.Context) (string, error) {
	viewer, err := r.identity.CurrentViewer()
	if err != nil {
		return "", err
	}

	opportunities, err := r.queries.OpportunitiesByUser(ctx, viewer.ID)
	if err != nil {
		return "", err
	}
	columns := queries.DeriveStatusColumns(opportunities)

	snapshot := models.BoardSnapshot{
		Columns:       columns,
		Opportunities: opportunities,
		UserID:        viewer.ID,
	}

	clientURL, err := r.assets.URL(ClientScriptPath)
	if err != nil {
		return "", err
	}

	return buildHTML(snapshot, clientURL, r.now().UnixMilli())
}

// buildHTML assembles the fragment. The snapshot rides in a well-known
// global so the client script can rebuild the board in whatever document
// the host relocates the markup into.
func buildHTML(snapshot models.BoardSnapshot, clientURL string, cacheBust int64) (string, error) {
	safeData, err := marshalSnapshot(snapshot)
	if err != nil {
		return "", err
	}

	sep := "?"
	if strings.Contains(clientURL, "?") {
		sep = "&"
	}

	return strings.Join([]string{
		"<style>" + boardStyles + "</style>",
		`<div id="kanban-board-container">`,
		`<div id="kanban-loading" style="padding:40px;text-align:center;color:#888;">Loading board...</div>`,
		"</div>",
		"<script>window.KANBAN_DATA = " + safeData + ";</script>",
		`<script src="` + clientURL + sep + "_cb=" + strconv.FormatInt(cacheBust, 10) + `"></script>`,
	}, "\n"), nil
}

// marshalSnapshot serializes the snapshot for embedding in an inline script
// block. `</` is rewritten to `<\/` so untrusted text inside field values
// (a company name containing "</script>") cannot close the script element
// or inject sibling markup.
func marshalSnapshot(snapshot models.BoardSnapshot) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(snapshot); err != nil {
		return "", err
	}
	data := strings.TrimRight(buf.String(), "\n")
	return strings.ReplaceAll(data, "</", `<\/`), nil
}
