package board

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/brettwhite-git/opportunity-kanban/internal/models"
)

// pageWithSnapshot parses a document shaped like the portlet fragment after
// the host has placed it in a page: mount container with loading
// placeholder plus the inline data script.
func pageWithSnapshot(t *testing.T, snapshot models.BoardSnapshot) *html.Node {
	t.Helper()
	data, err := json.Marshal(snapshot)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	page := `<html><head></head><body>` +
		`<div id="kanban-board-container"><div id="kanban-loading">Loading board...</div></div>` +
		`<script>window.KANBAN_DATA = ` + string(data) + `;</script>` +
		`</body></html>`
	return parsePage(t, page)
}

func parsePage(t *testing.T, page string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		t.Fatalf("parse page: %v", err)
	}
	return doc
}

func render(t *testing.T, n *html.Node) string {
	t.Helper()
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func testSnapshot() models.BoardSnapshot {
	return models.BoardSnapshot{
		Columns: []models.StatusColumn{
			{ID: "10", Name: "Qualification"},
			{ID: "11", Name: "Proposal"},
			{ID: "12", Name: "Negotiation"},
		},
		Opportunities: []models.Opportunity{
			{ID: "100", TranID: "OPP100", EntityStatus: "10", CompanyName: "Acme",
				Probability: "25", ExpectedClose: "8/20/2026", ProjectedTotal: "150000",
				CloseDateGroup: "THIS_MONTH THIS_QUARTER"},
			{ID: "101", TranID: "OPP101", EntityStatus: "10", CompanyName: "Globex",
				CloseDateGroup: "NEXT_QUARTER"},
			{ID: "102", TranID: "OPP102", EntityStatus: "12", CompanyName: "Initech",
				CloseDateGroup: "THIS_MONTH"},
		},
		UserID: 7,
	}
}

func TestHydrateBuildsVisibleColumnsOnly(t *testing.T) {
	doc := pageWithSnapshot(t, testSnapshot())
	Hydrate(doc)

	container := findByID(doc, ContainerID)
	columns := elementsByClass(container, "kanban-column")
	if len(columns) != 2 {
		t.Fatalf("got %d columns, want 2 (the empty status 11 is never materialized)", len(columns))
	}
	if getAttr(columns[0], "data-status") != "10" || getAttr(columns[1], "data-status") != "12" {
		t.Errorf("column order = %s, %s; want 10, 12",
			getAttr(columns[0], "data-status"), getAttr(columns[1], "data-status"))
	}

	cards := elementsByClass(container, "kanban-card")
	if len(cards) != 3 {
		t.Errorf("got %d cards, want 3", len(cards))
	}
	if len(elementsByClass(columns[0], "kanban-card")) != 2 {
		t.Errorf("column 10 should hold 2 cards")
	}
}

func TestHydrateToolbarOrder(t *testing.T) {
	doc := pageWithSnapshot(t, testSnapshot())
	Hydrate(doc)

	container := findByID(doc, ContainerID)
	buttons := elementsByClass(container, "kanban-filter-btn")
	if len(buttons) != 4 {
		t.Fatalf("got %d filter controls, want 4", len(buttons))
	}

	wantLabels := []string{"This Month", "This Quarter", "Next Quarter", "Last Quarter"}
	wantTokens := []string{"THIS_MONTH", "THIS_QUARTER", "NEXT_QUARTER", "LAST_QUARTER"}
	for i, btn := range buttons {
		if textContent(btn) != wantLabels[i] {
			t.Errorf("control %d label = %q, want %q", i, textContent(btn), wantLabels[i])
		}
		if getAttr(btn, "data-filter") != wantTokens[i] {
			t.Errorf("control %d token = %q, want %q", i, getAttr(btn, "data-filter"), wantTokens[i])
		}
		if getAttr(btn, "role") != "button" {
			t.Errorf("control %d should carry role=button", i)
		}
		if getAttr(btn, "onclick") != FilterHandler(wantTokens[i]) {
			t.Errorf("control %d onclick should be the self-contained handler for its token", i)
		}
	}
}

func TestHydrateAppliesDefaultFilter(t *testing.T) {
	doc := pageWithSnapshot(t, testSnapshot())
	Hydrate(doc)

	container := findByID(doc, ContainerID)
	if got := ActiveFilter(container); got != FilterThisMonth {
		t.Errorf("active filter after build = %q, want THIS_MONTH", got)
	}

	// OPP101 is NEXT_QUARTER only, so it starts hidden
	for _, card := range elementsByClass(container, "kanban-card") {
		wantVisible := getAttr(card, "data-opp-id") != "101"
		if isVisible(card) != wantVisible {
			t.Errorf("card %s visibility = %v, want %v",
				getAttr(card, "data-opp-id"), isVisible(card), wantVisible)
		}
	}
}

func TestHydrateEmptyBoard(t *testing.T) {
	doc := pageWithSnapshot(t, models.BoardSnapshot{UserID: 7})
	Hydrate(doc)

	container := findByID(doc, ContainerID)
	if len(elementsByClass(container, "kanban-empty")) != 1 {
		t.Error("empty snapshot should render the empty-state message")
	}
	if len(elementsByClass(container, "kanban-toolbar")) != 0 {
		t.Error("empty board should not render a toolbar")
	}
}

func TestHydrateMissingSnapshotLeavesPlaceholder(t *testing.T) {
	doc := parsePage(t, `<html><body><div id="kanban-board-container">`+
		`<div id="kanban-loading">Loading board...</div></div></body></html>`)
	Hydrate(doc)

	if findByID(doc, "kanban-loading") == nil {
		t.Error("loading placeholder should remain when the data blob is absent")
	}
}

func TestHydrateMissingContainer(t *testing.T) {
	doc := pageWithSnapshot(t, testSnapshot())
	container := findByID(doc, ContainerID)
	container.Parent.RemoveChild(container)

	// Must log and abort without panicking
	Hydrate(doc)
}

func TestHydrateIdempotent(t *testing.T) {
	doc := pageWithSnapshot(t, testSnapshot())
	Hydrate(doc)
	first := render(t, doc)

	Hydrate(doc)
	second := render(t, doc)

	if first != second {
		t.Error("second hydrate of the same document should be a no-op")
	}
}

func TestBuildCardFields(t *testing.T) {
	snap := models.BoardSnapshot{
		Columns: []models.StatusColumn{{ID: "10", Name: "Qualification"}},
		Opportunities: []models.Opportunity{{
			ID: "100", TranID: "OPP100", EntityStatus: "10",
			CompanyName:    "A company name that runs well past thirty characters",
			ExpectedClose:  "9/1/2026",
			ProjectedTotal: "2500000",
			CloseDateGroup: "THIS_MONTH",
		}},
		UserID: 7,
	}
	doc := pageWithSnapshot(t, snap)
	Hydrate(doc)

	container := findByID(doc, ContainerID)
	card := firstByClass(container, "kanban-card")
	if card == nil {
		t.Fatal("no card rendered")
	}

	if getAttr(card, "data-opp-id") != "100" || getAttr(card, "data-cg") != "THIS_MONTH" {
		t.Errorf("card data attributes wrong: %v", card.Attr)
	}
	if !strings.Contains(getAttr(card, "onclick"), detailURL) {
		t.Error("card onclick should navigate to the detail page")
	}
	if !strings.Contains(getAttr(card, "onclick"), `^\d+$`) {
		t.Error("card onclick should gate navigation on a numeric id")
	}

	link := firstByClass(card, "kanban-card-tranid")
	if textContent(link) != "OPP100" {
		t.Errorf("link text = %q", textContent(link))
	}
	if getAttr(link, "href") != detailURL+"100" {
		t.Errorf("link href = %q", getAttr(link, "href"))
	}
	if getAttr(link, "target") != "_blank" {
		t.Error("link should open a new browsing context")
	}
	if getAttr(link, "onclick") != stopPropagationHandler {
		t.Error("link click must not bubble into the card handler")
	}

	if got := textContent(firstByClass(card, "kanban-card-probability")); got != "0%" {
		t.Errorf("absent probability should render 0%%, got %q", got)
	}

	company := textContent(firstByClass(card, "kanban-card-company"))
	if len([]rune(company)) != 30 || !strings.HasSuffix(company, "…") {
		t.Errorf("company = %q, want 30 chars ending in ellipsis", company)
	}

	if got := textContent(firstByClass(card, "kanban-card-date")); got != "9/1/2026" {
		t.Errorf("date = %q", got)
	}
	if got := textContent(firstByClass(card, "kanban-card-amount")); got != "$2.5M" {
		t.Errorf("amount = %q", got)
	}
}

func TestBuildCardWithoutID(t *testing.T) {
	snap := models.BoardSnapshot{
		Columns:       []models.StatusColumn{{ID: "10", Name: "Qualification"}},
		Opportunities: []models.Opportunity{{TranID: "OPP?", EntityStatus: "10", CloseDateGroup: "OTHER"}},
	}
	doc := pageWithSnapshot(t, snap)
	Hydrate(doc)

	card := firstByClass(findByID(doc, ContainerID), "kanban-card")
	if getAttr(card, "onclick") != "" {
		t.Error("card without an id should carry no navigation handler")
	}
	link := firstByClass(card, "kanban-card-tranid")
	if getAttr(link, "href") != "" {
		t.Error("link without an id should carry no href")
	}
}

// Record data is inserted as text content, so markup in field values stays
// inert in the rendered tree.
func TestBuildCardEscapesRecordData(t *testing.T) {
	snap := models.BoardSnapshot{
		Columns: []models.StatusColumn{{ID: "10", Name: "Qualification"}},
		Opportunities: []models.Opportunity{{
			ID: "100", TranID: "OPP100", EntityStatus: "10",
			CompanyName:    `<img src=x onerror=alert(1)>`,
			CloseDateGroup: "THIS_MONTH",
		}},
	}
	doc := pageWithSnapshot(t, snap)
	Hydrate(doc)

	out := render(t, findByID(doc, ContainerID))
	if strings.Contains(out, "<img") {
		t.Error("company name markup should be escaped, not parsed")
	}
}
