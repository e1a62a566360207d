// Package board is the client-side renderer: it rebuilds the interactive
// kanban DOM from the snapshot embedded in the page, exactly once per
// document. Interactivity is expressed only through self-contained inline
// handler strings, because the host relocates the markup out of the
// document context that built it.
package board

import (
	"encoding/json"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/brettwhite-git/opportunity-kanban/internal/models"
)

const (
	// ContainerID is the mount point the fragment builder emits.
	ContainerID = "kanban-board-container"

	// snapshotGlobal is the well-known global the fragment assigns the
	// serialized board snapshot to.
	snapshotGlobal = "window.KANBAN_DATA"

	// initMarker is the checked-and-set guard that keeps a second
	// evaluation in the same document from rebuilding the board.
	initMarker = "data-kanban-initialized"
)

// Hydrate locates the embedded snapshot and mount container in doc and
// builds the board in place. Failure modes deliberately stay quiet on the
// page: a missing snapshot or container is an upstream deployment/ordering
// problem, so it is logged and the loading placeholder is left alone.
// Hydrating the same document twice is a no-op.
func Hydrate(doc *html.Node) {
	snapshot, ok := extractSnapshot(doc)
	if !ok {
		slog.Error("kanban data not found in document")
		return
	}

	container := findByID(doc, ContainerID)
	if container == nil {
		slog.Error("kanban mount container not found", "id", ContainerID)
		return
	}
	if getAttr(container, initMarker) != "" {
		return
	}
	setAttr(container, initMarker, "true")

	Build(container, snapshot)
}

// extractSnapshot pulls the serialized snapshot back out of the inline
// script that carries it, undoing the closing-tag escaping applied when it
// was embedded.
func extractSnapshot(doc *html.Node) (*models.BoardSnapshot, bool) {
	var raw string
	walk(doc, func(n *html.Node) {
		if raw != "" || n.Type != html.ElementNode || n.Data != "script" {
			return
		}
		text := textContent(n)
		if strings.Contains(text, snapshotGlobal) {
			raw = text
		}
	})
	if raw == "" {
		return nil, false
	}

	_, payload, found := strings.Cut(raw, "=")
	if !found {
		return nil, false
	}
	payload = strings.TrimSuffix(strings.TrimSpace(payload), ";")
	payload = strings.ReplaceAll(payload, `<\/`, "</")

	var snapshot models.BoardSnapshot
	if err := json.Unmarshal([]byte(payload), &snapshot); err != nil {
		slog.Error("failed to decode kanban data", "error", err)
		return nil, false
	}
	return &snapshot, true
}

// Build constructs the board DOM inside container from the snapshot:
// filter toolbar, one column per status that has records, cards in record
// order, with the default filter already applied.
func Build(container *html.Node, snapshot *models.BoardSnapshot) {
	removeChildren(container)

	// Group ALL opportunities by status, not just visible ones; filtering
	// only ever hides cards, it never regroups them.
	groups := GroupByStatus(snapshot.Opportunities)
	visible := VisibleColumns(snapshot.Columns, groups)

	if len(visible) == 0 {
		empty := elem("div")
		setAttr(empty, "class", "kanban-empty")
		setText(empty, "No opportunities found.")
		container.AppendChild(empty)
		return
	}

	container.AppendChild(buildToolbar())

	columnsDiv := elem("div")
	setAttr(columnsDiv, "class", "kanban-columns")
	for _, col := range visible {
		columnsDiv.AppendChild(buildColumn(col, groups[col.ID]))
	}
	container.AppendChild(columnsDiv)

	// The board loads already filtered to the default bucket
	ApplyFilter(container, DefaultFilter)
}

// GroupByStatus buckets records by status code, preserving input order
// within each bucket.
func GroupByStatus(opportunities []models.Opportunity) map[string][]models.Opportunity {
	groups := map[string][]models.Opportunity{}
	for _, opp := range opportunities {
		groups[opp.EntityStatus] = append(groups[opp.EntityStatus], opp)
	}
	return groups
}

// VisibleColumns keeps the provided column order, dropping columns with no
// records entirely.
func VisibleColumns(columns []models.StatusColumn, groups map[string][]models.Opportunity) []models.StatusColumn {
	visible := []models.StatusColumn{}
	for _, col := range columns {
		if len(groups[col.ID]) > 0 {
			visible = append(visible, col)
		}
	}
	return visible
}

func buildToolbar() *html.Node {
	toolbar := elem("div")
	setAttr(toolbar, "class", "kanban-toolbar")

	// divs rather than buttons so the host's form handling leaves them alone
	for _, control := range filterControls {
		btn := elem("div")
		class := "kanban-filter-btn"
		pressed := "false"
		if control.value == DefaultFilter {
			class += " active"
			pressed = "true"
		}
		setAttr(btn, "class", class)
		setAttr(btn, "role", "button")
		setAttr(btn, "tabindex", "0")
		setAttr(btn, "aria-pressed", pressed)
		setAttr(btn, "data-filter", control.value)
		setAttr(btn, "onclick", FilterHandler(control.value))
		setText(btn, control.label)
		toolbar.AppendChild(btn)
	}
	return toolbar
}

func buildColumn(col models.StatusColumn, opportunities []models.Opportunity) *html.Node {
	colDiv := elem("div")
	setAttr(colDiv, "class", "kanban-column")
	setAttr(colDiv, "data-status", col.ID)

	header := elem("div")
	setAttr(header, "class", "kanban-column-header")

	title := elem("span")
	setAttr(title, "class", "kanban-column-title")
	setText(title, col.Name)

	count := elem("span")
	setAttr(count, "class", "kanban-column-count")
	setText(count, strconv.Itoa(len(opportunities)))

	header.AppendChild(title)
	header.AppendChild(count)

	body := elem("div")
	setAttr(body, "class", "kanban-column-body")
	for _, opp := range opportunities {
		body.AppendChild(buildCard(opp))
	}

	colDiv.AppendChild(header)
	colDiv.AppendChild(body)
	return colDiv
}

// buildCard renders one record. Every text-bearing field goes through
// setText, so record data can never introduce markup on this side; the only
// markup-construction concern lives in the fragment builder's snapshot
// serialization.
func buildCard(opp models.Opportunity) *html.Node {
	card := elem("div")
	setAttr(card, "class", "kanban-card")
	setAttr(card, "data-opp-id", opp.ID)
	setAttr(card, "data-cg", opp.CloseDateGroup)

	header := elem("div")
	setAttr(header, "class", "kanban-card-header")

	tranid := elem("a")
	setAttr(tranid, "class", "kanban-card-tranid")
	setText(tranid, opp.TranID)
	if opp.ID != "" {
		setAttr(tranid, "href", detailURL+url.QueryEscape(opp.ID))
		setAttr(tranid, "target", "_blank")
		setAttr(tranid, "onclick", stopPropagationHandler)
	}

	probability := elem("span")
	setAttr(probability, "class", "kanban-card-probability")
	prob := opp.Probability
	if prob == "" {
		prob = "0"
	}
	setText(probability, prob+"%")

	header.AppendChild(tranid)
	header.AppendChild(probability)

	company := elem("div")
	setAttr(company, "class", "kanban-card-company")
	setText(company, Truncate(opp.CompanyName, 30))

	footer := elem("div")
	setAttr(footer, "class", "kanban-card-footer")

	date := elem("span")
	setAttr(date, "class", "kanban-card-date")
	setText(date, opp.ExpectedClose)

	amount := elem("span")
	setAttr(amount, "class", "kanban-card-amount")
	setText(amount, FormatCurrency(opp.ProjectedTotal))

	footer.AppendChild(date)
	footer.AppendChild(amount)

	card.AppendChild(header)
	card.AppendChild(company)
	card.AppendChild(footer)

	if opp.ID != "" {
		setAttr(card, "onclick", cardNavigationHandler)
	}
	return card
}
