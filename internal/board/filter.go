package board

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// The four date filters, in toolbar order. A record's data-cg attribute may
// carry several tokens at once; filtering is inclusive membership.
const (
	FilterThisMonth   = "THIS_MONTH"
	FilterThisQuarter = "THIS_QUARTER"
	FilterNextQuarter = "NEXT_QUARTER"
	FilterLastQuarter = "LAST_QUARTER"
)

// DefaultFilter is applied right after the board is built, before the
// document is handed back to the host.
const DefaultFilter = FilterThisMonth

type filterControl struct {
	value string
	label string
}

var filterControls = []filterControl{
	{FilterThisMonth, "This Month"},
	{FilterThisQuarter, "This Quarter"},
	{FilterNextQuarter, "Next Quarter"},
	{FilterLastQuarter, "Last Quarter"},
}

// FilterHandler returns the onclick attribute body for one filter control.
//
// The host relocates the board markup out of the document that built it, so
// function references and attached listeners do not survive — only inline
// attribute strings do. The handler is therefore fully self-contained: it is
// parameterized only by the literal token and uses nothing beyond standard
// DOM query and traversal calls available in any document. ApplyFilter is
// the behaviorally identical callable used for the initial default filter
// and anywhere handler strings are not executed.
func FilterHandler(token string) string {
	return "var f='" + token + "';" +
		"var c=document.getElementById('kanban-board-container');" +
		"var cards=c.querySelectorAll('.kanban-card');" +
		"for(var i=0;i<cards.length;i++){" +
		"cards[i].style.display=(cards[i].getAttribute('data-cg').indexOf(f)>=0)?'':'none'}" +
		"var btns=c.querySelectorAll('.kanban-filter-btn');" +
		"for(var j=0;j<btns.length;j++){" +
		"btns[j].className='kanban-filter-btn'+(btns[j].getAttribute('data-filter')===f?' active':'');" +
		"btns[j].setAttribute('aria-pressed',btns[j].getAttribute('data-filter')===f?'true':'false')}" +
		"var cols=c.querySelectorAll('.kanban-column');" +
		"for(var k=0;k<cols.length;k++){" +
		"var n=0;var cc=cols[k].querySelectorAll('.kanban-card');" +
		"for(var m=0;m<cc.length;m++){if(cc[m].style.display!=='none')n++}" +
		"cols[k].querySelector('.kanban-column-count').textContent=n;" +
		"cols[k].style.display=n>0?'':'none'}"
}

// ApplyFilter recomputes the whole board for token: card visibility by
// bucket membership, every control's active class and aria-pressed state,
// and each column's visible count and visibility. Applying the same token
// twice yields the same board, so transitions are free to re-fire.
func ApplyFilter(container *html.Node, token string) {
	for _, card := range elementsByClass(container, "kanban-card") {
		setVisible(card, strings.Contains(getAttr(card, "data-cg"), token))
	}

	for _, btn := range elementsByClass(container, "kanban-filter-btn") {
		active := getAttr(btn, "data-filter") == token
		class := "kanban-filter-btn"
		if active {
			class += " active"
		}
		setAttr(btn, "class", class)
		setAttr(btn, "aria-pressed", strconv.FormatBool(active))
	}

	for _, col := range elementsByClass(container, "kanban-column") {
		visible := 0
		for _, card := range elementsByClass(col, "kanban-card") {
			if isVisible(card) {
				visible++
			}
		}
		if count := firstByClass(col, "kanban-column-count"); count != nil {
			setText(count, strconv.Itoa(visible))
		}
		setVisible(col, visible > 0)
	}
}

// ActiveFilter reads the selected token back out of the DOM. Filter state
// lives only in attribute/class state, so it is always reconstructible by
// scanning the rendered tree.
func ActiveFilter(container *html.Node) string {
	for _, btn := range elementsByClass(container, "kanban-filter-btn") {
		if getAttr(btn, "aria-pressed") == "true" {
			return getAttr(btn, "data-filter")
		}
	}
	return ""
}

// Visibility is carried in the style attribute, matching what the inline
// handler's style.display writes serialize to.

func setVisible(n *html.Node, visible bool) {
	if visible {
		removeAttr(n, "style")
	} else {
		setAttr(n, "style", "display:none")
	}
}

func isVisible(n *html.Node) bool {
	return !strings.Contains(getAttr(n, "style"), "display:none")
}

// detailURL is the fixed record detail page; only the record id varies.
const detailURL = "/app/accounting/transactions/opprtnty.nl?id="

var numericID = regexp.MustCompile(`^\d+$`)

// NavigationURL returns the detail-page URL for a record id. Ids that are
// not purely numeric are inert: no URL, no navigation. This is the callable
// twin of the card's inline navigation handler.
func NavigationURL(id string) (string, bool) {
	if !numericID.MatchString(id) {
		return "", false
	}
	return detailURL + id, true
}

// cardNavigationHandler is the self-contained onclick body for a card:
// same numeric gate, same target URL, no named functions.
const cardNavigationHandler = "var id=this.getAttribute('data-opp-id');" +
	"if(/^\\d+$/.test(id))" +
	"(window.top||window).location.href=" +
	"'/app/accounting/transactions/opprtnty.nl?id='+id"

// stopPropagationHandler keeps the tranid link's click from bubbling into
// the card's own navigation handler.
const stopPropagationHandler = "event.stopPropagation()"
