package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/brettwhite-git/opportunity-kanban/internal/board"
	"github.com/brettwhite-git/opportunity-kanban/internal/models"
)

const columnWidth = 28

var filterOrder = []struct {
	key   string
	token string
	label string
}{
	{"1", board.FilterThisMonth, "This Month"},
	{"2", board.FilterThisQuarter, "This Quarter"},
	{"3", board.FilterNextQuarter, "Next Quarter"},
	{"4", board.FilterLastQuarter, "Last Quarter"},
}

// View implements tea.Model.
func (m Model) View() tea.View {
	return tea.NewView(m.view())
}

// view renders the filtered board: a filter bar, one bordered column per
// status with visible cards, and a key help footer.
func (m Model) view() string {
	visible := make([]models.Opportunity, 0, len(m.snapshot.Opportunities))
	for _, opp := range m.snapshot.Opportunities {
		if strings.Contains(opp.CloseDateGroup, m.filter) {
			visible = append(visible, opp)
		}
	}

	groups := board.GroupByStatus(visible)
	columns := board.VisibleColumns(m.snapshot.Columns, groups)

	if len(columns) == 0 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.filterBar(),
			"",
			emptyStyle.Render("No opportunities found."),
			"",
			m.helpBar(),
		)
	}

	rendered := make([]string, 0, len(columns))
	for _, col := range columns {
		rendered = append(rendered, renderColumn(col, groups[col.ID]))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.filterBar(),
		lipgloss.JoinHorizontal(lipgloss.Top, rendered...),
		m.helpBar(),
	)
}

func (m Model) filterBar() string {
	var tabs []string
	for _, f := range filterOrder {
		label := fmt.Sprintf("[%s] %s", f.key, f.label)
		if f.token == m.filter {
			tabs = append(tabs, activeFilterStyle.Render(label))
		} else {
			tabs = append(tabs, filterStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func renderColumn(col models.StatusColumn, opportunities []models.Opportunity) string {
	header := headerStyle.Render(fmt.Sprintf("%s (%d)", col.Name, len(opportunities)))

	cards := make([]string, 0, len(opportunities)+1)
	cards = append(cards, header)
	for _, opp := range opportunities {
		cards = append(cards, renderCard(opp))
	}

	return columnStyle.Render(lipgloss.JoinVertical(lipgloss.Left, cards...))
}

func renderCard(opp models.Opportunity) string {
	probability := opp.Probability
	if probability == "" {
		probability = "0"
	}

	lines := []string{
		tranIDStyle.Render(opp.TranID),
		board.Truncate(opp.CompanyName, 30),
		fmt.Sprintf("%s  %s%%", opp.ExpectedClose, probability),
		amountStyle.Render(board.FormatCurrency(opp.ProjectedTotal)),
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) helpBar() string {
	help := "1-4: filter • q: quit"
	if m.viewer != "" {
		help += " • viewing: " + m.viewer
	}
	return helpStyle.Render(help)
}
