// Package tui is a terminal preview of the kanban board. It renders the
// same snapshot the portlet embeds, with the same grouping, filtering, and
// formatting rules, so board behavior can be checked without a browser.
package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/brettwhite-git/opportunity-kanban/internal/board"
	"github.com/brettwhite-git/opportunity-kanban/internal/models"
)

// filterKeys maps number keys to bucket tokens, in toolbar order.
var filterKeys = map[string]string{
	"1": board.FilterThisMonth,
	"2": board.FilterThisQuarter,
	"3": board.FilterNextQuarter,
	"4": board.FilterLastQuarter,
}

type Model struct {
	snapshot models.BoardSnapshot
	viewer   string
	filter   string
	width    int
	height   int
}

var _ tea.Model = Model{}

// NewModel builds the preview over an already-loaded snapshot. viewer is
// the display name of the user whose pipeline is shown.
func NewModel(snapshot models.BoardSnapshot, viewer string) Model {
	return Model{
		snapshot: snapshot,
		viewer:   viewer,
		filter:   board.DefaultFilter,
		width:    120,
		height:   40,
	}
}

// Init implements tea.Model. The snapshot is loaded before the program
// starts, so there is no startup command.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		key := msg.String()
		if token, ok := filterKeys[key]; ok {
			m.filter = token
			return m, nil
		}
		switch key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}
