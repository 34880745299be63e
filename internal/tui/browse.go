// Package tui implements the interactive lead browser.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hardhatlabs/hardhat/internal/categories"
	"github.com/hardhatlabs/hardhat/internal/cli"
	"github.com/hardhatlabs/hardhat/internal/model"
	"github.com/hardhatlabs/hardhat/internal/pipeline"
	"github.com/hardhatlabs/hardhat/internal/service"
)

// toggleSavedMsg reports the outcome of a bookmark toggle. The in-memory set
// only changes when the write succeeded.
type toggleSavedMsg struct {
	err   error
	id    string
	saved bool
}

// Model is the bubbletea model for the lead browser. All list state flows
// through the pipeline: the model owns only the ViewState inputs and the
// computed view.
type Model struct {
	now      func() time.Time
	store    service.Storage
	err      error
	saved    model.BookmarkSet
	leads    []model.Lead
	tokens   []string
	taxonomy categories.Taxonomy
	search   textinput.Model
	view     pipeline.View
	pager    *pipeline.Pager
	sortKey  pipeline.SortKey
	minValue float64
	catIndex int
	cursor   int
	width    int

	searching bool
	savedOnly bool
}

// NewModel creates a browser over the given snapshot.
func NewModel(store service.Storage, leads []model.Lead, saved model.BookmarkSet, tax categories.Taxonomy, minValue float64) Model {
	search := textinput.New()
	search.Placeholder = "type, description or street..."
	search.Prompt = "/ "
	search.CharLimit = 80

	m := Model{
		store:    store,
		leads:    leads,
		saved:    saved,
		taxonomy: tax,
		tokens:   tax.Tokens(),
		search:   search,
		pager:    pipeline.NewPager(pipeline.DefaultWindowSize, pipeline.WindowStep),
		sortKey:  pipeline.SortByCost,
		minValue: minValue,
		now:      time.Now,
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case toggleSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		if msg.saved {
			m.saved[msg.id] = true
		} else {
			delete(m.saved, msg.id)
		}
		if m.savedOnly {
			// Membership is a filter input here, so the view changes.
			m.recompute()
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	if m.search.Value() != before {
		// Search text is a filter predicate: any change resets the window.
		m.pager.Reset()
		m.cursor = 0
		m.recompute()
	}
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.view.Visible)-1 {
			m.cursor++
		}

	case "tab":
		m.catIndex = (m.catIndex + 1) % len(m.tokens)
		m.pager.Reset()
		m.cursor = 0
		m.recompute()

	case "shift+tab":
		m.catIndex = (m.catIndex - 1 + len(m.tokens)) % len(m.tokens)
		m.pager.Reset()
		m.cursor = 0
		m.recompute()

	case "o":
		// Sort-key changes deliberately keep the window size: the operator
		// is re-ranking the same result set, not asking a new question.
		if m.sortKey == pipeline.SortByCost {
			m.sortKey = pipeline.SortByDate
		} else {
			m.sortKey = pipeline.SortByCost
		}
		m.recompute()

	case "f":
		m.savedOnly = !m.savedOnly
		m.pager.Reset()
		m.cursor = 0
		m.recompute()

	case "m":
		if len(m.view.Visible) < m.view.Total {
			m.pager.Grow()
			m.recompute()
		}

	case "s", "enter":
		if m.cursor < len(m.view.Visible) {
			return m, m.toggleCmd(m.view.Visible[m.cursor].ID)
		}
	}

	return m, nil
}

func (m Model) toggleCmd(id string) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		saved, err := store.ToggleBookmark(context.Background(), id)
		return toggleSavedMsg{id: id, saved: saved, err: err}
	}
}

// recompute reruns the whole pipeline from current inputs. Cheap enough to
// do on every change for snapshot-sized data.
func (m *Model) recompute() {
	m.view = pipeline.Compute(m.leads, pipeline.ViewState{
		Search:     m.search.Value(),
		Category:   m.tokens[m.catIndex],
		SortKey:    m.sortKey,
		MinValue:   m.minValue,
		WindowSize: m.pager.Size(),
		SavedOnly:  m.savedOnly,
	}, m.saved)

	if m.cursor >= len(m.view.Visible) {
		m.cursor = len(m.view.Visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(cli.TitleStyle.Render("👷 hardhat — permit leads"))
	b.WriteString("\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine())
	b.WriteString("\n\n")

	now := m.now()
	for i, lead := range m.view.Visible {
		b.WriteString(m.renderRow(lead, i == m.cursor, now))
		b.WriteString("\n")
	}

	if len(m.view.Visible) < m.view.Total {
		b.WriteString(cli.SubtleStyle.Render(
			fmt.Sprintf("… %d more — press m to load", m.view.Total-len(m.view.Visible))))
		b.WriteString("\n")
	}
	if m.view.Total == 0 {
		b.WriteString(cli.InfoStyle.Render("No leads match."))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(cli.ErrorStyle.Render("bookmark not saved: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render("/ search · tab category · o sort · f saved · s bookmark · m more · q quit"))
	return b.String()
}

func (m Model) statusLine() string {
	parts := []string{
		fmt.Sprintf("category: %s", m.taxonomy.NameFor(m.tokens[m.catIndex])),
		fmt.Sprintf("sort: %s", m.sortKey),
		fmt.Sprintf("%d/%d leads", len(m.view.Visible), m.view.Total),
	}
	if m.savedOnly {
		parts = append(parts, "saved only")
	}
	return cli.InfoStyle.Render(strings.Join(parts, " · "))
}

func (m Model) renderRow(lead model.Lead, selected bool, now time.Time) string {
	marker := "  "
	if selected {
		marker = cli.SavedStyle.Render("> ")
	}

	star := " "
	if m.saved.Contains(lead.ID) {
		star = cli.SavedStyle.Render("★")
	}

	badge := ""
	if pipeline.IsFresh(lead.IssuedAt, now) {
		badge = " " + cli.FreshStyle.Render("NEW")
	}

	line := fmt.Sprintf("%s%s %s  %s  %s  %s%s",
		marker,
		star,
		cli.CostStyle.Render(fmt.Sprintf("%12s", cli.FormatCost(lead.Cost))),
		cli.FormatIssueDate(lead.IssuedAt),
		cli.Truncate(lead.Category, 24),
		cli.Truncate(lead.Description, 44),
		badge)

	if selected {
		return lipgloss.NewStyle().Bold(true).Render(line)
	}
	return line
}
