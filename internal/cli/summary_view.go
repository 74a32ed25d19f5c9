package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkallio/stint/internal/aggregate"
	"github.com/mkallio/stint/internal/cli/formatter"
)

// summaryModel is the interactive summary view: arrow keys cycle the
// aggregation window, tab cycles the company filter.
type summaryModel struct {
	app    *App
	window aggregate.Window
	filter aggregate.CompanyFilter

	// filters holds the cycle order: All, each registered company, Other.
	filters   []aggregate.CompanyFilter
	filterIdx int

	result aggregate.Result
}

var summaryKeys = struct {
	prevWindow key.Binding
	nextWindow key.Binding
	cycle      key.Binding
	quit       key.Binding
}{
	prevWindow: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous window")),
	nextWindow: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next window")),
	cycle:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "cycle company")),
	quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

var windowCycle = []aggregate.Window{aggregate.Weekly, aggregate.BiWeekly, aggregate.Monthly}

func newSummaryModel(app *App, window aggregate.Window, filter aggregate.CompanyFilter) *summaryModel {
	filters := []aggregate.CompanyFilter{aggregate.AnyCompany()}
	for _, c := range app.Store.Companies() {
		filters = append(filters, aggregate.ByCompany(c))
	}
	filters = append(filters, aggregate.WithoutCompany())

	filterIdx := 0
	for i, f := range filters {
		if f == filter {
			filterIdx = i
			break
		}
	}

	m := &summaryModel{
		app:       app,
		window:    window,
		filter:    filter,
		filters:   filters,
		filterIdx: filterIdx,
	}
	m.refresh()
	return m
}

func (m *summaryModel) refresh() {
	m.result = aggregate.Aggregate(m.app.Store.List(), m.window, m.filter, m.app.Calendar)
}

func (m *summaryModel) Init() tea.Cmd { return nil }

func (m *summaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, summaryKeys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, summaryKeys.nextWindow):
		m.window = cycleWindow(m.window, 1)
		m.refresh()
	case key.Matches(keyMsg, summaryKeys.prevWindow):
		m.window = cycleWindow(m.window, -1)
		m.refresh()
	case key.Matches(keyMsg, summaryKeys.cycle):
		m.filterIdx = (m.filterIdx + 1) % len(m.filters)
		m.filter = m.filters[m.filterIdx]
		m.refresh()
	}
	return m, nil
}

func cycleWindow(w aggregate.Window, step int) aggregate.Window {
	for i, c := range windowCycle {
		if c == w {
			return windowCycle[(i+step+len(windowCycle))%len(windowCycle)]
		}
	}
	return aggregate.Weekly
}

func (m *summaryModel) View() string {
	help := formatter.Dim("←/→ window · tab company · q quit")
	return lipgloss.JoinVertical(lipgloss.Left,
		renderSummary(m.result),
		help,
	)
}
