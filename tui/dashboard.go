// tui/dashboard.go
// Package tui provides the interactive model gallery dashboard.
package tui

import (
	"errors"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/gallery/internal/appconfig"
	"github.com/mwiater/gallery/internal/feedback"
	"github.com/mwiater/gallery/internal/insights"
	"github.com/mwiater/gallery/internal/registry"
	"github.com/mwiater/gallery/internal/util"
)

// Config represents the shared application configuration for the dashboard.
type Config = appconfig.Config

// focusArea identifies which dashboard panel receives key input.
type focusArea int

const (
	// focusDomains is the domain filter panel.
	focusDomains focusArea = iota
	// focusStages is the lifecycle stage filter panel.
	focusStages
	// focusTiers is the SLA tier filter panel.
	focusTiers
	// focusModels is the model explorer list.
	focusModels
	// focusFeedback is the feedback text area.
	focusFeedback
)

// filterCount is the number of filter panels preceding the model list.
const filterCount = 3

// model is the main application model for the Bubble Tea UI.
type model struct {
	config   *Config
	cache    *registry.Cache
	provider insights.Provider
	recorder feedback.Recorder

	reg   *registry.Registry
	view  *registry.Registry
	stats registry.Stats

	focus       focusArea
	filterLists [filterCount]list.Model
	allowed     [filterCount]map[string]bool
	modelList   list.Model
	detail      viewport.Model
	textArea    textarea.Model
	spinner     spinner.Model

	selected     registry.Record
	hasSelection bool
	insight      insights.Insights
	confirmation string
	compareMode  bool

	isLoading     bool
	err           error
	fatalErr      error
	width, height int
}

// item represents a selectable entry in a dashboard list.
type item struct {
	title   string
	desc    string
	enabled bool
	toggle  bool
}

// Title returns the rendered label of the list item.
func (i item) Title() string {
	if !i.toggle {
		return i.title
	}
	if i.enabled {
		return "[x] " + i.title
	}
	return "[ ] " + i.title
}

// Description returns the description of the list item.
func (i item) Description() string { return i.desc }

// FilterValue returns the raw value of the item, used for list filtering.
func (i item) FilterValue() string { return i.title }

// registryLoadedMsg is sent when the registry has been loaded through the cache.
type registryLoadedMsg struct {
	reg *registry.Registry
}

// registryLoadErr is sent when loading fails schema validation. It is fatal:
// no partial table is ever drawn.
type registryLoadErr struct{ error }

// loadRegistryCmd loads the registry through the cache off the UI goroutine.
func loadRegistryCmd(cache *registry.Cache, path string) tea.Cmd {
	return func() tea.Msg {
		reg, err := cache.Load(path)
		if err != nil {
			return registryLoadErr{error: err}
		}
		return registryLoadedMsg{reg: reg}
	}
}

// initialModel creates and initializes a new dashboard model.
func initialModel(cfg *Config, cache *registry.Cache, provider insights.Provider, recorder feedback.Recorder) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ta := textarea.New()
	ta.Placeholder = "What would make you reuse this model?"
	ta.Prompt = "> "
	ta.ShowLineNumbers = false
	ta.CharLimit = -1
	ta.SetHeight(2)
	ta.KeyMap.InsertNewline.SetEnabled(false)

	m := &model{
		config:    cfg,
		cache:     cache,
		provider:  provider,
		recorder:  recorder,
		spinner:   s,
		textArea:  ta,
		detail:    viewport.New(60, 12),
		isLoading: true,
	}
	for i := range m.filterLists {
		m.filterLists[i] = newPanelList(nil)
		m.allowed[i] = make(map[string]bool)
	}
	m.modelList = newPanelList(nil)
	m.filterLists[focusDomains].Title = "Domain"
	m.filterLists[focusStages].Title = "Lifecycle Stage"
	m.filterLists[focusTiers].Title = "SLA Tier"
	m.modelList.Title = "Model Explorer"
	return m
}

// newPanelList builds a compact list without the default chrome.
func newPanelList(items []list.Item) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	l := list.New(items, delegate, 0, 0)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	return l
}

// Init starts the spinner and kicks off the registry load.
func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadRegistryCmd(m.cache, m.config.RegistryFile()))
}

// Update is the central update function for the Bubble Tea model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// The textarea needs literal q; everywhere else it quits.
			if m.focus != focusFeedback {
				return m, tea.Quit
			}
		case "c":
			// The textarea needs literal c; everywhere else it toggles the
			// comparison table.
			if m.focus != focusFeedback {
				m.compareMode = !m.compareMode
				m.updateDetailPane()
				return m, nil
			}
		case "tab":
			m.cycleFocus(1)
			return m, nil
		case "shift+tab":
			m.cycleFocus(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()

	case registryLoadedMsg:
		m.isLoading = false
		m.reg = msg.reg
		m.stats = registry.Summary(m.reg)
		m.populateFilters()
		m.refreshView()
		m.layout()
		return m, nil

	case registryLoadErr:
		m.isLoading = false
		m.fatalErr = msg.error
		return m, nil

	case spinner.TickMsg:
		if m.isLoading {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.fatalErr != nil || m.isLoading {
		return m, nil
	}

	switch m.focus {
	case focusDomains, focusStages, focusTiers:
		idx := int(m.focus)
		m.filterLists[idx], cmd = m.filterLists[idx].Update(msg)
		cmds = append(cmds, cmd)
		if msg, ok := msg.(tea.KeyMsg); ok && (msg.String() == " " || msg.String() == "enter") {
			m.toggleFilterValue(idx)
		}

	case focusModels:
		m.modelList, cmd = m.modelList.Update(msg)
		cmds = append(cmds, cmd)
		m.syncSelection()

	case focusFeedback:
		m.textArea, cmd = m.textArea.Update(msg)
		cmds = append(cmds, cmd)
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
			m.submitFeedback()
		}
	}

	return m, tea.Batch(cmds...)
}

// cycleFocus moves panel focus forward or backward, managing textarea focus.
func (m *model) cycleFocus(step int) {
	panels := int(focusFeedback) + 1
	m.focus = focusArea((int(m.focus) + step + panels) % panels)
	if m.focus == focusFeedback {
		m.textArea.Focus()
	} else {
		m.textArea.Blur()
	}
	m.confirmation = ""
}

// populateFilters fills the three filter panels from the loaded registry.
// All values start enabled, so the initial view is the whole registry.
func (m *model) populateFilters() {
	values := [filterCount][]string{
		registry.Domains(m.reg),
		registry.Stages(m.reg),
		registry.SLATiers(m.reg),
	}
	for i, vals := range values {
		items := make([]list.Item, len(vals))
		m.allowed[i] = make(map[string]bool, len(vals))
		for j, v := range vals {
			items[j] = item{title: v, enabled: true, toggle: true}
			m.allowed[i][v] = true
		}
		m.filterLists[i].SetItems(items)
	}
}

// toggleFilterValue flips the highlighted value in a filter panel and
// recomputes the filtered view.
func (m *model) toggleFilterValue(idx int) {
	selected, ok := m.filterLists[idx].SelectedItem().(item)
	if !ok {
		return
	}
	selected.enabled = !selected.enabled
	m.allowed[idx][selected.title] = selected.enabled
	m.filterLists[idx].SetItem(m.filterLists[idx].Index(), selected)
	m.refreshView()
}

// enabledValues returns the currently allowed values for one filter panel.
func (m *model) enabledValues(idx int) []string {
	var values []string
	for _, it := range m.filterLists[idx].Items() {
		if v, ok := it.(item); ok && m.allowed[idx][v.title] {
			values = append(values, v.title)
		}
	}
	return values
}

// refreshView recomputes the filtered view and re-derives the model list and
// selection from it. Every interaction funnels through here, so a stale
// selection can never survive a filter change.
func (m *model) refreshView() {
	m.view = registry.Filter(m.reg,
		m.enabledValues(int(focusDomains)),
		m.enabledValues(int(focusStages)),
		m.enabledValues(int(focusTiers)),
	)

	items := make([]list.Item, 0, m.view.Len())
	for _, rec := range m.view.Records {
		items = append(items, item{title: rec.ModelName, desc: rec.Domain})
	}
	m.modelList.SetItems(items)

	if m.hasSelection {
		if _, err := registry.Lookup(m.view, m.selected.ModelName); errors.Is(err, registry.ErrModelNotFound) {
			// Previous selection fell out of the view; force re-selection.
			m.hasSelection = false
			m.modelList.Select(0)
		}
	}
	m.syncSelection()
}

// syncSelection resolves the highlighted model against the current view and
// refreshes the detail pane.
func (m *model) syncSelection() {
	selected, ok := m.modelList.SelectedItem().(item)
	if !ok {
		m.hasSelection = false
		m.updateDetailPane()
		return
	}

	rec, err := registry.Lookup(m.view, selected.title)
	if err != nil {
		m.hasSelection = false
		m.updateDetailPane()
		return
	}

	if !m.hasSelection || rec.ModelName != m.selected.ModelName {
		m.insight = m.provider.ModelInsights(rec.ModelName)
	}
	m.selected = rec
	m.hasSelection = true
	m.updateDetailPane()
}

// updateDetailPane fills the viewport with either the comparison table of
// the whole filtered view or the selected record's detail, wrapped to the
// pane width.
func (m *model) updateDetailPane() {
	if m.compareMode {
		m.detail.SetContent(renderComparison(m.view, m.detail.Width))
		return
	}
	if !m.hasSelection {
		m.detail.SetContent("No models match the current filters.")
		return
	}
	m.detail.SetContent(util.WrapToWidth(renderDetail(m.selected, m.insight), m.detail.Width))
}

// submitFeedback records the textarea contents against the selected model.
func (m *model) submitFeedback() {
	text := m.textArea.Value()
	modelName := ""
	if m.hasSelection {
		modelName = m.selected.ModelName
	}

	if _, err := m.recorder.Record(modelName, text); err != nil {
		m.confirmation = "Nothing to submit yet. Tell us what would make you reuse this model."
		return
	}
	m.textArea.Reset()
	m.confirmation = "Feedback captured! This helps improve model discovery and reuse."
}

// layout resizes the panels to the current terminal dimensions.
func (m *model) layout() {
	if m.width == 0 {
		return
	}
	panelWidth := util.Max(m.width/5, 18)
	panelHeight := util.Max(m.height-14, 6)
	for i := range m.filterLists {
		m.filterLists[i].SetSize(panelWidth, panelHeight/2)
	}
	m.modelList.SetSize(panelWidth, panelHeight)
	m.detail.Width = util.Max(m.width-2*panelWidth-6, 30)
	m.detail.Height = panelHeight
	m.textArea.SetWidth(m.width - 4)
}

// StartGUI initializes and runs the interactive model gallery dashboard. The
// registry cache is passed in explicitly so scripted commands and the TUI
// share one session-scoped load.
func StartGUI(cfg *appconfig.Config, cache *registry.Cache) error {
	if cfg == nil {
		return fmt.Errorf("configuration is not loaded")
	}

	m := initialModel(cfg, cache, insights.NewRandomProvider(), feedback.NewLogRecorder())

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		return err
	}
	return m.fatalErr
}
