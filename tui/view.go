// tui/view.go
package tui

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/gallery/internal/insights"
	"github.com/mwiater/gallery/internal/registry"
	"github.com/mwiater/gallery/internal/util"
)

var (
	titleStyle   = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	statStyle    = lipgloss.NewStyle().Background(lipgloss.Color("0")).Foreground(lipgloss.Color("40")).Padding(0, 1).MarginLeft(1)
	demoStyle    = lipgloss.NewStyle().Background(lipgloss.Color("229")).Foreground(lipgloss.Color("0")).Padding(0, 1).MarginLeft(1)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
	focusStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1)
	blurStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	labelStyle   = lipgloss.NewStyle().Bold(true)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
)

// View renders the dashboard based on the current state of the model.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	if m.fatalErr != nil {
		return m.fatalView()
	}

	if m.isLoading {
		return fmt.Sprintf("\n  %s Loading model registry...\n", m.spinner.View())
	}

	var builder strings.Builder
	builder.WriteString(m.headerView() + "\n")
	builder.WriteString(m.panelsView() + "\n")
	builder.WriteString(m.feedbackView() + "\n")
	builder.WriteString(captionStyle.Render(" tab: next panel • space: toggle filter • c: compare • q: quit"))
	return builder.String()
}

// fatalView renders a schema failure. Nothing else is drawn: a registry that
// failed validation never reaches the screen, not even partially.
func (m *model) fatalView() string {
	var schemaErr *registry.SchemaError
	if errors.As(m.fatalErr, &schemaErr) && len(schemaErr.MissingColumns) > 0 {
		return errorStyle.Render(fmt.Sprintf(
			"Missing required columns in registry source: %s\n\nFix the source file and restart.",
			strings.Join(schemaErr.MissingColumns, ", ")))
	}
	return errorStyle.Render(fmt.Sprintf("Error: %v", m.fatalErr))
}

// headerView renders the title bar and the headline statistics row.
func (m *model) headerView() string {
	title := titleStyle.Render("Enterprise Model Gallery")
	caption := captionStyle.MarginLeft(1).Render("discover, evaluate, and reuse production-grade ML models")

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		statStyle.Render(fmt.Sprintf("Total Models: %d", m.stats.TotalModels)),
		statStyle.Render(fmt.Sprintf("Production: %d", m.stats.ProductionModels)),
		statStyle.Render(fmt.Sprintf("Healthy Monitoring: %d", m.stats.HealthyMonitoring)),
		statStyle.Render(fmt.Sprintf("Domains: %d", m.stats.DomainsCovered)),
	)
	if m.reg != nil && m.reg.Demo {
		stats = lipgloss.JoinHorizontal(lipgloss.Top, stats, demoStyle.Render("DEMO DATA"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, title, caption) + "\n" + stats
}

// panelsView renders the filter panels, model list, and detail pane.
func (m *model) panelsView() string {
	filters := lipgloss.JoinVertical(lipgloss.Left,
		m.panel(focusDomains, m.filterLists[focusDomains].View()),
		m.panel(focusStages, m.filterLists[focusStages].View()),
		m.panel(focusTiers, m.filterLists[focusTiers].View()),
	)
	models := m.panel(focusModels, m.modelList.View())
	detail := blurStyle.Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, filters, models, detail)
}

// panel wraps content in a border that highlights the focused panel.
func (m *model) panel(area focusArea, content string) string {
	if m.focus == area {
		return focusStyle.Render(content)
	}
	return blurStyle.Render(content)
}

// feedbackView renders the feedback capture area and any confirmation line.
func (m *model) feedbackView() string {
	header := labelStyle.Render(" Data Scientist Feedback")
	body := m.panel(focusFeedback, m.textArea.View())
	if m.confirmation != "" {
		body += "\n" + okStyle.Render(" "+m.confirmation)
	}
	return header + "\n" + body
}

// renderDetail formats the selected record and its insight metrics for the
// detail pane.
func renderDetail(rec registry.Record, in insights.Insights) string {
	var b strings.Builder

	b.WriteString(labelStyle.Render(util.TruncateRunes(rec.ModelName, 48)) + "\n\n")

	rows := []struct{ label, value string }{
		{"Domain", rec.Domain},
		{"Owner Team", rec.OwnerTeam},
		{"Lifecycle Stage", rec.ModelStage},
		{"Monitoring Status", rec.MonitoringStatus},
		{"Approval Status", rec.ApprovalStatus},
		{"SLA Tier", rec.SLATier},
		{"Last Retrained", orNA(rec.LastRetrainedDate)},
		{"Endpoint", orNA(rec.InferenceEndpointID)},
		{"Feature Store", orNA(rec.FeatureStoreDependency)},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Render(fmt.Sprintf("%-18s", row.label+":")),
			valueStyle.Render(row.value)))
	}

	b.WriteString("\n" + labelStyle.Render("Why this model matters") + "\n")
	b.WriteString(fmt.Sprintf("  Validation AUC:       %.3f\n", in.ValidationAUC))
	b.WriteString(fmt.Sprintf("  Data Drift Score:     %.3f\n", in.DriftScore))
	b.WriteString(fmt.Sprintf("  Downstream Consumers: %d\n", in.DownstreamConsumers))
	b.WriteString(fmt.Sprintf("  Pipelines Using:      %d\n", in.PipelinesUsing))
	b.WriteString(captionStyle.Render("  (insight metrics are illustrative placeholders)"))

	return b.String()
}

// renderComparison formats the whole filtered view as a side-by-side table
// for the detail pane. The viewport scrolls, so row count is unbounded;
// cells are truncated so every row fits the pane width.
func renderComparison(view *registry.Registry, width int) string {
	if view.Len() == 0 {
		return "No models match the current filters."
	}

	headers := []string{"Model", "Domain", "Stage", "SLA", "Monitoring", "Approval"}
	rows := make([][]string, 0, view.Len())
	for _, rec := range view.Records {
		rows = append(rows, []string{
			rec.ModelName, rec.Domain, rec.ModelStage,
			rec.SLATier, rec.MonitoringStatus, rec.ApprovalStatus,
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = util.Max(widths[i], utf8.RuneCountInString(cell))
		}
	}
	if width > 0 {
		sep := 2 * (len(headers) - 1)
		budget := util.Max(width-sep, len(headers))
		maxCol := util.Max(budget/len(headers), 8)
		naturalName := widths[0]
		total := 0
		for i := range widths {
			widths[i] = util.Min(widths[i], maxCol)
			total += widths[i]
		}
		// Spare width goes to the model-name column, the one users scan.
		if slack := budget - total; slack > 0 {
			widths[0] = util.Min(naturalName, widths[0]+slack)
		}
	}

	formatRow := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			if utf8.RuneCountInString(cell) > widths[i] {
				cell = util.TruncateRunes(cell, util.Max(widths[i]-1, 1))
			}
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		return strings.Join(parts, "  ")
	}

	table := make([]string, 0, len(rows)+1)
	table = append(table, formatRow(headers))
	for _, row := range rows {
		table = append(table, formatRow(row))
	}
	body := strings.Join(table, "\n")
	if width > 0 {
		// TruncateToWidth appends an ellipsis rune, so leave room for it.
		body = util.TruncateToWidth(body, util.Max(width-1, 1))
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(fmt.Sprintf("Compare Models (%d)", view.Len())) + "\n\n")
	b.WriteString(body)
	return b.String()
}

// orNA substitutes NA for blank optional values.
func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "NA"
	}
	return v
}
