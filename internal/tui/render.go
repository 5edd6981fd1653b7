package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/refdeck/refdeck/internal/highlight"
	"github.com/refdeck/refdeck/internal/keybinds"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleSection = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorYellow)
)

// renderMain renders the main view (category tabs + sidebar + detail)
func (m *Model) renderMain() string {
	if m.width == 0 {
		return ""
	}

	sidebarWidth := m.sidebarWidth()
	detailWidth := m.width - sidebarWidth - 2*ViewportBorderWidth

	sidebar := m.renderSidebar(sidebarWidth-2, m.height-MainViewHeightOffset)
	detail := m.detailView.View()

	// Highlight the focused panel's border
	sidebarBorderColor := colorGray
	detailBorderColor := colorGray
	if m.focusedPanel == "sidebar" {
		sidebarBorderColor = colorGreen
	} else {
		detailBorderColor = colorGreen
	}

	sidebarBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(sidebarBorderColor).
		Width(sidebarWidth).
		Height(m.height - 2). // Leave room for tabs and status bar
		Render(sidebar)

	detailBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(detailBorderColor).
		Width(detailWidth).
		Height(m.height - 2).
		Render(detail)

	mainView := lipgloss.JoinHorizontal(
		lipgloss.Top,
		sidebarBox,
		detailBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		mainView,
		m.renderStatusBar(),
	)
}

// renderSidebar renders the topic list for the active category. The
// rows are exactly the active category's topics; at most one row is
// flagged active, and none when the active topic id matches nothing.
func (m *Model) renderSidebar(width, height int) string {
	var lines []string

	snap := m.sel.Snapshot()
	label := snap.Category
	if cat, ok := m.cat.Get(snap.Category); ok {
		label = cat.Label
	}
	lines = append(lines, styleTitle.Render(label))
	lines = append(lines, styleSubtle.Render(m.renderCategoryTabs()))
	lines = append(lines, "")

	topics := m.activeTopics()
	activeIdx := m.sel.ActiveIndex()

	for i, topic := range topics {
		name := topic.Title
		maxNameLen := width - 4
		if maxNameLen < 10 {
			maxNameLen = 10
		}
		if len(name) > maxNameLen {
			name = name[:maxNameLen-3] + "..."
		}

		line := fmt.Sprintf("%2d %s", i+1, name)
		if i == activeIdx {
			line = styleSelected.Render(line)
		}
		lines = append(lines, line)
	}

	// Footer - show position
	if len(topics) > 0 {
		lines = append(lines, "")
		pos := activeIdx + 1 // 0 when nothing matches
		footer := fmt.Sprintf("[%d/%d]", pos, len(topics))
		lines = append(lines, styleSubtle.Render(footer))
	} else {
		lines = append(lines, styleSubtle.Render("No topics"))
	}

	content := strings.Join(lines, "\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1).
		Render(content)
}

// renderCategoryTabs shows where the active category sits in the
// catalog order.
func (m *Model) renderCategoryTabs() string {
	keys := m.cat.Keys()
	active := m.sel.Snapshot().Category
	for i, key := range keys {
		if key == active {
			return fmt.Sprintf("category %d/%d  [ / ] to switch", i+1, len(keys))
		}
	}
	return fmt.Sprintf("category ?/%d  [ / ] to switch", len(keys))
}

// updateDetailView rebuilds the detail pane content for the active
// topic.
func (m *Model) updateDetailView() {
	m.detailView.SetContent(m.buildDetailContent())
}

// buildDetailContent formats the active topic for the detail pane.
func (m *Model) buildDetailContent() string {
	topic, ok := m.activeTopic()
	if !ok {
		return styleSubtle.Render("No topic selected\n\nUse j/k to move, Enter to open a topic")
	}

	var b strings.Builder

	b.WriteString(styleTitle.Render(topic.Title))
	b.WriteString("\n")
	if topic.Subtitle != "" {
		b.WriteString(styleSubtle.Render(topic.Subtitle))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(topic.Summary)
	b.WriteString("\n\n")

	if topic.Explanation != "" {
		b.WriteString(styleSection.Render("Explanation"))
		b.WriteString("\n")
		b.WriteString(topic.Explanation)
		b.WriteString("\n\n")
	}

	if topic.Analogy != "" {
		b.WriteString(styleSection.Render("Analogy"))
		b.WriteString("\n")
		b.WriteString(topic.Analogy)
		b.WriteString("\n\n")
	}

	if len(topic.KeyPoints) > 0 {
		b.WriteString(styleSection.Render("Key Points"))
		b.WriteString("\n")
		for _, point := range topic.KeyPoints {
			b.WriteString("  - " + point + "\n")
		}
		b.WriteString("\n")
	}

	if len(topic.Examples) > 0 {
		for i, example := range topic.Examples {
			header := fmt.Sprintf("Example %d/%d: %s", i+1, len(topic.Examples), example.Title)
			if i == m.exampleIndex {
				b.WriteString(styleSection.Render(header) + styleSuccess.Render("  (y to copy)"))
			} else {
				b.WriteString(styleSubtle.Render(header))
			}
			b.WriteString("\n")
			b.WriteString(highlight.Code(example.Code, example.Language))
			b.WriteString("\n")
			if example.Description != "" {
				b.WriteString(styleSubtle.Render(example.Description))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	if len(topic.Resources) > 0 {
		b.WriteString(styleSection.Render("Resources"))
		b.WriteString("\n")
		for _, res := range topic.Resources {
			b.WriteString(fmt.Sprintf("  %s\n  %s\n", res.Title, styleSubtle.Render(res.URL)))
		}
		b.WriteString("\n")
	}

	if len(topic.Questions) > 0 {
		b.WriteString(styleSection.Render("Questions"))
		if !m.showAnswers {
			b.WriteString(styleSubtle.Render("  (a to reveal answers)"))
		}
		b.WriteString("\n")
		for i, qa := range topic.Questions {
			b.WriteString(fmt.Sprintf("  Q%d: %s\n", i+1, qa.Question))
			if m.showAnswers {
				b.WriteString(styleSuccess.Render(fmt.Sprintf("  A%d: ", i+1)) + qa.Answer + "\n")
			}
		}
	}

	return b.String()
}

// renderStatusBar renders the bottom status line
func (m *Model) renderStatusBar() string {
	snap := m.sel.Snapshot()
	left := fmt.Sprintf("refdeck | %s", snap.Category)

	right := ""
	switch m.mode {
	case ModeGoto:
		right = fmt.Sprintf("Goto: :%s█", m.gotoInput)
	default:
		if m.errorText != "" {
			right = styleError.Render(m.errorText)
		} else if m.statusMsg != "" {
			if strings.Contains(m.statusMsg, "copied") || strings.Contains(m.statusMsg, "enabled") {
				right = styleSuccess.Render(m.statusMsg)
			} else {
				right = m.statusMsg
			}
		} else {
			right = styleSubtle.Render("? for help | q to quit")
		}
	}

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return left + strings.Repeat(" ", spacing) + right
}

// renderHistory renders the view-history modal
func (m *Model) renderHistory() string {
	var lines []string
	lines = append(lines, styleTitle.Render("View History"))

	tracking := "on"
	if !m.sessionMgr.IsHistoryEnabled() {
		tracking = styleWarning.Render("off")
	}
	lines = append(lines, styleSubtle.Render("tracking: "+tracking+"  |  enter: open  D: clear  t: toggle  esc: close"))
	lines = append(lines, "")

	if m.historyManager == nil {
		lines = append(lines, styleWarning.Render("History database unavailable"))
	} else if len(m.historyEntries) == 0 {
		lines = append(lines, styleSubtle.Render("No views recorded yet"))
	}

	visible := m.height - ModalHeightMargin - 4
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.historyIndex >= visible {
		start = m.historyIndex - visible + 1
	}
	end := start + visible
	if end > len(m.historyEntries) {
		end = len(m.historyEntries)
	}

	for i := start; i < end; i++ {
		entry := m.historyEntries[i]
		line := fmt.Sprintf("%s  %-14s %s", entry.Timestamp, entry.Category, entry.Title)
		if i == m.historyIndex {
			line = styleSelected.Render(line)
		}
		lines = append(lines, line)
	}

	return m.renderModal(strings.Join(lines, "\n"))
}

// renderHistoryClearConfirmation renders the destructive-action prompt
func (m *Model) renderHistoryClearConfirmation() string {
	content := strings.Join([]string{
		styleTitle.Render("Clear History"),
		"",
		fmt.Sprintf("Delete all %d recorded views?", len(m.historyEntries)),
		"",
		styleError.Render("This cannot be undone."),
		"",
		styleSubtle.Render("y: confirm  n/esc: cancel"),
	}, "\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorRed).
		Padding(1, 2).
		Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderStats renders the study-statistics modal
func (m *Model) renderStats() string {
	var lines []string
	lines = append(lines, styleTitle.Render("Study Statistics"))
	lines = append(lines, styleSubtle.Render("j/k: move  esc: close"))
	lines = append(lines, "")

	if len(m.categoryStats) > 0 {
		lines = append(lines, styleSection.Render("By category"))
		for _, cs := range m.categoryStats {
			lines = append(lines, fmt.Sprintf("  %-16s %4d views across %d topics", cs.Category, cs.ViewCount, cs.Topics))
		}
		lines = append(lines, "")
	}

	if len(m.topicStats) == 0 {
		lines = append(lines, styleSubtle.Render("No views recorded yet"))
	} else {
		lines = append(lines, styleSection.Render("By topic"))
		for i, ts := range m.topicStats {
			line := fmt.Sprintf("  %-28s %4d views  last %s", ts.Title, ts.ViewCount, ts.LastViewed)
			if i == m.statsIndex {
				line = styleSelected.Render(line)
			}
			lines = append(lines, line)
		}
	}

	return m.renderModal(strings.Join(lines, "\n"))
}

// updateHelpView rebuilds the help content from the live registry so
// the listing never drifts from the actual bindings.
func (m *Model) updateHelpView() {
	normal := func(a keybinds.Action) string {
		return m.keys.GetBindingString(keybinds.ContextNormal, a)
	}

	rows := []struct {
		keys string
		desc string
	}{
		{normal(keybinds.ActionNavigateDown) + " / " + normal(keybinds.ActionNavigateUp), "Move down / up"},
		{normal(keybinds.ActionHalfPageDown) + " / " + normal(keybinds.ActionHalfPageUp), "Half page down / up"},
		{normal(keybinds.ActionGoToTop) + " / " + normal(keybinds.ActionGoToBottom), "Jump to first / last topic"},
		{normal(keybinds.ActionOpenGoto), "Go to topic by number"},
		{normal(keybinds.ActionSwitchFocus), "Switch focus between panes"},
		{normal(keybinds.ActionNextCategory) + " / " + normal(keybinds.ActionPrevCategory), "Next / previous category"},
		{normal(keybinds.ActionSelect), "Open topic (records a view)"},
		{normal(keybinds.ActionNextExample), "Focus next code example"},
		{normal(keybinds.ActionCopyExample), "Copy focused example to clipboard"},
		{normal(keybinds.ActionToggleAnswers), "Show / hide question answers"},
		{normal(keybinds.ActionOpenHistory), "View history"},
		{normal(keybinds.ActionOpenStats), "Study statistics"},
		{m.keys.GetBindingString(keybinds.ContextGlobal, keybinds.ActionOpenHelp), "This help"},
		{m.keys.GetBindingString(keybinds.ContextGlobal, keybinds.ActionQuit), "Quit"},
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render("Keyboard Reference"))
	b.WriteString("\n\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %-22s %s\n", row.keys, row.desc))
	}

	m.helpView.SetContent(b.String())
}

// renderHelp renders the help viewer
func (m *Model) renderHelp() string {
	footer := styleSubtle.Render("j/k: scroll  esc/?: close")
	content := m.helpView.View() + "\n" + footer
	return m.renderModal(content)
}

// renderModal wraps content in the standard full-screen modal frame.
func (m *Model) renderModal(content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCyan).
		Width(m.width - ModalWidthMargin).
		Height(m.height - ModalHeightMargin).
		Padding(0, 1).
		Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
