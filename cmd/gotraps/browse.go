// This file implements the interactive catalog browser using bubbletea.
package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"gotraps/cmd/gotraps/ui"
	"gotraps/internal/catalog"
	"gotraps/internal/render"
	"gotraps/internal/traps"
)

// indexWidth is the fixed width of the entry index pane.
const indexWidth = 36

// browseModel is the bubbletea model for the interactive browser: an entry
// index on the left, the rendered entry on the right.
type browseModel struct {
	viewport viewport.Model
	styles   ui.Styles
	renderer *glamour.TermRenderer

	theme   string
	opts    render.Options
	entries []catalog.Entry

	selected int
	width    int
	height   int
	ready    bool
	err      error
}

func newBrowseModel(theme string, opts render.Options) browseModel {
	return browseModel{
		viewport: viewport.New(80, 20),
		styles:   ui.DefaultStyles(),
		theme:    theme,
		opts:     opts,
		entries:  traps.Catalog().Entries(),
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.setContent()
			}
		case "down", "j":
			if m.selected < len(m.entries)-1 {
				m.selected++
				m.setContent()
			}
		case "g", "home":
			m.selected = 0
			m.setContent()
		case "G", "end":
			m.selected = len(m.entries) - 1
			m.setContent()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentWidth := m.width - indexWidth - 6
		if contentWidth < 20 {
			contentWidth = 20
		}
		m.viewport.Width = contentWidth
		m.viewport.Height = m.height - 4

		// Rebuild the renderer at the new word wrap.
		m.renderer, m.err = render.Terminal(m.theme, contentWidth-2)
		m.ready = true
		m.setContent()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// setContent renders the selected entry into the viewport.
func (m *browseModel) setContent() {
	if !m.ready || len(m.entries) == 0 {
		return
	}
	md := render.EntryMarkdown(m.entries[m.selected], m.opts)
	if m.renderer == nil {
		m.viewport.SetContent(md)
	} else if styled, err := m.renderer.Render(md); err == nil {
		m.viewport.SetContent(styled)
	} else {
		m.viewport.SetContent(md)
	}
	m.viewport.GotoTop()
}

func (m browseModel) View() string {
	if !m.ready {
		return "loading catalog..."
	}
	if m.err != nil {
		return m.styles.Fail.Render(fmt.Sprintf("error: %v", m.err))
	}

	var index strings.Builder
	index.WriteString(m.styles.Title.Render(traps.Title) + "\n\n")
	for i, e := range m.entries {
		line := e.ID
		if e.Crashes {
			line += " " + m.styles.Crash.Render("!")
		}
		if i == m.selected {
			index.WriteString(m.styles.Selected.Render("> "+line) + "\n")
		} else {
			index.WriteString("  " + m.styles.EntryID.Render(line) + "\n")
		}
	}

	left := m.styles.Pane.Width(indexWidth).Height(m.height - 4).Render(index.String())
	right := m.styles.Pane.Render(m.viewport.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	help := m.styles.Help.Render("j/k move · g/G first/last · q quit")
	return body + "\n" + help
}

// runBrowse launches the interactive browser.
func runBrowse(cmd *cobra.Command, args []string) error {
	m := newBrowseModel(cfg.Theme, renderOptions())
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}
