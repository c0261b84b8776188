package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vahanchain/vahanchain/internal/flow"
	"github.com/vahanchain/vahanchain/internal/model"
)

// DocumentsTab lists the driver's documents with their verification state.
type DocumentsTab struct {
	store   model.DocumentStore
	docs    []model.Document
	err     error
	loading bool
	cursor  int
}

func NewDocumentsTab(store model.DocumentStore) *DocumentsTab {
	return &DocumentsTab{store: store}
}

func (t *DocumentsTab) Tab() flow.Tab { return flow.TabDocuments }

func (t *DocumentsTab) Documents() []model.Document { return t.docs }

func (t *DocumentsTab) Init(_ ViewContext) tea.Cmd {
	if t.store == nil {
		t.docs = model.DefaultDocuments()
		return nil
	}
	t.loading = true
	store := t.store
	return func() tea.Msg {
		docs, err := store.ListDocuments()
		return documentsMsg{docs: docs, err: err}
	}
}

func (t *DocumentsTab) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case documentsMsg:
		t.loading = false
		t.docs, t.err = msg.docs, msg.err
		t.cursor = min(t.cursor, max(0, len(t.docs)-1))
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			t.cursor = max(0, t.cursor-1)
		case key.Matches(msg, keys.Down):
			t.cursor = min(max(0, len(t.docs)-1), t.cursor+1)
		}
	}
	return nil
}

func statusColor(s model.DocumentStatus) lipgloss.Color {
	switch s {
	case model.StatusVerified:
		return ColorGreen
	case model.StatusPending:
		return ColorAmber
	case model.StatusExpired:
		return ColorRed
	default:
		return ColorGray
	}
}

func (t *DocumentsTab) View(_ ViewContext, width, _ int) string {
	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("My Documents"),
		subtitleStyle.Render("Your verified driver and vehicle records"),
	)

	switch {
	case t.loading:
		return lipgloss.JoinVertical(lipgloss.Left, header, "", renderLoadingPlaceholder("Loading documents..."))
	case t.err != nil:
		return lipgloss.JoinVertical(lipgloss.Left, header, "", errorStyle.Render("Failed to load documents: "+t.err.Error()))
	case len(t.docs) == 0:
		return lipgloss.JoinVertical(lipgloss.Left, header, "", helpStyle.Render("No documents on file"))
	}

	rowWidth := max(30, width-6)
	counts := map[model.DocumentStatus]int{}
	rows := []string{header, ""}
	for i, d := range t.docs {
		counts[d.Status]++
		badge := lipgloss.NewStyle().Foreground(statusColor(d.Status)).Bold(true).Render(d.Status.Label())
		left := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(d.Icon+"  "+d.Name),
			subtitleStyle.Render("Expires: "+d.Expiry),
		)
		gap := max(1, rowWidth-4-lipgloss.Width(left)-lipgloss.Width(badge))
		row := lipgloss.JoinHorizontal(lipgloss.Center, left, lipgloss.NewStyle().Width(gap).Render(""), badge)

		style := sectionStyle
		if i == t.cursor {
			style = activeSectionStyle
		}
		rows = append(rows, style.Width(rowWidth).Render(row))
	}

	summary := fmt.Sprintf("%d verified • %d pending • %d expired",
		counts[model.StatusVerified], counts[model.StatusPending], counts[model.StatusExpired])
	rows = append(rows, helpStyle.Render(summary))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
