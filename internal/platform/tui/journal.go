package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/delve/internal/storage"
)

// maxRuns is how many runs the journal view loads.
const maxRuns = 100

// JournalSource is the part of the run journal the viewer reads.
// *storage.Store implements it.
type JournalSource interface {
	RecentRuns(limit int) ([]storage.Run, error)
	RunFloors(runID int64) ([]storage.FloorEntry, error)
}

// JournalKeyMap defines the key bindings for the journal viewer.
type JournalKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Back, k.Quit},
	}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "floors"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// JournalModel lists recorded runs and, on selection, the floors of one run.
type JournalModel struct {
	source   JournalSource
	runs     []storage.Run
	floors   []storage.FloorEntry
	runID    int64 // run whose floors are shown, 0 for the run list
	table    table.Model
	help     help.Model
	keys     JournalKeyMap
	err      error
	width    int
	height   int
	quitting bool
}

// NewJournalModel creates a journal viewer and loads the recent runs.
func NewJournalModel(source JournalSource, width, height int) JournalModel {
	m := JournalModel{
		source: source,
		keys:   DefaultJournalKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.showRuns()
	return m
}

func (m *JournalModel) newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-6, 5)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *JournalModel) showRuns() {
	m.runID = 0
	m.floors = nil
	m.runs, m.err = m.source.RecentRuns(maxRuns)

	m.table = m.newTable([]table.Column{
		{Title: "Run", Width: 6},
		{Title: "Seed", Width: 20},
		{Title: "Difficulty", Width: 10},
		{Title: "Deepest", Width: 8},
		{Title: "Floors", Width: 7},
		{Title: "Started", Width: 14},
	})
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.ID),
			strconv.FormatInt(r.Seed, 10),
			r.Difficulty,
			strconv.Itoa(r.Deepest),
			strconv.Itoa(r.Floors),
			r.StartedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
}

func (m *JournalModel) showFloors(run storage.Run) {
	m.runID = run.ID
	m.floors, m.err = m.source.RunFloors(run.ID)

	m.table = m.newTable([]table.Column{
		{Title: "Depth", Width: 6},
		{Title: "Rooms", Width: 6},
		{Title: "Monsters", Width: 9},
		{Title: "Items", Width: 6},
		{Title: "Skipped", Width: 8},
		{Title: "Walkable", Width: 9},
	})
	rows := make([]table.Row, len(m.floors))
	for i, f := range m.floors {
		rows[i] = table.Row{
			strconv.Itoa(f.Depth),
			strconv.Itoa(f.Rooms),
			strconv.Itoa(f.Monsters),
			strconv.Itoa(f.Items),
			strconv.Itoa(f.Skipped),
			strconv.Itoa(f.Walkable),
		}
	}
	m.table.SetRows(rows)
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal viewer.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.runID == 0 {
				m.quitting = true
				return m, tea.Quit
			}
			m.showRuns()
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if m.runID == 0 && len(m.runs) > 0 {
				m.showFloors(m.runs[m.table.Cursor()])
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(m.height-6, 5))
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Viewing returns the run whose floors are shown, or 0 on the run list.
func (m JournalModel) Viewing() int64 {
	return m.runID
}

// View renders the journal.
func (m JournalModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	title := "RUN JOURNAL"
	if m.runID != 0 {
		title = fmt.Sprintf("RUN #%d - FLOORS", m.runID)
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		tableStyle.Render(m.renderContent()),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

func (m JournalModel) renderContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Could not read the journal:\n" + m.err.Error())
	case m.runID == 0 && len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nStart one with delve play!")
	case m.runID != 0 && len(m.floors) == 0:
		return emptyStyle.Render("This run has no recorded floors.")
	}
	return m.table.View()
}

// RunJournal runs the journal viewer until the user quits.
func RunJournal(source JournalSource, width, height int) error {
	p := tea.NewProgram(
		NewJournalModel(source, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
