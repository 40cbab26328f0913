package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/davidgmz15/tagsense/internal/classifier"
)

type rankedItem struct {
	label string
	score float64
	err   bool
}

func (i rankedItem) Title() string       { return i.label }
func (i rankedItem) Description() string { return "" }
func (i rankedItem) FilterValue() string { return i.label }

// compactDelegate renders items in a single-line compact form.
type compactDelegate struct{}

func (d compactDelegate) Height() int                               { return 1 }
func (d compactDelegate) Spacing() int                              { return 0 }
func (d compactDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d compactDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(rankedItem)
	if !ok {
		return
	}

	str := i.label
	if !i.err {
		str = fmt.Sprintf("%s  %.3g", i.label, i.score)
	}
	if index == m.Index() {
		str = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Render("> " + str)
	} else {
		str = "  " + str
	}
	fmt.Fprint(w, str)
}

// Session scores typed text against a trained model, re-ranking every tag
// as the input changes.
type Session struct {
	input     textinput.Model
	list      list.Model
	model     *classifier.Model
	lastInput string
	width     int
	height    int
}

func NewSession(m *classifier.Model) *Session {
	input := textinput.New()
	input.Placeholder = "Type post text..."
	input.Focus()

	l := list.New([]list.Item{}, &compactDelegate{}, 40, 10)
	l.SetShowPagination(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)

	return &Session{
		input: input,
		list:  l,
		model: m,
	}
}

func (s *Session) Init() tea.Cmd {
	return textinput.Blink
}

func (s *Session) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.SetSize(msg.Width, msg.Height-4)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return s, tea.Quit
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.list, _ = s.list.Update(msg)

	content := s.input.Value()
	if content != s.lastInput {
		s.lastInput = content
		s.refresh(content)
	}

	return s, cmd
}

func (s *Session) refresh(content string) {
	if strings.TrimSpace(content) == "" {
		s.list.SetItems([]list.Item{})
		return
	}

	ranked, err := s.model.Scores(content)
	if err != nil {
		s.list.SetItems([]list.Item{rankedItem{label: "Error: " + err.Error(), err: true}})
		return
	}

	items := make([]list.Item, 0, len(ranked))
	for _, p := range ranked {
		items = append(items, rankedItem{label: p.Label, score: p.Score})
	}
	s.list.SetItems(items)
	s.list.ResetSelected()
}

func (s *Session) View() string {
	var b strings.Builder
	b.WriteString("tagsense\n\n")
	b.WriteString(s.input.View() + "\n\n")
	b.WriteString(s.list.View() + "\n")
	b.WriteString("(ctrl+c = quit)")
	return b.String()
}
