package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	te "github.com/muesli/termenv"

	"github.com/lai323/jdict/jotoba"
	"github.com/lai323/jdict/note"
	"github.com/lai323/jdict/ui"
)

var (
	focusedPrompt = te.String(": ").Foreground(te.ColorProfile().Color("205")).String()

	keyhelp = [][]string{
		{"i", "edit the query"},
		{"enter", "search / apply selected"},
		{"n", "create or link note"},
		{"p", "preview note"},
		{"j k ↑ ↓", "move"},
		{"esc", "leave input or preview"},
		{"?", "help / back"},
		{"q", "quit"},
	}
)

// resultsMsg carries the answer to search number seq.
type resultsMsg struct {
	seq    int
	query  string
	items  []jotoba.DictionaryItem
	states []string
	err    error
}

// appliedMsg is the outcome of applying entry index of search number seq.
type appliedMsg struct {
	seq   int
	index int
	out   note.Outcome
	err   error
}

type previewMsg struct {
	text string
	err  error
}

type Model struct {
	searcher  Searcher
	maker     *note.Maker
	copyLink  bool
	selection string
	fixedSel  bool
	log       *slog.Logger

	textInput textinput.Model
	viewport  viewport.Model
	ready     bool
	width     int

	seq    int
	query  string
	items  []jotoba.DictionaryItem
	states []string
	cursor int

	help       ui.HelpModel
	previewing bool
	preview    string

	notice      string
	noticeErr   bool
	replacement string
}

// NewModel builds the lookup panel. selection is the text the link will
// replace; when empty the latest query is used.
func NewModel(text, selection string, searcher Searcher, maker *note.Maker, copyLink bool, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	fixedSel := selection != ""
	if selection == "" {
		selection = text
	}
	m := Model{
		searcher:  searcher,
		maker:     maker,
		copyLink:  copyLink,
		selection: selection,
		fixedSel:  fixedSel,
		log:       logger,
		help:      ui.HelpModel{Keyhelp: keyhelp},
	}
	m.textInput = textinput.New()
	m.textInput.Placeholder = "Type a word"
	m.textInput.Prompt = focusedPrompt
	m.textInput.CharLimit = 200
	m.textInput.Width = 60
	m.textInput.SetValue(text)
	m.textInput.SetCursor(len(text))
	m.query = text
	if text == "" {
		m.textInput.Focus()
	} else {
		m.setNotice("Searching for "+text+"...", false)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.query == "" {
		return textinput.Blink
	}
	return m.searchCmd(m.query, m.seq)
}

// Replacement is the last link produced, empty if nothing was applied.
func (m Model) Replacement() string {
	return m.replacement
}

func (m Model) searchCmd(query string, seq int) tea.Cmd {
	return func() tea.Msg {
		items, err := Fetch(context.Background(), m.searcher, query)
		if err != nil {
			return resultsMsg{seq: seq, query: query, err: err}
		}
		return resultsMsg{seq: seq, query: query, items: items, states: noteStates(m.maker, items)}
	}
}

func (m Model) applyCmd(index int) tea.Cmd {
	item := m.items[index]
	selection := m.selection
	seq := m.seq
	return func() tea.Msg {
		out, err := m.maker.Apply(item, selection)
		return appliedMsg{seq: seq, index: index, out: out, err: err}
	}
}

func (m Model) previewCmd(index int) tea.Cmd {
	body := m.maker.Preview(m.items[index])
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	return func() tea.Msg {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return previewMsg{text: body, err: err}
		}
		out, err := r.Render(body)
		if err != nil {
			return previewMsg{text: body, err: err}
		}
		return previewMsg{text: out}
	}
}

// search starts a new search. Results of earlier searches still in flight
// are dropped when they arrive.
func (m *Model) search(query string) tea.Cmd {
	m.seq++
	m.query = query
	if !m.fixedSel {
		m.selection = query
	}
	m.setNotice("Searching for "+query+"...", false)
	return m.searchCmd(query, m.seq)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmds []tea.Cmd
		cmd  tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			if m.textInput.Focused() {
				text := strings.TrimSpace(m.textInput.Value())
				if text != "" {
					m.textInput.Blur()
					cmds = append(cmds, m.search(text))
				}
				return m, tea.Batch(cmds...)
			}
			if c := m.apply(); c != nil {
				cmds = append(cmds, c)
			}
			return m, tea.Batch(cmds...)
		case "esc":
			if m.textInput.Focused() {
				m.textInput.Blur()
				return m, nil
			}
			m.previewing = false
			m.help.Active = false
			m.refresh()
			return m, nil
		}

		if !m.textInput.Focused() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "i", "/":
				m.previewing = false
				m.viewport.GotoTop()
				return m, m.textInput.Focus()
			case "up", "k":
				m.move(-1)
				return m, nil
			case "down", "j":
				m.move(1)
				return m, nil
			case "n":
				return m, m.apply()
			case "p":
				if m.previewing {
					m.previewing = false
					m.refresh()
					return m, nil
				}
				if len(m.items) != 0 {
					return m, m.previewCmd(m.cursor)
				}
				return m, nil
			case "?":
				m.help.Active = !m.help.Active
				m.refresh()
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		viewportHeight := msg.Height - 3 // input, notice and footer take a line each
		if viewportHeight < 1 {
			viewportHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.refresh()

	case resultsMsg:
		if msg.seq != m.seq {
			m.log.Debug("drop stale results", slog.String("query", msg.query), slog.Int("seq", msg.seq))
			return m, nil
		}
		if msg.err != nil {
			m.log.Error("search failed", slog.String("query", msg.query), slog.String("error", msg.err.Error()))
			m.setNotice("Search failed: "+msg.err.Error(), true)
			m.items, m.states = nil, nil
			m.refresh()
			return m, nil
		}
		m.items = msg.items
		m.states = msg.states
		m.cursor = 0
		m.previewing = false
		m.setNotice(fmt.Sprintf("%d results for %s", len(msg.items), msg.query), false)
		m.refresh()
		return m, nil

	case appliedMsg:
		m.onApplied(msg)
		return m, nil

	case previewMsg:
		if msg.err != nil {
			m.log.Warn("render preview", slog.String("error", msg.err.Error()))
		}
		m.preview = msg.text
		m.previewing = true
		m.refresh()
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	cmds = append(cmds, cmd)

	if !m.textInput.Focused() {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) apply() tea.Cmd {
	if len(m.items) == 0 {
		return nil
	}
	return m.applyCmd(m.cursor)
}

func (m *Model) onApplied(msg appliedMsg) {
	m.replacement = msg.out.Replacement

	if msg.err != nil {
		m.log.Error("note creation", slog.String("path", msg.out.Path), slog.String("error", msg.err.Error()))
		m.setNotice("An error has occurred during note creation: "+msg.err.Error(), true)
	} else {
		verb := "Linked"
		if msg.out.Created {
			verb = "Created"
		}
		m.setNotice(fmt.Sprintf("%s %s  %s", verb, msg.out.Path, msg.out.Replacement), false)
		// The entry list may belong to a newer search by now.
		if msg.seq == m.seq && msg.index < len(m.states) {
			m.states[msg.index] = stateLink
		}
	}

	if m.copyLink && m.replacement != "" {
		if err := copyToClipboard(m.replacement); err != nil {
			m.log.Warn("copy link", slog.String("error", err.Error()))
			m.setNotice(m.notice+" (copy failed)", true)
		}
	}
	m.refresh()
}

func (m *Model) move(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.items)) % len(m.items)
	m.previewing = false
	m.refresh()
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

func (m *Model) refresh() {
	var content string
	switch {
	case m.help.Active:
		content = m.help.View()
	case m.previewing:
		content = m.preview
	case m.query == "":
		content = ""
	default:
		content = ui.ResultsView(m.query, m.items, m.cursor, m.states)
	}
	if !m.ready {
		return
	}
	m.viewport.SetContent(wordwrap.String(content, m.viewport.Width))
}

func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	if m.width < 60 {
		return fmt.Sprintf("Terminal window too narrow to render content\nResize to fix (%d/60)", m.width)
	}

	return strings.Join(
		[]string{
			m.textInput.View(), "\n",
			m.viewport.View(), "\n",
			ui.Truncate(ui.Notice(m.notice, m.noticeErr), m.width), "\n",
			footer(m.width, len(m.items)),
		},
		"",
	)
}

func footer(width, results int) string {
	return ui.Line(
		width,
		ui.Cell{
			Width: 10,
			Text:  ui.StyleLogo(" jdict "),
		},
		ui.Cell{
			Width: 40,
			Text:  ui.StyleHelp("ctrl+c:exit | ?:more help"),
		},
		ui.Cell{
			Text:  ui.StyleHelp(fmt.Sprintf("%d results", results)),
			Align: ui.RightAlign,
		},
	)
}

// Start runs the panel and returns the last replacement link.
func Start(m Model) (string, error) {
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return "", fmt.Errorf("could not start program: %w", err)
	}
	fm, ok := final.(Model)
	if !ok {
		return "", errors.New("unexpected final model")
	}
	return fm.Replacement(), nil
}
