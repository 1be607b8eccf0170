package display

import (
	"image"
	"strings"

	"addnoise/internal/logging"
	"addnoise/internal/tui/styles"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Lines taken by the title, the canvas border and the help footer.
const chromeRows = 6

// Terminal size assumed until the first WindowSizeMsg arrives.
const (
	defaultCols = 80
	defaultRows = 24
)

type KeyMap struct {
	Dismiss key.Binding
}

// DefaultKeyMap feeds the help footer only; Update dismisses on any key.
// The keys stay set because help skips bindings without keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Dismiss: key.NewBinding(key.WithKeys("q", "esc", "enter", " "), key.WithHelp("any key", "close")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dismiss}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Dismiss}}
}

// Model is the bubbletea model behind the image window.
type Model struct {
	logger *logging.AppLogger

	title   string
	img     image.Image
	maxCols int
	maxRows int

	width     int
	height    int
	canvas    string
	keys      KeyMap
	help      help.Model
	Dismissed bool
}

func NewModel(title string, img image.Image, maxCols, maxRows int, logger *logging.AppLogger) Model {
	m := Model{
		logger:  logger,
		title:   title,
		img:     img,
		maxCols: maxCols,
		maxRows: maxRows,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.resize(defaultCols, defaultRows)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.logger != nil {
		m.logger.LogMessage(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		// Every key dismisses the window, like waiting on any keypress.
		if m.logger != nil {
			m.logger.LogUserAction("dismiss", msg.String())
		}
		m.Dismissed = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.Dismissed {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(m.title))
	b.WriteString("\n")
	if m.canvas == "" {
		b.WriteString(styles.ErrorStyle.Render("terminal too small to draw image"))
	} else {
		b.WriteString(styles.CanvasStyle.Render(m.canvas))
	}
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Canvas returns the rendered image cells at the current size.
func (m Model) Canvas() string {
	return m.canvas
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	cols := width - 2 // canvas border
	rows := height - chromeRows
	if m.maxCols > 0 {
		cols = min(cols, m.maxCols)
	}
	if m.maxRows > 0 {
		rows = min(rows, m.maxRows)
	}
	m.canvas = Render(m.img, cols, rows)
}
