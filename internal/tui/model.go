// ABOUTME: Bubble Tea model for the interactive suggestion session
// ABOUTME: Value semantics; all engine work happens in the session, not here

package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/pubpal/pubpal/internal/catalog"
)

// bodyState selects what the list area shows.
type bodyState int

const (
	stateIdle bodyState = iota
	stateLoading
	stateList
	stateEmpty
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const listHeight = 12

// Model renders the suggestion session. It never talks to the registry or
// the manifest itself; every state change arrives as a message from the
// session bridge.
type Model struct {
	sh *shared

	input     string
	mode      catalog.Mode
	state     bodyState
	recs      []catalog.Record
	emptyText string
	selected  int
	scrollOff int

	notice  string
	errText string

	spinnerFrame int
	showDetails  bool
	width        int
	height       int
}

// newModel creates the initial model bound to the shared state.
func newModel(sh *shared) Model {
	return Model{sh: sh, mode: catalog.ModeAll, width: 80}
}

// Init triggers the first catalog build.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		m.sh.ctrl.Refresh()
		return nil
	}
}

// Update handles key events and session messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case loadingMsg:
		m.state = stateLoading
		return m, spinnerTick()

	case recordsMsg:
		m.state = stateList
		m.recs = msg.recs
		m.selected = 0
		m.scrollOff = 0

	case emptyMsg:
		m.state = stateEmpty
		m.recs = nil
		m.emptyText = msg.msg

	case clearInputMsg:
		m.input = ""
		m.state = stateIdle
		m.recs = nil

	case noticeMsg:
		m.notice = msg.msg
		m.errText = ""

	case errorMsg:
		m.errText = msg.msg
		m.notice = ""
		if m.state == stateLoading {
			m.state = stateIdle // leave the prior rendered state visible
		}

	case spinnerTickMsg:
		if m.state == stateLoading {
			m.spinnerFrame = (m.spinnerFrame + 1) % len(spinnerFrames)
			return m, spinnerTick()
		}
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		if m.showDetails {
			m.showDetails = false
			return m, nil
		}
		m.sh.ctrl.Close()
		return m, tea.Quit

	case tea.KeyTab:
		if m.mode == catalog.ModeAll {
			m.mode = catalog.ModeInstalled
		} else {
			m.mode = catalog.ModeAll
		}
		m.sh.ctrl.Toggled()
		return m, nil

	case tea.KeyUp:
		if m.selected > 0 {
			m.selected--
			if m.selected < m.scrollOff {
				m.scrollOff = m.selected
			}
		}
		return m, nil

	case tea.KeyDown:
		if m.selected < len(m.recs)-1 {
			m.selected++
			if m.selected >= m.scrollOff+listHeight {
				m.scrollOff = m.selected - listHeight + 1
			}
		}
		return m, nil

	case tea.KeyEnter:
		if rec, ok := m.current(); ok {
			m.sh.ctrl.Selected(rec)
		}
		return m, nil

	case tea.KeyCtrlX:
		if rec, ok := m.current(); ok {
			m.sh.ctrl.ActionPressed(rec)
		}
		return m, nil

	case tea.KeyCtrlD:
		if _, ok := m.current(); ok {
			m.showDetails = !m.showDetails
		}
		return m, nil

	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
			m.sh.ctrl.TextChanged(m.input)
		}
		return m, nil

	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			m.input += string(msg.Runes)
			m.sh.ctrl.TextChanged(m.input)
		}
		return m, nil
	}
	return m, nil
}

// current returns the selected record, if any.
func (m Model) current() (catalog.Record, bool) {
	if m.state != stateList || m.selected < 0 || m.selected >= len(m.recs) {
		return catalog.Record{}, false
	}
	return m.recs[m.selected], true
}

// View renders header, input, body, and footer.
func (m Model) View() string {
	var b strings.Builder

	header := "pubpal · " + m.mode.String() + " packages"
	b.WriteString(styles.Title.Render(header))
	b.WriteString(styles.Dim.Render("  (tab toggles view)"))
	b.WriteByte('\n')

	b.WriteString(styles.Prompt.Render("❯ "))
	b.WriteString(m.input)
	b.WriteString("▏\n")

	if m.showDetails {
		if rec, ok := m.current(); ok {
			b.WriteString(m.renderDetails(rec))
			b.WriteByte('\n')
			b.WriteString(m.footer())
			return b.String()
		}
	}

	switch m.state {
	case stateLoading:
		b.WriteString(styles.Dim.Render(spinnerFrames[m.spinnerFrame] + " searching..."))
		b.WriteByte('\n')
	case stateEmpty:
		b.WriteString(styles.Dim.Render("  " + m.emptyText))
		b.WriteByte('\n')
	case stateList:
		b.WriteString(m.renderList())
	}

	b.WriteString(m.footer())
	return b.String()
}

func (m Model) renderList() string {
	var b strings.Builder
	end := min(m.scrollOff+listHeight, len(m.recs))
	for i := m.scrollOff; i < end; i++ {
		b.WriteString(m.renderItem(m.recs[i], i == m.selected))
		b.WriteByte('\n')
	}
	if end < len(m.recs) {
		b.WriteString(styles.Dim.Render("  ..."))
		b.WriteByte('\n')
	}
	return b.String()
}

// versionColWidth is the fixed cell width of the version column.
const versionColWidth = 12

func (m Model) renderItem(rec catalog.Record, selected bool) string {
	marker := "  "
	if rec.Installed {
		marker = styles.Installed.Render("✓ ")
	}

	name := highlightName(rec.Name, m.input)
	version := rec.DeclaredVersion
	if version == "" {
		version = rec.LatestVersion
	}

	line := marker + name
	line += " " + styles.Dim.Render(pad(version, versionColWidth))
	if !rec.Actionable() {
		line += " " + styles.Dim.Render("(in use)")
	} else if rec.Imported {
		line += " " + styles.Dim.Render("(imported)")
	}
	if rec.Description != "" {
		avail := m.width - 30
		if avail > 8 {
			line += "  " + styles.Dim.Render(truncate(rec.Description, avail))
		}
	}

	if selected {
		return styles.Selected.Render("›") + line
	}
	return " " + line
}

func (m Model) footer() string {
	var parts []string
	if m.errText != "" {
		parts = append(parts, styles.Err.Render(truncate(m.errText, m.width-2)))
	} else if m.notice != "" {
		parts = append(parts, styles.Notice.Render(truncate(m.notice, m.width-2)))
	}
	parts = append(parts, styles.Dim.Render("enter import · ctrl+x add/remove · ctrl+d details · esc quit"))
	return strings.Join(parts, "\n")
}

// highlightName emphasizes the fuzzy-matched characters of name. Display
// only; list order always comes from the catalog.
func highlightName(name, query string) string {
	if query == "" {
		return name
	}
	matches := fuzzy.Find(query, []string{name})
	if len(matches) == 0 {
		return name
	}
	matched := make(map[int]bool, len(matches[0].MatchedIndexes))
	for _, idx := range matches[0].MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder
	for i, r := range name {
		if matched[i] {
			b.WriteString(styles.Match.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}
