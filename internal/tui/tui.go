// Package tui is the interactive terminal front end. All commands run on
// Bubble Tea's update loop; timers come back as messages on the same loop.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rogersnm/tasklist/internal/app"
	"github.com/rogersnm/tasklist/internal/editor"
	"github.com/rogersnm/tasklist/internal/markdown"
	"github.com/rogersnm/tasklist/internal/model"
	"github.com/rogersnm/tasklist/internal/notify"
	"github.com/rogersnm/tasklist/internal/view"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeHelp
)

type Options struct {
	Title       string
	DeleteDelay time.Duration
	AltScreen   bool
}

type deleteDueMsg struct {
	taskID int
}

type noticeExpiredMsg struct {
	seq uint64
}

type editorDoneMsg struct {
	draft *editor.Draft
	err   error
}

type Model struct {
	app    *app.App
	board  *notify.Board
	opts   Options
	mode   mode
	input  textinput.Model
	cursor int
	width  int
	queued []tea.Cmd
}

func New(a *app.App, board *notify.Board, opts Options) *Model {
	if opts.Title == "" {
		opts.Title = "Tasks"
	}
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50

	m := &Model{app: a, board: board, opts: opts, input: ti}
	a.Subscribe(m.onResult)
	return m
}

// Run starts the program and blocks until the user quits.
func Run(a *app.App, board *notify.Board, opts Options) error {
	var progOpts []tea.ProgramOption
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(New(a, board, opts), progOpts...)
	_, err := p.Run()
	return err
}

func (m *Model) onResult(r app.Result) {
	if kind, msg, ok := notify.ForResult(r); ok {
		m.notify(kind, msg)
	}
}

func (m *Model) notify(kind notify.Kind, msg string) {
	n := m.board.Post(kind, msg)
	m.queued = append(m.queued, tea.Tick(m.board.Lifetime(), func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: n.Seq}
	}))
}

// flush returns cmds together with any timers queued by command results.
func (m *Model) flush(cmds ...tea.Cmd) tea.Cmd {
	cmds = append(cmds, m.queued...)
	m.queued = nil
	m.clampCursor()
	return tea.Batch(cmds...)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-12, 10)
		return m, nil
	case noticeExpiredMsg:
		m.board.Retire(msg.seq)
		return m, nil
	case deleteDueMsg:
		m.app.CommitDelete(msg.taskID)
		if _, editing := m.app.EditingTarget(); m.mode == modeEdit && !editing {
			m.leaveInput()
		}
		return m, m.flush()
	case editorDoneMsg:
		return m, m.flush(m.finishExternalEdit(msg))
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeAdd, modeEdit:
			cmd := m.updateInput(msg)
			return m, m.flush(cmd)
		case modeHelp:
			m.mode = modeList
			return m, nil
		default:
			cmd := m.updateList(msg)
			return m, m.flush(cmd)
		}
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "down", "j":
		m.cursor++
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "a":
		m.mode = modeAdd
		m.input.Placeholder = "What needs to be done?"
		m.input.SetValue("")
		return m.input.Focus()
	case "e":
		t, ok := m.selected()
		if !ok || !m.app.Edit(t.ID).OK() {
			return nil
		}
		m.mode = modeEdit
		m.input.Placeholder = ""
		m.input.SetValue(t.Text)
		m.input.CursorEnd()
		return m.input.Focus()
	case "E":
		return m.startExternalEdit()
	case " ", "space", "x":
		if t, ok := m.selected(); ok {
			m.app.Toggle(t.ID)
		}
	case "d":
		t, ok := m.selected()
		if !ok || !m.app.RequestDelete(t.ID).OK() {
			return nil
		}
		return m.scheduleDelete(t.ID)
	case "c":
		m.app.ClearCompleted()
	case "C":
		m.app.ClearAll()
	case "f", "tab":
		m.app.SetFilter(m.app.Filter().Next())
	case "1":
		m.app.SetFilter(model.FilterAll)
	case "2":
		m.app.SetFilter(model.FilterPending)
	case "3":
		m.app.SetFilter(model.FilterCompleted)
	case "?":
		m.mode = modeHelp
	}
	return nil
}

func (m *Model) scheduleDelete(taskID int) tea.Cmd {
	if m.opts.DeleteDelay <= 0 {
		m.app.CommitDelete(taskID)
		return nil
	}
	return tea.Tick(m.opts.DeleteDelay, func(time.Time) tea.Msg {
		return deleteDueMsg{taskID: taskID}
	})
}

func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		if m.mode == modeEdit {
			m.app.CancelEdit()
		}
		m.leaveInput()
		return nil
	case "enter":
		if m.mode == modeAdd {
			if m.app.Add(m.input.Value()).OK() {
				m.input.SetValue("")
				m.cursor = 0
			}
			return nil
		}
		if m.app.SaveEdit(m.input.Value()).OK() {
			m.leaveInput()
		}
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) leaveInput() {
	m.mode = modeList
	m.input.SetValue("")
	m.input.Blur()
}

func (m *Model) startExternalEdit() tea.Cmd {
	t, ok := m.selected()
	if !ok || !m.app.Edit(t.ID).OK() {
		return nil
	}
	draft, err := editor.NewDraft(t.Text)
	if err != nil {
		m.app.CancelEdit()
		m.notify(notify.KindError, err.Error())
		return nil
	}
	return tea.ExecProcess(editor.Command(draft.Path), func(err error) tea.Msg {
		return editorDoneMsg{draft: draft, err: err}
	})
}

func (m *Model) finishExternalEdit(msg editorDoneMsg) tea.Cmd {
	defer func() {
		if err := msg.draft.Remove(); err != nil {
			m.notify(notify.KindError, err.Error())
		}
	}()
	if msg.err != nil {
		m.app.CancelEdit()
		m.notify(notify.KindError, fmt.Sprintf("Editor failed: %v", msg.err))
		return nil
	}
	text, err := msg.draft.Read()
	if err != nil {
		m.app.CancelEdit()
		m.notify(notify.KindError, err.Error())
		return nil
	}
	if !m.app.SaveEdit(text).OK() {
		m.app.CancelEdit()
	}
	return nil
}

func (m *Model) selected() (model.Task, bool) {
	visible := m.app.VisibleTasks()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return model.Task{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.app.VisibleTasks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

const helpText = `# Keys

| Key | Action |
|---|---|
| a | add a task |
| e / E | edit inline / in $EDITOR |
| space, x | toggle completed |
| d | delete |
| c / C | clear completed / clear all |
| f, tab | next filter |
| 1 2 3 | all / pending / completed |
| j k | move |
| q | quit |

Press any key to go back.
`

func (m *Model) View() string {
	if m.mode == modeHelp {
		out, err := markdown.RenderMarkdown(helpText, m.width)
		if err != nil {
			return helpText
		}
		return out
	}

	v := view.Build(m.app, m.board)
	selected := view.NoSelection
	if m.mode == modeList && len(v.Rows) > 0 {
		selected = m.cursor
	}

	var sb strings.Builder
	sb.WriteString(view.Render(v, m.opts.Title, selected, m.width))
	switch m.mode {
	case modeAdd:
		sb.WriteString("\nAdd:  " + m.input.View() + "\n")
	case modeEdit:
		sb.WriteString("\nEdit: " + m.input.View() + "\n")
	}
	sb.WriteString("\n" + view.RenderField("keys", "a add  e edit  x toggle  d delete  c/C clear  f filter  ? help  q quit") + "\n")
	return sb.String()
}
