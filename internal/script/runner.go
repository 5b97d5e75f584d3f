package script

import (
	"fmt"
	"io"

	"github.com/rogersnm/tasklist/internal/app"
	"github.com/rogersnm/tasklist/internal/id"
	"github.com/rogersnm/tasklist/internal/model"
	"github.com/rogersnm/tasklist/internal/notify"
	"github.com/rogersnm/tasklist/internal/view"
)

// Runner executes script steps against an App, writing one line per notice
// and the rendered list for each "show" step.
type Runner struct {
	app   *app.App
	board *notify.Board
	out   io.Writer
	title string
	// Confirm, if set, is asked before clear-all runs. Returning false skips
	// the step.
	Confirm func(count int) (bool, error)
	// Quiet suppresses notice lines.
	Quiet bool
}

func NewRunner(a *app.App, board *notify.Board, out io.Writer) *Runner {
	r := &Runner{app: a, board: board, out: out, title: "Tasks"}
	board.Attach(a)
	a.Subscribe(r.report)
	return r
}

// report prints the notice res raises, if any.
func (r *Runner) report(res app.Result) {
	kind, msg, ok := notify.ForResult(res)
	if !ok || r.Quiet {
		return
	}
	fmt.Fprintln(r.out, view.RenderNotice(&notify.Notice{Kind: kind, Message: msg}))
}

// Run applies the script's front matter and then every step in order. It
// stops at the first step that cannot be executed.
func (r *Runner) Run(sc *Script) error {
	if sc.Meta.Title != "" {
		r.title = sc.Meta.Title
	}
	if sc.Meta.Filter != "" {
		f, err := model.ParseFilter(sc.Meta.Filter)
		if err != nil {
			return fmt.Errorf("front matter: %w", err)
		}
		r.app.SetFilter(f)
	}
	for _, step := range sc.Steps {
		if err := r.Step(step); err != nil {
			return fmt.Errorf("line %d (%s): %w", step.Line, step, err)
		}
	}
	return nil
}

// Step executes a single step.
func (r *Runner) Step(s Step) error {
	switch s.Verb {
	case VerbAdd:
		r.app.Add(s.Arg)
	case VerbSave:
		r.app.SaveEdit(s.Arg)
	case VerbCancel:
		r.app.CancelEdit()
	case VerbClearCompleted:
		r.app.ClearCompleted()
	case VerbClearAll:
		return r.clearAll()
	case VerbToggle, VerbDelete, VerbEdit:
		taskID, err := id.Parse(s.Arg)
		if err != nil {
			return err
		}
		switch s.Verb {
		case VerbToggle:
			r.app.Toggle(taskID)
		case VerbDelete:
			r.app.Delete(taskID)
		case VerbEdit:
			r.app.Edit(taskID)
		}
	case VerbFilter:
		f, err := model.ParseFilter(s.Arg)
		if err != nil {
			return err
		}
		r.app.SetFilter(f)
	case VerbShow:
		fmt.Fprint(r.out, r.Render())
	default:
		return fmt.Errorf("unknown command %q", s.Verb)
	}
	return nil
}

func (r *Runner) clearAll() error {
	if r.Confirm != nil {
		if n := r.app.Counts().Total; n > 0 {
			ok, err := r.Confirm(n)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
	}
	r.app.ClearAll()
	return nil
}

// Title is the script title, or "Tasks" when the script sets none.
func (r *Runner) Title() string {
	return r.title
}

// View derives the current view without the active notice.
func (r *Runner) View() view.View {
	return view.Build(r.app, nil)
}

// Render renders the current list with its filter bar and counters.
func (r *Runner) Render() string {
	return view.Render(r.View(), r.title, view.NoSelection, 0)
}
