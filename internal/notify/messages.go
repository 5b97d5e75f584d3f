package notify

import (
	"fmt"

	"github.com/rogersnm/tasklist/internal/app"
)

// ForResult returns the notice a command result should raise. Results that
// the user gets no feedback for (unknown ids, filter changes, opening an
// edit) return ok=false.
func ForResult(r app.Result) (kind Kind, message string, ok bool) {
	switch r.Outcome {
	case app.Invalid:
		return KindError, "Please enter a task!", true
	case app.Ignored:
		return "", "", false
	}

	switch r.Op {
	case app.OpAdd:
		return KindSuccess, "Task added successfully!", true
	case app.OpToggle:
		if r.Completed {
			return KindSuccess, "Task completed!", true
		}
		return KindSuccess, "Task uncompleted!", true
	case app.OpCommitDelete:
		return KindSuccess, "Task deleted!", true
	case app.OpSaveEdit:
		return KindSuccess, "Task updated successfully!", true
	case app.OpClearCompleted:
		if r.Outcome == app.NothingToClear {
			return KindError, "No completed tasks to clear!", true
		}
		return KindSuccess, fmt.Sprintf("%d completed tasks cleared!", r.Removed), true
	case app.OpClearAll:
		if r.Outcome == app.NothingToClear {
			return KindError, "No tasks to clear!", true
		}
		return KindSuccess, fmt.Sprintf("%d tasks cleared!", r.Removed), true
	}
	return "", "", false
}

// Attach subscribes the board to a, posting a notice for every result that
// has one.
func (b *Board) Attach(a *app.App) {
	a.Subscribe(func(r app.Result) {
		if kind, msg, ok := ForResult(r); ok {
			b.Post(kind, msg)
		}
	})
}
