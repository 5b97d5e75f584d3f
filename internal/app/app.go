// Package app holds the task list session state and the commands that
// mutate it. An App has a single owner and is not safe for concurrent use.
package app

import (
	"errors"
	"fmt"

	"github.com/rogersnm/tasklist/internal/model"
	"github.com/rogersnm/tasklist/internal/store"
)

// Listener is called with the result of every command.
type Listener func(Result)

type App struct {
	store     store.Store
	filter    model.Filter
	editing   int
	removing  map[int]bool
	listeners []Listener
}

func New(s store.Store) *App {
	return &App{
		store:    s,
		filter:   model.FilterAll,
		removing: make(map[int]bool),
	}
}

// NewSession returns an App over a fresh in-memory store.
func NewSession() *App {
	return New(store.NewMemory())
}

// Subscribe registers fn to receive every command result.
func (a *App) Subscribe(fn Listener) {
	a.listeners = append(a.listeners, fn)
}

func (a *App) emit(r Result) Result {
	for _, fn := range a.listeners {
		fn(r)
	}
	return r
}

func (a *App) Add(text string) Result {
	t, err := a.store.Add(text)
	if err != nil {
		return a.emit(Result{Op: OpAdd, Outcome: Invalid, Err: err})
	}
	return a.emit(Result{Op: OpAdd, Outcome: Applied, TaskID: t.ID})
}

func (a *App) Toggle(taskID int) Result {
	t, err := a.store.Get(taskID)
	if err != nil {
		return a.emit(Result{Op: OpToggle, Outcome: Ignored, TaskID: taskID})
	}
	t, err = a.store.SetCompleted(taskID, !t.Completed)
	if err != nil {
		return a.emit(Result{Op: OpToggle, Outcome: Ignored, TaskID: taskID})
	}
	return a.emit(Result{Op: OpToggle, Outcome: Applied, TaskID: taskID, Completed: t.Completed})
}

// RequestDelete marks a task as being removed without touching the store.
// The caller commits the removal later with CommitDelete. A second request
// for a task already marked is ignored so only one removal is scheduled.
func (a *App) RequestDelete(taskID int) Result {
	if _, err := a.store.Get(taskID); err != nil || a.removing[taskID] {
		return a.emit(Result{Op: OpRequestDelete, Outcome: Ignored, TaskID: taskID})
	}
	a.removing[taskID] = true
	return a.emit(Result{Op: OpRequestDelete, Outcome: Applied, TaskID: taskID})
}

// CommitDelete removes the task. It does not require a prior RequestDelete.
func (a *App) CommitDelete(taskID int) Result {
	delete(a.removing, taskID)
	if err := a.store.Delete(taskID); err != nil {
		return a.emit(Result{Op: OpCommitDelete, Outcome: Ignored, TaskID: taskID})
	}
	if a.editing == taskID {
		a.editing = 0
	}
	return a.emit(Result{Op: OpCommitDelete, Outcome: Applied, TaskID: taskID, Removed: 1})
}

// Delete runs both deletion phases back to back.
func (a *App) Delete(taskID int) Result {
	if r := a.RequestDelete(taskID); !r.OK() {
		return r
	}
	return a.CommitDelete(taskID)
}

func (a *App) Edit(taskID int) Result {
	if _, err := a.store.Get(taskID); err != nil {
		return a.emit(Result{Op: OpEdit, Outcome: Ignored, TaskID: taskID})
	}
	a.editing = taskID
	return a.emit(Result{Op: OpEdit, Outcome: Applied, TaskID: taskID})
}

// SaveEdit replaces the text of the task under edit. Empty text leaves the
// editing cursor in place so the user can try again.
func (a *App) SaveEdit(text string) Result {
	target := a.editing
	if _, err := model.CleanText(text); err != nil {
		return a.emit(Result{Op: OpSaveEdit, Outcome: Invalid, TaskID: target, Err: err})
	}
	if target == 0 {
		return a.emit(Result{Op: OpSaveEdit, Outcome: Ignored})
	}
	if _, err := a.store.SetText(target, text); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			a.editing = 0
			return a.emit(Result{Op: OpSaveEdit, Outcome: Ignored, TaskID: target})
		}
		return a.emit(Result{Op: OpSaveEdit, Outcome: Invalid, TaskID: target, Err: err})
	}
	a.editing = 0
	return a.emit(Result{Op: OpSaveEdit, Outcome: Applied, TaskID: target})
}

func (a *App) CancelEdit() Result {
	target := a.editing
	a.editing = 0
	return a.emit(Result{Op: OpCancelEdit, Outcome: Applied, TaskID: target})
}

func (a *App) ClearCompleted() Result {
	removed := a.store.DeleteWhere(func(t model.Task) bool { return t.Completed })
	if removed == 0 {
		return a.emit(Result{Op: OpClearCompleted, Outcome: NothingToClear})
	}
	a.forgetRemoved()
	return a.emit(Result{Op: OpClearCompleted, Outcome: Applied, Removed: removed})
}

func (a *App) ClearAll() Result {
	removed := a.store.DeleteWhere(func(model.Task) bool { return true })
	if removed == 0 {
		return a.emit(Result{Op: OpClearAll, Outcome: NothingToClear})
	}
	a.forgetRemoved()
	return a.emit(Result{Op: OpClearAll, Outcome: Applied, Removed: removed})
}

// forgetRemoved drops the editing cursor and removal marks that point at
// tasks no longer in the store.
func (a *App) forgetRemoved() {
	if a.editing != 0 {
		if _, err := a.store.Get(a.editing); err != nil {
			a.editing = 0
		}
	}
	for taskID := range a.removing {
		if _, err := a.store.Get(taskID); err != nil {
			delete(a.removing, taskID)
		}
	}
}

// SetFilter replaces the filter. f must be one of the model.Filter
// constants; parse user input with model.ParseFilter first.
func (a *App) SetFilter(f model.Filter) Result {
	if err := model.ValidateFilter(f); err != nil {
		panic(fmt.Sprintf("app: SetFilter: %v", err))
	}
	a.filter = f
	return a.emit(Result{Op: OpSetFilter, Outcome: Applied, Filter: f})
}

// Tasks returns every task in store order.
func (a *App) Tasks() []model.Task {
	return a.store.List()
}

func (a *App) VisibleTasks() []model.Task {
	return a.filter.Apply(a.store.List())
}

func (a *App) Counts() model.Counts {
	return model.CountTasks(a.store.List())
}

func (a *App) Filter() model.Filter {
	return a.filter
}

// EditingTarget returns the task open for editing, if any.
func (a *App) EditingTarget() (model.Task, bool) {
	if a.editing == 0 {
		return model.Task{}, false
	}
	t, err := a.store.Get(a.editing)
	if err != nil {
		return model.Task{}, false
	}
	return t, true
}

// Removing reports whether a delete was requested but not yet committed.
func (a *App) Removing(taskID int) bool {
	return a.removing[taskID]
}
