package app

import "github.com/rogersnm/tasklist/internal/model"

// Op names a command.
type Op string

const (
	OpAdd            Op = "add"
	OpToggle         Op = "toggle"
	OpRequestDelete  Op = "request-delete"
	OpCommitDelete   Op = "delete"
	OpEdit           Op = "edit"
	OpSaveEdit       Op = "save-edit"
	OpCancelEdit     Op = "cancel-edit"
	OpClearCompleted Op = "clear-completed"
	OpClearAll       Op = "clear-all"
	OpSetFilter      Op = "set-filter"
)

// Outcome classifies what a command did.
type Outcome int

const (
	// Applied means the command ran and state may have changed.
	Applied Outcome = iota
	// Invalid means input failed validation; nothing was changed.
	Invalid
	// Ignored means the target did not exist; nothing was changed.
	Ignored
	// NothingToClear means a clear command found nothing to remove.
	NothingToClear
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Invalid:
		return "invalid"
	case Ignored:
		return "ignored"
	case NothingToClear:
		return "nothing-to-clear"
	default:
		return "unknown"
	}
}

// Result is returned by every command and delivered to subscribers.
type Result struct {
	Op      Op
	Outcome Outcome
	// TaskID is the task the command created or targeted, if any.
	TaskID int
	// Completed is the task's state after a toggle.
	Completed bool
	// Removed counts tasks removed by delete and clear commands.
	Removed int
	Filter  model.Filter
	// Err explains an Invalid outcome.
	Err error
}

func (r Result) OK() bool {
	return r.Outcome == Applied
}
