package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rogersnm/tasklist/internal/id"
	"github.com/rogersnm/tasklist/internal/markdown"
	"github.com/rogersnm/tasklist/internal/model"
	"github.com/rogersnm/tasklist/internal/notify"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Strikethrough(true)
	removingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Faint(true)
	editingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	activeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12")).Padding(0, 1)
	inactiveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1)
	successStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	headerRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle      = lipgloss.NewStyle().Padding(0, 1)
	selectedStyle  = lipgloss.NewStyle().Padding(0, 1).Reverse(true)
)

// NoSelection renders a table without a highlighted row.
const NoSelection = -1

// RowStyle returns the text style for a row's state.
func RowStyle(r Row) lipgloss.Style {
	switch {
	case r.Removing:
		return removingStyle
	case r.Editing:
		return editingStyle
	case r.Completed:
		return completedStyle
	default:
		return pendingStyle
	}
}

func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// RenderTable renders the visible rows. selected is the index of the
// highlighted row, or NoSelection.
func RenderTable(v View, selected int) string {
	rows := make([][]string, len(v.Rows))
	for i, r := range v.Rows {
		rows[i] = []string{
			id.Format(r.ID),
			checkbox(r.Completed),
			RowStyle(r).Render(r.Text),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		}
	}
	t := table.New().
		Headers("ID", "Done", "Task", "Created").
		Rows(rows...).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerRowStyle
			}
			if row == selected {
				return selectedStyle
			}
			return cellStyle
		})
	return t.Render()
}

// RenderEmpty renders the empty state through glamour, falling back to the
// plain text if rendering fails.
func RenderEmpty(v View, width int) string {
	content := fmt.Sprintf("## %s\n\n%s\n", v.EmptyTitle(), emptyHint)
	out, err := markdown.RenderMarkdown(content, width)
	if err != nil {
		return v.EmptyTitle() + "\n" + emptyHint + "\n"
	}
	return out
}

// RenderList renders the task table, or the empty state if nothing is
// visible.
func RenderList(v View, selected, width int) string {
	if len(v.Rows) == 0 {
		return RenderEmpty(v, width)
	}
	return RenderTable(v, selected)
}

func RenderStats(c model.Counts) string {
	fields := []string{
		RenderField("Total", fmt.Sprint(c.Total)),
		RenderField("Completed", fmt.Sprint(c.Completed)),
		RenderField("Pending", fmt.Sprint(c.Pending)),
	}
	return strings.Join(fields, "   ")
}

func RenderField(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

// RenderFilterBar renders one button per filter with the active one
// highlighted.
func RenderFilterBar(active model.Filter) string {
	buttons := make([]string, len(model.Filters))
	for i, f := range model.Filters {
		label := strings.ToUpper(string(f[:1])) + string(f[1:])
		if f == active {
			buttons[i] = activeStyle.Render(label)
		} else {
			buttons[i] = inactiveStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func RenderNotice(n *notify.Notice) string {
	if n == nil {
		return ""
	}
	if n.Kind == notify.KindError {
		return errorStyle.Render("✗ " + n.Message)
	}
	return successStyle.Render("✓ " + n.Message)
}

// Render lays out the whole page: header, filter bar, list, stats and the
// active notice.
func Render(v View, title string, selected, width int) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(title))
	sb.WriteString("\n\n")
	sb.WriteString(RenderFilterBar(v.Filter))
	sb.WriteString("\n\n")
	sb.WriteString(RenderList(v, selected, width))
	sb.WriteString("\n")
	sb.WriteString(RenderStats(v.Counts))
	if n := RenderNotice(v.Notice); n != "" {
		sb.WriteString("\n")
		sb.WriteString(n)
	}
	sb.WriteString("\n")
	return sb.String()
}
