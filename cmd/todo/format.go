package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"todo-assistant/internal/assistant"
	"todo-assistant/internal/model"
)

const (
	dayLayout  = "2006-01-02"
	timeLayout = "2006-01-02 15:04"
)

// formatWhen renders the due/end range of t in loc.
func formatWhen(t model.Task, loc *time.Location) string {
	if t.AllDay {
		s := t.DueDate.In(loc).Format(dayLayout)
		if t.EndDate != nil {
			// the end of an all-day range is exclusive
			last := t.EndDate.In(loc).AddDate(0, 0, -1)
			if last.Format(dayLayout) != s {
				s += " → " + last.Format(dayLayout)
			}
		}
		return s + " (all day)"
	}
	s := t.DueDate.In(loc).Format(timeLayout)
	if t.EndDate != nil {
		s += " → " + t.EndDate.In(loc).Format(timeLayout)
	}
	return s
}

// formatTask renders one task on a single line.
func formatTask(t model.Task, loc *time.Location) string {
	mark := "[ ]"
	if t.Completed {
		mark = "[x]"
	}
	line := fmt.Sprintf("%s %-6s %s  %s", mark, t.Priority, t.Title, formatWhen(t, loc))
	if len(t.Tags) > 0 {
		line += "  #" + strings.Join(t.Tags, " #")
	}
	return line
}

func printTasks(w io.Writer, tasks []model.Task, loc *time.Location) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, t := range tasks {
		fmt.Fprintln(w, "  "+formatTask(t, loc))
	}
}

// printBatch renders the reviewable items of a parse run.
func printBatch(w io.Writer, b assistant.Batch, loc *time.Location) {
	fmt.Fprintf(w, "Batch %s (%s, %d item(s))\n", b.ID, b.State, len(b.Items))
	for i, it := range b.Items {
		switch {
		case it.Blocking():
			fmt.Fprintf(w, "%2d. ERROR %s\n", i+1, it.Normalize.Error)
		case it.Editable != nil:
			fmt.Fprintf(w, "%2d. %s\n", i+1, formatTask(*it.Editable, loc))
		default:
			fmt.Fprintf(w, "%2d. %s\n", i+1, formatTask(*it.Normalize.Task, loc))
		}
		for _, warn := range it.Normalize.Warnings {
			fmt.Fprintf(w, "      warning: %s\n", warn)
		}
	}
}
