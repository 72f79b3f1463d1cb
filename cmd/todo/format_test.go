package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"todo-assistant/internal/assistant"
	"todo-assistant/internal/assistant/normalize"
	"todo-assistant/internal/model"
	"todo-assistant/internal/task"
)

var loc = time.FixedZone("ICT", 7*3600)

func TestFormatWhen(t *testing.T) {
	due := time.Date(2024, 6, 11, 17, 0, 0, 0, loc)
	end := time.Date(2024, 6, 11, 18, 30, 0, 0, loc)
	dayStart := time.Date(2024, 6, 11, 0, 0, 0, 0, loc)
	dayEnd := time.Date(2024, 6, 14, 0, 0, 0, 0, loc)
	nextDay := time.Date(2024, 6, 12, 0, 0, 0, 0, loc)

	tcs := map[string]struct {
		task model.Task
		want string
	}{
		"timed": {
			task: model.Task{DueDate: due},
			want: "2024-06-11 17:00",
		},
		"timed range": {
			task: model.Task{DueDate: due, EndDate: &end},
			want: "2024-06-11 17:00 → 2024-06-11 18:30",
		},
		"all day single": {
			task: model.Task{DueDate: dayStart, EndDate: &nextDay, AllDay: true},
			want: "2024-06-11 (all day)",
		},
		"all day range uses inclusive last day": {
			task: model.Task{DueDate: dayStart, EndDate: &dayEnd, AllDay: true},
			want: "2024-06-11 → 2024-06-13 (all day)",
		},
		"converts to location": {
			task: model.Task{DueDate: due.UTC()},
			want: "2024-06-11 17:00",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			if got := formatWhen(tc.task, loc); got != tc.want {
				t.Errorf("formatWhen() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatTask(t *testing.T) {
	got := formatTask(model.Task{
		Title:     "Submit report",
		Priority:  model.PriorityHigh,
		DueDate:   time.Date(2024, 6, 11, 17, 0, 0, 0, loc),
		Tags:      []string{"work", "q2"},
		Completed: true,
	}, loc)

	for _, part := range []string{"[x]", "high", "Submit report", "2024-06-11 17:00", "#work #q2"} {
		if !strings.Contains(got, part) {
			t.Errorf("formatTask() = %q, missing %q", got, part)
		}
	}
}

func TestPrintBatch(t *testing.T) {
	ok := model.Task{Title: "Gym", Priority: model.PriorityMedium, DueDate: time.Date(2024, 6, 11, 9, 0, 0, 0, loc)}
	b := assistant.Batch{
		ID:    "b1",
		State: assistant.StateReadyForReview,
		Items: []assistant.Item{
			{Normalize: normalize.Result{Task: &ok, Warnings: []string{"Missing priority → medium"}}, Editable: &ok},
			{Normalize: normalize.Result{Error: "Missing title"}},
		},
	}

	var buf bytes.Buffer
	printBatch(&buf, b, loc)
	got := buf.String()

	for _, part := range []string{"Batch b1 (ready_for_review, 2 item(s))", "1. [ ] medium Gym", "warning: Missing priority → medium", "2. ERROR Missing title"} {
		if !strings.Contains(got, part) {
			t.Errorf("printBatch() output missing %q:\n%s", part, got)
		}
	}
}

func TestPrintDashboard(t *testing.T) {
	var buf bytes.Buffer
	printDashboard(&buf, task.DashboardOutput{
		Total: 4, Completed: 1, Active: 3, Overdue: 2, PerfectDays: 1,
		Recent: []task.Activity{{Title: "Gym", Kind: task.ActivityCompleted, At: time.Date(2024, 6, 10, 8, 0, 0, 0, loc)}},
	})
	got := buf.String()

	for _, part := range []string{"Total: 4", "Completed: 1 (25%)", "Overdue: 2", "Perfect days: 1", "completed", "Gym"} {
		if !strings.Contains(got, part) {
			t.Errorf("printDashboard() output missing %q:\n%s", part, got)
		}
	}
}

func TestCommands(t *testing.T) {
	want := map[string]bool{"parse": false, "list": false, "board": false, "dashboard": false, "gcal-auth": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q is not registered", name)
		}
	}
}
