package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrNotFound        = errors.New("task not found")
	ErrEmptyTitle      = errors.New("title is required")
	ErrTitleTooLong    = errors.New("title must be at most 80 characters")
	ErrInvalidPriority = errors.New("priority must be low, medium or high")
	ErrMissingDueDate  = errors.New("dueDate is required")
	ErrEndBeforeDue    = errors.New("endDate must not be before dueDate")
	ErrInvalidEnd      = errors.New("all-day endDate must be after the start of the due day")
	ErrInvalidFilter   = errors.New("invalid list filter")
)
