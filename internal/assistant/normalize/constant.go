package normalize

// Messages attached to results. They are shown to users verbatim.
const (
	ErrMissingTitle = "Missing title"

	WarnPriorityDefault    = "Priority missing → default to medium"
	WarnNoDueDate          = "No due date provided → defaulting to now"
	WarnUnsupportedDueDate = "Unsupported dueDate format; defaulting to now"
	WarnUnparsableDueDate  = "Could not parse provided dueDate; defaulting to now"
	WarnEndBeforeDue       = "endDate precedes dueDate; ignored"
)
