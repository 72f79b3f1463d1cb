package usecase

const (
	WarnDateOverridden      = "dueDate %q replaced by %s from the instruction (%s)"
	WarnDateFromInstruction = "No dueDate from model → using %s from the instruction"

	maxFailuresInSummary = 3
)
