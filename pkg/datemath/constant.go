package datemath

const (
	// DateLayout is the ISO calendar date layout.
	DateLayout = "2006-01-02"

	// DefaultTimedHour is the hour given to timed tasks that only carry a date.
	DefaultTimedHour = 9
	// DefaultAllDayHour is the hour of all-day boundaries (local midnight).
	DefaultAllDayHour = 0

	// MaxRelativeDriftDays is how far a model date may sit from today before a relative
	// instruction overrides it.
	MaxRelativeDriftDays = 7
	// CrossYearDriftDays is the tolerated drift when the model date falls in another year.
	CrossYearDriftDays = 1
)

// Override reasons.
const (
	ReasonNoRelativeCue    = "instruction has no relative cue"
	ReasonModelDateMissing = "model supplied no date"
	ReasonModelDateInvalid = "model date could not be resolved"
	ReasonDriftTooLarge    = "model date is more than 7 days from today"
	ReasonYearMismatch     = "model date falls in another year"
	ReasonWithinRange      = "model date is consistent with the instruction"
)
