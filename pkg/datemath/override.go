package datemath

import "time"

// DecideOverride chooses whether a date inferred from the instruction should replace
// the date the model produced. Only instructions carrying a relative cue are eligible;
// the model is then overridden when its date is missing, unresolvable, more than a week
// away from today, or in another year and not adjacent to today.
func (p *Parser) DecideOverride(instruction, modelDate string, now time.Time) Decision {
	if !HasRelativeCue(instruction) {
		return Decision{Override: false, Reason: ReasonNoRelativeCue}
	}
	if modelDate == "" {
		return Decision{Override: true, Reason: ReasonModelDateMissing}
	}
	res, ok := p.Resolve(modelDate, now)
	if !ok {
		return Decision{Override: true, Reason: ReasonModelDateInvalid}
	}

	today := p.Today(now)
	drift := abs(DaysBetween(today, res.Date))
	if drift > MaxRelativeDriftDays {
		return Decision{Override: true, Reason: ReasonDriftTooLarge}
	}
	if res.Date.Year != today.Year && drift > CrossYearDriftDays {
		return Decision{Override: true, Reason: ReasonYearMismatch}
	}
	return Decision{Override: false, Reason: ReasonWithinRange}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
