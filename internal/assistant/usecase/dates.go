package usecase

import (
	"fmt"
	"strings"
	"time"

	"todo-assistant/internal/model"
	"todo-assistant/pkg/datemath"
)

// resolveDates rewrites the candidate's date fields into forms the normalizer accepts.
// When the override policy distrusts the model, the date read from the instruction
// replaces it and the returned warning says so.
func (uc *implUseCase) resolveDates(c model.Candidate, instruction string, now time.Time) (model.Candidate, string) {
	modelDue := ""
	if c.DueDate != nil {
		modelDue = strings.TrimSpace(*c.DueDate)
	}

	decision := uc.dateMath.DecideOverride(instruction, modelDue, now)
	fb, hasFallback := uc.dateMath.ExtractFromInstruction(instruction, now)

	if decision.Override && hasFallback {
		return uc.applyFallback(c, modelDue, fb, now),
			fmt.Sprintf(WarnDateOverridden, modelDue, fb.Date, decision.Reason)
	}
	if modelDue == "" {
		if hasFallback && fb.Explicit {
			return uc.applyFallback(c, "", fb, now), fmt.Sprintf(WarnDateFromInstruction, fb.Date)
		}
		return c, ""
	}

	res, ok := uc.dateMath.Resolve(modelDue, now)
	if !ok {
		return c, ""
	}

	due := res.Date.String()
	switch {
	case res.Kind == datemath.KindISODateTime:
		due = modelDue
	case res.HasInstant():
		due = res.Instant.Format(time.RFC3339)
	case !c.AllDay && hasFallback && fb.HasHour && (fb.Date == res.Date || !fb.Explicit):
		due = uc.dateMath.ToInstant(res.Date, fb.Hour).Format(time.RFC3339)
	}
	c.DueDate = &due
	c.EndDate = uc.resolveEnd(c.EndDate, now)
	return c, ""
}

// applyFallback moves the candidate onto the instruction's date. An end date keeps
// its distance from the old due date, or is dropped when that distance is unknown.
func (uc *implUseCase) applyFallback(c model.Candidate, modelDue string, fb datemath.Fallback, now time.Time) model.Candidate {
	due := fb.Date.String()
	if fb.HasHour && !c.AllDay {
		due = uc.dateMath.ToInstant(fb.Date, fb.Hour).Format(time.RFC3339)
	}

	if c.EndDate != nil {
		c.EndDate = uc.shiftEnd(*c.EndDate, modelDue, fb.Date, now)
	}
	c.DueDate = &due
	return c
}

func (uc *implUseCase) shiftEnd(end, modelDue string, target datemath.CalendarDate, now time.Time) *string {
	if modelDue == "" {
		return nil
	}
	old, ok := uc.dateMath.Resolve(modelDue, now)
	if !ok {
		return nil
	}
	endRes, ok := uc.dateMath.Resolve(end, now)
	if !ok {
		return nil
	}

	delta := datemath.DaysBetween(old.Date, target)
	var s string
	if endRes.HasInstant() {
		s = endRes.Instant.AddDate(0, 0, delta).Format(time.RFC3339)
	} else {
		s = endRes.Date.AddDays(delta).String()
	}
	return &s
}

// resolveEnd turns relative or slash end dates into YYYY-MM-DD. ISO forms pass through.
func (uc *implUseCase) resolveEnd(end *string, now time.Time) *string {
	if end == nil {
		return nil
	}
	res, ok := uc.dateMath.Resolve(*end, now)
	if !ok || res.Kind == datemath.KindISODate || res.Kind == datemath.KindISODateTime {
		return end
	}
	s := res.Date.String()
	if res.HasInstant() {
		s = res.Instant.Format(time.RFC3339)
	}
	return &s
}
