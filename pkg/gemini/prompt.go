package gemini

import (
	"fmt"
	"time"
)

// TaskParsingSystemPrompt is the instruction block sent ahead of the user's text.
const TaskParsingSystemPrompt = `You are a strict JSON extractor. Parse the user's instruction into a JSON array of task objects.
RETURN ONLY A JSON ARRAY (no extra words, no markdown, be compact).

RULES:
1. Resolve relative dates ("today", "tomorrow", "next week", weekday names) against the CURRENT DATE below, never against your own notion of now.
2. Prefer "YYYY-MM-DD" for dueDate when only a date is known. Use a full ISO-8601 date-time with offset when a time of day is given.
3. priority MUST be exactly one of "low", "medium", "high".
4. allDay is true only when the task spans whole days with no time of day.
5. For allDay tasks endDate is the last included day, or null for a single day.

Schema:
[
  {
    "title": string,
    "description": string | null,
    "priority": "low"|"medium"|"high",
    "allDay": boolean,
    "dueDate": string | null,
    "endDate": string | null,
    "tags": string[]
  }
]`

// BuildTaskParsingPrompt builds the full prompt for task parsing, anchored to now in loc.
func BuildTaskParsingPrompt(userInput string, now time.Time, loc *time.Location) string {
	local := now.In(loc)
	return fmt.Sprintf("%s\n\nCURRENT DATE: %s (%s)\nCURRENT TIME: %s\nTIMEZONE: %s\n\nInstruction:\n\"\"\"%s\"\"\"\n",
		TaskParsingSystemPrompt,
		local.Format("2006-01-02"),
		local.Weekday(),
		local.Format(time.RFC3339),
		loc.String(),
		userInput,
	)
}
