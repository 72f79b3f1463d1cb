package usecase

import (
	"strings"

	"todo-assistant/internal/model"
	"todo-assistant/pkg/llmtext"
)

// decodeCandidate reads one array element leniently. Wrong types degrade to empty
// values; the normalizer decides what is fatal.
func decodeCandidate(v llmtext.Value) model.Candidate {
	var c model.Candidate
	if f, ok := v.Get("title"); ok {
		c.Title = strings.TrimSpace(scalarText(f))
	}
	if f, ok := v.Get("description"); ok && f.Kind != llmtext.KindNull {
		s := scalarText(f)
		c.Description = &s
	}
	if f, ok := v.Get("priority"); ok {
		c.Priority = scalarText(f)
	}
	if f, ok := v.Get("allDay"); ok {
		c.AllDay = truthy(f)
	}
	c.DueDate = optionalText(v, "dueDate")
	c.EndDate = optionalText(v, "endDate")
	if f, ok := v.Get("tags"); ok && f.Kind == llmtext.KindList {
		c.Tags = make([]string, 0, len(f.List))
		for _, t := range f.List {
			c.Tags = append(c.Tags, scalarText(t))
		}
	}
	return c
}

func optionalText(v llmtext.Value, key string) *string {
	f, ok := v.Get(key)
	if !ok {
		return nil
	}
	s := strings.TrimSpace(scalarText(f))
	if s == "" {
		return nil
	}
	return &s
}

// scalarText renders strings, numbers and booleans as text; anything else is empty.
func scalarText(v llmtext.Value) string {
	switch v.Kind {
	case llmtext.KindString:
		return v.Str
	case llmtext.KindNumber:
		return v.Num.String()
	case llmtext.KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	}
	return ""
}

func truthy(v llmtext.Value) bool {
	switch v.Kind {
	case llmtext.KindBool:
		return v.Bool
	case llmtext.KindString:
		return v.Str != ""
	case llmtext.KindNumber:
		f, err := v.Num.Float64()
		return err == nil && f != 0
	case llmtext.KindList, llmtext.KindObject:
		return true
	}
	return false
}
