package llmtext

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

// Source names the rule that produced an Extraction's text.
type Source string

const (
	SourcePlainArray Source = "plain_array"
	SourcePlainText  Source = "plain_text"
	SourcePath       Source = "path"
	SourceDeepSearch Source = "deep_search"
	SourceRawJSON    Source = "raw_json"
)

// TruncatedFinishReason is the finish reason a model reports when it ran out of output tokens.
const TruncatedFinishReason = "MAX_TOKENS"

// Extraction is the text recovered from a model response body.
type Extraction struct {
	Text      string
	Truncated bool
	Source    Source
	// Path is the probe that matched when Source is SourcePath.
	Path string
}

var jsonArrayPattern = regexp.MustCompile(`\[[\s\S]*\]`)

// FindJSONArray returns the span from the first '[' to the last ']' in text.
func FindJSONArray(text string) (string, bool) {
	m := jsonArrayPattern.FindString(text)
	return m, m != ""
}

// step is one addressing step: an object key, or a list index when key is empty.
type step struct {
	key   string
	index int
}

type probe struct {
	name  string
	steps []step
}

func key(name string) step { return step{key: name} }
func index(n int) step     { return step{index: n} }

var candidateProbes = []probe{
	{name: "candidates[0]", steps: []step{key("candidates"), index(0)}},
	{name: "candidate", steps: []step{key("candidate")}},
}

var textProbes = []probe{
	{name: "content.parts[0].text", steps: []step{key("content"), key("parts"), index(0), key("text")}},
	{name: "output[0].content[0].text", steps: []step{key("output"), index(0), key("content"), index(0), key("text")}},
	{name: "content[0].text", steps: []step{key("content"), index(0), key("text")}},
	{name: "text", steps: []step{key("text")}},
}

var finishReasonKeys = []string{"finishReason", "finish_reason"}

func (p probe) lookup(v Value) (Value, bool) {
	cur := v
	for _, s := range p.steps {
		var ok bool
		if s.key != "" {
			cur, ok = cur.Get(s.key)
		} else {
			cur, ok = cur.Index(s.index)
		}
		if !ok {
			return Value{}, false
		}
	}
	return cur, true
}

// Extract pulls the generated text out of a response body of unknown shape.
// It never fails: the weakest outcome is the body itself.
func Extract(body []byte) Extraction {
	root, err := Parse(body)
	if err != nil {
		text := string(body)
		if arr, ok := FindJSONArray(text); ok {
			return Extraction{Text: arr, Source: SourcePlainArray}
		}
		return Extraction{Text: text, Source: SourcePlainText}
	}

	candidate, hasCandidate := findCandidate(root)
	truncated := hasCandidate && isTruncated(candidate)

	if hasCandidate {
		for _, p := range textProbes {
			if s, ok := nonEmptyString(p.lookup(candidate)); ok {
				return Extraction{Text: s, Truncated: truncated, Source: SourcePath, Path: "candidate." + p.name}
			}
		}
	}
	if s, ok := nonEmptyString(root.Get("text")); ok {
		return Extraction{Text: s, Truncated: truncated, Source: SourcePath, Path: "text"}
	}

	if s, ok := firstString(root); ok {
		return Extraction{Text: s, Truncated: truncated, Source: SourceDeepSearch}
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return Extraction{Text: string(body), Truncated: truncated, Source: SourceRawJSON}
	}
	return Extraction{Text: buf.String(), Truncated: truncated, Source: SourceRawJSON}
}

func findCandidate(root Value) (Value, bool) {
	for _, p := range candidateProbes {
		if v, ok := p.lookup(root); ok && v.Kind == KindObject {
			return v, true
		}
	}
	return Value{}, false
}

func isTruncated(candidate Value) bool {
	for _, key := range finishReasonKeys {
		if s, ok := nonEmptyString(candidate.Get(key)); ok && strings.EqualFold(strings.TrimSpace(s), TruncatedFinishReason) {
			return true
		}
	}
	return false
}

func nonEmptyString(v Value, ok bool) (string, bool) {
	if !ok {
		return "", false
	}
	s, ok := v.AsString()
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// firstString walks v depth first, list elements in order and object members in
// document order, and returns the first non-empty string leaf.
func firstString(v Value) (string, bool) {
	switch v.Kind {
	case KindString:
		if strings.TrimSpace(v.Str) != "" {
			return v.Str, true
		}
	case KindList:
		for _, elem := range v.List {
			if s, ok := firstString(elem); ok {
				return s, true
			}
		}
	case KindObject:
		for _, f := range v.Fields {
			if s, ok := firstString(f.Value); ok {
				return s, true
			}
		}
	}
	return "", false
}
