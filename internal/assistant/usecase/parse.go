package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"todo-assistant/internal/assistant"
	"todo-assistant/internal/model"
	"todo-assistant/pkg/gemini"
	"todo-assistant/pkg/llmtext"
)

// Parse runs one instruction through the model and builds a reviewable batch:
// requesting → extracting → parsing_json → normalizing → ready_for_review.
func (uc *implUseCase) Parse(ctx context.Context, sess model.Session, input assistant.ParseInput) (assistant.Batch, error) {
	apiKey := strings.TrimSpace(sess.APIKey)
	if apiKey == "" {
		return assistant.Batch{}, assistant.ErrMissingAPIKey
	}
	instruction := strings.TrimSpace(input.Instruction)
	if instruction == "" {
		return assistant.Batch{}, assistant.ErrEmptyInstruction
	}

	now := uc.now()
	uc.enter(ctx, assistant.StateRequesting)
	prompt := gemini.BuildTaskParsingPrompt(instruction, now, uc.dateMath.Location())
	res, err := uc.llm.Generate(ctx, apiKey, prompt, gemini.Options{
		Model:           sess.Model,
		Temperature:     sess.Temperature,
		MaxOutputTokens: sess.MaxOutputTokens,
	})
	if err != nil {
		uc.fail(ctx, assistant.StateRequesting, err)
		return assistant.Batch{}, fmt.Errorf("%w: %w", assistant.ErrModelCall, err)
	}

	uc.enter(ctx, assistant.StateExtracting)
	ext := llmtext.Extract(res.Raw)
	if ext.Truncated {
		uc.fail(ctx, assistant.StateExtracting, assistant.ErrTruncated)
		return assistant.Batch{}, assistant.ErrTruncated
	}
	uc.l.Debugf(ctx, "assistant.usecase.Parse: text from %s %s", ext.Source, ext.Path)

	uc.enter(ctx, assistant.StateParsingJSON)
	elems, ok := parseArray(ext.Text)
	if !ok {
		uc.fail(ctx, assistant.StateParsingJSON, assistant.ErrNotJSONArray)
		return assistant.Batch{}, assistant.ErrNotJSONArray
	}

	uc.enter(ctx, assistant.StateNormalizing)
	items := make([]assistant.Item, 0, len(elems))
	for _, v := range elems {
		items = append(items, uc.buildItem(decodeCandidate(v), instruction, now))
	}

	b, err := uc.repo.Create(ctx, assistant.Batch{
		Instruction: instruction,
		State:       assistant.StateReadyForReview,
		Source:      string(ext.Source),
		Raw:         string(res.Raw),
		Items:       items,
		CreatedAt:   now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.Parse.repo.Create: %v", err)
		return assistant.Batch{}, err
	}
	uc.enter(ctx, assistant.StateReadyForReview)
	uc.l.Infof(ctx, "assistant.usecase.Parse: batch %s with %d items", b.ID, len(b.Items))
	return b, nil
}

// buildItem reconciles the candidate's dates with the instruction, then normalizes it.
// Parsed keeps the candidate exactly as the model produced it.
func (uc *implUseCase) buildItem(c model.Candidate, instruction string, now time.Time) assistant.Item {
	resolved, warning := uc.resolveDates(c, instruction, now)
	res := uc.normalizer.Normalize(resolved)
	if warning != "" {
		res.Warnings = append([]string{warning}, res.Warnings...)
	}

	item := assistant.Item{Parsed: c, Normalize: res}
	if res.Task != nil {
		editable := *res.Task
		editable.Tags = append([]string(nil), res.Task.Tags...)
		item.Editable = &editable
	}
	return item
}

// parseArray reads text as a JSON array, retrying on the first [...] span it contains.
func parseArray(text string) ([]llmtext.Value, bool) {
	if v, err := llmtext.Parse([]byte(strings.TrimSpace(text))); err == nil && v.Kind == llmtext.KindList {
		return v.List, true
	}
	arr, ok := llmtext.FindJSONArray(text)
	if !ok {
		return nil, false
	}
	v, err := llmtext.Parse([]byte(arr))
	if err != nil || v.Kind != llmtext.KindList {
		return nil, false
	}
	return v.List, true
}

func (uc *implUseCase) enter(ctx context.Context, s assistant.State) {
	uc.l.Debugf(ctx, "assistant.usecase.Parse: → %s", s)
}

func (uc *implUseCase) fail(ctx context.Context, from assistant.State, err error) {
	uc.l.Warnf(ctx, "assistant.usecase.Parse: %s → %s: %v", from, assistant.StateFailed, err)
}
