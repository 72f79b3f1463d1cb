package assistant

import "errors"

var (
	ErrMissingAPIKey    = errors.New("missing API key")
	ErrEmptyInstruction = errors.New("please enter an instruction")
	ErrModelCall        = errors.New("model call failed")
	ErrTruncated        = errors.New("model output was truncated (MAX_TOKENS): increase maxOutputTokens or shorten the prompt")
	ErrNotJSONArray     = errors.New("model did not return a JSON array: check raw output")
	ErrBatchNotFound    = errors.New("batch not found or expired")
	ErrBatchHasErrors   = errors.New("fix errors before creating")
	ErrNoItems          = errors.New("no parsed tasks to create")
	ErrItemIndex        = errors.New("item index out of range")
	ErrInvalidPriority  = errors.New("priority must be low, medium or high")
	ErrEmptyEditedTitle = errors.New("title cannot be empty")
)
