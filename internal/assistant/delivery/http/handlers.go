package http

import (
	"github.com/gin-gonic/gin"

	"todo-assistant/pkg/response"
)

// Parse godoc
// @Summary     Parse an instruction into tasks
// @Description Sends the instruction to the language model and returns a batch of normalized
// @Description tasks for review. Nothing is saved until the batch is committed.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-Api-Key header string   false "Model API key (falls back to the configured key)"
// @Param       body      body   parseReq true  "Instruction and generation settings"
// @Success     200 {object} batchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Missing API key"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Model call failed, truncated or not a JSON array"
// @Router      /api/v1/assistant/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	sess, input, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.uc.Parse(ctx, sess, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBatchResp(b, false))
}

// GetBatch godoc
// @Summary     Get a batch
// @Tags        Assistant
// @Produce     json
// @Param       id  path  string true  "Batch ID"
// @Param       raw query bool   false "Include the raw model response"
// @Success     200 {object} batchResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/assistant/batches/{id} [GET]
func (h *handler) GetBatch(c *gin.Context) {
	ctx := c.Request.Context()

	b, err := h.uc.GetBatch(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBatchResp(b, c.Query("raw") == "true"))
}

// UpdateItem godoc
// @Summary     Edit one item of a batch
// @Description Adjusts the editable task of an item before commit. Supplying a title resolves
// @Description a "Missing title" error.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       id    path string        true "Batch ID"
// @Param       index path int           true "Item index"
// @Param       body  body updateItemReq true "Fields to change"
// @Success     200 {object} batchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/assistant/batches/{id}/items/{index} [PATCH]
func (h *handler) UpdateItem(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUpdateItemReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.uc.UpdateItem(ctx, input)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBatchResp(b, false))
}

// Commit godoc
// @Summary     Commit a batch
// @Description Creates every item as a task. Rejected while any item still has an error.
// @Tags        Assistant
// @Produce     json
// @Param       id path string true "Batch ID"
// @Success     200 {object} commitResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Batch has errors"
// @Router      /api/v1/assistant/batches/{id}/commit [POST]
func (h *handler) Commit(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Commit(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCommitResp(out))
}

// Cancel godoc
// @Summary     Cancel a batch
// @Tags        Assistant
// @Produce     json
// @Param       id path string true "Batch ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/assistant/batches/{id} [DELETE]
func (h *handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Cancel(ctx, c.Param("id")); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
