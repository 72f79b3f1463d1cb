package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"todo-assistant/internal/assistant"
	"todo-assistant/internal/model"
	pkgErrors "todo-assistant/pkg/errors"
)

// APIKeyHeader carries the caller's model API key.
const APIKeyHeader = "X-Api-Key"

// processParseReq binds the parse body and builds the caller's session.
func (h *handler) processParseReq(c *gin.Context) (model.Session, assistant.ParseInput, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return model.Session{}, assistant.ParseInput{}, pkgErrors.NewBadRequest(err.Error())
	}
	apiKey := strings.TrimSpace(c.GetHeader(APIKeyHeader))
	return req.toSession(apiKey, h.defaults), req.toInput(), nil
}

// processUpdateItemReq binds the item patch + URI params.
func (h *handler) processUpdateItemReq(c *gin.Context) (assistant.UpdateItemInput, error) {
	var req updateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return assistant.UpdateItemInput{}, pkgErrors.NewBadRequest(err.Error())
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return assistant.UpdateItemInput{}, errInvalidIndex
	}

	input := assistant.UpdateItemInput{
		BatchID:     c.Param("id"),
		Index:       index,
		Title:       req.Title,
		Description: req.Description,
		ClearEnd:    req.ClearEnd,
		AllDay:      req.AllDay,
		Tags:        req.Tags,
	}
	if req.Priority != nil {
		p := model.Priority(*req.Priority)
		input.Priority = &p
	}
	if req.DueDate != nil {
		due, err := h.dateMath.ParseDateTime(*req.DueDate)
		if err != nil {
			return assistant.UpdateItemInput{}, errInvalidDate
		}
		input.DueDate = &due
	}
	if req.EndDate != nil {
		end, err := h.dateMath.ParseDateTime(*req.EndDate)
		if err != nil {
			return assistant.UpdateItemInput{}, errInvalidDate
		}
		input.EndDate = &end
	}
	return input, nil
}
