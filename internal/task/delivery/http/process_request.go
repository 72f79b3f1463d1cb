package http

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"todo-assistant/internal/model"
	"todo-assistant/internal/task"
	pkgErrors "todo-assistant/pkg/errors"
)

// processCreateReq binds the create body and parses its dates.
func (h *handler) processCreateReq(c *gin.Context) (task.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.CreateInput{}, pkgErrors.NewBadRequest(err.Error())
	}

	due, err := h.parseTime(req.DueDate)
	if err != nil {
		return task.CreateInput{}, err
	}
	var end *time.Time
	if req.EndDate != nil && strings.TrimSpace(*req.EndDate) != "" {
		e, err := h.parseTime(*req.EndDate)
		if err != nil {
			return task.CreateInput{}, err
		}
		end = &e
	}
	return req.toInput(due, end), nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (task.ListInput, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return task.ListInput{}, pkgErrors.NewBadRequest(err.Error())
	}
	return req.toInput(), nil
}

// processUpdateReq binds the update body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (task.UpdateInput, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.UpdateInput{}, pkgErrors.NewBadRequest(err.Error())
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return task.UpdateInput{}, errMissingID
	}

	input := task.UpdateInput{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		ClearEnd:    req.ClearEnd,
		AllDay:      req.AllDay,
		Tags:        req.Tags,
		Completed:   req.Completed,
	}
	if req.Priority != nil {
		p := model.Priority(*req.Priority)
		input.Priority = &p
	}
	if req.DueDate != nil {
		due, err := h.parseTime(*req.DueDate)
		if err != nil {
			return task.UpdateInput{}, err
		}
		input.DueDate = &due
	}
	if req.EndDate != nil {
		end, err := h.parseTime(*req.EndDate)
		if err != nil {
			return task.UpdateInput{}, err
		}
		input.EndDate = &end
	}
	return input, nil
}

func (h *handler) processCalendarReq(c *gin.Context) (task.CalendarInput, error) {
	raw := c.Query("date")
	if raw == "" {
		return task.CalendarInput{}, nil
	}
	res, ok := h.dateMath.Resolve(raw, time.Now())
	if !ok {
		return task.CalendarInput{}, errInvalidDate
	}
	return task.CalendarInput{Day: res.Date}, nil
}

func (h *handler) processDashboardReq(c *gin.Context) (task.DashboardInput, error) {
	var req dashboardReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return task.DashboardInput{}, pkgErrors.NewBadRequest(err.Error())
	}
	return task.DashboardInput{HeatmapDays: req.HeatmapDays, TrendDays: req.TrendDays}, nil
}

func (h *handler) parseTime(s string) (time.Time, error) {
	t, err := h.dateMath.ParseDateTime(s)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return t, nil
}
