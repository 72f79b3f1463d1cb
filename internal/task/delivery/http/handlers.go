package http

import (
	"github.com/gin-gonic/gin"

	"todo-assistant/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task directly, without going through the assistant.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200  {object} detailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Task: newTaskResp(t)})
}

// List godoc
// @Summary     List tasks
// @Description Returns tasks filtered by priority and search text, sorted by due date.
// @Tags        Tasks
// @Produce     json
// @Param       priority query string false "all, low, medium or high"
// @Param       search   query string false "Case-insensitive match on title and description"
// @Param       sort     query string false "due_asc (default) or due_desc"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tasks, err := h.uc.List(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, listResp{Tasks: newTaskResps(tasks), Total: len(tasks)})
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Task: newTaskResp(t)})
}

// Update godoc
// @Summary     Update a task
// @Description Partially updates a task. Omitted fields are left unchanged.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to change"
// @Success     200  {object} detailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Update(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Task: newTaskResp(t)})
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Toggle godoc
// @Summary     Toggle task completion
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.ToggleComplete(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Task: newTaskResp(t)})
}

// Board godoc
// @Summary     Task board
// @Description Incomplete tasks grouped into today, future and past, plus completed tasks.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} boardResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/board [GET]
func (h *handler) Board(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Board(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Board: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBoardResp(out))
}

// Calendar godoc
// @Summary     Calendar day view
// @Description Tasks occurring on the given day and per-day counts for its month.
// @Tags        Tasks
// @Produce     json
// @Param       date query string false "Day to show (YYYY-MM-DD or a phrase like tomorrow); defaults to today"
// @Success     200 {object} calendarResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/calendar [GET]
func (h *handler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCalendarReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Calendar(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Calendar: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCalendarResp(out))
}

// Dashboard godoc
// @Summary     Dashboard statistics
// @Description Totals, completion heatmap, created/completed trend and recent activity.
// @Tags        Tasks
// @Produce     json
// @Param       heatmap_days query int false "Heatmap window in days (default 120)"
// @Param       trend_days   query int false "Trend window in days (default 30)"
// @Success     200 {object} task.DashboardOutput
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/dashboard [GET]
func (h *handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processDashboardReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Dashboard(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Dashboard: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, out)
}
