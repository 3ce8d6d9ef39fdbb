package http

import (
	"github.com/gin-gonic/gin"

	"sales-task-tracker/pkg/response"
)

// State godoc
// @Summary     Store state
// @Description Returns every task in insertion order with the load state, load error and pending undo.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} stateResp
// @Router      /api/v1/tasks [GET]
func (h *handler) State(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.State(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.State: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStateResp(output))
}

// Ranked godoc
// @Summary     Ranked tasks
// @Description Returns tasks with derived fields, highest ROI first. Empty until the initial load completes.
// @Tags        Tasks
// @Produce     json
// @Param       status   query string false "Filter by status (Todo, In Progress, Done)"
// @Param       priority query string false "Filter by priority (Low, Medium, High)"
// @Param       q        query string false "Case-insensitive title search"
// @Success     200 {object} rankedResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/ranked [GET]
func (h *handler) Ranked(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRankedReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Ranked(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Ranked: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRankedResp(output))
}

// Metrics godoc
// @Summary     Aggregate metrics
// @Description Returns revenue, time, efficiency, ROI and grade over all tasks.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} metricsResp
// @Router      /api/v1/tasks/metrics [GET]
func (h *handler) Metrics(c *gin.Context) {
	ctx := c.Request.Context()

	m, err := h.uc.Metrics(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Metrics: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMetricsResp(m))
}

// Create godoc
// @Summary     Add a task
// @Description Appends a task. Missing or invalid fields fall back to defaults.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body object true "Task data; wrong-typed fields take their defaults"
// @Success     200 {object} taskEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Add(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTaskEnvelope(output.Task))
}

// Update godoc
// @Summary     Update a task
// @Description Applies a partial update. Moving into Done stamps completedAt.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body object true "Fields to update; wrong-typed fields reset to their defaults"
// @Success     200 {object} taskEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	if !output.Found {
		response.Error(c, errTaskNotFound, nil)
		return
	}

	response.OK(c, h.newTaskEnvelope(output.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes a task and keeps it as the single pending undo.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	output, err := h.uc.Delete(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	if !output.Deleted {
		response.Error(c, errTaskNotFound, nil)
		return
	}

	response.OK(c, nil)
}

// Undo godoc
// @Summary     Undo the last delete
// @Description Re-appends the most recently deleted task at the end of the list.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} taskEnvelope
// @Failure     404 {object} response.Resp "Nothing to undo"
// @Router      /api/v1/tasks/undo [POST]
func (h *handler) Undo(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.UndoDelete(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.UndoDelete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	if !output.Restored {
		response.Error(c, errNothingToUndo, nil)
		return
	}

	response.OK(c, h.newTaskEnvelope(output.Task))
}

// DismissUndo godoc
// @Summary     Dismiss the pending undo
// @Description Forgets the last deleted task without restoring it.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/tasks/undo [DELETE]
func (h *handler) DismissUndo(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ClearLastDeleted(ctx); err != nil {
		h.l.Errorf(ctx, "uc.ClearLastDeleted: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
