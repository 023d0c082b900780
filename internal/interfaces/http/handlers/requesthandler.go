package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gearguard/gearguard/internal/application/maintenance/usecases"
	"github.com/gearguard/gearguard/internal/shared/errors"
	"github.com/gearguard/gearguard/internal/shared/logger"
	"github.com/gearguard/gearguard/internal/shared/utils"
)

type RequestHandler struct {
	create     usecases.CreateRequestExecutor
	update     usecases.UpdateRequestExecutor
	transition usecases.TransitionStageExecutor
	delete     usecases.DeleteRequestExecutor
	get        usecases.GetRequestExecutor
	list       usecases.ListRequestsExecutor
	stats      usecases.GetStatsExecutor
	logger     logger.Interface
}

func NewRequestHandler(
	create usecases.CreateRequestExecutor,
	update usecases.UpdateRequestExecutor,
	transition usecases.TransitionStageExecutor,
	delete usecases.DeleteRequestExecutor,
	get usecases.GetRequestExecutor,
	list usecases.ListRequestsExecutor,
	stats usecases.GetStatsExecutor,
	logger logger.Interface,
) *RequestHandler {
	return &RequestHandler{
		create:     create,
		update:     update,
		transition: transition,
		delete:     delete,
		get:        get,
		list:       list,
		stats:      stats,
		logger:     logger,
	}
}

// CreateRequest godoc
// @Summary Create maintenance request
// @Description The authenticated user becomes the requester
// @Security Bearer
// @Tags requests
// @Accept json
// @Produce json
// @Param request body RequestPayload true "Request data"
// @Success 201 {object} utils.APIResponse{data=dto.RequestDTO}
// @Failure 400 {object} utils.APIResponse "Bad request"
// @Failure 404 {object} utils.APIResponse "Referenced equipment, team or user not found"
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	actorID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create request", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	scheduled, err := req.scheduledDate()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.create.Execute(c.Request.Context(), usecases.CreateRequestCommand{
		Subject:           req.Subject,
		Description:       req.Description,
		Type:              req.Type,
		Priority:          req.Priority,
		EquipmentID:       req.EquipmentID,
		RequesterID:       actorID,
		AssignedTeamID:    req.AssignedTeamID,
		AssignedToID:      req.AssignedToID,
		ScheduledDate:     scheduled,
		EstimatedDuration: req.EstimatedDuration,
		Notes:             req.Notes,
		ActorID:           &actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Request created successfully")
}

// UpdateRequest godoc
// @Summary Update maintenance request
// @Description Omitted team or assignee clears the reference
// @Security Bearer
// @Tags requests
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body RequestPayload true "Request data"
// @Success 200 {object} utils.APIResponse{data=dto.RequestDTO}
// @Router /requests/{id} [put]
func (h *RequestHandler) UpdateRequest(c *gin.Context) {
	actorID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseUintParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update request", "request_id", id, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	scheduled, err := req.scheduledDate()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.update.Execute(c.Request.Context(), usecases.UpdateRequestCommand{
		ID:                id,
		Subject:           req.Subject,
		Description:       req.Description,
		Type:              req.Type,
		Priority:          req.Priority,
		EquipmentID:       req.EquipmentID,
		AssignedTeamID:    req.AssignedTeamID,
		AssignedToID:      req.AssignedToID,
		ScheduledDate:     scheduled,
		EstimatedDuration: req.EstimatedDuration,
		Notes:             req.Notes,
		ActorID:           &actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Request updated successfully", result)
}

// TransitionStage godoc
// @Summary Move a request to another stage
// @Security Bearer
// @Tags requests
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param request body StagePayload true "Target stage"
// @Success 200 {object} utils.APIResponse{data=dto.RequestDTO}
// @Failure 422 {object} utils.APIResponse "Unknown stage"
// @Router /requests/{id}/stage [patch]
func (h *RequestHandler) TransitionStage(c *gin.Context) {
	actorID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseUintParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req StagePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("stage is required"))
		return
	}

	result, err := h.transition.Execute(c.Request.Context(), usecases.TransitionStageCommand{
		ID:      id,
		Stage:   req.Stage,
		ActorID: &actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Stage updated successfully", result)
}

// DeleteRequest godoc
// @Summary Delete maintenance request
// @Security Bearer
// @Tags requests
// @Param id path int true "Request ID"
// @Success 204 "Request deleted"
// @Failure 404 {object} utils.APIResponse "Request not found"
// @Router /requests/{id} [delete]
func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	actorID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseUintParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.delete.Execute(c.Request.Context(), usecases.DeleteRequestCommand{ID: id, ActorID: &actorID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RequestHandler) GetRequest(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "request")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListRequests returns the whole board.
func (h *RequestHandler) ListRequests(c *gin.Context) {
	h.respondList(c, usecases.ListRequestsQuery{})
}

func (h *RequestHandler) ListByStage(c *gin.Context) {
	h.respondList(c, usecases.ListRequestsQuery{Stage: c.Param("stage")})
}

func (h *RequestHandler) ListByTeam(c *gin.Context) {
	teamID, err := utils.ParseUintParam(c, "teamId", "team")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	h.respondList(c, usecases.ListRequestsQuery{TeamID: &teamID})
}

func (h *RequestHandler) ListOverdue(c *gin.Context) {
	h.respondList(c, usecases.ListRequestsQuery{OverdueOnly: true})
}

func (h *RequestHandler) ListUrgent(c *gin.Context) {
	h.respondList(c, usecases.ListRequestsQuery{UrgentOnly: true})
}

// ListCalendar returns requests scheduled between the from and to query dates, inclusive.
func (h *RequestHandler) ListCalendar(c *gin.Context) {
	from, err := parseDateQuery("from", c.Query("from"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	to, err := parseDateQuery("to", c.Query("to"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	h.respondList(c, usecases.ListRequestsQuery{From: from, To: to})
}

func (h *RequestHandler) GetStats(c *gin.Context) {
	result, err := h.stats.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *RequestHandler) respondList(c *gin.Context, query usecases.ListRequestsQuery) {
	result, err := h.list.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
