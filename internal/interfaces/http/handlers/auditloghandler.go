package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gearguard/gearguard/internal/shared/biztime"
	"github.com/gearguard/gearguard/internal/shared/errors"
	"github.com/gearguard/gearguard/internal/shared/logger"
	"github.com/gearguard/gearguard/internal/shared/utils"
)

type AuditLogHandler struct {
	service auditService
	logger  logger.Interface
}

func NewAuditLogHandler(service auditService, logger logger.Interface) *AuditLogHandler {
	return &AuditLogHandler{
		service: service,
		logger:  logger,
	}
}

// ListAuditLogs godoc
// @Summary List audit logs
// @Security Bearer
// @Tags audit-logs
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /audit-logs [get]
func (h *AuditLogHandler) ListAuditLogs(c *gin.Context) {
	p := utils.ParsePagination(c)

	items, total, err := h.service.GetAllAuditLogs(c.Request.Context(), p.Page, p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, p.Page, p.PageSize)
}

func (h *AuditLogHandler) ListRecent(c *gin.Context) {
	result, err := h.service.GetRecentAuditLogs(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *AuditLogHandler) ListForEntity(c *gin.Context) {
	entityID, err := utils.ParseUintParam(c, "id", "entity")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.GetAuditLogsForEntity(c.Request.Context(), c.Param("type"), entityID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *AuditLogHandler) ListForUser(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "userId", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.GetAuditLogsForUser(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListByDateRange covers whole business days from the from date through the to date.
func (h *AuditLogHandler) ListByDateRange(c *gin.Context) {
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
	if to.Before(*from) {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid date range", "to must not be before from"))
		return
	}

	result, err := h.service.GetAuditLogsByDateRange(c.Request.Context(), *from, biztime.EndOfDayUTC(*to))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}
