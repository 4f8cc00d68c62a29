package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tdrmf/foundation-api/internal/api/handler/v1/response"
	"github.com/tdrmf/foundation-api/internal/domain"
)

type AuditService interface {
	History(ctx context.Context, entity string, entityID uint) ([]domain.AuditLog, error)
}

type AuditHandler struct {
	svc AuditService
}

func NewAuditHandler(svc AuditService) *AuditHandler {
	return &AuditHandler{
		svc: svc,
	}
}

// HandleHistory godoc
// @Summary      List audit entries for an entity
// @Tags         admin
// @Produce      json
// @Param        entity     query     string  true  "entity name"
// @Param        entity_id  query     int     true  "entity ID"
// @Success      200  {array}   domain.AuditLog
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/audit [get]
// @Security     BearerAuth
func (h *AuditHandler) HandleHistory(ctx *gin.Context) {
	entity := ctx.Query("entity")
	if entity == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("entity is required")))

		return
	}

	entityID, err := strconv.ParseUint(ctx.Query("entity_id"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid entity_id: %w", err)))

		return
	}

	entries, err := h.svc.History(ctx.Request.Context(), entity, uint(entityID))
	if err != nil {
		err = fmt.Errorf("v1.HandleHistory -> h.svc.History -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, entries)
}
