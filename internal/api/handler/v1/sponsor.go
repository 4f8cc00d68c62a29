package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tdrmf/foundation-api/internal/api/handler/v1/request"
	"github.com/tdrmf/foundation-api/internal/api/handler/v1/response"
	"github.com/tdrmf/foundation-api/internal/domain"
	"github.com/tdrmf/foundation-api/internal/service"
)

type SponsorService interface {
	ListActive(ctx context.Context) ([]domain.SponsorTier, error)
	CreateTier(ctx context.Context, tier domain.SponsorTier) (domain.SponsorTier, error)
	ListAll(ctx context.Context) ([]domain.SponsorTier, error)
	UpdateTier(ctx context.Context, id uint, patch domain.SponsorTierPatch) (domain.SponsorTier, error)
	DeleteTier(ctx context.Context, id uint) error
}

type SponsorHandler struct {
	svc   SponsorService
	audit AuditRecorder
}

func NewSponsorHandler(svc SponsorService, audit AuditRecorder) *SponsorHandler {
	return &SponsorHandler{
		svc:   svc,
		audit: audit,
	}
}

// HandleListActive godoc
// @Summary      List active sponsor tiers
// @Tags         sponsors
// @Produce      json
// @Success      200  {array}   domain.SponsorTier
// @Failure      500  {object}  response.Err
// @Router       /sponsors [get]
func (h *SponsorHandler) HandleListActive(ctx *gin.Context) {
	tiers, err := h.svc.ListActive(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListActive -> h.svc.ListActive -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, tiers)
}

// HandleCreateTier godoc
// @Summary      Create a sponsor tier
// @Tags         admin
// @Produce      json
// @Param        request   body      request.CreateSponsorTierRequest true "request body"
// @Success      201      {object}   domain.SponsorTier
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/sponsors [post]
// @Security     BearerAuth
func (h *SponsorHandler) HandleCreateTier(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	req := request.CreateSponsorTierRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	// New tiers default to active unless the request says otherwise.
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	tier, err := h.svc.CreateTier(ctx.Request.Context(), domain.SponsorTier{
		Name:        req.Name,
		AmountCents: req.AmountCents,
		Benefits:    req.Benefits,
		IsActive:    isActive,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateTier -> h.svc.CreateTier -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	h.audit.Record(ctx.Request.Context(), user.ID, "create", "sponsor_tier", tier.ID, map[string]interface{}{
		"name": tier.Name,
	})

	ctx.JSON(http.StatusCreated, tier)
}

// HandleListAllTiers godoc
// @Summary      List all sponsor tiers, active or not
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.SponsorTier
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/sponsors [get]
// @Security     BearerAuth
func (h *SponsorHandler) HandleListAllTiers(ctx *gin.Context) {
	tiers, err := h.svc.ListAll(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAllTiers -> h.svc.ListAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, tiers)
}

// HandleUpdateTier godoc
// @Summary      Update a sponsor tier
// @Tags         admin
// @Produce      json
// @Param        tierID    path      int  true  "tier ID"
// @Param        request   body      request.UpdateSponsorTierRequest true "request body"
// @Success      200      {object}   domain.SponsorTier
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/sponsors/{tierID} [put]
// @Security     BearerAuth
func (h *SponsorHandler) HandleUpdateTier(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	tierID, respErr := parseIDParam(ctx, "tierID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	req := request.UpdateSponsorTierRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	tier, err := h.svc.UpdateTier(ctx.Request.Context(), tierID, domain.SponsorTierPatch{
		Name:        req.Name,
		AmountCents: req.AmountCents,
		Benefits:    req.Benefits,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if errors.Is(err, service.ErrTierNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("sponsor tier", "ID", tierID))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateTier -> h.svc.UpdateTier -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	h.audit.Record(ctx.Request.Context(), user.ID, "update", "sponsor_tier", tier.ID, map[string]interface{}{
		"name": tier.Name,
	})

	ctx.JSON(http.StatusOK, tier)
}

// HandleDeleteTier godoc
// @Summary      Delete a sponsor tier
// @Tags         admin
// @Produce      json
// @Param        tierID   path      int  true  "tier ID"
// @Success      200     {object}   response.MessageResponse
// @Failure      400     {object}   response.Err
// @Failure      401     {object}   response.Err
// @Failure      404     {object}   response.Err
// @Failure      500     {object}   response.Err
// @Router       /admin/sponsors/{tierID} [delete]
// @Security     BearerAuth
func (h *SponsorHandler) HandleDeleteTier(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	tierID, respErr := parseIDParam(ctx, "tierID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if err := h.svc.DeleteTier(ctx.Request.Context(), tierID); err != nil {
		if errors.Is(err, service.ErrTierNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("sponsor tier", "ID", tierID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteTier -> h.svc.DeleteTier -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	h.audit.Record(ctx.Request.Context(), user.ID, "delete", "sponsor_tier", tierID, nil)

	ctx.JSON(http.StatusOK, response.MessageResponse{
		Message: "sponsor tier deleted",
		ID:      tierID,
	})
}
