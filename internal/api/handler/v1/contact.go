package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tdrmf/foundation-api/internal/api/handler/v1/request"
	"github.com/tdrmf/foundation-api/internal/api/handler/v1/response"
	"github.com/tdrmf/foundation-api/internal/domain"
)

type ContactService interface {
	Submit(ctx context.Context, message domain.ContactMessage) (domain.ContactMessage, error)
}

type ContactHandler struct {
	svc ContactService
}

func NewContactHandler(svc ContactService) *ContactHandler {
	return &ContactHandler{
		svc: svc,
	}
}

// HandleSubmit godoc
// @Summary      Submit a contact form message
// @Tags         contact
// @Produce      json
// @Param        request   body      request.ContactRequest true "request body"
// @Success      201      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /contact [post]
func (h *ContactHandler) HandleSubmit(ctx *gin.Context) {
	req := request.ContactRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	message, err := h.svc.Submit(ctx.Request.Context(), domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleSubmit -> h.svc.Submit -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.MessageResponse{
		Message: "message received",
		ID:      message.ID,
	})
}
