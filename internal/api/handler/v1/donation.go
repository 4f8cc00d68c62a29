package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tdrmf/foundation-api/internal/api/handler/v1/request"
	"github.com/tdrmf/foundation-api/internal/api/handler/v1/response"
	"github.com/tdrmf/foundation-api/internal/domain"
	"github.com/tdrmf/foundation-api/internal/service"
)

type DonationService interface {
	Checkout(ctx context.Context, donation domain.Donation) (service.Checkout, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	ListDonations(ctx context.Context) ([]domain.Donation, error)
	Stats(ctx context.Context) (domain.DonationStats, error)
}

type DonationHandler struct {
	svc DonationService
}

func NewDonationHandler(svc DonationService) *DonationHandler {
	return &DonationHandler{
		svc: svc,
	}
}

// HandleCheckout godoc
// @Summary      Start a donation checkout
// @Tags         donations
// @Produce      json
// @Param        request   body      request.CheckoutRequest true "request body"
// @Success      201      {object}   response.CheckoutResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /donations/checkout [post]
func (h *DonationHandler) HandleCheckout(ctx *gin.Context) {
	req := request.CheckoutRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	checkout, err := h.svc.Checkout(ctx.Request.Context(), domain.Donation{
		AmountCents:    req.AmountCents,
		Currency:       req.Currency,
		DonorEmail:     req.DonorEmail,
		DonorName:      req.DonorName,
		IsRecurring:    req.IsRecurring,
		DedicationNote: req.DedicationNote,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCheckout -> h.svc.Checkout -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.CheckoutResponse{
		ClientSecret:    checkout.ClientSecret,
		PaymentIntentID: checkout.PaymentIntentID,
		SubscriptionID:  checkout.SubscriptionID,
	})
}

// HandleWebhook godoc
// @Summary      Receive payment processor webhooks
// @Tags         donations
// @Produce      json
// @Success      200  {object}  response.WebhookResponse
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /donations/webhook [post]
func (h *DonationHandler) HandleWebhook(ctx *gin.Context) {
	payload, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	signature := ctx.GetHeader("Stripe-Signature")
	if err = h.svc.HandleWebhook(ctx.Request.Context(), payload, signature); err != nil {
		if errors.Is(err, service.ErrInvalidSignature) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidSignature))

			return
		}

		err = fmt.Errorf("v1.HandleWebhook -> h.svc.HandleWebhook -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.WebhookResponse{
		Status: "received",
	})
}

// HandleListDonations godoc
// @Summary      List all donations
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Donation
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/donations [get]
// @Security     BearerAuth
func (h *DonationHandler) HandleListDonations(ctx *gin.Context) {
	donations, err := h.svc.ListDonations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListDonations -> h.svc.ListDonations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, donations)
}

// HandleDonationStats godoc
// @Summary      Aggregate succeeded donations
// @Tags         admin
// @Produce      json
// @Success      200  {object}  domain.DonationStats
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/donations/stats [get]
// @Security     BearerAuth
func (h *DonationHandler) HandleDonationStats(ctx *gin.Context) {
	stats, err := h.svc.Stats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleDonationStats -> h.svc.Stats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stats)
}
