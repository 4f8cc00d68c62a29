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

type EventService interface {
	ListUpcoming(ctx context.Context) ([]domain.Event, error)
	GetPublished(ctx context.Context, id uint) (domain.Event, error)
	CreateRSVP(ctx context.Context, eventID uint, name, email string) (service.RSVPResult, error)
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	ListAll(ctx context.Context) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, id uint, patch domain.EventPatch) (domain.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
	CountRSVPs(ctx context.Context, eventID uint) (int64, error)
}

type AuditRecorder interface {
	Record(ctx context.Context, actorID uint, action, entity string, entityID uint, meta map[string]interface{})
}

type EventHandler struct {
	svc   EventService
	audit AuditRecorder
}

func NewEventHandler(svc EventService, audit AuditRecorder) *EventHandler {
	return &EventHandler{
		svc:   svc,
		audit: audit,
	}
}

// HandleListUpcoming godoc
// @Summary      List published upcoming events
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      500  {object}  response.Err
// @Router       /events [get]
func (h *EventHandler) HandleListUpcoming(ctx *gin.Context) {
	events, err := h.svc.ListUpcoming(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListUpcoming -> h.svc.ListUpcoming -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get a published event
// @Tags         events
// @Produce      json
// @Param        eventID   path      int  true  "event ID"
// @Success      200      {object}   domain.Event
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	eventID, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	event, err := h.svc.GetPublished(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))

			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.GetPublished -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleCreateRSVP godoc
// @Summary      RSVP to an event
// @Tags         events
// @Produce      json
// @Param        eventID   path      int  true  "event ID"
// @Param        request   body      request.CreateRSVPRequest true "request body"
// @Success      201      {object}   response.RSVPResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID}/rsvp [post]
func (h *EventHandler) HandleCreateRSVP(ctx *gin.Context) {
	eventID, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	req := request.CreateRSVPRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	result, err := h.svc.CreateRSVP(ctx.Request.Context(), eventID, req.Name, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))

			return
		}

		err = fmt.Errorf("v1.HandleCreateRSVP -> h.svc.CreateRSVP -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	if result.ExternalURL != "" {
		ctx.JSON(http.StatusOK, response.RSVPResponse{
			Message:     "this event uses external registration",
			ExternalURL: result.ExternalURL,
		})

		return
	}

	ctx.JSON(http.StatusCreated, response.RSVPResponse{
		Message: "RSVP recorded",
	})
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Tags         admin
// @Produce      json
// @Param        request   body      request.CreateEventRequest true "request body"
// @Success      201      {object}   domain.Event
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/events [post]
// @Security     BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	req := request.CreateEventRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), domain.Event{
		Title:                   req.Title,
		Summary:                 req.Summary,
		Description:             req.Description,
		StartAt:                 req.StartAt,
		EndAt:                   req.EndAt,
		Location:                req.Location,
		ExternalRegistrationURL: req.ExternalRegistrationURL,
		IsPublished:             req.IsPublished,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	h.audit.Record(ctx.Request.Context(), user.ID, "create", "event", event.ID, map[string]interface{}{
		"title": event.Title,
	})

	ctx.JSON(http.StatusCreated, event)
}

// HandleListAllEvents godoc
// @Summary      List all events, published or not
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/events [get]
// @Security     BearerAuth
func (h *EventHandler) HandleListAllEvents(ctx *gin.Context) {
	events, err := h.svc.ListAll(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAllEvents -> h.svc.ListAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleUpdateEvent godoc
// @Summary      Update an event
// @Tags         admin
// @Produce      json
// @Param        eventID   path      int  true  "event ID"
// @Param        request   body      request.UpdateEventRequest true "request body"
// @Success      200      {object}   domain.Event
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/events/{eventID} [put]
// @Security     BearerAuth
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	eventID, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	req := request.UpdateEventRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event, err := h.svc.UpdateEvent(ctx.Request.Context(), eventID, domain.EventPatch{
		Title:                   req.Title,
		Summary:                 req.Summary,
		Description:             req.Description,
		StartAt:                 req.StartAt,
		EndAt:                   req.EndAt,
		Location:                req.Location,
		ExternalRegistrationURL: req.ExternalRegistrationURL,
		IsPublished:             req.IsPublished,
	})
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateEvent -> h.svc.UpdateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	h.audit.Record(ctx.Request.Context(), user.ID, "update", "event", event.ID, map[string]interface{}{
		"title": event.Title,
	})

	ctx.JSON(http.StatusOK, event)
}

// HandleCountRSVPs godoc
// @Summary      Get the RSVP count for an event
// @Tags         admin
// @Produce      json
// @Param        eventID   path      int  true  "event ID"
// @Success      200      {object}   response.RSVPCountResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/events/{eventID}/rsvps [get]
// @Security     BearerAuth
func (h *EventHandler) HandleCountRSVPs(ctx *gin.Context) {
	eventID, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	count, err := h.svc.CountRSVPs(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))

			return
		}

		err = fmt.Errorf("v1.HandleCountRSVPs -> h.svc.CountRSVPs -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.RSVPCountResponse{
		EventID: eventID,
		Count:   count,
	})
}

// HandleDeleteEvent godoc
// @Summary      Delete an event
// @Tags         admin
// @Produce      json
// @Param        eventID   path      int  true  "event ID"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/events/{eventID} [delete]
// @Security     BearerAuth
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	eventID, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if err := h.svc.DeleteEvent(ctx.Request.Context(), eventID); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteEvent -> h.svc.DeleteEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	h.audit.Record(ctx.Request.Context(), user.ID, "delete", "event", eventID, nil)

	ctx.JSON(http.StatusOK, response.MessageResponse{
		Message: "event deleted",
		ID:      eventID,
	})
}
