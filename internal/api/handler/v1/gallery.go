package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tdrmf/foundation-api/internal/api/handler/v1/request"
	"github.com/tdrmf/foundation-api/internal/api/handler/v1/response"
	"github.com/tdrmf/foundation-api/internal/domain"
	"github.com/tdrmf/foundation-api/internal/service"
)

const defaultPageSize = 20

type GalleryService interface {
	Submit(ctx context.Context, sub service.GallerySubmission) (domain.GalleryPhoto, error)
	ListApproved(ctx context.Context, offset, limit int) ([]domain.GalleryPhoto, error)
	ListPending(ctx context.Context) ([]domain.GalleryPhoto, error)
	Moderate(ctx context.Context, id uint, approved bool) (domain.GalleryPhoto, error)
	Delete(ctx context.Context, id uint) error
}

type GalleryHandler struct {
	svc   GalleryService
	audit AuditRecorder
}

func NewGalleryHandler(svc GalleryService, audit AuditRecorder) *GalleryHandler {
	return &GalleryHandler{
		svc:   svc,
		audit: audit,
	}
}

// HandleListApproved godoc
// @Summary      List approved photos with signed URLs
// @Tags         gallery
// @Produce      json
// @Param        skip    query     int  false  "rows to skip"
// @Param        limit   query     int  false  "page size, default 20"
// @Success      200  {array}   domain.GalleryPhoto
// @Failure      500  {object}  response.Err
// @Router       /gallery [get]
func (h *GalleryHandler) HandleListApproved(ctx *gin.Context) {
	skip, err := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit <= 0 {
		limit = defaultPageSize
	}

	photos, err := h.svc.ListApproved(ctx.Request.Context(), skip, limit)
	if err != nil {
		err = fmt.Errorf("v1.HandleListApproved -> h.svc.ListApproved -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, photos)
}

// HandleSubmit godoc
// @Summary      Submit a photo for moderation
// @Tags         gallery
// @Accept       multipart/form-data
// @Produce      json
// @Param        file             formData  file    true   "photo file (JPG or PNG, max 10 MB)"
// @Param        title            formData  string  true   "photo title"
// @Param        uploader_name    formData  string  true   "uploader name"
// @Param        uploader_email   formData  string  true   "uploader email"
// @Param        consent_signed   formData  bool    true   "consent to publish"
// @Success      201  {object}  response.MessageResponse
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /gallery/submit [post]
func (h *GalleryHandler) HandleSubmit(ctx *gin.Context) {
	form := request.GallerySubmitForm{}
	if err := ctx.ShouldBind(&form); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := form.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		err = fmt.Errorf("v1.HandleSubmit -> io.ReadAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	photo, err := h.svc.Submit(ctx.Request.Context(), service.GallerySubmission{
		Title:         form.Title,
		Description:   form.Description,
		UploaderName:  form.UploaderName,
		UploaderEmail: form.UploaderEmail,
		ConsentSigned: form.ConsentSigned,
		Filename:      fileHeader.Filename,
		ContentType:   fileHeader.Header.Get("Content-Type"),
		Content:       content,
		ConsentIP:     ctx.ClientIP(),
	})
	if err != nil {
		if errors.Is(err, service.ErrConsentRequired) ||
			errors.Is(err, service.ErrInvalidFileType) ||
			errors.Is(err, service.ErrFileTooLarge) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleSubmit -> h.svc.Submit -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.MessageResponse{
		Message: "photo submitted for review",
		ID:      photo.ID,
	})
}

// HandleListPending godoc
// @Summary      List photos awaiting moderation
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.GalleryPhoto
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/gallery/pending [get]
// @Security     BearerAuth
func (h *GalleryHandler) HandleListPending(ctx *gin.Context) {
	photos, err := h.svc.ListPending(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListPending -> h.svc.ListPending -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, photos)
}

// HandleModerate godoc
// @Summary      Approve or reject a photo
// @Tags         admin
// @Produce      json
// @Param        photoID   path      int  true  "photo ID"
// @Param        request   body      request.ModeratePhotoRequest true "request body"
// @Success      200      {object}   domain.GalleryPhoto
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/gallery/{photoID}/approve [put]
// @Security     BearerAuth
func (h *GalleryHandler) HandleModerate(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	photoID, respErr := parseIDParam(ctx, "photoID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	req := request.ModeratePhotoRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	photo, err := h.svc.Moderate(ctx.Request.Context(), photoID, *req.Approved)
	if err != nil {
		if errors.Is(err, service.ErrPhotoNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("photo", "ID", photoID))

			return
		}

		err = fmt.Errorf("v1.HandleModerate -> h.svc.Moderate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	action := "reject"
	if *req.Approved {
		action = "approve"
	}
	h.audit.Record(ctx.Request.Context(), user.ID, action, "gallery_photo", photo.ID, nil)

	ctx.JSON(http.StatusOK, photo)
}

// HandleDeletePhoto godoc
// @Summary      Delete a photo and its stored file
// @Tags         admin
// @Produce      json
// @Param        photoID   path      int  true  "photo ID"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admin/gallery/{photoID} [delete]
// @Security     BearerAuth
func (h *GalleryHandler) HandleDeletePhoto(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	photoID, respErr := parseIDParam(ctx, "photoID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), photoID); err != nil {
		if errors.Is(err, service.ErrPhotoNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("photo", "ID", photoID))

			return
		}

		err = fmt.Errorf("v1.HandleDeletePhoto -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	h.audit.Record(ctx.Request.Context(), user.ID, "delete", "gallery_photo", photoID, nil)

	ctx.JSON(http.StatusOK, response.MessageResponse{
		Message: "photo deleted",
		ID:      photoID,
	})
}
