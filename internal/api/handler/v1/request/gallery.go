package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// GallerySubmitForm binds the multipart form fields of a photo
// submission; the file part is read separately by the handler.
type GallerySubmitForm struct {
	Title         string `form:"title"`
	Description   string `form:"description"`
	UploaderName  string `form:"uploader_name"`
	UploaderEmail string `form:"uploader_email"`
	ConsentSigned bool   `form:"consent_signed"`
}

func (req *GallerySubmitForm) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.UploaderName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.UploaderEmail, validation.Required, is.Email),
	)
}

type ModeratePhotoRequest struct {
	Approved *bool `json:"approved"`
}

func (req *ModeratePhotoRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Approved, validation.NotNil),
	)
}
