package domain

import "time"

type GalleryPhoto struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	UploaderName  string     `json:"uploader_name"`
	UploaderEmail string     `json:"uploader_email"`
	StorageKey    string     `json:"storage_key"`
	// URL is derived per request from the storage key and never persisted.
	URL           string     `json:"url"`
	Approved      bool       `json:"approved"`
	ConsentSigned bool       `json:"consent_signed"`
	ConsentIP     string     `json:"-"`
	SubmittedAt   time.Time  `json:"submitted_at"`
	ApprovedAt    *time.Time `json:"approved_at"`
}
