package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tdrmf/foundation-api/internal/domain"
	"github.com/tdrmf/foundation-api/internal/repository"
	"github.com/tdrmf/foundation-api/internal/storage"
)

const (
	// MaxPhotoBytes caps gallery uploads at 10 MiB.
	MaxPhotoBytes = 10 * 1024 * 1024

	signedURLExpiry = time.Hour
)

var (
	ErrPhotoNotFound   = repository.ErrPhotoNotFound
	ErrConsentRequired = errors.New("consent must be signed")
	ErrInvalidFileType = errors.New("invalid file type, only JPG and PNG allowed")
	ErrFileTooLarge    = errors.New("file size exceeds 10 MB")
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

type GalleryRepository interface {
	Create(ctx context.Context, photo domain.GalleryPhoto) (domain.GalleryPhoto, error)
	FindByID(ctx context.Context, id uint) (domain.GalleryPhoto, error)
	FindApproved(ctx context.Context, offset, limit int) ([]domain.GalleryPhoto, error)
	FindPending(ctx context.Context) ([]domain.GalleryPhoto, error)
	Update(ctx context.Context, photo domain.GalleryPhoto) (domain.GalleryPhoto, error)
	Delete(ctx context.Context, id uint) error
}

// GallerySubmission carries the validated form fields and file content of
// a public photo submission.
type GallerySubmission struct {
	Title         string
	Description   string
	UploaderName  string
	UploaderEmail string
	ConsentSigned bool
	Filename      string
	ContentType   string
	Content       []byte
	ConsentIP     string
}

type GalleryService struct {
	repo  GalleryRepository
	store storage.ObjectStore
}

func NewGalleryService(repo GalleryRepository, store storage.ObjectStore) *GalleryService {
	return &GalleryService{
		repo:  repo,
		store: store,
	}
}

// Submit validates the submission, uploads the image and only then
// persists the photo record unapproved. The upload-then-persist order
// means a failed persist can orphan a blob, never a database row.
func (s *GalleryService) Submit(ctx context.Context, sub GallerySubmission) (domain.GalleryPhoto, error) {
	if !sub.ConsentSigned {
		return domain.GalleryPhoto{}, ErrConsentRequired
	}

	ext := strings.ToLower(filepath.Ext(sub.Filename))
	if !allowedExtensions[ext] {
		return domain.GalleryPhoto{}, ErrInvalidFileType
	}

	if len(sub.Content) > MaxPhotoBytes {
		return domain.GalleryPhoto{}, ErrFileTooLarge
	}

	contentType := sub.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}

	key := fmt.Sprintf("gallery/%s%s", uuid.NewString(), ext)
	err := s.store.Put(ctx, key, bytes.NewReader(sub.Content), int64(len(sub.Content)), contentType)
	if err != nil {
		return domain.GalleryPhoto{}, fmt.Errorf("s.store.Put -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.GalleryPhoto{
		Title:         sub.Title,
		Description:   sub.Description,
		UploaderName:  sub.UploaderName,
		UploaderEmail: sub.UploaderEmail,
		StorageKey:    key,
		Approved:      false,
		ConsentSigned: sub.ConsentSigned,
		ConsentIP:     sub.ConsentIP,
	})
	if err != nil {
		return domain.GalleryPhoto{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// ListApproved returns approved photos, newest first, each with a fresh
// signed URL. URLs are derived per request and never stored.
func (s *GalleryService) ListApproved(ctx context.Context, offset, limit int) ([]domain.GalleryPhoto, error) {
	photos, err := s.repo.FindApproved(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindApproved -> %w", err)
	}

	if err = s.signPhotos(ctx, photos); err != nil {
		return nil, err
	}

	return photos, nil
}

func (s *GalleryService) ListPending(ctx context.Context) ([]domain.GalleryPhoto, error) {
	photos, err := s.repo.FindPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPending -> %w", err)
	}

	if err = s.signPhotos(ctx, photos); err != nil {
		return nil, err
	}

	return photos, nil
}

// Moderate sets the approved flag; approving stamps the approval time.
func (s *GalleryService) Moderate(ctx context.Context, id uint, approved bool) (domain.GalleryPhoto, error) {
	photo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			return domain.GalleryPhoto{}, ErrPhotoNotFound
		}

		return domain.GalleryPhoto{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	photo.Approved = approved
	if approved {
		now := time.Now()
		photo.ApprovedAt = &now
	}

	updated, err := s.repo.Update(ctx, photo)
	if err != nil {
		return domain.GalleryPhoto{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	updated.URL, err = s.store.PresignGet(ctx, updated.StorageKey, signedURLExpiry)
	if err != nil {
		return domain.GalleryPhoto{}, fmt.Errorf("s.store.PresignGet -> %w", err)
	}

	return updated, nil
}

// Delete removes the blob first, then the row. The two steps are not
// linked transactionally: a failure after the blob delete leaves a row
// pointing at a missing object.
func (s *GalleryService) Delete(ctx context.Context, id uint) error {
	photo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			return ErrPhotoNotFound
		}

		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = s.store.Delete(ctx, photo.StorageKey); err != nil {
		return fmt.Errorf("s.store.Delete -> %w", err)
	}

	if err = s.repo.Delete(ctx, photo.ID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *GalleryService) signPhotos(ctx context.Context, photos []domain.GalleryPhoto) error {
	for i := range photos {
		url, err := s.store.PresignGet(ctx, photos[i].StorageKey, signedURLExpiry)
		if err != nil {
			return fmt.Errorf("s.store.PresignGet -> %w", err)
		}
		photos[i].URL = url
	}

	return nil
}
