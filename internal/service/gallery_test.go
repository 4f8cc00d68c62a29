package service_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdrmf/foundation-api/internal/domain"
	"github.com/tdrmf/foundation-api/internal/repository"
	"github.com/tdrmf/foundation-api/internal/service"
)

type stubGalleryRepo struct {
	photos map[uint]domain.GalleryPhoto
	nextID uint
}

func newStubGalleryRepo() *stubGalleryRepo {
	return &stubGalleryRepo{
		photos: map[uint]domain.GalleryPhoto{},
		nextID: 1,
	}
}

func (r *stubGalleryRepo) Create(_ context.Context, photo domain.GalleryPhoto) (domain.GalleryPhoto, error) {
	photo.ID = r.nextID
	r.nextID++
	r.photos[photo.ID] = photo

	return photo, nil
}

func (r *stubGalleryRepo) FindByID(_ context.Context, id uint) (domain.GalleryPhoto, error) {
	photo, exists := r.photos[id]
	if !exists {
		return domain.GalleryPhoto{}, repository.ErrPhotoNotFound
	}

	return photo, nil
}

func (r *stubGalleryRepo) FindApproved(_ context.Context, _, _ int) ([]domain.GalleryPhoto, error) {
	var approved []domain.GalleryPhoto
	for _, p := range r.photos {
		if p.Approved {
			approved = append(approved, p)
		}
	}

	return approved, nil
}

func (r *stubGalleryRepo) FindPending(_ context.Context) ([]domain.GalleryPhoto, error) {
	var pending []domain.GalleryPhoto
	for _, p := range r.photos {
		if !p.Approved {
			pending = append(pending, p)
		}
	}

	return pending, nil
}

func (r *stubGalleryRepo) Update(_ context.Context, photo domain.GalleryPhoto) (domain.GalleryPhoto, error) {
	if _, exists := r.photos[photo.ID]; !exists {
		return domain.GalleryPhoto{}, repository.ErrPhotoNotFound
	}
	r.photos[photo.ID] = photo

	return photo, nil
}

func (r *stubGalleryRepo) Delete(_ context.Context, id uint) error {
	if _, exists := r.photos[id]; !exists {
		return repository.ErrPhotoNotFound
	}
	delete(r.photos, id)

	return nil
}

// recordingStore records every operation so tests can assert ordering and
// that rejected submissions never touch storage.
type recordingStore struct {
	puts    []string
	deletes []string
}

func (s *recordingStore) Put(_ context.Context, key string, _ io.Reader, _ int64, _ string) error {
	s.puts = append(s.puts, key)

	return nil
}

func (s *recordingStore) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	return fmt.Sprintf("https://storage.example.com/%s?signed=1", key), nil
}

func (s *recordingStore) Delete(_ context.Context, key string) error {
	s.deletes = append(s.deletes, key)

	return nil
}

func validSubmission() service.GallerySubmission {
	return service.GallerySubmission{
		Title:         "Memorial Walk 2026",
		UploaderName:  "Jamie Williams",
		UploaderEmail: "jamie@example.com",
		ConsentSigned: true,
		Filename:      "walk.jpg",
		ContentType:   "image/jpeg",
		Content:       []byte("fake image bytes"),
		ConsentIP:     "203.0.113.9",
	}
}

func TestGalleryService_Submit(t *testing.T) {
	repo := newStubGalleryRepo()
	store := &recordingStore{}
	svc := service.NewGalleryService(repo, store)

	photo, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	assert.False(t, photo.Approved, "new submissions start unapproved")
	require.Len(t, store.puts, 1)
	assert.Equal(t, store.puts[0], photo.StorageKey)
	assert.Contains(t, photo.StorageKey, "gallery/")
}

func TestGalleryService_Submit_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*service.GallerySubmission)
		wantErr error
	}{
		{
			name:    "consent missing",
			mutate:  func(s *service.GallerySubmission) { s.ConsentSigned = false },
			wantErr: service.ErrConsentRequired,
		},
		{
			name:    "disallowed extension",
			mutate:  func(s *service.GallerySubmission) { s.Filename = "walk.gif" },
			wantErr: service.ErrInvalidFileType,
		},
		{
			name:    "no extension",
			mutate:  func(s *service.GallerySubmission) { s.Filename = "walk" },
			wantErr: service.ErrInvalidFileType,
		},
		{
			name: "oversized file",
			mutate: func(s *service.GallerySubmission) {
				s.Content = bytes.Repeat([]byte("a"), service.MaxPhotoBytes+1)
			},
			wantErr: service.ErrFileTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubGalleryRepo()
			store := &recordingStore{}
			svc := service.NewGalleryService(repo, store)

			sub := validSubmission()
			tt.mutate(&sub)

			_, err := svc.Submit(context.Background(), sub)
			assert.ErrorIs(t, err, tt.wantErr)

			assert.Empty(t, store.puts, "rejected submissions must not reach storage")
			assert.Empty(t, repo.photos)
		})
	}
}

func TestGalleryService_ListApproved_SignsURLs(t *testing.T) {
	repo := newStubGalleryRepo()
	store := &recordingStore{}
	svc := service.NewGalleryService(repo, store)

	photo, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	_, err = svc.Moderate(context.Background(), photo.ID, true)
	require.NoError(t, err)

	photos, err := svc.ListApproved(context.Background(), 0, 20)
	require.NoError(t, err)
	require.Len(t, photos, 1)

	assert.Contains(t, photos[0].URL, photos[0].StorageKey)
	assert.Contains(t, photos[0].URL, "signed=1")
}

func TestGalleryService_Moderate(t *testing.T) {
	repo := newStubGalleryRepo()
	svc := service.NewGalleryService(repo, &recordingStore{})

	photo, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	approved, err := svc.Moderate(context.Background(), photo.ID, true)
	require.NoError(t, err)
	assert.True(t, approved.Approved)
	require.NotNil(t, approved.ApprovedAt)

	pending, err := svc.ListPending(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = svc.Moderate(context.Background(), 999, true)
	assert.ErrorIs(t, err, service.ErrPhotoNotFound)
}

func TestGalleryService_Delete(t *testing.T) {
	repo := newStubGalleryRepo()
	store := &recordingStore{}
	svc := service.NewGalleryService(repo, store)

	photo, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), photo.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{photo.StorageKey}, store.deletes)
	assert.Empty(t, repo.photos)

	err = svc.Delete(context.Background(), photo.ID)
	assert.ErrorIs(t, err, service.ErrPhotoNotFound)
}
