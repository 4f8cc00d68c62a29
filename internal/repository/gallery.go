package repository

import (
	"context"
	"fmt"

	"github.com/tdrmf/foundation-api/internal/domain"
	"github.com/tdrmf/foundation-api/internal/repository/dao"
)

var ErrPhotoNotFound = dao.ErrPhotoNotFound

type GalleryDAO interface {
	Insert(ctx context.Context, photo dao.GalleryPhoto) (dao.GalleryPhoto, error)
	FindByID(ctx context.Context, id uint) (dao.GalleryPhoto, error)
	FindApproved(ctx context.Context, offset, limit int) ([]dao.GalleryPhoto, error)
	FindPending(ctx context.Context) ([]dao.GalleryPhoto, error)
	Update(ctx context.Context, photo dao.GalleryPhoto) (dao.GalleryPhoto, error)
	Delete(ctx context.Context, id uint) error
}

type GalleryRepository struct {
	dao GalleryDAO
}

func NewGalleryRepository(dao GalleryDAO) *GalleryRepository {
	return &GalleryRepository{
		dao: dao,
	}
}

func (r *GalleryRepository) Create(ctx context.Context, photo domain.GalleryPhoto) (domain.GalleryPhoto, error) {
	created, err := r.dao.Insert(ctx, dao.GalleryPhoto{
		Title:         photo.Title,
		Description:   photo.Description,
		UploaderName:  photo.UploaderName,
		UploaderEmail: photo.UploaderEmail,
		StorageKey:    photo.StorageKey,
		Approved:      photo.Approved,
		ConsentSigned: photo.ConsentSigned,
		ConsentIP:     photo.ConsentIP,
	})
	if err != nil {
		return domain.GalleryPhoto{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *GalleryRepository) FindByID(ctx context.Context, id uint) (domain.GalleryPhoto, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.GalleryPhoto{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *GalleryRepository) FindApproved(ctx context.Context, offset, limit int) ([]domain.GalleryPhoto, error) {
	found, err := r.dao.FindApproved(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindApproved -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *GalleryRepository) FindPending(ctx context.Context) ([]domain.GalleryPhoto, error) {
	found, err := r.dao.FindPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindPending -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *GalleryRepository) Update(ctx context.Context, photo domain.GalleryPhoto) (domain.GalleryPhoto, error) {
	updated, err := r.dao.Update(ctx, dao.GalleryPhoto{
		ID:            photo.ID,
		Title:         photo.Title,
		Description:   photo.Description,
		UploaderName:  photo.UploaderName,
		UploaderEmail: photo.UploaderEmail,
		StorageKey:    photo.StorageKey,
		Approved:      photo.Approved,
		ConsentSigned: photo.ConsentSigned,
		ConsentIP:     photo.ConsentIP,
		SubmittedAt:   photo.SubmittedAt,
		ApprovedAt:    photo.ApprovedAt,
	})
	if err != nil {
		return domain.GalleryPhoto{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *GalleryRepository) daoToDomain(p dao.GalleryPhoto) domain.GalleryPhoto {
	return domain.GalleryPhoto{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		UploaderName:  p.UploaderName,
		UploaderEmail: p.UploaderEmail,
		StorageKey:    p.StorageKey,
		Approved:      p.Approved,
		ConsentSigned: p.ConsentSigned,
		ConsentIP:     p.ConsentIP,
		SubmittedAt:   p.SubmittedAt,
		ApprovedAt:    p.ApprovedAt,
	}
}

func (r *GalleryRepository) daoToDomainSlice(found []dao.GalleryPhoto) []domain.GalleryPhoto {
	photos := make([]domain.GalleryPhoto, 0, len(found))
	for _, p := range found {
		photos = append(photos, r.daoToDomain(p))
	}

	return photos
}
