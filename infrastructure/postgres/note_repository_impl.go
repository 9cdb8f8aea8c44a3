package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskdeck/domain/models"
	"taskdeck/domain/repositories"
)

type NoteRepositoryImpl struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) repositories.NoteRepository {
	return &NoteRepositoryImpl{db: db}
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *models.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *NoteRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	var note models.Note
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Note, error) {
	var notes []*models.Note
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("last_edited desc").Find(&notes).Error
	return notes, err
}

func (r *NoteRepositoryImpl) GetByUserAndTitle(ctx context.Context, userID uuid.UUID, title string) (*models.Note, error) {
	var note models.Note
	err := r.db.WithContext(ctx).Where("user_id = ? AND title = ?", userID, title).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepositoryImpl) Update(ctx context.Context, note *models.Note) error {
	return r.db.WithContext(ctx).Save(note).Error
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Note{}).Error
}
