package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskdeck/domain/dto"
	"taskdeck/domain/models"
	"taskdeck/domain/repositories"
	"taskdeck/domain/services"
	"taskdeck/pkg/apperrors"
	"taskdeck/pkg/logger"
)

type NoteServiceImpl struct {
	noteRepo repositories.NoteRepository
}

func NewNoteService(noteRepo repositories.NoteRepository) services.NoteService {
	return &NoteServiceImpl{noteRepo: noteRepo}
}

func (s *NoteServiceImpl) CreateNote(ctx context.Context, userID uuid.UUID, req *dto.CreateNoteRequest) (*models.Note, error) {
	existing, _ := s.noteRepo.GetByUserAndTitle(ctx, userID, req.Title)
	if existing != nil {
		return nil, apperrors.Conflictf("A note with this title already exists: %s. Please choose a different title.", req.Title)
	}

	note := &models.Note{
		ID:         uuid.New(),
		Title:      req.Title,
		Content:    req.Content,
		Color:      req.Color,
		UserID:     userID,
		LastEdited: time.Now(),
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflictf("A note with this title already exists: %s. Please choose a different title.", req.Title)
		}
		logger.ErrorContext(ctx, "Failed to create note", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Note created", "note_id", note.ID, "user_id", userID)

	return note, nil
}

func (s *NoteServiceImpl) GetNote(ctx context.Context, userID, noteID uuid.UUID) (*models.Note, error) {
	return s.ownedNote(ctx, userID, noteID)
}

func (s *NoteServiceImpl) GetUserNotes(ctx context.Context, userID uuid.UUID) ([]*models.Note, error) {
	notes, err := s.noteRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch notes", "user_id", userID, "error", err)
		return nil, err
	}
	return notes, nil
}

func (s *NoteServiceImpl) UpdateNote(ctx context.Context, userID, noteID uuid.UUID, req *dto.UpdateNoteRequest) (*models.Note, error) {
	note, err := s.ownedNote(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != note.Title {
		existing, _ := s.noteRepo.GetByUserAndTitle(ctx, userID, *req.Title)
		if existing != nil {
			return nil, apperrors.Conflictf("A note with this title already exists: %s. Please choose a different title.", *req.Title)
		}
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Color != nil {
		note.Color = *req.Color
	}
	note.LastEdited = time.Now()

	if err := s.noteRepo.Update(ctx, note); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflictf("A note with this title already exists: %s. Please choose a different title.", note.Title)
		}
		logger.ErrorContext(ctx, "Failed to update note", "note_id", noteID, "error", err)
		return nil, err
	}

	return note, nil
}

func (s *NoteServiceImpl) DeleteNote(ctx context.Context, userID, noteID uuid.UUID) error {
	note, err := s.ownedNote(ctx, userID, noteID)
	if err != nil {
		return err
	}

	if err := s.noteRepo.Delete(ctx, note.ID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete note", "note_id", noteID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Note deleted", "note_id", noteID, "user_id", userID)

	return nil
}

func (s *NoteServiceImpl) ownedNote(ctx context.Context, userID, noteID uuid.UUID) (*models.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, apperrors.NotFoundf("Note not found.")
	}
	if note.UserID != userID {
		return nil, apperrors.Forbiddenf("Not authorized to access this note")
	}
	return note, nil
}
