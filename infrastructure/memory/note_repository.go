package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"taskdeck/domain/models"
	"taskdeck/domain/repositories"
)

type NoteRepository struct {
	store *Store
}

func NewNoteRepository(store *Store) repositories.NoteRepository {
	return &NoteRepository{store: store}
}

func (r *NoteRepository) Create(_ context.Context, note *models.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, n := range r.store.notes {
		if n.UserID == note.UserID && n.Title == note.Title {
			return errDuplicated
		}
	}

	r.store.notes[note.ID] = *note
	return nil
}

func (r *NoteRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	n, ok := r.store.notes[id]
	if !ok {
		return nil, errNotFound
	}
	return &n, nil
}

func (r *NoteRepository) GetByUserID(_ context.Context, userID uuid.UUID) ([]*models.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	notes := []*models.Note{}
	for _, n := range r.store.notes {
		if n.UserID == userID {
			note := n
			notes = append(notes, &note)
		}
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].LastEdited.After(notes[j].LastEdited)
	})
	return notes, nil
}

func (r *NoteRepository) GetByUserAndTitle(_ context.Context, userID uuid.UUID, title string) (*models.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, n := range r.store.notes {
		if n.UserID == userID && n.Title == title {
			note := n
			return &note, nil
		}
	}
	return nil, errNotFound
}

func (r *NoteRepository) Update(_ context.Context, note *models.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.notes[note.ID]; !ok {
		return errNotFound
	}
	for id, n := range r.store.notes {
		if id != note.ID && n.UserID == note.UserID && n.Title == note.Title {
			return errDuplicated
		}
	}

	r.store.notes[note.ID] = *note
	return nil
}

func (r *NoteRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.notes, id)
	return nil
}
