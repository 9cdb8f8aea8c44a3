package memory

import (
	"context"

	"github.com/google/uuid"

	"taskdeck/domain/models"
	"taskdeck/domain/repositories"
)

type CategoryRepository struct {
	store *Store
}

func NewCategoryRepository(store *Store) repositories.CategoryRepository {
	return &CategoryRepository{store: store}
}

func (r *CategoryRepository) Create(_ context.Context, category *models.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, c := range r.store.categories {
		if c.ParentTaskID == category.ParentTaskID {
			return errDuplicated
		}
	}

	r.store.categories[category.ID] = *category
	return nil
}

func (r *CategoryRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.categories[id]
	if !ok {
		return nil, errNotFound
	}
	r.expand(&c)
	return &c, nil
}

func (r *CategoryRepository) GetByUserID(_ context.Context, userID uuid.UUID) ([]*models.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	categories := []*models.Category{}
	for _, c := range r.store.categories {
		if c.UserID == userID {
			category := c
			r.expand(&category)
			categories = append(categories, &category)
		}
	}
	return categories, nil
}

func (r *CategoryRepository) GetByParentTaskID(_ context.Context, parentTaskID uuid.UUID) (*models.Category, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, c := range r.store.categories {
		if c.ParentTaskID == parentTaskID {
			category := c
			return &category, nil
		}
	}
	return nil, errNotFound
}

func (r *CategoryRepository) Update(_ context.Context, category *models.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.categories[category.ID]; !ok {
		return errNotFound
	}

	r.store.categories[category.ID] = *category
	return nil
}

func (r *CategoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.categories, id)
	return nil
}

// expand refreshes the parent snapshot from the task collection when the
// parent still exists. A deleted parent leaves the stored (dangling)
// reference untouched.
func (r *CategoryRepository) expand(category *models.Category) {
	if t, ok := r.store.tasks[category.ParentTaskID]; ok {
		category.ParentTask = t
	}
	for i := range category.Children {
		if t, ok := r.store.tasks[category.Children[i].ID]; ok {
			category.Children[i] = t
		}
	}
}
