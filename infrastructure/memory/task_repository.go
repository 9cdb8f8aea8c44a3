package memory

import (
	"context"

	"github.com/google/uuid"

	"taskdeck/domain/models"
	"taskdeck/domain/repositories"
)

type TaskRepository struct {
	store *Store
}

func NewTaskRepository(store *Store) repositories.TaskRepository {
	return &TaskRepository{store: store}
}

func (r *TaskRepository) Create(_ context.Context, task *models.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, t := range r.store.tasks {
		if t.UserID == task.UserID && t.TaskName == task.TaskName {
			return errDuplicated
		}
	}

	r.store.tasks[task.ID] = *task
	return nil
}

func (r *TaskRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.tasks[id]
	if !ok {
		return nil, errNotFound
	}
	return &t, nil
}

func (r *TaskRepository) GetByUserID(_ context.Context, userID uuid.UUID) ([]*models.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tasks := []*models.Task{}
	for _, t := range r.store.tasks {
		if t.UserID == userID {
			task := t
			tasks = append(tasks, &task)
		}
	}
	sortTasks(tasks)
	return tasks, nil
}

func (r *TaskRepository) GetByUserAndTimeframe(_ context.Context, userID uuid.UUID, timeframe string) ([]*models.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tasks := []*models.Task{}
	for _, t := range r.store.tasks {
		if t.UserID == userID && t.Timeframe == timeframe {
			task := t
			tasks = append(tasks, &task)
		}
	}
	sortTasks(tasks)
	return tasks, nil
}

func (r *TaskRepository) GetByUserAndName(_ context.Context, userID uuid.UUID, taskName string) (*models.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, t := range r.store.tasks {
		if t.UserID == userID && t.TaskName == taskName {
			task := t
			return &task, nil
		}
	}
	return nil, errNotFound
}

func (r *TaskRepository) GetByIDs(_ context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*models.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tasks := []*models.Task{}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if t, ok := r.store.tasks[id]; ok && t.UserID == userID {
			task := t
			tasks = append(tasks, &task)
		}
	}
	return tasks, nil
}

func (r *TaskRepository) Update(_ context.Context, task *models.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tasks[task.ID]; !ok {
		return errNotFound
	}
	for id, t := range r.store.tasks {
		if id != task.ID && t.UserID == task.UserID && t.TaskName == task.TaskName {
			return errDuplicated
		}
	}

	r.store.tasks[task.ID] = *task
	return nil
}

// Delete removes the task only. Category parent/children references are left
// as-is, matching the storage layer's lack of cascade.
func (r *TaskRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.tasks, id)
	return nil
}
